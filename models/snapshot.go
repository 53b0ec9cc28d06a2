package models

import "time"

// SnapshotID is the _id of the single shared state document. There is one
// document per deployment; every client syncs against it.
const SnapshotID = "main"

// Snapshot is the full application-state document. Every top-level field
// has its own merge rule (see services.MergeSnapshots); clients may submit
// any subset of fields and omitted ones are treated as empty.
type Snapshot struct {
	ID                  string                               `bson:"_id,omitempty" json:"-"`
	QuestionSets        map[string]QuestionSet               `bson:"question_sets" json:"questionSets"`
	PlayerProfiles      map[string]PlayerProfile             `bson:"player_profiles" json:"playerProfiles"`
	DailyRevisionScores map[string]map[string]float64        `bson:"daily_revision_scores" json:"dailyRevisionScores"` // date (2006-01-02) -> player -> score
	PracticeHistory     map[string]PracticeAttempt           `bson:"practice_history" json:"practiceHistory"`          // keyed by client-generated attempt id
	RevisionProgress    map[string]map[string]RevisionEntry  `bson:"revision_progress" json:"revisionProgress"`        // player -> item key -> entry
	ReportedQuestions   []ReportedQuestion                   `bson:"reported_questions" json:"reportedQuestions"`
	LastUpdated         time.Time                            `bson:"last_updated" json:"lastUpdated"`
}

type QuestionSet struct {
	Name      string     `bson:"name" json:"name"`
	Subject   string     `bson:"subject,omitempty" json:"subject,omitempty"`
	Questions []Question `bson:"questions" json:"questions"`
}

type Question struct {
	Text    string   `bson:"text" json:"text"`
	Answer  string   `bson:"answer" json:"answer"`
	Choices []string `bson:"choices,omitempty" json:"choices,omitempty"`
}

type PlayerProfile struct {
	DisplayName string  `bson:"display_name,omitempty" json:"displayName,omitempty"`
	Avatar      string  `bson:"avatar,omitempty" json:"avatar,omitempty"`
	TotalXP     float64 `bson:"total_xp" json:"totalXP"`
}

type PracticeAttempt struct {
	PlayerID    string    `bson:"player_id" json:"playerId"`
	SetID       string    `bson:"set_id" json:"setId"`
	Score       float64   `bson:"score" json:"score"`
	Total       int       `bson:"total" json:"total"`
	CompletedAt time.Time `bson:"completed_at" json:"completedAt"`
}

type RevisionEntry struct {
	Box         int       `bson:"box" json:"box"` // spaced-repetition box, 1..n
	LastCorrect bool      `bson:"last_correct" json:"lastCorrect"`
	ReviewedAt  time.Time `bson:"reviewed_at" json:"reviewedAt"`
}

type ReportedQuestion struct {
	ReportID   string    `bson:"report_id" json:"reportId"`
	SetID      string    `bson:"set_id,omitempty" json:"setId,omitempty"`
	Text       string    `bson:"text" json:"text"`
	Reason     string    `bson:"reason,omitempty" json:"reason,omitempty"`
	ReportedAt time.Time `bson:"reported_at,omitempty" json:"reportedAt,omitempty"`
}

// SyncStats is returned to the client after a successful sync.
type SyncStats struct {
	PlayerCount int `json:"playerCount"`
	SetCount    int `json:"setCount"`
}

// EmptySnapshot returns a snapshot with every collection field initialized
// and empty. Absence of the stored document is equivalent to this.
func EmptySnapshot() *Snapshot {
	return &Snapshot{
		ID:                  SnapshotID,
		QuestionSets:        map[string]QuestionSet{},
		PlayerProfiles:      map[string]PlayerProfile{},
		DailyRevisionScores: map[string]map[string]float64{},
		PracticeHistory:     map[string]PracticeAttempt{},
		RevisionProgress:    map[string]map[string]RevisionEntry{},
		ReportedQuestions:   []ReportedQuestion{},
	}
}
