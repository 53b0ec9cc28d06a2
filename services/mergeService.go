package services

import (
	"time"

	"github.com/Meakshayar/spacedrevisionapp/models"
)

// -------- Merge engine --------
//
// MergeSnapshots reconciles a client-submitted snapshot with the stored one.
// Each field has its own rule, chosen so that concurrent, out-of-order,
// partially overlapping syncs from independent clients never lose data:
//
//	questionSets        union, incoming wins on key collision
//	playerProfiles      per-player max-totalXP wins
//	dailyRevisionScores per-(date,player) additive sum
//	practiceHistory     first-writer-wins per attempt key
//	revisionProgress    first-writer-wins per (player,item) pair
//	reportedQuestions   append unseen reportIds, stored copy and order kept
//	lastUpdated         always the merge wall-clock time
//
// The function is pure apart from reading the clock: no I/O, no mutation of
// its inputs. stored may be nil (no document yet), incoming may omit any
// field; both are treated as empty.
func MergeSnapshots(stored, incoming *models.Snapshot) (*models.Snapshot, models.SyncStats) {
	if stored == nil {
		stored = models.EmptySnapshot()
	}
	if incoming == nil {
		incoming = models.EmptySnapshot()
	}

	merged := models.EmptySnapshot()
	merged.QuestionSets = mergeQuestionSets(stored.QuestionSets, incoming.QuestionSets)
	merged.PlayerProfiles = mergePlayerProfiles(stored.PlayerProfiles, incoming.PlayerProfiles)
	merged.DailyRevisionScores = mergeDailyScores(stored.DailyRevisionScores, incoming.DailyRevisionScores)
	merged.PracticeHistory = mergePracticeHistory(stored.PracticeHistory, incoming.PracticeHistory)
	merged.RevisionProgress = mergeRevisionProgress(stored.RevisionProgress, incoming.RevisionProgress)
	merged.ReportedQuestions = mergeReportedQuestions(stored.ReportedQuestions, incoming.ReportedQuestions)
	merged.LastUpdated = time.Now().UTC()

	stats := models.SyncStats{
		PlayerCount: len(merged.PlayerProfiles),
		SetCount:    len(merged.QuestionSets),
	}
	return merged, stats
}

// Question sets are authored client-side and the latest edit should win, so
// incoming overwrites stored on collision.
func mergeQuestionSets(stored, incoming map[string]models.QuestionSet) map[string]models.QuestionSet {
	out := make(map[string]models.QuestionSet, len(stored)+len(incoming))
	for id, set := range stored {
		out[id] = set
	}
	for id, set := range incoming {
		out[id] = set
	}
	return out
}

// A profile is only replaced when the incoming totalXP is strictly greater,
// so an out-of-date client can never roll back another client's progress.
func mergePlayerProfiles(stored, incoming map[string]models.PlayerProfile) map[string]models.PlayerProfile {
	out := make(map[string]models.PlayerProfile, len(stored)+len(incoming))
	for id, profile := range stored {
		out[id] = profile
	}
	for id, profile := range incoming {
		current, exists := out[id]
		if !exists || profile.TotalXP > current.TotalXP {
			out[id] = profile
		}
	}
	return out
}

// Daily scores are accumulating counters: incoming values are added to
// stored ones, never substituted. Re-sending the same increment twice
// double-counts; submissions carry no idempotency key, so retry safety is
// the caller's problem.
func mergeDailyScores(stored, incoming map[string]map[string]float64) map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(stored)+len(incoming))
	for date, players := range stored {
		day := make(map[string]float64, len(players))
		for player, score := range players {
			day[player] = score
		}
		out[date] = day
	}
	for date, players := range incoming {
		day, ok := out[date]
		if !ok {
			day = make(map[string]float64, len(players))
			out[date] = day
		}
		for player, score := range players {
			day[player] += score
		}
	}
	return out
}

// Attempt keys are permanent once written; later submissions for the same
// key are silently ignored.
func mergePracticeHistory(stored, incoming map[string]models.PracticeAttempt) map[string]models.PracticeAttempt {
	out := make(map[string]models.PracticeAttempt, len(stored)+len(incoming))
	for key, attempt := range stored {
		out[key] = attempt
	}
	for key, attempt := range incoming {
		if _, exists := out[key]; !exists {
			out[key] = attempt
		}
	}
	return out
}

// Same first-writer-wins rule as practice history, one level deeper.
func mergeRevisionProgress(stored, incoming map[string]map[string]models.RevisionEntry) map[string]map[string]models.RevisionEntry {
	out := make(map[string]map[string]models.RevisionEntry, len(stored)+len(incoming))
	for player, items := range stored {
		entries := make(map[string]models.RevisionEntry, len(items))
		for key, entry := range items {
			entries[key] = entry
		}
		out[player] = entries
	}
	for player, items := range incoming {
		entries, ok := out[player]
		if !ok {
			entries = make(map[string]models.RevisionEntry, len(items))
			out[player] = entries
		}
		for key, entry := range items {
			if _, exists := entries[key]; !exists {
				entries[key] = entry
			}
		}
	}
	return out
}

// Stored order is preserved; incoming reports with an unseen reportId are
// appended in their incoming order, duplicates dropped (stored copy kept).
func mergeReportedQuestions(stored, incoming []models.ReportedQuestion) []models.ReportedQuestion {
	out := make([]models.ReportedQuestion, 0, len(stored)+len(incoming))
	seen := make(map[string]struct{}, len(stored)+len(incoming))
	for _, report := range stored {
		out = append(out, report)
		seen[report.ReportID] = struct{}{}
	}
	for _, report := range incoming {
		if _, exists := seen[report.ReportID]; exists {
			continue
		}
		out = append(out, report)
		seen[report.ReportID] = struct{}{}
	}
	return out
}
