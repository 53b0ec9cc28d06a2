package services

import (
	"context"
	"errors"
	"time"

	"github.com/Meakshayar/spacedrevisionapp/config"
	"github.com/Meakshayar/spacedrevisionapp/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const stateCollection = "app_state"

// ErrReportNotFound is returned when a moderation delete matches nothing.
var ErrReportNotFound = errors.New("reported question not found")

// LoadSnapshot fetches the shared state document. A missing document is a
// valid result and returns (nil, nil), never an error.
func LoadSnapshot() (*models.Snapshot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection(stateCollection)

	var snap models.Snapshot
	err := coll.FindOne(ctx, bson.M{"_id": models.SnapshotID}).Decode(&snap)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// SaveSnapshot upserts the merged document under the fixed id. Fields are
// written with $set so the document is created on first write and mutated,
// never replaced wholesale, afterwards.
func SaveSnapshot(snap *models.Snapshot) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection(stateCollection)

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "question_sets", Value: snap.QuestionSets},
		{Key: "player_profiles", Value: snap.PlayerProfiles},
		{Key: "daily_revision_scores", Value: snap.DailyRevisionScores},
		{Key: "practice_history", Value: snap.PracticeHistory},
		{Key: "revision_progress", Value: snap.RevisionProgress},
		{Key: "reported_questions", Value: snap.ReportedQuestions},
		{Key: "last_updated", Value: snap.LastUpdated},
	}}}
	filter := bson.M{"_id": models.SnapshotID}
	opts := options.Update().SetUpsert(true)

	_, err := coll.UpdateOne(ctx, filter, update, opts)
	return err
}

// SyncSnapshot runs the full read-merge-write sequence for one client
// submission. The sequence is not atomic across concurrent syncs; two
// overlapping syncs can both read the same stored value and the second
// write wins for fields whose rule is not commutative (daily scores can
// lose or double-count increments). Callers needing strict consistency
// must serialize writes externally.
func SyncSnapshot(incoming *models.Snapshot) (*models.Snapshot, models.SyncStats, error) {
	stored, err := LoadSnapshot()
	if err != nil {
		return nil, models.SyncStats{}, err
	}
	merged, stats := MergeSnapshots(stored, incoming)
	if err := SaveSnapshot(merged); err != nil {
		return nil, models.SyncStats{}, err
	}
	return merged, stats, nil
}

// DeleteReport removes a resolved reported question from the stored
// document. This is an operator action outside the merge rules.
func DeleteReport(reportID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection(stateCollection)

	update := bson.M{"$pull": bson.M{"reported_questions": bson.M{"report_id": reportID}}}
	res, err := coll.UpdateOne(ctx, bson.M{"_id": models.SnapshotID}, update)
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		return ErrReportNotFound
	}
	return nil
}
