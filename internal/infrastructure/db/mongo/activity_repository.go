package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/projecthub/projecthub-api/internal/core/domain"
)

const collectionActivities = "activities"

type ActivityRepository struct {
	col *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{col: db.Collection(collectionActivities)}
}

type activityDoc struct {
	ID        string `bson:"_id"`
	ProjectID string `bson:"project_id"`
	TaskID    string `bson:"task_id,omitempty"`
	ActorID   string `bson:"actor_id"`
	Type      string `bson:"type"`
	Message   string `bson:"message"`
	CreatedAt int64  `bson:"created_at"`
}

func (r *ActivityRepository) Insert(ctx context.Context, activity *domain.Activity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := activityDoc{
		ID:        activity.ID,
		ProjectID: activity.ProjectID,
		TaskID:    activity.TaskID,
		ActorID:   activity.ActorID,
		Type:      activity.Type,
		Message:   activity.Message,
		CreatedAt: activity.CreatedAt.Unix(),
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func (r *ActivityRepository) ListByProject(ctx context.Context, projectID string, limit int) ([]domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := r.col.Find(ctx, bson.M{"project_id": projectID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer cur.Close(ctx)

	var activities []domain.Activity
	for cur.Next(ctx) {
		var doc activityDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode activity: %w", err)
		}
		activities = append(activities, domain.Activity{
			ID:        doc.ID,
			ProjectID: doc.ProjectID,
			TaskID:    doc.TaskID,
			ActorID:   doc.ActorID,
			Type:      doc.Type,
			Message:   doc.Message,
			CreatedAt: unixToTime(doc.CreatedAt),
		})
	}
	return activities, cur.Err()
}

// EnsureIndexes creates the per-project feed index.
func (r *ActivityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "project_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
