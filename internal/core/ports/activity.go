package ports

import (
	"context"
	"time"

	"github.com/projecthub/projecthub-api/internal/core/domain"
)

// ActivityInput is the DTO handed from services to the activity pipeline.
type ActivityInput struct {
	ProjectID string
	TaskID    string
	ActorID   string
	Type      string
	Message   string
	Timestamp time.Time
}

// ActivityRecorder accepts activity records for asynchronous persistence.
// Enqueue must be safe for concurrent use and must preserve per-project
// ordering.
type ActivityRecorder interface {
	Enqueue(input ActivityInput)
}

// ActivityService persists activity records and serves the per-project feed.
type ActivityService interface {
	Record(ctx context.Context, input ActivityInput) error
	ListByProject(ctx context.Context, projectID string, limit int) ([]domain.Activity, error)
}

// ActivityRepository defines the persistence interface for activity entries.
type ActivityRepository interface {
	Insert(ctx context.Context, activity *domain.Activity) error
	ListByProject(ctx context.Context, projectID string, limit int) ([]domain.Activity, error)
}
