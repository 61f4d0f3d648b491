package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/projecthub/projecthub-api/internal/api/metrics"
	"github.com/projecthub/projecthub-api/internal/core/domain"
	"github.com/projecthub/projecthub-api/internal/core/ports"
)

const defaultActivityLimit = 50

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService implementation.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Record persists a single activity entry. Called from the dispatcher
// workers, one entry at a time.
func (s *activityService) Record(ctx context.Context, in ports.ActivityInput) error {
	start := time.Now()

	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	activity := &domain.Activity{
		ID:        uuid.NewString(),
		ProjectID: in.ProjectID,
		TaskID:    in.TaskID,
		ActorID:   in.ActorID,
		Type:      in.Type,
		Message:   in.Message,
		CreatedAt: ts,
	}

	if err := s.repo.Insert(ctx, activity); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}

	metrics.ActivitiesRecordedTotal.WithLabelValues(in.Type).Inc()
	metrics.ActivityProcessingDuration.Observe(time.Since(start).Seconds())

	s.log.Debug().
		Str("project_id", in.ProjectID).
		Str("type", in.Type).
		Msg("activity recorded")
	return nil
}

func (s *activityService) ListByProject(ctx context.Context, projectID string, limit int) ([]domain.Activity, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	return s.repo.ListByProject(ctx, projectID, limit)
}
