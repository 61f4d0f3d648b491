package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/projecthub/projecthub-api/internal/core/domain"
	"github.com/projecthub/projecthub-api/internal/core/ports"
)

type projectService struct {
	repo       ports.ProjectRepository
	activities ports.ActivityRecorder
	log        zerolog.Logger
}

// NewProjectService returns a ProjectService implementation.
func NewProjectService(repo ports.ProjectRepository, activities ports.ActivityRecorder, log zerolog.Logger) ports.ProjectService {
	return &projectService{repo: repo, activities: activities, log: log}
}

func (s *projectService) Create(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	now := time.Now().UTC()
	project := &domain.Project{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		OwnerID:     input.OwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.record(project, input.OwnerID, domain.ActivityProjectCreated, "project created")
	s.log.Info().Str("project_id", project.ID).Str("owner_id", input.OwnerID).Msg("project created")
	return project, nil
}

func (s *projectService) Get(ctx context.Context, id, actorID string) (*domain.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project.OwnerID != actorID {
		return nil, domain.ErrForbidden
	}
	return project, nil
}

func (s *projectService) ListByOwner(ctx context.Context, ownerID string) ([]domain.Project, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *projectService) Update(ctx context.Context, id, actorID string, input ports.UpdateProjectInput) (*domain.Project, error) {
	project, err := s.Get(ctx, id, actorID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	project.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	s.record(project, actorID, domain.ActivityProjectUpdated, "project updated")
	return project, nil
}

func (s *projectService) Delete(ctx context.Context, id, actorID string) error {
	if _, err := s.Get(ctx, id, actorID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	s.log.Info().Str("project_id", id).Str("actor_id", actorID).Msg("project deleted")
	return nil
}

func (s *projectService) record(project *domain.Project, actorID, activityType, message string) {
	if s.activities == nil {
		return
	}
	s.activities.Enqueue(ports.ActivityInput{
		ProjectID: project.ID,
		ActorID:   actorID,
		Type:      activityType,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}
