package ports

import (
	"context"

	"github.com/projecthub/projecthub-api/internal/core/domain"
)

// CreateTaskInput carries the data needed to create a task.
type CreateTaskInput struct {
	ProjectID   string
	Title       string
	Description string
	AssigneeID  string
	ActorID     string
}

// UpdateTaskInput carries a partial task update. Nil fields are left
// unchanged.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
	AssigneeID  *string
}

// TaskService implements the task use cases inside a project.
type TaskService interface {
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	Get(ctx context.Context, projectID, taskID, actorID string) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID, actorID string) ([]domain.Task, error)
	Update(ctx context.Context, projectID, taskID, actorID string, input UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, projectID, taskID, actorID string) error
}
