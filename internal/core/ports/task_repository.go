package ports

import (
	"context"

	"github.com/projecthub/projecthub-api/internal/core/domain"
)

// TaskRepository defines the persistence interface for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id string) error
}
