package ports

import (
	"context"

	"github.com/projecthub/projecthub-api/internal/core/domain"
)

// ProjectRepository defines the persistence interface for projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id string) error
}
