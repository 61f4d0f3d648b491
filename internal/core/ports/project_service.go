package ports

import (
	"context"

	"github.com/projecthub/projecthub-api/internal/core/domain"
)

// CreateProjectInput carries the data needed to create a project.
type CreateProjectInput struct {
	Name        string
	Description string
	OwnerID     string
}

// UpdateProjectInput carries a partial project update. Nil fields are left
// unchanged.
type UpdateProjectInput struct {
	Name        *string
	Description *string
}

// ProjectService implements the project use cases. Mutations are restricted
// to the owning user.
type ProjectService interface {
	Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	Get(ctx context.Context, id, actorID string) (*domain.Project, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Project, error)
	Update(ctx context.Context, id, actorID string, input UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id, actorID string) error
}
