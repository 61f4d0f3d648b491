package ports

import (
	"context"

	"github.com/projecthub/projecthub-api/internal/core/domain"
)

// UserRepository defines the persistence interface for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByName(ctx context.Context, name string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
