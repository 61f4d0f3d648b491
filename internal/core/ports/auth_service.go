package ports

import (
	"context"

	"github.com/projecthub/projecthub-api/internal/core/domain"
)

// AuthService implements registration and login on top of the user
// repository, the password hasher and the token service.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, name, password string) (string, *domain.User, error)
}
