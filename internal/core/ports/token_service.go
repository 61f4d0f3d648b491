package ports

import "github.com/projecthub/projecthub-api/internal/core/domain"

// TokenService issues and verifies signed bearer tokens.
//
// Verify deliberately collapses every failure mode (bad signature, wrong
// issuer or audience, expired, malformed) into a single false result so that
// the caller cannot distinguish why a token was rejected.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	Verify(token string) (subject string, ok bool)
}
