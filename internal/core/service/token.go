package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/projecthub/projecthub-api/internal/core/domain"
	"github.com/projecthub/projecthub-api/internal/infrastructure/config"
)

// ErrNoSubject is returned by Issue when the user carries no identity to
// put in the subject claim.
var ErrNoSubject = errors.New("token: user has no email for subject claim")

// tokenClaims is the signed payload. The registered claims carry subject
// (email), issuer, audience, iat and exp; the custom claims mirror the
// identity fields the UI renders.
type tokenClaims struct {
	Email  string `json:"email"`
	UserID string `json:"nameid"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// JwtTokenService issues and verifies HS256-signed bearer tokens. It is
// stateless over an immutable JwtConfig: one instance is constructed at
// startup and shared by every request.
type JwtTokenService struct {
	key      []byte
	issuer   string
	audience string
	expiry   time.Duration
}

// NewJwtTokenService builds the service from validated configuration.
// Callers must have run cfg.Validate() during startup.
func NewJwtTokenService(cfg config.JwtConfig) *JwtTokenService {
	return &JwtTokenService{
		key:      []byte(cfg.Key),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		expiry:   time.Duration(cfg.TokenExpirationInMinutes) * time.Minute,
	}
}

// Issue signs a token for user. The subject is the user's email; issuance is
// rejected when it is blank.
func (s *JwtTokenService) Issue(user *domain.User) (string, error) {
	if user == nil || user.Email == "" {
		return "", ErrNoSubject
	}

	now := time.Now().UTC()
	claims := tokenClaims{
		Email:  user.Email,
		UserID: user.ID,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

// Verify checks signature, issuer, audience and the iat/exp window with zero
// clock-skew tolerance; expiry is exact. Every failure mode collapses into
// ok=false so callers cannot tell why a token was rejected.
func (s *JwtTokenService) Verify(token string) (string, bool) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (interface{}, error) {
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return s.key, nil
		},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}
