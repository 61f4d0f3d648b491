package service

import (
	"strings"
	"testing"

	"github.com/projecthub/projecthub-api/internal/core/domain"
	"github.com/projecthub/projecthub-api/internal/infrastructure/config"
)

func testJwtConfig() config.JwtConfig {
	return config.JwtConfig{
		Key:                      "0123456789abcdef0123456789abcdef",
		Issuer:                   "auth",
		Audience:                 "app",
		TokenExpirationInMinutes: 60,
	}
}

func testUser() *domain.User {
	return &domain.User{ID: "user-1", Name: "alice", Email: "alice@example.com"}
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewJwtTokenService(testJwtConfig())

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("expected three-part token, got %q", token)
	}

	subject, ok := svc.Verify(token)
	if !ok {
		t.Fatalf("freshly issued token did not verify")
	}
	if subject != "alice@example.com" {
		t.Fatalf("expected subject alice@example.com, got %q", subject)
	}
}

func TestTokenService_RejectsBlankSubject(t *testing.T) {
	svc := NewJwtTokenService(testJwtConfig())

	if _, err := svc.Issue(&domain.User{ID: "user-1", Name: "alice"}); err == nil {
		t.Fatalf("expected error for user without email")
	}
	if _, err := svc.Issue(nil); err == nil {
		t.Fatalf("expected error for nil user")
	}
}

func TestTokenService_Expired(t *testing.T) {
	cfg := testJwtConfig()
	cfg.TokenExpirationInMinutes = -1
	svc := NewJwtTokenService(cfg)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if subject, ok := svc.Verify(token); ok || subject != "" {
		t.Fatalf("expired token verified: (%q, %v)", subject, ok)
	}
}

func TestTokenService_TamperedPayload(t *testing.T) {
	svc := NewJwtTokenService(testJwtConfig())
	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	parts := strings.Split(token, ".")
	for i := 1; i <= 2; i++ { // payload and signature segments
		tampered := make([]string, 3)
		copy(tampered, parts)
		seg := []byte(tampered[i])
		if seg[0] == 'A' {
			seg[0] = 'B'
		} else {
			seg[0] = 'A'
		}
		tampered[i] = string(seg)
		if _, ok := svc.Verify(strings.Join(tampered, ".")); ok {
			t.Fatalf("tampered segment %d verified", i)
		}
	}
}

func TestTokenService_WrongKey(t *testing.T) {
	svc := NewJwtTokenService(testJwtConfig())
	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	other := testJwtConfig()
	other.Key = "ffffffffffffffffffffffffffffffff"
	if _, ok := NewJwtTokenService(other).Verify(token); ok {
		t.Fatalf("token signed with different key verified")
	}
}

func TestTokenService_WrongIssuerOrAudience(t *testing.T) {
	base := testJwtConfig()

	issuerCfg := base
	issuerCfg.Issuer = "someone-else"
	token, err := NewJwtTokenService(issuerCfg).Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, ok := NewJwtTokenService(base).Verify(token); ok {
		t.Fatalf("token with wrong issuer verified")
	}

	audCfg := base
	audCfg.Audience = "other-app"
	token, err = NewJwtTokenService(audCfg).Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, ok := NewJwtTokenService(base).Verify(token); ok {
		t.Fatalf("token with wrong audience verified")
	}
}

func TestTokenService_Garbage(t *testing.T) {
	svc := NewJwtTokenService(testJwtConfig())
	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, ok := svc.Verify(token); ok {
			t.Fatalf("garbage token %q verified", token)
		}
	}
}
