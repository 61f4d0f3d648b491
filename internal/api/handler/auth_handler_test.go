package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/projecthub/projecthub-api/internal/core/domain"
)

type stubAuthService struct {
	registerUser *domain.User
	registerErr  error
	loginToken   string
	loginUser    *domain.User
	loginErr     error
}

func (s *stubAuthService) Register(_ context.Context, _, _, _ string) (*domain.User, error) {
	return s.registerUser, s.registerErr
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (string, *domain.User, error) {
	return s.loginToken, s.loginUser, s.loginErr
}

func newAuthContext(t *testing.T, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandlerRegister_Created(t *testing.T) {
	user := &domain.User{ID: "u-1", Name: "alice", Email: "alice@example.com"}
	h := NewAuthHandler(&stubAuthService{registerUser: user})

	c, rec := newAuthContext(t, "/api/auth/register", `{"name":"alice","email":"alice@example.com","password":"secret123"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if resp.User == nil || resp.User.Name != "alice" {
		t.Fatalf("unexpected user in response: %+v", resp.User)
	}
	if resp.Token != "" {
		t.Fatalf("register must not return a token, got %q", resp.Token)
	}
}

func TestAuthHandlerRegister_Conflicts(t *testing.T) {
	for _, tc := range []struct {
		name string
		err  error
		msg  string
	}{
		{"name taken", domain.ErrUserExists, "username already taken"},
		{"email taken", domain.ErrEmailTaken, "email already registered"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			h := NewAuthHandler(&stubAuthService{registerErr: tc.err})

			c, rec := newAuthContext(t, "/api/auth/register", `{"name":"alice","email":"alice@example.com","password":"secret123"}`)
			if err := h.Register(c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}

			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json response: %v", err)
			}
			if resp.Error != tc.msg {
				t.Fatalf("expected %q, got %q", tc.msg, resp.Error)
			}
		})
	}
}

func TestAuthHandlerRegister_UnexpectedErrorPropagates(t *testing.T) {
	wantErr := context.DeadlineExceeded
	h := NewAuthHandler(&stubAuthService{registerErr: wantErr})

	c, _ := newAuthContext(t, "/api/auth/register", `{"name":"alice","email":"alice@example.com","password":"secret123"}`)
	if err := h.Register(c); err != wantErr {
		t.Fatalf("expected error to propagate to the error handler, got %v", err)
	}
}

func TestAuthHandlerLogin_OK(t *testing.T) {
	user := &domain.User{ID: "u-1", Name: "alice", Email: "alice@example.com"}
	h := NewAuthHandler(&stubAuthService{loginToken: "signed.jwt.token", loginUser: user})

	c, rec := newAuthContext(t, "/api/auth/login", `{"name":"alice","password":"secret123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if resp.Token != "signed.jwt.token" {
		t.Fatalf("unexpected token: %q", resp.Token)
	}
	if resp.User == nil || resp.User.Email != "alice@example.com" {
		t.Fatalf("unexpected user in response: %+v", resp.User)
	}
}

func TestAuthHandlerLogin_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})

	c, rec := newAuthContext(t, "/api/auth/login", `{"name":"alice","password":"wrong"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if resp.Error != domain.ErrInvalidCredentials.Error() {
		t.Fatalf("expected uniform credentials message, got %q", resp.Error)
	}
}

func TestAuthHandlerLogin_Throttled(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrTooManyAttempts})

	c, rec := newAuthContext(t, "/api/auth/login", `{"name":"alice","password":"secret123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}
