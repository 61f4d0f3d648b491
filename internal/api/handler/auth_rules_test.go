package handler

import (
	"strings"
	"testing"

	"github.com/projecthub/projecthub-api/internal/validation"
)

func messages(errs []validation.FieldError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Message
	}
	return out
}

func TestRegisterRules_ValidBody(t *testing.T) {
	out := validation.Evaluate(registerRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	}, RegisterRules())
	if !out.Valid {
		t.Fatalf("expected valid, got errors %+v", out.Errors)
	}
}

func TestRegisterRules_CollectsAllFailuresInOrder(t *testing.T) {
	out := validation.Evaluate(registerRequest{
		Name:     "ab",
		Email:    "bad",
		Password: "123",
	}, RegisterRules())
	if out.Valid {
		t.Fatalf("expected invalid")
	}

	want := []string{
		"name must be at least 3 characters",
		"email must be a valid email address",
		"password must be at least 6 characters",
	}
	got := messages(out.Errors)
	if len(got) != len(want) {
		t.Fatalf("expected %d errors, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("error %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestRegisterRules_EmptyFieldsYieldOneMessageEach(t *testing.T) {
	out := validation.Evaluate(registerRequest{}, RegisterRules())
	if out.Valid {
		t.Fatalf("expected invalid")
	}

	// Guards keep the length and format rules quiet while the field is
	// absent, so each empty field reports only its required message.
	want := []string{
		"name is required",
		"email is required",
		"password is required",
	}
	got := messages(out.Errors)
	if len(got) != len(want) {
		t.Fatalf("expected %d errors, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("error %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestRegisterRules_BoundaryLengths(t *testing.T) {
	for _, tc := range []struct {
		name  string
		body  registerRequest
		valid bool
	}{
		{"name at min", registerRequest{Name: "abc", Email: "a@b.co", Password: "secret"}, true},
		{"name over max", registerRequest{Name: strings.Repeat("x", 51), Email: "a@b.co", Password: "secret"}, false},
		{"email over max", registerRequest{Name: "alice", Email: strings.Repeat("x", 95) + "@b.com", Password: "secret"}, false},
		{"password at min", registerRequest{Name: "alice", Email: "a@b.co", Password: "123456"}, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			out := validation.Evaluate(tc.body, RegisterRules())
			if out.Valid != tc.valid {
				t.Fatalf("expected valid=%v, got %+v", tc.valid, out.Errors)
			}
		})
	}
}

func TestRegisterRules_WhitespaceOnlyIsAbsent(t *testing.T) {
	out := validation.Evaluate(registerRequest{
		Name:     "   ",
		Email:    "alice@example.com",
		Password: "secret123",
	}, RegisterRules())
	got := messages(out.Errors)
	if len(got) != 1 || got[0] != "name is required" {
		t.Fatalf("expected only the required message, got %v", got)
	}
}

func TestLoginRules(t *testing.T) {
	out := validation.Evaluate(loginRequest{Name: "alice", Password: "secret"}, LoginRules())
	if !out.Valid {
		t.Fatalf("expected valid, got %+v", out.Errors)
	}

	out = validation.Evaluate(loginRequest{}, LoginRules())
	want := []string{"name is required", "password is required"}
	got := messages(out.Errors)
	if len(got) != len(want) {
		t.Fatalf("expected %d errors, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("error %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestRegisterBodyCheck_ParseFailure(t *testing.T) {
	if _, err := RegisterBodyCheck()([]byte("{broken")); err == nil {
		t.Fatalf("expected parse error for malformed body")
	}
}
