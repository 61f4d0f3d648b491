package handler

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/projecthub/projecthub-api/internal/validation"
)

// emailCheck reuses go-playground's email format tag for single-value checks
// inside gate rules. The instance is shared and safe for concurrent use.
var emailCheck = validator.New()

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}

// RegisterRules is the ordered rule set for the register body. Guarded rules
// only apply once the field is present, so an absent field produces exactly
// one message.
func RegisterRules() []validation.Rule[registerRequest] {
	return []validation.Rule[registerRequest]{
		{
			Field:   "name",
			Message: "name is required",
			Check:   func(r registerRequest) bool { return present(r.Name) },
		},
		{
			Field:   "name",
			Message: "name must be at least 3 characters",
			Guard:   func(r registerRequest) bool { return present(r.Name) },
			Check:   func(r registerRequest) bool { return len(r.Name) >= 3 },
		},
		{
			Field:   "name",
			Message: "name must be at most 50 characters",
			Guard:   func(r registerRequest) bool { return present(r.Name) },
			Check:   func(r registerRequest) bool { return len(r.Name) <= 50 },
		},
		{
			Field:   "email",
			Message: "email is required",
			Check:   func(r registerRequest) bool { return present(r.Email) },
		},
		{
			Field:   "email",
			Message: "email must be a valid email address",
			Guard:   func(r registerRequest) bool { return present(r.Email) },
			Check:   func(r registerRequest) bool { return emailCheck.Var(r.Email, "email") == nil },
		},
		{
			Field:   "email",
			Message: "email must be at most 100 characters",
			Guard:   func(r registerRequest) bool { return present(r.Email) },
			Check:   func(r registerRequest) bool { return len(r.Email) <= 100 },
		},
		{
			Field:   "password",
			Message: "password is required",
			Check:   func(r registerRequest) bool { return present(r.Password) },
		},
		{
			Field:   "password",
			Message: "password must be at least 6 characters",
			Guard:   func(r registerRequest) bool { return present(r.Password) },
			Check:   func(r registerRequest) bool { return len(r.Password) >= 6 },
		},
	}
}

// LoginRules is the ordered rule set for the login body.
func LoginRules() []validation.Rule[loginRequest] {
	return []validation.Rule[loginRequest]{
		{
			Field:   "name",
			Message: "name is required",
			Check:   func(r loginRequest) bool { return present(r.Name) },
		},
		{
			Field:   "password",
			Message: "password is required",
			Check:   func(r loginRequest) bool { return present(r.Password) },
		},
	}
}

// RegisterBodyCheck and LoginBodyCheck bind the rule sets to their JSON
// bodies for the validation gate.
func RegisterBodyCheck() validation.BodyCheck {
	return validation.BindJSON(RegisterRules())
}

func LoginBodyCheck() validation.BodyCheck {
	return validation.BindJSON(LoginRules())
}
