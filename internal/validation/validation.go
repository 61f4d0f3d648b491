// Package validation implements a generic rule-chain evaluator. A rule set is
// an ordered list of named field checks; evaluation runs every rule and
// collects every failure, so clients can render all field errors at once and
// tests can assert on a deterministic message order.
package validation

import "encoding/json"

// Rule is a single pure predicate over an input of type T.
//
// Guard, when non-nil, decides whether Check applies at all: a rule whose
// guard returns false is treated as passing. This is how conditional
// constraints ("only check max length when the field is present") are
// expressed without a separate mechanism.
type Rule[T any] struct {
	Field   string
	Message string
	Guard   func(T) bool
	Check   func(T) bool
}

// FieldError is one failed rule, scoped to a field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Outcome is the result of evaluating a rule set. Errors preserves rule
// declaration order. A fresh Outcome is produced per evaluation.
type Outcome struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors,omitempty"`
}

// Evaluate runs every rule against input in declaration order. It never
// short-circuits: all failing rules contribute a FieldError.
func Evaluate[T any](input T, rules []Rule[T]) Outcome {
	out := Outcome{Valid: true}
	for _, r := range rules {
		if r.Guard != nil && !r.Guard(input) {
			continue
		}
		if !r.Check(input) {
			out.Valid = false
			out.Errors = append(out.Errors, FieldError{Field: r.Field, Message: r.Message})
		}
	}
	return out
}

// BodyCheck deserialises a raw request body and evaluates it against a rule
// set. A non-nil error means the body could not be parsed; rule failures are
// reported through the Outcome instead.
type BodyCheck func(body []byte) (Outcome, error)

// BindJSON adapts a typed rule set into a BodyCheck over raw JSON bytes.
func BindJSON[T any](rules []Rule[T]) BodyCheck {
	return func(body []byte) (Outcome, error) {
		var input T
		if err := json.Unmarshal(body, &input); err != nil {
			return Outcome{}, err
		}
		return Evaluate(input, rules), nil
	}
}
