package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/projecthub/projecthub-api/internal/api/metrics"
	"github.com/projecthub/projecthub-api/internal/validation"
)

// DecisionKind classifies the outcome of gating one request.
type DecisionKind int

const (
	// DecisionPass means the route is not gated; the request proceeds
	// untouched.
	DecisionPass DecisionKind = iota
	// DecisionForward means the body parsed and every rule passed.
	DecisionForward
	// DecisionRejectParse means the body could not be deserialised.
	DecisionRejectParse
	// DecisionRejectValidation means one or more rules failed.
	DecisionRejectValidation
)

// Decision is the result of Gate.Evaluate for a single request. Errors is
// populated only for DecisionRejectValidation, in rule declaration order.
type Decision struct {
	Kind   DecisionKind
	Errors []validation.FieldError
}

type routeKey struct {
	method string
	path   string
}

// Gate runs schema validation in front of a static set of unauthenticated
// routes before their handlers execute. It performs no business logic: a
// forwarded request reaches its handler with the original body intact.
type Gate struct {
	routes map[routeKey]validation.BodyCheck
}

// NewGate creates an empty gate. Register routes with On before use.
func NewGate() *Gate {
	return &Gate{routes: make(map[routeKey]validation.BodyCheck)}
}

// On binds a body check to an exact (method, path) pair and returns the gate
// for chaining.
func (g *Gate) On(method, path string, check validation.BodyCheck) *Gate {
	g.routes[routeKey{method: method, path: path}] = check
	return g
}

// Evaluate applies the gate to one request, independent of any HTTP
// framework. Requests to unregistered routes pass through.
func (g *Gate) Evaluate(method, path string, body []byte) Decision {
	check, ok := g.routes[routeKey{method: method, path: path}]
	if !ok {
		return Decision{Kind: DecisionPass}
	}

	outcome, err := check(body)
	if err != nil {
		return Decision{Kind: DecisionRejectParse}
	}
	if !outcome.Valid {
		return Decision{Kind: DecisionRejectValidation, Errors: outcome.Errors}
	}
	return Decision{Kind: DecisionForward}
}

// Middleware adapts the gate to echo. The body is buffered and restored so
// the downstream handler reads the same bytes the gate saw.
func (g *Gate) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			// Fast path: nothing registered for this route.
			if _, gated := g.routes[routeKey{method: req.Method, path: req.URL.Path}]; !gated {
				return next(c)
			}

			body, err := io.ReadAll(req.Body)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
			}
			req.Body = io.NopCloser(bytes.NewReader(body))

			switch decision := g.Evaluate(req.Method, req.URL.Path, body); decision.Kind {
			case DecisionRejectParse:
				metrics.GateRejectionsTotal.WithLabelValues(req.URL.Path, "parse").Inc()
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			case DecisionRejectValidation:
				metrics.GateRejectionsTotal.WithLabelValues(req.URL.Path, "validation").Inc()
				return c.JSON(http.StatusBadRequest, map[string]any{"errors": decision.Errors})
			default:
				return next(c)
			}
		}
	}
}
