package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/projecthub/projecthub-api/internal/api/metrics"
	"github.com/projecthub/projecthub-api/internal/core/ports"
)

// SubjectKey is the echo context key under which Auth stores the verified
// token subject.
const SubjectKey = "subject"

// Auth validates the bearer token and injects the subject into context.
// Every failure mode returns the same 401 body: the caller learns nothing
// about why the token was rejected.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			subject, ok := tokens.Verify(strings.TrimSpace(parts[1]))
			if !ok {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()
			c.Set(SubjectKey, subject)
			return next(c)
		}
	}
}
