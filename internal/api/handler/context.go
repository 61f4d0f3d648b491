package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/projecthub/projecthub-api/internal/api/middleware"
)

// ctxSubject extracts the verified token subject injected by the Auth
// middleware. An empty subject means the middleware did not run for this
// route, which is a wiring bug surfaced as 401 rather than a panic.
func ctxSubject(c echo.Context) (string, error) {
	subject, _ := c.Get(middleware.SubjectKey).(string)
	if subject == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return subject, nil
}
