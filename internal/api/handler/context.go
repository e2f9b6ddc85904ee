package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/colonialstours/tours-api/internal/api/middleware"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a non-empty role proves the
// middleware ran, and every protected operation needs a subject.
func ctxIdentity(c echo.Context) (userID, role string, err error) {
	role, _ = c.Get(middleware.CtxRole).(string)
	userID, _ = c.Get(middleware.CtxUserID).(string)
	if role == "" || userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, role, nil
}

// ctxViewerID returns the caller's subject when a token was decoded, or
// empty for anonymous requests (OptionalAuth routes).
func ctxViewerID(c echo.Context) string {
	id, _ := c.Get(middleware.CtxUserID).(string)
	return id
}
