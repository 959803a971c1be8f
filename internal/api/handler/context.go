package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crmsuite/user-management-api/internal/core/ports"
)

// ctxActor extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a present role proves
// the middleware ran, and an admin action without an actor id would leave an
// unattributable audit entry.
func ctxActor(c echo.Context) (ports.AdminActor, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return ports.AdminActor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	id, _ := c.Get("user_id").(string)
	if id == "" {
		return ports.AdminActor{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing user identity")
	}

	username, _ := c.Get("username").(string)
	return ports.AdminActor{ID: id, Username: username}, nil
}
