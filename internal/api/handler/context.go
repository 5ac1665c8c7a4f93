package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// principal extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a non-empty role proves the
// middleware ran.
func principal(c echo.Context) (username, role string, err error) {
	role, _ = c.Get("role").(string)
	if role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	username, _ = c.Get("username").(string)
	return username, role, nil
}
