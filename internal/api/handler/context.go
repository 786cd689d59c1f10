package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/advise-clothes/backend/internal/api/middleware"
)

// sessionAccount extracts the account injected by the Session middleware.
// An empty value means the middleware did not run; reject with 401.
func sessionAccount(c echo.Context) (string, error) {
	account, _ := c.Get(middleware.ContextKeyAccount).(string)
	if account == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return account, nil
}
