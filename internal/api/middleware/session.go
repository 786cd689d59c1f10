package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/advise-clothes/backend/internal/core/domain"
	"github.com/advise-clothes/backend/internal/core/ports"
)

const (
	// HeaderSessionKey carries the opaque session key issued by POST /sessions.
	HeaderSessionKey = "X-Session-Key"

	// ContextKeyAccount holds the account of the resolved session.
	ContextKeyAccount = "session_account"
)

// Session resolves the session key header and puts the session's account
// into context.
func Session(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.Request().Header.Get(HeaderSessionKey)
			if key == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session key")
			}

			session, err := sessions.FindBySessionKey(c.Request().Context(), key)
			if err != nil {
				if errors.Is(err, domain.ErrSessionNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
				}
				return err
			}

			c.Set(ContextKeyAccount, session.Account)

			return next(c)
		}
	}
}
