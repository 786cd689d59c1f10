package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/advise-clothes/backend/internal/api/metrics"
	"github.com/advise-clothes/backend/internal/core/domain"
	"github.com/advise-clothes/backend/internal/core/ports"
)

// SessionHandler handles login sessions.
type SessionHandler struct {
	service ports.SessionService
}

func NewSessionHandler(service ports.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// Create logs a live user in and opens a session.
//
// @Summary      Open a session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        body  body      createSessionRequest  true  "Credentials"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /sessions [post]
func (h *SessionHandler) Create(c echo.Context) error {
	const action = "create"

	var req createSessionRequest
	if err := c.Bind(&req); err != nil {
		metrics.SessionsTotal.WithLabelValues(action, metrics.ResultInvalid).Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.SessionsTotal.WithLabelValues(action, metrics.ResultInvalid).Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	session, err := h.service.Create(c.Request().Context(), req.Account, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.SessionsTotal.WithLabelValues(action, metrics.ResultInvalid).Inc()
		} else {
			metrics.SessionsTotal.WithLabelValues(action, metrics.ResultError).Inc()
		}
		return err
	}

	metrics.SessionsTotal.WithLabelValues(action, metrics.ResultOK).Inc()
	return c.JSON(http.StatusCreated, toSessionResponse(session))
}

// Get returns the session behind key.
//
// @Summary      Look a session up
// @Tags         sessions
// @Produce      json
// @Param        key  path      string  true  "Session key"
// @Success      200  {object}  sessionResponse
// @Success      204  "Unknown or expired session"
// @Failure      500  {object}  errorResponse
// @Router       /sessions/{key} [get]
func (h *SessionHandler) Get(c echo.Context) error {
	const action = "lookup"

	session, err := h.service.FindBySessionKey(c.Request().Context(), c.Param("key"))
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			metrics.SessionsTotal.WithLabelValues(action, metrics.ResultNotFound).Inc()
			return c.NoContent(http.StatusNoContent)
		}
		metrics.SessionsTotal.WithLabelValues(action, metrics.ResultError).Inc()
		return err
	}

	metrics.SessionsTotal.WithLabelValues(action, metrics.ResultOK).Inc()
	return c.JSON(http.StatusOK, toSessionResponse(session))
}

// Delete closes the session and returns it.
//
// @Summary      Close a session
// @Tags         sessions
// @Produce      json
// @Param        key  path      string  true  "Session key"
// @Success      200  {object}  sessionResponse
// @Success      204  "Unknown or expired session"
// @Failure      500  {object}  errorResponse
// @Router       /sessions/{key} [delete]
func (h *SessionHandler) Delete(c echo.Context) error {
	const action = "delete"

	session, err := h.service.Delete(c.Request().Context(), c.Param("key"))
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			metrics.SessionsTotal.WithLabelValues(action, metrics.ResultNotFound).Inc()
			return c.NoContent(http.StatusNoContent)
		}
		metrics.SessionsTotal.WithLabelValues(action, metrics.ResultError).Inc()
		return err
	}

	metrics.SessionsTotal.WithLabelValues(action, metrics.ResultOK).Inc()
	return c.JSON(http.StatusOK, toSessionResponse(session))
}
