package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/advise-clothes/backend/internal/api/metrics"
	"github.com/advise-clothes/backend/internal/core/domain"
	"github.com/advise-clothes/backend/internal/core/ports"
)

// UserHandler handles HTTP requests for the user lifecycle.
//
// Every 400 carries the same empty user body; the cause is only visible in
// the log line and the result label of UserLifecycleTotal.
type UserHandler struct {
	service ports.UserService
	log     zerolog.Logger
}

func NewUserHandler(service ports.UserService, log zerolog.Logger) *UserHandler {
	return &UserHandler{service: service, log: log}
}

// Find looks a live user up by the query filter.
//
// @Summary      Find a live user
// @Description  Conjunctive lookup on the given fields. When password is set the stored hash must match.
// @Tags         users
// @Produce      json
// @Param        account      query     string  false  "Account"
// @Param        password     query     string  false  "Password"
// @Param        email        query     string  false  "Email"
// @Param        phoneNumber  query     string  false  "Phone number"
// @Success      200          {object}  userResponse
// @Success      204          "No live user matches"
// @Failure      500          {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) Find(c echo.Context) error {
	filter := ports.UserFilter{
		Account:     c.QueryParam("account"),
		Email:       c.QueryParam("email"),
		PhoneNumber: c.QueryParam("phoneNumber"),
	}
	ctx := c.Request().Context()

	var (
		user *domain.User
		err  error
	)
	// A present but empty password is still checked.
	if query := c.QueryParams(); query.Has("password") {
		user, err = h.service.FindLiveWithPassword(ctx, filter, query.Get("password"))
	} else {
		user, err = h.service.FindLive(ctx, filter)
	}
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.NoContent(http.StatusNoContent)
		}
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// List returns every stored user, deleted ones included.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}   userResponse
// @Failure      500  {object}  errorResponse
// @Router       /users/list [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponses(users))
}

// Create registers a new user.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  userResponse  "Empty user: invalid body or duplicate live account"
// @Failure      500   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	const action = "create"

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return h.reject(c, action, metrics.ResultInvalid, err)
	}
	if err := c.Validate(&req); err != nil {
		return h.reject(c, action, metrics.ResultInvalid, err)
	}

	user, err := h.service.Create(c.Request().Context(), toCreateUserInput(req))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			return h.reject(c, action, metrics.ResultDuplicate, err)
		case errors.Is(err, domain.ErrInvalidUser):
			return h.reject(c, action, metrics.ResultInvalid, err)
		}
		metrics.UserLifecycleTotal.WithLabelValues(action, metrics.ResultError).Inc()
		return err
	}

	metrics.UserLifecycleTotal.WithLabelValues(action, metrics.ResultOK).Inc()
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Update merges the submitted fields into the live user.
//
// @Summary      Update a live user
// @Description  Only the submitted fields change; absent or null fields keep their stored value.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        account  path      string             true  "Account"
// @Param        body     body      updateUserRequest  true  "Fields to change"
// @Success      200      {object}  userResponse
// @Success      204      "No live user with this account"
// @Failure      400      {object}  userResponse  "Empty user: invalid body"
// @Failure      500      {object}  errorResponse
// @Router       /users/{account} [put]
func (h *UserHandler) Update(c echo.Context) error {
	return h.update(c, c.Param("account"))
}

// UpdateMe is Update for the account of the current session.
//
// @Summary      Update the session user
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        X-Session-Key  header    string             true  "Session key"
// @Param        body           body      updateUserRequest  true  "Fields to change"
// @Success      200            {object}  userResponse
// @Success      204            "The session user is no longer live"
// @Failure      400            {object}  userResponse
// @Failure      401            {object}  errorResponse
// @Router       /me [put]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	account, err := sessionAccount(c)
	if err != nil {
		return err
	}
	return h.update(c, account)
}

func (h *UserHandler) update(c echo.Context, account string) error {
	const action = "update"

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return h.reject(c, action, metrics.ResultInvalid, err)
	}
	if err := c.Validate(&req); err != nil {
		return h.reject(c, action, metrics.ResultInvalid, err)
	}

	user, err := h.service.Update(c.Request().Context(), account, toUserPatch(req))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			metrics.UserLifecycleTotal.WithLabelValues(action, metrics.ResultNotFound).Inc()
			return c.NoContent(http.StatusNoContent)
		case errors.Is(err, domain.ErrInvalidUser):
			return h.reject(c, action, metrics.ResultInvalid, err)
		}
		metrics.UserLifecycleTotal.WithLabelValues(action, metrics.ResultError).Inc()
		return err
	}

	metrics.UserLifecycleTotal.WithLabelValues(action, metrics.ResultOK).Inc()
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Me returns the live user of the current session.
//
// @Summary      Current session user
// @Tags         sessions
// @Produce      json
// @Param        X-Session-Key  header    string  true  "Session key"
// @Success      200            {object}  userResponse
// @Success      204            "The session user is no longer live"
// @Failure      401            {object}  errorResponse
// @Router       /me [get]
func (h *UserHandler) Me(c echo.Context) error {
	account, err := sessionAccount(c)
	if err != nil {
		return err
	}

	user, err := h.service.FindLive(c.Request().Context(), ports.UserFilter{Account: account})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.NoContent(http.StatusNoContent)
		}
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Delete soft-deletes the live user.
//
// @Summary      Soft-delete a user
// @Tags         users
// @Produce      json
// @Param        account  path      string  true  "Account"
// @Success      200      {object}  userResponse  "deletedReason is 1"
// @Failure      400      {object}  userResponse  "Empty user: no live user with this account"
// @Failure      500      {object}  errorResponse
// @Router       /users/{account} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	const action = "delete"

	user, err := h.service.Delete(c.Request().Context(), c.Param("account"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrUserAlreadyDeleted) {
			return h.reject(c, action, metrics.ResultNotFound, err)
		}
		metrics.UserLifecycleTotal.WithLabelValues(action, metrics.ResultError).Inc()
		return err
	}

	metrics.UserLifecycleTotal.WithLabelValues(action, metrics.ResultOK).Inc()
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Restore makes a soft-deleted user live again.
//
// @Summary      Restore a user
// @Tags         users
// @Produce      json
// @Param        account  path      string  true  "Account"
// @Success      200      {object}  userResponse  "deletedReason is 0"
// @Success      204      "No user with this account"
// @Failure      500      {object}  errorResponse
// @Router       /users/{account}/reset [delete]
func (h *UserHandler) Restore(c echo.Context) error {
	const action = "restore"

	user, err := h.service.Restore(c.Request().Context(), c.Param("account"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.UserLifecycleTotal.WithLabelValues(action, metrics.ResultNotFound).Inc()
			return c.NoContent(http.StatusNoContent)
		}
		metrics.UserLifecycleTotal.WithLabelValues(action, metrics.ResultError).Inc()
		return err
	}

	metrics.UserLifecycleTotal.WithLabelValues(action, metrics.ResultOK).Inc()
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// reject answers 400 with the empty user body.
func (h *UserHandler) reject(c echo.Context, action, result string, cause error) error {
	metrics.UserLifecycleTotal.WithLabelValues(action, result).Inc()
	h.log.Info().
		Err(cause).
		Str("action", action).
		Str("result", result).
		Str("path", c.Path()).
		Msg("user request rejected")
	return c.JSON(http.StatusBadRequest, emptyUser)
}
