package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dailydiet/internal/errors"
	"dailydiet/internal/model"
	"dailydiet/internal/service"
	"dailydiet/internal/session"
)

// UserHandler handles registration and session-scoped user listing.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a user handler.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// UsersResponse wraps the users owned by a session.
type UsersResponse struct {
	Users []model.User `json:"users"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates a user under the caller's session, minting a session cookie when none is presented.
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	_, token, minted, err := h.svc.Register(c.Request().Context(), req.Name, req.Email, session.TokenFromRequest(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if minted {
		c.SetCookie(session.NewCookie(token))
	}
	return c.NoContent(http.StatusCreated)
}

// ListUsers godoc
// @Summary List users sharing the caller's session
// @Tags users
// @Produce json
// @Success 200 {object} UsersResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	user, ok := session.UserFromContext(c.Request().Context())
	if !ok {
		httpErr := errors.MapErrorToHTTP(errors.ErrSessionRequired)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	users, err := h.svc.ListBySession(c.Request().Context(), user.SessionID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, UsersResponse{Users: users})
}
