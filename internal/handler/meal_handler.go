package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"dailydiet/internal/errors"
	"dailydiet/internal/model"
	"dailydiet/internal/service"
	"dailydiet/internal/session"
)

// mealDateLayout matches the storage precision of meal dates.
const mealDateLayout = "2006-01-02 15:04:05"

// MealHandler handles meal CRUD and summary endpoints.
type MealHandler struct {
	svc service.MealService
}

// NewMealHandler creates a meal handler.
func NewMealHandler(svc service.MealService) *MealHandler {
	return &MealHandler{svc: svc}
}

// MealRequest represents a meal create or update payload.
type MealRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	IsOnDiet    *bool  `json:"isOnDiet" validate:"required"`
	Date        string `json:"date" validate:"required"`
}

// MealsResponse wraps a meal listing.
type MealsResponse struct {
	Meals []model.Meal `json:"meals"`
}

// MealResponse wraps a single meal.
type MealResponse struct {
	Meal model.Meal `json:"meal"`
}

// SummaryResponse wraps the dieting statistics.
type SummaryResponse struct {
	Summary service.Summary `json:"summary"`
}

// parseMealDate accepts RFC 3339 or the storage layout and truncates to
// whole seconds.
func parseMealDate(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, mealDateLayout} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Truncate(time.Second), nil
		}
	}
	return time.Time{}, errors.ErrInvalidDate
}

func (h *MealHandler) bindMealRequest(c echo.Context) (service.MealInput, error) {
	var req MealRequest
	if err := c.Bind(&req); err != nil {
		return service.MealInput{}, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return service.MealInput{}, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}
	date, err := parseMealDate(req.Date)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return service.MealInput{}, echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return service.MealInput{
		Name:        req.Name,
		Description: req.Description,
		IsOnDiet:    *req.IsOnDiet,
		Date:        date,
	}, nil
}

func mealIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("mealId"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid meal id",
			Code:  "INVALID_UUID",
		})
	}
	return id, nil
}

func sessionUser(c echo.Context) (*model.User, error) {
	user, ok := session.UserFromContext(c.Request().Context())
	if !ok {
		httpErr := errors.MapErrorToHTTP(errors.ErrSessionRequired)
		return nil, echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return user, nil
}

// CreateMeal godoc
// @Summary Log a meal
// @Tags meals
// @Accept json
// @Produce json
// @Param request body MealRequest true "Meal data"
// @Success 201
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /meals [post]
func (h *MealHandler) CreateMeal(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}
	input, err := h.bindMealRequest(c)
	if err != nil {
		return err
	}

	if _, err := h.svc.CreateMeal(c.Request().Context(), user.ID, input); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusCreated)
}

// ListMeals godoc
// @Summary List the caller's meals ordered by date
// @Tags meals
// @Produce json
// @Success 200 {object} MealsResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /meals [get]
func (h *MealHandler) ListMeals(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	meals, err := h.svc.ListMeals(c.Request().Context(), user.ID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MealsResponse{Meals: meals})
}

// GetMeal godoc
// @Summary Get one of the caller's meals
// @Tags meals
// @Produce json
// @Param mealId path string true "Meal ID"
// @Success 200 {object} MealResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /meals/{mealId} [get]
func (h *MealHandler) GetMeal(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}
	mealID, err := mealIDParam(c)
	if err != nil {
		return err
	}

	meal, err := h.svc.GetMeal(c.Request().Context(), mealID, user.ID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MealResponse{Meal: *meal})
}

// UpdateMeal godoc
// @Summary Update one of the caller's meals
// @Tags meals
// @Accept json
// @Param mealId path string true "Meal ID"
// @Param request body MealRequest true "Meal data"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /meals/{mealId} [put]
func (h *MealHandler) UpdateMeal(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}
	mealID, err := mealIDParam(c)
	if err != nil {
		return err
	}
	input, err := h.bindMealRequest(c)
	if err != nil {
		return err
	}

	if err := h.svc.UpdateMeal(c.Request().Context(), mealID, user.ID, input); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteMeal godoc
// @Summary Delete one of the caller's meals
// @Tags meals
// @Param mealId path string true "Meal ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /meals/{mealId} [delete]
func (h *MealHandler) DeleteMeal(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}
	mealID, err := mealIDParam(c)
	if err != nil {
		return err
	}

	if err := h.svc.DeleteMeal(c.Request().Context(), mealID, user.ID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// GetSummary godoc
// @Summary Get the caller's dieting statistics
// @Tags meals
// @Produce json
// @Success 200 {object} SummaryResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /meals/summary [get]
func (h *MealHandler) GetSummary(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	summary, err := h.svc.Summary(c.Request().Context(), user.ID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, SummaryResponse{Summary: *summary})
}
