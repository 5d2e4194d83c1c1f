package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"dailydiet/internal/handler"
	"dailydiet/internal/session"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	resolver *session.Resolver,
	userHandler *handler.UserHandler,
	mealHandler *handler.MealHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Registration is the only route reachable without a session.
	e.POST("/users", userHandler.Register)

	sessioned := e.Group("", resolver.Middleware())
	sessioned.GET("/users", userHandler.ListUsers)

	sessioned.POST("/meals", mealHandler.CreateMeal)
	sessioned.GET("/meals", mealHandler.ListMeals)
	sessioned.GET("/meals/summary", mealHandler.GetSummary)
	sessioned.GET("/meals/:mealId", mealHandler.GetMeal)
	sessioned.PUT("/meals/:mealId", mealHandler.UpdateMeal)
	sessioned.DELETE("/meals/:mealId", mealHandler.DeleteMeal)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
