package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrMealNotFound is returned when a meal does not exist or is owned by
	// another session. The two cases are indistinguishable on purpose.
	ErrMealNotFound = errors.New("meal not found")
	// ErrSessionRequired is returned when no valid session token accompanies
	// the request.
	ErrSessionRequired = errors.New("session token missing or invalid")
	// ErrInvalidDate is returned when a meal date cannot be parsed.
	ErrInvalidDate = errors.New("invalid meal date")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrMealNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "MEAL_NOT_FOUND")
	case errors.Is(err, ErrSessionRequired):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHORIZED")
	case errors.Is(err, ErrInvalidDate):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_DATE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
