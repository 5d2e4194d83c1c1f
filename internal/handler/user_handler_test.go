package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dailydiet/internal/model"
	"dailydiet/internal/session"
)

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, name, email, sessionID string) (*model.User, string, bool, error) {
	args := m.Called(ctx, name, email, sessionID)
	if args.Get(0) == nil {
		return nil, "", false, args.Error(3)
	}
	return args.Get(0).(*model.User), args.String(1), args.Bool(2), args.Error(3)
}

func (m *MockUserService) ListBySession(ctx context.Context, sessionID string) ([]model.User, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func newUserServer(svc *MockUserService, user *model.User) *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	h := NewUserHandler(svc)

	e.POST("/users", h.Register)
	e.GET("/users", h.ListUsers, identityMiddleware(user))
	return e
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == session.CookieName {
			return cookie
		}
	}
	return nil
}

func TestUserHandler_Register(t *testing.T) {
	t.Run("first registration sets the session cookie", func(t *testing.T) {
		svc := new(MockUserService)
		token := session.NewToken()
		svc.On("Register", mock.Anything, "Jane", "jane@example.com", "").
			Return(&model.User{ID: uuid.New(), SessionID: token}, token, true, nil)
		e := newUserServer(svc, nil)

		body := `{"name":"Jane","email":"jane@example.com"}`
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Empty(t, rec.Body.String())

		cookie := sessionCookie(rec)
		require.NotNil(t, cookie, "expected a minted session cookie")
		assert.Equal(t, token, cookie.Value)
		assert.Equal(t, int(session.TokenTTL.Seconds()), cookie.MaxAge)
	})

	t.Run("registration with a cookie reuses the token", func(t *testing.T) {
		svc := new(MockUserService)
		existing := session.NewToken()
		svc.On("Register", mock.Anything, "Jane", "jane@example.com", existing).
			Return(&model.User{ID: uuid.New(), SessionID: existing}, existing, false, nil)
		e := newUserServer(svc, nil)

		body := `{"name":"Jane","email":"jane@example.com"}`
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: existing})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Nil(t, sessionCookie(rec), "no new cookie when the token is reused")
		svc.AssertExpectations(t)
	})

	t.Run("invalid email is a validation error", func(t *testing.T) {
		e := newUserServer(new(MockUserService), nil)

		body := `{"name":"Jane","email":"not-an-email"}`
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandler_ListUsers(t *testing.T) {
	token := session.NewToken()
	user := &model.User{ID: uuid.New(), SessionID: token, Name: "Jane"}

	svc := new(MockUserService)
	svc.On("ListBySession", mock.Anything, token).Return([]model.User{
		*user,
		{ID: uuid.New(), SessionID: token, Name: "Jane (work)"},
	}, nil)
	e := newUserServer(svc, user)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp UsersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Users, 2)
}
