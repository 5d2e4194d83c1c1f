// Package session resolves opaque session tokens to user identities. A
// token is valid exactly as long as a users row carries it; there is no
// server-side expiry beyond row existence.
package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	apperrors "dailydiet/internal/errors"
	"dailydiet/internal/model"
	"dailydiet/internal/repository"
)

const (
	// CookieName is the cookie carrying the opaque session token.
	CookieName = "sessionId"
	// TokenTTL is the lifetime advertised to the client. The server never
	// expires tokens on its own.
	TokenTTL = 7 * 24 * time.Hour
)

// NewToken mints a cryptographically random, globally unique session token.
func NewToken() string {
	return uuid.NewString()
}

// NewCookie builds the outbound cookie persisting a session token.
func NewCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TokenTTL / time.Second),
		HttpOnly: true,
	}
}

// TokenFromRequest extracts the session token from the request cookie.
// Returns the empty string when no cookie is present.
func TokenFromRequest(c echo.Context) string {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie == nil {
		return ""
	}
	return cookie.Value
}

type ctxKey struct{}

// WithUser returns a context carrying the resolved user identity.
func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

// UserFromContext returns the identity resolved by the middleware.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(ctxKey{}).(*model.User)
	return user, ok && user != nil
}

// Resolver maps inbound session tokens to user identities.
type Resolver struct {
	users repository.UserRepository
}

// NewResolver creates a session resolver backed by the user repository.
func NewResolver(users repository.UserRepository) *Resolver {
	return &Resolver{users: users}
}

// Resolve looks up the user owning the token. A missing or unmatched token
// yields ErrSessionRequired.
func (r *Resolver) Resolve(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, apperrors.ErrSessionRequired
	}
	user, err := r.users.FindBySessionID(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSessionRequired
		}
		return nil, err
	}
	return user, nil
}

// Middleware rejects requests without a valid session token and threads the
// resolved identity through the request context for downstream handlers.
func (r *Resolver) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := r.Resolve(c.Request().Context(), TokenFromRequest(c))
			if err != nil {
				httpErr := apperrors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			req := c.Request()
			c.SetRequest(req.WithContext(WithUser(req.Context(), user)))
			return next(c)
		}
	}
}
