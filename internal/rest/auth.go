package rest

import (
	"net/http"
	"strings"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
	"github.com/labstack/echo/v4"
)

const (
	userContextKey    = "user"
	authErrContextKey = "authError"
)

// authenticate resolves an optional bearer token. A bad token is remembered and only
// reported by endpoints that require a user.
func (h *Handler) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Add(echo.HeaderVary, echo.HeaderAuthorization)

		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return next(c)
		}

		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			c.Set(authErrContextKey, errInvalidAuthHeader)
			return next(c)
		}

		user, err := h.users.Authenticate(c.Request().Context(), strings.TrimSpace(token))
		if err != nil {
			c.Set(authErrContextKey, err)
			return next(c)
		}

		c.Set(userContextKey, user)
		return next(c)
	}
}

var errInvalidAuthHeader = echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")

func currentUser(c echo.Context) *blogportal.User {
	user, _ := c.Get(userContextKey).(*blogportal.User)
	return user
}

// requireUser returns the authenticated user or the reason there is none.
func requireUser(c echo.Context) (*blogportal.User, error) {
	if user := currentUser(c); user != nil {
		return user, nil
	}
	if err, ok := c.Get(authErrContextKey).(error); ok {
		return nil, err
	}
	return nil, errAuthRequired
}
