package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "Internal server error"

var errAuthRequired = echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")

func errorStatus(err error) int {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return he.Code
	case errors.Is(err, blogportal.ErrValidation),
		errors.Is(err, blogportal.ErrConflict),
		errors.Is(err, blogportal.ErrParentNotFound):
		return http.StatusBadRequest
	case errors.Is(err, blogportal.ErrUnauthenticated),
		errors.Is(err, blogportal.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, blogportal.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, blogportal.ErrNotFound):
		return http.StatusNotFound
	}

	return http.StatusInternalServerError
}

func errorMessage(err error) string {
	if msg, ok := blogportal.PublicMessage(err); ok {
		return msg
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return fmt.Sprint(he.Message)
	}

	return internalErrorMessage
}

// handleError writes err as {"message": ...}. Errors without a public message become 500.
func (h *Handler) handleError(c echo.Context, err error) error {
	status := errorStatus(err)
	message := errorMessage(err)

	if status >= http.StatusInternalServerError {
		h.log.ErrorContext(c.Request().Context(), "handleError", "error", err, "statusCode", status, "path", c.Path())
	} else {
		h.log.DebugContext(c.Request().Context(), "handleError", "error", err, "statusCode", status, "path", c.Path())
	}

	return c.JSON(status, Message{Message: message})
}

// httpErrorHandler renders router errors like unknown routes in the same shape.
func (h *Handler) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if hErr := h.handleError(c, err); hErr != nil {
		h.log.Error("failed to write error response", "error", hErr)
	}
}
