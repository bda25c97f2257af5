package rpc

import (
	"context"
	"errors"
	"net/http"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
	"github.com/vmkteam/zenrpc/v2"
)

// rpcError converts domain errors to JSON-RPC errors with HTTP-like codes.
// Errors without a public message are logged and reported as internal.
func (s *BlogService) rpcError(ctx context.Context, err error) error {
	msg, ok := blogportal.PublicMessage(err)
	if !ok {
		s.log.ErrorContext(ctx, "rpc call failed", "error", err)
		return zenrpc.NewStringError(http.StatusInternalServerError, "internal server error")
	}

	switch {
	case errors.Is(err, blogportal.ErrNotFound):
		return zenrpc.NewStringError(http.StatusNotFound, msg)
	case errors.Is(err, blogportal.ErrValidation), errors.Is(err, blogportal.ErrParentNotFound):
		return zenrpc.NewStringError(http.StatusBadRequest, msg)
	}

	return zenrpc.NewStringError(http.StatusInternalServerError, msg)
}
