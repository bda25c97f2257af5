// Package rpc serves the read-only JSON-RPC 2.0 API built on zenrpc.
// zenrpc.go is maintained by hand in the shape the zenrpc generator emits.
package rpc

import (
	"log/slog"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

// New builds the JSON-RPC server with the "blog" namespace.
func New(logger *slog.Logger, blogs *blogportal.BlogManager, categories *blogportal.CategoryManager,
	catalog *blogportal.CatalogManager, media MediaURL) *zenrpc.Server {

	rpcService := NewBlogService(blogs, categories, catalog, media, logger)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("blog", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "blog-portal", nil))

	return rpcServer
}
