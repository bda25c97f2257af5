package rpc

import (
	"context"
	"log/slog"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
	"github.com/vmkteam/zenrpc/v2"
)

//go:generate zenrpc

// BlogService exposes the public read side of the portal over JSON-RPC.
type BlogService struct {
	zenrpc.Service
	blogs      *blogportal.BlogManager
	categories *blogportal.CategoryManager
	catalog    *blogportal.CatalogManager
	media      MediaURL
	log        *slog.Logger
}

func NewBlogService(blogs *blogportal.BlogManager, categories *blogportal.CategoryManager,
	catalog *blogportal.CatalogManager, media MediaURL, log *slog.Logger) *BlogService {

	return &BlogService{blogs: blogs, categories: categories, catalog: catalog, media: media, log: log}
}

// List returns active blogs, newest first, filtered and paginated like GET /blogs.
//
//zenrpc:filter blog filter
//zenrpc:return page of blogs without content
//zenrpc:500 internal server error
func (s *BlogService) List(ctx context.Context, filter BlogFilter) (*BlogPage, error) {
	page, err := s.blogs.List(ctx, filter.ToModel())
	if err != nil {
		return nil, s.rpcError(ctx, err)
	}

	res := NewBlogPage(page, s.media)
	return &res, nil
}

// ByID returns one active blog with its content.
//
//zenrpc:id blog numeric ID
//zenrpc:return blog with content
//zenrpc:400 id must be positive
//zenrpc:404 blog not found
//zenrpc:500 internal server error
func (s *BlogService) ByID(ctx context.Context, id int) (*BlogDetail, error) {
	if id <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	blog, err := s.blogs.ByID(ctx, id)
	if err != nil {
		return nil, s.rpcError(ctx, err)
	}

	res := NewBlogDetail(*blog, s.media)
	return &res, nil
}

// Categories returns root categories ordered by title, each with its direct children.
//
//zenrpc:return list of categories
//zenrpc:500 internal server error
func (s *BlogService) Categories(ctx context.Context) ([]Category, error) {
	categories, err := s.categories.Roots(ctx)
	if err != nil {
		return nil, s.rpcError(ctx, err)
	}

	return Map(categories, NewCategory), nil
}

// Category returns one category with its direct children.
//
//zenrpc:id category numeric ID
//zenrpc:return category
//zenrpc:400 id must be positive
//zenrpc:404 category not found
//zenrpc:500 internal server error
func (s *BlogService) Category(ctx context.Context, id int) (*Category, error) {
	if id <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	category, err := s.categories.ByID(ctx, id)
	if err != nil {
		return nil, s.rpcError(ctx, err)
	}

	res := NewCategory(*category)
	return &res, nil
}

// Menu returns menu items by order.
//
//zenrpc:return menu items
//zenrpc:500 internal server error
func (s *BlogService) Menu(ctx context.Context) ([]MenuItem, error) {
	items, err := s.catalog.Menu(ctx)
	if err != nil {
		return nil, s.rpcError(ctx, err)
	}

	return Map(items, NewMenuItem), nil
}

// Tags returns tags with usage counts, most used first.
//
//zenrpc:return tags with counts
//zenrpc:500 internal server error
func (s *BlogService) Tags(ctx context.Context) ([]Tag, error) {
	tags, err := s.catalog.Tags(ctx)
	if err != nil {
		return nil, s.rpcError(ctx, err)
	}

	return Map(tags, NewTag), nil
}
