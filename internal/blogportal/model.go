package blogportal

import (
	"io"
	"time"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

type User struct {
	db.User
}

type Category struct {
	db.Category
	Children []Category
}

type Comment struct {
	db.Comment
	Children []Comment
}

type Tag struct {
	db.Tag
}

type TagUsage struct {
	db.TagCount
}

type MenuItem struct {
	db.MenuItem
}

type Blog struct {
	db.Blog
	Tags []Tag
}

// Page is one page of an offset paginated listing.
// Next and Previous are page numbers, nil at the boundaries.
type Page[T any] struct {
	Count    int
	Page     int
	Next     *int
	Previous *int
	Results  []T
}

// BlogFilter is the public listing filter. Dates use the YYYY-MM-DD layout;
// malformed dates are ignored.
type BlogFilter struct {
	DateFrom   string
	DateTo     string
	AuthorID   *int
	CategoryID *int
	Tags       []string
	Search     string
	Page       int
	PageSize   int
}

// Upload is an incoming file.
type Upload struct {
	Filename string
	Body     io.Reader
}

// BlogInput carries blog fields. Nil fields are left untouched on update.
// Tags replace the whole set when non-nil; an empty non-nil slice clears it.
type BlogInput struct {
	Title         *string
	Content       *string
	CategoryID    *int
	ClearCategory bool
	Tags          []string
	IsActive      *bool
	Image         *Upload
}

type CommentInput struct {
	Content  string
	ParentID *int
}

type CategoryInput struct {
	Title    string
	ParentID *int
}

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type ProfileInput struct {
	Email     *string
	FirstName *string
	LastName  *string
}

type clock func() time.Time
