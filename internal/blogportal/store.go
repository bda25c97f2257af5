package blogportal

import (
	"context"
	"io"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

// Store is the persistence used by managers. *db.Repository implements it through NewStore.
type Store interface {
	UserByID(ctx context.Context, userID int) (*db.User, error)
	UserByUsername(ctx context.Context, username string) (*db.User, error)
	UserByEmail(ctx context.Context, email string) (*db.User, error)
	CreateUser(ctx context.Context, user *db.User) error
	UpdateUser(ctx context.Context, user *db.User, columns ...string) error

	CategoryRoots(ctx context.Context) ([]db.Category, error)
	CategoryChildren(ctx context.Context, parentIDs []int) ([]db.Category, error)
	CategoryByID(ctx context.Context, categoryID int) (*db.Category, error)
	CreateCategory(ctx context.Context, category *db.Category) error
	DeleteCategory(ctx context.Context, categoryID int) (bool, error)

	Blogs(ctx context.Context, search *db.BlogSearch, limit, offset int) ([]db.Blog, error)
	BlogsCount(ctx context.Context, search *db.BlogSearch) (int, error)
	BlogByID(ctx context.Context, blogID int, activeOnly bool) (*db.Blog, error)
	CreateBlog(ctx context.Context, blog *db.Blog) error
	UpdateBlog(ctx context.Context, blog *db.Blog, columns ...string) error
	DeleteBlog(ctx context.Context, blogID int) (bool, error)
	BlogTags(ctx context.Context, blogIDs []int) ([]db.BlogTag, error)
	ReplaceBlogTags(ctx context.Context, blogID int, tagIDs []int) error
	EnsureTags(ctx context.Context, tags []db.Tag) ([]db.Tag, error)

	CommentRoots(ctx context.Context, blogID int) ([]db.Comment, error)
	CommentChildren(ctx context.Context, parentIDs []int) ([]db.Comment, error)
	CommentByID(ctx context.Context, blogID, commentID int) (*db.Comment, error)
	CreateComment(ctx context.Context, comment *db.Comment) error
	UpdateCommentContent(ctx context.Context, comment *db.Comment) error
	DeleteComment(ctx context.Context, commentID int) (bool, error)
	IncrementCommentCounter(ctx context.Context, blogID, commentID int, column string) (*db.Comment, error)

	MenuItems(ctx context.Context) ([]db.MenuItem, error)
	TagsWithCount(ctx context.Context) ([]db.TagCount, error)

	// InTx runs fn inside one transaction.
	InTx(ctx context.Context, fn func(Store) error) error
}

// ImageStore keeps uploaded images and returns references to them.
type ImageStore interface {
	Save(ctx context.Context, folder, filename string, body io.Reader) (string, error)
	Delete(ctx context.Context, ref string) error
}

type repoStore struct {
	*db.Repository
}

func NewStore(repo *db.Repository) Store {
	return repoStore{Repository: repo}
}

func (s repoStore) InTx(ctx context.Context, fn func(Store) error) error {
	return s.RunInTransaction(ctx, func(tx *db.Repository) error {
		return fn(repoStore{Repository: tx})
	})
}
