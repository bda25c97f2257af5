package blogportal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

type CommentManager struct {
	store    Store
	maxDepth int
	now      clock
}

func NewCommentManager(store Store) *CommentManager {
	return &CommentManager{
		store:    store,
		maxDepth: DefaultMaxDepth,
		now:      time.Now,
	}
}

// ListForBlog returns root comments of a blog, each with its direct replies.
func (m *CommentManager) ListForBlog(ctx context.Context, blogID int) ([]Comment, error) {
	if err := m.ensureBlog(ctx, blogID); err != nil {
		return nil, err
	}

	roots, err := m.store.CommentRoots(ctx, blogID)
	if err != nil {
		return nil, fmt.Errorf("db get comments: %w", err)
	}

	comments := NewComments(roots)
	if err := expandTree(ctx, pointers(comments), m.maxDepth, commentOps(m.store)); err != nil {
		return nil, fmt.Errorf("expand comments: %w", err)
	}

	return comments, nil
}

// Create adds a comment to the blog. A zero or nil parent makes it a root comment.
func (m *CommentManager) Create(ctx context.Context, user *User, blogID int, in CommentInput) (*Comment, error) {
	if user == nil {
		return nil, newError(ErrUnauthenticated, "Authentication required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, validationError("Content is required")
	}
	if err := m.ensureBlog(ctx, blogID); err != nil {
		return nil, err
	}

	comment := &db.Comment{
		Content:   in.Content,
		BlogID:    blogID,
		AuthorID:  user.ID,
		CreatedAt: m.now().UTC(),
	}

	if in.ParentID != nil && *in.ParentID != 0 {
		parent, err := m.store.CommentByID(ctx, blogID, *in.ParentID)
		if err != nil {
			return nil, fmt.Errorf("db get parent comment: %w", err)
		} else if parent == nil {
			return nil, newError(ErrParentNotFound, "Parent comment not found")
		}
		comment.ParentID = &parent.ID
	}

	if err := m.store.CreateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("db create comment: %w", err)
	}

	return m.withChildren(ctx, blogID, comment.ID)
}

// Update replaces the content. Only the author may update.
func (m *CommentManager) Update(ctx context.Context, user *User, blogID, commentID int, content string) (*Comment, error) {
	comment, err := m.owned(ctx, user, blogID, commentID, "edit")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, validationError("Content is required")
	}

	comment.Content = content
	if err := m.store.UpdateCommentContent(ctx, comment); err != nil {
		return nil, fmt.Errorf("db update comment: %w", err)
	}

	return m.withChildren(ctx, blogID, commentID)
}

// Delete removes the comment and all replies below it. Only the author may delete.
func (m *CommentManager) Delete(ctx context.Context, user *User, blogID, commentID int) error {
	if _, err := m.owned(ctx, user, blogID, commentID, "delete"); err != nil {
		return err
	}

	if _, err := m.store.DeleteComment(ctx, commentID); err != nil {
		return fmt.Errorf("db delete comment: %w", err)
	}

	return nil
}

// Like adds one like. Anyone may like, the author included.
func (m *CommentManager) Like(ctx context.Context, blogID, commentID int) (*Comment, error) {
	return m.increment(ctx, blogID, commentID, db.Columns.Comment.Likes)
}

// Dislike adds one dislike. Anyone may dislike, the author included.
func (m *CommentManager) Dislike(ctx context.Context, blogID, commentID int) (*Comment, error) {
	return m.increment(ctx, blogID, commentID, db.Columns.Comment.Dislikes)
}

func (m *CommentManager) increment(ctx context.Context, blogID, commentID int, column string) (*Comment, error) {
	updated, err := m.store.IncrementCommentCounter(ctx, blogID, commentID, column)
	if err != nil {
		return nil, fmt.Errorf("db increment comment counter: %w", err)
	} else if updated == nil {
		return nil, newError(ErrNotFound, "Comment not found")
	}

	return m.withChildren(ctx, blogID, commentID)
}

func (m *CommentManager) owned(ctx context.Context, user *User, blogID, commentID int, action string) (*db.Comment, error) {
	if user == nil {
		return nil, newError(ErrUnauthenticated, "Authentication required")
	}

	comment, err := m.store.CommentByID(ctx, blogID, commentID)
	if err != nil {
		return nil, fmt.Errorf("db get comment: %w", err)
	} else if comment == nil {
		return nil, newError(ErrNotFound, "Comment not found")
	} else if comment.AuthorID != user.ID {
		return nil, newError(ErrForbidden, "You do not have permission to "+action+" this comment")
	}

	return comment, nil
}

func (m *CommentManager) withChildren(ctx context.Context, blogID, commentID int) (*Comment, error) {
	dbComment, err := m.store.CommentByID(ctx, blogID, commentID)
	if err != nil {
		return nil, fmt.Errorf("db get comment: %w", err)
	} else if dbComment == nil {
		return nil, newError(ErrNotFound, "Comment not found")
	}

	comment := NewComment(dbComment)
	if err := expandTree(ctx, []*Comment{&comment}, m.maxDepth, commentOps(m.store)); err != nil {
		return nil, fmt.Errorf("expand comment: %w", err)
	}

	return &comment, nil
}

func (m *CommentManager) ensureBlog(ctx context.Context, blogID int) error {
	blog, err := m.store.BlogByID(ctx, blogID, false)
	if err != nil {
		return fmt.Errorf("db get blog by id: %w", err)
	} else if blog == nil {
		return newError(ErrNotFound, "Blog not found")
	}
	return nil
}
