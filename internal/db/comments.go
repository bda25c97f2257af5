package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

const commentOrder = `"t"."createdAt" ASC, "t"."commentId" ASC`

// CommentRoots returns top level comments of a blog ordered by creation time.
func (r *Repository) CommentRoots(ctx context.Context, blogID int) ([]Comment, error) {
	var list []Comment
	err := r.db.ModelContext(ctx, &list).
		Relation(Columns.Comment.Author).
		Where(`"t"."blogId" = ?`, blogID).
		Where(`"t"."parentId" IS NULL`).
		OrderExpr(commentOrder).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query root comments: %w", err)
	}

	return list, nil
}

// CommentChildren returns direct replies to the given comments ordered by creation time.
func (r *Repository) CommentChildren(ctx context.Context, parentIDs []int) ([]Comment, error) {
	if len(parentIDs) == 0 {
		return []Comment{}, nil
	}

	var list []Comment
	err := r.db.ModelContext(ctx, &list).
		Relation(Columns.Comment.Author).
		Where(`"t"."parentId" IN (?)`, pg.In(parentIDs)).
		OrderExpr(commentOrder).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query child comments: %w", err)
	}

	return list, nil
}

// CommentByID returns the comment only when it belongs to blogID.
func (r *Repository) CommentByID(ctx context.Context, blogID, commentID int) (*Comment, error) {
	comment := &Comment{}
	err := r.db.ModelContext(ctx, comment).
		Relation(Columns.Comment.Author).
		Where(`"t"."commentId" = ?`, commentID).
		Where(`"t"."blogId" = ?`, blogID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get comment by id: %w", err)
	}

	return comment, nil
}

func (r *Repository) CreateComment(ctx context.Context, comment *Comment) error {
	if _, err := r.db.ModelContext(ctx, comment).Returning("*").Insert(); err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	return nil
}

func (r *Repository) UpdateCommentContent(ctx context.Context, comment *Comment) error {
	_, err := r.db.ModelContext(ctx, comment).
		Column(Columns.Comment.Content).
		WherePK().
		Update()

	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}

	return nil
}

// DeleteComment removes the comment together with all of its replies.
func (r *Repository) DeleteComment(ctx context.Context, commentID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Comment)(nil)).
		Where(`"commentId" = ?`, commentID).
		Delete()

	if err != nil {
		return false, fmt.Errorf("failed to delete comment: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// IncrementCommentCounter atomically adds one to likes or dislikes and returns the fresh row.
// Returns nil when the comment does not exist in the blog.
func (r *Repository) IncrementCommentCounter(ctx context.Context, blogID, commentID int, column string) (*Comment, error) {
	if column != Columns.Comment.Likes && column != Columns.Comment.Dislikes {
		return nil, fmt.Errorf("unknown comment counter %q", column)
	}

	comment := &Comment{}
	res, err := r.db.ModelContext(ctx, comment).
		Set(`? = ? + 1`, pg.Ident(column), pg.Ident(column)).
		Where(`"commentId" = ?`, commentID).
		Where(`"blogId" = ?`, blogID).
		Returning("*").
		Update()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to increment comment %s: %w", column, err)
	}

	if res.RowsAffected() == 0 {
		return nil, nil
	}

	return comment, nil
}
