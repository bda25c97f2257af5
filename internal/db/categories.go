package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

const categoryOrder = `"t"."title" ASC, "t"."categoryId" ASC`

// CategoryRoots returns top level categories ordered by title.
func (r *Repository) CategoryRoots(ctx context.Context) ([]Category, error) {
	var list []Category
	err := r.db.ModelContext(ctx, &list).
		Where(`"t"."parentId" IS NULL`).
		OrderExpr(categoryOrder).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query root categories: %w", err)
	}

	return list, nil
}

// CategoryChildren returns direct children of the given categories ordered by title.
func (r *Repository) CategoryChildren(ctx context.Context, parentIDs []int) ([]Category, error) {
	if len(parentIDs) == 0 {
		return []Category{}, nil
	}

	var list []Category
	err := r.db.ModelContext(ctx, &list).
		Where(`"t"."parentId" IN (?)`, pg.In(parentIDs)).
		OrderExpr(categoryOrder).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query child categories: %w", err)
	}

	return list, nil
}

func (r *Repository) CategoryByID(ctx context.Context, categoryID int) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"t"."categoryId" = ?`, categoryID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

func (r *Repository) CreateCategory(ctx context.Context, category *Category) error {
	if _, err := r.db.ModelContext(ctx, category).Returning("*").Insert(); err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}

	return nil
}

// DeleteCategory removes the category and, through the foreign key, its whole subtree.
// Blogs in removed categories keep living with a null category.
func (r *Repository) DeleteCategory(ctx context.Context, categoryID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Category)(nil)).
		Where(`"categoryId" = ?`, categoryID).
		Delete()

	if err != nil {
		return false, fmt.Errorf("failed to delete category: %w", err)
	}

	return res.RowsAffected() > 0, nil
}
