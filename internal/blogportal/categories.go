package blogportal

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

type CategoryManager struct {
	store    Store
	maxDepth int
}

func NewCategoryManager(store Store) *CategoryManager {
	return &CategoryManager{
		store:    store,
		maxDepth: DefaultMaxDepth,
	}
}

// Roots returns top level categories ordered by title, each with its direct children.
func (m *CategoryManager) Roots(ctx context.Context) ([]Category, error) {
	roots, err := m.store.CategoryRoots(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	categories := NewCategories(roots)
	if err := expandTree(ctx, pointers(categories), m.maxDepth, categoryOps(m.store)); err != nil {
		return nil, fmt.Errorf("expand categories: %w", err)
	}

	return categories, nil
}

func (m *CategoryManager) ByID(ctx context.Context, categoryID int) (*Category, error) {
	dbCategory, err := m.store.CategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("db get category by id: %w", err)
	} else if dbCategory == nil {
		return nil, newError(ErrNotFound, "Category not found")
	}

	category := NewCategory(dbCategory)
	if err := expandTree(ctx, []*Category{&category}, m.maxDepth, categoryOps(m.store)); err != nil {
		return nil, fmt.Errorf("expand category: %w", err)
	}

	return &category, nil
}

// Create adds a category under an optional parent. Staff only.
func (m *CategoryManager) Create(ctx context.Context, user *User, in CategoryInput) (*Category, error) {
	if err := requireStaff(user); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, validationError("Title is required")
	} else if utf8.RuneCountInString(title) > maxTitleLength {
		return nil, validationError(fmt.Sprintf("Title must be at most %d characters", maxTitleLength))
	}

	category := &db.Category{Title: title}
	if in.ParentID != nil && *in.ParentID != 0 {
		parent, err := m.store.CategoryByID(ctx, *in.ParentID)
		if err != nil {
			return nil, fmt.Errorf("db get parent category: %w", err)
		} else if parent == nil {
			return nil, newError(ErrParentNotFound, "Parent category not found")
		}
		category.ParentID = &parent.ID
	}

	if err := m.store.CreateCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("db create category: %w", err)
	}

	result := NewCategory(category)
	result.Children = []Category{}
	return &result, nil
}

// Delete removes the category subtree. Blogs keep existing without a category. Staff only.
func (m *CategoryManager) Delete(ctx context.Context, user *User, categoryID int) error {
	if err := requireStaff(user); err != nil {
		return err
	}

	deleted, err := m.store.DeleteCategory(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("db delete category: %w", err)
	} else if !deleted {
		return newError(ErrNotFound, "Category not found")
	}

	return nil
}

func requireStaff(user *User) error {
	if user == nil {
		return newError(ErrUnauthenticated, "Authentication required")
	} else if !user.IsStaff {
		return newError(ErrForbidden, "Staff permission required")
	}
	return nil
}
