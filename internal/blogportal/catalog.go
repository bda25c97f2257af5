package blogportal

import (
	"context"
	"fmt"
)

// CatalogManager serves the read-only menu and tag listings.
type CatalogManager struct {
	store Store
}

func NewCatalogManager(store Store) *CatalogManager {
	return &CatalogManager{
		store: store,
	}
}

func (m *CatalogManager) Menu(ctx context.Context) ([]MenuItem, error) {
	list, err := m.store.MenuItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get menu: %w", err)
	}

	return NewMenuItems(list), nil
}

// Tags returns all tags with usage counts, most used first.
func (m *CatalogManager) Tags(ctx context.Context) ([]TagUsage, error) {
	list, err := m.store.TagsWithCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get tags: %w", err)
	}

	return NewTagUsages(list), nil
}
