package db

import (
	"context"
	"fmt"
)

func (r *Repository) MenuItems(ctx context.Context) ([]MenuItem, error) {
	var items []MenuItem
	err := r.db.ModelContext(ctx, &items).
		OrderExpr(`"t"."orderNumber" ASC, "t"."menuItemId" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}

	return items, nil
}

// TagsWithCount returns every tag with the number of blogs it is attached to,
// most used first and then by name.
func (r *Repository) TagsWithCount(ctx context.Context) ([]TagCount, error) {
	var tags []TagCount
	_, err := r.db.QueryContext(ctx, &tags, `
		SELECT "t"."tagId", "t"."name", "t"."slug", COUNT("bt"."blogId") AS "count"
		FROM "tags" AS "t"
		LEFT JOIN "blogTags" AS "bt" ON "bt"."tagId" = "t"."tagId"
		GROUP BY "t"."tagId"
		ORDER BY "count" DESC, "t"."name" ASC`)

	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}

	return tags, nil
}
