package blogportal

import (
	"context"
)

// DefaultMaxDepth expands roots with their direct children only.
// Children of children are always returned as an empty list.
const DefaultMaxDepth = 1

type treeOps[T any] struct {
	id          func(*T) int
	parentID    func(*T) int
	setChildren func(*T, []T)
	children    func(ctx context.Context, parentIDs []int) ([]T, error)
}

// expandTree loads children level by level for maxDepth levels below nodes.
// Every visited node gets a non-nil children slice.
func expandTree[T any](ctx context.Context, nodes []*T, maxDepth int, ops treeOps[T]) error {
	for _, node := range nodes {
		ops.setChildren(node, []T{})
	}
	if maxDepth <= 0 || len(nodes) == 0 {
		return nil
	}

	ids := make([]int, len(nodes))
	for i, node := range nodes {
		ids[i] = ops.id(node)
	}

	kids, err := ops.children(ctx, ids)
	if err != nil {
		return err
	}

	byParent := make(map[int][]T, len(nodes))
	for i := range kids {
		p := ops.parentID(&kids[i])
		byParent[p] = append(byParent[p], kids[i])
	}

	var next []*T
	for _, node := range nodes {
		list, ok := byParent[ops.id(node)]
		if !ok {
			continue
		}
		ops.setChildren(node, list)
		for i := range list {
			next = append(next, &list[i])
		}
	}

	return expandTree(ctx, next, maxDepth-1, ops)
}

func pointers[T any](list []T) []*T {
	res := make([]*T, len(list))
	for i := range list {
		res[i] = &list[i]
	}
	return res
}

func derefOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func categoryOps(store Store) treeOps[Category] {
	return treeOps[Category]{
		id:          func(c *Category) int { return c.ID },
		parentID:    func(c *Category) int { return derefOrZero(c.ParentID) },
		setChildren: func(c *Category, list []Category) { c.Children = list },
		children: func(ctx context.Context, ids []int) ([]Category, error) {
			list, err := store.CategoryChildren(ctx, ids)
			return NewCategories(list), err
		},
	}
}

func commentOps(store Store) treeOps[Comment] {
	return treeOps[Comment]{
		id:          func(c *Comment) int { return c.ID },
		parentID:    func(c *Comment) int { return derefOrZero(c.ParentID) },
		setChildren: func(c *Comment, list []Comment) { c.Children = list },
		children: func(ctx context.Context, ids []int) ([]Comment, error) {
			list, err := store.CommentChildren(ctx, ids)
			return NewComments(list), err
		},
	}
}
