package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

// BlogSearch narrows blog listings. Nil and empty fields are not applied.
type BlogSearch struct {
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	AuthorID    *int
	CategoryID  *int
	Tags        []string
	Text        string
}

func (s *BlogSearch) apply(q *orm.Query) *orm.Query {
	q = q.Where(`"t"."isActive" = ?`, true)
	if s == nil {
		return q
	}

	if s.CreatedFrom != nil {
		q = q.Where(`"t"."createdAt" >= ?`, *s.CreatedFrom)
	}
	if s.CreatedTo != nil {
		q = q.Where(`"t"."createdAt" < ?`, *s.CreatedTo)
	}
	if s.AuthorID != nil {
		q = q.Where(`"t"."authorId" = ?`, *s.AuthorID)
	}
	if s.CategoryID != nil {
		q = q.Where(`"t"."categoryId" = ?`, *s.CategoryID)
	}
	if len(s.Tags) > 0 {
		q = q.Where(`"t"."blogId" IN (
			SELECT "bt"."blogId" FROM "blogTags" AS "bt"
			JOIN "tags" AS "tg" ON "tg"."tagId" = "bt"."tagId"
			WHERE "tg"."name" IN (?))`, pg.In(s.Tags))
	}
	if s.Text != "" {
		pattern := "%" + escapeLike(s.Text) + "%"
		q = q.WhereGroup(func(q *orm.Query) (*orm.Query, error) {
			return q.
				WhereOr(`"t"."title" ILIKE ?`, pattern).
				WhereOr(`"t"."content" ILIKE ?`, pattern), nil
		})
	}

	return q
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Blogs returns active blogs matching search, newest first, with author and category loaded.
func (r *Repository) Blogs(ctx context.Context, search *BlogSearch, limit, offset int) ([]Blog, error) {
	if limit < 1 || offset < 0 {
		return nil, fmt.Errorf(
			"limit must be greater than 0 and offset not negative: limit=%d, offset=%d",
			limit, offset,
		)
	}

	var blogs []Blog
	query := r.db.ModelContext(ctx, &blogs).
		Relation(Columns.Blog.Author).
		Relation(Columns.Blog.Category)

	err := search.apply(query).
		OrderExpr(`"t"."createdAt" DESC, "t"."blogId" DESC`).
		Limit(limit).
		Offset(offset).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query blogs: %w", err)
	}

	return blogs, nil
}

func (r *Repository) BlogsCount(ctx context.Context, search *BlogSearch) (int, error) {
	query := r.db.ModelContext(ctx, (*Blog)(nil))

	count, err := search.apply(query).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get blogs count: %w", err)
	}

	return count, nil
}

// BlogByID returns a blog with author and category. With activeOnly inactive blogs are treated as missing.
func (r *Repository) BlogByID(ctx context.Context, blogID int, activeOnly bool) (*Blog, error) {
	blog := &Blog{}
	query := r.db.ModelContext(ctx, blog).
		Relation(Columns.Blog.Author).
		Relation(Columns.Blog.Category).
		Where(`"t"."blogId" = ?`, blogID)

	if activeOnly {
		query = query.Where(`"t"."isActive" = ?`, true)
	}

	err := query.Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get blog by id: %w", err)
	}

	return blog, nil
}

func (r *Repository) CreateBlog(ctx context.Context, blog *Blog) error {
	if _, err := r.db.ModelContext(ctx, blog).Returning("*").Insert(); err != nil {
		return fmt.Errorf("failed to insert blog: %w", err)
	}

	return nil
}

// UpdateBlog writes the given columns of blog.
func (r *Repository) UpdateBlog(ctx context.Context, blog *Blog, columns ...string) error {
	if len(columns) == 0 {
		return nil
	}

	_, err := r.db.ModelContext(ctx, blog).
		Column(columns...).
		WherePK().
		Update()

	if err != nil {
		return fmt.Errorf("failed to update blog: %w", err)
	}

	return nil
}

func (r *Repository) DeleteBlog(ctx context.Context, blogID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Blog)(nil)).
		Where(`"blogId" = ?`, blogID).
		Delete()

	if err != nil {
		return false, fmt.Errorf("failed to delete blog: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// BlogTags returns tag links for the given blogs with tags loaded, ordered by tag name.
func (r *Repository) BlogTags(ctx context.Context, blogIDs []int) ([]BlogTag, error) {
	if len(blogIDs) == 0 {
		return []BlogTag{}, nil
	}

	var links []BlogTag
	err := r.db.ModelContext(ctx, &links).
		Relation(Columns.BlogTag.Tag).
		Where(`"t"."blogId" IN (?)`, pg.In(blogIDs)).
		OrderExpr(`"tag"."name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query blog tags: %w", err)
	}

	return links, nil
}

// ReplaceBlogTags drops all tag links of the blog and links tagIDs instead.
func (r *Repository) ReplaceBlogTags(ctx context.Context, blogID int, tagIDs []int) error {
	_, err := r.db.ModelContext(ctx, (*BlogTag)(nil)).
		Where(`"blogId" = ?`, blogID).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to clear blog tags: %w", err)
	}

	if len(tagIDs) == 0 {
		return nil
	}

	links := make([]BlogTag, len(tagIDs))
	for i, tagID := range tagIDs {
		links[i] = BlogTag{BlogID: blogID, TagID: tagID}
	}

	if _, err := r.db.ModelContext(ctx, &links).OnConflict("DO NOTHING").Insert(); err != nil {
		return fmt.Errorf("failed to insert blog tags: %w", err)
	}

	return nil
}

// EnsureTags inserts missing tags by name and returns all of them with IDs.
// Names must be unique within tags.
func (r *Repository) EnsureTags(ctx context.Context, tags []Tag) ([]Tag, error) {
	if len(tags) == 0 {
		return []Tag{}, nil
	}

	_, err := r.db.ModelContext(ctx, &tags).
		OnConflict(`("name") DO UPDATE`).
		Set(`"slug" = EXCLUDED."slug"`).
		Returning("*").
		Insert()

	if err != nil {
		return nil, fmt.Errorf("failed to upsert tags: %w", err)
	}

	return tags, nil
}
