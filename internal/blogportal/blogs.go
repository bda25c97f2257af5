package blogportal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/daniilsolovey/blog-portal/internal/db"
	"github.com/daniilsolovey/blog-portal/internal/media"
	"github.com/gosimple/slug"
)

const (
	dateLayout     = "2006-01-02"
	maxTitleLength = 200
	maxTagLength   = 50
	blogImageDir   = "blog_images"
)

type BlogManager struct {
	store  Store
	images ImageStore
	log    *slog.Logger
	now    clock
}

func NewBlogManager(store Store, images ImageStore, log *slog.Logger) *BlogManager {
	return &BlogManager{
		store:  store,
		images: images,
		log:    log,
		now:    time.Now,
	}
}

// List returns one page of active blogs, newest first.
func (m *BlogManager) List(ctx context.Context, filter BlogFilter) (*Page[Blog], error) {
	search := filter.search()

	count, err := m.store.BlogsCount(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("db get blogs count: %w", err)
	}

	w := newPageWindow(count, filter.Page, filter.PageSize)
	page := &Page[Blog]{
		Count:    count,
		Page:     w.page,
		Next:     w.next,
		Previous: w.previous,
		Results:  []Blog{},
	}
	if count == 0 {
		return page, nil
	}

	list, err := m.store.Blogs(ctx, search, w.limit, w.offset)
	if err != nil {
		return nil, fmt.Errorf("db get blogs: %w", err)
	}

	blogs := NewBlogs(list)
	if err := m.fillTags(ctx, m.store, blogs); err != nil {
		return nil, err
	}
	page.Results = blogs

	return page, nil
}

// ByID returns an active blog.
func (m *BlogManager) ByID(ctx context.Context, blogID int) (*Blog, error) {
	return m.byID(ctx, m.store, blogID, true)
}

func (m *BlogManager) byID(ctx context.Context, store Store, blogID int, activeOnly bool) (*Blog, error) {
	dbBlog, err := store.BlogByID(ctx, blogID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("db get blog by id: %w", err)
	} else if dbBlog == nil {
		return nil, newError(ErrNotFound, "Blog not found")
	}

	blogs := Blogs{NewBlog(dbBlog)}
	if err := m.fillTags(ctx, store, blogs); err != nil {
		return nil, err
	}

	return &blogs[0], nil
}

func (m *BlogManager) fillTags(ctx context.Context, store Store, blogs Blogs) error {
	links, err := store.BlogTags(ctx, blogs.IDs())
	if err != nil {
		return fmt.Errorf("failed to attach tags to blogs: %w", err)
	}

	blogs.SetTags(links)
	return nil
}

// Create stores a new blog authored by user. Title and content are required.
func (m *BlogManager) Create(ctx context.Context, user *User, in BlogInput) (*Blog, error) {
	if user == nil {
		return nil, newError(ErrUnauthenticated, "Authentication required")
	}

	blog := &db.Blog{
		AuthorID:  user.ID,
		CreatedAt: m.now().UTC(),
		IsActive:  true,
	}

	title, content := "", ""
	if in.Title != nil {
		title = *in.Title
	}
	if in.Content != nil {
		content = *in.Content
	}
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, validationError("Content is required")
	}
	blog.Title, blog.Content = strings.TrimSpace(title), content

	if in.IsActive != nil {
		blog.IsActive = *in.IsActive
	}

	if in.CategoryID != nil && !in.ClearCategory {
		category, err := m.store.CategoryByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("db get category: %w", err)
		} else if category == nil {
			return nil, validationError("Category not found")
		}
		blog.CategoryID = &category.ID
	}

	tags, err := normalizeTags(in.Tags)
	if err != nil {
		return nil, err
	}

	if in.Image != nil {
		ref, err := m.saveImage(ctx, in.Image)
		if err != nil {
			return nil, err
		}
		blog.Image = &ref
	}

	var result *Blog
	err = m.store.InTx(ctx, func(tx Store) error {
		if err := tx.CreateBlog(ctx, blog); err != nil {
			return err
		}
		if err := m.replaceTags(ctx, tx, blog.ID, tags); err != nil {
			return err
		}

		stored, err := m.byID(ctx, tx, blog.ID, false)
		result = stored
		return err
	})
	if err != nil {
		m.dropImage(ctx, blog.Image)
		return nil, fmt.Errorf("create blog: %w", err)
	}

	return result, nil
}

// Update applies the present fields of in. Only the author may update, inactive blogs included.
// A category that does not exist clears the blog category.
func (m *BlogManager) Update(ctx context.Context, user *User, blogID int, in BlogInput) (*Blog, error) {
	if user == nil {
		return nil, newError(ErrUnauthenticated, "Authentication required")
	}

	blog, err := m.store.BlogByID(ctx, blogID, false)
	if err != nil {
		return nil, fmt.Errorf("db get blog by id: %w", err)
	} else if blog == nil {
		return nil, newError(ErrNotFound, "Blog not found")
	} else if blog.AuthorID != user.ID {
		return nil, newError(ErrForbidden, "You do not have permission to edit this blog")
	}

	var columns []string
	if in.Title != nil {
		if err := validateTitle(*in.Title); err != nil {
			return nil, err
		}
		blog.Title = strings.TrimSpace(*in.Title)
		columns = append(columns, db.Columns.Blog.Title)
	}
	if in.Content != nil {
		if strings.TrimSpace(*in.Content) == "" {
			return nil, validationError("Content must not be blank")
		}
		blog.Content = *in.Content
		columns = append(columns, db.Columns.Blog.Content)
	}
	if in.IsActive != nil {
		blog.IsActive = *in.IsActive
		columns = append(columns, db.Columns.Blog.IsActive)
	}

	switch {
	case in.ClearCategory:
		blog.CategoryID = nil
		columns = append(columns, db.Columns.Blog.CategoryID)
	case in.CategoryID != nil:
		category, err := m.store.CategoryByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("db get category: %w", err)
		}
		blog.CategoryID = nil
		if category != nil {
			blog.CategoryID = &category.ID
		}
		columns = append(columns, db.Columns.Blog.CategoryID)
	}

	var tags []db.Tag
	if in.Tags != nil {
		if tags, err = normalizeTags(in.Tags); err != nil {
			return nil, err
		}
	}

	var oldImage *string
	if in.Image != nil {
		ref, err := m.saveImage(ctx, in.Image)
		if err != nil {
			return nil, err
		}
		oldImage, blog.Image = blog.Image, &ref
		columns = append(columns, db.Columns.Blog.Image)
	}

	var result *Blog
	err = m.store.InTx(ctx, func(tx Store) error {
		if err := tx.UpdateBlog(ctx, blog, columns...); err != nil {
			return err
		}
		if in.Tags != nil {
			if err := m.replaceTags(ctx, tx, blog.ID, tags); err != nil {
				return err
			}
		}

		stored, err := m.byID(ctx, tx, blog.ID, false)
		result = stored
		return err
	})
	if err != nil {
		if in.Image != nil {
			m.dropImage(ctx, blog.Image)
		}
		return nil, fmt.Errorf("update blog: %w", err)
	}

	m.dropImage(ctx, oldImage)
	return result, nil
}

// Delete removes a blog with its comments. Only the author may delete.
func (m *BlogManager) Delete(ctx context.Context, user *User, blogID int) error {
	if user == nil {
		return newError(ErrUnauthenticated, "Authentication required")
	}

	blog, err := m.store.BlogByID(ctx, blogID, false)
	if err != nil {
		return fmt.Errorf("db get blog by id: %w", err)
	} else if blog == nil {
		return newError(ErrNotFound, "Blog not found")
	} else if blog.AuthorID != user.ID {
		return newError(ErrForbidden, "You do not have permission to delete this blog")
	}

	if _, err := m.store.DeleteBlog(ctx, blogID); err != nil {
		return fmt.Errorf("db delete blog: %w", err)
	}

	m.dropImage(ctx, blog.Image)
	return nil
}

func (m *BlogManager) replaceTags(ctx context.Context, tx Store, blogID int, tags []db.Tag) error {
	ids := []int{}
	if len(tags) > 0 {
		stored, err := tx.EnsureTags(ctx, tags)
		if err != nil {
			return err
		}
		for _, t := range stored {
			ids = append(ids, t.ID)
		}
	}

	return tx.ReplaceBlogTags(ctx, blogID, ids)
}

func (m *BlogManager) saveImage(ctx context.Context, upload *Upload) (string, error) {
	ref, err := m.images.Save(ctx, blogImageDir, upload.Filename, upload.Body)
	if errors.Is(err, media.ErrUnsupportedType) {
		return "", validationError("Unsupported image type")
	} else if err != nil {
		return "", fmt.Errorf("save blog image: %w", err)
	}

	return ref, nil
}

func (m *BlogManager) dropImage(ctx context.Context, ref *string) {
	if ref == nil || *ref == "" {
		return
	}
	if err := m.images.Delete(ctx, *ref); err != nil {
		m.log.WarnContext(ctx, "failed to delete image", "ref", *ref, "error", err)
	}
}

func (f BlogFilter) search() *db.BlogSearch {
	s := &db.BlogSearch{
		AuthorID:   f.AuthorID,
		CategoryID: f.CategoryID,
		Text:       strings.TrimSpace(f.Search),
	}

	if from, err := time.Parse(dateLayout, f.DateFrom); err == nil {
		s.CreatedFrom = &from
	}
	if to, err := time.Parse(dateLayout, f.DateTo); err == nil {
		end := to.AddDate(0, 0, 1)
		s.CreatedTo = &end
	}

	for _, name := range f.Tags {
		if name = strings.TrimSpace(name); name != "" {
			s.Tags = append(s.Tags, name)
		}
	}

	return s
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	switch {
	case title == "":
		return validationError("Title is required")
	case utf8.RuneCountInString(title) > maxTitleLength:
		return validationError(fmt.Sprintf("Title must be at most %d characters", maxTitleLength))
	}
	return nil
}

// normalizeTags trims names, drops blanks and duplicates and derives slugs.
func normalizeTags(names []string) ([]db.Tag, error) {
	seen := make(map[string]struct{}, len(names))
	tags := make([]db.Tag, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if utf8.RuneCountInString(name) > maxTagLength {
			return nil, validationError(fmt.Sprintf("Tag %q must be at most %d characters", name, maxTagLength))
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		tagSlug := slug.Make(name)
		if tagSlug == "" {
			tagSlug = name
		}
		tags = append(tags, db.Tag{Name: name, Slug: tagSlug})
	}

	return tags, nil
}
