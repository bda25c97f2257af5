package rpc

import "github.com/daniilsolovey/blog-portal/internal/blogportal"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

// MediaURL maps a stored file reference to its public address.
type MediaURL func(ref string) string

func (u MediaURL) image(ref *string) *string {
	if ref == nil || *ref == "" {
		return nil
	}
	if u == nil {
		return ref
	}
	s := u(*ref)
	return &s
}

func NewBlog(b blogportal.Blog, media MediaURL) Blog {
	blog := Blog{
		BlogID:     b.ID,
		Title:      b.Title,
		Image:      media.image(b.Image),
		CategoryID: b.CategoryID,
		Tags:       Map(b.Tags, func(t blogportal.Tag) string { return t.Name }),
		CreatedAt:  b.CreatedAt,
	}
	if b.Author != nil {
		blog.Author = b.Author.Username
	}
	if b.Category != nil {
		blog.Category = &b.Category.Title
	}

	return blog
}

func NewBlogDetail(b blogportal.Blog, media MediaURL) BlogDetail {
	return BlogDetail{Blog: NewBlog(b, media), Content: b.Content}
}

func NewBlogPage(p *blogportal.Page[blogportal.Blog], media MediaURL) BlogPage {
	return BlogPage{
		Count:    p.Count,
		Next:     p.Next,
		Previous: p.Previous,
		Results:  Map(p.Results, func(b blogportal.Blog) Blog { return NewBlog(b, media) }),
	}
}

func NewCategory(c blogportal.Category) Category {
	return Category{
		CategoryID: c.ID,
		Title:      c.Title,
		ParentID:   c.ParentID,
		Children:   Map(c.Children, NewCategory),
	}
}

func NewMenuItem(m blogportal.MenuItem) MenuItem {
	return MenuItem{
		MenuItemID: m.ID,
		Title:      m.Title,
		URL:        m.URL,
		Order:      m.OrderNumber,
	}
}

func NewTag(t blogportal.TagUsage) Tag {
	return Tag{
		TagID: t.ID,
		Name:  t.Name,
		Slug:  t.Slug,
		Count: t.Count,
	}
}
