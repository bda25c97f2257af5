package rest

import (
	"github.com/daniilsolovey/blog-portal/internal/blogportal"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

// mediaURL turns a stored file reference into a public address.
type mediaURL func(ref string) string

func (u mediaURL) ptr(ref *string) *string {
	if ref == nil || *ref == "" {
		return nil
	}
	s := u(*ref)
	return &s
}

func (u mediaURL) NewBlog(b blogportal.Blog) Blog {
	blog := Blog{
		ID:        b.ID,
		Title:     b.Title,
		Image:     u.ptr(b.Image),
		Tags:      Map(b.Tags, func(t blogportal.Tag) string { return t.Name }),
		CreatedAt: b.CreatedAt,
		IsActive:  b.IsActive,
	}
	if b.Author != nil {
		blog.Author = b.Author.Username
	}
	if b.Category != nil {
		blog.Category = &b.Category.Title
	}

	return blog
}

func (u mediaURL) NewBlogDetail(b blogportal.Blog) BlogDetail {
	return BlogDetail{
		Blog:    u.NewBlog(b),
		Content: b.Content,
	}
}

func (u mediaURL) NewBlogPage(p *blogportal.Page[blogportal.Blog]) BlogPage {
	return BlogPage{
		Count:    p.Count,
		Next:     p.Next,
		Previous: p.Previous,
		Results:  Map(p.Results, u.NewBlog),
	}
}

func (u mediaURL) NewProfile(user *blogportal.User) Profile {
	return Profile{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		ProfileImage: u.ptr(user.ProfileImage),
	}
}

func NewComment(c blogportal.Comment) Comment {
	comment := Comment{
		ID:        c.ID,
		Content:   c.Content,
		BlogID:    c.BlogID,
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt,
		Likes:     c.Likes,
		Dislikes:  c.Dislikes,
		Children:  Map(c.Children, NewComment),
	}
	if c.Author != nil {
		comment.Author = c.Author.Username
	}

	return comment
}

func NewCommentList(list []blogportal.Comment) CommentList {
	return CommentList{
		Count:   len(list),
		Results: Map(list, NewComment),
	}
}

func NewCategory(c blogportal.Category) Category {
	return Category{
		ID:       c.ID,
		Title:    c.Title,
		ParentID: c.ParentID,
		Children: Map(c.Children, NewCategory),
	}
}

func NewCategoryList(list []blogportal.Category) CategoryList {
	return CategoryList{
		Count:   len(list),
		Results: Map(list, NewCategory),
	}
}

func NewMenu(list []blogportal.MenuItem) Menu {
	return Menu{
		Items: Map(list, func(m blogportal.MenuItem) MenuItem {
			return MenuItem{ID: m.ID, Title: m.Title, URL: m.URL, Order: m.OrderNumber}
		}),
	}
}

func NewTag(t blogportal.TagUsage) Tag {
	return Tag{
		ID:    t.ID,
		Name:  t.Name,
		Slug:  t.Slug,
		Count: t.Count,
	}
}
