package blogportal

import (
	"github.com/daniilsolovey/blog-portal/internal/db"
)

func NewUser(u *db.User) *User {
	if u == nil {
		return nil
	}
	return &User{User: *u}
}

func NewCategory(c *db.Category) Category {
	return Category{Category: *c}
}

func NewCategories(in []db.Category) []Category {
	out := make([]Category, len(in))
	for i := range in {
		out[i] = NewCategory(&in[i])
	}
	return out
}

func NewComment(c *db.Comment) Comment {
	return Comment{Comment: *c}
}

func NewComments(in []db.Comment) []Comment {
	out := make([]Comment, len(in))
	for i := range in {
		out[i] = NewComment(&in[i])
	}
	return out
}

func NewTag(t *db.Tag) Tag {
	return Tag{Tag: *t}
}

func NewBlog(b *db.Blog) Blog {
	return Blog{Blog: *b, Tags: []Tag{}}
}

func NewBlogs(in []db.Blog) Blogs {
	out := make(Blogs, len(in))
	for i := range in {
		out[i] = NewBlog(&in[i])
	}
	return out
}

func NewMenuItems(in []db.MenuItem) []MenuItem {
	out := make([]MenuItem, len(in))
	for i := range in {
		out[i] = MenuItem{MenuItem: in[i]}
	}
	return out
}

func NewTagUsages(in []db.TagCount) []TagUsage {
	out := make([]TagUsage, len(in))
	for i := range in {
		out[i] = TagUsage{TagCount: in[i]}
	}
	return out
}
