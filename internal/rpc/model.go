package rpc

import (
	"time"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
)

type BlogFilter struct {
	//dateFrom optional lower bound, YYYY-MM-DD
	DateFrom string `json:"dateFrom,omitempty"`
	//dateTo optional upper bound, YYYY-MM-DD
	DateTo string `json:"dateTo,omitempty"`
	//authorId optional author filter
	AuthorID *int `json:"authorId,omitempty"`
	//categoryId optional category filter
	CategoryID *int `json:"categoryId,omitempty"`
	//tags optional tag names, any of
	Tags []string `json:"tags,omitempty"`
	//search optional substring of title or content
	Search string `json:"search,omitempty"`
	//page=1 page number (1-based)
	Page int `json:"page,omitempty"`
	//pageSize=10 items per page
	PageSize int `json:"pageSize,omitempty"`
}

func (f BlogFilter) ToModel() blogportal.BlogFilter {
	return blogportal.BlogFilter{
		DateFrom:   f.DateFrom,
		DateTo:     f.DateTo,
		AuthorID:   f.AuthorID,
		CategoryID: f.CategoryID,
		Tags:       f.Tags,
		Search:     f.Search,
		Page:       f.Page,
		PageSize:   f.PageSize,
	}
}

type Blog struct {
	BlogID     int       `json:"blogId"`
	Title      string    `json:"title"`
	Image      *string   `json:"image"`
	Author     string    `json:"author"`
	CategoryID *int      `json:"categoryId"`
	Category   *string   `json:"category"`
	Tags       []string  `json:"tags"`
	CreatedAt  time.Time `json:"createdAt"`
}

type BlogDetail struct {
	Blog
	Content string `json:"content"`
}

type BlogPage struct {
	Count    int    `json:"count"`
	Next     *int   `json:"next"`
	Previous *int   `json:"previous"`
	Results  []Blog `json:"results"`
}

type Category struct {
	CategoryID int        `json:"categoryId"`
	Title      string     `json:"title"`
	ParentID   *int       `json:"parentId"`
	Children   []Category `json:"children"`
}

type MenuItem struct {
	MenuItemID int    `json:"menuItemId"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	Order      int    `json:"order"`
}

type Tag struct {
	TagID int    `json:"tagId"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}
