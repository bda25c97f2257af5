package blogportal

import (
	"github.com/daniilsolovey/blog-portal/internal/db"
)

type Blogs []Blog

func (ll Blogs) IDs() []int {
	ids := make([]int, len(ll))
	for i := range ll {
		ids[i] = ll[i].ID
	}
	return ids
}

// SetTags distributes tag links over the blogs keeping link order.
func (ll Blogs) SetTags(links []db.BlogTag) {
	byBlog := make(map[int][]Tag, len(ll))
	for _, link := range links {
		if link.Tag == nil {
			continue
		}
		byBlog[link.BlogID] = append(byBlog[link.BlogID], NewTag(link.Tag))
	}

	for i := range ll {
		if tags, ok := byBlog[ll[i].ID]; ok {
			ll[i].Tags = tags
		} else {
			ll[i].Tags = []Tag{}
		}
	}
}
