// Package blogportaltest provides in-memory doubles of blogportal collaborators.
package blogportaltest

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/daniilsolovey/blog-portal/internal/auth"
	"github.com/daniilsolovey/blog-portal/internal/blogportal"
	"github.com/daniilsolovey/blog-portal/internal/db"
)

type state struct {
	users      map[int]db.User
	categories map[int]db.Category
	blogs      map[int]db.Blog
	tags       map[int]db.Tag
	blogTags   map[[2]int]struct{}
	comments   map[int]db.Comment
	menu       map[int]db.MenuItem
	seq        int
}

func (s state) clone() state {
	return state{
		users:      maps.Clone(s.users),
		categories: maps.Clone(s.categories),
		blogs:      maps.Clone(s.blogs),
		tags:       maps.Clone(s.tags),
		blogTags:   maps.Clone(s.blogTags),
		comments:   maps.Clone(s.comments),
		menu:       maps.Clone(s.menu),
		seq:        s.seq,
	}
}

// Store is an in-memory blogportal.Store with the ordering and cascade rules of the database.
// Errors maps a method name to an error returned by that method.
type Store struct {
	mu     sync.Mutex
	st     state
	Errors map[string]error
}

var _ blogportal.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		st: state{
			users:      map[int]db.User{},
			categories: map[int]db.Category{},
			blogs:      map[int]db.Blog{},
			tags:       map[int]db.Tag{},
			blogTags:   map[[2]int]struct{}{},
			comments:   map[int]db.Comment{},
			menu:       map[int]db.MenuItem{},
		},
		Errors: map[string]error{},
	}
}

func (s *Store) fail(method string) error {
	if err, ok := s.Errors[method]; ok {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

func (s *Store) nextID() int {
	s.st.seq++
	return s.st.seq
}

// InTx runs fn and restores the previous state when fn fails.
func (s *Store) InTx(ctx context.Context, fn func(blogportal.Store) error) error {
	s.mu.Lock()
	snapshot := s.st.clone()
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.st = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

// Users

func (s *Store) UserByID(_ context.Context, userID int) (*db.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("UserByID"); err != nil {
		return nil, err
	}
	if u, ok := s.st.users[userID]; ok {
		return &u, nil
	}
	return nil, nil
}

func (s *Store) UserByUsername(_ context.Context, username string) (*db.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("UserByUsername"); err != nil {
		return nil, err
	}
	for _, u := range s.st.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (s *Store) UserByEmail(_ context.Context, email string) (*db.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("UserByEmail"); err != nil {
		return nil, err
	}
	for _, u := range s.st.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateUser(_ context.Context, user *db.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("CreateUser"); err != nil {
		return err
	}
	for _, u := range s.st.users {
		if u.Username == user.Username || strings.EqualFold(u.Email, user.Email) {
			return db.ErrDuplicate
		}
	}
	user.ID = s.nextID()
	s.st.users[user.ID] = *user
	return nil
}

func (s *Store) UpdateUser(_ context.Context, user *db.User, _ ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("UpdateUser"); err != nil {
		return err
	}
	for _, u := range s.st.users {
		if u.ID != user.ID && strings.EqualFold(u.Email, user.Email) {
			return db.ErrDuplicate
		}
	}
	s.st.users[user.ID] = *user
	return nil
}

// Categories

func sortCategories(list []db.Category) []db.Category {
	slices.SortFunc(list, func(a, b db.Category) int {
		return cmp.Or(cmp.Compare(a.Title, b.Title), cmp.Compare(a.ID, b.ID))
	})
	return list
}

func (s *Store) CategoryRoots(_ context.Context) ([]db.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("CategoryRoots"); err != nil {
		return nil, err
	}
	list := []db.Category{}
	for _, c := range s.st.categories {
		if c.ParentID == nil {
			list = append(list, c)
		}
	}
	return sortCategories(list), nil
}

func (s *Store) CategoryChildren(_ context.Context, parentIDs []int) ([]db.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("CategoryChildren"); err != nil {
		return nil, err
	}
	list := []db.Category{}
	for _, c := range s.st.categories {
		if c.ParentID != nil && slices.Contains(parentIDs, *c.ParentID) {
			list = append(list, c)
		}
	}
	return sortCategories(list), nil
}

func (s *Store) CategoryByID(_ context.Context, categoryID int) (*db.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("CategoryByID"); err != nil {
		return nil, err
	}
	if c, ok := s.st.categories[categoryID]; ok {
		return &c, nil
	}
	return nil, nil
}

func (s *Store) CreateCategory(_ context.Context, category *db.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("CreateCategory"); err != nil {
		return err
	}
	category.ID = s.nextID()
	s.st.categories[category.ID] = *category
	return nil
}

func (s *Store) DeleteCategory(_ context.Context, categoryID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("DeleteCategory"); err != nil {
		return false, err
	}
	if _, ok := s.st.categories[categoryID]; !ok {
		return false, nil
	}

	removed := map[int]bool{categoryID: true}
	for changed := true; changed; {
		changed = false
		for id, c := range s.st.categories {
			if !removed[id] && c.ParentID != nil && removed[*c.ParentID] {
				removed[id] = true
				changed = true
			}
		}
	}

	for id := range removed {
		delete(s.st.categories, id)
	}
	for id, b := range s.st.blogs {
		if b.CategoryID != nil && removed[*b.CategoryID] {
			b.CategoryID = nil
			s.st.blogs[id] = b
		}
	}
	return true, nil
}

// Blogs

func (s *Store) withRelations(b db.Blog) db.Blog {
	b.Author, b.Category = nil, nil
	if u, ok := s.st.users[b.AuthorID]; ok {
		b.Author = &u
	}
	if b.CategoryID != nil {
		if c, ok := s.st.categories[*b.CategoryID]; ok {
			b.Category = &c
		}
	}
	return b
}

func (s *Store) match(b db.Blog, q *db.BlogSearch) bool {
	if !b.IsActive {
		return false
	}
	if q == nil {
		return true
	}
	switch {
	case q.CreatedFrom != nil && b.CreatedAt.Before(*q.CreatedFrom):
		return false
	case q.CreatedTo != nil && !b.CreatedAt.Before(*q.CreatedTo):
		return false
	case q.AuthorID != nil && b.AuthorID != *q.AuthorID:
		return false
	case q.CategoryID != nil && (b.CategoryID == nil || *b.CategoryID != *q.CategoryID):
		return false
	}

	if len(q.Tags) > 0 {
		found := false
		for key := range s.st.blogTags {
			if key[0] == b.ID && slices.Contains(q.Tags, s.st.tags[key[1]].Name) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if q.Text != "" {
		text := strings.ToLower(q.Text)
		if !strings.Contains(strings.ToLower(b.Title), text) && !strings.Contains(strings.ToLower(b.Content), text) {
			return false
		}
	}

	return true
}

func (s *Store) search(q *db.BlogSearch) []db.Blog {
	list := []db.Blog{}
	for _, b := range s.st.blogs {
		if s.match(b, q) {
			list = append(list, s.withRelations(b))
		}
	}
	slices.SortFunc(list, func(a, b db.Blog) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(b.ID, a.ID))
	})
	return list
}

func (s *Store) Blogs(_ context.Context, q *db.BlogSearch, limit, offset int) ([]db.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("Blogs"); err != nil {
		return nil, err
	}
	if limit < 1 || offset < 0 {
		return nil, fmt.Errorf("invalid limit %d or offset %d", limit, offset)
	}
	list := s.search(q)
	if offset >= len(list) {
		return []db.Blog{}, nil
	}
	return list[offset:min(offset+limit, len(list))], nil
}

func (s *Store) BlogsCount(_ context.Context, q *db.BlogSearch) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("BlogsCount"); err != nil {
		return 0, err
	}
	return len(s.search(q)), nil
}

func (s *Store) BlogByID(_ context.Context, blogID int, activeOnly bool) (*db.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("BlogByID"); err != nil {
		return nil, err
	}
	b, ok := s.st.blogs[blogID]
	if !ok || (activeOnly && !b.IsActive) {
		return nil, nil
	}
	b = s.withRelations(b)
	return &b, nil
}

func (s *Store) CreateBlog(_ context.Context, blog *db.Blog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("CreateBlog"); err != nil {
		return err
	}
	blog.ID = s.nextID()
	stored := *blog
	stored.Author, stored.Category = nil, nil
	s.st.blogs[blog.ID] = stored
	return nil
}

func (s *Store) UpdateBlog(_ context.Context, blog *db.Blog, _ ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("UpdateBlog"); err != nil {
		return err
	}
	stored := *blog
	stored.Author, stored.Category = nil, nil
	s.st.blogs[blog.ID] = stored
	return nil
}

func (s *Store) DeleteBlog(_ context.Context, blogID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("DeleteBlog"); err != nil {
		return false, err
	}
	if _, ok := s.st.blogs[blogID]; !ok {
		return false, nil
	}
	delete(s.st.blogs, blogID)
	for key := range s.st.blogTags {
		if key[0] == blogID {
			delete(s.st.blogTags, key)
		}
	}
	for id, c := range s.st.comments {
		if c.BlogID == blogID {
			delete(s.st.comments, id)
		}
	}
	return true, nil
}

func (s *Store) BlogTags(_ context.Context, blogIDs []int) ([]db.BlogTag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("BlogTags"); err != nil {
		return nil, err
	}
	links := []db.BlogTag{}
	for key := range s.st.blogTags {
		if slices.Contains(blogIDs, key[0]) {
			tag := s.st.tags[key[1]]
			links = append(links, db.BlogTag{BlogID: key[0], TagID: key[1], Tag: &tag})
		}
	}
	slices.SortFunc(links, func(a, b db.BlogTag) int {
		return cmp.Or(cmp.Compare(a.Tag.Name, b.Tag.Name), cmp.Compare(a.BlogID, b.BlogID))
	})
	return links, nil
}

func (s *Store) ReplaceBlogTags(_ context.Context, blogID int, tagIDs []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("ReplaceBlogTags"); err != nil {
		return err
	}
	for key := range s.st.blogTags {
		if key[0] == blogID {
			delete(s.st.blogTags, key)
		}
	}
	for _, tagID := range tagIDs {
		s.st.blogTags[[2]int{blogID, tagID}] = struct{}{}
	}
	return nil
}

func (s *Store) EnsureTags(_ context.Context, tags []db.Tag) ([]db.Tag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("EnsureTags"); err != nil {
		return nil, err
	}
	out := make([]db.Tag, len(tags))
	for i, t := range tags {
		out[i] = s.ensureTag(t)
	}
	return out, nil
}

func (s *Store) ensureTag(t db.Tag) db.Tag {
	for id, existing := range s.st.tags {
		if existing.Name == t.Name {
			existing.Slug = t.Slug
			s.st.tags[id] = existing
			return existing
		}
	}
	t.ID = s.nextID()
	s.st.tags[t.ID] = t
	return t
}

// Comments

func (s *Store) commentsWhere(keep func(db.Comment) bool) []db.Comment {
	list := []db.Comment{}
	for _, c := range s.st.comments {
		if keep(c) {
			if u, ok := s.st.users[c.AuthorID]; ok {
				c.Author = &u
			}
			list = append(list, c)
		}
	}
	slices.SortFunc(list, func(a, b db.Comment) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})
	return list
}

func (s *Store) CommentRoots(_ context.Context, blogID int) ([]db.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("CommentRoots"); err != nil {
		return nil, err
	}
	return s.commentsWhere(func(c db.Comment) bool {
		return c.BlogID == blogID && c.ParentID == nil
	}), nil
}

func (s *Store) CommentChildren(_ context.Context, parentIDs []int) ([]db.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("CommentChildren"); err != nil {
		return nil, err
	}
	return s.commentsWhere(func(c db.Comment) bool {
		return c.ParentID != nil && slices.Contains(parentIDs, *c.ParentID)
	}), nil
}

func (s *Store) CommentByID(_ context.Context, blogID, commentID int) (*db.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("CommentByID"); err != nil {
		return nil, err
	}
	list := s.commentsWhere(func(c db.Comment) bool {
		return c.ID == commentID && c.BlogID == blogID
	})
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

func (s *Store) CreateComment(_ context.Context, comment *db.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("CreateComment"); err != nil {
		return err
	}
	comment.ID = s.nextID()
	stored := *comment
	stored.Author = nil
	s.st.comments[comment.ID] = stored
	return nil
}

func (s *Store) UpdateCommentContent(_ context.Context, comment *db.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("UpdateCommentContent"); err != nil {
		return err
	}
	stored, ok := s.st.comments[comment.ID]
	if !ok {
		return nil
	}
	stored.Content = comment.Content
	s.st.comments[comment.ID] = stored
	return nil
}

func (s *Store) DeleteComment(_ context.Context, commentID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("DeleteComment"); err != nil {
		return false, err
	}
	if _, ok := s.st.comments[commentID]; !ok {
		return false, nil
	}

	removed := map[int]bool{commentID: true}
	for changed := true; changed; {
		changed = false
		for id, c := range s.st.comments {
			if !removed[id] && c.ParentID != nil && removed[*c.ParentID] {
				removed[id] = true
				changed = true
			}
		}
	}
	for id := range removed {
		delete(s.st.comments, id)
	}
	return true, nil
}

func (s *Store) IncrementCommentCounter(_ context.Context, blogID, commentID int, column string) (*db.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("IncrementCommentCounter"); err != nil {
		return nil, err
	}
	c, ok := s.st.comments[commentID]
	if !ok || c.BlogID != blogID {
		return nil, nil
	}
	switch column {
	case db.Columns.Comment.Likes:
		c.Likes++
	case db.Columns.Comment.Dislikes:
		c.Dislikes++
	default:
		return nil, fmt.Errorf("unknown comment counter %q", column)
	}
	s.st.comments[commentID] = c
	return &c, nil
}

// Catalog

func (s *Store) MenuItems(_ context.Context) ([]db.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("MenuItems"); err != nil {
		return nil, err
	}
	list := slices.Collect(maps.Values(s.st.menu))
	slices.SortFunc(list, func(a, b db.MenuItem) int {
		return cmp.Or(cmp.Compare(a.OrderNumber, b.OrderNumber), cmp.Compare(a.ID, b.ID))
	})
	if list == nil {
		list = []db.MenuItem{}
	}
	return list, nil
}

func (s *Store) TagsWithCount(_ context.Context) ([]db.TagCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("TagsWithCount"); err != nil {
		return nil, err
	}
	counts := map[int]int{}
	for key := range s.st.blogTags {
		counts[key[1]]++
	}
	list := []db.TagCount{}
	for id, t := range s.st.tags {
		list = append(list, db.TagCount{Tag: t, Count: counts[id]})
	}
	slices.SortFunc(list, func(a, b db.TagCount) int {
		return cmp.Or(cmp.Compare(b.Count, a.Count), cmp.Compare(a.Name, b.Name))
	})
	return list, nil
}

// Seeding helpers

// AddUser stores a user with a bcrypt hash of password.
func (s *Store) AddUser(username, email, password string, staff bool) db.User {
	hash, err := auth.HashPassword(password)
	if err != nil {
		panic(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u := db.User{ID: s.nextID(), Username: username, Email: email, PasswordHash: hash, IsStaff: staff}
	s.st.users[u.ID] = u
	return u
}

func (s *Store) DeleteUser(userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.st.users, userID)
}

func (s *Store) AddCategory(title string, parentID *int) db.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := db.Category{ID: s.nextID(), Title: title, ParentID: parentID}
	s.st.categories[c.ID] = c
	return c
}

// AddBlog stores b and links it to tags, creating missing tags.
func (s *Store) AddBlog(b db.Blog, tags ...string) db.Blog {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = s.nextID()
	s.st.blogs[b.ID] = b
	for _, name := range tags {
		t := s.ensureTag(db.Tag{Name: name, Slug: name})
		s.st.blogTags[[2]int{b.ID, t.ID}] = struct{}{}
	}
	return b
}

func (s *Store) AddComment(c db.Comment) db.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.nextID()
	s.st.comments[c.ID] = c
	return c
}

func (s *Store) AddMenuItem(title, url string, order int) db.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := db.MenuItem{ID: s.nextID(), Title: title, URL: url, OrderNumber: order}
	s.st.menu[m.ID] = m
	return m
}

// Blog returns the stored blog without relations.
func (s *Store) Blog(blogID int) (db.Blog, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.st.blogs[blogID]
	return b, ok
}

func (s *Store) User(userID int) (db.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.st.users[userID]
	return u, ok
}

func (s *Store) Comment(commentID int) (db.Comment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.st.comments[commentID]
	return c, ok
}

func (s *Store) Category(categoryID int) (db.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.st.categories[categoryID]
	return c, ok
}
