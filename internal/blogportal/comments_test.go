package blogportal_test

import (
	"context"
	"sync"
	"testing"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
	"github.com/daniilsolovey/blog-portal/internal/blogportal/blogportaltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentManager_ListForBlog(t *testing.T) {
	ctx := context.Background()
	f := blogportaltest.NewFixture()
	m := blogportal.NewCommentManager(f.Store)

	list, err := m.ListForBlog(ctx, f.GenericsBlog.ID)
	require.NoError(t, err)

	require.Len(t, list, 1)
	root := list[0]
	assert.Equal(t, "first", root.Content)
	require.NotNil(t, root.Author)
	assert.Equal(t, "bob", root.Author.Username)

	require.Len(t, root.Children, 1)
	reply := root.Children[0]
	assert.Equal(t, "reply", reply.Content)
	assert.Equal(t, "alice", reply.Author.Username)
	assert.NotNil(t, reply.Children, "grandchildren are an empty list")
	assert.Empty(t, reply.Children)

	t.Run("BlogWithoutComments", func(t *testing.T) {
		list, err := m.ListForBlog(ctx, f.Indexes.ID)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("InactiveBlog", func(t *testing.T) {
		_, err := m.ListForBlog(ctx, f.Draft.ID)
		assert.NoError(t, err)
	})

	t.Run("MissingBlog", func(t *testing.T) {
		_, err := m.ListForBlog(ctx, 9999)
		assert.ErrorIs(t, err, blogportal.ErrNotFound)
	})
}

func TestCommentManager_Create(t *testing.T) {
	ctx := context.Background()
	f := blogportaltest.NewFixture()
	m := blogportal.NewCommentManager(f.Store)
	alice := blogportal.NewUser(&f.Alice)

	t.Run("RootWithZeroParent", func(t *testing.T) {
		c, err := m.Create(ctx, alice, f.Indexes.ID, blogportal.CommentInput{Content: "nice", ParentID: ptr(0)})
		require.NoError(t, err)
		assert.Nil(t, c.ParentID)
		assert.Equal(t, f.Alice.ID, c.AuthorID)
		assert.Equal(t, "alice", c.Author.Username)
		assert.Zero(t, c.Likes)
		assert.NotNil(t, c.Children)
		assert.Empty(t, c.Children)
	})

	t.Run("ReplyToReply", func(t *testing.T) {
		c, err := m.Create(ctx, alice, f.GenericsBlog.ID, blogportal.CommentInput{Content: "deeper", ParentID: &f.Deep.ID})
		require.NoError(t, err)
		assert.Equal(t, f.Deep.ID, *c.ParentID)
	})

	t.Run("ParentFromOtherBlog", func(t *testing.T) {
		_, err := m.Create(ctx, alice, f.Indexes.ID, blogportal.CommentInput{Content: "x", ParentID: &f.First.ID})
		assert.ErrorIs(t, err, blogportal.ErrParentNotFound)
		msg, _ := blogportal.PublicMessage(err)
		assert.Equal(t, "Parent comment not found", msg)
	})

	t.Run("Anonymous", func(t *testing.T) {
		_, err := m.Create(ctx, nil, f.Indexes.ID, blogportal.CommentInput{Content: "x"})
		assert.ErrorIs(t, err, blogportal.ErrUnauthenticated)
	})

	t.Run("BlankContent", func(t *testing.T) {
		_, err := m.Create(ctx, alice, f.Indexes.ID, blogportal.CommentInput{Content: " \n"})
		assert.ErrorIs(t, err, blogportal.ErrValidation)
	})

	t.Run("MissingBlog", func(t *testing.T) {
		_, err := m.Create(ctx, alice, 9999, blogportal.CommentInput{Content: "x"})
		assert.ErrorIs(t, err, blogportal.ErrNotFound)
	})
}

func TestCommentManager_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	f := blogportaltest.NewFixture()
	m := blogportal.NewCommentManager(f.Store)
	alice, bob := blogportal.NewUser(&f.Alice), blogportal.NewUser(&f.Bob)

	_, err := m.Update(ctx, alice, f.GenericsBlog.ID, f.First.ID, "mine now")
	assert.ErrorIs(t, err, blogportal.ErrForbidden)

	updated, err := m.Update(ctx, bob, f.GenericsBlog.ID, f.First.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)
	require.Len(t, updated.Children, 1)
	assert.Equal(t, f.Reply.ID, updated.Children[0].ID)

	_, err = m.Update(ctx, bob, f.Indexes.ID, f.First.ID, "wrong blog")
	assert.ErrorIs(t, err, blogportal.ErrNotFound)

	assert.ErrorIs(t, m.Delete(ctx, alice, f.GenericsBlog.ID, f.First.ID), blogportal.ErrForbidden)
	assert.ErrorIs(t, m.Delete(ctx, nil, f.GenericsBlog.ID, f.First.ID), blogportal.ErrUnauthenticated)

	require.NoError(t, m.Delete(ctx, bob, f.GenericsBlog.ID, f.First.ID))
	for _, id := range []int{f.First.ID, f.Reply.ID, f.Deep.ID} {
		_, ok := f.Store.Comment(id)
		assert.False(t, ok, "comment %d", id)
	}

	assert.ErrorIs(t, m.Delete(ctx, bob, f.GenericsBlog.ID, f.First.ID), blogportal.ErrNotFound)
}

func TestCommentManager_Reactions(t *testing.T) {
	ctx := context.Background()
	f := blogportaltest.NewFixture()
	m := blogportal.NewCommentManager(f.Store)

	_, err := m.Like(ctx, f.GenericsBlog.ID, f.Reply.ID)
	require.NoError(t, err)
	c, err := m.Like(ctx, f.GenericsBlog.ID, f.Reply.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Likes)
	assert.Zero(t, c.Dislikes)
	require.Len(t, c.Children, 1)
	assert.Equal(t, f.Deep.ID, c.Children[0].ID)

	c, err = m.Dislike(ctx, f.GenericsBlog.ID, f.Reply.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Likes)
	assert.Equal(t, 1, c.Dislikes)

	_, err = m.Like(ctx, f.Indexes.ID, f.Reply.ID)
	assert.ErrorIs(t, err, blogportal.ErrNotFound)
	_, err = m.Dislike(ctx, f.GenericsBlog.ID, 9999)
	assert.ErrorIs(t, err, blogportal.ErrNotFound)

	t.Run("Concurrent", func(t *testing.T) {
		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := m.Like(ctx, f.GenericsBlog.ID, f.Deep.ID)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		stored, _ := f.Store.Comment(f.Deep.ID)
		assert.Equal(t, 20, stored.Likes)
	})
}
