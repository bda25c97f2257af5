package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/daniilsolovey/blog-portal/internal/auth"
	"github.com/daniilsolovey/blog-portal/internal/blogportal"
	"github.com/daniilsolovey/blog-portal/internal/blogportal/blogportaltest"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

type testEnv struct {
	f      *blogportaltest.Fixture
	e      *echo.Echo
	users  *blogportal.UserManager
	images *blogportaltest.Images
	mailer *blogportaltest.Mailer
	ping   error
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := blogportaltest.NewFixture()
	images := blogportaltest.NewImages()
	mailer := &blogportaltest.Mailer{}
	tokens := auth.NewTokenService(auth.Config{Secret: "rest-secret"})

	env := &testEnv{f: f, images: images, mailer: mailer}
	env.users = blogportal.NewUserManager(f.Store, tokens, mailer, images,
		blogportal.UserManagerConfig{SiteName: "Blog", FrontendURL: "http://front/"}, logger)

	h := NewHandler(Managers{
		Blogs:      blogportal.NewBlogManager(f.Store, images, logger),
		Comments:   blogportal.NewCommentManager(f.Store),
		Categories: blogportal.NewCategoryManager(f.Store),
		Catalog:    blogportal.NewCatalogManager(f.Store),
		Users:      env.users,
	}, Options{
		MediaURL: func(ref string) string { return "http://media/" + ref },
		Pinger:   pingFunc(func(context.Context) error { return env.ping }),
	}, logger)

	env.e = echo.New()
	h.RegisterRoutes(env.e)

	return env
}

func (env *testEnv) token(t *testing.T, username string) string {
	t.Helper()
	token, err := env.users.Login(context.Background(), username, blogportaltest.Password)
	require.NoError(t, err)
	return token
}

// do sends body as JSON unless it is already a *bytes.Buffer with contentType set.
func (env *testEnv) do(t *testing.T, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) doRequest(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func requireMessage(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	assert.Equal(t, message, decode[Message](t, rec).Message)
}

func multipartBody(t *testing.T, fields map[string]string, fileField, filename string) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		part, err := w.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return buf, w.FormDataContentType()
}

func TestHandler_System(t *testing.T) {
	t.Run("Health", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(t, http.MethodGet, "/health", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", decode[map[string]string](t, rec)["status"])
	})

	t.Run("HealthDatabaseDown", func(t *testing.T) {
		env := newTestEnv(t)
		env.ping = errors.New("connection refused")
		rec := env.do(t, http.MethodGet, "/health", "", nil)
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "unavailable", decode[map[string]string](t, rec)["status"])
	})

	t.Run("Metrics", func(t *testing.T) {
		env := newTestEnv(t)
		env.do(t, http.MethodGet, "/blogs", "", nil)

		rec := env.do(t, http.MethodGet, "/metrics", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `blog_portal_http_requests_total{method="GET",route="/blogs",status="200"} 1`)
	})

	t.Run("SwaggerDoc", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(t, http.MethodGet, "/swagger/doc.json", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Blog Portal API")
	})

	t.Run("UnknownRoute", func(t *testing.T) {
		env := newTestEnv(t)
		requireMessage(t, env.do(t, http.MethodGet, "/nope", "", nil), http.StatusNotFound, "Not Found")
	})
}

func TestHandler_Blogs(t *testing.T) {
	t.Run("ListDefault", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(t, http.MethodGet, "/blogs/", "", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		page := decode[BlogPage](t, rec)
		assert.Equal(t, 4, page.Count)
		assert.Nil(t, page.Next)
		assert.Nil(t, page.Previous)
		require.Len(t, page.Results, 4)

		first := page.Results[0]
		assert.Equal(t, env.f.GenericsBlog.ID, first.ID)
		assert.Equal(t, "alice", first.Author)
		require.NotNil(t, first.Category)
		assert.Equal(t, "Go", *first.Category)
		assert.Equal(t, []string{"go", "rust"}, first.Tags)
		assert.True(t, first.IsActive)
		assert.NotContains(t, rec.Body.String(), `"content"`)
	})

	t.Run("ListFilters", func(t *testing.T) {
		env := newTestEnv(t)
		tcs := []struct {
			name  string
			query string
			want  []int
		}{
			{name: "Tag", query: "tags=sql", want: []int{env.f.Indexes.ID}},
			{name: "Author", query: fmt.Sprintf("author_id=%d", env.f.Bob.ID), want: []int{env.f.Indexes.ID, env.f.Football.ID}},
			{name: "Category", query: fmt.Sprintf("category_id=%d", env.f.Sports.ID), want: []int{env.f.Football.ID}},
			{name: "Search", query: "search=BORROW", want: []int{env.f.Ownership.ID}},
		}
		for _, tc := range tcs {
			t.Run(tc.name, func(t *testing.T) {
				rec := env.do(t, http.MethodGet, "/blogs?"+tc.query, "", nil)
				require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

				page := decode[BlogPage](t, rec)
				got := Map(page.Results, func(b Blog) int { return b.ID })
				assert.Equal(t, tc.want, got)
			})
		}
	})

	t.Run("ListPagination", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(t, http.MethodGet, "/blogs?page=2&page_size=3", "", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		page := decode[BlogPage](t, rec)
		assert.Equal(t, 4, page.Count)
		assert.Nil(t, page.Next)
		require.NotNil(t, page.Previous)
		assert.Equal(t, 1, *page.Previous)
		require.Len(t, page.Results, 1)
		assert.Equal(t, env.f.Football.ID, page.Results[0].ID)
	})

	t.Run("ListMalformedNumbers", func(t *testing.T) {
		env := newTestEnv(t)
		requireMessage(t, env.do(t, http.MethodGet, "/blogs?author_id=abc", "", nil), http.StatusBadRequest, "Invalid author_id")
		requireMessage(t, env.do(t, http.MethodGet, "/blogs?category_id=1.5", "", nil), http.StatusBadRequest, "Invalid category_id")
		requireMessage(t, env.do(t, http.MethodGet, "/blogs?page=two", "", nil), http.StatusBadRequest, "Invalid page")
		requireMessage(t, env.do(t, http.MethodGet, "/blogs?page_size=x", "", nil), http.StatusBadRequest, "Invalid page_size")
	})

	t.Run("ListStoreFailure", func(t *testing.T) {
		env := newTestEnv(t)
		env.f.Store.Errors["Blogs"] = errors.New("boom")
		env.f.Store.Errors["BlogsCount"] = errors.New("boom")
		requireMessage(t, env.do(t, http.MethodGet, "/blogs", "", nil), http.StatusInternalServerError, internalErrorMessage)
	})

	t.Run("ByID", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(t, http.MethodGet, fmt.Sprintf("/blogs/%d", env.f.Indexes.ID), "", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		blog := decode[BlogDetail](t, rec)
		assert.Equal(t, "btree 100% explained", blog.Content)
		assert.Nil(t, blog.Category)
		assert.Nil(t, blog.Image)
	})

	t.Run("ByIDErrors", func(t *testing.T) {
		env := newTestEnv(t)
		requireMessage(t, env.do(t, http.MethodGet, "/blogs/abc", "", nil), http.StatusBadRequest, "Invalid id")
		requireMessage(t, env.do(t, http.MethodGet, "/blogs/9999", "", nil), http.StatusNotFound, "Blog not found")
		requireMessage(t, env.do(t, http.MethodGet, fmt.Sprintf("/blogs/%d", env.f.Draft.ID), "", nil),
			http.StatusNotFound, "Blog not found")
	})
}

func TestHandler_BlogWrites(t *testing.T) {
	t.Run("CreateRequiresAuth", func(t *testing.T) {
		env := newTestEnv(t)
		body := map[string]any{"title": "New", "content": "body"}
		requireMessage(t, env.do(t, http.MethodPost, "/blogs", "", body), http.StatusUnauthorized, "Authentication required")
		requireMessage(t, env.do(t, http.MethodPost, "/blogs", "garbage", body), http.StatusUnauthorized, "Invalid token")
	})

	t.Run("MalformedAuthHeader", func(t *testing.T) {
		env := newTestEnv(t)
		req := httptest.NewRequest(http.MethodGet, "/users/profile", nil)
		req.Header.Set(echo.HeaderAuthorization, "Basic abc")
		requireMessage(t, env.doRequest(req), http.StatusUnauthorized, "Invalid token")
	})

	t.Run("CreateJSON", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(t, http.MethodPost, "/blogs", env.token(t, "alice"), map[string]any{
			"title":       "Fresh",
			"content":     "<p>hello</p>",
			"category_id": env.f.Sports.ID,
			"tags":        []string{"go", "new"},
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		blog := decode[BlogDetail](t, rec)
		assert.NotZero(t, blog.ID)
		assert.Equal(t, "alice", blog.Author)
		assert.Equal(t, "<p>hello</p>", blog.Content)
		require.NotNil(t, blog.Category)
		assert.Equal(t, "Sports", *blog.Category)
		assert.ElementsMatch(t, []string{"go", "new"}, blog.Tags)
		assert.True(t, blog.IsActive)
	})

	t.Run("CreateMultipartWithImage", func(t *testing.T) {
		env := newTestEnv(t)
		body, ctype := multipartBody(t, map[string]string{
			"title":   "With cover",
			"content": "text",
			"tags":    `["go","pics"]`,
		}, "image", "cover.png")

		req := httptest.NewRequest(http.MethodPost, "/blogs", body)
		req.Header.Set(echo.HeaderContentType, ctype)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+env.token(t, "bob"))
		rec := env.doRequest(req)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		blog := decode[BlogDetail](t, rec)
		require.NotNil(t, blog.Image)
		assert.True(t, strings.HasPrefix(*blog.Image, "http://media/blog_images/"), *blog.Image)
		assert.ElementsMatch(t, []string{"go", "pics"}, blog.Tags)
		assert.Equal(t, 1, env.images.Len())
	})

	t.Run("CreateUnsupportedImage", func(t *testing.T) {
		env := newTestEnv(t)
		body, ctype := multipartBody(t, map[string]string{"title": "Bad", "content": "text"}, "image", "virus.exe")

		req := httptest.NewRequest(http.MethodPost, "/blogs", body)
		req.Header.Set(echo.HeaderContentType, ctype)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+env.token(t, "bob"))
		requireMessage(t, env.doRequest(req), http.StatusBadRequest, "Unsupported image type")
	})

	t.Run("CreateValidation", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.token(t, "alice")
		requireMessage(t, env.do(t, http.MethodPost, "/blogs", token, map[string]any{"content": "x"}),
			http.StatusBadRequest, "Title is required")
		requireMessage(t, env.do(t, http.MethodPost, "/blogs", token, map[string]any{"title": "x"}),
			http.StatusBadRequest, "Content is required")
	})

	t.Run("UpdateByAuthor", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(t, http.MethodPut, fmt.Sprintf("/blogs/%d", env.f.GenericsBlog.ID), env.token(t, "alice"), map[string]any{
			"title":       "Generics revisited",
			"category_id": "",
			"tags":        []string{},
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		blog := decode[BlogDetail](t, rec)
		assert.Equal(t, "Generics revisited", blog.Title)
		assert.Equal(t, "type parameters", blog.Content)
		assert.Nil(t, blog.Category)
		assert.Empty(t, blog.Tags)
	})

	t.Run("UpdateUrlencodedForm", func(t *testing.T) {
		env := newTestEnv(t)
		req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/blogs/%d", env.f.Indexes.ID),
			strings.NewReader("is_active=off&tags=db&tags=sql"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+env.token(t, "bob"))
		rec := env.doRequest(req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		blog := decode[BlogDetail](t, rec)
		assert.False(t, blog.IsActive)
		assert.ElementsMatch(t, []string{"db", "sql"}, blog.Tags)
	})

	t.Run("UpdateMultipartBlankTagsKeepsTags", func(t *testing.T) {
		env := newTestEnv(t)
		body, ctype := multipartBody(t, map[string]string{"title": "Generics again", "tags": ""}, "", "")

		req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/blogs/%d", env.f.GenericsBlog.ID), body)
		req.Header.Set(echo.HeaderContentType, ctype)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+env.token(t, "alice"))
		rec := env.doRequest(req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		blog := decode[BlogDetail](t, rec)
		assert.Equal(t, "Generics again", blog.Title)
		assert.ElementsMatch(t, []string{"go", "rust"}, blog.Tags)
	})

	t.Run("UpdateBadBoolean", func(t *testing.T) {
		env := newTestEnv(t)
		req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/blogs/%d", env.f.Indexes.ID),
			strings.NewReader("is_active=maybe"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+env.token(t, "bob"))
		requireMessage(t, env.doRequest(req), http.StatusBadRequest, "is_active must be a boolean")
	})

	t.Run("UpdateByStranger", func(t *testing.T) {
		env := newTestEnv(t)
		requireMessage(t,
			env.do(t, http.MethodPut, fmt.Sprintf("/blogs/%d", env.f.GenericsBlog.ID), env.token(t, "bob"), map[string]any{"title": "mine"}),
			http.StatusForbidden, "You do not have permission to edit this blog")
	})

	t.Run("Delete", func(t *testing.T) {
		env := newTestEnv(t)
		target := fmt.Sprintf("/blogs/%d", env.f.GenericsBlog.ID)

		requireMessage(t, env.do(t, http.MethodDelete, target, env.token(t, "bob"), nil),
			http.StatusForbidden, "You do not have permission to delete this blog")

		rec := env.do(t, http.MethodDelete, target, env.token(t, "alice"), nil)
		require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
		assert.Empty(t, rec.Body.String())

		requireMessage(t, env.do(t, http.MethodGet, target, "", nil), http.StatusNotFound, "Blog not found")
		_, ok := env.f.Store.Comment(env.f.First.ID)
		assert.False(t, ok)
	})
}

func TestHandler_Comments(t *testing.T) {
	t.Run("List", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(t, http.MethodGet, fmt.Sprintf("/blogs/%d/comments/", env.f.GenericsBlog.ID), "", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		list := decode[CommentList](t, rec)
		require.Equal(t, 1, list.Count)
		root := list.Results[0]
		assert.Equal(t, "first", root.Content)
		assert.Equal(t, "bob", root.Author)
		require.Len(t, root.Children, 1)
		assert.Equal(t, "reply", root.Children[0].Content)
		assert.NotNil(t, root.Children[0].Children)
	})

	t.Run("ListMissingBlog", func(t *testing.T) {
		env := newTestEnv(t)
		requireMessage(t, env.do(t, http.MethodGet, "/blogs/9999/comments", "", nil), http.StatusNotFound, "Blog not found")
	})

	t.Run("Create", func(t *testing.T) {
		env := newTestEnv(t)
		target := fmt.Sprintf("/blogs/%d/comments", env.f.GenericsBlog.ID)
		token := env.token(t, "alice")

		rec := env.do(t, http.MethodPost, target, token, map[string]any{"content": "nice", "parent_id": env.f.First.ID})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		comment := decode[Comment](t, rec)
		assert.Equal(t, "alice", comment.Author)
		require.NotNil(t, comment.ParentID)
		assert.Equal(t, env.f.First.ID, *comment.ParentID)
		assert.Equal(t, []Comment{}, comment.Children)

		requireMessage(t, env.do(t, http.MethodPost, target, token, map[string]any{"content": ""}),
			http.StatusBadRequest, "content is required")
		requireMessage(t, env.do(t, http.MethodPost, target, token, map[string]any{"content": "x", "parent_id": 9999}),
			http.StatusBadRequest, "Parent comment not found")
		requireMessage(t, env.do(t, http.MethodPost, target, "", map[string]any{"content": "x"}),
			http.StatusUnauthorized, "Authentication required")
	})

	t.Run("UpdateAndDelete", func(t *testing.T) {
		env := newTestEnv(t)
		target := fmt.Sprintf("/blogs/%d/comments/%d", env.f.GenericsBlog.ID, env.f.First.ID)

		requireMessage(t, env.do(t, http.MethodPut, target, env.token(t, "alice"), map[string]any{"content": "hijack"}),
			http.StatusForbidden, "You do not have permission to edit this comment")

		rec := env.do(t, http.MethodPut, target, env.token(t, "bob"), map[string]any{"content": "edited"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "edited", decode[Comment](t, rec).Content)

		rec = env.do(t, http.MethodDelete, target, env.token(t, "bob"), nil)
		require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
		_, ok := env.f.Store.Comment(env.f.Deep.ID)
		assert.False(t, ok)
	})

	t.Run("LikeAndDislikeAnonymously", func(t *testing.T) {
		env := newTestEnv(t)
		base := fmt.Sprintf("/blogs/%d/comments/%d", env.f.GenericsBlog.ID, env.f.Reply.ID)

		env.do(t, http.MethodPost, base+"/like", "", nil)
		rec := env.do(t, http.MethodPost, base+"/like/", "", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, 2, decode[Comment](t, rec).Likes)

		rec = env.do(t, http.MethodPost, base+"/dislike", "", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		comment := decode[Comment](t, rec)
		assert.Equal(t, 2, comment.Likes)
		assert.Equal(t, 1, comment.Dislikes)

		requireMessage(t, env.do(t, http.MethodPost, fmt.Sprintf("/blogs/%d/comments/9999/like", env.f.GenericsBlog.ID), "", nil),
			http.StatusNotFound, "Comment not found")
		requireMessage(t, env.do(t, http.MethodPost, fmt.Sprintf("/blogs/%d/comments/x/like", env.f.GenericsBlog.ID), "", nil),
			http.StatusBadRequest, "Invalid commentId")
	})
}

func TestHandler_Categories(t *testing.T) {
	t.Run("List", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(t, http.MethodGet, "/blogs/categories/", "", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		list := decode[CategoryList](t, rec)
		require.Equal(t, 2, list.Count)
		assert.Equal(t, "Sports", list.Results[0].Title)
		assert.Equal(t, []Category{}, list.Results[0].Children)
		assert.Equal(t, "Tech", list.Results[1].Title)
		require.Len(t, list.Results[1].Children, 1)
		assert.Equal(t, "Go", list.Results[1].Children[0].Title)
	})

	t.Run("ByID", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(t, http.MethodGet, fmt.Sprintf("/blogs/categories/%d", env.f.Go.ID), "", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		category := decode[Category](t, rec)
		assert.Equal(t, "Go", category.Title)
		require.Len(t, category.Children, 1)
		assert.Equal(t, "Generics", category.Children[0].Title)

		requireMessage(t, env.do(t, http.MethodGet, "/blogs/categories/9999", "", nil), http.StatusNotFound, "Category not found")
	})

	t.Run("CreateStaffOnly", func(t *testing.T) {
		env := newTestEnv(t)
		body := map[string]any{"title": "Rust", "parent_id": env.f.Tech.ID}

		requireMessage(t, env.do(t, http.MethodPost, "/blogs/categories", env.token(t, "alice"), body),
			http.StatusForbidden, "Staff permission required")

		rec := env.do(t, http.MethodPost, "/blogs/categories", env.token(t, "admin"), body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		category := decode[Category](t, rec)
		assert.Equal(t, "Rust", category.Title)
		require.NotNil(t, category.ParentID)
		assert.Equal(t, env.f.Tech.ID, *category.ParentID)

		requireMessage(t, env.do(t, http.MethodPost, "/blogs/categories", env.token(t, "admin"), map[string]any{"title": ""}),
			http.StatusBadRequest, "title is required")
	})

	t.Run("DeleteSubtree", func(t *testing.T) {
		env := newTestEnv(t)
		target := fmt.Sprintf("/blogs/categories/%d", env.f.Tech.ID)

		rec := env.do(t, http.MethodDelete, target, env.token(t, "admin"), nil)
		require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

		_, ok := env.f.Store.Category(env.f.Generics.ID)
		assert.False(t, ok)
		blog, ok := env.f.Store.Blog(env.f.GenericsBlog.ID)
		require.True(t, ok)
		assert.Nil(t, blog.CategoryID)
	})
}

func TestHandler_Catalog(t *testing.T) {
	env := newTestEnv(t)

	t.Run("Menu", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/menu/", "", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		menu := decode[Menu](t, rec)
		require.Len(t, menu.Items, 2)
		assert.Equal(t, "Home", menu.Items[0].Title)
		assert.Equal(t, 1, menu.Items[0].Order)
		assert.Equal(t, "/about", menu.Items[1].URL)
	})

	t.Run("Tags", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/tags", "", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		tags := decode[[]Tag](t, rec)
		require.NotEmpty(t, tags)
		assert.Equal(t, "rust", tags[0].Name)
		assert.Equal(t, 2, tags[0].Count)
	})
}

func TestHandler_Users(t *testing.T) {
	t.Run("RegisterAndLogin", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(t, http.MethodPost, "/users/register", "", map[string]any{
			"username": "carol", "email": "carol@example.com", "password": "longenough", "first_name": "Carol",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		profile := decode[Profile](t, rec)
		assert.Equal(t, "carol", profile.Username)
		assert.Nil(t, profile.ProfileImage)
		assert.NotContains(t, rec.Body.String(), "password")

		rec = env.do(t, http.MethodPost, "/users/token", "", map[string]any{"username": "carol", "password": "longenough"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		token := decode[Token](t, rec)
		assert.Equal(t, "bearer", token.TokenType)

		rec = env.do(t, http.MethodGet, "/users/profile", token.AccessToken, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "carol@example.com", decode[Profile](t, rec).Email)
	})

	t.Run("RegisterValidation", func(t *testing.T) {
		env := newTestEnv(t)
		requireMessage(t, env.do(t, http.MethodPost, "/users/register", "", map[string]any{"username": "dave", "password": "longenough"}),
			http.StatusBadRequest, "email is required")
		requireMessage(t, env.do(t, http.MethodPost, "/users/register", "", map[string]any{
			"username": "alice", "email": "new@example.com", "password": "longenough",
		}), http.StatusBadRequest, "Username already exists")
	})

	t.Run("InvalidBody", func(t *testing.T) {
		env := newTestEnv(t)
		req := httptest.NewRequest(http.MethodPost, "/users/token", strings.NewReader("{"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		requireMessage(t, env.doRequest(req), http.StatusBadRequest, "Invalid request body")
	})

	t.Run("LoginWrongPassword", func(t *testing.T) {
		env := newTestEnv(t)
		requireMessage(t, env.do(t, http.MethodPost, "/users/token", "", map[string]any{"username": "alice", "password": "wrong"}),
			http.StatusUnauthorized, "Invalid credentials")
	})

	t.Run("UpdateProfile", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(t, http.MethodPut, "/users/profile", env.token(t, "alice"), map[string]any{"last_name": "Liddell"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		profile := decode[Profile](t, rec)
		assert.Equal(t, "Liddell", profile.LastName)
		assert.Equal(t, "alice@example.com", profile.Email)

		requireMessage(t, env.do(t, http.MethodPut, "/users/profile", env.token(t, "alice"), map[string]any{"email": "bob@example.com"}),
			http.StatusBadRequest, "Email already registered")
	})

	t.Run("UploadProfileImage", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.token(t, "alice")

		body, ctype := multipartBody(t, nil, "image", "me.jpg")
		req := httptest.NewRequest(http.MethodPost, "/users/profile/image", body)
		req.Header.Set(echo.HeaderContentType, ctype)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		requireMessage(t, env.doRequest(req), http.StatusOK, "Profile image updated")

		rec := env.do(t, http.MethodGet, "/users/profile", token, nil)
		profile := decode[Profile](t, rec)
		require.NotNil(t, profile.ProfileImage)
		assert.True(t, strings.HasPrefix(*profile.ProfileImage, "http://media/profile_images/"), *profile.ProfileImage)

		body, ctype = multipartBody(t, map[string]string{"note": "no file"}, "", "")
		req = httptest.NewRequest(http.MethodPost, "/users/profile/image", body)
		req.Header.Set(echo.HeaderContentType, ctype)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		requireMessage(t, env.doRequest(req), http.StatusBadRequest, "image is required")
	})

	t.Run("ChangePassword", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.token(t, "alice")

		requireMessage(t, env.do(t, http.MethodPost, "/users/change-password", token, map[string]any{
			"current_password": "nope", "new_password": "newpassword", "confirm_password": "newpassword",
		}), http.StatusBadRequest, "Current password is incorrect")

		requireMessage(t, env.do(t, http.MethodPost, "/users/change-password", token, map[string]any{
			"current_password": blogportaltest.Password, "new_password": "newpassword", "confirm_password": "newpassword",
		}), http.StatusOK, "Password changed successfully")

		rec := env.do(t, http.MethodPost, "/users/token", "", map[string]any{"username": "alice", "password": "newpassword"})
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("ResetPassword", func(t *testing.T) {
		env := newTestEnv(t)

		requireMessage(t, env.do(t, http.MethodPost, "/users/reset-password", "", map[string]any{"email": "ghost@example.com"}),
			http.StatusNotFound, "User with this email does not exist")

		requireMessage(t, env.do(t, http.MethodPost, "/users/reset-password", "", map[string]any{"email": "alice@example.com"}),
			http.StatusOK, "Password reset instructions have been sent to your email")
		_, sent := env.mailer.Last()
		assert.True(t, sent)

		env.mailer.Err = errors.New("smtp down")
		requireMessage(t, env.do(t, http.MethodPost, "/users/reset-password", "", map[string]any{"email": "alice@example.com"}),
			http.StatusInternalServerError, "Failed to send password reset email. Please try again later")

		requireMessage(t, env.do(t, http.MethodPost, "/users/reset-password/confirm", "", map[string]any{
			"token": "garbage", "new_password": "newpassword", "confirm_password": "newpassword",
		}), http.StatusBadRequest, "Invalid reset link")
	})
}
