package rest

import (
	"net/http"
	"strconv"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"
)

// Blogs handles GET /blogs/
// @Summary List blogs
// @Description Active blogs, newest first, with optional filters and offset pagination.
// @Tags blogs
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param page_size query int false "Page size (default: 10, max: 100)"
// @Param date_from query string false "Created on or after, YYYY-MM-DD"
// @Param date_to query string false "Created on or before, YYYY-MM-DD"
// @Param author_id query int false "Filter by author"
// @Param category_id query int false "Filter by category"
// @Param tags query []string false "Any of these tag names" collectionFormat(multi)
// @Param search query string false "Substring of title or content"
// @Success 200 {object} rest.BlogPage
// @Failure 400,500 {object} rest.Message
// @Router /blogs/ [get]
func (h *Handler) Blogs(c echo.Context) error {
	if err := checkIntParams(c, "page", "page_size", "author_id", "category_id"); err != nil {
		return h.handleError(c, err)
	}

	var req BlogListRequest
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &req); err != nil {
		return h.handleError(c, echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters").SetInternal(err))
	}

	page, err := h.blogs.List(c.Request().Context(), blogportal.BlogFilter{
		DateFrom:   req.DateFrom,
		DateTo:     req.DateTo,
		AuthorID:   req.AuthorID,
		CategoryID: req.CategoryID,
		Tags:       req.Tags,
		Search:     req.Search,
		Page:       req.Page,
		PageSize:   req.PageSize,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, h.media.NewBlogPage(page))
}

// BlogByID handles GET /blogs/:id
// @Summary Get blog
// @Tags blogs
// @Produce json
// @Param id path int true "Blog ID"
// @Success 200 {object} rest.BlogDetail
// @Failure 400,404,500 {object} rest.Message
// @Router /blogs/{id} [get]
func (h *Handler) BlogByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err)
	}

	blog, err := h.blogs.ByID(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, h.media.NewBlogDetail(*blog))
}

// CreateBlog handles POST /blogs/
// @Summary Create blog
// @Description Accepts JSON or multipart form data with an optional image file.
// @Tags blogs
// @Accept json,mpfd
// @Produce json
// @Security Bearer
// @Param title formData string true "Title"
// @Param content formData string true "HTML content"
// @Param category_id formData int false "Category ID"
// @Param tags formData []string false "Tag names" collectionFormat(multi)
// @Param is_active formData bool false "Visible in listings (default: true)"
// @Param image formData file false "Cover image"
// @Success 201 {object} rest.BlogDetail
// @Failure 400,401,500 {object} rest.Message
// @Router /blogs/ [post]
func (h *Handler) CreateBlog(c echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return h.handleError(c, err)
	}

	in, cleanup, err := bindBlogInput(c)
	defer cleanup()
	if err != nil {
		return h.handleError(c, err)
	}

	blog, err := h.blogs.Create(c.Request().Context(), user, in)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusCreated, h.media.NewBlogDetail(*blog))
}

// UpdateBlog handles PUT /blogs/:id
// @Summary Update blog
// @Description Applies only the fields present. Tags, when present, replace the whole set.
// @Tags blogs
// @Accept json,mpfd
// @Produce json
// @Security Bearer
// @Param id path int true "Blog ID"
// @Param title formData string false "Title"
// @Param content formData string false "HTML content"
// @Param category_id formData string false "Category ID; other values clear the category"
// @Param tags formData []string false "Tag names" collectionFormat(multi)
// @Param is_active formData bool false "Visible in listings"
// @Param image formData file false "Cover image"
// @Success 200 {object} rest.BlogDetail
// @Failure 400,401,403,404,500 {object} rest.Message
// @Router /blogs/{id} [put]
func (h *Handler) UpdateBlog(c echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return h.handleError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err)
	}

	in, cleanup, err := bindBlogInput(c)
	defer cleanup()
	if err != nil {
		return h.handleError(c, err)
	}

	blog, err := h.blogs.Update(c.Request().Context(), user, id, in)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, h.media.NewBlogDetail(*blog))
}

// DeleteBlog handles DELETE /blogs/:id
// @Summary Delete blog
// @Tags blogs
// @Security Bearer
// @Param id path int true "Blog ID"
// @Success 204
// @Failure 400,401,403,404,500 {object} rest.Message
// @Router /blogs/{id} [delete]
func (h *Handler) DeleteBlog(c echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return h.handleError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err)
	}

	if err := h.blogs.Delete(c.Request().Context(), user, id); err != nil {
		return h.handleError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// checkIntParams rejects integer query parameters that do not parse.
// urlstruct skips such values instead of reporting them.
func checkIntParams(c echo.Context, names ...string) error {
	for _, name := range names {
		v := c.QueryParam(name)
		if v == "" {
			continue
		}
		if _, err := strconv.Atoi(v); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name).SetInternal(err)
		}
	}
	return nil
}
