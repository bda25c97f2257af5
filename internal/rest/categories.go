package rest

import (
	"net/http"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
	"github.com/labstack/echo/v4"
)

// Categories handles GET /blogs/categories/
// @Summary List categories
// @Description Root categories by title, each with its direct children.
// @Tags categories
// @Produce json
// @Success 200 {object} rest.CategoryList
// @Failure 500 {object} rest.Message
// @Router /blogs/categories/ [get]
func (h *Handler) Categories(c echo.Context) error {
	categories, err := h.categories.Roots(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewCategoryList(categories))
}

// CategoryByID handles GET /blogs/categories/:id
// @Summary Get category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} rest.Category
// @Failure 400,404,500 {object} rest.Message
// @Router /blogs/categories/{id} [get]
func (h *Handler) CategoryByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err)
	}

	category, err := h.categories.ByID(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewCategory(*category))
}

// CreateCategory handles POST /blogs/categories/
// @Summary Create category
// @Description Staff only.
// @Tags categories
// @Accept json
// @Produce json
// @Security Bearer
// @Param category body rest.CategoryRequest true "Category"
// @Success 201 {object} rest.Category
// @Failure 400,401,403,500 {object} rest.Message
// @Router /blogs/categories/ [post]
func (h *Handler) CreateCategory(c echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return h.handleError(c, err)
	}

	var req CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.handleError(c, err)
	}

	category, err := h.categories.Create(c.Request().Context(), user, blogportal.CategoryInput{
		Title:    req.Title,
		ParentID: req.ParentID,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusCreated, NewCategory(*category))
}

// DeleteCategory handles DELETE /blogs/categories/:id
// @Summary Delete category subtree
// @Description Staff only. Blogs of removed categories lose their category.
// @Tags categories
// @Security Bearer
// @Param id path int true "Category ID"
// @Success 204
// @Failure 400,401,403,404,500 {object} rest.Message
// @Router /blogs/categories/{id} [delete]
func (h *Handler) DeleteCategory(c echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return h.handleError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err)
	}

	if err := h.categories.Delete(c.Request().Context(), user, id); err != nil {
		return h.handleError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Menu handles GET /menu/
// @Summary Site menu
// @Tags menu
// @Produce json
// @Success 200 {object} rest.Menu
// @Failure 500 {object} rest.Message
// @Router /menu/ [get]
func (h *Handler) Menu(c echo.Context) error {
	items, err := h.catalog.Menu(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewMenu(items))
}

// Tags handles GET /tags/
// @Summary Tags with usage counts
// @Description Ordered by count descending, then name.
// @Tags tags
// @Produce json
// @Success 200 {array} rest.Tag
// @Failure 500 {object} rest.Message
// @Router /tags/ [get]
func (h *Handler) Tags(c echo.Context) error {
	tags, err := h.catalog.Tags(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, Map(tags, NewTag))
}
