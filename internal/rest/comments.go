package rest

import (
	"context"
	"net/http"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
	"github.com/labstack/echo/v4"
)

// Comments handles GET /blogs/:id/comments/
// @Summary List comments
// @Description Root comments oldest first, each with its direct replies.
// @Tags comments
// @Produce json
// @Param id path int true "Blog ID"
// @Success 200 {object} rest.CommentList
// @Failure 400,404,500 {object} rest.Message
// @Router /blogs/{id}/comments/ [get]
func (h *Handler) Comments(c echo.Context) error {
	blogID, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err)
	}

	list, err := h.comments.ListForBlog(c.Request().Context(), blogID)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewCommentList(list))
}

// CreateComment handles POST /blogs/:id/comments/
// @Summary Add comment
// @Description parent_id 0 or null creates a root comment.
// @Tags comments
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Blog ID"
// @Param comment body rest.CommentRequest true "Comment"
// @Success 201 {object} rest.Comment
// @Failure 400,401,404,500 {object} rest.Message
// @Router /blogs/{id}/comments/ [post]
func (h *Handler) CreateComment(c echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return h.handleError(c, err)
	}

	blogID, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err)
	}

	var req CommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.handleError(c, err)
	}

	comment, err := h.comments.Create(c.Request().Context(), user, blogID, blogportal.CommentInput{
		Content:  req.Content,
		ParentID: req.ParentID,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusCreated, NewComment(*comment))
}

// UpdateComment handles PUT /blogs/:id/comments/:commentId/
// @Summary Edit comment
// @Tags comments
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Blog ID"
// @Param commentId path int true "Comment ID"
// @Param comment body rest.CommentUpdateRequest true "New content"
// @Success 200 {object} rest.Comment
// @Failure 400,401,403,404,500 {object} rest.Message
// @Router /blogs/{id}/comments/{commentId}/ [put]
func (h *Handler) UpdateComment(c echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return h.handleError(c, err)
	}

	blogID, commentID, err := commentPath(c)
	if err != nil {
		return h.handleError(c, err)
	}

	var req CommentUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.handleError(c, err)
	}

	comment, err := h.comments.Update(c.Request().Context(), user, blogID, commentID, req.Content)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewComment(*comment))
}

// DeleteComment handles DELETE /blogs/:id/comments/:commentId/
// @Summary Delete comment with its replies
// @Tags comments
// @Security Bearer
// @Param id path int true "Blog ID"
// @Param commentId path int true "Comment ID"
// @Success 204
// @Failure 400,401,403,404,500 {object} rest.Message
// @Router /blogs/{id}/comments/{commentId}/ [delete]
func (h *Handler) DeleteComment(c echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return h.handleError(c, err)
	}

	blogID, commentID, err := commentPath(c)
	if err != nil {
		return h.handleError(c, err)
	}

	if err := h.comments.Delete(c.Request().Context(), user, blogID, commentID); err != nil {
		return h.handleError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// LikeComment handles POST /blogs/:id/comments/:commentId/like/
// @Summary Like comment
// @Description No authentication required.
// @Tags comments
// @Produce json
// @Param id path int true "Blog ID"
// @Param commentId path int true "Comment ID"
// @Success 200 {object} rest.Comment
// @Failure 400,404,500 {object} rest.Message
// @Router /blogs/{id}/comments/{commentId}/like/ [post]
func (h *Handler) LikeComment(c echo.Context) error {
	return h.react(c, h.comments.Like)
}

// DislikeComment handles POST /blogs/:id/comments/:commentId/dislike/
// @Summary Dislike comment
// @Description No authentication required.
// @Tags comments
// @Produce json
// @Param id path int true "Blog ID"
// @Param commentId path int true "Comment ID"
// @Success 200 {object} rest.Comment
// @Failure 400,404,500 {object} rest.Message
// @Router /blogs/{id}/comments/{commentId}/dislike/ [post]
func (h *Handler) DislikeComment(c echo.Context) error {
	return h.react(c, h.comments.Dislike)
}

func (h *Handler) react(c echo.Context, fn func(ctx context.Context, blogID, commentID int) (*blogportal.Comment, error)) error {
	blogID, commentID, err := commentPath(c)
	if err != nil {
		return h.handleError(c, err)
	}

	comment, err := fn(c.Request().Context(), blogID, commentID)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewComment(*comment))
}

func commentPath(c echo.Context) (int, int, error) {
	blogID, err := pathID(c, "id")
	if err != nil {
		return 0, 0, err
	}

	commentID, err := pathID(c, "commentId")
	if err != nil {
		return 0, 0, err
	}

	return blogID, commentID, nil
}
