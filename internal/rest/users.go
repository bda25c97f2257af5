package rest

import (
	"net/http"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
	"github.com/labstack/echo/v4"
)

// Register handles POST /users/register
// @Summary Register
// @Tags users
// @Accept json
// @Produce json
// @Param user body rest.RegisterRequest true "Account"
// @Success 201 {object} rest.Profile
// @Failure 400,500 {object} rest.Message
// @Router /users/register [post]
func (h *Handler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.handleError(c, err)
	}

	user, err := h.users.Register(c.Request().Context(), blogportal.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusCreated, h.media.NewProfile(user))
}

// Login handles POST /users/token
// @Summary Obtain access token
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body rest.LoginRequest true "Credentials"
// @Success 200 {object} rest.Token
// @Failure 400,401,500 {object} rest.Message
// @Router /users/token [post]
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.handleError(c, err)
	}

	token, err := h.users.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, Token{AccessToken: token, TokenType: blogportal.TokenType})
}

// Profile handles GET /users/profile
// @Summary Current user profile
// @Tags users
// @Produce json
// @Security Bearer
// @Success 200 {object} rest.Profile
// @Failure 401 {object} rest.Message
// @Router /users/profile [get]
func (h *Handler) Profile(c echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, h.media.NewProfile(user))
}

// UpdateProfile handles PUT /users/profile
// @Summary Update profile
// @Tags users
// @Accept json
// @Produce json
// @Security Bearer
// @Param profile body rest.ProfileRequest true "Fields to change"
// @Success 200 {object} rest.Profile
// @Failure 400,401,500 {object} rest.Message
// @Router /users/profile [put]
func (h *Handler) UpdateProfile(c echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return h.handleError(c, err)
	}

	var req ProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.handleError(c, err)
	}

	updated, err := h.users.UpdateProfile(c.Request().Context(), user, blogportal.ProfileInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, h.media.NewProfile(updated))
}

// UploadProfileImage handles POST /users/profile/image
// @Summary Upload profile image
// @Tags users
// @Accept mpfd
// @Produce json
// @Security Bearer
// @Param image formData file true "Image"
// @Success 200 {object} rest.Message
// @Failure 400,401,500 {object} rest.Message
// @Router /users/profile/image [post]
func (h *Handler) UploadProfileImage(c echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return h.handleError(c, err)
	}

	upload, cleanup, err := formUpload(c, imageField)
	defer cleanup()
	if err != nil {
		return h.handleError(c, err)
	} else if upload == nil {
		return h.handleError(c, echo.NewHTTPError(http.StatusBadRequest, "image is required"))
	}

	if _, err := h.users.UploadProfileImage(c.Request().Context(), user, *upload); err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, Message{Message: "Profile image updated"})
}

// ChangePassword handles POST /users/change-password
// @Summary Change password
// @Tags users
// @Accept json
// @Produce json
// @Security Bearer
// @Param passwords body rest.ChangePasswordRequest true "Passwords"
// @Success 200 {object} rest.Message
// @Failure 400,401,500 {object} rest.Message
// @Router /users/change-password [post]
func (h *Handler) ChangePassword(c echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return h.handleError(c, err)
	}

	var req ChangePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.handleError(c, err)
	}

	err = h.users.ChangePassword(c.Request().Context(), user, req.CurrentPassword, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, Message{Message: "Password changed successfully"})
}

// ResetPassword handles POST /users/reset-password
// @Summary Request password reset email
// @Tags users
// @Accept json
// @Produce json
// @Param request body rest.ResetPasswordRequest true "Email"
// @Success 200 {object} rest.Message
// @Failure 400,404,500 {object} rest.Message
// @Router /users/reset-password [post]
func (h *Handler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.handleError(c, err)
	}

	if err := h.users.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, Message{Message: "Password reset instructions have been sent to your email"})
}

// ConfirmResetPassword handles POST /users/reset-password/confirm
// @Summary Set a new password with a reset token
// @Tags users
// @Accept json
// @Produce json
// @Param request body rest.ResetPasswordConfirmRequest true "Token and passwords"
// @Success 200 {object} rest.Message
// @Failure 400,500 {object} rest.Message
// @Router /users/reset-password/confirm [post]
func (h *Handler) ConfirmResetPassword(c echo.Context) error {
	var req ResetPasswordConfirmRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.handleError(c, err)
	}

	err := h.users.ConfirmPasswordReset(c.Request().Context(), req.Token, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, Message{Message: "Password reset successfully"})
}
