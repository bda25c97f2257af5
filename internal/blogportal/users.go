package blogportal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/daniilsolovey/blog-portal/internal/auth"
	"github.com/daniilsolovey/blog-portal/internal/db"
	blogmail "github.com/daniilsolovey/blog-portal/internal/mail"
	"github.com/daniilsolovey/blog-portal/internal/media"
	"github.com/go-playground/validator/v10"
)

const (
	TokenType       = "bearer"
	profileImageDir = "profile_images"
	minPasswordLen  = 8
)

type UserManagerConfig struct {
	SiteName    string
	FrontendURL string
}

type UserManager struct {
	store  Store
	tokens *auth.TokenService
	mailer blogmail.Sender
	images ImageStore
	cfg    UserManagerConfig
	log    *slog.Logger
	now    clock
}

func NewUserManager(store Store, tokens *auth.TokenService, mailer blogmail.Sender, images ImageStore,
	cfg UserManagerConfig, log *slog.Logger) *UserManager {

	return &UserManager{
		store:  store,
		tokens: tokens,
		mailer: mailer,
		images: images,
		cfg:    cfg,
		log:    log,
		now:    time.Now,
	}
}

// Register creates an account. Duplicate usernames and emails are rejected.
func (m *UserManager) Register(ctx context.Context, in RegisterInput) (*User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)

	switch {
	case username == "":
		return nil, validationError("Username is required")
	case !validEmail(email):
		return nil, validationError("Enter a valid email address")
	case len(in.Password) < minPasswordLen:
		return nil, validationError(fmt.Sprintf("Password must be at least %d characters", minPasswordLen))
	}

	existing, err := m.store.UserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("db get user by username: %w", err)
	} else if existing != nil {
		return nil, newError(ErrConflict, "Username already exists")
	}

	existing, err = m.store.UserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("db get user by email: %w", err)
	} else if existing != nil {
		return nil, newError(ErrConflict, "Email already registered")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &db.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		CreatedAt:    m.now().UTC(),
	}
	if err := m.store.CreateUser(ctx, user); errors.Is(err, db.ErrDuplicate) {
		return nil, newError(ErrConflict, "Username or email already exists")
	} else if err != nil {
		return nil, fmt.Errorf("db create user: %w", err)
	}

	return NewUser(user), nil
}

// Login checks credentials and issues an access token.
func (m *UserManager) Login(ctx context.Context, username, password string) (string, error) {
	user, err := m.store.UserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return "", fmt.Errorf("db get user by username: %w", err)
	} else if user == nil {
		return "", newError(ErrInvalidCredentials, "Invalid credentials")
	}

	ok, err := auth.CheckPassword(user.PasswordHash, password)
	if err != nil {
		return "", err
	} else if !ok {
		return "", newError(ErrInvalidCredentials, "Invalid credentials")
	}

	return m.tokens.IssueAccessToken(user.Username, m.now())
}

// Authenticate resolves a bearer token to its user. Tokens of deleted users fail.
func (m *UserManager) Authenticate(ctx context.Context, token string) (*User, error) {
	username, err := m.tokens.ValidateAccessToken(token, m.now())
	if errors.Is(err, auth.ErrTokenExpired) {
		return nil, wrapError(ErrUnauthenticated, "Token has expired", err)
	} else if err != nil {
		return nil, wrapError(ErrUnauthenticated, "Invalid token", err)
	}

	user, err := m.store.UserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("db get user by username: %w", err)
	} else if user == nil {
		return nil, newError(ErrUnauthenticated, "Invalid token")
	}

	return NewUser(user), nil
}

// UpdateProfile changes the present fields. The email must stay unique.
func (m *UserManager) UpdateProfile(ctx context.Context, user *User, in ProfileInput) (*User, error) {
	if user == nil {
		return nil, newError(ErrUnauthenticated, "Authentication required")
	}

	updated := user.User
	var columns []string
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if !validEmail(email) {
			return nil, validationError("Enter a valid email address")
		}

		other, err := m.store.UserByEmail(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("db get user by email: %w", err)
		} else if other != nil && other.ID != user.ID {
			return nil, newError(ErrConflict, "Email already registered")
		}

		updated.Email = email
		columns = append(columns, db.Columns.User.Email)
	}
	if in.FirstName != nil {
		updated.FirstName = strings.TrimSpace(*in.FirstName)
		columns = append(columns, db.Columns.User.FirstName)
	}
	if in.LastName != nil {
		updated.LastName = strings.TrimSpace(*in.LastName)
		columns = append(columns, db.Columns.User.LastName)
	}

	if len(columns) > 0 {
		if err := m.store.UpdateUser(ctx, &updated, columns...); errors.Is(err, db.ErrDuplicate) {
			return nil, newError(ErrConflict, "Email already registered")
		} else if err != nil {
			return nil, fmt.Errorf("db update user: %w", err)
		}
	}

	return NewUser(&updated), nil
}

// UploadProfileImage replaces the profile image of user.
func (m *UserManager) UploadProfileImage(ctx context.Context, user *User, upload Upload) (*User, error) {
	if user == nil {
		return nil, newError(ErrUnauthenticated, "Authentication required")
	}

	ref, err := m.images.Save(ctx, profileImageDir, upload.Filename, upload.Body)
	if errors.Is(err, media.ErrUnsupportedType) {
		return nil, validationError("Unsupported image type")
	} else if err != nil {
		return nil, fmt.Errorf("save profile image: %w", err)
	}

	updated := user.User
	old := updated.ProfileImage
	updated.ProfileImage = &ref
	if err := m.store.UpdateUser(ctx, &updated, db.Columns.User.ProfileImage); err != nil {
		m.dropImage(ctx, &ref)
		return nil, fmt.Errorf("db update user: %w", err)
	}

	m.dropImage(ctx, old)
	return NewUser(&updated), nil
}

func (m *UserManager) ChangePassword(ctx context.Context, user *User, current, next, confirm string) error {
	if user == nil {
		return newError(ErrUnauthenticated, "Authentication required")
	}

	ok, err := auth.CheckPassword(user.PasswordHash, current)
	if err != nil {
		return err
	} else if !ok {
		return validationError("Current password is incorrect")
	}

	if next != confirm {
		return validationError("New passwords do not match")
	}

	return m.setPassword(ctx, &user.User, next)
}

// RequestPasswordReset mails a reset link valid for 30 minutes.
func (m *UserManager) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := m.store.UserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return fmt.Errorf("db get user by email: %w", err)
	} else if user == nil {
		return newError(ErrNotFound, "User with this email does not exist")
	}

	token, err := m.tokens.IssueResetToken(user.ID, user.Email, m.now())
	if err != nil {
		return err
	}

	link := strings.TrimRight(m.cfg.FrontendURL, "/") + "/reset-password?token=" + url.QueryEscape(token)
	msg, err := blogmail.PasswordResetMessage(user.Email, m.cfg.SiteName, link)
	if err != nil {
		return err
	}

	if err := m.mailer.Send(ctx, msg); err != nil {
		return wrapError(ErrDelivery, "Failed to send password reset email. Please try again later", err)
	}

	m.log.InfoContext(ctx, "password reset requested", "userId", user.ID)
	return nil
}

// ConfirmPasswordReset sets a new password using a reset token.
func (m *UserManager) ConfirmPasswordReset(ctx context.Context, token, next, confirm string) error {
	if next != confirm {
		return validationError("Passwords do not match")
	}

	claims, err := m.tokens.ValidateResetToken(token, m.now())
	if errors.Is(err, auth.ErrTokenExpired) {
		return validationError("Reset link has expired. Please request a new one.")
	} else if err != nil {
		return validationError("Invalid reset link")
	}

	user, err := m.store.UserByID(ctx, claims.UserID)
	if err != nil {
		return fmt.Errorf("db get user by id: %w", err)
	} else if user == nil || !strings.EqualFold(user.Email, claims.Email) {
		return validationError("Invalid reset link")
	}

	return m.setPassword(ctx, user, next)
}

func (m *UserManager) setPassword(ctx context.Context, user *db.User, password string) error {
	if len(password) < minPasswordLen {
		return validationError(fmt.Sprintf("Password must be at least %d characters", minPasswordLen))
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	if err := m.store.UpdateUser(ctx, user, db.Columns.User.PasswordHash); err != nil {
		return fmt.Errorf("db update password: %w", err)
	}

	return nil
}

func (m *UserManager) dropImage(ctx context.Context, ref *string) {
	if ref == nil || *ref == "" {
		return
	}
	if err := m.images.Delete(ctx, *ref); err != nil {
		m.log.WarnContext(ctx, "failed to delete image", "ref", *ref, "error", err)
	}
}

var validate = validator.New()

func validEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}
