package blogportal_test

import (
	"context"
	"errors"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/daniilsolovey/blog-portal/internal/auth"
	"github.com/daniilsolovey/blog-portal/internal/blogportal"
	"github.com/daniilsolovey/blog-portal/internal/blogportal/blogportaltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type userEnv struct {
	f      *blogportaltest.Fixture
	m      *blogportal.UserManager
	tokens *auth.TokenService
	mailer *blogportaltest.Mailer
	images *blogportaltest.Images
}

func newUserEnv() userEnv {
	f := blogportaltest.NewFixture()
	tokens := auth.NewTokenService(auth.Config{Secret: testSecret})
	mailer := &blogportaltest.Mailer{}
	images := blogportaltest.NewImages()
	m := blogportal.NewUserManager(f.Store, tokens, mailer, images,
		blogportal.UserManagerConfig{SiteName: "Blog", FrontendURL: "http://front/"}, discard)

	return userEnv{f: f, m: m, tokens: tokens, mailer: mailer, images: images}
}

func publicMessage(t *testing.T, err error) string {
	t.Helper()
	msg, ok := blogportal.PublicMessage(err)
	require.True(t, ok, "error %v has no public message", err)
	return msg
}

func TestUserManager_Register(t *testing.T) {
	ctx := context.Background()
	env := newUserEnv()

	user, err := env.m.Register(ctx, blogportal.RegisterInput{
		Username: "carol", Email: "carol@example.com", Password: "longenough", FirstName: " Carol ",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "Carol", user.FirstName)
	assert.NotEqual(t, "longenough", user.PasswordHash)
	assert.False(t, user.IsStaff)

	token, err := env.m.Login(ctx, "carol", "longenough")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	tests := []struct {
		name string
		in   blogportal.RegisterInput
		kind error
		msg  string
	}{
		{"DuplicateUsername", blogportal.RegisterInput{Username: "alice", Email: "new@example.com", Password: "longenough"}, blogportal.ErrConflict, "Username already exists"},
		{"DuplicateEmailAnyCase", blogportal.RegisterInput{Username: "dave", Email: "ALICE@example.com", Password: "longenough"}, blogportal.ErrConflict, "Email already registered"},
		{"InvalidEmail", blogportal.RegisterInput{Username: "dave", Email: "not-an-email", Password: "longenough"}, blogportal.ErrValidation, "Enter a valid email address"},
		{"ShortPassword", blogportal.RegisterInput{Username: "dave", Email: "dave@example.com", Password: "short"}, blogportal.ErrValidation, "Password must be at least 8 characters"},
		{"NoUsername", blogportal.RegisterInput{Email: "dave@example.com", Password: "longenough"}, blogportal.ErrValidation, "Username is required"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.m.Register(ctx, tc.in)
			assert.ErrorIs(t, err, tc.kind)
			assert.Equal(t, tc.msg, publicMessage(t, err))
		})
	}
}

func TestUserManager_LoginAuthenticate(t *testing.T) {
	ctx := context.Background()
	env := newUserEnv()

	token, err := env.m.Login(ctx, "alice", blogportaltest.Password)
	require.NoError(t, err)

	user, err := env.m.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, env.f.Alice.ID, user.ID)

	for name, creds := range map[string][2]string{
		"WrongPassword": {"alice", "nope-nope"},
		"UnknownUser":   {"mallory", blogportaltest.Password},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := env.m.Login(ctx, creds[0], creds[1])
			assert.ErrorIs(t, err, blogportal.ErrInvalidCredentials)
			assert.Equal(t, "Invalid credentials", publicMessage(t, err))
		})
	}

	t.Run("Garbage", func(t *testing.T) {
		_, err := env.m.Authenticate(ctx, "not.a.jwt")
		assert.ErrorIs(t, err, blogportal.ErrUnauthenticated)
		assert.Equal(t, "Invalid token", publicMessage(t, err))
	})

	t.Run("Expired", func(t *testing.T) {
		old, err := env.tokens.IssueAccessToken("alice", time.Now().Add(-48*time.Hour))
		require.NoError(t, err)

		_, err = env.m.Authenticate(ctx, old)
		assert.ErrorIs(t, err, blogportal.ErrUnauthenticated)
		assert.Equal(t, "Token has expired", publicMessage(t, err))
	})

	t.Run("ForeignSecret", func(t *testing.T) {
		other := auth.NewTokenService(auth.Config{Secret: "other"})
		forged, err := other.IssueAccessToken("alice", time.Now())
		require.NoError(t, err)

		_, err = env.m.Authenticate(ctx, forged)
		assert.ErrorIs(t, err, blogportal.ErrUnauthenticated)
	})

	t.Run("DeletedUser", func(t *testing.T) {
		token, err := env.m.Login(ctx, "bob", blogportaltest.Password)
		require.NoError(t, err)
		env.f.Store.DeleteUser(env.f.Bob.ID)

		_, err = env.m.Authenticate(ctx, token)
		assert.ErrorIs(t, err, blogportal.ErrUnauthenticated)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		env := newUserEnv()
		token, err := env.m.Login(ctx, "alice", blogportaltest.Password)
		require.NoError(t, err)

		env.f.Store.Errors["UserByUsername"] = errors.New("timeout")
		_, err = env.m.Authenticate(ctx, token)
		require.Error(t, err)
		assert.NotErrorIs(t, err, blogportal.ErrUnauthenticated)
	})
}

func TestUserManager_Profile(t *testing.T) {
	ctx := context.Background()
	env := newUserEnv()
	alice := blogportal.NewUser(&env.f.Alice)

	_, err := env.m.UpdateProfile(ctx, alice, blogportal.ProfileInput{Email: ptr("bob@example.com")})
	assert.ErrorIs(t, err, blogportal.ErrConflict)

	_, err = env.m.UpdateProfile(ctx, alice, blogportal.ProfileInput{Email: ptr("broken")})
	assert.ErrorIs(t, err, blogportal.ErrValidation)

	updated, err := env.m.UpdateProfile(ctx, alice, blogportal.ProfileInput{Email: ptr("ALICE@example.com"), LastName: ptr("Liddell")})
	require.NoError(t, err)
	assert.Equal(t, "ALICE@example.com", updated.Email)
	assert.Equal(t, "Liddell", updated.LastName)
	assert.Equal(t, "alice", updated.Username)

	stored, _ := env.f.Store.User(env.f.Alice.ID)
	assert.Equal(t, "Liddell", stored.LastName)

	_, err = env.m.UpdateProfile(ctx, nil, blogportal.ProfileInput{})
	assert.ErrorIs(t, err, blogportal.ErrUnauthenticated)

	t.Run("Image", func(t *testing.T) {
		first, err := env.m.UploadProfileImage(ctx, updated, blogportal.Upload{Filename: "me.jpg", Body: strings.NewReader("1")})
		require.NoError(t, err)
		require.NotNil(t, first.ProfileImage)
		assert.True(t, strings.HasPrefix(*first.ProfileImage, "profile_images/"))

		second, err := env.m.UploadProfileImage(ctx, first, blogportal.Upload{Filename: "me.webp", Body: strings.NewReader("2")})
		require.NoError(t, err)
		assert.False(t, env.images.Has(*first.ProfileImage))
		assert.True(t, env.images.Has(*second.ProfileImage))

		_, err = env.m.UploadProfileImage(ctx, second, blogportal.Upload{Filename: "me.txt", Body: strings.NewReader("3")})
		assert.ErrorIs(t, err, blogportal.ErrValidation)
	})
}

func TestUserManager_ChangePassword(t *testing.T) {
	ctx := context.Background()
	env := newUserEnv()
	alice := blogportal.NewUser(&env.f.Alice)

	err := env.m.ChangePassword(ctx, alice, "wrong", "newpassword", "newpassword")
	assert.Equal(t, "Current password is incorrect", publicMessage(t, err))

	err = env.m.ChangePassword(ctx, alice, blogportaltest.Password, "newpassword", "different")
	assert.Equal(t, "New passwords do not match", publicMessage(t, err))

	err = env.m.ChangePassword(ctx, alice, blogportaltest.Password, "short", "short")
	assert.ErrorIs(t, err, blogportal.ErrValidation)

	require.NoError(t, env.m.ChangePassword(ctx, alice, blogportaltest.Password, "newpassword", "newpassword"))

	_, err = env.m.Login(ctx, "alice", blogportaltest.Password)
	assert.ErrorIs(t, err, blogportal.ErrInvalidCredentials)
	_, err = env.m.Login(ctx, "alice", "newpassword")
	assert.NoError(t, err)
}

var tokenParam = regexp.MustCompile(`reset-password\?token=([^"&<]+)`)

func TestUserManager_PasswordReset(t *testing.T) {
	ctx := context.Background()
	env := newUserEnv()

	err := env.m.RequestPasswordReset(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, blogportal.ErrNotFound)
	assert.Equal(t, "User with this email does not exist", publicMessage(t, err))
	assert.Empty(t, env.mailer.Sent)

	require.NoError(t, env.m.RequestPasswordReset(ctx, "Alice@Example.com"))
	msg, ok := env.mailer.Last()
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", msg.To)
	assert.Contains(t, msg.HTML, "http://front/reset-password?token=")

	match := tokenParam.FindStringSubmatch(msg.HTML)
	require.Len(t, match, 2)
	token, err := url.QueryUnescape(match[1])
	require.NoError(t, err)

	err = env.m.ConfirmPasswordReset(ctx, token, "brandnew1", "brandnew2")
	assert.Equal(t, "Passwords do not match", publicMessage(t, err))

	err = env.m.ConfirmPasswordReset(ctx, "garbage", "brandnew1", "brandnew1")
	assert.Equal(t, "Invalid reset link", publicMessage(t, err))

	require.NoError(t, env.m.ConfirmPasswordReset(ctx, token, "brandnew1", "brandnew1"))
	_, err = env.m.Login(ctx, "alice", "brandnew1")
	assert.NoError(t, err)

	t.Run("Expired", func(t *testing.T) {
		old, err := env.tokens.IssueResetToken(env.f.Bob.ID, env.f.Bob.Email, time.Now().Add(-time.Hour))
		require.NoError(t, err)

		err = env.m.ConfirmPasswordReset(ctx, old, "brandnew1", "brandnew1")
		assert.ErrorIs(t, err, blogportal.ErrValidation)
		assert.Equal(t, "Reset link has expired. Please request a new one.", publicMessage(t, err))
	})

	t.Run("EmailChanged", func(t *testing.T) {
		stale, err := env.tokens.IssueResetToken(env.f.Bob.ID, "old@example.com", time.Now())
		require.NoError(t, err)

		err = env.m.ConfirmPasswordReset(ctx, stale, "brandnew1", "brandnew1")
		assert.Equal(t, "Invalid reset link", publicMessage(t, err))
	})

	t.Run("AccessTokenRejected", func(t *testing.T) {
		access, err := env.tokens.IssueAccessToken("bob", time.Now())
		require.NoError(t, err)

		err = env.m.ConfirmPasswordReset(ctx, access, "brandnew1", "brandnew1")
		assert.ErrorIs(t, err, blogportal.ErrValidation)
	})

	t.Run("DeliveryFailure", func(t *testing.T) {
		env.mailer.Err = errors.New("smtp down")
		defer func() { env.mailer.Err = nil }()

		err := env.m.RequestPasswordReset(ctx, "bob@example.com")
		assert.ErrorIs(t, err, blogportal.ErrDelivery)
		assert.Equal(t, "Failed to send password reset email. Please try again later", publicMessage(t, err))
	})
}
