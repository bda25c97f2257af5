package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mdobak/go-xerrors"
)

const (
	DefaultAccessTokenTTL = 24 * time.Hour
	DefaultResetTokenTTL  = 30 * time.Minute
)

var (
	ErrInvalidToken = xerrors.Message("invalid token")
	ErrTokenExpired = xerrors.Message("token expired")
)

type Config struct {
	Secret         string
	AccessTokenTTL time.Duration
	ResetTokenTTL  time.Duration
}

// AccessClaims identify the user behind a bearer token.
type AccessClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// ResetClaims authorize a single password reset.
type ResetClaims struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 tokens with a shared secret.
type TokenService struct {
	secret    []byte
	accessTTL time.Duration
	resetTTL  time.Duration
}

func NewTokenService(cfg Config) *TokenService {
	s := &TokenService{
		secret:    []byte(cfg.Secret),
		accessTTL: cfg.AccessTokenTTL,
		resetTTL:  cfg.ResetTokenTTL,
	}
	if s.accessTTL <= 0 {
		s.accessTTL = DefaultAccessTokenTTL
	}
	if s.resetTTL <= 0 {
		s.resetTTL = DefaultResetTokenTTL
	}

	return s
}

func (s *TokenService) IssueAccessToken(username string, now time.Time) (string, error) {
	return s.sign(AccessClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
}

// ValidateAccessToken returns the username carried by a valid token.
func (s *TokenService) ValidateAccessToken(token string, now time.Time) (string, error) {
	claims := &AccessClaims{}
	if err := s.parse(token, claims, now); err != nil {
		return "", err
	}

	if claims.Username == "" {
		return "", xerrors.New(ErrInvalidToken)
	}

	return claims.Username, nil
}

func (s *TokenService) IssueResetToken(userID int, email string, now time.Time) (string, error) {
	return s.sign(ResetClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.resetTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
}

func (s *TokenService) ValidateResetToken(token string, now time.Time) (*ResetClaims, error) {
	claims := &ResetClaims{}
	if err := s.parse(token, claims, now); err != nil {
		return nil, err
	}

	if claims.UserID == 0 || claims.Email == "" {
		return nil, xerrors.New(ErrInvalidToken)
	}

	return claims, nil
}

func (s *TokenService) sign(claims jwt.Claims) (string, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

func (s *TokenService) parse(token string, claims jwt.Claims, now time.Time) error {
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	)

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return xerrors.New(ErrTokenExpired)
	case err != nil:
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	case !parsed.Valid:
		return xerrors.New(ErrInvalidToken)
	}

	return nil
}
