package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

func (r *Repository) UserByID(ctx context.Context, userID int) (*User, error) {
	return r.oneUser(ctx, `"t"."userId" = ?`, userID)
}

func (r *Repository) UserByUsername(ctx context.Context, username string) (*User, error) {
	return r.oneUser(ctx, `"t"."username" = ?`, username)
}

func (r *Repository) UserByEmail(ctx context.Context, email string) (*User, error) {
	return r.oneUser(ctx, `lower("t"."email") = lower(?)`, email)
}

func (r *Repository) oneUser(ctx context.Context, where string, arg any) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).
		Where(where, arg).
		Limit(1).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// CreateUser inserts user and fills its ID. Returns ErrDuplicate on username or email clash.
func (r *Repository) CreateUser(ctx context.Context, user *User) error {
	_, err := r.db.ModelContext(ctx, user).Returning("*").Insert()
	if isUniqueViolation(err) {
		return fmt.Errorf("insert user %q: %w", user.Username, ErrDuplicate)
	} else if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// UpdateUser writes the given columns of user.
func (r *Repository) UpdateUser(ctx context.Context, user *User, columns ...string) error {
	_, err := r.db.ModelContext(ctx, user).
		Column(columns...).
		WherePK().
		Update()

	if isUniqueViolation(err) {
		return fmt.Errorf("update user %d: %w", user.ID, ErrDuplicate)
	} else if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}
