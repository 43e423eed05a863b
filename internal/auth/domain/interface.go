package domain

import (
	"context"
	"time"
)

// UserRepository is the persistence boundary for user records. Lookups return
// (nil, nil) when no document matches so callers can branch without comparing
// driver errors.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*User, error)
	Create(ctx context.Context, user *User) error
	UpdateProfile(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateAvatar(ctx context.Context, id, avatarPath string) error
	AttachGoogleID(ctx context.Context, id, googleID string) error
	Delete(ctx context.Context, id string) error

	// SetPasswordReset overwrites any pending reset state (last write wins).
	SetPasswordReset(ctx context.Context, id string, reset *PasswordReset) error

	// GetByValidResetToken matches the stored token hash AND an expiry in the
	// future in a single query predicate, so "no match" and "expired match"
	// are indistinguishable to the caller.
	GetByValidResetToken(ctx context.Context, tokenHash string, now time.Time) (*User, error)

	// ResetPassword stores the new hash and clears the reset sub-record in one
	// atomic document update.
	ResetPassword(ctx context.Context, id, passwordHash string) error
}
