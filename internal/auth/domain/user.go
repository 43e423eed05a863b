package domain

import "time"

// User is a registered account. PasswordHash is always set: federated accounts
// get a random placeholder hash so password login can never succeed for them.
type User struct {
	ID           string         `bson:"_id"`
	FirstName    string         `bson:"first_name"`
	LastName     string         `bson:"last_name"`
	Email        string         `bson:"email"`
	Age          int            `bson:"age,omitempty"`
	PasswordHash string         `bson:"password_hash"`
	AvatarPath   string         `bson:"avatar_path,omitempty"`
	GoogleID     string         `bson:"google_id,omitempty"`
	Reset        *PasswordReset `bson:"reset,omitempty"`
	CreatedAt    time.Time      `bson:"created_at"`
	UpdatedAt    time.Time      `bson:"updated_at"`
}

// PasswordReset is the pending reset state for a user. The token hash and the
// expiry always travel together: the sub-record either exists with both fields
// set or is absent entirely.
type PasswordReset struct {
	TokenHash string    `bson:"token_hash"`
	ExpiresAt time.Time `bson:"expires_at"`
}

func NewPasswordReset(tokenHash string, expiresAt time.Time) *PasswordReset {
	return &PasswordReset{TokenHash: tokenHash, ExpiresAt: expiresAt}
}

func (p *PasswordReset) Expired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}
