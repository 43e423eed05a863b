package dto

import (
	"time"

	"github.com/ivanausecha/tidytask-backend/internal/auth/domain"
)

// UserOutput is the public view of a user. Password hash, reset state and the
// federated identity reference never leave the service.
type UserOutput struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Age        int       `json:"age,omitempty"`
	AvatarPath string    `json:"avatarPath,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func NewUserOutput(u *domain.User) *UserOutput {
	return &UserOutput{
		ID:         u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		Age:        u.Age,
		AvatarPath: u.AvatarPath,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  *UserOutput `json:"user"`
}
