package errors

import (
	"errors"
)

var (
	ErrInvalidCredentials         = errors.New("invalid credentials")
	ErrEmailAlreadyInUse          = errors.New("email already in use")
	ErrInvalidToken               = errors.New("invalid token")
	ErrInvalidOrExpiredResetToken = errors.New("invalid or expired reset token")
	ErrUserNotFound               = errors.New("user not found")
	ErrTaskNotFound               = errors.New("task not found")
	ErrWrongCurrentPassword       = errors.New("current password is incorrect")
	ErrPasswordMismatch           = errors.New("password confirmation does not match")
	ErrInvalidTimeFormat          = errors.New("time must be in HH:MM 24-hour format")
	ErrInvalidDateFormat          = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidTaskStatus          = errors.New("invalid task status")
	ErrInvalidAge                 = errors.New("age must be between 13 and 120")
)
