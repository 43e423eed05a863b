package service

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/ivanausecha/tidytask-backend/internal/auth/domain UserRepository
//go:generate mockgen -destination=../../mocks/mock_task_purger.go -package=mocks github.com/ivanausecha/tidytask-backend/internal/auth/service TaskPurger

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ivanausecha/tidytask-backend/config"
	"github.com/ivanausecha/tidytask-backend/internal/auth/domain"
	"github.com/ivanausecha/tidytask-backend/internal/auth/dto"
	autherror "github.com/ivanausecha/tidytask-backend/internal/errors"
	"github.com/ivanausecha/tidytask-backend/internal/mailer"
	"github.com/ivanausecha/tidytask-backend/pkg/constant"
)

// TaskPurger removes every task owned by a user. Account deletion cascades
// through it so no orphaned task documents survive the owner.
type TaskPurger interface {
	DeleteByOwner(ctx context.Context, ownerID string) error
}

type UserService struct {
	repo         domain.UserRepository
	tokenService TokenGenerator
	mailer       mailer.Mailer
	tasks        TaskPurger
	cfg          *config.Config
	logger       *slog.Logger
}

func NewUserService(repo domain.UserRepository, tokenService TokenGenerator, m mailer.Mailer,
	tasks TaskPurger, cfg *config.Config, logger *slog.Logger) *UserService {
	return &UserService{
		repo:         repo,
		tokenService: tokenService,
		mailer:       m,
		tasks:        tasks,
		cfg:          cfg,
		logger:       logger,
	}
}

func (s *UserService) Signup(ctx context.Context, input dto.SignupInput) (*dto.AuthResponse, error) {
	email := normalizeEmail(input.Email)

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        email,
		Age:          input.Age,
		PasswordHash: string(hashed),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.authResponse(user)
}

// Login fails identically for an unknown email and a wrong password so the
// caller cannot probe which emails are registered.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		return nil, err
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, autherror.ErrInvalidCredentials
	}

	return s.authResponse(user)
}

// LoginWithGoogle resolves a federated identity: by google_id first, then by
// email (attaching the google_id), otherwise a new account is created with a
// random placeholder password that can never be used for password login.
func (s *UserService) LoginWithGoogle(ctx context.Context, googleID, email, firstName, lastName string) (*dto.AuthResponse, error) {
	user, err := s.repo.GetByGoogleID(ctx, googleID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		user, err = s.repo.GetByEmail(ctx, normalizeEmail(email))
		if err != nil {
			return nil, err
		}
		if user != nil {
			if err := s.repo.AttachGoogleID(ctx, user.ID, googleID); err != nil {
				return nil, err
			}
		}
	}

	if user == nil {
		placeholder, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}

		now := time.Now()
		user = &domain.User{
			ID:           uuid.NewString(),
			FirstName:    firstName,
			LastName:     lastName,
			Email:        normalizeEmail(email),
			PasswordHash: string(placeholder),
			GoogleID:     googleID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.repo.Create(ctx, user); err != nil {
			return nil, err
		}
	}

	return s.authResponse(user)
}

// RecoverPassword starts the reset flow. The outcome is the same whether or
// not the email is registered, and an email delivery failure is logged but
// never surfaced, so the endpoint leaks nothing.
func (s *UserService) RecoverPassword(ctx context.Context, email string) error {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	rawToken, err := generateResetToken()
	if err != nil {
		return err
	}

	reset := domain.NewPasswordReset(hashResetToken(rawToken),
		time.Now().Add(constant.ResetTokenExpiryMinutes*time.Minute))
	if err := s.repo.SetPasswordReset(ctx, user.ID, reset); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.FrontendURL, rawToken)
	if err := s.mailer.SendPasswordReset(user.Email, resetURL); err != nil {
		s.logger.Error("failed to send password reset email",
			slog.String("user_id", user.ID), slog.String("error", err.Error()))
	}

	return nil
}

// ResetPassword exchanges a valid raw token for a password change. The lookup
// is over the token hash with the expiry folded into the same predicate, so a
// wrong token and an expired one are indistinguishable.
func (s *UserService) ResetPassword(ctx context.Context, input dto.ResetPasswordInput) (*dto.AuthResponse, error) {
	user, err := s.repo.GetByValidResetToken(ctx, hashResetToken(input.Token), time.Now())
	if err != nil {
		return nil, err
	}
	if user == nil || user.Reset == nil || user.Reset.Expired(time.Now()) {
		return nil, autherror.ErrInvalidOrExpiredResetToken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ResetPassword(ctx, user.ID, string(hashed)); err != nil {
		return nil, err
	}

	return s.authResponse(user)
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*dto.UserOutput, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	return dto.NewUserOutput(user), nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, input dto.UpdateProfileInput) (*dto.UserOutput, error) {
	if input.Age < constant.MinProfileAge || input.Age > constant.MaxProfileAge {
		return nil, autherror.ErrInvalidAge
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	email := normalizeEmail(input.Email)
	if email != user.Email {
		other, err := s.repo.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, autherror.ErrEmailAlreadyInUse
		}
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Age = input.Age
	user.Email = email
	user.UpdatedAt = time.Now()

	if err := s.repo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	return dto.NewUserOutput(user), nil
}

func (s *UserService) ChangePassword(ctx context.Context, userID string, input dto.ChangePasswordInput) error {
	if input.NewPassword != input.ConfirmPassword {
		return autherror.ErrPasswordMismatch
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)) != nil {
		return autherror.ErrWrongCurrentPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, userID, string(hashed))
}

// UpdateAvatar stores the new avatar reference and returns the previous path
// so the caller can remove the old file after the store write lands.
func (s *UserService) UpdateAvatar(ctx context.Context, userID, avatarPath string) (string, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", autherror.ErrUserNotFound
	}

	if err := s.repo.UpdateAvatar(ctx, userID, avatarPath); err != nil {
		return "", err
	}

	return user.AvatarPath, nil
}

// DeleteAccount hard-deletes the user and cascades to every task they own.
func (s *UserService) DeleteAccount(ctx context.Context, userID string) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}

	if err := s.tasks.DeleteByOwner(ctx, userID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, userID)
}

func (s *UserService) authResponse(user *domain.User) (*dto.AuthResponse, error) {
	token, _, err := s.tokenService.Generate(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: token,
		User:  dto.NewUserOutput(user),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

func generateResetToken() (string, error) {
	b := make([]byte, constant.ResetTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func hashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
