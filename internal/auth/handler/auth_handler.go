package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/ivanausecha/tidytask-backend/internal/auth/dto"
	"github.com/ivanausecha/tidytask-backend/internal/auth/service"
	autherror "github.com/ivanausecha/tidytask-backend/internal/errors"
	"github.com/ivanausecha/tidytask-backend/pkg/validation"
)

// recoverMessage is returned by RecoverPassword no matter whether the email
// is registered, so the endpoint cannot be used to enumerate accounts.
const recoverMessage = "If an account exists for that email, a reset link has been sent"

type AuthHandler struct {
	userService *service.UserService
	logger      *slog.Logger
}

func NewAuthHandler(userService *service.UserService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{userService: userService, logger: logger}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var input dto.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if fields := validation.Struct(input); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation failed", "fields": fields})
	}

	resp, err := h.userService.Signup(c.Context(), input)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if fields := validation.Struct(input); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation failed", "fields": fields})
	}

	resp, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// Logout exists for symmetry with the client session: tokens are stateless, so
// the server has nothing to revoke.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "logged out"})
}

func (h *AuthHandler) RecoverPassword(c *fiber.Ctx) error {
	var input dto.RecoverPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if fields := validation.Struct(input); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation failed", "fields": fields})
	}

	if err := h.userService.RecoverPassword(c.Context(), input.Email); err != nil {
		return h.errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": recoverMessage})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var input dto.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if fields := validation.Struct(input); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation failed", "fields": fields})
	}

	resp, err := h.userService.ResetPassword(c.Context(), input)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *AuthHandler) errorResponse(c *fiber.Ctx, err error) error {
	return errorResponse(c, h.logger, err)
}

// errorResponse maps service errors onto status codes. Anything unexpected is
// logged with full detail and surfaced only as a generic message.
func errorResponse(c *fiber.Ctx, logger *slog.Logger, err error) error {
	switch {
	case errors.Is(err, autherror.ErrEmailAlreadyInUse):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, autherror.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, autherror.ErrInvalidOrExpiredResetToken),
		errors.Is(err, autherror.ErrWrongCurrentPassword),
		errors.Is(err, autherror.ErrPasswordMismatch),
		errors.Is(err, autherror.ErrInvalidAge):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, autherror.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		logger.Error("unexpected error", slog.String("path", c.Path()), slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
