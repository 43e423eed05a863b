package handler

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ivanausecha/tidytask-backend/internal/auth/dto"
	"github.com/ivanausecha/tidytask-backend/internal/auth/service"
	"github.com/ivanausecha/tidytask-backend/pkg/constant"
	"github.com/ivanausecha/tidytask-backend/pkg/validation"
)

type UserHandler struct {
	userService *service.UserService
	uploadDir   string
	logger      *slog.Logger
}

func NewUserHandler(userService *service.UserService, uploadDir string, logger *slog.Logger) *UserHandler {
	return &UserHandler{userService: userService, uploadDir: uploadDir, logger: logger}
}

func (h *UserHandler) Me(c *fiber.Ctx) error {
	profile, err := h.userService.GetProfile(c.Context(), AuthUserID(c))
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	var input dto.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if fields := validation.Struct(input); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation failed", "fields": fields})
	}

	profile, err := h.userService.UpdateProfile(c.Context(), AuthUserID(c), input)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	var input dto.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if fields := validation.Struct(input); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation failed", "fields": fields})
	}

	if err := h.userService.ChangePassword(c.Context(), AuthUserID(c), input); err != nil {
		return h.errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "password updated"})
}

// UploadAvatar accepts a single multipart image up to 5MB, writes it under the
// upload directory with a collision-free name and stores the public path. The
// previous file is removed only after the store update lands; a crash in
// between leaves an orphaned file, which is accepted.
func (h *UserHandler) UploadAvatar(c *fiber.Ctx) error {
	file, err := c.FormFile("avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no file provided"})
	}

	if file.Size > constant.MaxAvatarSizeBytes {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file exceeds the 5MB limit"})
	}
	if !strings.HasPrefix(file.Header.Get(fiber.HeaderContentType), "image/") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file must be an image"})
	}

	userID := AuthUserID(c)
	name := fmt.Sprintf("%s_%d%s", userID, time.Now().UnixNano(), filepath.Ext(file.Filename))
	if err := c.SaveFile(file, filepath.Join(h.uploadDir, name)); err != nil {
		h.logger.Error("failed to save avatar", slog.String("user_id", userID), slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	avatarPath := "/uploads/" + name
	oldPath, err := h.userService.UpdateAvatar(c.Context(), userID, avatarPath)
	if err != nil {
		return h.errorResponse(c, err)
	}

	if oldPath != "" {
		oldName := strings.TrimPrefix(oldPath, "/uploads/")
		if err := os.Remove(filepath.Join(h.uploadDir, oldName)); err != nil && !os.IsNotExist(err) {
			h.logger.Warn("failed to remove old avatar", slog.String("path", oldPath), slog.String("error", err.Error()))
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"avatarPath": avatarPath})
}

func (h *UserHandler) DeleteMe(c *fiber.Ctx) error {
	if err := h.userService.DeleteAccount(c.Context(), AuthUserID(c)); err != nil {
		return h.errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "account deleted"})
}

func (h *UserHandler) errorResponse(c *fiber.Ctx, err error) error {
	return errorResponse(c, h.logger, err)
}
