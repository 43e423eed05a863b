package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	authhandler "github.com/ivanausecha/tidytask-backend/internal/auth/handler"
	autherror "github.com/ivanausecha/tidytask-backend/internal/errors"
	"github.com/ivanausecha/tidytask-backend/internal/task/dto"
	"github.com/ivanausecha/tidytask-backend/internal/task/service"
	"github.com/ivanausecha/tidytask-backend/pkg/validation"
)

type TaskHandler struct {
	taskService *service.TaskService
	logger      *slog.Logger
}

func NewTaskHandler(taskService *service.TaskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{taskService: taskService, logger: logger}
}

func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateTaskInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if fields := validation.Struct(input); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation failed", "fields": fields})
	}

	task, err := h.taskService.Create(c.Context(), authhandler.AuthUserID(c), input)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(task)
}

func (h *TaskHandler) List(c *fiber.Ctx) error {
	tasks, err := h.taskService.List(c.Context(), authhandler.AuthUserID(c))
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(tasks)
}

func (h *TaskHandler) Get(c *fiber.Ctx) error {
	task, err := h.taskService.Get(c.Context(), authhandler.AuthUserID(c), c.Params("id"))
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(task)
}

func (h *TaskHandler) Update(c *fiber.Ctx) error {
	var input dto.UpdateTaskInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if fields := validation.Struct(input); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation failed", "fields": fields})
	}

	task, err := h.taskService.Update(c.Context(), authhandler.AuthUserID(c), c.Params("id"), input)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(task)
}

func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	if err := h.taskService.Delete(c.Context(), authhandler.AuthUserID(c), c.Params("id")); err != nil {
		return h.errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "task deleted"})
}

// errorResponse reports an unowned task exactly like a missing one: 404, so
// task ids cannot be probed across accounts.
func (h *TaskHandler) errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, autherror.ErrTaskNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, autherror.ErrInvalidDateFormat),
		errors.Is(err, autherror.ErrInvalidTimeFormat),
		errors.Is(err, autherror.ErrInvalidTaskStatus):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		h.logger.Error("unexpected error", slog.String("path", c.Path()), slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
