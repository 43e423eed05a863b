package handler

import (
	"github.com/gofiber/fiber/v2"

	authhandler "github.com/ivanausecha/tidytask-backend/internal/auth/handler"
	authservice "github.com/ivanausecha/tidytask-backend/internal/auth/service"
)

func RegisterRoutes(app *fiber.App, h *TaskHandler, tokenService authservice.TokenGenerator) {
	tasks := app.Group("/api/v1/tasks", authhandler.RequireAuth(tokenService))
	tasks.Post("/", h.Create)
	tasks.Get("/", h.List)
	tasks.Get("/:id", h.Get)
	tasks.Put("/:id", h.Update)
	tasks.Delete("/:id", h.Delete)
}
