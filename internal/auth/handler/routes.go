package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ivanausecha/tidytask-backend/internal/auth/service"
)

func RegisterRoutes(app *fiber.App, auth *AuthHandler, users *UserHandler, google *GoogleHandler,
	tokenService service.TokenGenerator) {
	requireAuth := RequireAuth(tokenService)

	authGroup := app.Group("/api/v1/auth")
	authGroup.Post("/signup", auth.Signup)
	authGroup.Post("/login", auth.Login)
	authGroup.Post("/logout", requireAuth, auth.Logout)
	authGroup.Post("/recover-password", auth.RecoverPassword)
	authGroup.Post("/reset-password", auth.ResetPassword)
	authGroup.Get("/google", google.Login)
	authGroup.Get("/google/callback", google.Callback)

	me := app.Group("/api/v1/users/me", requireAuth)
	me.Get("/", users.Me)
	me.Put("/", users.UpdateMe)
	me.Put("/password", users.ChangePassword)
	me.Post("/avatar", users.UploadAvatar)
	me.Delete("/", users.DeleteMe)
}
