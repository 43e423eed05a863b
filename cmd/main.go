package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/ivanausecha/tidytask-backend/config"
	"github.com/ivanausecha/tidytask-backend/db"
	authhandler "github.com/ivanausecha/tidytask-backend/internal/auth/handler"
	authrepo "github.com/ivanausecha/tidytask-backend/internal/auth/repository/mongodb"
	authservice "github.com/ivanausecha/tidytask-backend/internal/auth/service"
	"github.com/ivanausecha/tidytask-backend/internal/mailer"
	taskhandler "github.com/ivanausecha/tidytask-backend/internal/task/handler"
	taskrepo "github.com/ivanausecha/tidytask-backend/internal/task/repository/mongodb"
	taskservice "github.com/ivanausecha/tidytask-backend/internal/task/service"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := db.NewMongoClient(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("mongo disconnect failed", slog.String("error", err.Error()))
		}
	}()
	database := client.Database(cfg.MongoDBName)

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("upload dir init: %v", err)
	}

	userRepo := authrepo.NewMongoUserRepository(database)
	taskRepo := taskrepo.NewMongoTaskRepository(database)
	tokenService := authservice.NewTokenService(cfg.JWTSecret, cfg.TokenExpiryHours)
	emailMailer := mailer.NewEmailMailer(cfg, logger)
	userService := authservice.NewUserService(userRepo, tokenService, emailMailer, taskRepo, cfg, logger)
	taskService := taskservice.NewTaskService(taskRepo)

	authHandler := authhandler.NewAuthHandler(userService, logger)
	userHandler := authhandler.NewUserHandler(userService, cfg.UploadDir, logger)
	googleHandler := authhandler.NewGoogleHandler(userService, cfg, logger)
	tHandler := taskhandler.NewTaskHandler(taskService, logger)

	app := fiber.New(fiber.Config{
		BodyLimit: 6 * 1024 * 1024,
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.FrontendURL,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Static("/uploads", cfg.UploadDir)

	authhandler.RegisterRoutes(app, authHandler, userHandler, googleHandler, tokenService)
	taskhandler.RegisterRoutes(app, tHandler, tokenService)

	logger.Info("server listening", slog.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
