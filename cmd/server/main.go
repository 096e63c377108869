package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	httpadapter "resumely/internal/adapter/http"
	repo "resumely/internal/adapter/repository"
	"resumely/internal/auth"
	"resumely/internal/config"
	"resumely/internal/infrastructure/migration"
	"resumely/internal/usecase"
	infra "resumely/pkg/infrastructure"
	"resumely/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	zlog, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer zlog.Sync()

	if cfg.JWTSecret == "" {
		zlog.Fatal("JWT_SECRET is required")
	}

	ctx := context.Background()

	pool, err := infra.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("database connect failed", zap.Error(err))
	}
	defer pool.Close()

	if err := migration.RunMigrations(ctx, pool, zlog); err != nil {
		zlog.Fatal("migrations failed", zap.Error(err))
	}

	renderer := infra.NewChromedpRenderer(cfg.ChromePath)
	exporter := usecase.NewExporter(renderer, zlog)

	users := repo.NewUsersRepo(pool)
	resumes := repo.NewResumesRepo(pool)
	audit := repo.NewAuditRepo(pool, zlog)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)

	authH := httpadapter.NewAuthHandler(users, audit, tokens, cfg.BcryptCost, zlog)
	resumeH := httpadapter.NewResumeHandler(resumes, audit, exporter, zlog)

	app := fiber.New(fiber.Config{
		AppName:               "resumely",
		DisableStartupMessage: cfg.IsProd(),
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	httpadapter.Register(app, authH, resumeH, tokens, users)

	go func() {
		zlog.Info("server listening", zap.String("port", cfg.Port))
		if err := app.Listen(":" + cfg.Port); err != nil {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	zlog.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		zlog.Error("shutdown error", zap.Error(err))
	}
}
