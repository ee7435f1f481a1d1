package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Jardineria-api/internal/application/auth"
	"github.com/jhoicas/Jardineria-api/internal/application/notifications"
	"github.com/jhoicas/Jardineria-api/internal/application/usecase"
	"github.com/jhoicas/Jardineria-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Jardineria-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Jardineria-api/internal/interfaces/http"
	"github.com/jhoicas/Jardineria-api/pkg/config"
	"github.com/jhoicas/Jardineria-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	fileStore, err := storage.NewLocalStorage(cfg.Storage.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("directorio de uploads")
	}

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	jobRepo := postgres.NewJobRepository(pool)
	templateRepo := postgres.NewEstimateTemplateRepository(pool)
	photoRepo := postgres.NewPhotoRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	savedItemRepo := postgres.NewSavedItemRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, txRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	clientUC := usecase.NewClientUseCase(clientRepo, txRunner)
	jobUC := usecase.NewJobUseCase(jobRepo)
	templateUC := usecase.NewTemplateUseCase(templateRepo, txRunner)
	photoUC := usecase.NewPhotoUseCase(photoRepo, jobRepo, fileStore, log.Zerolog())
	taskUC := usecase.NewTaskUseCase(taskRepo)
	savedItemUC := usecase.NewSavedItemUseCase(savedItemRepo)

	// Feed de notificaciones: fotos subidas, trabajos completados y tareas
	// terminadas, agregados en una sola lista ordenada.
	aggregator := notifications.NewAggregator(
		notifications.NewPhotoSource(photoRepo),
		notifications.NewJobSource(jobRepo),
		notifications.NewTaskSource(taskRepo),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    (cfg.Storage.MaxUploadMB + 1) * 1024 * 1024,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Jardín Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		ClientUC:    clientUC,
		JobUC:       jobUC,
		TemplateUC:  templateUC,
		PhotoUC:     photoUC,
		TaskUC:      taskUC,
		SavedItemUC: savedItemUC,
		Aggregator:  aggregator,
		JWTSecret:   cfg.JWT.Secret,
		MaxUploadMB: cfg.Storage.MaxUploadMB,
		Logger:      log.Zerolog(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
