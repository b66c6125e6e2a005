package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/inventario-store/internal/application/inventory"
	"github.com/jhoicas/inventario-store/internal/infrastructure/report"
	"github.com/jhoicas/inventario-store/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/inventario-store/internal/interfaces/http"
	"github.com/jhoicas/inventario-store/pkg/config"
	"github.com/jhoicas/inventario-store/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Inventory.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repo, closeRepo, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer closeRepo()

	store := inventory.NewStore(repo, log)
	_ = store.Load(ctx, cfg.Inventory.Location)

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: las mutaciones no requieren autenticación")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if err := httpRouter.Docs(app, cfg.HTTP.SwaggerFile, "Inventario Store API"); err != nil {
		log.Warn().Err(err).Msg("swagger UI deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:             store,
		PDF:               report.NewPDFReporter("Inventario - " + cfg.App.Name),
		Location:          cfg.Inventory.Location,
		LowStockThreshold: cfg.Inventory.LowStockThreshold,
		JWTSecret:         cfg.JWT.Secret,
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
	_ = store.Save(shutdownCtx, cfg.Inventory.Location)

	log.Info().Msg("aplicación detenida")
}
