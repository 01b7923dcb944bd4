package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/santigarciamarzano/stock-almacen-prueba/internal/application/authority"
	"github.com/santigarciamarzano/stock-almacen-prueba/internal/infrastructure/memory"
	"github.com/santigarciamarzano/stock-almacen-prueba/internal/infrastructure/postgres"
	httpRouter "github.com/santigarciamarzano/stock-almacen-prueba/internal/interfaces/http"
	"github.com/santigarciamarzano/stock-almacen-prueba/pkg/config"
	"github.com/santigarciamarzano/stock-almacen-prueba/pkg/logger"
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
		Str("storage", cfg.App.Storage).
		Msg("iniciando backend de inventario")

	ctx := context.Background()

	var inventoryUC *authority.UseCase
	if cfg.App.Storage == "memory" {
		// Modo demo: estado en memoria con unos ítems de ejemplo.
		repo := memory.NewRepository()
		repo.Seed(demoItems()...)
		inventoryUC = authority.NewUseCase(repo, repo.Items(), repo.Movements(), log)
	} else {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("crear esquema")
		}

		inventoryUC = authority.NewUseCase(
			postgres.NewTxRunner(pool),
			postgres.NewItemRepository(pool),
			postgres.NewMovementRepository(pool),
			log,
		)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.Origins,
		AllowMethods: "GET,POST,DELETE",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Inventory: inventoryUC,
		Log:       log,
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
