package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/santigarciamarzano/stock-almacen-prueba/internal/application/authority"
	"github.com/santigarciamarzano/stock-almacen-prueba/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Inventory *authority.UseCase
	Log       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Log != nil {
		app.Use(requestLogger(deps.Log))
	}

	api := app.Group("/api")
	h := NewInventoryHandler(deps.Inventory)

	items := api.Group("/items")
	items.Get("/", h.ListItems)
	items.Post("/:id/adjust", h.AdjustStock)

	movements := api.Group("/movements")
	movements.Get("/", h.ListMovements)
	movements.Delete("/", h.ClearMovements)
}

// requestLogger loguea cada petición con el X-Request-ID que manda el cliente
// de consola, para poder correlacionar ambos lados.
func requestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Str("request_id", c.Get("X-Request-ID")).
			Dur("elapsed", time.Since(start)).
			Msg("petición atendida")
		return err
	}
}
