// Seed de desarrollo: crea el esquema e inserta unos ítems de ejemplo en
// PostgreSQL. Los SKUs ya existentes se ignoran, así que es seguro repetirlo.
package main

import (
	"context"

	"github.com/santigarciamarzano/stock-almacen-prueba/internal/domain"
	"github.com/santigarciamarzano/stock-almacen-prueba/internal/infrastructure/postgres"
	"github.com/santigarciamarzano/stock-almacen-prueba/pkg/config"
	"github.com/santigarciamarzano/stock-almacen-prueba/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}

	items := []domain.Item{
		{SKU: "TORN-M4", EAN13: "8412345678905", Stock: 120},
		{SKU: "TUER-M4", EAN13: "8412345678912", Stock: 200},
		{SKU: "ARAN-8MM", EAN13: "8412345678929", Stock: 75},
		{SKU: "CABLE-2M", EAN13: "8412345678936", Stock: 10},
	}

	repo := postgres.NewItemRepository(pool)
	for _, it := range items {
		if err := repo.Create(ctx, &it); err != nil {
			log.Fatal().Err(err).Str("sku", it.SKU).Msg("insertar ítem")
		}
	}
	log.Info().Int("items", len(items)).Msg("seed completado")
}
