package main

import (
	"context"
	"os"

	"github.com/santigarciamarzano/stock-almacen-prueba/internal/application/stock"
	"github.com/santigarciamarzano/stock-almacen-prueba/internal/infrastructure/api"
	"github.com/santigarciamarzano/stock-almacen-prueba/internal/interfaces/console"
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

	client := api.New(cfg.Client.BaseURL, log)
	store := stock.NewStore(client, log)
	translator := stock.NewTranslator(store)
	executor := stock.NewExecutor(client, store, log)

	ui := console.New(store, translator, executor, os.Stdin, os.Stdout)
	guard := stock.NewGuard(client, store, stock.ConfirmerFunc(ui.Confirm), log)
	ui.SetGuard(guard)

	if err := ui.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("consola finalizada con error")
	}
}
