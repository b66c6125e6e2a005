package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/text/language"

	"github.com/jhoicas/inventario-store/internal/application/inventory"
	"github.com/jhoicas/inventario-store/internal/infrastructure/report"
	"github.com/jhoicas/inventario-store/internal/infrastructure/storage"
	"github.com/jhoicas/inventario-store/pkg/config"
	"github.com/jhoicas/inventario-store/pkg/logger"
)

// Ejecuta la demostración del sistema de inventario: carga, movimientos, consultas, reporte y guardado.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	log.Info().Str("backend", cfg.Inventory.Backend).Str("location", cfg.Inventory.Location).Msg("iniciando sistema de inventario")

	ctx := context.Background()
	repo, closeRepo, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer closeRepo()

	store := inventory.NewStore(repo, log)
	_ = store.Load(ctx, cfg.Inventory.Location)

	_ = store.Add("apple", 10)
	_ = store.Add("banana", 20)

	// Entradas inválidas: se registran y no modifican el stock
	_ = store.Add("banana", -2)
	_ = store.Add("", 10)

	_ = store.Remove("apple", 3)
	_ = store.Remove("orange", 1)

	fmt.Printf("Current apple stock: %d\n", store.GetQuantity("apple"))
	fmt.Printf("Current orange stock: %d\n", store.GetQuantity("orange"))
	fmt.Printf("Low items (<= %d): %v\n", cfg.Inventory.LowStockThreshold, store.CheckLowItems(cfg.Inventory.LowStockThreshold))

	_ = store.Save(ctx, cfg.Inventory.Location)

	if err := report.NewTextReporter(language.English).Write(os.Stdout, store.Items()); err != nil {
		log.Error().Err(err).Msg("imprimir reporte")
	}
}
