package repository

import (
	"context"

	"github.com/jhoicas/inventario-store/internal/domain/entity"
)

// SnapshotRepository define el puerto de persistencia del mapa de stock completo.
// location es la ruta del archivo (backend file) o el nombre del snapshot (postgres).
type SnapshotRepository interface {
	// Read devuelve los ítems en el orden persistido. Los errores son *domain.LoadError.
	Read(ctx context.Context, location string) ([]entity.StockItem, error)
	// Write reemplaza el snapshot completo por items.
	Write(ctx context.Context, location string, items []entity.StockItem) error
}
