// Package storage selecciona el SnapshotRepository según la configuración.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-store/internal/domain/repository"
	"github.com/jhoicas/inventario-store/internal/infrastructure/filestore"
	"github.com/jhoicas/inventario-store/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-store/pkg/config"
)

// Open devuelve el repositorio del backend configurado y una función para liberar recursos.
func Open(ctx context.Context, cfg *config.Config) (repository.SnapshotRepository, func(), error) {
	switch cfg.Inventory.Backend {
	case config.BackendFile:
		return filestore.NewJSONSnapshotRepository(), func() {}, nil
	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		repo := postgres.NewSnapshotRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repo, pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("backend desconocido %q", cfg.Inventory.Backend)
	}
}
