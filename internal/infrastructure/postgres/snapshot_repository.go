package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-store/internal/domain"
	"github.com/jhoicas/inventario-store/internal/domain/entity"
	"github.com/jhoicas/inventario-store/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

const schemaSQL = `
	CREATE TABLE IF NOT EXISTS inventory_snapshots (
		name     TEXT    NOT NULL,
		position INTEGER NOT NULL,
		item     TEXT    NOT NULL,
		quantity BIGINT  NOT NULL CHECK (quantity >= 0),
		PRIMARY KEY (name, item)
	)`

// DB pool o conexión capaz de abrir transacciones.
type DB interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// SnapshotRepo implementación de SnapshotRepository sobre PostgreSQL.
// location es el nombre del snapshot; cada ítem es una fila con su posición.
type SnapshotRepo struct {
	db DB
}

// NewSnapshotRepository construye el adaptador. Pasar el pool.
func NewSnapshotRepository(db DB) *SnapshotRepo {
	return &SnapshotRepo{db: db}
}

// EnsureSchema crea la tabla de snapshots si no existe.
func (r *SnapshotRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear tabla inventory_snapshots: %w", err)
	}
	return nil
}

// Read obtiene los ítems del snapshot name ordenados por posición.
// Un snapshot sin filas se reporta como no encontrado.
func (r *SnapshotRepo) Read(ctx context.Context, name string) ([]entity.StockItem, error) {
	query := `
		SELECT item, quantity
		FROM inventory_snapshots WHERE name = $1
		ORDER BY position`
	rows, err := r.db.Query(ctx, query, name)
	if err != nil {
		return nil, domain.NewLoadError(domain.LoadIO, name, fmt.Errorf("leer snapshot: %w", err))
	}
	defer rows.Close()

	var items []entity.StockItem
	found := false
	for rows.Next() {
		found = true
		var item string
		var qty int64
		if err := rows.Scan(&item, &qty); err != nil {
			return nil, domain.NewLoadError(domain.LoadParse, name, fmt.Errorf("scan snapshot: %w", err))
		}
		if strings.TrimSpace(item) == "" || qty < 0 {
			return nil, domain.NewLoadError(domain.LoadParse, name, fmt.Errorf("fila inválida %q=%d", item, qty))
		}
		if qty == 0 {
			continue
		}
		items = append(items, entity.StockItem{Name: item, Quantity: int(qty)})
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewLoadError(domain.LoadIO, name, fmt.Errorf("leer snapshot: %w", err))
	}
	if !found {
		return nil, domain.NewLoadError(domain.LoadNotFound, name, domain.ErrSnapshotNotFound)
	}
	return items, nil
}

// Write reemplaza el snapshot name dentro de una transacción (DELETE + COPY).
func (r *SnapshotRepo) Write(ctx context.Context, name string, items []entity.StockItem) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM inventory_snapshots WHERE name = $1`, name); err != nil {
		return fmt.Errorf("borrar snapshot: %w", err)
	}

	rows := make([][]any, 0, len(items))
	for i, it := range items {
		rows = append(rows, []any{name, i, it.Name, int64(it.Quantity)})
	}
	if len(rows) > 0 {
		_, err = tx.CopyFrom(ctx,
			pgx.Identifier{"inventory_snapshots"},
			[]string{"name", "position", "item", "quantity"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return fmt.Errorf("copiar snapshot: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
