package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/invorya/almacen-api/internal/domain/entity"
	"github.com/invorya/almacen-api/internal/domain/repository"
)

// InventoryChangeRepo implementación del puerto InventoryChangeRepository
// sobre PostgreSQL (usable con pool o tx).
type InventoryChangeRepo struct {
	q Querier
}

var _ repository.InventoryChangeRepository = (*InventoryChangeRepo)(nil)

// NewInventoryChangeRepository construye el repositorio del historial.
func NewInventoryChangeRepository(q Querier) *InventoryChangeRepo {
	return &InventoryChangeRepo{q: q}
}

// Create inserta la entrada de historial y asigna el id generado.
func (r *InventoryChangeRepo) Create(ctx context.Context, change *entity.InventoryChange) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO inventory_changes (inventory_id, old_quantity, new_quantity, changed_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		change.InventoryID, change.OldQuantity, change.NewQuantity, change.ChangedAt,
	).Scan(&change.ID)
	if err != nil {
		return translateError("insert inventory change", err)
	}
	return nil
}

// ListSalesSince devuelve las ventas (new_quantity < old_quantity) del
// inventario registradas a partir de `since`, en orden cronológico.
func (r *InventoryChangeRepo) ListSalesSince(ctx context.Context, inventoryID int64, since time.Time) ([]*entity.InventoryChange, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, inventory_id, old_quantity, new_quantity, changed_at
		 FROM inventory_changes
		 WHERE inventory_id = $1 AND changed_at >= $2 AND new_quantity < old_quantity
		 ORDER BY changed_at`,
		inventoryID, since,
	)
	if err != nil {
		return nil, fmt.Errorf("list sales since: %w", err)
	}
	defer rows.Close()

	var changes []*entity.InventoryChange
	for rows.Next() {
		var change entity.InventoryChange
		if err := rows.Scan(
			&change.ID, &change.InventoryID,
			&change.OldQuantity, &change.NewQuantity, &change.ChangedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory change: %w", err)
		}
		changes = append(changes, &change)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inventory changes: %w", err)
	}
	return changes, nil
}
