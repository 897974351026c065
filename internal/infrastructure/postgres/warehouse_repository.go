package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/invorya/almacen-api/internal/domain/entity"
	"github.com/invorya/almacen-api/internal/domain/repository"
)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL
// (usable con pool o tx).
type WarehouseRepo struct {
	q Querier
}

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// NewWarehouseRepository construye el repositorio de bodegas.
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// GetByID devuelve la bodega por id, o nil si no existe.
func (r *WarehouseRepo) GetByID(ctx context.Context, id int64) (*entity.Warehouse, error) {
	var warehouse entity.Warehouse
	err := r.q.QueryRow(ctx,
		`SELECT id, company_id, name, created_at FROM warehouses WHERE id = $1`,
		id,
	).Scan(&warehouse.ID, &warehouse.CompanyID, &warehouse.Name, &warehouse.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse by id: %w", err)
	}
	return &warehouse, nil
}
