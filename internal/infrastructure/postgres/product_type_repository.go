package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/invorya/almacen-api/internal/domain/entity"
	"github.com/invorya/almacen-api/internal/domain/repository"
)

// ProductTypeRepo implementación del puerto ProductTypeRepository sobre
// PostgreSQL (usable con pool o tx).
type ProductTypeRepo struct {
	q Querier
}

var _ repository.ProductTypeRepository = (*ProductTypeRepo)(nil)

// NewProductTypeRepository construye el repositorio de tipos de producto.
func NewProductTypeRepository(q Querier) *ProductTypeRepo {
	return &ProductTypeRepo{q: q}
}

// GetByID devuelve el tipo de producto por id, o nil si no existe.
func (r *ProductTypeRepo) GetByID(ctx context.Context, id int64) (*entity.ProductType, error) {
	var productType entity.ProductType
	err := r.q.QueryRow(ctx,
		`SELECT id, name, low_stock_threshold FROM product_types WHERE id = $1`,
		id,
	).Scan(&productType.ID, &productType.Name, &productType.LowStockThreshold)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product type by id: %w", err)
	}
	return &productType, nil
}
