package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/invorya/almacen-api/internal/domain/entity"
	"github.com/invorya/almacen-api/internal/domain/repository"
)

// InventoryRepo implementación del puerto InventoryRepository sobre
// PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// NewInventoryRepository construye el repositorio de inventarios.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create inserta el inventario y asigna el id generado por la base de datos.
func (r *InventoryRepo) Create(ctx context.Context, inv *entity.Inventory) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO inventories (product_id, warehouse_id, quantity)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		inv.ProductID, inv.WarehouseID, inv.Quantity,
	).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return translateError("insert inventory", err)
	}
	return nil
}

// GetByID devuelve el inventario por id, o nil si no existe.
func (r *InventoryRepo) GetByID(ctx context.Context, id int64) (*entity.Inventory, error) {
	var inv entity.Inventory
	err := r.q.QueryRow(ctx,
		`SELECT id, product_id, warehouse_id, quantity, created_at, updated_at
		 FROM inventories WHERE id = $1`,
		id,
	).Scan(&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.Quantity, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory by id: %w", err)
	}
	return &inv, nil
}

// GetForUpdate devuelve el inventario bloqueando la fila, o nil si no existe.
// Debe llamarse dentro de una transacción.
func (r *InventoryRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Inventory, error) {
	var inv entity.Inventory
	err := r.q.QueryRow(ctx,
		`SELECT id, product_id, warehouse_id, quantity, created_at, updated_at
		 FROM inventories WHERE id = $1 FOR UPDATE`,
		id,
	).Scan(&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.Quantity, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory for update: %w", err)
	}
	return &inv, nil
}

// UpdateQuantity persiste la cantidad y updated_at vigentes de la entidad.
func (r *InventoryRepo) UpdateQuantity(ctx context.Context, inv *entity.Inventory) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE inventories SET quantity = $1, updated_at = $2 WHERE id = $3`,
		inv.Quantity, inv.UpdatedAt, inv.ID,
	)
	if err != nil {
		return translateError("update inventory quantity", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update inventory quantity: inventario %d no existe", inv.ID)
	}
	return nil
}

// ListLowStockByCompany devuelve los inventarios de la empresa cuya cantidad
// está estrictamente por debajo del umbral de la categoría de su producto.
// El JOIN interno con product_types deja fuera los productos sin categoría.
func (r *InventoryRepo) ListLowStockByCompany(ctx context.Context, companyID int64) ([]*entity.Inventory, error) {
	rows, err := r.q.Query(ctx,
		`SELECT i.id, i.product_id, i.warehouse_id, i.quantity, i.created_at, i.updated_at
		 FROM inventories i
		 JOIN warehouses w ON w.id = i.warehouse_id
		 JOIN products p ON p.id = i.product_id
		 JOIN product_types pt ON pt.id = p.type_id
		 WHERE w.company_id = $1 AND i.quantity < pt.low_stock_threshold
		 ORDER BY i.id`,
		companyID,
	)
	if err != nil {
		return nil, fmt.Errorf("list low stock by company: %w", err)
	}
	defer rows.Close()

	var inventories []*entity.Inventory
	for rows.Next() {
		var inv entity.Inventory
		if err := rows.Scan(
			&inv.ID, &inv.ProductID, &inv.WarehouseID,
			&inv.Quantity, &inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		inventories = append(inventories, &inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inventories: %w", err)
	}
	return inventories, nil
}
