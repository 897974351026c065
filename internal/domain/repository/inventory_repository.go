package repository

import (
	"context"

	"github.com/invorya/almacen-api/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia para Inventory (DIP).
// Create asigna el ID generado sobre la entidad recibida. GetForUpdate toma
// el bloqueo de fila del almacén y solo tiene sentido dentro de una
// transacción.
type InventoryRepository interface {
	Create(ctx context.Context, inv *entity.Inventory) error
	GetByID(ctx context.Context, id int64) (*entity.Inventory, error)
	GetForUpdate(ctx context.Context, id int64) (*entity.Inventory, error)
	UpdateQuantity(ctx context.Context, inv *entity.Inventory) error

	// ListLowStockByCompany devuelve los inventarios de las bodegas de la
	// empresa cuya cantidad está estrictamente por debajo del umbral de su
	// categoría de producto, en orden estable por id. Los productos sin
	// categoría no participan.
	ListLowStockByCompany(ctx context.Context, companyID int64) ([]*entity.Inventory, error)
}
