package catalog

import (
	"context"

	"github.com/invorya/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del almacén,
// pasando repositorios atados a esa transacción. Garantiza que el producto y
// su inventario inicial se escriben en una sola unidad commit-o-rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
	) error) error
}
