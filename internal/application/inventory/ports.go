package inventory

import (
	"context"

	"github.com/invorya/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del almacén,
// pasando repositorios atados a esa transacción. Garantiza que la cantidad y
// su entrada de historial se escriben en una sola unidad commit-o-rollback.
type TxRunner interface {
	RunAdjustment(ctx context.Context, fn func(
		inventoryRepo repository.InventoryRepository,
		changeRepo repository.InventoryChangeRepository,
	) error) error
}
