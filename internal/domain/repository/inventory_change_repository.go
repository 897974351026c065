package repository

import (
	"context"
	"time"

	"github.com/invorya/almacen-api/internal/domain/entity"
)

// InventoryChangeRepository define el puerto de persistencia para el
// historial de cambios de inventario (DIP). El historial es de solo
// inserción: el puerto no expone actualización ni borrado.
type InventoryChangeRepository interface {
	Create(ctx context.Context, change *entity.InventoryChange) error

	// ListSalesSince devuelve las entradas del inventario dado registradas a
	// partir de `since` que representan ventas (new_quantity < old_quantity),
	// en orden cronológico.
	ListSalesSince(ctx context.Context, inventoryID int64, since time.Time) ([]*entity.InventoryChange, error)
}
