package entity

import "time"

// InventoryChange entrada del historial de cambios de un inventario.
// Es auditoría de solo inserción: ninguna entrada se actualiza ni se elimina.
type InventoryChange struct {
	ID          int64
	InventoryID int64
	OldQuantity int64
	NewQuantity int64
	ChangedAt   time.Time
}

// IsSale indica si el cambio se interpreta como venta. Una disminución de
// cantidad se asume venta; el modelo no distingue mermas, devoluciones ni
// correcciones de inventario.
func (c *InventoryChange) IsSale() bool {
	return c.NewQuantity < c.OldQuantity
}

// UnitsMoved unidades movidas por el cambio, en valor absoluto.
func (c *InventoryChange) UnitsMoved() int64 {
	d := c.OldQuantity - c.NewQuantity
	if d < 0 {
		return -d
	}
	return d
}
