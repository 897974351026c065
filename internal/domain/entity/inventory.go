package entity

import "time"

// Inventory existencia de un producto en una bodega: "este producto tiene
// esta cantidad en esta bodega". La cantidad nunca es negativa. Por convención
// hay a lo sumo un registro por par (producto, bodega).
type Inventory struct {
	ID          int64
	ProductID   int64
	WarehouseID int64
	Quantity    int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
