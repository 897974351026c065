package entity

import "time"

// Warehouse bodega física de una empresa. Agrupa registros de inventario.
type Warehouse struct {
	ID        int64
	CompanyID int64
	Name      string
	CreatedAt time.Time
}
