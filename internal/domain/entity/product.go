package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo. El SKU es único en todo el catálogo y el
// precio es decimal exacto (NUMERIC en el almacén). Un producto no pertenece
// a ninguna bodega; la ubicación del stock se expresa a través de Inventory.
type Product struct {
	ID         int64
	Name       string
	SKU        string
	Price      decimal.Decimal
	TypeID     *int64 // categoría opcional; sin categoría no hay umbral y no hay alertas
	SupplierID *int64 // proveedor opcional
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
