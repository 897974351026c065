package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductCreatedResponse confirmación de alta de un producto con su
// inventario inicial.
type ProductCreatedResponse struct {
	Message   string `json:"message"`
	ProductID string `json:"product_id"`
}

// ProductResponse salida de un producto del catálogo. Price serializa como
// cadena decimal exacta.
type ProductResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	SKU        string          `json:"sku"`
	Price      decimal.Decimal `json:"price"`
	TypeID     *string         `json:"type_id"`
	SupplierID *string         `json:"supplier_id"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
