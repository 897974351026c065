package dto

// SupplierInfo proveedor asociado a una alerta de reposición.
type SupplierInfo struct {
	ID           *string `json:"id"`
	Name         string  `json:"name"`
	ContactEmail *string `json:"contact_email"`
}

// PlaceholderSupplier marcador emitido cuando el producto no tiene proveedor
// resoluble. El literal "No Supplier" es parte del contrato del API.
func PlaceholderSupplier() SupplierInfo {
	return SupplierInfo{ID: nil, Name: "No Supplier", ContactEmail: nil}
}

// LowStockAlert alerta de reposición: un inventario bajo el umbral de su
// categoría y con ventas dentro de la ventana de actividad.
type LowStockAlert struct {
	ProductID         string       `json:"product_id"`
	ProductName       string       `json:"product_name"`
	SKU               string       `json:"sku"`
	WarehouseID       string       `json:"warehouse_id"`
	WarehouseName     string       `json:"warehouse_name"`
	CurrentStock      int64        `json:"current_stock"`
	Threshold         int64        `json:"threshold"`
	DaysUntilStockout int64        `json:"days_until_stockout"`
	Supplier          SupplierInfo `json:"supplier"`
}

// LowStockAlertsResponse salida del motor de alertas. Alerts siempre
// serializa como arreglo, nunca como null.
type LowStockAlertsResponse struct {
	Alerts      []LowStockAlert `json:"alerts"`
	TotalAlerts int             `json:"total_alerts"`
}
