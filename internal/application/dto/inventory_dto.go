package dto

// AdjustQuantityRequest entrada para fijar la cantidad de un inventario.
// NewQuantity es puntero para distinguir "cero" de "ausente".
type AdjustQuantityRequest struct {
	NewQuantity *int64 `json:"new_quantity"`
}

// AdjustmentResponse confirmación de un ajuste de cantidad.
type AdjustmentResponse struct {
	Message     string `json:"message"`
	InventoryID string `json:"inventory_id"`
	OldQuantity int64  `json:"old_quantity"`
	NewQuantity int64  `json:"new_quantity"`
}
