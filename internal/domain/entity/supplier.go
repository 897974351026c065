package entity

// Supplier proveedor referenciado opcionalmente desde Product.
// ContactEmail puede ser nulo.
type Supplier struct {
	ID           int64
	Name         string
	ContactEmail *string
}
