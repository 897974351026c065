package entity

// ProductType categoría de producto. LowStockThreshold es el punto de
// reposición de toda la categoría: un inventario es candidato a alerta cuando
// su cantidad queda estrictamente por debajo de este valor.
type ProductType struct {
	ID                int64
	Name              string
	LowStockThreshold int64
}
