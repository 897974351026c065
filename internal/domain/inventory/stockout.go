package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/invorya/almacen-api/internal/domain/entity"
)

// SalesWindowDays ventana de actividad del motor de alertas: solo cuentan las
// ventas de los últimos 30 días.
const SalesWindowDays = 30

// StockoutIndeterminate centinela de DaysUntilStockout cuando el promedio de
// venta es cero: horizonte indeterminado / lejano. Los consumidores del API
// dependen del literal 999.
const StockoutIndeterminate int64 = 999

// WindowStart inicio de la ventana de actividad respecto al instante dado,
// en UTC.
func WindowStart(now time.Time) time.Time {
	return now.UTC().AddDate(0, 0, -SalesWindowDays)
}

// FilterSales conserva solo los cambios que representan ventas
// (new_quantity < old_quantity). Cada evento cuenta por separado aunque varios
// ocurran el mismo día.
func FilterSales(changes []*entity.InventoryChange) []*entity.InventoryChange {
	sales := make([]*entity.InventoryChange, 0, len(changes))
	for _, c := range changes {
		if c.IsSale() {
			sales = append(sales, c)
		}
	}
	return sales
}

// AvgDailyUnitsSold promedio aritmético de |old - new| sobre los eventos de
// venta recibidos. Sin eventos el promedio es cero.
func AvgDailyUnitsSold(sales []*entity.InventoryChange) decimal.Decimal {
	if len(sales) == 0 {
		return decimal.Zero
	}
	var total int64
	for _, s := range sales {
		total += s.UnitsMoved()
	}
	return decimal.NewFromInt(total).Div(decimal.NewFromInt(int64(len(sales))))
}

// DaysUntilStockout días estimados de cobertura al ritmo de venta observado:
// floor(cantidad / promedio), truncando hacia cero. Con promedio cero
// devuelve StockoutIndeterminate.
func DaysUntilStockout(quantity int64, avgDailyUnitsSold decimal.Decimal) int64 {
	if !avgDailyUnitsSold.IsPositive() {
		return StockoutIndeterminate
	}
	return decimal.NewFromInt(quantity).Div(avgDailyUnitsSold).IntPart()
}
