// Package pdf implementa el render del informe de reposición (alertas de
// stock bajo) como documento imprimible para el equipo de compras.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa  │  INFORME DE REPOSICIÓN + fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total de alertas vigentes                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Bodega | Stock | Umbral | Días |    │
//	│         Proveedor                                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de uso interno                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/invorya/almacen-api/internal/application/dto"
	"github.com/invorya/almacen-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorAlert   = &props.Color{Red: 170, Green: 40, Blue: 40}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa alerts.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// LowStockReport genera el PDF del informe de reposición y devuelve sus bytes.
func (g *MarotoReportGenerator) LowStockReport(
	company *entity.Company,
	alerts []dto.LowStockAlert,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe de Reposición", true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(company, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(len(alerts)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(alerts) == 0 {
		m.AddRows(emptyRow())
	} else {
		m.AddRows(tableHeaderRow())
		for _, r := range tableAlertRows(alerts) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa (izq) y título + fecha de generación (der).
func headerRow(company *entity.Company, generatedAt time.Time) core.Row {
	fecha := generatedAt.Format("02/01/2006 15:04") + " UTC"

	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Planeación de compras", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INFORME DE REPOSICIÓN", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// summaryRow: total de alertas vigentes.
func summaryRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Productos por debajo del umbral de su categoría: %d", total),
				props.Text{Style: fontstyle.Bold, Size: 9, Top: 2}),
		),
	)
}

// emptyRow: mensaje cuando no hay alertas.
func emptyRow() core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New("Sin alertas de reposición vigentes.", props.Text{
			Size: 9, Align: align.Center, Color: colorGray, Top: 4,
		}),
	))
}

// tableHeaderRow: cabecera de la tabla de alertas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Producto", 3, align.Left),
		h("Bodega", 2, align.Left),
		h("Stock", 1, align.Right),
		h("Umbral", 1, align.Right),
		h("Días", 1, align.Right),
		h("Proveedor", 2, align.Left),
	)
}

// tableAlertRows: una fila por alerta. Las que quedan a tres días o menos de
// agotarse van en rojo.
func tableAlertRows(alerts []dto.LowStockAlert) []core.Row {
	result := make([]core.Row, 0, len(alerts))
	for _, a := range alerts {
		daysColor := colorGray
		if a.DaysUntilStockout <= 3 {
			daysColor = colorAlert
		}
		result = append(result, row.New(9).Add(
			col.New(2).Add(text.New(a.SKU, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(3).Add(text.New(a.ProductName, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(2).Add(text.New(a.WarehouseName, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(1).Add(text.New(strconv.FormatInt(a.CurrentStock, 10), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(1).Add(text.New(strconv.FormatInt(a.Threshold, 10), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(1).Add(text.New(strconv.FormatInt(a.DaysUntilStockout, 10), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Top: 1, Right: 1, Color: daysColor,
			})),
			col.New(2).Add(supplierCell(a.Supplier)...),
		))
	}
	return result
}

// supplierCell: nombre del proveedor y, si existe, su correo debajo.
func supplierCell(s dto.SupplierInfo) []core.Component {
	components := []core.Component{
		text.New(s.Name, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1}),
	}
	if s.ContactEmail != nil && *s.ContactEmail != "" {
		components = append(components, text.New(*s.ContactEmail, props.Text{
			Size: 6.5, Align: align.Left, Top: 5, Left: 1, Color: colorGray,
		}))
	}
	return components
}

// footerRow: leyenda de uso interno.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Documento interno de planeación de compras. Los días hasta agotar stock "+
				"se estiman con el promedio de ventas de los últimos 30 días.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}
