package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/almacen-api/internal/application/alerts"
	"github.com/invorya/almacen-api/internal/application/catalog"
	"github.com/invorya/almacen-api/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AlertsEngine *alerts.UseCase
	AlertsReport *alerts.ReportUseCase
	Intake       *catalog.IntakeUseCase
	Catalog      *catalog.UseCase
	Adjust       *inventory.AdjustUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Alertas de reposición por empresa
	companies := api.Group("/companies")
	alertsHandler := NewAlertsHandler(deps.AlertsEngine, deps.AlertsReport)
	companies.Get("/:companyId/alerts/low-stock", alertsHandler.LowStock)
	companies.Get("/:companyId/alerts/low-stock/pdf", alertsHandler.LowStockPDF)

	// Catálogo de productos
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.Intake, deps.Catalog)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	// Ajustes de inventario
	inventories := api.Group("/inventories")
	inventoryHandler := NewInventoryHandler(deps.Adjust)
	inventories.Post("/:id/adjustments", inventoryHandler.AdjustQuantity)
}
