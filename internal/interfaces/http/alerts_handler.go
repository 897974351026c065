package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/almacen-api/internal/application/alerts"
	"github.com/invorya/almacen-api/internal/application/dto"
)

// AlertsHandler maneja las peticiones HTTP del motor de alertas de reposición.
type AlertsHandler struct {
	engine *alerts.UseCase
	report *alerts.ReportUseCase
}

// NewAlertsHandler construye el handler.
func NewAlertsHandler(engine *alerts.UseCase, report *alerts.ReportUseCase) *AlertsHandler {
	return &AlertsHandler{engine: engine, report: report}
}

// LowStock godoc
// @Summary      Alertas de stock bajo de una empresa
// @Tags         alerts
// @Produce      json
// @Param        companyId  path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/alerts/low-stock [get]
func (h *AlertsHandler) LowStock(c *fiber.Ctx) error {
	companyID, err := strconv.ParseInt(c.Params("companyId"), 10, 64)
	if err != nil {
		// Un id no numérico no puede identificar ninguna empresa.
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: dto.CodeNotFound, Message: "empresa no encontrada",
		})
	}

	out, err := h.engine.ComputeLowStock(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStockPDF godoc
// @Summary      Informe de reposición en PDF
// @Tags         alerts
// @Produce      application/pdf
// @Param        companyId  path  int  true  "ID de la empresa"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/alerts/low-stock/pdf [get]
func (h *AlertsHandler) LowStockPDF(c *fiber.Ctx) error {
	companyID, err := strconv.ParseInt(c.Params("companyId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: dto.CodeNotFound, Message: "empresa no encontrada",
		})
	}

	doc, err := h.report.GenerateLowStockReport(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}

	c.Type("pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="informe-reposicion-%d.pdf"`, companyID))
	return c.Send(doc)
}
