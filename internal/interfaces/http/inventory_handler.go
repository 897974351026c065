package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/almacen-api/internal/application/dto"
	"github.com/invorya/almacen-api/internal/application/inventory"
)

// InventoryHandler maneja los ajustes de cantidad sobre inventarios.
type InventoryHandler struct {
	adjust *inventory.AdjustUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(adjust *inventory.AdjustUseCase) *InventoryHandler {
	return &InventoryHandler{adjust: adjust}
}

// AdjustQuantity godoc
// @Summary      Fijar la cantidad de un inventario
// @Tags         inventories
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del inventario"
// @Param        body  body  dto.AdjustQuantityRequest  true  "Cantidad nueva"
// @Success      201   {object}  dto.AdjustmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventories/{id}/adjustments [post]
func (h *InventoryHandler) AdjustQuantity(c *fiber.Ctx) error {
	inventoryID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: dto.CodeNotFound, Message: "inventario no encontrado",
		})
	}

	var in dto.AdjustQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: dto.CodeValidation, Message: "cuerpo inválido",
		})
	}
	if in.NewQuantity == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: dto.CodeValidation, Message: "falta el campo new_quantity",
		})
	}

	out, err := h.adjust.AdjustQuantity(c.Context(), inventoryID, *in.NewQuantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
