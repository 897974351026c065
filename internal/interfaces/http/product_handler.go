package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/almacen-api/internal/application/catalog"
	"github.com/invorya/almacen-api/internal/application/dto"
)

// ProductHandler maneja las peticiones HTTP del catálogo de productos.
type ProductHandler struct {
	intake  *catalog.IntakeUseCase
	catalog *catalog.UseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(intake *catalog.IntakeUseCase, catalogUC *catalog.UseCase) *ProductHandler {
	return &ProductHandler{intake: intake, catalog: catalogUC}
}

// Create godoc
// @Summary      Alta de producto con inventario inicial
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  object  true  "name, sku, price, warehouse_id, initial_quantity y opcionales type_id, supplier_id"
// @Success      201   {object}  dto.ProductCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	// El caso de uso valida el cuerpo campo a campo; aquí solo se entrega el
	// JSON crudo para que la validación viva en un único lugar.
	out, err := h.intake.CreateProduct(c.Context(), c.Body())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: dto.CodeNotFound, Message: "producto no encontrado",
		})
	}

	out, err := h.catalog.GetProduct(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}

	out, err := h.catalog.ListProducts(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
