package catalog

import (
	"context"
	"fmt"
	"strconv"

	"github.com/invorya/almacen-api/internal/application/dto"
	"github.com/invorya/almacen-api/internal/domain"
	"github.com/invorya/almacen-api/internal/domain/entity"
	"github.com/invorya/almacen-api/internal/domain/repository"
)

// UseCase lecturas del catálogo de productos.
type UseCase struct {
	productRepo repository.ProductRepository
}

// NewUseCase construye el caso de uso de lecturas del catálogo.
func NewUseCase(productRepo repository.ProductRepository) *UseCase {
	return &UseCase{productRepo: productRepo}
}

// GetProduct devuelve un producto por id.
func (uc *UseCase) GetProduct(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("consultar producto %d: %w", id, err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
	}
	resp := newProductResponse(p)
	return &resp, nil
}

// ListProducts devuelve una página de productos, los más recientes primero.
func (uc *UseCase) ListProducts(ctx context.Context, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()

	products, err := uc.productRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	total, err := uc.productRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("contar productos: %w", err)
	}

	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, newProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// newProductResponse mapea la entidad al DTO de salida con IDs como cadenas.
func newProductResponse(p *entity.Product) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:        strconv.FormatInt(p.ID, 10),
		Name:      p.Name,
		SKU:       p.SKU,
		Price:     p.Price,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.TypeID != nil {
		s := strconv.FormatInt(*p.TypeID, 10)
		resp.TypeID = &s
	}
	if p.SupplierID != nil {
		s := strconv.FormatInt(*p.SupplierID, 10)
		resp.SupplierID = &s
	}
	return resp
}
