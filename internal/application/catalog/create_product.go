package catalog

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/invorya/almacen-api/internal/application/dto"
	"github.com/invorya/almacen-api/internal/domain"
	"github.com/invorya/almacen-api/internal/domain/entity"
	"github.com/invorya/almacen-api/internal/domain/repository"
)

// IntakeUseCase alta transaccional de producto: valida el payload, verifica
// la unicidad del SKU y crea el producto junto con su inventario inicial en
// una sola transacción. El almacén nunca queda con un producto sin su
// inventario pareado ni viceversa.
type IntakeUseCase struct {
	productRepo repository.ProductRepository
	txRunner    TxRunner
}

// NewIntakeUseCase construye el caso de uso de alta.
func NewIntakeUseCase(productRepo repository.ProductRepository, txRunner TxRunner) *IntakeUseCase {
	return &IntakeUseCase{productRepo: productRepo, txRunner: txRunner}
}

// CreateProduct procesa el cuerpo crudo del alta: Validating →
// UniquenessChecking → Writing → {Committed | RolledBack}. La verificación
// previa del SKU solo existe para fallar rápido con un mensaje amable; la
// restricción UNIQUE del almacén es la guarda autoritativa contra carreras.
func (uc *IntakeUseCase) CreateProduct(ctx context.Context, body []byte) (*dto.ProductCreatedResponse, error) {
	in, err := parseIntakePayload(body)
	if err != nil {
		return nil, err
	}

	existing, err := uc.productRepo.GetBySKU(ctx, in.SKU)
	if err != nil {
		// Un fallo del almacén aquí jamás se interpreta como "SKU libre".
		return nil, fmt.Errorf("verificar unicidad del SKU %q: %w", in.SKU, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: el SKU %q ya existe", domain.ErrDuplicate, in.SKU)
	}

	now := time.Now().UTC()
	product := &entity.Product{
		Name:       in.Name,
		SKU:        in.SKU,
		Price:      in.Price,
		TypeID:     in.TypeID,
		SupplierID: in.SupplierID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
	) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return fmt.Errorf("insertar producto: %w", err)
		}
		// El ID generado del producto ya está disponible sin cerrar la
		// transacción; el inventario inicial lo referencia.
		inv := &entity.Inventory{
			ProductID:   product.ID,
			WarehouseID: in.WarehouseID,
			Quantity:    in.InitialQuantity,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := inventoryRepo.Create(ctx, inv); err != nil {
			return fmt.Errorf("insertar inventario inicial: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.ProductCreatedResponse{
		Message:   "producto creado con inventario inicial",
		ProductID: strconv.FormatInt(product.ID, 10),
	}, nil
}
