package alerts

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/invorya/almacen-api/internal/application/dto"
	"github.com/invorya/almacen-api/internal/domain"
	"github.com/invorya/almacen-api/internal/domain/entity"
	domaininv "github.com/invorya/almacen-api/internal/domain/inventory"
	"github.com/invorya/almacen-api/internal/domain/repository"
)

// UseCase motor de alertas de reposición. Recorre el inventario de las
// bodegas de una empresa, conserva los registros bajo el umbral de su
// categoría que tuvieron ventas en la ventana de actividad y estima los días
// de cobertura restantes. Solo lecturas; no toma bloqueos.
type UseCase struct {
	companyRepo   repository.CompanyRepository
	warehouseRepo repository.WarehouseRepository
	productRepo   repository.ProductRepository
	typeRepo      repository.ProductTypeRepository
	supplierRepo  repository.SupplierRepository
	inventoryRepo repository.InventoryRepository
	changeRepo    repository.InventoryChangeRepository
}

// NewUseCase construye el motor de alertas.
func NewUseCase(
	companyRepo repository.CompanyRepository,
	warehouseRepo repository.WarehouseRepository,
	productRepo repository.ProductRepository,
	typeRepo repository.ProductTypeRepository,
	supplierRepo repository.SupplierRepository,
	inventoryRepo repository.InventoryRepository,
	changeRepo repository.InventoryChangeRepository,
) *UseCase {
	return &UseCase{
		companyRepo:   companyRepo,
		warehouseRepo: warehouseRepo,
		productRepo:   productRepo,
		typeRepo:      typeRepo,
		supplierRepo:  supplierRepo,
		inventoryRepo: inventoryRepo,
		changeRepo:    changeRepo,
	}
}

// ComputeLowStock calcula las alertas de stock bajo de una empresa.
// Una empresa sin bodegas o sin candidatos produce una lista vacía, no un
// error; el único fallo externo del motor es la empresa inexistente.
func (uc *UseCase) ComputeLowStock(ctx context.Context, companyID int64) (*dto.LowStockAlertsResponse, error) {
	// 1. Resolver la empresa
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("consultar empresa %d: %w", companyID, err)
	}
	if company == nil {
		return nil, fmt.Errorf("%w: empresa %d", domain.ErrNotFound, companyID)
	}

	// 2. Candidatos: inventarios bajo el umbral de su categoría
	candidates, err := uc.inventoryRepo.ListLowStockByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("consultar inventarios bajo umbral: %w", err)
	}

	// 3. Ventana de actividad: últimos 30 días respecto a ahora, en UTC
	since := domaininv.WindowStart(time.Now())

	alerts := make([]dto.LowStockAlert, 0, len(candidates))
	for _, inv := range candidates {
		// 4. Ventas dentro de la ventana. Sin ventas el candidato se
		// descarta: stock bajo sin rotación no es accionable.
		sales, err := uc.changeRepo.ListSalesSince(ctx, inv.ID, since)
		if err != nil {
			return nil, fmt.Errorf("consultar ventas del inventario %d: %w", inv.ID, err)
		}
		if len(sales) == 0 {
			continue
		}

		// 5-6. Promedio por evento de venta y horizonte de agotamiento
		avg := domaininv.AvgDailyUnitsSold(sales)
		days := domaininv.DaysUntilStockout(inv.Quantity, avg)

		// 7-8. Resolver referencias y armar la alerta
		alert, err := uc.buildAlert(ctx, inv, days)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, alert)
	}

	// 9. Sin orden de urgencia: el motor no prioriza, solo reporta
	return &dto.LowStockAlertsResponse{Alerts: alerts, TotalAlerts: len(alerts)}, nil
}

// buildAlert resuelve producto, bodega, categoría y proveedor del candidato.
// Una referencia ausente aquí no es un "no encontrado" del API sino una
// violación de integridad: la consulta de candidatos garantiza la presencia
// de las referencias en un almacén consistente.
func (uc *UseCase) buildAlert(ctx context.Context, inv *entity.Inventory, days int64) (dto.LowStockAlert, error) {
	product, err := uc.productRepo.GetByID(ctx, inv.ProductID)
	if err != nil {
		return dto.LowStockAlert{}, fmt.Errorf("consultar producto %d: %w", inv.ProductID, err)
	}
	if product == nil {
		return dto.LowStockAlert{}, fmt.Errorf("%w: el inventario %d referencia un producto %d inexistente",
			domain.ErrInconsistentCatalog, inv.ID, inv.ProductID)
	}

	warehouse, err := uc.warehouseRepo.GetByID(ctx, inv.WarehouseID)
	if err != nil {
		return dto.LowStockAlert{}, fmt.Errorf("consultar bodega %d: %w", inv.WarehouseID, err)
	}
	if warehouse == nil {
		return dto.LowStockAlert{}, fmt.Errorf("%w: el inventario %d referencia una bodega %d inexistente",
			domain.ErrInconsistentCatalog, inv.ID, inv.WarehouseID)
	}

	if product.TypeID == nil {
		return dto.LowStockAlert{}, fmt.Errorf("%w: el producto %d llegó como candidato sin categoría",
			domain.ErrInconsistentCatalog, product.ID)
	}
	ptype, err := uc.typeRepo.GetByID(ctx, *product.TypeID)
	if err != nil {
		return dto.LowStockAlert{}, fmt.Errorf("consultar categoría %d: %w", *product.TypeID, err)
	}
	if ptype == nil {
		return dto.LowStockAlert{}, fmt.Errorf("%w: el producto %d referencia una categoría %d inexistente",
			domain.ErrInconsistentCatalog, product.ID, *product.TypeID)
	}

	supplier, err := uc.resolveSupplier(ctx, product)
	if err != nil {
		return dto.LowStockAlert{}, err
	}

	return dto.LowStockAlert{
		ProductID:         strconv.FormatInt(product.ID, 10),
		ProductName:       product.Name,
		SKU:               product.SKU,
		WarehouseID:       strconv.FormatInt(warehouse.ID, 10),
		WarehouseName:     warehouse.Name,
		CurrentStock:      inv.Quantity,
		Threshold:         ptype.LowStockThreshold,
		DaysUntilStockout: days,
		Supplier:          supplier,
	}, nil
}

// resolveSupplier devuelve el proveedor del producto o el marcador
// "No Supplier". Un proveedor referenciado pero ya inexistente también
// produce el marcador: el proveedor es informativo, no estructural.
func (uc *UseCase) resolveSupplier(ctx context.Context, product *entity.Product) (dto.SupplierInfo, error) {
	if product.SupplierID == nil {
		return dto.PlaceholderSupplier(), nil
	}
	s, err := uc.supplierRepo.GetByID(ctx, *product.SupplierID)
	if err != nil {
		return dto.SupplierInfo{}, fmt.Errorf("consultar proveedor %d: %w", *product.SupplierID, err)
	}
	if s == nil {
		return dto.PlaceholderSupplier(), nil
	}
	id := strconv.FormatInt(s.ID, 10)
	return dto.SupplierInfo{ID: &id, Name: s.Name, ContactEmail: s.ContactEmail}, nil
}
