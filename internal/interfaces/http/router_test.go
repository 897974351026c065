package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/almacen-api/internal/application/alerts"
	"github.com/invorya/almacen-api/internal/application/catalog"
	"github.com/invorya/almacen-api/internal/application/dto"
	"github.com/invorya/almacen-api/internal/application/inventory"
	"github.com/invorya/almacen-api/internal/domain"
	"github.com/invorya/almacen-api/internal/domain/entity"
	"github.com/invorya/almacen-api/internal/domain/repository"
	apihttp "github.com/invorya/almacen-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de integración del router: casos de uso reales sobre un almacén en
// memoria, ejercitados vía app.Test con peticiones HTTP completas. Cubren los
// códigos de estado, los cuerpos JSON y los contratos de error del API.
// ──────────────────────────────────────────────────────────────────────────────

// estado almacén en memoria compartido por todos los puertos falsos.
type estado struct {
	companies   map[int64]*entity.Company
	warehouses  map[int64]*entity.Warehouse
	types       map[int64]*entity.ProductType
	suppliers   map[int64]*entity.Supplier
	products    map[int64]*entity.Product
	inventories map[int64]*entity.Inventory
	changes     []*entity.InventoryChange
	nextID      int64
}

func (s *estado) siguienteID() int64 {
	s.nextID++
	return s.nextID
}

// clonar copia las colecciones que las transacciones escriben; las tablas de
// referencia se comparten porque las pruebas no las modifican.
func (s *estado) clonar() *estado {
	c := &estado{
		companies:   s.companies,
		warehouses:  s.warehouses,
		types:       s.types,
		suppliers:   s.suppliers,
		products:    make(map[int64]*entity.Product, len(s.products)),
		inventories: make(map[int64]*entity.Inventory, len(s.inventories)),
		changes:     append([]*entity.InventoryChange(nil), s.changes...),
		nextID:      s.nextID,
	}
	for id, p := range s.products {
		c.products[id] = p
	}
	for id, inv := range s.inventories {
		c.inventories[id] = inv
	}
	return c
}

type companiesFake struct{ s *estado }

func (f companiesFake) GetByID(_ context.Context, id int64) (*entity.Company, error) {
	return f.s.companies[id], nil
}

type warehousesFake struct{ s *estado }

func (f warehousesFake) GetByID(_ context.Context, id int64) (*entity.Warehouse, error) {
	return f.s.warehouses[id], nil
}

type typesFake struct{ s *estado }

func (f typesFake) GetByID(_ context.Context, id int64) (*entity.ProductType, error) {
	return f.s.types[id], nil
}

type suppliersFake struct{ s *estado }

func (f suppliersFake) GetByID(_ context.Context, id int64) (*entity.Supplier, error) {
	return f.s.suppliers[id], nil
}

type productsFake struct{ s *estado }

func (f productsFake) Create(_ context.Context, p *entity.Product) error {
	p.ID = f.s.siguienteID()
	now := time.Now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now
	f.s.products[p.ID] = p
	return nil
}

func (f productsFake) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	return f.s.products[id], nil
}

func (f productsFake) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range f.s.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (f productsFake) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	ids := make([]int64, 0, len(f.s.products))
	for id := range f.s.products {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })

	var out []*entity.Product
	for i := offset; i < len(ids) && len(out) < limit; i++ {
		out = append(out, f.s.products[ids[i]])
	}
	return out, nil
}

func (f productsFake) Count(_ context.Context) (int64, error) {
	return int64(len(f.s.products)), nil
}

type inventoriesFake struct{ s *estado }

func (f inventoriesFake) Create(_ context.Context, inv *entity.Inventory) error {
	if f.s.warehouses[inv.WarehouseID] == nil {
		return fmt.Errorf("%w: insert inventory: bodega %d inexistente", domain.ErrInvalidReference, inv.WarehouseID)
	}
	inv.ID = f.s.siguienteID()
	now := time.Now().UTC()
	inv.CreatedAt, inv.UpdatedAt = now, now
	f.s.inventories[inv.ID] = inv
	return nil
}

func (f inventoriesFake) GetByID(_ context.Context, id int64) (*entity.Inventory, error) {
	return f.s.inventories[id], nil
}

func (f inventoriesFake) GetForUpdate(_ context.Context, id int64) (*entity.Inventory, error) {
	return f.s.inventories[id], nil
}

func (f inventoriesFake) UpdateQuantity(_ context.Context, inv *entity.Inventory) error {
	f.s.inventories[inv.ID] = inv
	return nil
}

func (f inventoriesFake) ListLowStockByCompany(_ context.Context, companyID int64) ([]*entity.Inventory, error) {
	ids := make([]int64, 0, len(f.s.inventories))
	for id := range f.s.inventories {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []*entity.Inventory
	for _, id := range ids {
		inv := f.s.inventories[id]
		wh := f.s.warehouses[inv.WarehouseID]
		if wh == nil || wh.CompanyID != companyID {
			continue
		}
		p := f.s.products[inv.ProductID]
		if p == nil || p.TypeID == nil {
			continue
		}
		tipo := f.s.types[*p.TypeID]
		if tipo == nil || inv.Quantity >= tipo.LowStockThreshold {
			continue
		}
		out = append(out, inv)
	}
	return out, nil
}

type changesFake struct{ s *estado }

func (f changesFake) Create(_ context.Context, change *entity.InventoryChange) error {
	change.ID = f.s.siguienteID()
	f.s.changes = append(f.s.changes, change)
	return nil
}

func (f changesFake) ListSalesSince(_ context.Context, inventoryID int64, since time.Time) ([]*entity.InventoryChange, error) {
	var out []*entity.InventoryChange
	for _, ch := range f.s.changes {
		if ch.InventoryID != inventoryID || ch.ChangedAt.Before(since) || !ch.IsSale() {
			continue
		}
		out = append(out, ch)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ChangedAt.Before(out[j].ChangedAt) })
	return out, nil
}

type catalogRunnerFake struct{ s *estado }

// Run escribe sobre una copia del estado y sólo la publica si el cuerpo
// termina sin error, igual que la transacción real.
func (r catalogRunnerFake) Run(_ context.Context, fn func(repository.ProductRepository, repository.InventoryRepository) error) error {
	staged := r.s.clonar()
	if err := fn(productsFake{staged}, inventoriesFake{staged}); err != nil {
		return err
	}
	r.s.products = staged.products
	r.s.inventories = staged.inventories
	r.s.nextID = staged.nextID
	return nil
}

type adjustRunnerFake struct{ s *estado }

func (r adjustRunnerFake) RunAdjustment(_ context.Context, fn func(repository.InventoryRepository, repository.InventoryChangeRepository) error) error {
	return fn(inventoriesFake{r.s}, changesFake{r.s})
}

type pdfFake struct{}

func (pdfFake) LowStockReport(*entity.Company, []dto.LowStockAlert, time.Time) ([]byte, error) {
	return []byte("%PDF-1.7 informe simulado"), nil
}

// catalogoSembrado construye un almacén con una empresa, una bodega, un
// producto de ferretería con stock 6 (umbral 15) y dos ventas recientes de 2
// y 4 unidades: promedio 3/día, cobertura de 2 días.
func catalogoSembrado() *estado {
	s := &estado{
		companies:   make(map[int64]*entity.Company),
		warehouses:  make(map[int64]*entity.Warehouse),
		types:       make(map[int64]*entity.ProductType),
		suppliers:   make(map[int64]*entity.Supplier),
		products:    make(map[int64]*entity.Product),
		inventories: make(map[int64]*entity.Inventory),
		nextID:      5000,
	}

	s.companies[1] = &entity.Company{ID: 1, Name: "Acme Ltda"}
	s.companies[2] = &entity.Company{ID: 2, Name: "Sin Bodegas SAS"}
	s.warehouses[10] = &entity.Warehouse{ID: 10, CompanyID: 1, Name: "Bodega Central"}
	s.types[3] = &entity.ProductType{ID: 3, Name: "Ferretería", LowStockThreshold: 15}

	email := "ventas@andino.co"
	s.suppliers[7] = &entity.Supplier{ID: 7, Name: "Proveedor Andino", ContactEmail: &email}

	typeID, supplierID := int64(3), int64(7)
	s.products[100] = &entity.Product{
		ID: 100, Name: "Tornillo M4", SKU: "TOR-M4",
		Price: decimal.RequireFromString("19.99"), TypeID: &typeID, SupplierID: &supplierID,
	}
	s.inventories[1000] = &entity.Inventory{ID: 1000, ProductID: 100, WarehouseID: 10, Quantity: 6}

	now := time.Now().UTC()
	s.changes = []*entity.InventoryChange{
		{ID: 1, InventoryID: 1000, OldQuantity: 12, NewQuantity: 10, ChangedAt: now.AddDate(0, 0, -10)},
		{ID: 2, InventoryID: 1000, OldQuantity: 10, NewQuantity: 6, ChangedAt: now.AddDate(0, 0, -3)},
	}
	return s
}

func nuevaAppDePruebas(s *estado) *fiber.App {
	app := fiber.New()

	engine := alerts.NewUseCase(
		companiesFake{s}, warehousesFake{s}, productsFake{s},
		typesFake{s}, suppliersFake{s}, inventoriesFake{s}, changesFake{s},
	)
	report := alerts.NewReportUseCase(engine, pdfFake{})
	intake := catalog.NewIntakeUseCase(productsFake{s}, catalogRunnerFake{s})
	catalogUC := catalog.NewUseCase(productsFake{s})
	adjust := inventory.NewAdjustUseCase(adjustRunnerFake{s})

	apihttp.Router(app, apihttp.RouterDeps{
		AlertsEngine: engine,
		AlertsReport: report,
		Intake:       intake,
		Catalog:      catalogUC,
		Adjust:       adjust,
	})
	return app
}

func get(t *testing.T, app *fiber.App, path string) (int, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil), -1)
	require.NoError(t, err, "la petición de prueba no debe fallar")
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func post(t *testing.T, app *fiber.App, path, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err, "la petición de prueba no debe fallar")
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

// ── Alertas ───────────────────────────────────────────────────────────────────

func TestAlertas_EmpresaConStockBajo(t *testing.T) {
	app := nuevaAppDePruebas(catalogoSembrado())

	status, body := get(t, app, "/api/companies/1/alerts/low-stock")
	require.Equal(t, fiber.StatusOK, status)

	var out dto.LowStockAlertsResponse
	require.NoError(t, json.Unmarshal(body, &out))
	require.Equal(t, 1, out.TotalAlerts)
	require.Len(t, out.Alerts, 1)

	alerta := out.Alerts[0]
	assert.Equal(t, "100", alerta.ProductID)
	assert.Equal(t, "Tornillo M4", alerta.ProductName)
	assert.Equal(t, "TOR-M4", alerta.SKU)
	assert.Equal(t, "10", alerta.WarehouseID)
	assert.Equal(t, "Bodega Central", alerta.WarehouseName)
	assert.Equal(t, int64(6), alerta.CurrentStock)
	assert.Equal(t, int64(15), alerta.Threshold)
	assert.Equal(t, int64(2), alerta.DaysUntilStockout,
		"6 unidades a 3/día son 2 días de cobertura")
	require.NotNil(t, alerta.Supplier.ID)
	assert.Equal(t, "7", *alerta.Supplier.ID)
	assert.Equal(t, "Proveedor Andino", alerta.Supplier.Name)
	require.NotNil(t, alerta.Supplier.ContactEmail)
	assert.Equal(t, "ventas@andino.co", *alerta.Supplier.ContactEmail)
}

func TestAlertas_EmpresaSinBodegasDevuelveListaVacia(t *testing.T) {
	app := nuevaAppDePruebas(catalogoSembrado())

	status, body := get(t, app, "/api/companies/2/alerts/low-stock")
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body), `"alerts":[]`,
		"la lista vacía debe serializarse como arreglo, no como null")
	assert.Contains(t, string(body), `"total_alerts":0`)
}

func TestAlertas_CantidadIgualAlUmbralNoAlerta(t *testing.T) {
	app := nuevaAppDePruebas(catalogoSembrado())

	// Reponer hasta el umbral exacto: 15 no es menor que 15.
	status, _ := post(t, app, "/api/inventories/1000/adjustments", `{"new_quantity":15}`)
	require.Equal(t, fiber.StatusCreated, status)

	status, body := get(t, app, "/api/companies/1/alerts/low-stock")
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body), `"total_alerts":0`,
		"la alerta sólo dispara cuando la cantidad queda por debajo del umbral")
}

func TestAlertas_EmpresaInexistenteDevuelve404(t *testing.T) {
	app := nuevaAppDePruebas(catalogoSembrado())

	status, body := get(t, app, "/api/companies/999/alerts/low-stock")
	require.Equal(t, fiber.StatusNotFound, status)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, dto.CodeNotFound, out.Code)
	assert.Contains(t, out.Message, "empresa")
}

func TestAlertas_IDNoNumericoDevuelve404(t *testing.T) {
	app := nuevaAppDePruebas(catalogoSembrado())

	status, _ := get(t, app, "/api/companies/acme/alerts/low-stock")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestAlertas_InformePDF(t *testing.T) {
	app := nuevaAppDePruebas(catalogoSembrado())

	req := httptest.NewRequest(fiber.MethodGet, "/api/companies/1/alerts/low-stock/pdf", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "application/pdf")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "informe-reposicion-1.pdf")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "%PDF"))
}

// ── Alta de productos ─────────────────────────────────────────────────────────

func TestCrearProducto_AltaExitosa(t *testing.T) {
	s := catalogoSembrado()
	app := nuevaAppDePruebas(s)

	status, body := post(t, app, "/api/products",
		`{"name":"Martillo","sku":"MAR-01","price":"35.50","warehouse_id":10,"initial_quantity":8}`)
	require.Equal(t, fiber.StatusCreated, status)

	var out dto.ProductCreatedResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "5001", out.ProductID)

	// El inventario inicial debe existir y apuntar al producto nuevo.
	var inventario *entity.Inventory
	for _, inv := range s.inventories {
		if inv.ProductID == 5001 {
			inventario = inv
		}
	}
	require.NotNil(t, inventario, "el alta debe crear el inventario inicial")
	assert.Equal(t, int64(10), inventario.WarehouseID)
	assert.Equal(t, int64(8), inventario.Quantity)
}

func TestCrearProducto_CamposFaltantesDevuelve400(t *testing.T) {
	app := nuevaAppDePruebas(catalogoSembrado())

	status, body := post(t, app, "/api/products", `{"sku":"MAR-01"}`)
	require.Equal(t, fiber.StatusBadRequest, status)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, dto.CodeValidation, out.Code)
	assert.Contains(t, out.Message, "faltan campos del producto")
}

func TestCrearProducto_SKUDuplicadoDevuelve409(t *testing.T) {
	s := catalogoSembrado()
	app := nuevaAppDePruebas(s)

	productosAntes := len(s.products)
	status, body := post(t, app, "/api/products",
		`{"name":"Otro tornillo","sku":"TOR-M4","price":"9.99","warehouse_id":10,"initial_quantity":1}`)
	require.Equal(t, fiber.StatusConflict, status)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, dto.CodeDuplicate, out.Code)
	assert.Len(t, s.products, productosAntes, "el alta rechazada no debe escribir nada")
}

func TestCrearProducto_BodegaInexistenteDevuelve400(t *testing.T) {
	s := catalogoSembrado()
	app := nuevaAppDePruebas(s)

	productosAntes := len(s.products)
	status, body := post(t, app, "/api/products",
		`{"name":"Alicate","sku":"ALI-01","price":"27.90","warehouse_id":999,"initial_quantity":4}`)
	require.Equal(t, fiber.StatusBadRequest, status)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, dto.CodeInvalidReference, out.Code)
	assert.Len(t, s.products, productosAntes,
		"el producto debe revertirse cuando el inventario inicial falla")
}

// ── Lectura de productos ──────────────────────────────────────────────────────

func TestObtenerProducto_Existente(t *testing.T) {
	app := nuevaAppDePruebas(catalogoSembrado())

	status, body := get(t, app, "/api/products/100")
	require.Equal(t, fiber.StatusOK, status)

	var out dto.ProductResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "100", out.ID)
	assert.Equal(t, "Tornillo M4", out.Name)
	assert.True(t, decimal.RequireFromString("19.99").Equal(out.Price),
		"el precio debe conservarse exacto en el round-trip")
}

func TestObtenerProducto_InexistenteDevuelve404(t *testing.T) {
	app := nuevaAppDePruebas(catalogoSembrado())

	status, body := get(t, app, "/api/products/424242")
	require.Equal(t, fiber.StatusNotFound, status)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, dto.CodeNotFound, out.Code)
}

func TestListarProductos_RespetaLimite(t *testing.T) {
	app := nuevaAppDePruebas(catalogoSembrado())

	status, body := get(t, app, "/api/products?limit=1&offset=0")
	require.Equal(t, fiber.StatusOK, status)

	var out dto.ProductListResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Len(t, out.Items, 1)
	assert.Equal(t, int64(1), out.Page.Total)
	assert.Equal(t, 1, out.Page.Limit)
}

// ── Ajustes de inventario ─────────────────────────────────────────────────────

func TestAjustarInventario_RegistraCambio(t *testing.T) {
	s := catalogoSembrado()
	app := nuevaAppDePruebas(s)

	cambiosAntes := len(s.changes)
	status, body := post(t, app, "/api/inventories/1000/adjustments", `{"new_quantity":3}`)
	require.Equal(t, fiber.StatusCreated, status)

	var out dto.AdjustmentResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "1000", out.InventoryID)
	assert.Equal(t, int64(6), out.OldQuantity)
	assert.Equal(t, int64(3), out.NewQuantity)

	require.Len(t, s.changes, cambiosAntes+1, "el ajuste debe dejar constancia en el historial")
	ultimo := s.changes[len(s.changes)-1]
	assert.True(t, ultimo.IsSale(), "bajar la cantidad cuenta como venta para el motor de alertas")
	assert.Equal(t, int64(3), s.inventories[1000].Quantity)
}

func TestAjustarInventario_SinCampoDevuelve400(t *testing.T) {
	app := nuevaAppDePruebas(catalogoSembrado())

	status, body := post(t, app, "/api/inventories/1000/adjustments", `{}`)
	require.Equal(t, fiber.StatusBadRequest, status)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, dto.CodeValidation, out.Code)
	assert.Contains(t, out.Message, "new_quantity")
}

func TestAjustarInventario_CantidadNegativaDevuelve400(t *testing.T) {
	s := catalogoSembrado()
	app := nuevaAppDePruebas(s)

	status, _ := post(t, app, "/api/inventories/1000/adjustments", `{"new_quantity":-1}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, int64(6), s.inventories[1000].Quantity, "un ajuste inválido no debe escribir")
}

func TestAjustarInventario_InexistenteDevuelve404(t *testing.T) {
	app := nuevaAppDePruebas(catalogoSembrado())

	status, body := post(t, app, "/api/inventories/424242/adjustments", `{"new_quantity":5}`)
	require.Equal(t, fiber.StatusNotFound, status)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, dto.CodeNotFound, out.Code)
}
