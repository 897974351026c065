// seed puebla la base de datos con un catálogo de demostración: una empresa
// con dos bodegas, productos con distinta rotación y un historial de ventas
// pensado para que el motor de alertas tenga casos de todos los tipos
// (candidato con ventas, candidato sin rotación, producto sin proveedor).
//
// Uso: go run ./cmd/seed
// No hace nada si la base ya contiene empresas.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/invorya/almacen-api/internal/infrastructure/postgres"
	"github.com/invorya/almacen-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conectar a PostgreSQL: %v", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		fail("aplicar migraciones: %v", err)
	}

	var existing int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM companies`).Scan(&existing); err != nil {
		fail("consultar empresas: %v", err)
	}
	if existing > 0 {
		fmt.Println("La base ya contiene datos; no se siembra nada.")
		return
	}

	now := time.Now().UTC()

	companyID := mustID(ctx, pool,
		`INSERT INTO companies (name) VALUES ($1) RETURNING id`,
		"Ferretería El Tornillo SAS")

	norte := mustID(ctx, pool,
		`INSERT INTO warehouses (company_id, name) VALUES ($1, $2) RETURNING id`,
		companyID, "Bodega Norte")
	centro := mustID(ctx, pool,
		`INSERT INTO warehouses (company_id, name) VALUES ($1, $2) RETURNING id`,
		companyID, "Bodega Centro")

	tornilleria := mustID(ctx, pool,
		`INSERT INTO product_types (name, low_stock_threshold) VALUES ($1, $2) RETURNING id`,
		"Tornillería", int64(50))
	herramienta := mustID(ctx, pool,
		`INSERT INTO product_types (name, low_stock_threshold) VALUES ($1, $2) RETURNING id`,
		"Herramienta Eléctrica", int64(5))

	aceros := mustID(ctx, pool,
		`INSERT INTO suppliers (name, contact_email) VALUES ($1, $2) RETURNING id`,
		"Aceros Andinos", "ventas@acerosandinos.co")
	importTools := mustID(ctx, pool,
		`INSERT INTO suppliers (name, contact_email) VALUES ($1, $2) RETURNING id`,
		"ImportTools", "pedidos@importtools.com")

	// Candidato clásico: bajo umbral, dos ventas recientes de 5 unidades.
	tornillo := mustProduct(ctx, pool, "Tornillo M4 x 20", "TOR-M4-20", "0.15", &tornilleria, &aceros)
	invTornillo := mustInventory(ctx, pool, tornillo, norte, 30)
	mustChange(ctx, pool, invTornillo, 40, 35, now.AddDate(0, 0, -9))
	mustChange(ctx, pool, invTornillo, 35, 30, now.AddDate(0, 0, -5))

	// Pocas unidades y una sola venta: cobertura corta.
	taladro := mustProduct(ctx, pool, "Taladro percutor 18V", "TAL-18V", "349.90", &herramienta, &importTools)
	invTaladro := mustInventory(ctx, pool, taladro, centro, 3)
	mustChange(ctx, pool, invTaladro, 4, 3, now.AddDate(0, 0, -5))

	// Sin proveedor: la alerta debe salir con el marcador "No Supplier".
	martillo := mustProduct(ctx, pool, "Martillo carpintero", "MAR-CA", "25.00", &herramienta, nil)
	invMartillo := mustInventory(ctx, pool, martillo, norte, 2)
	mustChange(ctx, pool, invMartillo, 3, 2, now.AddDate(0, 0, -2))

	// Bajo umbral pero sin ventas en la ventana: el motor lo descarta.
	brocha := mustProduct(ctx, pool, "Brocha 3 pulgadas", "BRO-3P", "6.80", &tornilleria, &aceros)
	invBrocha := mustInventory(ctx, pool, brocha, centro, 10)
	mustChange(ctx, pool, invBrocha, 12, 10, now.AddDate(0, 0, -45))

	// Stock sano con un reabastecimiento reciente (no es venta).
	guantes := mustProduct(ctx, pool, "Guantes de carnaza", "GUA-CZ", "8.50", &tornilleria, &aceros)
	invGuantes := mustInventory(ctx, pool, guantes, norte, 200)
	mustChange(ctx, pool, invGuantes, 150, 200, now.AddDate(0, 0, -1))

	fmt.Printf("Sembrado: empresa %d con 2 bodegas, 5 productos y su historial de ventas.\n", companyID)
}

func mustProduct(ctx context.Context, pool *pgxpool.Pool, name, sku, price string, typeID, supplierID *int64) int64 {
	return mustID(ctx, pool,
		`INSERT INTO products (name, sku, price, type_id, supplier_id)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		name, sku, decimal.RequireFromString(price), typeID, supplierID)
}

func mustInventory(ctx context.Context, pool *pgxpool.Pool, productID, warehouseID, quantity int64) int64 {
	return mustID(ctx, pool,
		`INSERT INTO inventories (product_id, warehouse_id, quantity)
		 VALUES ($1, $2, $3) RETURNING id`,
		productID, warehouseID, quantity)
}

func mustChange(ctx context.Context, pool *pgxpool.Pool, inventoryID, oldQty, newQty int64, at time.Time) {
	mustID(ctx, pool,
		`INSERT INTO inventory_changes (inventory_id, old_quantity, new_quantity, changed_at)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		inventoryID, oldQty, newQty, at)
}

func mustID(ctx context.Context, pool *pgxpool.Pool, sql string, args ...any) int64 {
	var id int64
	if err := pool.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		fail("sembrar datos: %v", err)
	}
	return id
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
