package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/invorya/almacen-api/internal/domain/entity"
	"github.com/invorya/almacen-api/internal/domain/repository"
)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

var _ repository.ProductRepository = (*ProductRepo)(nil)

// NewProductRepository construye el repositorio de productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create inserta el producto y asigna el id generado por la base de datos.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO products (name, sku, price, type_id, supplier_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		product.Name, product.SKU, product.Price, product.TypeID, product.SupplierID,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return translateError("insert product", err)
	}
	return nil
}

// GetByID devuelve el producto por id, o nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	var product entity.Product
	err := r.q.QueryRow(ctx,
		`SELECT id, name, sku, price, type_id, supplier_id, created_at, updated_at
		 FROM products WHERE id = $1`,
		id,
	).Scan(
		&product.ID, &product.Name, &product.SKU, &product.Price,
		&product.TypeID, &product.SupplierID, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return &product, nil
}

// GetBySKU devuelve el producto por SKU, o nil si no existe.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	var product entity.Product
	err := r.q.QueryRow(ctx,
		`SELECT id, name, sku, price, type_id, supplier_id, created_at, updated_at
		 FROM products WHERE sku = $1`,
		sku,
	).Scan(
		&product.ID, &product.Name, &product.SKU, &product.Price,
		&product.TypeID, &product.SupplierID, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return &product, nil
}

// List devuelve productos ordenados del más reciente al más antiguo.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, sku, price, type_id, supplier_id, created_at, updated_at
		 FROM products ORDER BY id DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		var product entity.Product
		if err := rows.Scan(
			&product.ID, &product.Name, &product.SKU, &product.Price,
			&product.TypeID, &product.SupplierID, &product.CreatedAt, &product.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, &product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

// Count devuelve el total de productos del catálogo.
func (r *ProductRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}
