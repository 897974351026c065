package repository

import (
	"context"

	"github.com/invorya/almacen-api/internal/domain/entity"
)

// ProductTypeRepository define el puerto de persistencia para ProductType (DIP).
type ProductTypeRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.ProductType, error)
}
