package repository

import (
	"context"

	"github.com/invorya/almacen-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// GetByID devuelve (nil, nil) cuando la empresa no existe.
type CompanyRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Company, error)
}
