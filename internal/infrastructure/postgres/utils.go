package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/invorya/almacen-api/internal/domain"
)

// isUniqueViolation detecta violaciones de restricción UNIQUE (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "23505") ||
		strings.Contains(err.Error(), "duplicate key")
}

// isIntegrityViolation detecta el resto de la clase 23 (FK, CHECK, NOT NULL).
func isIntegrityViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, "23")
	}
	return strings.Contains(err.Error(), "violates foreign key") ||
		strings.Contains(err.Error(), "violates check constraint")
}

// translateError envuelve errores de PostgreSQL con los centinelas de dominio
// para que la capa de aplicación pueda usar errors.Is sin conocer SQLSTATE.
func translateError(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %s: %v", domain.ErrDuplicate, op, err)
	case isIntegrityViolation(err):
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidReference, op, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
