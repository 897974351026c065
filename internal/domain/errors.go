package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los adaptadores de
// persistencia los envuelven con fmt.Errorf("%w: ...") para conservar el
// detalle; las capas externas los clasifican con errors.Is.
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrInvalidReference    = errors.New("referencia inválida")
	ErrInconsistentCatalog = errors.New("catálogo inconsistente")
)
