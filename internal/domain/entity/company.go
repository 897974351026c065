package entity

import "time"

// Company empresa propietaria de bodegas. El catálogo de productos es global;
// la pertenencia por empresa se expresa únicamente a través de sus bodegas.
type Company struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
