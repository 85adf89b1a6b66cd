package entity

import "time"

// Estados del ciclo de vida de un Store.
// ACTIVE -> INACTIVE es la única transición permitida y es terminal:
// no existe operación de reactivación en este subsistema.
const (
	StoreStatusActive   = "ACTIVE"
	StoreStatusInactive = "INACTIVE"
)

// Store representa un almacén de proyecto (bodega de obra). Pertenece a
// exactamente un proyecto durante toda su vida; ProjectCode es inmutable
// después de la creación. Un Store inactivo se conserva (no se borra
// físicamente) para auditoría y reportes históricos.
type Store struct {
	ID          string
	Name        string
	ProjectCode int
	Address     string
	Status      string // ACTIVE | INACTIVE
	CreatedAt   time.Time
	ModifiedAt  time.Time
}

// IsActive indica si el almacén admite operaciones de inventario.
func (s *Store) IsActive() bool {
	return s.Status == StoreStatusActive
}
