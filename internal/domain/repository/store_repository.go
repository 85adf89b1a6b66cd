package repository

import (
	"time"

	"github.com/erp-suite/erp-backend/internal/domain/entity"
)

// StoreRepository define el puerto de persistencia para Store (DIP).
// GetByIDForUpdate solo tiene sentido dentro de una transacción: bloquea la
// fila del almacén para serializar desactivaciones concurrentes.
type StoreRepository interface {
	Create(store *entity.Store) error
	GetByID(id string) (*entity.Store, error)
	GetByIDForUpdate(id string) (*entity.Store, error)
	Update(store *entity.Store) error
	// UpdateStatus persiste la transición de estado condicionada al estado
	// actual (UPDATE ... WHERE status <> nuevo estado).
	UpdateStatus(id, status string, modifiedAt time.Time) error
	List() ([]*entity.Store, error)
	ListByProject(projectCode int) ([]*entity.Store, error)
}
