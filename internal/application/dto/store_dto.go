package dto

import "time"

// StoreRequest entrada para crear o actualizar un almacén. En actualización,
// ProjectCode debe coincidir con el proyecto actual: la propiedad es inmutable.
type StoreRequest struct {
	StoreName   string `json:"storeName" validate:"required,min=1,max=200"`
	ProjectCode int    `json:"projectCode" validate:"required"`
	Address     string `json:"address"`
}

// StoreResponse salida detallada de un almacén.
type StoreResponse struct {
	ID          string    `json:"id"`
	StoreName   string    `json:"storeName"`
	ProjectCode int       `json:"projectCode"`
	Address     string    `json:"address"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	ModifiedAt  time.Time `json:"modifiedAt"`
}

// StoreSummary proyección ligera para listados (omite detalle anidado).
type StoreSummary struct {
	ID          string `json:"id"`
	StoreName   string `json:"storeName"`
	ProjectCode int    `json:"projectCode"`
	Status      string `json:"status"`
}
