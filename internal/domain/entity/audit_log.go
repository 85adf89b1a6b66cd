package entity

import "time"

// AuditLog registra una acción administrativa sobre una entidad del sistema.
// Solo lectura para la API; la escritura la hacen los casos de uso.
type AuditLog struct {
	ID        string
	ActorID   string
	Action    string // STORE_CREATED, STORE_UPDATED, STORE_DEACTIVATED, ...
	Entity    string
	EntityID  string
	Detail    string
	CreatedAt time.Time
}
