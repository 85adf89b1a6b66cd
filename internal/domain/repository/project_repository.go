package repository

import "github.com/erp-suite/erp-backend/internal/domain/entity"

// ProjectRepository puerto de solo lectura sobre proyectos (colaborador
// externo: el CRUD de proyectos vive en otro módulo del ERP).
type ProjectRepository interface {
	GetByCode(code int) (*entity.Project, error)
}
