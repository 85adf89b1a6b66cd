package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/erp-suite/erp-backend/internal/domain/entity"
	"github.com/erp-suite/erp-backend/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo lectura de proyectos sobre PostgreSQL. El CRUD de proyectos
// pertenece a otro módulo del ERP; aquí solo se resuelve la existencia.
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

// GetByCode obtiene un proyecto por código.
func (r *ProjectRepo) GetByCode(code int) (*entity.Project, error) {
	query := `SELECT code, name, active FROM projects WHERE code = $1`
	var p entity.Project
	err := r.q.QueryRow(context.Background(), query, code).Scan(&p.Code, &p.Name, &p.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}
