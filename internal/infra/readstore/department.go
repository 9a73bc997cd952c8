package readstore

import (
	"context"

	"hospital-ops/internal/infra"
	"hospital-ops/internal/infra/db"
	"hospital-ops/internal/pkg/pgconv"
	"hospital-ops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	departmentColumns = `id, name, description, head, location, is_active, created_at, updated_at`

	listDepartmentsSQL = `SELECT ` + departmentColumns + ` FROM departments ORDER BY name`

	findDepartmentByIDSQL = `SELECT ` + departmentColumns + ` FROM departments WHERE id = $1`
)

type DepartmentReadStore struct {
	db db.DBTX
}

func NewDepartmentReadStore(db db.DBTX) *DepartmentReadStore {
	return &DepartmentReadStore{db: db}
}

func (r *DepartmentReadStore) List(ctx context.Context) ([]*queries.DepartmentView, error) {
	rows, err := r.db.Query(ctx, listDepartmentsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list departments", err)
	}
	return collectViews(rows, scanDepartmentView, "failed to list departments")
}

func (r *DepartmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.DepartmentView, error) {
	v, err := scanDepartmentView(r.db.QueryRow(ctx, findDepartmentByIDSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find department", err)
	}
	return v, nil
}

func scanDepartmentView(row pgx.Row) (*queries.DepartmentView, error) {
	var (
		v                    queries.DepartmentView
		createdAt, updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&v.ID, &v.Name, &v.Description, &v.Head, &v.Location, &v.IsActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}
