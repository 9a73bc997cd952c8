package repository

import (
	"context"

	"hospital-ops/internal/domain/department"
	"hospital-ops/internal/infra"
	"hospital-ops/internal/infra/db"
	"hospital-ops/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertDepartmentSQL = `INSERT INTO departments
  (id, name, description, head, location, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	findDepartmentSQL = `SELECT id, name, description, head, location, is_active, created_at, updated_at
FROM departments
WHERE id = $1`

	updateDepartmentSQL = `UPDATE departments
SET name = $2, description = $3, head = $4, location = $5, is_active = $6, updated_at = $7
WHERE id = $1`

	deleteDepartmentSQL = `DELETE FROM departments WHERE id = $1`
)

type DepartmentRepository struct {
	db db.DBTX
}

func NewDepartmentRepository(db db.DBTX) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) Create(ctx context.Context, d *department.Department) error {
	_, err := r.db.Exec(ctx, insertDepartmentSQL,
		d.ID(), d.Name(), d.Description(), d.Head(), d.Location(), d.IsActive(), d.CreatedAt(), d.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create department", err)
	}
	return nil
}

func (r *DepartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*department.Department, error) {
	var (
		did                               uuid.UUID
		name, description, head, location string
		isActive                          bool
		createdAt, updatedAt              pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findDepartmentSQL, id).Scan(
		&did, &name, &description, &head, &location, &isActive, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find department", err)
	}
	return department.ReconstructDepartment(
		did, name, description, head, location, isActive,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *DepartmentRepository) Update(ctx context.Context, d *department.Department) error {
	tag, err := r.db.Exec(ctx, updateDepartmentSQL,
		d.ID(), d.Name(), d.Description(), d.Head(), d.Location(), d.IsActive(), d.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update department", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("department not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *DepartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteDepartmentSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete department", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("department not found", nil, infra.KindNotFound)
	}
	return nil
}
