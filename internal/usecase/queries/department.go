package queries

import (
	"context"

	"hospital-ops/internal/infra"
	"hospital-ops/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrDepartmentNotFound = errs.NotFound("department not found")

type DepartmentReadStore interface {
	List(ctx context.Context) ([]*DepartmentView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*DepartmentView, error)
}

type DepartmentQueries interface {
	List(ctx context.Context) ([]*DepartmentView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*DepartmentView, error)
}

type departmentQueriesImpl struct {
	readStore DepartmentReadStore
}

func NewDepartmentQueries(readStore DepartmentReadStore) DepartmentQueries {
	return &departmentQueriesImpl{readStore: readStore}
}

func (q *departmentQueriesImpl) List(ctx context.Context) ([]*DepartmentView, error) {
	return q.readStore.List(ctx)
}

func (q *departmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*DepartmentView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}
	return view, nil
}
