package queries

import (
	"context"
	"strings"

	"hospital-ops/internal/infra"
	"hospital-ops/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrDisplayNotFound = errs.NotFound("display board not found")

type DisplayReadStore interface {
	List(ctx context.Context, department *string) ([]*DisplayView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*DisplayView, error)
}

type DisplayQueries interface {
	List(ctx context.Context) ([]*DisplayView, error)
	ListByDepartment(ctx context.Context, department string) ([]*DisplayView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*DisplayView, error)
}

type displayQueriesImpl struct {
	readStore DisplayReadStore
}

func NewDisplayQueries(readStore DisplayReadStore) DisplayQueries {
	return &displayQueriesImpl{readStore: readStore}
}

func (q *displayQueriesImpl) List(ctx context.Context) ([]*DisplayView, error) {
	return q.readStore.List(ctx, nil)
}

func (q *displayQueriesImpl) ListByDepartment(ctx context.Context, department string) ([]*DisplayView, error) {
	department = strings.TrimSpace(department)
	return q.readStore.List(ctx, &department)
}

func (q *displayQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*DisplayView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDisplayNotFound
		}
		return nil, err
	}
	return view, nil
}
