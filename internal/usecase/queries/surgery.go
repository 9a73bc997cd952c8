package queries

import (
	"context"

	"hospital-ops/internal/domain/surgery"
	"hospital-ops/internal/infra"
	"hospital-ops/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrSurgeryNotFound = errs.NotFound("surgery not found")

type SurgeryReadStore interface {
	List(ctx context.Context, status *string) ([]*SurgeryView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*SurgeryView, error)
}

type SurgeryQueries interface {
	List(ctx context.Context, status string) ([]*SurgeryView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*SurgeryView, error)
}

type surgeryQueriesImpl struct {
	readStore SurgeryReadStore
}

func NewSurgeryQueries(readStore SurgeryReadStore) SurgeryQueries {
	return &surgeryQueriesImpl{readStore: readStore}
}

func (q *surgeryQueriesImpl) List(ctx context.Context, status string) ([]*SurgeryView, error) {
	filter, err := optionalFilter(status, func(s string) error {
		_, err := surgery.NewStatus(s)
		return err
	})
	if err != nil {
		return nil, err
	}
	return q.readStore.List(ctx, filter)
}

func (q *surgeryQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SurgeryView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSurgeryNotFound
		}
		return nil, err
	}
	return view, nil
}
