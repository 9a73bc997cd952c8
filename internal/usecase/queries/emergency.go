package queries

import (
	"context"

	"hospital-ops/internal/domain/emergency"
	"hospital-ops/internal/infra"
	"hospital-ops/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEmergencyNotFound = errs.NotFound("emergency case not found")

type EmergencyReadStore interface {
	List(ctx context.Context, status *string) ([]*EmergencyView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*EmergencyView, error)
}

type EmergencyQueries interface {
	List(ctx context.Context, status string) ([]*EmergencyView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*EmergencyView, error)
}

type emergencyQueriesImpl struct {
	readStore EmergencyReadStore
}

func NewEmergencyQueries(readStore EmergencyReadStore) EmergencyQueries {
	return &emergencyQueriesImpl{readStore: readStore}
}

func (q *emergencyQueriesImpl) List(ctx context.Context, status string) ([]*EmergencyView, error) {
	filter, err := optionalFilter(status, func(s string) error {
		if !emergency.Status(s).IsValid() {
			return emergency.ErrInvalidStatus
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return q.readStore.List(ctx, filter)
}

func (q *emergencyQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EmergencyView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEmergencyNotFound
		}
		return nil, err
	}
	return view, nil
}
