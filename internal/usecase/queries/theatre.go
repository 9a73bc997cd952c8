package queries

import (
	"context"

	"hospital-ops/internal/infra"
	"hospital-ops/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrTheatreNotFound = errs.NotFound("operation theatre not found")

type TheatreReadStore interface {
	List(ctx context.Context) ([]*TheatreView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*TheatreView, error)
}

type TheatreQueries interface {
	List(ctx context.Context) ([]*TheatreView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*TheatreView, error)
	GetSchedule(ctx context.Context, id uuid.UUID) ([]ScheduleEntryView, error)
}

type theatreQueriesImpl struct {
	readStore TheatreReadStore
}

func NewTheatreQueries(readStore TheatreReadStore) TheatreQueries {
	return &theatreQueriesImpl{readStore: readStore}
}

func (q *theatreQueriesImpl) List(ctx context.Context) ([]*TheatreView, error) {
	return q.readStore.List(ctx)
}

func (q *theatreQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*TheatreView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTheatreNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *theatreQueriesImpl) GetSchedule(ctx context.Context, id uuid.UUID) ([]ScheduleEntryView, error) {
	view, err := q.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return view.Schedule, nil
}
