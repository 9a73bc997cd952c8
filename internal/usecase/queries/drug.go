package queries

import (
	"context"
	"time"

	"hospital-ops/internal/infra"
	"hospital-ops/internal/pkg/clock"
	"hospital-ops/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrDrugNotFound = errs.NotFound("drug not found")

type DrugReadStore interface {
	List(ctx context.Context) ([]*DrugView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*DrugView, error)
	ListLowStock(ctx context.Context) ([]*DrugView, error)
	// ListExpiring returns drugs whose expiry date lies in [from, to].
	ListExpiring(ctx context.Context, from, to time.Time) ([]*DrugView, error)
	Valuation(ctx context.Context) (*DrugValuationView, error)
}

type DrugQueries interface {
	List(ctx context.Context) ([]*DrugView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*DrugView, error)
	LowStock(ctx context.Context) ([]*DrugView, error)
	Expiring(ctx context.Context) ([]*DrugView, error)
	Valuation(ctx context.Context) (*DrugValuationView, error)
}

type drugQueriesImpl struct {
	readStore    DrugReadStore
	clock        clock.Clock
	expiryWindow time.Duration
	location     *time.Location
}

func NewDrugQueries(readStore DrugReadStore, clk clock.Clock, expiryWindow time.Duration, loc *time.Location) DrugQueries {
	return &drugQueriesImpl{
		readStore:    readStore,
		clock:        clk,
		expiryWindow: expiryWindow,
		location:     loc,
	}
}

func (q *drugQueriesImpl) List(ctx context.Context) ([]*DrugView, error) {
	return q.readStore.List(ctx)
}

func (q *drugQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*DrugView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDrugNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *drugQueriesImpl) LowStock(ctx context.Context) ([]*DrugView, error) {
	return q.readStore.ListLowStock(ctx)
}

func (q *drugQueriesImpl) Expiring(ctx context.Context) ([]*DrugView, error) {
	today := clock.StartOfDay(q.clock.Now(), q.location)
	return q.readStore.ListExpiring(ctx, today, today.Add(q.expiryWindow))
}

func (q *drugQueriesImpl) Valuation(ctx context.Context) (*DrugValuationView, error) {
	return q.readStore.Valuation(ctx)
}
