package queries

import (
	"context"

	"hospital-ops/internal/domain/ticket"
	"hospital-ops/internal/infra"
	"hospital-ops/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrTicketNotFound = errs.NotFound("ticket not found")

type TicketFilters struct {
	Status     string
	Department string
}

type TicketReadStore interface {
	// List orders by priority (emergency first) and then by issue time.
	List(ctx context.Context, status, department *string) ([]*TicketView, error)
	ListOpen(ctx context.Context, department *string) ([]*TicketView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*TicketView, error)
}

type TicketQueries interface {
	List(ctx context.Context, filters TicketFilters) ([]*TicketView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*TicketView, error)
}

type ticketQueriesImpl struct {
	readStore TicketReadStore
}

func NewTicketQueries(readStore TicketReadStore) TicketQueries {
	return &ticketQueriesImpl{readStore: readStore}
}

func (q *ticketQueriesImpl) List(ctx context.Context, filters TicketFilters) ([]*TicketView, error) {
	status, err := optionalFilter(filters.Status, func(s string) error {
		_, err := ticket.NewStatus(s)
		return err
	})
	if err != nil {
		return nil, err
	}
	department, _ := optionalFilter(filters.Department, func(string) error { return nil })
	return q.readStore.List(ctx, status, department)
}

func (q *ticketQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*TicketView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return view, nil
}
