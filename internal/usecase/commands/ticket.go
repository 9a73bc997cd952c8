package commands

import (
	"context"
	"time"

	"hospital-ops/internal/domain/ticket"
	"hospital-ops/internal/pkg/clock"
	"hospital-ops/internal/pkg/metrics"
	"hospital-ops/internal/usecase/queries"
	"hospital-ops/internal/usecase/shared"

	"github.com/google/uuid"
)

type IssueTicketInput struct {
	PatientName string
	Department  string
	Priority    string
}

type IssueTicketResult struct {
	ID     uuid.UUID
	Number string
}

type TicketCommands interface {
	Issue(ctx context.Context, in IssueTicketInput) (*IssueTicketResult, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ticketCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	loc   *time.Location
}

// NewTicketCommands takes the hospital's zone; ticket numbers restart at midnight there.
func NewTicketCommands(uow shared.UnitOfWork, clk clock.Clock, loc *time.Location) TicketCommands {
	if loc == nil {
		loc = time.UTC
	}
	return &ticketCommandsImpl{uow: uow, clock: clk, loc: loc}
}

func (c *ticketCommandsImpl) Issue(ctx context.Context, in IssueTicketInput) (*IssueTicketResult, error) {
	draft, err := ticket.NewDraft(in.PatientName, in.Department, ticket.Priority(in.Priority))
	if err != nil {
		return nil, err
	}

	var issued *ticket.Ticket
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()
		day := clock.StartOfDay(now, c.loc)

		seq, err := tx.Tickets().NextSequence(ctx, day)
		if err != nil {
			return err
		}
		number, err := ticket.NewNumber(day, seq)
		if err != nil {
			return err
		}

		t := draft.Issue(number, now)
		if err := tx.Tickets().Create(ctx, t); err != nil {
			return err
		}
		issued = t

		return enqueue(ctx, tx, TopicTicketIssued, TicketIssuedEvent{
			TicketID:   t.ID(),
			Number:     t.Number().String(),
			Department: t.Department(),
			Priority:   string(t.Priority()),
			OccurredAt: now,
		}, now)
	})
	if err != nil {
		return nil, err
	}

	metrics.TicketsIssued.WithLabelValues(issued.Department()).Inc()
	return &IssueTicketResult{ID: issued.ID(), Number: issued.Number().String()}, nil
}

func (c *ticketCommandsImpl) ChangeStatus(ctx context.Context, id uuid.UUID, status string) error {
	next, err := ticket.NewStatus(status)
	if err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Tickets().FindByID(ctx, id)
		if err != nil {
			return translateRepoErr(err, queries.ErrTicketNotFound)
		}
		if err := t.ChangeStatus(next, c.clock.Now()); err != nil {
			return err
		}
		return translateRepoErr(tx.Tickets().UpdateStatus(ctx, t), queries.ErrTicketNotFound)
	})
}

func (c *ticketCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translateRepoErr(tx.Tickets().Delete(ctx, id), queries.ErrTicketNotFound)
	})
}
