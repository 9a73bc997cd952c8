package commands

import (
	"context"
	"time"

	"hospital-ops/internal/domain/surgery"
	"hospital-ops/internal/pkg/clock"
	"hospital-ops/internal/usecase/queries"
	"hospital-ops/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateSurgeryInput struct {
	PatientName       string
	Procedure         string
	Surgeon           string
	Priority          string
	EstimatedDuration int
	StartTime         *time.Time
	EndTime           *time.Time
	Notes             string
}

// UpdateSurgeryInput is a partial update; nil fields are left as they are.
type UpdateSurgeryInput struct {
	PatientName       *string
	Procedure         *string
	Surgeon           *string
	Priority          *string
	EstimatedDuration *int
	Status            *string
	StartTime         *time.Time
	EndTime           *time.Time
	Notes             *string
}

type SurgeryCommands interface {
	Create(ctx context.Context, in CreateSurgeryInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateSurgeryInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type surgeryCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSurgeryCommands(uow shared.UnitOfWork, clk clock.Clock) SurgeryCommands {
	return &surgeryCommandsImpl{uow: uow, clock: clk}
}

func (c *surgeryCommandsImpl) Create(ctx context.Context, in CreateSurgeryInput) (uuid.UUID, error) {
	priority := surgery.PriorityNormal
	if in.Priority != "" {
		p, err := surgery.NewPriority(in.Priority)
		if err != nil {
			return uuid.Nil, err
		}
		priority = p
	}

	s, err := surgery.NewSurgery(surgery.Params{
		PatientName:       in.PatientName,
		Procedure:         in.Procedure,
		Surgeon:           in.Surgeon,
		Priority:          priority,
		EstimatedDuration: in.EstimatedDuration,
		StartTime:         in.StartTime,
		EndTime:           in.EndTime,
		Notes:             in.Notes,
	}, c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Surgeries().Create(ctx, s)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return s.ID(), nil
}

func (c *surgeryCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdateSurgeryInput) error {
	changes := surgery.Changes{
		PatientName:       in.PatientName,
		Procedure:         in.Procedure,
		Surgeon:           in.Surgeon,
		EstimatedDuration: in.EstimatedDuration,
		StartTime:         in.StartTime,
		EndTime:           in.EndTime,
		Notes:             in.Notes,
	}
	if in.Priority != nil {
		p, err := surgery.NewPriority(*in.Priority)
		if err != nil {
			return err
		}
		changes.Priority = &p
	}
	if in.Status != nil {
		s, err := surgery.NewStatus(*in.Status)
		if err != nil {
			return err
		}
		changes.Status = &s
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Surgeries().FindByID(ctx, id)
		if err != nil {
			return translateRepoErr(err, queries.ErrSurgeryNotFound)
		}
		if err := s.Apply(changes, c.clock.Now()); err != nil {
			return err
		}
		return translateRepoErr(tx.Surgeries().Update(ctx, s), queries.ErrSurgeryNotFound)
	})
}

func (c *surgeryCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translateRepoErr(tx.Surgeries().Delete(ctx, id), queries.ErrSurgeryNotFound)
	})
}
