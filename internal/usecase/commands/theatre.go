package commands

import (
	"context"
	"time"

	"hospital-ops/internal/domain/surgery"
	"hospital-ops/internal/domain/theatre"
	"hospital-ops/internal/pkg/clock"
	"hospital-ops/internal/pkg/errs"
	"hospital-ops/internal/pkg/metrics"
	"hospital-ops/internal/usecase/queries"
	"hospital-ops/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDuplicateTheatreName = errs.Validation("operation theatre name already exists")

type EquipmentInput struct {
	Name   string
	Status string
}

type CreateTheatreInput struct {
	Name      string
	Equipment []EquipmentInput
}

type ScheduleSurgeryInput struct {
	SurgeryID uuid.UUID
	StartTime time.Time
	EndTime   time.Time
}

type ChangeTheatreStatusInput struct {
	Status         string
	CurrentSurgery *uuid.UUID
}

type DeclareEmergencyInput struct {
	SurgeryID uuid.UUID
	Priority  string
}

type TheatreCommands interface {
	Create(ctx context.Context, in CreateTheatreInput) (uuid.UUID, error)
	Schedule(ctx context.Context, theatreID uuid.UUID, in ScheduleSurgeryInput) (uuid.UUID, error)
	ChangeStatus(ctx context.Context, theatreID uuid.UUID, in ChangeTheatreStatusInput) error
	ChangeEntryStatus(ctx context.Context, theatreID, entryID uuid.UUID, status string) error
	DeclareEmergency(ctx context.Context, theatreID uuid.UUID, in DeclareEmergencyInput) error
}

type theatreCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewTheatreCommands(uow shared.UnitOfWork, clk clock.Clock) TheatreCommands {
	return &theatreCommandsImpl{uow: uow, clock: clk}
}

func (c *theatreCommandsImpl) Create(ctx context.Context, in CreateTheatreInput) (uuid.UUID, error) {
	equipment := make([]theatre.Equipment, 0, len(in.Equipment))
	for _, e := range in.Equipment {
		status := theatre.EquipmentStatus(e.Status)
		if e.Status == "" {
			status = theatre.EquipmentAvailable
		}
		eq, err := theatre.NewEquipment(e.Name, status)
		if err != nil {
			return uuid.Nil, err
		}
		equipment = append(equipment, eq)
	}

	t, err := theatre.NewTheatre(in.Name, equipment, c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translateDuplicate(tx.Theatres().Create(ctx, t), ErrDuplicateTheatreName)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return t.ID(), nil
}

// Schedule books a window for a surgery. A conflicting window leaves the theatre untouched.
func (c *theatreCommandsImpl) Schedule(ctx context.Context, theatreID uuid.UUID, in ScheduleSurgeryInput) (uuid.UUID, error) {
	window, err := theatre.NewTimeWindow(in.StartTime, in.EndTime)
	if err != nil {
		return uuid.Nil, err
	}

	var entryID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Theatres().FindByID(ctx, theatreID)
		if err != nil {
			return translateRepoErr(err, queries.ErrTheatreNotFound)
		}
		if _, err := tx.Reads().SurgeryByID(ctx, in.SurgeryID); err != nil {
			return translateRepoErr(err, queries.ErrSurgeryNotFound)
		}

		entry, err := t.ScheduleSurgery(in.SurgeryID, window, c.clock.Now())
		if err != nil {
			return err
		}
		entryID = entry.ID()

		return translateRepoErr(tx.Theatres().Update(ctx, t), queries.ErrTheatreNotFound)
	})
	if err != nil {
		if errs.Is(err, theatre.ErrTimeSlotConflict) {
			metrics.ScheduleConflicts.Inc()
		}
		return uuid.Nil, err
	}
	return entryID, nil
}

func (c *theatreCommandsImpl) ChangeStatus(ctx context.Context, theatreID uuid.UUID, in ChangeTheatreStatusInput) error {
	status, err := theatre.NewStatus(in.Status)
	if err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Theatres().FindByID(ctx, theatreID)
		if err != nil {
			return translateRepoErr(err, queries.ErrTheatreNotFound)
		}
		if in.CurrentSurgery != nil {
			if _, err := tx.Reads().SurgeryByID(ctx, *in.CurrentSurgery); err != nil {
				return translateRepoErr(err, queries.ErrSurgeryNotFound)
			}
		}

		if err := t.ChangeStatus(status, in.CurrentSurgery, c.clock.Now()); err != nil {
			return err
		}
		return translateRepoErr(tx.Theatres().Update(ctx, t), queries.ErrTheatreNotFound)
	})
}

func (c *theatreCommandsImpl) ChangeEntryStatus(ctx context.Context, theatreID, entryID uuid.UUID, status string) error {
	next, err := theatre.NewEntryStatus(status)
	if err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Theatres().FindByID(ctx, theatreID)
		if err != nil {
			return translateRepoErr(err, queries.ErrTheatreNotFound)
		}
		if _, err := t.ChangeEntryStatus(entryID, next, c.clock.Now()); err != nil {
			return err
		}
		return translateRepoErr(tx.Theatres().Update(ctx, t), queries.ErrTheatreNotFound)
	})
}

// DeclareEmergency preempts the theatre from any status. One discard event is written per
// dropped entry, in the same transaction as the theatre.
func (c *theatreCommandsImpl) DeclareEmergency(ctx context.Context, theatreID uuid.UUID, in DeclareEmergencyInput) error {
	priority := surgery.PriorityEmergency
	if in.Priority != "" {
		p, err := surgery.NewPriority(in.Priority)
		if err != nil {
			return err
		}
		priority = p
	}

	var discarded int
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Theatres().FindByID(ctx, theatreID)
		if err != nil {
			return translateRepoErr(err, queries.ErrTheatreNotFound)
		}
		if _, err := tx.Reads().SurgeryByID(ctx, in.SurgeryID); err != nil {
			return translateRepoErr(err, queries.ErrSurgeryNotFound)
		}

		now := c.clock.Now()
		p := t.DeclareEmergency(in.SurgeryID, now)
		if err := tx.Theatres().Update(ctx, t); err != nil {
			return translateRepoErr(err, queries.ErrTheatreNotFound)
		}

		for _, e := range p.Discarded {
			evt := ScheduleDiscardedEvent{
				TheatreID:  t.ID(),
				EntryID:    e.ID(),
				SurgeryID:  e.SurgeryID(),
				StartTime:  e.StartTime(),
				EndTime:    e.EndTime(),
				Status:     string(e.Status()),
				OccurredAt: now,
			}
			if err := enqueue(ctx, tx, TopicScheduleDiscarded, evt, now); err != nil {
				return err
			}
		}

		discarded = len(p.Discarded)
		return enqueue(ctx, tx, TopicEmergencyDeclared, EmergencyDeclaredEvent{
			TheatreID:      t.ID(),
			SurgeryID:      in.SurgeryID,
			Priority:       string(priority),
			PreviousStatus: string(p.PreviousStatus),
			Discarded:      discarded,
			OccurredAt:     now,
		}, now)
	})
	if err != nil {
		return err
	}

	metrics.EmergencyPreemptions.Inc()
	metrics.DiscardedEntries.Add(float64(discarded))
	return nil
}
