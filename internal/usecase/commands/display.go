package commands

import (
	"context"
	"encoding/json"
	"time"

	"hospital-ops/internal/domain/display"
	"hospital-ops/internal/pkg/clock"
	"hospital-ops/internal/pkg/ptr"
	"hospital-ops/internal/usecase/queries"
	"hospital-ops/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateDisplayInput struct {
	Name       string
	Department string
	Location   string
	Type       string
}

type ContentInput struct {
	Type      string
	Data      json.RawMessage
	Priority  int
	StartTime *time.Time
	EndTime   *time.Time
}

type DisplaySettingsInput struct {
	RefreshInterval *int
	DisplayMode     *string
	Theme           *string
}

type DisplayCommands interface {
	Create(ctx context.Context, in CreateDisplayInput) (uuid.UUID, error)
	AddContent(ctx context.Context, id uuid.UUID, in ContentInput) (uuid.UUID, error)
	UpdateSettings(ctx context.Context, id uuid.UUID, in DisplaySettingsInput) error
	// ClearContent removes every item, or only the given type, and reports how many went.
	ClearContent(ctx context.Context, id uuid.UUID, contentType *string) (int, error)
}

type displayCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDisplayCommands(uow shared.UnitOfWork, clk clock.Clock) DisplayCommands {
	return &displayCommandsImpl{uow: uow, clock: clk}
}

func (c *displayCommandsImpl) Create(ctx context.Context, in CreateDisplayInput) (uuid.UUID, error) {
	b, err := display.NewBoard(in.Name, in.Department, in.Location, display.BoardType(in.Type), c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Displays().Create(ctx, b)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return b.ID(), nil
}

func (c *displayCommandsImpl) AddContent(ctx context.Context, id uuid.UUID, in ContentInput) (uuid.UUID, error) {
	item, err := display.NewContentItem(display.ContentType(in.Type), in.Data, in.Priority, in.StartTime, in.EndTime)
	if err != nil {
		return uuid.Nil, err
	}

	err = c.modify(ctx, id, func(b *display.Board, now time.Time) error {
		b.AddContent(item, now)
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return item.ID, nil
}

func (c *displayCommandsImpl) UpdateSettings(ctx context.Context, id uuid.UUID, in DisplaySettingsInput) error {
	settings := display.SettingsPatch{
		RefreshInterval: in.RefreshInterval,
		Theme:           in.Theme,
	}
	if in.DisplayMode != nil {
		settings.DisplayMode = ptr.Of(display.Mode(*in.DisplayMode))
	}

	return c.modify(ctx, id, func(b *display.Board, now time.Time) error {
		return b.UpdateSettings(settings, now)
	})
}

func (c *displayCommandsImpl) ClearContent(ctx context.Context, id uuid.UUID, contentType *string) (int, error) {
	var only *display.ContentType
	if contentType != nil {
		only = ptr.Of(display.ContentType(*contentType))
	}

	var removed int
	err := c.modify(ctx, id, func(b *display.Board, now time.Time) error {
		n, err := b.ClearContent(only, now)
		removed = n
		return err
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

func (c *displayCommandsImpl) modify(ctx context.Context, id uuid.UUID, fn func(b *display.Board, now time.Time) error) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Displays().FindByID(ctx, id)
		if err != nil {
			return translateRepoErr(err, queries.ErrDisplayNotFound)
		}
		if err := fn(b, c.clock.Now()); err != nil {
			return err
		}
		return translateRepoErr(tx.Displays().Update(ctx, b), queries.ErrDisplayNotFound)
	})
}
