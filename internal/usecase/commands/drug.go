package commands

import (
	"context"
	"time"

	"hospital-ops/internal/domain/drug"
	"hospital-ops/internal/pkg/clock"
	"hospital-ops/internal/pkg/errs"
	"hospital-ops/internal/usecase/queries"
	"hospital-ops/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrDuplicateDrugName = errs.Validation("drug name already exists")

type SupplierInput struct {
	Name    string
	Contact string
	Email   string
}

type CreateDrugInput struct {
	Name         string
	Category     string
	Quantity     int
	Unit         string
	ExpiryDate   time.Time
	MinimumStock *int
	Supplier     SupplierInput
	Location     string
	BatchNumber  string
	Price        decimal.Decimal
}

type AdjustQuantityInput struct {
	Quantity  int
	Operation string
}

type DrugCommands interface {
	Create(ctx context.Context, in CreateDrugInput) (uuid.UUID, error)
	AdjustQuantity(ctx context.Context, id uuid.UUID, in AdjustQuantityInput) error
}

type drugCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDrugCommands(uow shared.UnitOfWork, clk clock.Clock) DrugCommands {
	return &drugCommandsImpl{uow: uow, clock: clk}
}

func (c *drugCommandsImpl) Create(ctx context.Context, in CreateDrugInput) (uuid.UUID, error) {
	now := c.clock.Now()
	d, err := drug.NewDrug(drug.Params{
		Name:         in.Name,
		Category:     in.Category,
		Quantity:     in.Quantity,
		Unit:         in.Unit,
		ExpiryDate:   in.ExpiryDate,
		MinimumStock: in.MinimumStock,
		Supplier: drug.Supplier{
			Name:    in.Supplier.Name,
			Contact: in.Supplier.Contact,
			Email:   in.Supplier.Email,
		},
		Location:    in.Location,
		BatchNumber: in.BatchNumber,
		Price:       in.Price,
	}, now)
	if err != nil {
		return uuid.Nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Drugs().Create(ctx, d); err != nil {
			return translateDuplicate(err, ErrDuplicateDrugName)
		}
		if d.Status().NeedsRestock() {
			return enqueue(ctx, tx, TopicDrugStockLow, stockLowEvent(d, now), now)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return d.ID(), nil
}

// AdjustQuantity rejects a subtraction beyond stock without writing anything.
func (c *drugCommandsImpl) AdjustQuantity(ctx context.Context, id uuid.UUID, in AdjustQuantityInput) error {
	op, err := drug.NewOperation(in.Operation)
	if err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := tx.Drugs().FindByID(ctx, id)
		if err != nil {
			return translateRepoErr(err, queries.ErrDrugNotFound)
		}

		now := c.clock.Now()
		before := d.Status()
		if err := d.AdjustQuantity(op, in.Quantity, now); err != nil {
			return err
		}
		if err := tx.Drugs().Update(ctx, d); err != nil {
			return translateRepoErr(err, queries.ErrDrugNotFound)
		}

		if d.Status() != before && d.Status().NeedsRestock() {
			return enqueue(ctx, tx, TopicDrugStockLow, stockLowEvent(d, now), now)
		}
		return nil
	})
}

func stockLowEvent(d *drug.Drug, at time.Time) DrugStockLowEvent {
	return DrugStockLowEvent{
		DrugID:       d.ID(),
		Name:         d.Name(),
		Quantity:     d.Quantity(),
		MinimumStock: d.MinimumStock(),
		Status:       string(d.Status()),
		OccurredAt:   at,
	}
}
