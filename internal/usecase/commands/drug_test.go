//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"hospital-ops/internal/domain/drug"
	"hospital-ops/internal/pkg/clock"
	"hospital-ops/internal/pkg/errs"
	"hospital-ops/internal/usecase/commands"
	"hospital-ops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDrug(t *testing.T, quantity, minimum int) (*fakeUoW, commands.DrugCommands, uuid.UUID) {
	t.Helper()
	uow := newFakeUoW()
	d, err := drug.NewDrug(drug.Params{
		Name:         "Amoxicillin",
		Category:     "Antibiotic",
		Quantity:     quantity,
		Unit:         "capsule",
		ExpiryDate:   morning.AddDate(1, 0, 0),
		MinimumStock: &minimum,
		Location:     "Shelf A1",
		BatchNumber:  "B-001",
		Price:        decimal.RequireFromString("2.50"),
	}, morning)
	require.NoError(t, err)
	uow.addDrug(d)
	return uow, commands.NewDrugCommands(uow, clock.NewMockClock(morning.Add(time.Hour))), d.ID()
}

func TestDrugCommands_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		quantity  int
		wantEvent bool
	}{
		{name: "well stocked drug raises no alert", quantity: 100},
		{name: "drug created at minimum raises an alert", quantity: 10, wantEvent: true},
		{name: "drug created empty raises an alert", quantity: 0, wantEvent: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uow := newFakeUoW()
			cmds := commands.NewDrugCommands(uow, clock.NewMockClock(morning))
			minimum := 10

			id, err := cmds.Create(ctx, commands.CreateDrugInput{
				Name:         "Paracetamol",
				Category:     "Analgesic",
				Quantity:     tt.quantity,
				Unit:         "tablet",
				ExpiryDate:   morning.AddDate(2, 0, 0),
				MinimumStock: &minimum,
				Location:     "Shelf B2",
				BatchNumber:  "P-100",
				Price:        decimal.NewFromInt(1),
			})
			require.NoError(t, err)
			assert.Contains(t, uow.drugs, id)
			assert.Equal(t, tt.wantEvent, len(uow.messages(commands.TopicDrugStockLow)) == 1)
		})
	}

	t.Run("duplicate name", func(t *testing.T) {
		uow, _, _ := setupDrug(t, 50, 10)
		cmds := commands.NewDrugCommands(uow, clock.NewMockClock(morning))

		_, err := cmds.Create(ctx, commands.CreateDrugInput{
			Name:        "Amoxicillin",
			Category:    "Antibiotic",
			Unit:        "capsule",
			ExpiryDate:  morning.AddDate(1, 0, 0),
			Location:    "Shelf A2",
			BatchNumber: "B-002",
		})
		require.ErrorIs(t, err, commands.ErrDuplicateDrugName)
		assert.Len(t, uow.drugs, 1)
	})
}

func TestDrugCommands_AdjustQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("stock low event only on entering a restock status", func(t *testing.T) {
		tests := []struct {
			name       string
			quantity   int
			operation  string
			amount     int
			wantStatus drug.Status
			wantEvent  bool
		}{
			{name: "available stays available", quantity: 50, operation: "subtract", amount: 5, wantStatus: drug.StatusAvailable},
			{name: "available drops to low", quantity: 50, operation: "subtract", amount: 40, wantStatus: drug.StatusLowStock, wantEvent: true},
			{name: "available drops to out of stock", quantity: 50, operation: "subtract", amount: 50, wantStatus: drug.StatusOutOfStock, wantEvent: true},
			{name: "low stays low", quantity: 8, operation: "subtract", amount: 2, wantStatus: drug.StatusLowStock},
			{name: "low drops to out of stock", quantity: 8, operation: "subtract", amount: 8, wantStatus: drug.StatusOutOfStock, wantEvent: true},
			{name: "restock from empty to low", quantity: 0, operation: "add", amount: 5, wantStatus: drug.StatusLowStock, wantEvent: true},
			{name: "restock back to available", quantity: 5, operation: "add", amount: 20, wantStatus: drug.StatusAvailable},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uow, cmds, id := setupDrug(t, tt.quantity, 10)

				err := cmds.AdjustQuantity(ctx, id, commands.AdjustQuantityInput{Quantity: tt.amount, Operation: tt.operation})
				require.NoError(t, err)
				assert.Equal(t, tt.wantStatus, uow.drugs[id].Status())

				events := uow.messages(commands.TopicDrugStockLow)
				if !tt.wantEvent {
					assert.Empty(t, events)
					return
				}
				require.Len(t, events, 1)
				var evt commands.DrugStockLowEvent
				require.NoError(t, json.Unmarshal(events[0].Payload, &evt))
				assert.Equal(t, id, evt.DrugID)
				assert.Equal(t, string(tt.wantStatus), evt.Status)
				assert.Equal(t, uow.drugs[id].Quantity(), evt.Quantity)
			})
		}
	})

	t.Run("subtract beyond stock writes nothing", func(t *testing.T) {
		uow, cmds, id := setupDrug(t, 5, 10)

		err := cmds.AdjustQuantity(ctx, id, commands.AdjustQuantityInput{Quantity: 6, Operation: "subtract"})
		require.ErrorIs(t, err, drug.ErrInsufficientQuantity)
		assert.Equal(t, 5, uow.drugs[id].Quantity())
		assert.Equal(t, int32(1), uow.drugs[id].Version())
		assert.Empty(t, uow.outbox)
	})

	t.Run("add past the stock ceiling writes nothing", func(t *testing.T) {
		uow, cmds, id := setupDrug(t, 5, 10)

		err := cmds.AdjustQuantity(ctx, id, commands.AdjustQuantityInput{Quantity: drug.MaxQuantity, Operation: "add"})
		require.ErrorIs(t, err, drug.ErrQuantityTooLarge)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.Equal(t, 5, uow.drugs[id].Quantity())
	})

	t.Run("unknown operation", func(t *testing.T) {
		_, cmds, id := setupDrug(t, 5, 10)
		err := cmds.AdjustQuantity(ctx, id, commands.AdjustQuantityInput{Quantity: 1, Operation: "multiply"})
		require.ErrorIs(t, err, drug.ErrInvalidOperation)
	})

	t.Run("unknown drug", func(t *testing.T) {
		_, cmds, _ := setupDrug(t, 5, 10)
		err := cmds.AdjustQuantity(ctx, uuid.New(), commands.AdjustQuantityInput{Quantity: 1, Operation: "add"})
		require.ErrorIs(t, err, queries.ErrDrugNotFound)
	})

	t.Run("lost version race writes no events", func(t *testing.T) {
		uow, cmds, id := setupDrug(t, 50, 10)
		uow.staleWrites = true

		err := cmds.AdjustQuantity(ctx, id, commands.AdjustQuantityInput{Quantity: 45, Operation: "subtract"})
		require.ErrorIs(t, err, commands.ErrConcurrentModification)
		assert.True(t, errs.Is(err, errs.ErrConcurrentModification))
		assert.Equal(t, 50, uow.drugs[id].Quantity())
		assert.Empty(t, uow.outbox)
	})
}
