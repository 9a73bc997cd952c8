package commands

import (
	"context"
	"encoding/json"
	"time"

	"hospital-ops/internal/pkg/errs"
	"hospital-ops/internal/usecase/shared"

	"github.com/google/uuid"
)

// Routing keys on the hospital events exchange.
const (
	TopicScheduleDiscarded = "theatre.schedule.discarded"
	TopicEmergencyDeclared = "theatre.emergency.declared"
	TopicTicketIssued      = "ticket.issued"
	TopicDrugStockLow      = "drug.stock.low"
)

type ScheduleDiscardedEvent struct {
	TheatreID  uuid.UUID  `json:"theatreId"`
	EntryID    uuid.UUID  `json:"entryId"`
	SurgeryID  uuid.UUID  `json:"surgeryId"`
	StartTime  time.Time  `json:"startTime"`
	EndTime    *time.Time `json:"endTime,omitempty"`
	Status     string     `json:"status"`
	OccurredAt time.Time  `json:"occurredAt"`
}

type EmergencyDeclaredEvent struct {
	TheatreID      uuid.UUID `json:"theatreId"`
	SurgeryID      uuid.UUID `json:"surgeryId"`
	Priority       string    `json:"priority"`
	PreviousStatus string    `json:"previousStatus"`
	Discarded      int       `json:"discarded"`
	OccurredAt     time.Time `json:"occurredAt"`
}

type TicketIssuedEvent struct {
	TicketID   uuid.UUID `json:"ticketId"`
	Number     string    `json:"tokenNumber"`
	Department string    `json:"department"`
	Priority   string    `json:"priority"`
	OccurredAt time.Time `json:"occurredAt"`
}

type DrugStockLowEvent struct {
	DrugID       uuid.UUID `json:"drugId"`
	Name         string    `json:"name"`
	Quantity     int       `json:"quantity"`
	MinimumStock int       `json:"minimumStock"`
	Status       string    `json:"status"`
	OccurredAt   time.Time `json:"occurredAt"`
}

func enqueue(ctx context.Context, tx shared.Tx, topic string, payload any, at time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Mark(err, ErrEventEncoding)
	}
	return tx.Outbox().Enqueue(ctx, shared.OutboxMessage{
		ID:      uuid.New(),
		Kind:    topic,
		Topic:   topic,
		Payload: body,
		RunAt:   at,
	})
}
