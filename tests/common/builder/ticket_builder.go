//go:build unit || e2e

package builder

import (
	"time"

	reqdto "hospital-ops/internal/handler/dto/request"
	"hospital-ops/internal/usecase/queries"

	"github.com/google/uuid"
)

type TicketBuilder struct {
	ID          uuid.UUID
	Number      string
	PatientName string
	Department  string
	Priority    string
	Status      string
	CreatedAt   time.Time
}

func NewTicketBuilder() *TicketBuilder {
	return &TicketBuilder{
		ID:          uuid.New(),
		Number:      "240320-001",
		PatientName: "Jane Doe",
		Department:  "Cardiology",
		Priority:    "normal",
		Status:      "waiting",
		CreatedAt:   time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC),
	}
}

func (b *TicketBuilder) With(mutate func(*TicketBuilder)) *TicketBuilder {
	mutate(b)
	return b
}

func (b *TicketBuilder) BuildIssueRequestDTO() reqdto.IssueTicketRequest {
	return reqdto.IssueTicketRequest{
		PatientName: b.PatientName,
		Department:  b.Department,
		Priority:    b.Priority,
	}
}

func (b *TicketBuilder) BuildView() *queries.TicketView {
	return &queries.TicketView{
		ID:          b.ID,
		Number:      b.Number,
		PatientName: b.PatientName,
		Department:  b.Department,
		Priority:    b.Priority,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	}
}
