package response

import (
	"time"

	"hospital-ops/internal/usecase/queries"

	"github.com/google/uuid"
)

type TicketResponse struct {
	ID          uuid.UUID `json:"id"`
	TokenNumber string    `json:"tokenNumber" copier:"Number"`
	PatientName string    `json:"patientName"`
	Department  string    `json:"department"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type QueueFeedResponse struct {
	Department  string            `json:"department,omitempty"`
	GeneratedAt time.Time         `json:"generatedAt"`
	Tickets     []*TicketResponse `json:"tickets"`
}

func FromTicketView(v *queries.TicketView) *TicketResponse {
	return mapView[TicketResponse](v)
}

func FromTicketViews(vs []*queries.TicketView) []*TicketResponse {
	return mapViews[TicketResponse](vs)
}

func FromQueueFeedView(v *queries.QueueFeedView) *QueueFeedResponse {
	resp := &QueueFeedResponse{
		Department:  v.Department,
		GeneratedAt: v.GeneratedAt,
		Tickets:     make([]*TicketResponse, 0, len(v.Tickets)),
	}
	for i := range v.Tickets {
		resp.Tickets = append(resp.Tickets, FromTicketView(&v.Tickets[i]))
	}
	return resp
}
