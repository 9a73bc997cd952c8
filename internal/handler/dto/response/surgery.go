package response

import (
	"time"

	"hospital-ops/internal/usecase/queries"

	"github.com/google/uuid"
)

type SurgeryResponse struct {
	ID                uuid.UUID  `json:"id"`
	PatientName       string     `json:"patientName"`
	Procedure         string     `json:"procedure"`
	Surgeon           string     `json:"surgeon"`
	Priority          string     `json:"priority"`
	EstimatedDuration int        `json:"estimatedDuration"`
	Status            string     `json:"status"`
	StartTime         *time.Time `json:"startTime,omitempty"`
	EndTime           *time.Time `json:"endTime,omitempty"`
	Notes             string     `json:"notes,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

func FromSurgeryView(v *queries.SurgeryView) *SurgeryResponse {
	return mapView[SurgeryResponse](v)
}

func FromSurgeryViews(vs []*queries.SurgeryView) []*SurgeryResponse {
	return mapViews[SurgeryResponse](vs)
}
