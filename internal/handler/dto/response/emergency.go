package response

import (
	"time"

	"hospital-ops/internal/usecase/queries"

	"github.com/google/uuid"
)

type PatientSummaryResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Age     int       `json:"age"`
	Contact string    `json:"contact"`
}

type DoctorSummaryResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type VitalSignsResponse struct {
	BloodPressure    string   `json:"bloodPressure,omitempty"`
	HeartRate        *float64 `json:"heartRate,omitempty"`
	Temperature      *float64 `json:"temperature,omitempty"`
	OxygenSaturation *float64 `json:"oxygenSaturation,omitempty"`
	RespiratoryRate  *float64 `json:"respiratoryRate,omitempty"`
}

type TreatmentResponse struct {
	Procedure  string    `json:"procedure,omitempty"`
	Medication string    `json:"medication,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

type EmergencyResponse struct {
	ID             uuid.UUID              `json:"id"`
	Patient        PatientSummaryResponse `json:"patient"`
	Type           string                 `json:"type"`
	Severity       string                 `json:"severity"`
	Description    string                 `json:"description"`
	AssignedDoctor *DoctorSummaryResponse `json:"assignedDoctor,omitempty"`
	Status         string                 `json:"status"`
	Location       string                 `json:"location"`
	VitalSigns     VitalSignsResponse     `json:"vitalSigns"`
	Treatments     []*TreatmentResponse   `json:"treatments"`
	Notes          string                 `json:"notes,omitempty"`
	Version        int32                  `json:"version"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

func FromEmergencyView(v *queries.EmergencyView) *EmergencyResponse {
	resp := mapView[EmergencyResponse](v)
	if resp.Treatments == nil {
		resp.Treatments = []*TreatmentResponse{}
	}
	return resp
}

func FromEmergencyViews(vs []*queries.EmergencyView) []*EmergencyResponse {
	out := make([]*EmergencyResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromEmergencyView(v))
	}
	return out
}
