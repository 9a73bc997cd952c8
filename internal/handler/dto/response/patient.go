package response

import (
	"time"

	"hospital-ops/internal/usecase/queries"

	"github.com/google/uuid"
)

type MedicalRecordResponse struct {
	Condition string    `json:"condition"`
	Diagnosis string    `json:"diagnosis,omitempty"`
	Treatment string    `json:"treatment,omitempty"`
	Date      time.Time `json:"date"`
}

type PatientResponse struct {
	ID             uuid.UUID                `json:"id"`
	Name           string                   `json:"name"`
	Age            int                      `json:"age"`
	Gender         string                   `json:"gender"`
	Contact        string                   `json:"contact"`
	Address        string                   `json:"address"`
	BloodGroup     string                   `json:"bloodGroup"`
	MedicalHistory []*MedicalRecordResponse `json:"medicalHistory"`
	Version        int32                    `json:"version"`
	CreatedAt      time.Time                `json:"createdAt"`
	UpdatedAt      time.Time                `json:"updatedAt"`
}

type PatientListResponse struct {
	Items      []*PatientResponse `json:"items"`
	NextCursor string             `json:"nextCursor,omitempty"`
}

func FromPatientView(v *queries.PatientView) *PatientResponse {
	resp := mapView[PatientResponse](v)
	if resp.MedicalHistory == nil {
		resp.MedicalHistory = []*MedicalRecordResponse{}
	}
	return resp
}

func FromPatientPage(vs []*queries.PatientView, next *queries.Cursor) *PatientListResponse {
	resp := &PatientListResponse{Items: make([]*PatientResponse, 0, len(vs))}
	for _, v := range vs {
		resp.Items = append(resp.Items, FromPatientView(v))
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}
