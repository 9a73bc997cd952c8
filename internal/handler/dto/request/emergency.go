package request

import (
	"time"

	"hospital-ops/internal/usecase/commands"

	"github.com/google/uuid"
)

type VitalSignsRequest struct {
	BloodPressure    string   `json:"bloodPressure"`
	HeartRate        *float64 `json:"heartRate"`
	Temperature      *float64 `json:"temperature"`
	OxygenSaturation *float64 `json:"oxygenSaturation"`
	RespiratoryRate  *float64 `json:"respiratoryRate"`
}

func (r VitalSignsRequest) ToInput() commands.VitalSignsInput {
	return commands.VitalSignsInput{
		BloodPressure:    r.BloodPressure,
		HeartRate:        r.HeartRate,
		Temperature:      r.Temperature,
		OxygenSaturation: r.OxygenSaturation,
		RespiratoryRate:  r.RespiratoryRate,
	}
}

type CreateEmergencyRequest struct {
	PatientID      uuid.UUID         `json:"patientId" binding:"required"`
	Type           string            `json:"type" binding:"required,oneof=trauma cardiac respiratory neurological other"`
	Severity       string            `json:"severity" binding:"required,oneof=critical severe moderate mild"`
	Description    string            `json:"description" binding:"required,notblank"`
	AssignedDoctor *uuid.UUID        `json:"assignedDoctor"`
	Location       string            `json:"location" binding:"required,notblank"`
	VitalSigns     VitalSignsRequest `json:"vitalSigns"`
	Notes          string            `json:"notes"`
}

func (r *CreateEmergencyRequest) ToInput() commands.CreateEmergencyInput {
	return commands.CreateEmergencyInput{
		PatientID:        r.PatientID,
		Type:             r.Type,
		Severity:         r.Severity,
		Description:      r.Description,
		AssignedDoctorID: r.AssignedDoctor,
		Location:         r.Location,
		VitalSigns:       r.VitalSigns.ToInput(),
		Notes:            r.Notes,
	}
}

type UpdateEmergencyRequest struct {
	Type           *string    `json:"type"`
	Severity       *string    `json:"severity"`
	Description    *string    `json:"description" binding:"omitempty,notblank"`
	AssignedDoctor *uuid.UUID `json:"assignedDoctor"`
	Status         *string    `json:"status"`
	Location       *string    `json:"location" binding:"omitempty,notblank"`
	Notes          *string    `json:"notes"`
}

func (r *UpdateEmergencyRequest) ToInput() commands.UpdateEmergencyInput {
	return commands.UpdateEmergencyInput{
		Type:             r.Type,
		Severity:         r.Severity,
		Description:      r.Description,
		AssignedDoctorID: r.AssignedDoctor,
		Status:           r.Status,
		Location:         r.Location,
		Notes:            r.Notes,
	}
}

type TreatmentRequest struct {
	Procedure  string     `json:"procedure"`
	Medication string     `json:"medication"`
	Notes      string     `json:"notes"`
	Timestamp  *time.Time `json:"timestamp"`
}

func (r *TreatmentRequest) ToInput() commands.TreatmentInput {
	return commands.TreatmentInput{
		Procedure:  r.Procedure,
		Medication: r.Medication,
		Notes:      r.Notes,
		Timestamp:  r.Timestamp,
	}
}
