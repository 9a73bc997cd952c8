package request

import (
	"time"

	"hospital-ops/internal/usecase/commands"
)

type CreateSurgeryRequest struct {
	PatientName       string     `json:"patientName" binding:"required,notblank"`
	Procedure         string     `json:"procedure" binding:"required,notblank"`
	Surgeon           string     `json:"surgeon" binding:"required,notblank"`
	Priority          string     `json:"priority" binding:"omitempty,oneof=normal urgent emergency"`
	EstimatedDuration int        `json:"estimatedDuration" binding:"required,gt=0"`
	StartTime         *time.Time `json:"startTime"`
	EndTime           *time.Time `json:"endTime"`
	Notes             string     `json:"notes"`
}

func (r *CreateSurgeryRequest) ToInput() commands.CreateSurgeryInput {
	return commands.CreateSurgeryInput{
		PatientName:       r.PatientName,
		Procedure:         r.Procedure,
		Surgeon:           r.Surgeon,
		Priority:          r.Priority,
		EstimatedDuration: r.EstimatedDuration,
		StartTime:         r.StartTime,
		EndTime:           r.EndTime,
		Notes:             r.Notes,
	}
}

type UpdateSurgeryRequest struct {
	PatientName       *string    `json:"patientName" binding:"omitempty,notblank"`
	Procedure         *string    `json:"procedure" binding:"omitempty,notblank"`
	Surgeon           *string    `json:"surgeon" binding:"omitempty,notblank"`
	Priority          *string    `json:"priority"`
	EstimatedDuration *int       `json:"estimatedDuration" binding:"omitempty,gt=0"`
	Status            *string    `json:"status"`
	StartTime         *time.Time `json:"startTime"`
	EndTime           *time.Time `json:"endTime"`
	Notes             *string    `json:"notes"`
}

func (r *UpdateSurgeryRequest) ToInput() commands.UpdateSurgeryInput {
	return commands.UpdateSurgeryInput{
		PatientName:       r.PatientName,
		Procedure:         r.Procedure,
		Surgeon:           r.Surgeon,
		Priority:          r.Priority,
		EstimatedDuration: r.EstimatedDuration,
		Status:            r.Status,
		StartTime:         r.StartTime,
		EndTime:           r.EndTime,
		Notes:             r.Notes,
	}
}
