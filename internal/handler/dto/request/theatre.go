package request

import (
	"time"

	"hospital-ops/internal/usecase/commands"

	"github.com/google/uuid"
)

type EquipmentRequest struct {
	Name   string `json:"name" binding:"required,notblank"`
	Status string `json:"status" binding:"omitempty,oneof=available in-use maintenance"`
}

type CreateTheatreRequest struct {
	Name      string             `json:"name" binding:"required,notblank"`
	Equipment []EquipmentRequest `json:"equipment" binding:"omitempty,dive"`
}

func (r *CreateTheatreRequest) ToInput() commands.CreateTheatreInput {
	in := commands.CreateTheatreInput{Name: r.Name}
	for _, e := range r.Equipment {
		in.Equipment = append(in.Equipment, commands.EquipmentInput{Name: e.Name, Status: e.Status})
	}
	return in
}

type ScheduleSurgeryRequest struct {
	SurgeryID uuid.UUID `json:"surgeryId" binding:"required"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
}

func (r *ScheduleSurgeryRequest) ToInput() commands.ScheduleSurgeryInput {
	return commands.ScheduleSurgeryInput{
		SurgeryID: r.SurgeryID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

type ChangeTheatreStatusRequest struct {
	Status         string     `json:"status" binding:"required"`
	CurrentSurgery *uuid.UUID `json:"currentSurgery"`
}

func (r *ChangeTheatreStatusRequest) ToInput() commands.ChangeTheatreStatusInput {
	return commands.ChangeTheatreStatusInput{Status: r.Status, CurrentSurgery: r.CurrentSurgery}
}

type ChangeEntryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type DeclareEmergencyRequest struct {
	SurgeryID uuid.UUID `json:"surgeryId" binding:"required"`
	Priority  string    `json:"priority" binding:"omitempty,oneof=normal urgent emergency"`
}

func (r *DeclareEmergencyRequest) ToInput() commands.DeclareEmergencyInput {
	return commands.DeclareEmergencyInput{SurgeryID: r.SurgeryID, Priority: r.Priority}
}
