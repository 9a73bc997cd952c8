package request

import (
	"hospital-ops/internal/usecase/commands"
)

type IssueTicketRequest struct {
	PatientName string `json:"patientName" binding:"required,notblank"`
	Department  string `json:"department" binding:"required,notblank"`
	Priority    string `json:"priority" binding:"omitempty,oneof=normal urgent emergency"`
}

func (r *IssueTicketRequest) ToInput() commands.IssueTicketInput {
	return commands.IssueTicketInput{
		PatientName: r.PatientName,
		Department:  r.Department,
		Priority:    r.Priority,
	}
}

type ChangeTicketStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
