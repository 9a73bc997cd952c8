package request

import (
	"hospital-ops/internal/usecase/commands"
)

type CreateDepartmentRequest struct {
	Name        string `json:"name" binding:"required,notblank"`
	Description string `json:"description" binding:"required,notblank"`
	Head        string `json:"head" binding:"required,notblank"`
	Location    string `json:"location" binding:"required,notblank"`
}

func (r *CreateDepartmentRequest) ToInput() commands.CreateDepartmentInput {
	return commands.CreateDepartmentInput{
		Name:        r.Name,
		Description: r.Description,
		Head:        r.Head,
		Location:    r.Location,
	}
}

type UpdateDepartmentRequest struct {
	Name        *string `json:"name" binding:"omitempty,notblank"`
	Description *string `json:"description" binding:"omitempty,notblank"`
	Head        *string `json:"head" binding:"omitempty,notblank"`
	Location    *string `json:"location" binding:"omitempty,notblank"`
	IsActive    *bool   `json:"isActive"`
}

func (r *UpdateDepartmentRequest) ToInput() commands.UpdateDepartmentInput {
	return commands.UpdateDepartmentInput{
		Name:        r.Name,
		Description: r.Description,
		Head:        r.Head,
		Location:    r.Location,
		IsActive:    r.IsActive,
	}
}
