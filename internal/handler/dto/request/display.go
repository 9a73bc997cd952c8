package request

import (
	"encoding/json"
	"time"

	"hospital-ops/internal/usecase/commands"
)

type CreateDisplayRequest struct {
	Name       string `json:"name" binding:"required,notblank"`
	Department string `json:"department" binding:"required,notblank"`
	Location   string `json:"location" binding:"required,notblank"`
	Type       string `json:"type" binding:"required,oneof=token ot emergency general"`
}

func (r *CreateDisplayRequest) ToInput() commands.CreateDisplayInput {
	return commands.CreateDisplayInput{
		Name:       r.Name,
		Department: r.Department,
		Location:   r.Location,
		Type:       r.Type,
	}
}

type AddContentRequest struct {
	Type      string          `json:"type" binding:"required,oneof=token message alert status"`
	Data      json.RawMessage `json:"data"`
	Priority  int             `json:"priority"`
	StartTime *time.Time      `json:"startTime"`
	EndTime   *time.Time      `json:"endTime"`
}

func (r *AddContentRequest) ToInput() commands.ContentInput {
	return commands.ContentInput{
		Type:      r.Type,
		Data:      r.Data,
		Priority:  r.Priority,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

type UpdateSettingsRequest struct {
	RefreshInterval *int    `json:"refreshInterval" binding:"omitempty,gt=0"`
	DisplayMode     *string `json:"displayMode" binding:"omitempty,oneof=normal emergency"`
	Theme           *string `json:"theme" binding:"omitempty,notblank"`
}

func (r *UpdateSettingsRequest) ToInput() commands.DisplaySettingsInput {
	return commands.DisplaySettingsInput{
		RefreshInterval: r.RefreshInterval,
		DisplayMode:     r.DisplayMode,
		Theme:           r.Theme,
	}
}
