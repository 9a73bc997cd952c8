package response

import (
	"encoding/json"
	"time"

	"hospital-ops/internal/usecase/queries"

	"github.com/google/uuid"
)

type ContentItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Priority  int             `json:"priority"`
	StartTime *time.Time      `json:"startTime,omitempty"`
	EndTime   *time.Time      `json:"endTime,omitempty"`
	IsActive  bool            `json:"isActive"`
}

type DisplaySettingsResponse struct {
	RefreshInterval int    `json:"refreshInterval"`
	DisplayMode     string `json:"displayMode"`
	Theme           string `json:"theme"`
}

type DisplayResponse struct {
	ID          uuid.UUID               `json:"id"`
	Name        string                  `json:"name"`
	Department  string                  `json:"department"`
	Location    string                  `json:"location"`
	Type        string                  `json:"type"`
	Content     []*ContentItemResponse  `json:"content"`
	Settings    DisplaySettingsResponse `json:"settings"`
	Version     int32                   `json:"version"`
	CreatedAt   time.Time               `json:"createdAt"`
	LastUpdated time.Time               `json:"lastUpdated"`
}

type ClearContentResponse struct {
	Removed int              `json:"removed"`
	Display *DisplayResponse `json:"display"`
}

func FromDisplayView(v *queries.DisplayView) *DisplayResponse {
	resp := mapView[DisplayResponse](v)
	if resp.Content == nil {
		resp.Content = []*ContentItemResponse{}
	}
	return resp
}

func FromDisplayViews(vs []*queries.DisplayView) []*DisplayResponse {
	out := make([]*DisplayResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromDisplayView(v))
	}
	return out
}
