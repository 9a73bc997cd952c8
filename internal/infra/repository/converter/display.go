package converter

import (
	"encoding/json"
	"time"

	"hospital-ops/internal/domain/display"

	"github.com/google/uuid"
)

type ContentItemDoc struct {
	ID        uuid.UUID       `json:"id"`
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Priority  int             `json:"priority"`
	StartTime *time.Time      `json:"startTime,omitempty"`
	EndTime   *time.Time      `json:"endTime,omitempty"`
	IsActive  bool            `json:"isActive"`
}

type SettingsDoc struct {
	RefreshInterval int    `json:"refreshInterval"`
	DisplayMode     string `json:"displayMode"`
	Theme           string `json:"theme"`
}

func ContentToJSON(items []display.ContentItem) ([]byte, error) {
	docs := make([]ContentItemDoc, 0, len(items))
	for _, c := range items {
		docs = append(docs, ContentItemDoc{
			ID:        c.ID,
			Type:      string(c.Type),
			Data:      c.Data,
			Priority:  c.Priority,
			StartTime: c.StartTime,
			EndTime:   c.EndTime,
			IsActive:  c.IsActive,
		})
	}
	return json.Marshal(docs)
}

func ContentFromJSON(raw []byte) ([]display.ContentItem, error) {
	var docs []ContentItemDoc
	if err := unmarshalList(raw, &docs); err != nil {
		return nil, err
	}
	items := make([]display.ContentItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, display.ContentItem{
			ID:        d.ID,
			Type:      display.ContentType(d.Type),
			Data:      d.Data,
			Priority:  d.Priority,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
			IsActive:  d.IsActive,
		})
	}
	return items, nil
}

func SettingsToJSON(s display.Settings) ([]byte, error) {
	return json.Marshal(SettingsDoc{
		RefreshInterval: s.RefreshInterval,
		DisplayMode:     string(s.DisplayMode),
		Theme:           s.Theme,
	})
}

// SettingsFromJSON fills missing keys with the board defaults.
func SettingsFromJSON(raw []byte) (display.Settings, error) {
	s := display.DefaultSettings()
	doc := SettingsDoc{RefreshInterval: s.RefreshInterval, DisplayMode: string(s.DisplayMode), Theme: s.Theme}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &doc); err != nil {
			return display.Settings{}, err
		}
	}
	return display.Settings{
		RefreshInterval: doc.RefreshInterval,
		DisplayMode:     display.Mode(doc.DisplayMode),
		Theme:           doc.Theme,
	}, nil
}
