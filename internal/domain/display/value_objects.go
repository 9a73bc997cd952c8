package display

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultRefreshInterval = 30
	DefaultTheme           = "default"
)

// ContentItem is one entry shown on a board. Data is opaque to the server.
type ContentItem struct {
	ID        uuid.UUID
	Type      ContentType
	Data      json.RawMessage
	Priority  int
	StartTime *time.Time
	EndTime   *time.Time
	IsActive  bool
}

func NewContentItem(t ContentType, data json.RawMessage, priority int, start, end *time.Time) (ContentItem, error) {
	if !t.IsValid() {
		return ContentItem{}, ErrInvalidContentType
	}
	if start != nil && end != nil && !start.Before(*end) {
		return ContentItem{}, ErrInvalidContentWindow
	}
	if len(data) > 0 && !json.Valid(data) {
		return ContentItem{}, ErrInvalidContentData
	}
	return ContentItem{
		ID:        uuid.New(),
		Type:      t,
		Data:      data,
		Priority:  priority,
		StartTime: start,
		EndTime:   end,
		IsActive:  true,
	}, nil
}

// VisibleAt reports whether the item should be on screen at now.
func (c ContentItem) VisibleAt(now time.Time) bool {
	if !c.IsActive {
		return false
	}
	if c.StartTime != nil && now.Before(*c.StartTime) {
		return false
	}
	if c.EndTime != nil && !now.Before(*c.EndTime) {
		return false
	}
	return true
}

type Settings struct {
	RefreshInterval int
	DisplayMode     Mode
	Theme           string
}

func DefaultSettings() Settings {
	return Settings{
		RefreshInterval: DefaultRefreshInterval,
		DisplayMode:     ModeNormal,
		Theme:           DefaultTheme,
	}
}

type SettingsPatch struct {
	RefreshInterval *int
	DisplayMode     *Mode
	Theme           *string
}

func (s Settings) validate() error {
	switch {
	case s.RefreshInterval <= 0:
		return ErrInvalidRefreshInterval
	case !s.DisplayMode.IsValid():
		return ErrInvalidMode
	case s.Theme == "":
		return ErrInvalidTheme
	}
	return nil
}
