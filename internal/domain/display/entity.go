package display

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"hospital-ops/internal/pkg/errs"
	"hospital-ops/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrInvalidName            = errs.Validation("display name is required")
	ErrInvalidDepartment      = errs.Validation("display department is required")
	ErrInvalidLocation        = errs.Validation("display location is required")
	ErrInvalidBoardType       = errs.Validation("invalid display type")
	ErrInvalidContentType     = errs.Validation("invalid content type")
	ErrInvalidContentWindow   = errs.Validation("content start time must be before end time")
	ErrInvalidContentData     = errs.Validation("content data must be valid JSON")
	ErrInvalidRefreshInterval = errs.Validation("refresh interval must be positive")
	ErrInvalidMode            = errs.Validation("invalid display mode")
	ErrInvalidTheme           = errs.Validation("theme is required")
)

// Board is a display screen and the content queued for it.
type Board struct {
	id         uuid.UUID
	name       string
	department string
	location   string
	boardType  BoardType
	content    []ContentItem
	settings   Settings
	version    int32
	createdAt  time.Time
	updatedAt  time.Time
}

func NewBoard(name, department, location string, boardType BoardType, now time.Time) (*Board, error) {
	b := &Board{
		id:         uuid.New(),
		name:       strings.TrimSpace(name),
		department: strings.TrimSpace(department),
		location:   strings.TrimSpace(location),
		boardType:  boardType,
		content:    []ContentItem{},
		settings:   DefaultSettings(),
		version:    1,
		createdAt:  now,
		updatedAt:  now,
	}
	switch {
	case b.name == "":
		return nil, ErrInvalidName
	case b.department == "":
		return nil, ErrInvalidDepartment
	case b.location == "":
		return nil, ErrInvalidLocation
	case !b.boardType.IsValid():
		return nil, ErrInvalidBoardType
	}
	return b, nil
}

func ReconstructBoard(
	id uuid.UUID,
	name, department, location string,
	boardType BoardType,
	content []ContentItem,
	settings Settings,
	version int32,
	createdAt, updatedAt time.Time,
) *Board {
	return &Board{
		id:         id,
		name:       name,
		department: department,
		location:   location,
		boardType:  boardType,
		content:    content,
		settings:   settings,
		version:    version,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (b *Board) ID() uuid.UUID          { return b.id }
func (b *Board) Name() string           { return b.name }
func (b *Board) Department() string     { return b.department }
func (b *Board) Location() string       { return b.location }
func (b *Board) Type() BoardType        { return b.boardType }
func (b *Board) Content() []ContentItem { return slices.Clone(b.content) }
func (b *Board) Settings() Settings     { return b.settings }
func (b *Board) Version() int32         { return b.version }
func (b *Board) CreatedAt() time.Time   { return b.createdAt }
func (b *Board) UpdatedAt() time.Time   { return b.updatedAt }

// AddContent keeps content ordered by priority, highest first. Items with equal
// priority stay in arrival order.
func (b *Board) AddContent(item ContentItem, now time.Time) {
	b.content = append(b.content, item)
	slices.SortStableFunc(b.content, func(x, y ContentItem) int {
		return cmp.Compare(y.Priority, x.Priority)
	})
	b.updatedAt = now
}

// ClearContent removes every item, or only items of one type when only is set.
// It returns how many items were removed.
func (b *Board) ClearContent(only *ContentType, now time.Time) (int, error) {
	if only != nil && !only.IsValid() {
		return 0, ErrInvalidContentType
	}
	before := len(b.content)
	if only == nil {
		b.content = []ContentItem{}
	} else {
		b.content = slices.DeleteFunc(b.content, func(c ContentItem) bool { return c.Type == *only })
	}
	b.updatedAt = now
	return before - len(b.content), nil
}

func (b *Board) UpdateSettings(p SettingsPatch, now time.Time) error {
	next := b.settings
	patch.Apply(&next.RefreshInterval, p.RefreshInterval)
	patch.Apply(&next.DisplayMode, p.DisplayMode)
	if p.Theme != nil {
		next.Theme = strings.TrimSpace(*p.Theme)
	}
	if err := next.validate(); err != nil {
		return err
	}
	b.settings = next
	b.updatedAt = now
	return nil
}

func (b *Board) VisibleContent(now time.Time) []ContentItem {
	out := make([]ContentItem, 0, len(b.content))
	for _, c := range b.content {
		if c.VisibleAt(now) {
			out = append(out, c)
		}
	}
	return out
}
