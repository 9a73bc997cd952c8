package theatre

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TimeWindow is a half-open interval [start, end). A nil end means the window is still open.
type TimeWindow struct {
	start time.Time
	end   *time.Time
}

func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if start.IsZero() || end.IsZero() || !start.Before(end) {
		return TimeWindow{}, ErrInvalidTimeWindow
	}
	return TimeWindow{start: start, end: &end}, nil
}

func OpenWindow(start time.Time) TimeWindow {
	return TimeWindow{start: start}
}

func (w TimeWindow) Start() time.Time { return w.start }
func (w TimeWindow) End() *time.Time  { return w.end }
func (w TimeWindow) IsOpen() bool     { return w.end == nil }

// Overlaps treats touching edges as free: [09:00,10:00) and [10:00,11:00) do not overlap.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	endsAfterOtherStarts := w.end == nil || w.end.After(other.start)
	otherEndsAfterStart := other.end == nil || other.end.After(w.start)
	return endsAfterOtherStarts && otherEndsAfterStart
}

type Equipment struct {
	name   string
	status EquipmentStatus
}

func NewEquipment(name string, status EquipmentStatus) (Equipment, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Equipment{}, ErrInvalidEquipment
	}
	if status == "" {
		status = EquipmentAvailable
	}
	if !status.IsValid() {
		return Equipment{}, ErrInvalidEquipment
	}
	return Equipment{name: name, status: status}, nil
}

func (e Equipment) Name() string            { return e.name }
func (e Equipment) Status() EquipmentStatus { return e.status }

// ScheduleEntry is one booking owned by a theatre.
type ScheduleEntry struct {
	id        uuid.UUID
	surgeryID uuid.UUID
	window    TimeWindow
	status    EntryStatus
}

func ReconstructScheduleEntry(id, surgeryID uuid.UUID, start time.Time, end *time.Time, status EntryStatus) ScheduleEntry {
	return ScheduleEntry{
		id:        id,
		surgeryID: surgeryID,
		window:    TimeWindow{start: start, end: end},
		status:    status,
	}
}

func (e ScheduleEntry) ID() uuid.UUID        { return e.id }
func (e ScheduleEntry) SurgeryID() uuid.UUID { return e.surgeryID }
func (e ScheduleEntry) Window() TimeWindow   { return e.window }
func (e ScheduleEntry) StartTime() time.Time { return e.window.start }
func (e ScheduleEntry) EndTime() *time.Time  { return e.window.end }
func (e ScheduleEntry) Status() EntryStatus  { return e.status }

// Blocks reports whether the entry still occupies its slot.
func (e ScheduleEntry) Blocks() bool {
	return !e.status.IsTerminal()
}
