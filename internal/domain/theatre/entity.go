package theatre

import (
	"slices"
	"strings"
	"time"

	"hospital-ops/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidName        = errs.Validation("theatre name is required")
	ErrInvalidStatus      = errs.Validation("invalid theatre status")
	ErrInvalidEntryStatus = errs.Validation("invalid schedule entry status")
	ErrInvalidEquipment   = errs.Validation("invalid theatre equipment")
	ErrInvalidTimeWindow  = errs.Validation("start time must be before end time")
	ErrTimeSlotConflict   = errs.Rule("time slot conflict")
	ErrInvalidTransition  = errs.Rule("invalid theatre status transition")
	ErrInvalidEntryChange = errs.Rule("invalid schedule entry status transition")
	ErrEntryNotFound      = errs.NotFound("schedule entry not found")
)

// Theatre is the Resource aggregate: an operation theatre with its embedded schedule.
type Theatre struct {
	id               uuid.UUID
	name             string
	status           Status
	currentSurgeryID *uuid.UUID
	schedule         []ScheduleEntry
	equipment        []Equipment
	version          int32
	createdAt        time.Time
	updatedAt        time.Time
}

// Preemption describes what an emergency override did to the schedule.
type Preemption struct {
	PreviousStatus Status
	Discarded      []ScheduleEntry
	Entry          ScheduleEntry
}

func NewTheatre(name string, equipment []Equipment, now time.Time) (*Theatre, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	return &Theatre{
		id:        uuid.New(),
		name:      name,
		status:    StatusAvailable,
		schedule:  []ScheduleEntry{},
		equipment: slices.Clone(equipment),
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructTheatre(
	id uuid.UUID,
	name string,
	status Status,
	currentSurgeryID *uuid.UUID,
	schedule []ScheduleEntry,
	equipment []Equipment,
	version int32,
	createdAt, updatedAt time.Time,
) *Theatre {
	return &Theatre{
		id:               id,
		name:             name,
		status:           status,
		currentSurgeryID: currentSurgeryID,
		schedule:         schedule,
		equipment:        equipment,
		version:          version,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (t *Theatre) ID() uuid.UUID                { return t.id }
func (t *Theatre) Name() string                 { return t.name }
func (t *Theatre) Status() Status               { return t.status }
func (t *Theatre) CurrentSurgeryID() *uuid.UUID { return t.currentSurgeryID }
func (t *Theatre) Schedule() []ScheduleEntry    { return slices.Clone(t.schedule) }
func (t *Theatre) Equipment() []Equipment       { return slices.Clone(t.equipment) }
func (t *Theatre) Version() int32               { return t.version }
func (t *Theatre) CreatedAt() time.Time         { return t.createdAt }
func (t *Theatre) UpdatedAt() time.Time         { return t.updatedAt }

// ScheduleSurgery appends a scheduled entry unless the window overlaps a blocking entry.
// On conflict the aggregate is left untouched.
func (t *Theatre) ScheduleSurgery(surgeryID uuid.UUID, window TimeWindow, now time.Time) (ScheduleEntry, error) {
	if window.IsOpen() {
		return ScheduleEntry{}, ErrInvalidTimeWindow
	}
	if HasConflict(t.schedule, window) {
		return ScheduleEntry{}, ErrTimeSlotConflict
	}

	entry := ScheduleEntry{
		id:        uuid.New(),
		surgeryID: surgeryID,
		window:    window,
		status:    EntryScheduled,
	}
	t.schedule = append(t.schedule, entry)
	t.updatedAt = now
	return entry, nil
}

// DeclareEmergency drops every scheduled and in-progress entry, keeps terminal ones, and
// starts an open-ended in-progress entry for the emergency surgery.
func (t *Theatre) DeclareEmergency(surgeryID uuid.UUID, now time.Time) Preemption {
	kept := make([]ScheduleEntry, 0, len(t.schedule)+1)
	var discarded []ScheduleEntry
	for _, e := range t.schedule {
		if e.status.IsTerminal() {
			kept = append(kept, e)
			continue
		}
		discarded = append(discarded, e)
	}

	entry := ScheduleEntry{
		id:        uuid.New(),
		surgeryID: surgeryID,
		window:    OpenWindow(now),
		status:    EntryInProgress,
	}
	p := Preemption{
		PreviousStatus: t.status,
		Discarded:      discarded,
		Entry:          entry,
	}

	id := surgeryID
	t.schedule = append(kept, entry)
	t.status = StatusEmergency
	t.currentSurgeryID = &id
	t.updatedAt = now
	return p
}

// ChangeStatus applies a status transition. Setting the current status again only
// updates the current surgery.
func (t *Theatre) ChangeStatus(next Status, currentSurgeryID *uuid.UUID, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if next != t.status && !t.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}

	t.status = next
	switch {
	case next == StatusAvailable || next == StatusMaintenance:
		t.currentSurgeryID = nil
	case currentSurgeryID != nil:
		id := *currentSurgeryID
		t.currentSurgeryID = &id
	}
	t.updatedAt = now
	return nil
}

func (t *Theatre) ChangeEntryStatus(entryID uuid.UUID, next EntryStatus, now time.Time) (ScheduleEntry, error) {
	if !next.IsValid() {
		return ScheduleEntry{}, ErrInvalidEntryStatus
	}
	idx := slices.IndexFunc(t.schedule, func(e ScheduleEntry) bool { return e.id == entryID })
	if idx < 0 {
		return ScheduleEntry{}, ErrEntryNotFound
	}

	entry := t.schedule[idx]
	if !entry.status.CanTransitionTo(next) {
		return ScheduleEntry{}, ErrInvalidEntryChange
	}

	entry.status = next
	if next.IsTerminal() && entry.window.end == nil {
		end := now
		entry.window.end = &end
	}
	t.schedule[idx] = entry

	if next.IsTerminal() && t.currentSurgeryID != nil && *t.currentSurgeryID == entry.surgeryID {
		t.currentSurgeryID = nil
	}
	t.updatedAt = now
	return entry, nil
}

// ActiveSchedule returns the entries that still hold their slot, in insertion order.
func (t *Theatre) ActiveSchedule() []ScheduleEntry {
	active := make([]ScheduleEntry, 0, len(t.schedule))
	for _, e := range t.schedule {
		if e.Blocks() {
			active = append(active, e)
		}
	}
	return active
}
