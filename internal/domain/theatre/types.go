package theatre

import "slices"

type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
	StatusEmergency   Status = "emergency"
)

var statusTransitions = map[Status][]Status{
	StatusAvailable:   {StatusOccupied, StatusMaintenance, StatusEmergency},
	StatusOccupied:    {StatusAvailable, StatusMaintenance, StatusEmergency},
	StatusMaintenance: {StatusAvailable},
	StatusEmergency:   {StatusAvailable, StatusOccupied},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(statusTransitions[s], next)
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type EntryStatus string

const (
	EntryScheduled  EntryStatus = "scheduled"
	EntryInProgress EntryStatus = "in-progress"
	EntryCompleted  EntryStatus = "completed"
	EntryCancelled  EntryStatus = "cancelled"
)

var entryTransitions = map[EntryStatus][]EntryStatus{
	EntryScheduled:  {EntryInProgress, EntryCancelled},
	EntryInProgress: {EntryCompleted, EntryCancelled},
	EntryCompleted:  {},
	EntryCancelled:  {},
}

func (s EntryStatus) String() string {
	return string(s)
}

func (s EntryStatus) IsValid() bool {
	_, ok := entryTransitions[s]
	return ok
}

// IsTerminal reports whether the entry no longer holds its time slot.
func (s EntryStatus) IsTerminal() bool {
	return s == EntryCompleted || s == EntryCancelled
}

func (s EntryStatus) CanTransitionTo(next EntryStatus) bool {
	return slices.Contains(entryTransitions[s], next)
}

func NewEntryStatus(s string) (EntryStatus, error) {
	st := EntryStatus(s)
	if !st.IsValid() {
		return "", ErrInvalidEntryStatus
	}
	return st, nil
}

type EquipmentStatus string

const (
	EquipmentAvailable   EquipmentStatus = "available"
	EquipmentInUse       EquipmentStatus = "in-use"
	EquipmentMaintenance EquipmentStatus = "maintenance"
)

func (s EquipmentStatus) IsValid() bool {
	switch s {
	case EquipmentAvailable, EquipmentInUse, EquipmentMaintenance:
		return true
	default:
		return false
	}
}
