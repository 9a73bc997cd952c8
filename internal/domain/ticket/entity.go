package ticket

import (
	"strings"
	"time"

	"hospital-ops/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidPatientName = errs.Validation("ticket patient name is required")
	ErrInvalidDepartment  = errs.Validation("ticket department is required")
	ErrInvalidPriority    = errs.Validation("invalid ticket priority")
	ErrInvalidStatus      = errs.Validation("invalid ticket status")
	ErrInvalidSequence    = errs.Validation("ticket sequence must start at 1")
	ErrInvalidNumber      = errs.Validation("invalid ticket number")
	ErrInvalidTransition  = errs.Rule("invalid ticket status transition")
)

// Ticket is a queue ticket issued to a visitor for one department.
type Ticket struct {
	id          uuid.UUID
	number      Number
	patientName string
	department  string
	priority    Priority
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

// Draft is a validated request for a ticket that has no number yet.
type Draft struct {
	PatientName string
	Department  string
	Priority    Priority
}

func NewDraft(patientName, department string, priority Priority) (Draft, error) {
	d := Draft{
		PatientName: strings.TrimSpace(patientName),
		Department:  strings.TrimSpace(department),
		Priority:    priority,
	}
	if d.Priority == "" {
		d.Priority = PriorityNormal
	}
	switch {
	case d.PatientName == "":
		return Draft{}, ErrInvalidPatientName
	case d.Department == "":
		return Draft{}, ErrInvalidDepartment
	case !d.Priority.IsValid():
		return Draft{}, ErrInvalidPriority
	}
	return d, nil
}

// Issue turns a draft into a waiting ticket once the day's sequence is known.
func (d Draft) Issue(number Number, now time.Time) *Ticket {
	return &Ticket{
		id:          uuid.New(),
		number:      number,
		patientName: d.PatientName,
		department:  d.Department,
		priority:    d.Priority,
		status:      StatusWaiting,
		createdAt:   now,
		updatedAt:   now,
	}
}

func ReconstructTicket(id uuid.UUID, number Number, patientName, department string, priority Priority, status Status, createdAt, updatedAt time.Time) *Ticket {
	return &Ticket{
		id:          id,
		number:      number,
		patientName: patientName,
		department:  department,
		priority:    priority,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (t *Ticket) ID() uuid.UUID        { return t.id }
func (t *Ticket) Number() Number       { return t.number }
func (t *Ticket) PatientName() string  { return t.patientName }
func (t *Ticket) Department() string   { return t.department }
func (t *Ticket) Priority() Priority   { return t.priority }
func (t *Ticket) Status() Status       { return t.status }
func (t *Ticket) CreatedAt() time.Time { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time { return t.updatedAt }

func (t *Ticket) ChangeStatus(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !t.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	t.status = next
	t.updatedAt = now
	return nil
}
