package surgery

import (
	"strings"
	"time"

	"hospital-ops/internal/pkg/errs"
	"hospital-ops/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrInvalidPatientName = errs.Validation("surgery patient name is required")
	ErrInvalidProcedure   = errs.Validation("procedure is required")
	ErrInvalidSurgeon     = errs.Validation("surgeon is required")
	ErrInvalidDuration    = errs.Validation("estimated duration must be positive")
	ErrInvalidPriority    = errs.Validation("invalid surgery priority")
	ErrInvalidStatus      = errs.Validation("invalid surgery status")
	ErrInvalidTimes       = errs.Validation("surgery start time must be before end time")
	ErrInvalidTransition  = errs.Rule("invalid surgery status transition")
)

// Surgery is the bookable activity referenced by theatre schedule entries.
type Surgery struct {
	id                uuid.UUID
	patientName       string
	procedure         string
	surgeon           string
	priority          Priority
	estimatedDuration int
	status            Status
	startTime         *time.Time
	endTime           *time.Time
	notes             string
	createdAt         time.Time
	updatedAt         time.Time
}

type Params struct {
	PatientName       string
	Procedure         string
	Surgeon           string
	Priority          Priority
	EstimatedDuration int
	StartTime         *time.Time
	EndTime           *time.Time
	Notes             string
}

// Changes carries a partial update; nil fields are left alone.
type Changes struct {
	PatientName       *string
	Procedure         *string
	Surgeon           *string
	Priority          *Priority
	EstimatedDuration *int
	Status            *Status
	StartTime         *time.Time
	EndTime           *time.Time
	Notes             *string
}

func NewSurgery(p Params, now time.Time) (*Surgery, error) {
	s := &Surgery{
		id:                uuid.New(),
		patientName:       strings.TrimSpace(p.PatientName),
		procedure:         strings.TrimSpace(p.Procedure),
		surgeon:           strings.TrimSpace(p.Surgeon),
		priority:          p.Priority,
		estimatedDuration: p.EstimatedDuration,
		status:            StatusScheduled,
		startTime:         p.StartTime,
		endTime:           p.EndTime,
		notes:             p.Notes,
		createdAt:         now,
		updatedAt:         now,
	}
	if s.priority == "" {
		s.priority = PriorityNormal
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func ReconstructSurgery(
	id uuid.UUID,
	patientName, procedure, surgeon string,
	priority Priority,
	estimatedDuration int,
	status Status,
	startTime, endTime *time.Time,
	notes string,
	createdAt, updatedAt time.Time,
) *Surgery {
	return &Surgery{
		id:                id,
		patientName:       patientName,
		procedure:         procedure,
		surgeon:           surgeon,
		priority:          priority,
		estimatedDuration: estimatedDuration,
		status:            status,
		startTime:         startTime,
		endTime:           endTime,
		notes:             notes,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (s *Surgery) ID() uuid.UUID           { return s.id }
func (s *Surgery) PatientName() string     { return s.patientName }
func (s *Surgery) Procedure() string       { return s.procedure }
func (s *Surgery) Surgeon() string         { return s.surgeon }
func (s *Surgery) Priority() Priority      { return s.priority }
func (s *Surgery) EstimatedDuration() int  { return s.estimatedDuration }
func (s *Surgery) Status() Status          { return s.status }
func (s *Surgery) StartTime() *time.Time   { return s.startTime }
func (s *Surgery) EndTime() *time.Time     { return s.endTime }
func (s *Surgery) Notes() string           { return s.notes }
func (s *Surgery) CreatedAt() time.Time    { return s.createdAt }
func (s *Surgery) UpdatedAt() time.Time    { return s.updatedAt }

// Apply validates the result as a whole, so a failed update leaves the surgery unchanged.
func (s *Surgery) Apply(c Changes, now time.Time) error {
	next := *s
	if c.PatientName != nil {
		next.patientName = strings.TrimSpace(*c.PatientName)
	}
	if c.Procedure != nil {
		next.procedure = strings.TrimSpace(*c.Procedure)
	}
	if c.Surgeon != nil {
		next.surgeon = strings.TrimSpace(*c.Surgeon)
	}
	patch.Apply(&next.priority, c.Priority)
	patch.Apply(&next.estimatedDuration, c.EstimatedDuration)
	if c.StartTime != nil {
		next.startTime = c.StartTime
	}
	if c.EndTime != nil {
		next.endTime = c.EndTime
	}
	patch.Apply(&next.notes, c.Notes)
	if c.Status != nil && *c.Status != s.status {
		if !c.Status.IsValid() {
			return ErrInvalidStatus
		}
		if !s.status.CanTransitionTo(*c.Status) {
			return ErrInvalidTransition
		}
		next.status = *c.Status
	}
	if err := next.validate(); err != nil {
		return err
	}
	next.updatedAt = now
	*s = next
	return nil
}

func (s *Surgery) validate() error {
	switch {
	case s.patientName == "":
		return ErrInvalidPatientName
	case s.procedure == "":
		return ErrInvalidProcedure
	case s.surgeon == "":
		return ErrInvalidSurgeon
	case s.estimatedDuration <= 0:
		return ErrInvalidDuration
	case !s.priority.IsValid():
		return ErrInvalidPriority
	case s.startTime != nil && s.endTime != nil && !s.startTime.Before(*s.endTime):
		return ErrInvalidTimes
	}
	return nil
}
