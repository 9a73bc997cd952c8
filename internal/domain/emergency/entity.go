package emergency

import (
	"slices"
	"strings"
	"time"

	"hospital-ops/internal/pkg/errs"
	"hospital-ops/internal/pkg/patch"
	"hospital-ops/internal/pkg/ptr"

	"github.com/google/uuid"
)

var (
	ErrInvalidPatient     = errs.Validation("patient id is required")
	ErrInvalidType        = errs.Validation("invalid emergency type")
	ErrInvalidSeverity    = errs.Validation("invalid severity level")
	ErrInvalidDescription = errs.Validation("emergency description is required")
	ErrInvalidLocation    = errs.Validation("emergency location is required")
	ErrInvalidStatus      = errs.Validation("invalid emergency status")
	ErrInvalidVitals      = errs.Validation("vital signs out of range")
	ErrInvalidTreatment   = errs.Validation("treatment needs a procedure or a medication")
	ErrInvalidTransition  = errs.Rule("invalid emergency status transition")
	ErrCaseClosed         = errs.Rule("emergency case is closed")
)

// Case is one emergency admission.
type Case struct {
	id               uuid.UUID
	patientID        uuid.UUID
	caseType         Type
	severity         Severity
	description      string
	assignedDoctorID *uuid.UUID
	status           Status
	location         string
	vitals           VitalSigns
	treatments       []Treatment
	notes            string
	version          int32
	createdAt        time.Time
	updatedAt        time.Time
}

type Params struct {
	PatientID        uuid.UUID
	Type             Type
	Severity         Severity
	Description      string
	AssignedDoctorID *uuid.UUID
	Location         string
	Vitals           VitalSigns
	Notes            string
}

type Changes struct {
	Type             *Type
	Severity         *Severity
	Description      *string
	AssignedDoctorID *uuid.UUID
	Status           *Status
	Location         *string
	Notes            *string
}

func NewCase(p Params, now time.Time) (*Case, error) {
	c := &Case{
		id:               uuid.New(),
		patientID:        p.PatientID,
		caseType:         p.Type,
		severity:         p.Severity,
		description:      strings.TrimSpace(p.Description),
		assignedDoctorID: p.AssignedDoctorID,
		status:           StatusPending,
		location:         strings.TrimSpace(p.Location),
		vitals:           p.Vitals,
		treatments:       []Treatment{},
		notes:            p.Notes,
		version:          1,
		createdAt:        now,
		updatedAt:        now,
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func ReconstructCase(
	id, patientID uuid.UUID,
	caseType Type,
	severity Severity,
	description string,
	assignedDoctorID *uuid.UUID,
	status Status,
	location string,
	vitals VitalSigns,
	treatments []Treatment,
	notes string,
	version int32,
	createdAt, updatedAt time.Time,
) *Case {
	return &Case{
		id:               id,
		patientID:        patientID,
		caseType:         caseType,
		severity:         severity,
		description:      description,
		assignedDoctorID: assignedDoctorID,
		status:           status,
		location:         location,
		vitals:           vitals,
		treatments:       treatments,
		notes:            notes,
		version:          version,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (c *Case) ID() uuid.UUID                { return c.id }
func (c *Case) PatientID() uuid.UUID         { return c.patientID }
func (c *Case) Type() Type                   { return c.caseType }
func (c *Case) Severity() Severity           { return c.severity }
func (c *Case) Description() string          { return c.description }
func (c *Case) AssignedDoctorID() *uuid.UUID { return c.assignedDoctorID }
func (c *Case) Status() Status               { return c.status }
func (c *Case) Location() string             { return c.location }
func (c *Case) Vitals() VitalSigns           { return c.vitals }
func (c *Case) Treatments() []Treatment      { return slices.Clone(c.treatments) }
func (c *Case) Notes() string                { return c.notes }
func (c *Case) Version() int32               { return c.version }
func (c *Case) CreatedAt() time.Time         { return c.createdAt }
func (c *Case) UpdatedAt() time.Time         { return c.updatedAt }

func (c *Case) Apply(ch Changes, now time.Time) error {
	next := *c
	patch.Apply(&next.caseType, ch.Type)
	patch.Apply(&next.severity, ch.Severity)
	if ch.Description != nil {
		next.description = strings.TrimSpace(*ch.Description)
	}
	if ch.AssignedDoctorID != nil {
		next.assignedDoctorID = ptr.Of(*ch.AssignedDoctorID)
	}
	if ch.Location != nil {
		next.location = strings.TrimSpace(*ch.Location)
	}
	patch.Apply(&next.notes, ch.Notes)
	if ch.Status != nil && *ch.Status != c.status {
		if !ch.Status.IsValid() {
			return ErrInvalidStatus
		}
		if !c.status.CanTransitionTo(*ch.Status) {
			return ErrInvalidTransition
		}
		next.status = *ch.Status
	}
	if err := next.validate(); err != nil {
		return err
	}
	next.updatedAt = now
	*c = next
	return nil
}

// AddTreatment appends to the treatment log. Closed cases accept no more treatment.
func (c *Case) AddTreatment(t Treatment, now time.Time) error {
	if c.status.IsClosed() {
		return ErrCaseClosed
	}
	if t.Timestamp.IsZero() {
		t.Timestamp = now
	}
	c.treatments = append(c.treatments, t)
	c.updatedAt = now
	return nil
}

func (c *Case) RecordVitals(v VitalSigns, now time.Time) error {
	if err := v.Validate(); err != nil {
		return err
	}
	c.vitals = c.vitals.Merge(v)
	c.updatedAt = now
	return nil
}

func (c *Case) validate() error {
	switch {
	case c.patientID == uuid.Nil:
		return ErrInvalidPatient
	case !c.caseType.IsValid():
		return ErrInvalidType
	case !c.severity.IsValid():
		return ErrInvalidSeverity
	case c.description == "":
		return ErrInvalidDescription
	case c.location == "":
		return ErrInvalidLocation
	}
	return c.vitals.Validate()
}
