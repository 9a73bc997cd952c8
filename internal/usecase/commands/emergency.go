package commands

import (
	"context"
	"time"

	"hospital-ops/internal/domain/emergency"
	"hospital-ops/internal/infra"
	"hospital-ops/internal/pkg/clock"
	"hospital-ops/internal/pkg/errs"
	"hospital-ops/internal/pkg/patch"
	"hospital-ops/internal/usecase/queries"
	"hospital-ops/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDoctorNotFound = errs.NotFound("assigned doctor not found")

type VitalSignsInput struct {
	BloodPressure    string
	HeartRate        *float64
	Temperature      *float64
	OxygenSaturation *float64
	RespiratoryRate  *float64
}

type CreateEmergencyInput struct {
	PatientID        uuid.UUID
	Type             string
	Severity         string
	Description      string
	AssignedDoctorID *uuid.UUID
	Location         string
	VitalSigns       VitalSignsInput
	Notes            string
}

type UpdateEmergencyInput struct {
	Type             *string
	Severity         *string
	Description      *string
	AssignedDoctorID *uuid.UUID
	Status           *string
	Location         *string
	Notes            *string
}

type TreatmentInput struct {
	Procedure  string
	Medication string
	Notes      string
	Timestamp  *time.Time
}

type EmergencyCommands interface {
	Create(ctx context.Context, in CreateEmergencyInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateEmergencyInput) error
	AddTreatment(ctx context.Context, id uuid.UUID, in TreatmentInput) error
	RecordVitals(ctx context.Context, id uuid.UUID, in VitalSignsInput) error
}

type emergencyCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewEmergencyCommands(uow shared.UnitOfWork, clk clock.Clock) EmergencyCommands {
	return &emergencyCommandsImpl{uow: uow, clock: clk}
}

func (c *emergencyCommandsImpl) Create(ctx context.Context, in CreateEmergencyInput) (uuid.UUID, error) {
	vitals := toVitalSigns(in.VitalSigns)
	if err := vitals.Validate(); err != nil {
		return uuid.Nil, err
	}

	ec, err := emergency.NewCase(emergency.Params{
		PatientID:        in.PatientID,
		Type:             emergency.Type(in.Type),
		Severity:         emergency.Severity(in.Severity),
		Description:      in.Description,
		AssignedDoctorID: in.AssignedDoctorID,
		Location:         in.Location,
		Vitals:           vitals,
		Notes:            in.Notes,
	}, c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().PatientByID(ctx, in.PatientID); err != nil {
			return translateRepoErr(err, queries.ErrPatientNotFound)
		}
		return translateDoctorFK(tx.Emergencies().Create(ctx, ec))
	})
	if err != nil {
		return uuid.Nil, err
	}
	return ec.ID(), nil
}

func (c *emergencyCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdateEmergencyInput) error {
	changes := emergency.Changes{
		Description:      in.Description,
		AssignedDoctorID: in.AssignedDoctorID,
		Location:         in.Location,
		Notes:            in.Notes,
	}
	if in.Type != nil {
		t := emergency.Type(*in.Type)
		changes.Type = &t
	}
	if in.Severity != nil {
		s := emergency.Severity(*in.Severity)
		changes.Severity = &s
	}
	if in.Status != nil {
		s := emergency.Status(*in.Status)
		changes.Status = &s
	}

	return c.modify(ctx, id, func(ec *emergency.Case, now time.Time) error {
		return ec.Apply(changes, now)
	})
}

func (c *emergencyCommandsImpl) AddTreatment(ctx context.Context, id uuid.UUID, in TreatmentInput) error {
	return c.modify(ctx, id, func(ec *emergency.Case, now time.Time) error {
		at := patch.Coalesce(in.Timestamp, now)
		t, err := emergency.NewTreatment(in.Procedure, in.Medication, in.Notes, at)
		if err != nil {
			return err
		}
		return ec.AddTreatment(t, now)
	})
}

func (c *emergencyCommandsImpl) RecordVitals(ctx context.Context, id uuid.UUID, in VitalSignsInput) error {
	return c.modify(ctx, id, func(ec *emergency.Case, now time.Time) error {
		return ec.RecordVitals(toVitalSigns(in), now)
	})
}

func (c *emergencyCommandsImpl) modify(ctx context.Context, id uuid.UUID, fn func(ec *emergency.Case, now time.Time) error) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ec, err := tx.Emergencies().FindByID(ctx, id)
		if err != nil {
			return translateRepoErr(err, queries.ErrEmergencyNotFound)
		}
		if err := fn(ec, c.clock.Now()); err != nil {
			return err
		}
		err = translateDoctorFK(tx.Emergencies().Update(ctx, ec))
		return translateRepoErr(err, queries.ErrEmergencyNotFound)
	})
}

func translateDoctorFK(err error) error {
	if infra.IsKind(err, infra.KindForeignKeyViolated) {
		return ErrDoctorNotFound
	}
	return err
}

func toVitalSigns(in VitalSignsInput) emergency.VitalSigns {
	return emergency.VitalSigns{
		BloodPressure:    in.BloodPressure,
		HeartRate:        in.HeartRate,
		Temperature:      in.Temperature,
		OxygenSaturation: in.OxygenSaturation,
		RespiratoryRate:  in.RespiratoryRate,
	}
}
