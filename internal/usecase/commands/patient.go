package commands

import (
	"context"
	"time"

	"hospital-ops/internal/domain/patient"
	"hospital-ops/internal/infra"
	"hospital-ops/internal/pkg/clock"
	"hospital-ops/internal/pkg/errs"
	"hospital-ops/internal/usecase/queries"
	"hospital-ops/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrPatientHasEmergencies = errs.Rule("patient still has emergency cases")

type CreatePatientInput struct {
	Name       string
	Age        int
	Gender     string
	Contact    string
	Address    string
	BloodGroup string
}

type UpdatePatientInput struct {
	Name       *string
	Age        *int
	Gender     *string
	Contact    *string
	Address    *string
	BloodGroup *string
}

type MedicalRecordInput struct {
	Condition string
	Diagnosis string
	Treatment string
	Date      *time.Time
}

type PatientCommands interface {
	Create(ctx context.Context, in CreatePatientInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, in UpdatePatientInput) error
	AddMedicalRecord(ctx context.Context, id uuid.UUID, in MedicalRecordInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type patientCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPatientCommands(uow shared.UnitOfWork, clk clock.Clock) PatientCommands {
	return &patientCommandsImpl{uow: uow, clock: clk}
}

func (c *patientCommandsImpl) Create(ctx context.Context, in CreatePatientInput) (uuid.UUID, error) {
	p, err := patient.NewPatient(patient.Params{
		Name:       in.Name,
		Age:        in.Age,
		Gender:     patient.Gender(in.Gender),
		Contact:    in.Contact,
		Address:    in.Address,
		BloodGroup: patient.BloodGroup(in.BloodGroup),
	}, c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Patients().Create(ctx, p)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return p.ID(), nil
}

func (c *patientCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdatePatientInput) error {
	changes := patient.Changes{
		Name:    in.Name,
		Age:     in.Age,
		Contact: in.Contact,
		Address: in.Address,
	}
	if in.Gender != nil {
		g := patient.Gender(*in.Gender)
		changes.Gender = &g
	}
	if in.BloodGroup != nil {
		b := patient.BloodGroup(*in.BloodGroup)
		changes.BloodGroup = &b
	}

	return c.modify(ctx, id, func(p *patient.Patient, now time.Time) error {
		return p.Apply(changes, now)
	})
}

func (c *patientCommandsImpl) AddMedicalRecord(ctx context.Context, id uuid.UUID, in MedicalRecordInput) error {
	record := patient.MedicalRecord{
		Condition: in.Condition,
		Diagnosis: in.Diagnosis,
		Treatment: in.Treatment,
	}
	if in.Date != nil {
		record.Date = *in.Date
	}

	return c.modify(ctx, id, func(p *patient.Patient, now time.Time) error {
		return p.AddMedicalRecord(record, now)
	})
}

func (c *patientCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Patients().Delete(ctx, id)
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return ErrPatientHasEmergencies
		}
		return translateRepoErr(err, queries.ErrPatientNotFound)
	})
}

func (c *patientCommandsImpl) modify(ctx context.Context, id uuid.UUID, fn func(p *patient.Patient, now time.Time) error) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Patients().FindByID(ctx, id)
		if err != nil {
			return translateRepoErr(err, queries.ErrPatientNotFound)
		}
		if err := fn(p, c.clock.Now()); err != nil {
			return err
		}
		return translateRepoErr(tx.Patients().Update(ctx, p), queries.ErrPatientNotFound)
	})
}
