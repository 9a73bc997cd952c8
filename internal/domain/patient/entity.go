package patient

import (
	"slices"
	"strings"
	"time"

	"hospital-ops/internal/pkg/errs"
	"hospital-ops/internal/pkg/patch"

	"github.com/google/uuid"
)

const maxAge = 150

var (
	ErrInvalidName       = errs.Validation("patient name is required")
	ErrInvalidAge        = errs.Validation("age must be between 0 and 150")
	ErrInvalidGender     = errs.Validation("invalid gender")
	ErrInvalidContact    = errs.Validation("contact is required")
	ErrInvalidAddress    = errs.Validation("address is required")
	ErrInvalidBloodGroup = errs.Validation("invalid blood group")
	ErrInvalidRecord     = errs.Validation("medical record needs a condition")
)

type MedicalRecord struct {
	Condition string
	Diagnosis string
	Treatment string
	Date      time.Time
}

type Patient struct {
	id             uuid.UUID
	name           string
	age            int
	gender         Gender
	contact        string
	address        string
	bloodGroup     BloodGroup
	medicalHistory []MedicalRecord
	version        int32
	createdAt      time.Time
	updatedAt      time.Time
}

type Params struct {
	Name       string
	Age        int
	Gender     Gender
	Contact    string
	Address    string
	BloodGroup BloodGroup
}

type Changes struct {
	Name       *string
	Age        *int
	Gender     *Gender
	Contact    *string
	Address    *string
	BloodGroup *BloodGroup
}

func NewPatient(p Params, now time.Time) (*Patient, error) {
	pt := &Patient{
		id:             uuid.New(),
		name:           strings.TrimSpace(p.Name),
		age:            p.Age,
		gender:         p.Gender,
		contact:        strings.TrimSpace(p.Contact),
		address:        strings.TrimSpace(p.Address),
		bloodGroup:     p.BloodGroup,
		medicalHistory: []MedicalRecord{},
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}
	if err := pt.validate(); err != nil {
		return nil, err
	}
	return pt, nil
}

func ReconstructPatient(id uuid.UUID, p Params, history []MedicalRecord, version int32, createdAt, updatedAt time.Time) *Patient {
	return &Patient{
		id:             id,
		name:           p.Name,
		age:            p.Age,
		gender:         p.Gender,
		contact:        p.Contact,
		address:        p.Address,
		bloodGroup:     p.BloodGroup,
		medicalHistory: history,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (p *Patient) ID() uuid.UUID                    { return p.id }
func (p *Patient) Name() string                     { return p.name }
func (p *Patient) Age() int                         { return p.age }
func (p *Patient) Gender() Gender                   { return p.gender }
func (p *Patient) Contact() string                  { return p.contact }
func (p *Patient) Address() string                  { return p.address }
func (p *Patient) BloodGroup() BloodGroup           { return p.bloodGroup }
func (p *Patient) MedicalHistory() []MedicalRecord { return slices.Clone(p.medicalHistory) }
func (p *Patient) Version() int32                   { return p.version }
func (p *Patient) CreatedAt() time.Time             { return p.createdAt }
func (p *Patient) UpdatedAt() time.Time             { return p.updatedAt }

func (p *Patient) Apply(c Changes, now time.Time) error {
	next := *p
	if c.Name != nil {
		next.name = strings.TrimSpace(*c.Name)
	}
	patch.Apply(&next.age, c.Age)
	patch.Apply(&next.gender, c.Gender)
	if c.Contact != nil {
		next.contact = strings.TrimSpace(*c.Contact)
	}
	if c.Address != nil {
		next.address = strings.TrimSpace(*c.Address)
	}
	patch.Apply(&next.bloodGroup, c.BloodGroup)
	if err := next.validate(); err != nil {
		return err
	}
	next.updatedAt = now
	*p = next
	return nil
}

func (p *Patient) AddMedicalRecord(r MedicalRecord, now time.Time) error {
	r.Condition = strings.TrimSpace(r.Condition)
	if r.Condition == "" {
		return ErrInvalidRecord
	}
	if r.Date.IsZero() {
		r.Date = now
	}
	p.medicalHistory = append(p.medicalHistory, r)
	p.updatedAt = now
	return nil
}

func (p *Patient) validate() error {
	switch {
	case p.name == "":
		return ErrInvalidName
	case p.age < 0 || p.age > maxAge:
		return ErrInvalidAge
	case !p.gender.IsValid():
		return ErrInvalidGender
	case p.contact == "":
		return ErrInvalidContact
	case p.address == "":
		return ErrInvalidAddress
	case !p.bloodGroup.IsValid():
		return ErrInvalidBloodGroup
	}
	return nil
}
