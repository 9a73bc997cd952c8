package department

import (
	"strings"
	"time"

	"hospital-ops/internal/pkg/errs"
	"hospital-ops/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrInvalidName        = errs.Validation("department name is required")
	ErrInvalidDescription = errs.Validation("department description is required")
	ErrInvalidHead        = errs.Validation("department head is required")
	ErrInvalidLocation    = errs.Validation("department location is required")
)

type Department struct {
	id          uuid.UUID
	name        string
	description string
	head        string
	location    string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

type Changes struct {
	Name        *string
	Description *string
	Head        *string
	Location    *string
	IsActive    *bool
}

func NewDepartment(name, description, head, location string, now time.Time) (*Department, error) {
	d := &Department{
		id:          uuid.New(),
		name:        strings.TrimSpace(name),
		description: strings.TrimSpace(description),
		head:        strings.TrimSpace(head),
		location:    strings.TrimSpace(location),
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func ReconstructDepartment(id uuid.UUID, name, description, head, location string, isActive bool, createdAt, updatedAt time.Time) *Department {
	return &Department{
		id:          id,
		name:        name,
		description: description,
		head:        head,
		location:    location,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (d *Department) ID() uuid.UUID        { return d.id }
func (d *Department) Name() string         { return d.name }
func (d *Department) Description() string  { return d.description }
func (d *Department) Head() string         { return d.head }
func (d *Department) Location() string     { return d.location }
func (d *Department) IsActive() bool       { return d.isActive }
func (d *Department) CreatedAt() time.Time { return d.createdAt }
func (d *Department) UpdatedAt() time.Time { return d.updatedAt }

func (d *Department) Apply(c Changes, now time.Time) error {
	next := *d
	if c.Name != nil {
		next.name = strings.TrimSpace(*c.Name)
	}
	if c.Description != nil {
		next.description = strings.TrimSpace(*c.Description)
	}
	if c.Head != nil {
		next.head = strings.TrimSpace(*c.Head)
	}
	if c.Location != nil {
		next.location = strings.TrimSpace(*c.Location)
	}
	patch.Apply(&next.isActive, c.IsActive)
	if err := next.validate(); err != nil {
		return err
	}
	next.updatedAt = now
	*d = next
	return nil
}

func (d *Department) validate() error {
	switch {
	case d.name == "":
		return ErrInvalidName
	case d.description == "":
		return ErrInvalidDescription
	case d.head == "":
		return ErrInvalidHead
	case d.location == "":
		return ErrInvalidLocation
	}
	return nil
}
