package commands

import (
	"context"

	"hospital-ops/internal/domain/department"
	"hospital-ops/internal/pkg/clock"
	"hospital-ops/internal/pkg/errs"
	"hospital-ops/internal/usecase/queries"
	"hospital-ops/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDuplicateDepartmentName = errs.Validation("department name already exists")

type CreateDepartmentInput struct {
	Name        string
	Description string
	Head        string
	Location    string
}

type UpdateDepartmentInput struct {
	Name        *string
	Description *string
	Head        *string
	Location    *string
	IsActive    *bool
}

type DepartmentCommands interface {
	Create(ctx context.Context, in CreateDepartmentInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateDepartmentInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type departmentCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDepartmentCommands(uow shared.UnitOfWork, clk clock.Clock) DepartmentCommands {
	return &departmentCommandsImpl{uow: uow, clock: clk}
}

func (c *departmentCommandsImpl) Create(ctx context.Context, in CreateDepartmentInput) (uuid.UUID, error) {
	d, err := department.NewDepartment(in.Name, in.Description, in.Head, in.Location, c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translateDuplicate(tx.Departments().Create(ctx, d), ErrDuplicateDepartmentName)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return d.ID(), nil
}

func (c *departmentCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdateDepartmentInput) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := tx.Departments().FindByID(ctx, id)
		if err != nil {
			return translateRepoErr(err, queries.ErrDepartmentNotFound)
		}

		err = d.Apply(department.Changes{
			Name:        in.Name,
			Description: in.Description,
			Head:        in.Head,
			Location:    in.Location,
			IsActive:    in.IsActive,
		}, c.clock.Now())
		if err != nil {
			return err
		}

		err = translateDuplicate(tx.Departments().Update(ctx, d), ErrDuplicateDepartmentName)
		return translateRepoErr(err, queries.ErrDepartmentNotFound)
	})
}

func (c *departmentCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translateRepoErr(tx.Departments().Delete(ctx, id), queries.ErrDepartmentNotFound)
	})
}
