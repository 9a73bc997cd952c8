package shared

import (
	"context"
	"time"

	"hospital-ops/internal/domain/department"
	"hospital-ops/internal/domain/display"
	"hospital-ops/internal/domain/drug"
	"hospital-ops/internal/domain/emergency"
	"hospital-ops/internal/domain/patient"
	"hospital-ops/internal/domain/surgery"
	"hospital-ops/internal/domain/theatre"
	"hospital-ops/internal/domain/ticket"
	"hospital-ops/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Repositories returned by a Tx share its transaction.
type Tx interface {
	Theatres() TheatreRepository
	Surgeries() SurgeryRepository
	Tickets() TicketRepository
	Drugs() DrugRepository
	Emergencies() EmergencyRepository
	Patients() PatientRepository
	Departments() DepartmentRepository
	Displays() DisplayRepository
	Users() UserRepository
	Outbox() OutboxRepository
	Reads() CommandReads
}

type CommandReads interface {
	SurgeryByID(ctx context.Context, id uuid.UUID) (*SurgerySnapshot, error)
	PatientByID(ctx context.Context, id uuid.UUID) (*PatientSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
}

// TheatreRepository writes the theatre aggregate whole. Update fails with a stale-version
// error when the stored version differs from the loaded one.
type TheatreRepository interface {
	Create(ctx context.Context, t *theatre.Theatre) error
	FindByID(ctx context.Context, id uuid.UUID) (*theatre.Theatre, error)
	Update(ctx context.Context, t *theatre.Theatre) error
}

type SurgeryRepository interface {
	Create(ctx context.Context, s *surgery.Surgery) error
	FindByID(ctx context.Context, id uuid.UUID) (*surgery.Surgery, error)
	Update(ctx context.Context, s *surgery.Surgery) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TicketRepository interface {
	// NextSequence atomically bumps and returns the counter for day.
	NextSequence(ctx context.Context, day time.Time) (int64, error)
	Create(ctx context.Context, t *ticket.Ticket) error
	FindByID(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error)
	UpdateStatus(ctx context.Context, t *ticket.Ticket) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type DrugRepository interface {
	Create(ctx context.Context, d *drug.Drug) error
	FindByID(ctx context.Context, id uuid.UUID) (*drug.Drug, error)
	Update(ctx context.Context, d *drug.Drug) error
}

type EmergencyRepository interface {
	Create(ctx context.Context, c *emergency.Case) error
	FindByID(ctx context.Context, id uuid.UUID) (*emergency.Case, error)
	Update(ctx context.Context, c *emergency.Case) error
}

type PatientRepository interface {
	Create(ctx context.Context, p *patient.Patient) error
	FindByID(ctx context.Context, id uuid.UUID) (*patient.Patient, error)
	Update(ctx context.Context, p *patient.Patient) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type DepartmentRepository interface {
	Create(ctx context.Context, d *department.Department) error
	FindByID(ctx context.Context, id uuid.UUID) (*department.Department, error)
	Update(ctx context.Context, d *department.Department) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type DisplayRepository interface {
	Create(ctx context.Context, b *display.Board) error
	FindByID(ctx context.Context, id uuid.UUID) (*display.Board, error)
	Update(ctx context.Context, b *display.Board) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, msg OutboxMessage) error
}
