package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"hospital-ops/internal/infra/db"
	"hospital-ops/internal/infra/readstore"
	"hospital-ops/internal/infra/repository"
	"hospital-ops/internal/pkg/errs"
	"hospital-ops/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes. Aggregates written
// whole are protected by their version column, and the ticket counter by its row lock.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		err = fn(ctx, &pgTx{dbtx: pgxTx})
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked to 63 bits above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	theatreRepo    shared.TheatreRepository
	surgeryRepo    shared.SurgeryRepository
	ticketRepo     shared.TicketRepository
	drugRepo       shared.DrugRepository
	emergencyRepo  shared.EmergencyRepository
	patientRepo    shared.PatientRepository
	departmentRepo shared.DepartmentRepository
	displayRepo    shared.DisplayRepository
	userRepo       shared.UserRepository
	outboxRepo     shared.OutboxRepository
	commandReads   shared.CommandReads
}

func (t *pgTx) Theatres() shared.TheatreRepository {
	if t.theatreRepo == nil {
		t.theatreRepo = repository.NewTheatreRepository(t.dbtx)
	}
	return t.theatreRepo
}

func (t *pgTx) Surgeries() shared.SurgeryRepository {
	if t.surgeryRepo == nil {
		t.surgeryRepo = repository.NewSurgeryRepository(t.dbtx)
	}
	return t.surgeryRepo
}

func (t *pgTx) Tickets() shared.TicketRepository {
	if t.ticketRepo == nil {
		t.ticketRepo = repository.NewTicketRepository(t.dbtx)
	}
	return t.ticketRepo
}

func (t *pgTx) Drugs() shared.DrugRepository {
	if t.drugRepo == nil {
		t.drugRepo = repository.NewDrugRepository(t.dbtx)
	}
	return t.drugRepo
}

func (t *pgTx) Emergencies() shared.EmergencyRepository {
	if t.emergencyRepo == nil {
		t.emergencyRepo = repository.NewEmergencyRepository(t.dbtx)
	}
	return t.emergencyRepo
}

func (t *pgTx) Patients() shared.PatientRepository {
	if t.patientRepo == nil {
		t.patientRepo = repository.NewPatientRepository(t.dbtx)
	}
	return t.patientRepo
}

func (t *pgTx) Departments() shared.DepartmentRepository {
	if t.departmentRepo == nil {
		t.departmentRepo = repository.NewDepartmentRepository(t.dbtx)
	}
	return t.departmentRepo
}

func (t *pgTx) Displays() shared.DisplayRepository {
	if t.displayRepo == nil {
		t.displayRepo = repository.NewDisplayRepository(t.dbtx)
	}
	return t.displayRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.dbtx)
	}
	return t.userRepo
}

func (t *pgTx) Outbox() shared.OutboxRepository {
	if t.outboxRepo == nil {
		t.outboxRepo = repository.NewOutboxRepository(t.dbtx)
	}
	return t.outboxRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	surgeryStore *readstore.SurgeryReadStore
	patientStore *readstore.PatientReadStore
	userStore    *readstore.UserReadStore
}

func (r *commandReads) SurgeryByID(ctx context.Context, id uuid.UUID) (*shared.SurgerySnapshot, error) {
	if r.surgeryStore == nil {
		r.surgeryStore = readstore.NewSurgeryReadStore(r.dbtx)
	}

	s, err := r.surgeryStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.SurgerySnapshot{
		ID:          s.ID,
		PatientName: s.PatientName,
		Procedure:   s.Procedure,
		Priority:    s.Priority,
		Status:      s.Status,
	}, nil
}

func (r *commandReads) PatientByID(ctx context.Context, id uuid.UUID) (*shared.PatientSnapshot, error) {
	if r.patientStore == nil {
		r.patientStore = readstore.NewPatientReadStore(r.dbtx)
	}

	p, err := r.patientStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.PatientSnapshot{ID: p.ID, Name: p.Name}, nil
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.dbtx)
	}

	u, hash, err := r.userStore.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return &shared.UserSnapshot{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: hash,
		Role:         u.Role,
		IsActive:     u.IsActive,
	}, nil
}
