package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command read operations
type SurgerySnapshot struct {
	ID          uuid.UUID
	PatientName string
	Procedure   string
	Priority    string
	Status      string
}

type PatientSnapshot struct {
	ID   uuid.UUID
	Name string
}

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}

// OutboxMessage is an integration event stored next to the aggregate write that produced it.
type OutboxMessage struct {
	ID      uuid.UUID
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}
