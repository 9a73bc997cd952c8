//go:build unit

package commands_test

import (
	"context"
	"maps"
	"slices"
	"time"

	"hospital-ops/internal/domain/display"
	"hospital-ops/internal/domain/drug"
	"hospital-ops/internal/domain/emergency"
	"hospital-ops/internal/domain/theatre"
	"hospital-ops/internal/domain/ticket"
	"hospital-ops/internal/infra"
	"hospital-ops/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeUoW keeps aggregates in memory and drops every write of a failed Within call.
type fakeUoW struct {
	theatres    map[uuid.UUID]*theatre.Theatre
	tickets     map[uuid.UUID]*ticket.Ticket
	drugs       map[uuid.UUID]*drug.Drug
	emergencies map[uuid.UUID]*emergency.Case
	boards      map[uuid.UUID]*display.Board
	sequences   map[string]int64
	surgeries   map[uuid.UUID]*shared.SurgerySnapshot
	patients    map[uuid.UUID]*shared.PatientSnapshot
	outbox      []shared.OutboxMessage

	// staleWrites makes every aggregate update lose its version check.
	staleWrites bool
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{
		theatres:    map[uuid.UUID]*theatre.Theatre{},
		tickets:     map[uuid.UUID]*ticket.Ticket{},
		drugs:       map[uuid.UUID]*drug.Drug{},
		emergencies: map[uuid.UUID]*emergency.Case{},
		boards:      map[uuid.UUID]*display.Board{},
		sequences:   map[string]int64{},
		surgeries:   map[uuid.UUID]*shared.SurgerySnapshot{},
		patients:    map[uuid.UUID]*shared.PatientSnapshot{},
	}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	theatres := maps.Clone(u.theatres)
	tickets := maps.Clone(u.tickets)
	drugs := maps.Clone(u.drugs)
	emergencies := maps.Clone(u.emergencies)
	boards := maps.Clone(u.boards)
	sequences := maps.Clone(u.sequences)
	outbox := slices.Clone(u.outbox)

	if err := fn(ctx, &fakeTx{uow: u}); err != nil {
		u.theatres, u.tickets, u.sequences, u.outbox = theatres, tickets, sequences, outbox
		u.drugs, u.emergencies, u.boards = drugs, emergencies, boards
		return err
	}
	return nil
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{uow: u}
}

func (u *fakeUoW) addSurgery(priority string) uuid.UUID {
	id := uuid.New()
	u.surgeries[id] = &shared.SurgerySnapshot{
		ID:          id,
		PatientName: "Jane Doe",
		Procedure:   "Appendectomy",
		Priority:    priority,
		Status:      "scheduled",
	}
	return id
}

func (u *fakeUoW) addPatient(name string) uuid.UUID {
	id := uuid.New()
	u.patients[id] = &shared.PatientSnapshot{ID: id, Name: name}
	return id
}

func (u *fakeUoW) addTheatre(t *theatre.Theatre) {
	u.theatres[t.ID()] = copyTheatre(t, t.Version())
}

func (u *fakeUoW) addDrug(d *drug.Drug) {
	u.drugs[d.ID()] = copyDrug(d, d.Version())
}

func (u *fakeUoW) addEmergency(c *emergency.Case) {
	u.emergencies[c.ID()] = copyCase(c, c.Version())
}

func (u *fakeUoW) addBoard(b *display.Board) {
	u.boards[b.ID()] = copyBoard(b, b.Version())
}

func (u *fakeUoW) messages(topic string) []shared.OutboxMessage {
	var out []shared.OutboxMessage
	for _, m := range u.outbox {
		if m.Topic == topic {
			out = append(out, m)
		}
	}
	return out
}

func copyTheatre(t *theatre.Theatre, version int32) *theatre.Theatre {
	return theatre.ReconstructTheatre(
		t.ID(), t.Name(), t.Status(), t.CurrentSurgeryID(),
		t.Schedule(), t.Equipment(), version, t.CreatedAt(), t.UpdatedAt(),
	)
}

func copyDrug(d *drug.Drug, version int32) *drug.Drug {
	return drug.ReconstructDrug(
		d.ID(), d.Name(), d.Category(), d.Quantity(), d.Unit(), d.ExpiryDate(),
		d.MinimumStock(), d.Supplier(), d.Location(), d.BatchNumber(), d.Price(),
		d.LastRestocked(), version, d.CreatedAt(), d.UpdatedAt(),
	)
}

func copyCase(c *emergency.Case, version int32) *emergency.Case {
	return emergency.ReconstructCase(
		c.ID(), c.PatientID(), c.Type(), c.Severity(), c.Description(), c.AssignedDoctorID(),
		c.Status(), c.Location(), c.Vitals(), c.Treatments(), c.Notes(),
		version, c.CreatedAt(), c.UpdatedAt(),
	)
}

func copyBoard(b *display.Board, version int32) *display.Board {
	return display.ReconstructBoard(
		b.ID(), b.Name(), b.Department(), b.Location(), b.Type(),
		b.Content(), b.Settings(), version, b.CreatedAt(), b.UpdatedAt(),
	)
}

func staleVersion(what string) error {
	return infra.StaleVersion(what + " version changed")
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

type fakeTx struct {
	shared.Tx
	uow *fakeUoW
}

func (tx *fakeTx) Theatres() shared.TheatreRepository      { return &fakeTheatreRepo{uow: tx.uow} }
func (tx *fakeTx) Tickets() shared.TicketRepository        { return &fakeTicketRepo{uow: tx.uow} }
func (tx *fakeTx) Drugs() shared.DrugRepository            { return &fakeDrugRepo{uow: tx.uow} }
func (tx *fakeTx) Emergencies() shared.EmergencyRepository { return &fakeEmergencyRepo{uow: tx.uow} }
func (tx *fakeTx) Displays() shared.DisplayRepository      { return &fakeDisplayRepo{uow: tx.uow} }
func (tx *fakeTx) Outbox() shared.OutboxRepository         { return &fakeOutbox{uow: tx.uow} }
func (tx *fakeTx) Reads() shared.CommandReads              { return &fakeReads{uow: tx.uow} }

type fakeReads struct {
	shared.CommandReads
	uow *fakeUoW
}

func (r *fakeReads) SurgeryByID(_ context.Context, id uuid.UUID) (*shared.SurgerySnapshot, error) {
	s, ok := r.uow.surgeries[id]
	if !ok {
		return nil, notFound("surgery")
	}
	return s, nil
}

func (r *fakeReads) PatientByID(_ context.Context, id uuid.UUID) (*shared.PatientSnapshot, error) {
	p, ok := r.uow.patients[id]
	if !ok {
		return nil, notFound("patient")
	}
	return p, nil
}

type fakeTheatreRepo struct {
	uow *fakeUoW
}

func (r *fakeTheatreRepo) Create(_ context.Context, t *theatre.Theatre) error {
	r.uow.addTheatre(t)
	return nil
}

func (r *fakeTheatreRepo) FindByID(_ context.Context, id uuid.UUID) (*theatre.Theatre, error) {
	t, ok := r.uow.theatres[id]
	if !ok {
		return nil, notFound("theatre")
	}
	return copyTheatre(t, t.Version()), nil
}

func (r *fakeTheatreRepo) Update(_ context.Context, t *theatre.Theatre) error {
	stored, ok := r.uow.theatres[t.ID()]
	if !ok {
		return notFound("theatre")
	}
	if r.uow.staleWrites || stored.Version() != t.Version() {
		return staleVersion("theatre")
	}
	r.uow.theatres[t.ID()] = copyTheatre(t, t.Version()+1)
	return nil
}

type fakeTicketRepo struct {
	uow *fakeUoW
}

func (r *fakeTicketRepo) NextSequence(_ context.Context, day time.Time) (int64, error) {
	key := day.Format(time.DateOnly)
	r.uow.sequences[key]++
	return r.uow.sequences[key], nil
}

func (r *fakeTicketRepo) Create(_ context.Context, t *ticket.Ticket) error {
	r.uow.tickets[t.ID()] = t
	return nil
}

func (r *fakeTicketRepo) FindByID(_ context.Context, id uuid.UUID) (*ticket.Ticket, error) {
	t, ok := r.uow.tickets[id]
	if !ok {
		return nil, notFound("ticket")
	}
	return ticket.ReconstructTicket(t.ID(), t.Number(), t.PatientName(), t.Department(), t.Priority(), t.Status(), t.CreatedAt(), t.UpdatedAt()), nil
}

func (r *fakeTicketRepo) UpdateStatus(_ context.Context, t *ticket.Ticket) error {
	if _, ok := r.uow.tickets[t.ID()]; !ok {
		return notFound("ticket")
	}
	r.uow.tickets[t.ID()] = t
	return nil
}

func (r *fakeTicketRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.uow.tickets[id]; !ok {
		return notFound("ticket")
	}
	delete(r.uow.tickets, id)
	return nil
}

type fakeOutbox struct {
	uow *fakeUoW
}

func (o *fakeOutbox) Enqueue(_ context.Context, msg shared.OutboxMessage) error {
	o.uow.outbox = append(o.uow.outbox, msg)
	return nil
}

type fakeDrugRepo struct {
	uow *fakeUoW
}

func (r *fakeDrugRepo) Create(_ context.Context, d *drug.Drug) error {
	for _, existing := range r.uow.drugs {
		if existing.Name() == d.Name() {
			return infra.WrapRepoErr("drug name taken", nil, infra.KindDuplicateKey)
		}
	}
	r.uow.addDrug(d)
	return nil
}

func (r *fakeDrugRepo) FindByID(_ context.Context, id uuid.UUID) (*drug.Drug, error) {
	d, ok := r.uow.drugs[id]
	if !ok {
		return nil, notFound("drug")
	}
	return copyDrug(d, d.Version()), nil
}

func (r *fakeDrugRepo) Update(_ context.Context, d *drug.Drug) error {
	stored, ok := r.uow.drugs[d.ID()]
	if !ok {
		return notFound("drug")
	}
	if r.uow.staleWrites || stored.Version() != d.Version() {
		return staleVersion("drug")
	}
	r.uow.drugs[d.ID()] = copyDrug(d, d.Version()+1)
	return nil
}

type fakeEmergencyRepo struct {
	uow *fakeUoW
}

func (r *fakeEmergencyRepo) Create(_ context.Context, c *emergency.Case) error {
	r.uow.addEmergency(c)
	return nil
}

func (r *fakeEmergencyRepo) FindByID(_ context.Context, id uuid.UUID) (*emergency.Case, error) {
	c, ok := r.uow.emergencies[id]
	if !ok {
		return nil, notFound("emergency")
	}
	return copyCase(c, c.Version()), nil
}

func (r *fakeEmergencyRepo) Update(_ context.Context, c *emergency.Case) error {
	stored, ok := r.uow.emergencies[c.ID()]
	if !ok {
		return notFound("emergency")
	}
	if r.uow.staleWrites || stored.Version() != c.Version() {
		return staleVersion("emergency")
	}
	r.uow.emergencies[c.ID()] = copyCase(c, c.Version()+1)
	return nil
}

type fakeDisplayRepo struct {
	uow *fakeUoW
}

func (r *fakeDisplayRepo) Create(_ context.Context, b *display.Board) error {
	r.uow.addBoard(b)
	return nil
}

func (r *fakeDisplayRepo) FindByID(_ context.Context, id uuid.UUID) (*display.Board, error) {
	b, ok := r.uow.boards[id]
	if !ok {
		return nil, notFound("display")
	}
	return copyBoard(b, b.Version()), nil
}

func (r *fakeDisplayRepo) Update(_ context.Context, b *display.Board) error {
	stored, ok := r.uow.boards[b.ID()]
	if !ok {
		return notFound("display")
	}
	if r.uow.staleWrites || stored.Version() != b.Version() {
		return staleVersion("display")
	}
	r.uow.boards[b.ID()] = copyBoard(b, b.Version()+1)
	return nil
}
