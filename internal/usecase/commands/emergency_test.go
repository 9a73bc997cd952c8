//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hospital-ops/internal/domain/emergency"
	"hospital-ops/internal/pkg/clock"
	"hospital-ops/internal/pkg/errs"
	"hospital-ops/internal/pkg/ptr"
	"hospital-ops/internal/usecase/commands"
	"hospital-ops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEmergency(t *testing.T) (*fakeUoW, *clock.MockClock, commands.EmergencyCommands, uuid.UUID) {
	t.Helper()
	uow := newFakeUoW()
	ec, err := emergency.NewCase(emergency.Params{
		PatientID:   uow.addPatient("Ravi Kumar"),
		Type:        emergency.TypeCardiac,
		Severity:    emergency.SeveritySevere,
		Description: "Chest pain",
		Location:    "ER bay 2",
	}, morning)
	require.NoError(t, err)
	uow.addEmergency(ec)
	clk := clock.NewMockClock(morning.Add(10 * time.Minute))
	return uow, clk, commands.NewEmergencyCommands(uow, clk), ec.ID()
}

func TestEmergencyCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a pending case", func(t *testing.T) {
		uow := newFakeUoW()
		cmds := commands.NewEmergencyCommands(uow, clock.NewMockClock(morning))

		id, err := cmds.Create(ctx, commands.CreateEmergencyInput{
			PatientID:   uow.addPatient("Ravi Kumar"),
			Type:        "trauma",
			Severity:    "critical",
			Description: "Road traffic accident",
			Location:    "ER bay 1",
			VitalSigns:  commands.VitalSignsInput{HeartRate: ptr.Of(120.0)},
		})
		require.NoError(t, err)
		require.Contains(t, uow.emergencies, id)
		assert.Equal(t, emergency.StatusPending, uow.emergencies[id].Status())
	})

	t.Run("unknown patient", func(t *testing.T) {
		uow := newFakeUoW()
		cmds := commands.NewEmergencyCommands(uow, clock.NewMockClock(morning))

		_, err := cmds.Create(ctx, commands.CreateEmergencyInput{
			PatientID:   uuid.New(),
			Type:        "trauma",
			Severity:    "critical",
			Description: "Fall",
			Location:    "ER bay 1",
		})
		require.ErrorIs(t, err, queries.ErrPatientNotFound)
		assert.Empty(t, uow.emergencies)
	})

	t.Run("vitals out of range", func(t *testing.T) {
		uow := newFakeUoW()
		cmds := commands.NewEmergencyCommands(uow, clock.NewMockClock(morning))

		_, err := cmds.Create(ctx, commands.CreateEmergencyInput{
			PatientID:   uow.addPatient("Ravi Kumar"),
			Type:        "trauma",
			Severity:    "critical",
			Description: "Fall",
			Location:    "ER bay 1",
			VitalSigns:  commands.VitalSignsInput{OxygenSaturation: ptr.Of(140.0)},
		})
		require.ErrorIs(t, err, emergency.ErrInvalidVitals)
	})
}

func TestEmergencyCommands_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("moves through the status table", func(t *testing.T) {
		uow, clk, cmds, id := setupEmergency(t)

		require.NoError(t, cmds.Update(ctx, id, commands.UpdateEmergencyInput{Status: ptr.Of("in-progress"), Severity: ptr.Of("critical")}))
		ec := uow.emergencies[id]
		assert.Equal(t, emergency.StatusInProgress, ec.Status())
		assert.Equal(t, emergency.SeverityCritical, ec.Severity())
		assert.Equal(t, clk.Now(), ec.UpdatedAt())
		assert.Equal(t, int32(2), ec.Version())
	})

	t.Run("invalid transition leaves the case unchanged", func(t *testing.T) {
		uow, _, cmds, id := setupEmergency(t)

		err := cmds.Update(ctx, id, commands.UpdateEmergencyInput{Status: ptr.Of("discharged"), Notes: ptr.Of("early")})
		require.ErrorIs(t, err, emergency.ErrInvalidTransition)
		assert.Equal(t, emergency.StatusPending, uow.emergencies[id].Status())
		assert.Empty(t, uow.emergencies[id].Notes())
	})

	t.Run("unknown case", func(t *testing.T) {
		_, _, cmds, _ := setupEmergency(t)
		err := cmds.Update(ctx, uuid.New(), commands.UpdateEmergencyInput{Notes: ptr.Of("x")})
		require.ErrorIs(t, err, queries.ErrEmergencyNotFound)
	})

	t.Run("lost version race", func(t *testing.T) {
		uow, _, cmds, id := setupEmergency(t)
		uow.staleWrites = true

		err := cmds.Update(ctx, id, commands.UpdateEmergencyInput{Severity: ptr.Of("mild")})
		require.ErrorIs(t, err, commands.ErrConcurrentModification)
		assert.True(t, errs.Is(err, errs.ErrConcurrentModification))
		assert.Equal(t, emergency.SeveritySevere, uow.emergencies[id].Severity())
		assert.Equal(t, int32(1), uow.emergencies[id].Version())
	})
}

func TestEmergencyCommands_AddTreatment(t *testing.T) {
	ctx := context.Background()

	t.Run("timestamp defaults to now", func(t *testing.T) {
		uow, clk, cmds, id := setupEmergency(t)

		require.NoError(t, cmds.AddTreatment(ctx, id, commands.TreatmentInput{Medication: "Aspirin 300mg"}))
		treatments := uow.emergencies[id].Treatments()
		require.Len(t, treatments, 1)
		assert.Equal(t, "Aspirin 300mg", treatments[0].Medication)
		assert.Equal(t, clk.Now(), treatments[0].Timestamp)
	})

	t.Run("closed case refuses treatment", func(t *testing.T) {
		uow, _, cmds, id := setupEmergency(t)
		require.NoError(t, cmds.Update(ctx, id, commands.UpdateEmergencyInput{Status: ptr.Of("transferred")}))

		err := cmds.AddTreatment(ctx, id, commands.TreatmentInput{Procedure: "ECG"})
		require.ErrorIs(t, err, emergency.ErrCaseClosed)
		assert.Empty(t, uow.emergencies[id].Treatments())
	})

	t.Run("lost version race drops the treatment", func(t *testing.T) {
		uow, _, cmds, id := setupEmergency(t)
		uow.staleWrites = true

		err := cmds.AddTreatment(ctx, id, commands.TreatmentInput{Procedure: "ECG"})
		require.ErrorIs(t, err, commands.ErrConcurrentModification)
		assert.Empty(t, uow.emergencies[id].Treatments())
	})
}

func TestEmergencyCommands_RecordVitals(t *testing.T) {
	ctx := context.Background()
	uow, _, cmds, id := setupEmergency(t)

	require.NoError(t, cmds.RecordVitals(ctx, id, commands.VitalSignsInput{BloodPressure: "140/90", HeartRate: ptr.Of(98.0)}))
	require.NoError(t, cmds.RecordVitals(ctx, id, commands.VitalSignsInput{HeartRate: ptr.Of(88.0)}))

	vitals := uow.emergencies[id].Vitals()
	assert.Equal(t, "140/90", vitals.BloodPressure)
	require.NotNil(t, vitals.HeartRate)
	assert.Equal(t, 88.0, *vitals.HeartRate)

	err := cmds.RecordVitals(ctx, id, commands.VitalSignsInput{Temperature: ptr.Of(50.0)})
	require.ErrorIs(t, err, emergency.ErrInvalidVitals)
}
