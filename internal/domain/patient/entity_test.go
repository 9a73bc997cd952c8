//go:build unit

package patient_test

import (
	"testing"
	"time"

	"hospital-ops/internal/domain/patient"
	"hospital-ops/internal/pkg/ptr"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 20, 8, 0, 0, 0, time.UTC)

func params() patient.Params {
	return patient.Params{
		Name:       "Ravi Kumar",
		Age:        42,
		Gender:     patient.GenderMale,
		Contact:    "+91 98450 00000",
		Address:    "12 MG Road",
		BloodGroup: patient.BloodOPos,
	}
}

func TestNewPatient(t *testing.T) {
	t.Run("valid patient starts at version 1 with empty history", func(t *testing.T) {
		p, err := patient.NewPatient(params(), now)
		require.NoError(t, err)
		assert.Equal(t, int32(1), p.Version())
		assert.Empty(t, p.MedicalHistory())
	})

	tests := []struct {
		name   string
		mutate func(*patient.Params)
		errIs  error
	}{
		{name: "age 0 is allowed", mutate: func(p *patient.Params) { p.Age = 0 }},
		{name: "age 150 is allowed", mutate: func(p *patient.Params) { p.Age = 150 }},
		{name: "age 151", mutate: func(p *patient.Params) { p.Age = 151 }, errIs: patient.ErrInvalidAge},
		{name: "negative age", mutate: func(p *patient.Params) { p.Age = -1 }, errIs: patient.ErrInvalidAge},
		{name: "blank name", mutate: func(p *patient.Params) { p.Name = "  " }, errIs: patient.ErrInvalidName},
		{name: "lowercase gender", mutate: func(p *patient.Params) { p.Gender = "male" }, errIs: patient.ErrInvalidGender},
		{name: "missing contact", mutate: func(p *patient.Params) { p.Contact = "" }, errIs: patient.ErrInvalidContact},
		{name: "missing address", mutate: func(p *patient.Params) { p.Address = "" }, errIs: patient.ErrInvalidAddress},
		{name: "unknown blood group", mutate: func(p *patient.Params) { p.BloodGroup = "C+" }, errIs: patient.ErrInvalidBloodGroup},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := params()
			tt.mutate(&p)
			_, err := patient.NewPatient(p, now)
			if tt.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestPatient_Apply(t *testing.T) {
	later := now.Add(time.Hour)

	t.Run("updates only the given fields", func(t *testing.T) {
		p, err := patient.NewPatient(params(), now)
		require.NoError(t, err)

		require.NoError(t, p.Apply(patient.Changes{Age: ptr.Of(43), BloodGroup: ptr.Of(patient.BloodABNeg)}, later))
		assert.Equal(t, 43, p.Age())
		assert.Equal(t, patient.BloodABNeg, p.BloodGroup())
		assert.Equal(t, "Ravi Kumar", p.Name())
		assert.Equal(t, later, p.UpdatedAt())
	})

	t.Run("invalid update is discarded", func(t *testing.T) {
		p, err := patient.NewPatient(params(), now)
		require.NoError(t, err)

		err = p.Apply(patient.Changes{Name: ptr.Of("Someone Else"), Age: ptr.Of(200)}, later)
		require.ErrorIs(t, err, patient.ErrInvalidAge)
		assert.Equal(t, "Ravi Kumar", p.Name())
		assert.Equal(t, now, p.UpdatedAt())
	})
}

func TestPatient_AddMedicalRecord(t *testing.T) {
	p, err := patient.NewPatient(params(), now)
	require.NoError(t, err)

	diagnosed := now.Add(-72 * time.Hour)
	require.NoError(t, p.AddMedicalRecord(patient.MedicalRecord{Condition: " Hypertension ", Date: diagnosed}, now))
	require.NoError(t, p.AddMedicalRecord(patient.MedicalRecord{Condition: "Asthma", Treatment: "Inhaler"}, now))
	require.ErrorIs(t, p.AddMedicalRecord(patient.MedicalRecord{Condition: " "}, now), patient.ErrInvalidRecord)

	want := []patient.MedicalRecord{
		{Condition: "Hypertension", Date: diagnosed},
		{Condition: "Asthma", Treatment: "Inhaler", Date: now},
	}
	if diff := cmp.Diff(want, p.MedicalHistory()); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}

	history := p.MedicalHistory()
	history[0].Condition = "mutated"
	assert.Equal(t, "Hypertension", p.MedicalHistory()[0].Condition)
}
