package emergency

import (
	"strings"
	"time"
)

// VitalSigns is a snapshot; nil readings were not taken.
type VitalSigns struct {
	BloodPressure    string
	HeartRate        *float64
	Temperature      *float64
	OxygenSaturation *float64
	RespiratoryRate  *float64
}

func (v VitalSigns) Validate() error {
	switch {
	case outOfRange(v.HeartRate, 0, 300):
		return ErrInvalidVitals
	case outOfRange(v.Temperature, 25, 45):
		return ErrInvalidVitals
	case outOfRange(v.OxygenSaturation, 0, 100):
		return ErrInvalidVitals
	case outOfRange(v.RespiratoryRate, 0, 100):
		return ErrInvalidVitals
	}
	return nil
}

// Merge keeps earlier readings that the new snapshot does not replace.
func (v VitalSigns) Merge(next VitalSigns) VitalSigns {
	out := v
	if next.BloodPressure != "" {
		out.BloodPressure = next.BloodPressure
	}
	if next.HeartRate != nil {
		out.HeartRate = next.HeartRate
	}
	if next.Temperature != nil {
		out.Temperature = next.Temperature
	}
	if next.OxygenSaturation != nil {
		out.OxygenSaturation = next.OxygenSaturation
	}
	if next.RespiratoryRate != nil {
		out.RespiratoryRate = next.RespiratoryRate
	}
	return out
}

func outOfRange(v *float64, lo, hi float64) bool {
	return v != nil && (*v < lo || *v > hi)
}

type Treatment struct {
	Procedure  string
	Medication string
	Notes      string
	Timestamp  time.Time
}

func NewTreatment(procedure, medication, notes string, at time.Time) (Treatment, error) {
	t := Treatment{
		Procedure:  strings.TrimSpace(procedure),
		Medication: strings.TrimSpace(medication),
		Notes:      strings.TrimSpace(notes),
		Timestamp:  at,
	}
	if t.Procedure == "" && t.Medication == "" {
		return Treatment{}, ErrInvalidTreatment
	}
	return t, nil
}
