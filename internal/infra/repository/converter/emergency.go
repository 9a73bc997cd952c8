package converter

import (
	"encoding/json"
	"time"

	"hospital-ops/internal/domain/emergency"
)

type VitalSignsDoc struct {
	BloodPressure    string   `json:"bloodPressure,omitempty"`
	HeartRate        *float64 `json:"heartRate,omitempty"`
	Temperature      *float64 `json:"temperature,omitempty"`
	OxygenSaturation *float64 `json:"oxygenSaturation,omitempty"`
	RespiratoryRate  *float64 `json:"respiratoryRate,omitempty"`
}

type TreatmentDoc struct {
	Procedure  string    `json:"procedure,omitempty"`
	Medication string    `json:"medication,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

func VitalsToJSON(v emergency.VitalSigns) ([]byte, error) {
	return json.Marshal(VitalSignsDoc(v))
}

func VitalsFromJSON(raw []byte) (emergency.VitalSigns, error) {
	var doc VitalSignsDoc
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &doc); err != nil {
			return emergency.VitalSigns{}, err
		}
	}
	return emergency.VitalSigns(doc), nil
}

func TreatmentsToJSON(ts []emergency.Treatment) ([]byte, error) {
	docs := make([]TreatmentDoc, 0, len(ts))
	for _, t := range ts {
		docs = append(docs, TreatmentDoc(t))
	}
	return json.Marshal(docs)
}

func TreatmentsFromJSON(raw []byte) ([]emergency.Treatment, error) {
	var docs []TreatmentDoc
	if err := unmarshalList(raw, &docs); err != nil {
		return nil, err
	}
	ts := make([]emergency.Treatment, 0, len(docs))
	for _, d := range docs {
		ts = append(ts, emergency.Treatment(d))
	}
	return ts, nil
}
