package converter

import (
	"encoding/json"
	"time"

	"hospital-ops/internal/domain/patient"
)

type MedicalRecordDoc struct {
	Condition string    `json:"condition"`
	Diagnosis string    `json:"diagnosis,omitempty"`
	Treatment string    `json:"treatment,omitempty"`
	Date      time.Time `json:"date"`
}

func HistoryToJSON(records []patient.MedicalRecord) ([]byte, error) {
	docs := make([]MedicalRecordDoc, 0, len(records))
	for _, r := range records {
		docs = append(docs, MedicalRecordDoc(r))
	}
	return json.Marshal(docs)
}

func HistoryFromJSON(raw []byte) ([]patient.MedicalRecord, error) {
	var docs []MedicalRecordDoc
	if err := unmarshalList(raw, &docs); err != nil {
		return nil, err
	}
	records := make([]patient.MedicalRecord, 0, len(docs))
	for _, d := range docs {
		records = append(records, patient.MedicalRecord(d))
	}
	return records, nil
}
