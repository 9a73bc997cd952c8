package converter

import (
	"encoding/json"
	"time"

	"hospital-ops/internal/domain/theatre"

	"github.com/google/uuid"
)

// JSON documents stored in operation_theatres.schedule and operation_theatres.equipment.
// Keys match the read-side views so read stores can decode them directly.
type ScheduleEntryDoc struct {
	ID        uuid.UUID  `json:"id"`
	SurgeryID uuid.UUID  `json:"surgeryId"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Status    string     `json:"status"`
}

type EquipmentDoc struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

func ScheduleToJSON(entries []theatre.ScheduleEntry) ([]byte, error) {
	docs := make([]ScheduleEntryDoc, 0, len(entries))
	for _, e := range entries {
		docs = append(docs, ScheduleEntryDoc{
			ID:        e.ID(),
			SurgeryID: e.SurgeryID(),
			StartTime: e.StartTime(),
			EndTime:   e.EndTime(),
			Status:    string(e.Status()),
		})
	}
	return json.Marshal(docs)
}

func ScheduleFromJSON(raw []byte) ([]theatre.ScheduleEntry, error) {
	var docs []ScheduleEntryDoc
	if err := unmarshalList(raw, &docs); err != nil {
		return nil, err
	}
	entries := make([]theatre.ScheduleEntry, 0, len(docs))
	for _, d := range docs {
		status, err := theatre.NewEntryStatus(d.Status)
		if err != nil {
			return nil, err
		}
		entries = append(entries, theatre.ReconstructScheduleEntry(d.ID, d.SurgeryID, d.StartTime, d.EndTime, status))
	}
	return entries, nil
}

func EquipmentToJSON(items []theatre.Equipment) ([]byte, error) {
	docs := make([]EquipmentDoc, 0, len(items))
	for _, e := range items {
		docs = append(docs, EquipmentDoc{Name: e.Name(), Status: string(e.Status())})
	}
	return json.Marshal(docs)
}

func EquipmentFromJSON(raw []byte) ([]theatre.Equipment, error) {
	var docs []EquipmentDoc
	if err := unmarshalList(raw, &docs); err != nil {
		return nil, err
	}
	items := make([]theatre.Equipment, 0, len(docs))
	for _, d := range docs {
		e, err := theatre.NewEquipment(d.Name, theatre.EquipmentStatus(d.Status))
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, nil
}

func unmarshalList[T any](raw []byte, dst *[]T) error {
	if len(raw) == 0 {
		*dst = []T{}
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return err
	}
	if *dst == nil {
		*dst = []T{}
	}
	return nil
}
