//go:build unit || e2e

package builder

import (
	"time"

	reqdto "hospital-ops/internal/handler/dto/request"
	"hospital-ops/internal/usecase/queries"

	"github.com/google/uuid"
)

type TheatreBuilder struct {
	ID        uuid.UUID
	Name      string
	Status    string
	SurgeryID uuid.UUID
	Start     time.Time
	End       time.Time
}

func NewTheatreBuilder() *TheatreBuilder {
	start := time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC)
	return &TheatreBuilder{
		ID:        uuid.New(),
		Name:      "OT-1",
		Status:    "available",
		SurgeryID: uuid.New(),
		Start:     start,
		End:       start.Add(time.Hour),
	}
}

func (b *TheatreBuilder) With(mutate func(*TheatreBuilder)) *TheatreBuilder {
	mutate(b)
	return b
}

func (b *TheatreBuilder) BuildCreateRequestDTO() reqdto.CreateTheatreRequest {
	return reqdto.CreateTheatreRequest{
		Name:      b.Name,
		Equipment: []reqdto.EquipmentRequest{{Name: "Anesthesia machine", Status: "available"}},
	}
}

func (b *TheatreBuilder) BuildScheduleRequestDTO() reqdto.ScheduleSurgeryRequest {
	return reqdto.ScheduleSurgeryRequest{
		SurgeryID: b.SurgeryID,
		StartTime: b.Start,
		EndTime:   b.End,
	}
}

func (b *TheatreBuilder) BuildView() *queries.TheatreView {
	end := b.End
	return &queries.TheatreView{
		ID:     b.ID,
		Name:   b.Name,
		Status: b.Status,
		Schedule: []queries.ScheduleEntryView{{
			ID:        uuid.New(),
			SurgeryID: b.SurgeryID,
			StartTime: b.Start,
			EndTime:   &end,
			Status:    "scheduled",
		}},
		Equipment:   []queries.EquipmentView{{Name: "Anesthesia machine", Status: "available"}},
		Version:     1,
		CreatedAt:   b.Start.Add(-24 * time.Hour),
		LastUpdated: b.Start.Add(-time.Hour),
	}
}
