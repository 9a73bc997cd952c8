package response

import (
	"time"

	"hospital-ops/internal/usecase/queries"

	"github.com/google/uuid"
)

type SurgerySummaryResponse struct {
	ID          uuid.UUID `json:"id"`
	PatientName string    `json:"patientName"`
	Procedure   string    `json:"procedure"`
	Surgeon     string    `json:"surgeon"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
}

type ScheduleEntryResponse struct {
	ID        uuid.UUID               `json:"id"`
	SurgeryID uuid.UUID               `json:"surgeryId"`
	Surgery   *SurgerySummaryResponse `json:"surgery,omitempty"`
	StartTime time.Time               `json:"startTime"`
	EndTime   *time.Time              `json:"endTime"`
	Status    string                  `json:"status"`
}

type EquipmentResponse struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

type TheatreResponse struct {
	ID             uuid.UUID                `json:"id"`
	Name           string                   `json:"name"`
	Status         string                   `json:"status"`
	CurrentSurgery *SurgerySummaryResponse  `json:"currentSurgery,omitempty"`
	Schedule       []*ScheduleEntryResponse `json:"schedule"`
	Equipment      []*EquipmentResponse     `json:"equipment"`
	Version        int32                    `json:"version"`
	CreatedAt      time.Time                `json:"createdAt"`
	LastUpdated    time.Time                `json:"lastUpdated"`
}

type TheatreFeedResponse struct {
	GeneratedAt time.Time          `json:"generatedAt"`
	Theatres    []*TheatreResponse `json:"theatres"`
}

func FromTheatreView(v *queries.TheatreView) *TheatreResponse {
	resp := mapView[TheatreResponse](v)
	if resp.Schedule == nil {
		resp.Schedule = []*ScheduleEntryResponse{}
	}
	if resp.Equipment == nil {
		resp.Equipment = []*EquipmentResponse{}
	}
	return resp
}

func FromTheatreViews(vs []*queries.TheatreView) []*TheatreResponse {
	out := make([]*TheatreResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromTheatreView(v))
	}
	return out
}

func FromScheduleViews(vs []queries.ScheduleEntryView) []*ScheduleEntryResponse {
	out := make([]*ScheduleEntryResponse, 0, len(vs))
	for i := range vs {
		out = append(out, mapView[ScheduleEntryResponse](&vs[i]))
	}
	return out
}

func FromTheatreFeedView(v *queries.TheatreFeedView) *TheatreFeedResponse {
	resp := &TheatreFeedResponse{
		GeneratedAt: v.GeneratedAt,
		Theatres:    make([]*TheatreResponse, 0, len(v.Theatres)),
	}
	for i := range v.Theatres {
		resp.Theatres = append(resp.Theatres, FromTheatreView(&v.Theatres[i]))
	}
	return resp
}
