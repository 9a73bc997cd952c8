//go:build e2e

package theatre_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"hospital-ops/internal/domain/user"
	"hospital-ops/internal/handler/dto/request"
	"hospital-ops/internal/handler/dto/response"
	"hospital-ops/tests/common/authtest"
	"hospital-ops/tests/common/builder"
	"hospital-ops/tests/common/dbtest"
	"hospital-ops/tests/common/httptest"
	"hospital-ops/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	theatresURL  = "/api/operation-theatres"
	scheduleURL  = "/api/operation-theatres/%s/schedule"
	emergencyURL = "/api/operation-theatres/%s/emergency"
)

type theatreSuite struct {
	e2e.SharedSuite
}

func TestTheatreSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(theatreSuite))
}

func (s *theatreSuite) createTheatre(t *testing.T, token, name string) uuid.UUID {
	t.Helper()
	req := builder.NewTheatreBuilder().With(func(b *builder.TheatreBuilder) { b.Name = name }).BuildCreateRequestDTO()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, theatresURL, req, token)
	var res response.TheatreResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	return res.ID
}

func (s *theatreSuite) schedule(t *testing.T, token string, theatreID, surgeryID uuid.UUID, start, end time.Time) int {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(scheduleURL, theatreID),
		request.ScheduleSurgeryRequest{SurgeryID: surgeryID, StartTime: start, EndTime: end}, token)
	return w.Code
}

func (s *theatreSuite) TestSchedule() {
	day := time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time { return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }

	s.Run("conflicts are rejected and adjacent slots accepted", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "doc@example.com", string(user.RoleAdmin))
		id := s.createTheatre(t, token, "OT-1")

		require.Equal(t, http.StatusCreated, s.schedule(t, token, id, dbtest.CreateTestSurgery(t, s.DB, "A", "normal"), at(10, 0), at(11, 0)))
		require.Equal(t, http.StatusBadRequest, s.schedule(t, token, id, dbtest.CreateTestSurgery(t, s.DB, "B", "normal"), at(10, 30), at(11, 30)))
		require.Equal(t, http.StatusCreated, s.schedule(t, token, id, dbtest.CreateTestSurgery(t, s.DB, "C", "normal"), at(9, 0), at(10, 0)))
		require.Equal(t, http.StatusBadRequest, s.schedule(t, token, id, dbtest.CreateTestSurgery(t, s.DB, "D", "normal"), at(8, 0), at(12, 0)))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(scheduleURL, id), nil, token)
		var entries []response.ScheduleEntryResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &entries)
		require.Len(t, entries, 2)
	})

	s.Run("concurrent bookings of one slot produce a single entry", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "doc@example.com", string(user.RoleAdmin))
		id := s.createTheatre(t, token, "OT-2")

		surgeries := make([]uuid.UUID, 5)
		for i := range surgeries {
			surgeries[i] = dbtest.CreateTestSurgery(t, s.DB, fmt.Sprintf("P%d", i), "normal")
		}

		var wg sync.WaitGroup
		codes := make([]int, len(surgeries))
		for i, sid := range surgeries {
			wg.Add(1)
			go func() {
				defer wg.Done()
				codes[i] = s.schedule(t, token, id, sid, at(14, 0), at(15, 0))
			}()
		}
		wg.Wait()

		created := 0
		for _, c := range codes {
			if c == http.StatusCreated {
				created++
			}
		}
		require.Equal(t, 1, created)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(scheduleURL, id), nil, token)
		var entries []response.ScheduleEntryResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &entries)
		require.Len(t, entries, 1)
	})

	s.Run("nurse cannot schedule", func() {
		t := s.T()
		admin := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
		id := s.createTheatre(t, admin, "OT-3")
		nurse := authtest.CreateAndLogin(t, s.DB, s.Router, "nurse@example.com", string(user.RoleNurse))

		code := s.schedule(t, nurse, id, dbtest.CreateTestSurgery(t, s.DB, "A", "normal"), at(10, 0), at(11, 0))
		require.Equal(t, http.StatusForbidden, code)
	})
}

func (s *theatreSuite) TestDeclareEmergency() {
	s.Run("preempts the schedule", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "doc@example.com", string(user.RoleDoctor))
		admin := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
		id := s.createTheatre(t, admin, "OT-E")

		start := time.Now().UTC().Add(2 * time.Hour).Truncate(time.Minute)
		require.Equal(t, http.StatusCreated, s.schedule(t, token, id, dbtest.CreateTestSurgery(t, s.DB, "A", "normal"), start, start.Add(time.Hour)))
		require.Equal(t, http.StatusCreated, s.schedule(t, token, id, dbtest.CreateTestSurgery(t, s.DB, "B", "normal"), start.Add(2*time.Hour), start.Add(3*time.Hour)))

		emergencyID := dbtest.CreateTestSurgery(t, s.DB, "E", "emergency")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(emergencyURL, id),
			request.DeclareEmergencyRequest{SurgeryID: emergencyID}, token)
		var res response.TheatreResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)

		require.Equal(t, "emergency", res.Status)
		require.Len(t, res.Schedule, 1)
		require.Equal(t, emergencyID, res.Schedule[0].SurgeryID)
		require.Equal(t, "in-progress", res.Schedule[0].Status)
		require.Nil(t, res.Schedule[0].EndTime)

		var events int
		err := s.DB.QueryRow(t.Context(), "SELECT count(*) FROM outbox_events WHERE topic = 'theatre.schedule.discarded'").Scan(&events)
		require.NoError(t, err)
		require.Equal(t, 2, events)
	})

	s.Run("unknown surgery", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
		id := s.createTheatre(t, token, "OT-F")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(emergencyURL, id),
			request.DeclareEmergencyRequest{SurgeryID: uuid.New()}, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Surgery not found")
	})
}
