//go:build unit

package api_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"hospital-ops/internal/domain/theatre"
	"hospital-ops/internal/handler"
	"hospital-ops/internal/handler/api"
	resdto "hospital-ops/internal/handler/dto/response"
	"hospital-ops/internal/usecase/commands"
	"hospital-ops/internal/usecase/queries"
	"hospital-ops/tests/common/builder"
	"hospital-ops/tests/common/httptest"
	"hospital-ops/tests/common/testutil"
	commandsmock "hospital-ops/tests/mock/commands"
	queriesmock "hospital-ops/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TheatreHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTheatreCommands
	mockQueries  *queriesmock.MockTheatreQueries
	handler      *api.TheatreHandler
}

func (s *TheatreHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(handler.RegisterValidators())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTheatreCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockTheatreQueries(s.mockCtrl)
	s.handler = api.NewTheatreHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/operation-theatres", s.handler.Create)
	s.router.GET("/operation-theatres/:otId", s.handler.Get)
	s.router.GET("/operation-theatres/:otId/schedule", s.handler.GetSchedule)
	s.router.POST("/operation-theatres/:otId/schedule", s.handler.Schedule)
	s.router.POST("/operation-theatres/:otId/emergency", s.handler.DeclareEmergency)
}

func (s *TheatreHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTheatreHandlerSuite(t *testing.T) {
	suite.Run(t, new(TheatreHandlerTestSuite))
}

func (s *TheatreHandlerTestSuite) TestCreate() {
	b := builder.NewTheatreBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	s.Run("success: returns 201 with the stored theatre", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody.ToInput()).Return(view.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/operation-theatres", reqBody, "")

		var response resdto.TheatreResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("OT-1", response.Name)
		s.Len(response.Equipment, 1)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
			field  string
		}{
			{name: "missing name", mutate: testutil.Field("name", nil), field: "name"},
			{name: "blank name", mutate: testutil.Field("name", "   "), field: "name"},
			{name: "unknown equipment status", mutate: testutil.Field("equipment", []map[string]any{{"name": "Ventilator", "status": "broken"}}), field: "status"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/operation-theatres", requestMap, "")
				httptest.AssertFieldErrors(s.T(), rec, tc.field)
			})
		}
	})

	s.Run("error: duplicate name", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, commands.ErrDuplicateTheatreName).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/operation-theatres", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Operation theatre name already exists")
	})
}

func (s *TheatreHandlerTestSuite) TestGet() {
	s.Run("error: invalid theatre ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/operation-theatres/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid theatre ID format")
	})

	s.Run("error: not found", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrTheatreNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/operation-theatres/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Operation theatre not found")
	})
}

func (s *TheatreHandlerTestSuite) TestGetSchedule() {
	view := builder.NewTheatreBuilder().BuildView()

	s.Run("success: returns the schedule entries", func() {
		s.mockQueries.EXPECT().GetSchedule(gomock.Any(), view.ID).Return(view.Schedule, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, fmt.Sprintf("/operation-theatres/%s/schedule", view.ID), nil, "")

		var response []resdto.ScheduleEntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(view.Schedule[0].SurgeryID, response[0].SurgeryID)
		s.Equal("scheduled", response[0].Status)
	})
}

func (s *TheatreHandlerTestSuite) TestSchedule() {
	b := builder.NewTheatreBuilder()
	reqBody := b.BuildScheduleRequestDTO()
	view := b.BuildView()
	url := fmt.Sprintf("/operation-theatres/%s/schedule", view.ID)

	s.Run("success: returns 201 with the updated theatre", func() {
		s.mockCommands.EXPECT().Schedule(gomock.Any(), view.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, in commands.ScheduleSurgeryInput) (uuid.UUID, error) {
				s.Equal(b.SurgeryID, in.SurgeryID)
				s.True(in.StartTime.Equal(b.Start))
				s.True(in.EndTime.Equal(b.End))
				return uuid.New(), nil
			}).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.TheatreResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Len(response.Schedule, 1)
	})

	s.Run("error: missing surgery ID", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("surgeryId", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "slot conflict", commandsError: theatre.ErrTimeSlotConflict, expectedStatus: http.StatusBadRequest, expectedMsg: "Time slot conflict"},
			{name: "inverted window", commandsError: theatre.ErrInvalidTimeWindow, expectedStatus: http.StatusBadRequest},
			{name: "theatre not found", commandsError: queries.ErrTheatreNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Operation theatre not found"},
			{name: "surgery not found", commandsError: queries.ErrSurgeryNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Surgery not found"},
			{name: "concurrent modification", commandsError: commands.ErrConcurrentModification, expectedStatus: http.StatusConflict, expectedMsg: "modified by another request"},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Schedule(gomock.Any(), view.ID, gomock.Any()).Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *TheatreHandlerTestSuite) TestDeclareEmergency() {
	view := builder.NewTheatreBuilder().With(func(b *builder.TheatreBuilder) { b.Status = "emergency" }).BuildView()
	url := fmt.Sprintf("/operation-theatres/%s/emergency", view.ID)
	surgeryID := uuid.New()

	s.Run("success: returns 200 with the preempted theatre", func() {
		s.mockCommands.EXPECT().DeclareEmergency(gomock.Any(), view.ID, commands.DeclareEmergencyInput{SurgeryID: surgeryID}).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"surgeryId": surgeryID}, "")

		var response resdto.TheatreResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("emergency", response.Status)
	})

	s.Run("error: unknown priority", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"surgeryId": surgeryID, "priority": "critical"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})

	s.Run("error: surgery not found", func() {
		s.mockCommands.EXPECT().DeclareEmergency(gomock.Any(), view.ID, gomock.Any()).Return(queries.ErrSurgeryNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"surgeryId": surgeryID}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Surgery not found")
	})
}
