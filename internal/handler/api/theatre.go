package api

import (
	"errors"
	"net/http"

	"hospital-ops/internal/domain/theatre"
	reqdto "hospital-ops/internal/handler/dto/request"
	resdto "hospital-ops/internal/handler/dto/response"
	"hospital-ops/internal/handler/httperr"
	"hospital-ops/internal/usecase/commands"
	"hospital-ops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TheatreHandler struct {
	cmds commands.TheatreCommands
	q    queries.TheatreQueries
}

func NewTheatreHandler(cmds commands.TheatreCommands, q queries.TheatreQueries) *TheatreHandler {
	return &TheatreHandler{cmds: cmds, q: q}
}

// @Summary List operation theatres
// @Description All theatres with their current surgery and schedule
// @Tags operation-theatres
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.TheatreResponse
// @Failure 401 {object} httperr.Response
// @Router /operation-theatres [get]
func (h *TheatreHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		h.handleTheatreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTheatreViews(views))
}

// @Summary Get operation theatre
// @Tags operation-theatres
// @Produce json
// @Security BearerAuth
// @Param otId path string true "Theatre ID"
// @Success 200 {object} resdto.TheatreResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /operation-theatres/{otId} [get]
func (h *TheatreHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "otId", "theatre")
	if !ok {
		return
	}
	h.respondWithTheatre(c, http.StatusOK, id)
}

// @Summary Create operation theatre
// @Tags operation-theatres
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTheatreRequest true "Theatre"
// @Success 201 {object} resdto.TheatreResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /operation-theatres [post]
func (h *TheatreHandler) Create(c *gin.Context) {
	var req reqdto.CreateTheatreRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.handleTheatreError(c, err)
		return
	}
	h.respondWithTheatre(c, http.StatusCreated, id)
}

// @Summary Get theatre schedule
// @Description Schedule entries in insertion order, each with its surgery summary
// @Tags operation-theatres
// @Produce json
// @Security BearerAuth
// @Param otId path string true "Theatre ID"
// @Success 200 {array} resdto.ScheduleEntryResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /operation-theatres/{otId}/schedule [get]
func (h *TheatreHandler) GetSchedule(c *gin.Context) {
	id, ok := parseIDParam(c, "otId", "theatre")
	if !ok {
		return
	}

	entries, err := h.q.GetSchedule(c.Request.Context(), id)
	if err != nil {
		h.handleTheatreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromScheduleViews(entries))
}

// @Summary Schedule surgery
// @Description Book a surgery into a free slot of the theatre
// @Tags operation-theatres
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param otId path string true "Theatre ID"
// @Param request body reqdto.ScheduleSurgeryRequest true "Slot"
// @Success 201 {object} resdto.TheatreResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /operation-theatres/{otId}/schedule [post]
func (h *TheatreHandler) Schedule(c *gin.Context) {
	id, ok := parseIDParam(c, "otId", "theatre")
	if !ok {
		return
	}
	var req reqdto.ScheduleSurgeryRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.cmds.Schedule(c.Request.Context(), id, req.ToInput()); err != nil {
		h.handleTheatreError(c, err)
		return
	}
	h.respondWithTheatre(c, http.StatusCreated, id)
}

// @Summary Change theatre status
// @Tags operation-theatres
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param otId path string true "Theatre ID"
// @Param request body reqdto.ChangeTheatreStatusRequest true "Status"
// @Success 200 {object} resdto.TheatreResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /operation-theatres/{otId}/status [patch]
func (h *TheatreHandler) ChangeStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "otId", "theatre")
	if !ok {
		return
	}
	var req reqdto.ChangeTheatreStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.ChangeStatus(c.Request.Context(), id, req.ToInput()); err != nil {
		h.handleTheatreError(c, err)
		return
	}
	h.respondWithTheatre(c, http.StatusOK, id)
}

// @Summary Change schedule entry status
// @Tags operation-theatres
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param otId path string true "Theatre ID"
// @Param entryId path string true "Schedule entry ID"
// @Param request body reqdto.ChangeEntryStatusRequest true "Status"
// @Success 200 {object} resdto.TheatreResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /operation-theatres/{otId}/schedule/{entryId}/status [patch]
func (h *TheatreHandler) ChangeEntryStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "otId", "theatre")
	if !ok {
		return
	}
	entryID, ok := parseIDParam(c, "entryId", "schedule entry")
	if !ok {
		return
	}
	var req reqdto.ChangeEntryStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.ChangeEntryStatus(c.Request.Context(), id, entryID, req.Status); err != nil {
		h.handleTheatreError(c, err)
		return
	}
	h.respondWithTheatre(c, http.StatusOK, id)
}

// @Summary Declare emergency
// @Description Preempt the theatre: open scheduled entries are discarded and the emergency surgery starts now
// @Tags operation-theatres
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param otId path string true "Theatre ID"
// @Param request body reqdto.DeclareEmergencyRequest true "Emergency surgery"
// @Success 200 {object} resdto.TheatreResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /operation-theatres/{otId}/emergency [post]
func (h *TheatreHandler) DeclareEmergency(c *gin.Context) {
	id, ok := parseIDParam(c, "otId", "theatre")
	if !ok {
		return
	}
	var req reqdto.DeclareEmergencyRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.DeclareEmergency(c.Request.Context(), id, req.ToInput()); err != nil {
		h.handleTheatreError(c, err)
		return
	}
	h.respondWithTheatre(c, http.StatusOK, id)
}

func (h *TheatreHandler) respondWithTheatre(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleTheatreError(c, err)
		return
	}
	c.JSON(status, resdto.FromTheatreView(view))
}

func (h *TheatreHandler) handleTheatreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrTheatreNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Operation theatre not found", nil)
	case errors.Is(err, queries.ErrSurgeryNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Surgery not found", nil)
	case errors.Is(err, theatre.ErrEntryNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Schedule entry not found", nil)
	case errors.Is(err, theatre.ErrTimeSlotConflict):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Time slot conflict", nil)
	case errors.Is(err, theatre.ErrInvalidTransition), errors.Is(err, theatre.ErrInvalidEntryChange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status transition", nil)
	case errors.Is(err, commands.ErrDuplicateTheatreName):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Operation theatre name already exists", nil)
	default:
		abortWithCategory(c, err)
	}
}
