package api

import (
	"errors"
	"net/http"

	"hospital-ops/internal/domain/emergency"
	reqdto "hospital-ops/internal/handler/dto/request"
	resdto "hospital-ops/internal/handler/dto/response"
	"hospital-ops/internal/handler/httperr"
	"hospital-ops/internal/usecase/commands"
	"hospital-ops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EmergencyHandler struct {
	cmds commands.EmergencyCommands
	q    queries.EmergencyQueries
}

func NewEmergencyHandler(cmds commands.EmergencyCommands, q queries.EmergencyQueries) *EmergencyHandler {
	return &EmergencyHandler{cmds: cmds, q: q}
}

// @Summary List emergency cases
// @Tags emergency
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Success 200 {array} resdto.EmergencyResponse
// @Failure 400 {object} httperr.Response
// @Router /emergency [get]
func (h *EmergencyHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.handleEmergencyError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEmergencyViews(views))
}

// @Summary Get emergency case
// @Tags emergency
// @Produce json
// @Security BearerAuth
// @Param id path string true "Emergency case ID"
// @Success 200 {object} resdto.EmergencyResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /emergency/{id} [get]
func (h *EmergencyHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "emergency case")
	if !ok {
		return
	}
	h.respondWithCase(c, http.StatusOK, id)
}

// @Summary Open emergency case
// @Tags emergency
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEmergencyRequest true "Emergency case"
// @Success 201 {object} resdto.EmergencyResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /emergency [post]
func (h *EmergencyHandler) Create(c *gin.Context) {
	var req reqdto.CreateEmergencyRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.handleEmergencyError(c, err)
		return
	}
	h.respondWithCase(c, http.StatusCreated, id)
}

// @Summary Update emergency case
// @Tags emergency
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Emergency case ID"
// @Param request body reqdto.UpdateEmergencyRequest true "Fields to change"
// @Success 200 {object} resdto.EmergencyResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /emergency/{id} [put]
func (h *EmergencyHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "emergency case")
	if !ok {
		return
	}
	var req reqdto.UpdateEmergencyRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.Update(c.Request.Context(), id, req.ToInput()); err != nil {
		h.handleEmergencyError(c, err)
		return
	}
	h.respondWithCase(c, http.StatusOK, id)
}

// @Summary Add treatment
// @Tags emergency
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Emergency case ID"
// @Param request body reqdto.TreatmentRequest true "Treatment"
// @Success 200 {object} resdto.EmergencyResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /emergency/{id}/treatment [post]
func (h *EmergencyHandler) AddTreatment(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "emergency case")
	if !ok {
		return
	}
	var req reqdto.TreatmentRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.AddTreatment(c.Request.Context(), id, req.ToInput()); err != nil {
		h.handleEmergencyError(c, err)
		return
	}
	h.respondWithCase(c, http.StatusOK, id)
}

// @Summary Record vital signs
// @Tags emergency
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Emergency case ID"
// @Param request body reqdto.VitalSignsRequest true "Vital signs"
// @Success 200 {object} resdto.EmergencyResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /emergency/{id}/vital-signs [put]
func (h *EmergencyHandler) RecordVitals(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "emergency case")
	if !ok {
		return
	}
	var req reqdto.VitalSignsRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.RecordVitals(c.Request.Context(), id, req.ToInput()); err != nil {
		h.handleEmergencyError(c, err)
		return
	}
	h.respondWithCase(c, http.StatusOK, id)
}

func (h *EmergencyHandler) respondWithCase(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleEmergencyError(c, err)
		return
	}
	c.JSON(status, resdto.FromEmergencyView(view))
}

func (h *EmergencyHandler) handleEmergencyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrEmergencyNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Emergency case not found", nil)
	case errors.Is(err, queries.ErrPatientNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Patient not found", nil)
	case errors.Is(err, commands.ErrDoctorNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Assigned doctor not found", nil)
	case errors.Is(err, emergency.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status transition", nil)
	default:
		abortWithCategory(c, err)
	}
}
