package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "hospital-ops/internal/handler/dto/request"
	resdto "hospital-ops/internal/handler/dto/response"
	"hospital-ops/internal/handler/httperr"
	"hospital-ops/internal/pkg/config"
	"hospital-ops/internal/usecase/commands"
	"hospital-ops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PatientHandler struct {
	cmds         commands.PatientCommands
	q            queries.PatientQueries
	defaultLimit int
}

func NewPatientHandler(cmds commands.PatientCommands, q queries.PatientQueries, cfg config.Config) *PatientHandler {
	return &PatientHandler{cmds: cmds, q: q, defaultLimit: cfg.Hospital.DefaultPageLimit}
}

// @Summary List patients
// @Description Newest first with keyset pagination
// @Tags patients
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items"
// @Param after query string false "Cursor returned as nextCursor by the previous page"
// @Success 200 {object} resdto.PatientListResponse
// @Failure 400 {object} httperr.Response
// @Router /patients [get]
func (h *PatientHandler) List(c *gin.Context) {
	limit := h.defaultLimit
	if v := c.Query("limit"); v != "" {
		iv, err := strconv.Atoi(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = iv
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	views, next, err := h.q.List(c.Request.Context(), cursor, limit)
	if err != nil {
		h.handlePatientError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPatientPage(views, next))
}

// @Summary Get patient
// @Tags patients
// @Produce json
// @Security BearerAuth
// @Param id path string true "Patient ID"
// @Success 200 {object} resdto.PatientResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /patients/{id} [get]
func (h *PatientHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "patient")
	if !ok {
		return
	}
	h.respondWithPatient(c, http.StatusOK, id)
}

// @Summary Register patient
// @Tags patients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePatientRequest true "Patient"
// @Success 201 {object} resdto.PatientResponse
// @Failure 400 {object} httperr.Response
// @Router /patients [post]
func (h *PatientHandler) Create(c *gin.Context) {
	var req reqdto.CreatePatientRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.handlePatientError(c, err)
		return
	}
	h.respondWithPatient(c, http.StatusCreated, id)
}

// @Summary Update patient
// @Tags patients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Patient ID"
// @Param request body reqdto.UpdatePatientRequest true "Fields to change"
// @Success 200 {object} resdto.PatientResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /patients/{id} [put]
func (h *PatientHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "patient")
	if !ok {
		return
	}
	var req reqdto.UpdatePatientRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.Update(c.Request.Context(), id, req.ToInput()); err != nil {
		h.handlePatientError(c, err)
		return
	}
	h.respondWithPatient(c, http.StatusOK, id)
}

// @Summary Add medical record
// @Tags patients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Patient ID"
// @Param request body reqdto.MedicalRecordRequest true "Medical record"
// @Success 200 {object} resdto.PatientResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /patients/{id}/medical-history [post]
func (h *PatientHandler) AddMedicalRecord(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "patient")
	if !ok {
		return
	}
	var req reqdto.MedicalRecordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.AddMedicalRecord(c.Request.Context(), id, req.ToInput()); err != nil {
		h.handlePatientError(c, err)
		return
	}
	h.respondWithPatient(c, http.StatusOK, id)
}

// @Summary Delete patient
// @Tags patients
// @Security BearerAuth
// @Param id path string true "Patient ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /patients/{id} [delete]
func (h *PatientHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "patient")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		h.handlePatientError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PatientHandler) respondWithPatient(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handlePatientError(c, err)
		return
	}
	c.JSON(status, resdto.FromPatientView(view))
}

func (h *PatientHandler) handlePatientError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrPatientNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Patient not found", nil)
	case errors.Is(err, queries.ErrInvalidCursor):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
	case errors.Is(err, commands.ErrPatientHasEmergencies):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Patient still has emergency cases", nil)
	default:
		abortWithCategory(c, err)
	}
}
