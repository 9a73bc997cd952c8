package api

import (
	"errors"
	"net/http"

	"hospital-ops/internal/domain/surgery"
	reqdto "hospital-ops/internal/handler/dto/request"
	resdto "hospital-ops/internal/handler/dto/response"
	"hospital-ops/internal/handler/httperr"
	"hospital-ops/internal/usecase/commands"
	"hospital-ops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SurgeryHandler struct {
	cmds commands.SurgeryCommands
	q    queries.SurgeryQueries
}

func NewSurgeryHandler(cmds commands.SurgeryCommands, q queries.SurgeryQueries) *SurgeryHandler {
	return &SurgeryHandler{cmds: cmds, q: q}
}

// @Summary List surgeries
// @Tags surgeries
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Success 200 {array} resdto.SurgeryResponse
// @Failure 400 {object} httperr.Response
// @Router /surgeries [get]
func (h *SurgeryHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.handleSurgeryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSurgeryViews(views))
}

// @Summary Get surgery
// @Tags surgeries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Surgery ID"
// @Success 200 {object} resdto.SurgeryResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /surgeries/{id} [get]
func (h *SurgeryHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "surgery")
	if !ok {
		return
	}
	h.respondWithSurgery(c, http.StatusOK, id)
}

// @Summary Create surgery
// @Tags surgeries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSurgeryRequest true "Surgery"
// @Success 201 {object} resdto.SurgeryResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /surgeries [post]
func (h *SurgeryHandler) Create(c *gin.Context) {
	var req reqdto.CreateSurgeryRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.handleSurgeryError(c, err)
		return
	}
	h.respondWithSurgery(c, http.StatusCreated, id)
}

// @Summary Update surgery
// @Description Partial update; a status change follows the schedule entry transitions
// @Tags surgeries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Surgery ID"
// @Param request body reqdto.UpdateSurgeryRequest true "Fields to change"
// @Success 200 {object} resdto.SurgeryResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /surgeries/{id} [put]
func (h *SurgeryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "surgery")
	if !ok {
		return
	}
	var req reqdto.UpdateSurgeryRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.Update(c.Request.Context(), id, req.ToInput()); err != nil {
		h.handleSurgeryError(c, err)
		return
	}
	h.respondWithSurgery(c, http.StatusOK, id)
}

// @Summary Delete surgery
// @Tags surgeries
// @Security BearerAuth
// @Param id path string true "Surgery ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /surgeries/{id} [delete]
func (h *SurgeryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "surgery")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		h.handleSurgeryError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SurgeryHandler) respondWithSurgery(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleSurgeryError(c, err)
		return
	}
	c.JSON(status, resdto.FromSurgeryView(view))
}

func (h *SurgeryHandler) handleSurgeryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrSurgeryNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Surgery not found", nil)
	case errors.Is(err, surgery.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status transition", nil)
	default:
		abortWithCategory(c, err)
	}
}
