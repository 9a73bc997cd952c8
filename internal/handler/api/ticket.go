package api

import (
	"errors"
	"net/http"

	"hospital-ops/internal/domain/ticket"
	reqdto "hospital-ops/internal/handler/dto/request"
	resdto "hospital-ops/internal/handler/dto/response"
	"hospital-ops/internal/handler/httperr"
	"hospital-ops/internal/usecase/commands"
	"hospital-ops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TicketHandler struct {
	cmds commands.TicketCommands
	q    queries.TicketQueries
}

func NewTicketHandler(cmds commands.TicketCommands, q queries.TicketQueries) *TicketHandler {
	return &TicketHandler{cmds: cmds, q: q}
}

// @Summary List tokens
// @Description Tickets ordered by priority (emergency first) and then by issue time
// @Tags tokens
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param department query string false "Filter by department"
// @Success 200 {array} resdto.TicketResponse
// @Failure 400 {object} httperr.Response
// @Router /tokens [get]
func (h *TicketHandler) List(c *gin.Context) {
	filters := queries.TicketFilters{
		Status:     c.Query("status"),
		Department: c.Query("department"),
	}
	views, err := h.q.List(c.Request.Context(), filters)
	if err != nil {
		h.handleTicketError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTicketViews(views))
}

// @Summary Issue token
// @Description Issue the next YYMMDD-XXX number of the hospital day
// @Tags tokens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.IssueTicketRequest true "Ticket"
// @Success 201 {object} resdto.TicketResponse
// @Failure 400 {object} httperr.Response
// @Router /tokens [post]
func (h *TicketHandler) Issue(c *gin.Context) {
	var req reqdto.IssueTicketRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.Issue(c.Request.Context(), req.ToInput())
	if err != nil {
		h.handleTicketError(c, err)
		return
	}
	h.respondWithTicket(c, http.StatusCreated, result.ID)
}

// @Summary Change token status
// @Tags tokens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Param request body reqdto.ChangeTicketStatusRequest true "Status"
// @Success 200 {object} resdto.TicketResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /tokens/{id}/status [patch]
func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "ticket")
	if !ok {
		return
	}
	var req reqdto.ChangeTicketStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.ChangeStatus(c.Request.Context(), id, req.Status); err != nil {
		h.handleTicketError(c, err)
		return
	}
	h.respondWithTicket(c, http.StatusOK, id)
}

// @Summary Delete token
// @Tags tokens
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /tokens/{id} [delete]
func (h *TicketHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "ticket")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		h.handleTicketError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TicketHandler) respondWithTicket(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleTicketError(c, err)
		return
	}
	c.JSON(status, resdto.FromTicketView(view))
}

func (h *TicketHandler) handleTicketError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrTicketNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Token not found", nil)
	case errors.Is(err, ticket.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status transition", nil)
	default:
		abortWithCategory(c, err)
	}
}
