package api

import (
	"errors"
	"net/http"

	reqdto "hospital-ops/internal/handler/dto/request"
	resdto "hospital-ops/internal/handler/dto/response"
	"hospital-ops/internal/handler/httperr"
	"hospital-ops/internal/usecase/commands"
	"hospital-ops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DepartmentHandler struct {
	cmds commands.DepartmentCommands
	q    queries.DepartmentQueries
}

func NewDepartmentHandler(cmds commands.DepartmentCommands, q queries.DepartmentQueries) *DepartmentHandler {
	return &DepartmentHandler{cmds: cmds, q: q}
}

// @Summary List departments
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.DepartmentResponse
// @Router /departments [get]
func (h *DepartmentHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		h.handleDepartmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDepartmentViews(views))
}

// @Summary Get department
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Success 200 {object} resdto.DepartmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /departments/{id} [get]
func (h *DepartmentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "department")
	if !ok {
		return
	}
	h.respondWithDepartment(c, http.StatusOK, id)
}

// @Summary Create department
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDepartmentRequest true "Department"
// @Success 201 {object} resdto.DepartmentResponse
// @Failure 400 {object} httperr.Response
// @Router /departments [post]
func (h *DepartmentHandler) Create(c *gin.Context) {
	var req reqdto.CreateDepartmentRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.handleDepartmentError(c, err)
		return
	}
	h.respondWithDepartment(c, http.StatusCreated, id)
}

// @Summary Update department
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Param request body reqdto.UpdateDepartmentRequest true "Fields to change"
// @Success 200 {object} resdto.DepartmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /departments/{id} [put]
func (h *DepartmentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "department")
	if !ok {
		return
	}
	var req reqdto.UpdateDepartmentRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.Update(c.Request.Context(), id, req.ToInput()); err != nil {
		h.handleDepartmentError(c, err)
		return
	}
	h.respondWithDepartment(c, http.StatusOK, id)
}

// @Summary Delete department
// @Tags departments
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /departments/{id} [delete]
func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "department")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		h.handleDepartmentError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DepartmentHandler) respondWithDepartment(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleDepartmentError(c, err)
		return
	}
	c.JSON(status, resdto.FromDepartmentView(view))
}

func (h *DepartmentHandler) handleDepartmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrDepartmentNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Department not found", nil)
	case errors.Is(err, commands.ErrDuplicateDepartmentName):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Department name already exists", nil)
	default:
		abortWithCategory(c, err)
	}
}
