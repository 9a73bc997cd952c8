package api

import (
	"errors"
	"net/http"

	"hospital-ops/internal/domain/drug"
	reqdto "hospital-ops/internal/handler/dto/request"
	resdto "hospital-ops/internal/handler/dto/response"
	"hospital-ops/internal/handler/httperr"
	"hospital-ops/internal/usecase/commands"
	"hospital-ops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DrugHandler struct {
	cmds commands.DrugCommands
	q    queries.DrugQueries
}

func NewDrugHandler(cmds commands.DrugCommands, q queries.DrugQueries) *DrugHandler {
	return &DrugHandler{cmds: cmds, q: q}
}

// @Summary List drugs
// @Tags drugs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.DrugResponse
// @Router /drugs [get]
func (h *DrugHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		h.handleDrugError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDrugViews(views))
}

// @Summary Get drug
// @Tags drugs
// @Produce json
// @Security BearerAuth
// @Param drugId path string true "Drug ID"
// @Success 200 {object} resdto.DrugResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /drugs/{drugId} [get]
func (h *DrugHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "drugId", "drug")
	if !ok {
		return
	}
	h.respondWithDrug(c, http.StatusOK, id)
}

// @Summary Create drug
// @Tags drugs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDrugRequest true "Drug"
// @Success 201 {object} resdto.DrugResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /drugs [post]
func (h *DrugHandler) Create(c *gin.Context) {
	var req reqdto.CreateDrugRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.handleDrugError(c, err)
		return
	}
	h.respondWithDrug(c, http.StatusCreated, id)
}

// @Summary Adjust drug quantity
// @Description Add restocks the drug; subtract never goes below zero
// @Tags drugs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param drugId path string true "Drug ID"
// @Param request body reqdto.AdjustQuantityRequest true "Quantity change"
// @Success 200 {object} resdto.DrugResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /drugs/{drugId}/quantity [patch]
func (h *DrugHandler) AdjustQuantity(c *gin.Context) {
	id, ok := parseIDParam(c, "drugId", "drug")
	if !ok {
		return
	}
	var req reqdto.AdjustQuantityRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.AdjustQuantity(c.Request.Context(), id, req.ToInput()); err != nil {
		h.handleDrugError(c, err)
		return
	}
	h.respondWithDrug(c, http.StatusOK, id)
}

// @Summary Low stock drugs
// @Description Drugs at or below their minimum stock, including out of stock
// @Tags drugs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.DrugResponse
// @Router /drugs/low-stock [get]
func (h *DrugHandler) LowStock(c *gin.Context) {
	views, err := h.q.LowStock(c.Request.Context())
	if err != nil {
		h.handleDrugError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDrugViews(views))
}

// @Summary Expiring drugs
// @Description Drugs that expire within the configured window and have not expired yet
// @Tags drugs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.DrugResponse
// @Router /drugs/expiring [get]
func (h *DrugHandler) Expiring(c *gin.Context) {
	views, err := h.q.Expiring(c.Request.Context())
	if err != nil {
		h.handleDrugError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDrugViews(views))
}

// @Summary Stock valuation
// @Description Sum of quantity times unit price over every drug
// @Tags drugs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DrugValuationResponse
// @Router /drugs/valuation [get]
func (h *DrugHandler) Valuation(c *gin.Context) {
	view, err := h.q.Valuation(c.Request.Context())
	if err != nil {
		h.handleDrugError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDrugValuationView(view))
}

func (h *DrugHandler) respondWithDrug(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleDrugError(c, err)
		return
	}
	c.JSON(status, resdto.FromDrugView(view))
}

func (h *DrugHandler) handleDrugError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrDrugNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Drug not found", nil)
	case errors.Is(err, drug.ErrInsufficientQuantity):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Insufficient quantity", nil)
	case errors.Is(err, commands.ErrDuplicateDrugName):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Drug name already exists", nil)
	default:
		abortWithCategory(c, err)
	}
}
