package api

import (
	"errors"
	"net/http"

	reqdto "hospital-ops/internal/handler/dto/request"
	resdto "hospital-ops/internal/handler/dto/response"
	"hospital-ops/internal/handler/httperr"
	"hospital-ops/internal/pkg/ptr"
	"hospital-ops/internal/usecase/commands"
	"hospital-ops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DisplayHandler struct {
	cmds  commands.DisplayCommands
	q     queries.DisplayQueries
	feeds queries.DisplayFeedQueries
}

func NewDisplayHandler(cmds commands.DisplayCommands, q queries.DisplayQueries, feeds queries.DisplayFeedQueries) *DisplayHandler {
	return &DisplayHandler{cmds: cmds, q: q, feeds: feeds}
}

// @Summary List display boards
// @Tags display
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.DisplayResponse
// @Router /display [get]
func (h *DisplayHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		h.handleDisplayError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDisplayViews(views))
}

// @Summary List department display boards
// @Tags display
// @Produce json
// @Security BearerAuth
// @Param department path string true "Department name"
// @Success 200 {array} resdto.DisplayResponse
// @Router /display/department/{department} [get]
func (h *DisplayHandler) ListByDepartment(c *gin.Context) {
	views, err := h.q.ListByDepartment(c.Request.Context(), c.Param("department"))
	if err != nil {
		h.handleDisplayError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDisplayViews(views))
}

// @Summary Get display board
// @Tags display
// @Produce json
// @Security BearerAuth
// @Param displayId path string true "Display ID"
// @Success 200 {object} resdto.DisplayResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /display/{displayId} [get]
func (h *DisplayHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "displayId", "display")
	if !ok {
		return
	}
	h.respondWithDisplay(c, http.StatusOK, id)
}

// @Summary Create display board
// @Tags display
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDisplayRequest true "Display"
// @Success 201 {object} resdto.DisplayResponse
// @Failure 400 {object} httperr.Response
// @Router /display [post]
func (h *DisplayHandler) Create(c *gin.Context) {
	var req reqdto.CreateDisplayRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.handleDisplayError(c, err)
		return
	}
	h.respondWithDisplay(c, http.StatusCreated, id)
}

// @Summary Add display content
// @Description Content stays ordered by priority, highest first
// @Tags display
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param displayId path string true "Display ID"
// @Param request body reqdto.AddContentRequest true "Content item"
// @Success 200 {object} resdto.DisplayResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /display/{displayId}/content [post]
func (h *DisplayHandler) AddContent(c *gin.Context) {
	id, ok := parseIDParam(c, "displayId", "display")
	if !ok {
		return
	}
	var req reqdto.AddContentRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.cmds.AddContent(c.Request.Context(), id, req.ToInput()); err != nil {
		h.handleDisplayError(c, err)
		return
	}
	h.respondWithDisplay(c, http.StatusOK, id)
}

// @Summary Update display settings
// @Tags display
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param displayId path string true "Display ID"
// @Param request body reqdto.UpdateSettingsRequest true "Settings"
// @Success 200 {object} resdto.DisplayResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /display/{displayId}/settings [patch]
func (h *DisplayHandler) UpdateSettings(c *gin.Context) {
	id, ok := parseIDParam(c, "displayId", "display")
	if !ok {
		return
	}
	var req reqdto.UpdateSettingsRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.UpdateSettings(c.Request.Context(), id, req.ToInput()); err != nil {
		h.handleDisplayError(c, err)
		return
	}
	h.respondWithDisplay(c, http.StatusOK, id)
}

// @Summary Clear display content
// @Description Without type every item is removed
// @Tags display
// @Produce json
// @Security BearerAuth
// @Param displayId path string true "Display ID"
// @Param type query string false "Content type to remove"
// @Success 200 {object} resdto.ClearContentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /display/{displayId}/content [delete]
func (h *DisplayHandler) ClearContent(c *gin.Context) {
	id, ok := parseIDParam(c, "displayId", "display")
	if !ok {
		return
	}
	removed, err := h.cmds.ClearContent(c.Request.Context(), id, ptr.NonBlank(c.Query("type")))
	if err != nil {
		h.handleDisplayError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleDisplayError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ClearContentResponse{Removed: removed, Display: resdto.FromDisplayView(view)})
}

// @Summary Queue board feed
// @Description Waiting and in-progress tokens for a public board
// @Tags display
// @Produce json
// @Param department query string false "Department name"
// @Success 200 {object} resdto.QueueFeedResponse
// @Router /display/feed/queue [get]
func (h *DisplayHandler) QueueFeed(c *gin.Context) {
	feed, err := h.feeds.QueueFeed(c.Request.Context(), c.Query("department"))
	if err != nil {
		h.handleDisplayError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQueueFeedView(feed))
}

// @Summary Theatre board feed
// @Description Every theatre with its status, current surgery and open schedule
// @Tags display
// @Produce json
// @Success 200 {object} resdto.TheatreFeedResponse
// @Router /display/feed/theatres [get]
func (h *DisplayHandler) TheatreFeed(c *gin.Context) {
	feed, err := h.feeds.TheatreFeed(c.Request.Context())
	if err != nil {
		h.handleDisplayError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTheatreFeedView(feed))
}

func (h *DisplayHandler) respondWithDisplay(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleDisplayError(c, err)
		return
	}
	c.JSON(status, resdto.FromDisplayView(view))
}

func (h *DisplayHandler) handleDisplayError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrDisplayNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Display board not found", nil)
	default:
		abortWithCategory(c, err)
	}
}
