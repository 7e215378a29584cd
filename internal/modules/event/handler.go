package event

import (
	"net/http"

	"eventpro/internal/pkg/httperr"
	"eventpro/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	public := rg.Group("/events/public")
	{
		public.GET("", h.ListPublic)
		public.GET("/:id", h.GetPublic)
	}
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	events := rg.Group("/events")
	{
		events.GET("", h.List)
		events.GET("/:id", h.Get)
		events.POST("", h.Create)
		events.PUT("/:id", h.Update)
		events.PATCH("/:id/status", h.UpdateStatus)
		events.DELETE("/:id", h.Delete)
	}
}

// ListPublic lists approved events for the public site.
// @Summary		Public events
// @Tags		Events
// @Param		eventType	query	int		false	"event type id"
// @Param		typeCode	query	string	false	"event type code"
// @Param		search		query	string	false	"name or location"
// @Router		/events/public [GET]
func (h *Handler) ListPublic(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	res, err := h.service.ListPublic(c.Request.Context(), q)
	if err != nil {
		httperr.Abort(c, err, "Failed to list events")
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) GetPublic(c *gin.Context) {
	id, ok := httperr.ParamID(c, "id")
	if !ok {
		return
	}

	e, err := h.service.GetPublic(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load event")
		return
	}
	response.Success(c, http.StatusOK, e)
}

func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	res, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		httperr.Abort(c, err, "Failed to list events")
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := httperr.ParamID(c, "id")
	if !ok {
		return
	}

	e, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load event")
		return
	}
	response.Success(c, http.StatusOK, e)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err, "Failed to create event")
		return
	}
	response.Success(c, http.StatusCreated, e)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := httperr.ParamID(c, "id")
	if !ok {
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		httperr.Abort(c, err, "Failed to update event")
		return
	}
	response.Success(c, http.StatusOK, e)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := httperr.ParamID(c, "id")
	if !ok {
		return
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		httperr.Abort(c, err, "Failed to update event status")
		return
	}
	response.Success(c, http.StatusOK, e)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := httperr.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err, "Failed to delete event")
		return
	}
	response.Message(c, http.StatusOK, "Event deleted")
}
