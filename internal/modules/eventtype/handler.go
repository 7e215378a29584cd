package eventtype

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
	rg.GET("/event-types/public", h.Public)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	types := rg.Group("/event-types")
	{
		types.GET("", h.List)
		types.GET("/:id", h.Get)
		types.POST("", h.Create)
		types.PUT("/:id", h.Update)
		types.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) Public(c *gin.Context) {
	items, err := h.service.Public(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Failed to list event types")
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	res, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		httperr.Abort(c, err, "Failed to list event types")
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := httperr.ParamID(c, "id")
	if !ok {
		return
	}

	et, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load event type")
		return
	}
	response.Success(c, http.StatusOK, et)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	et, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err, "Failed to create event type")
		return
	}
	response.Success(c, http.StatusCreated, et)
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

	et, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		httperr.Abort(c, err, "Failed to update event type")
		return
	}
	response.Success(c, http.StatusOK, et)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := httperr.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err, "Failed to delete event type")
		return
	}
	response.Message(c, http.StatusOK, "Event type deleted")
}
