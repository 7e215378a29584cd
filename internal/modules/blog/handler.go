package blog

import (
	"context"
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
	public := rg.Group("/blogs/public")
	{
		public.GET("", h.ListPublic)
		public.GET("/:id", h.GetPublic)
	}
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	blogs := rg.Group("/blogs")
	{
		blogs.GET("", h.List)
		blogs.GET("/:id", h.Get)
		blogs.POST("", h.Create)
		blogs.PUT("/:id", h.Update)
		blogs.PATCH("/:id/toggle-approval", h.ToggleApproval)
		blogs.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) ListPublic(c *gin.Context) {
	h.list(c, h.service.ListPublic)
}

func (h *Handler) List(c *gin.Context) {
	h.list(c, h.service.List)
}

func (h *Handler) list(c *gin.Context, fn func(context.Context, ListQuery) (*ListResponse, error)) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	res, err := fn(c.Request.Context(), q)
	if err != nil {
		httperr.Abort(c, err, "Failed to list blogs")
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) GetPublic(c *gin.Context) {
	id, ok := httperr.ParamID(c, "id")
	if !ok {
		return
	}

	b, err := h.service.GetPublic(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load blog")
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := httperr.ParamID(c, "id")
	if !ok {
		return
	}

	b, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load blog")
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err, "Failed to create blog")
		return
	}
	response.Success(c, http.StatusCreated, b)
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

	b, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		httperr.Abort(c, err, "Failed to update blog")
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) ToggleApproval(c *gin.Context) {
	id, ok := httperr.ParamID(c, "id")
	if !ok {
		return
	}

	b, err := h.service.ToggleApproval(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to toggle blog approval")
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := httperr.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err, "Failed to delete blog")
		return
	}
	response.Message(c, http.StatusOK, "Blog deleted")
}
