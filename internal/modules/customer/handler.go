package customer

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

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.GET("", h.List)
		customers.GET("/:id", h.Get)
		customers.POST("", h.Create)
		customers.PUT("/:id", h.Update)
		customers.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	res, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		httperr.Abort(c, err, "Failed to list customers")
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := httperr.ParamID(c, "id")
	if !ok {
		return
	}

	customer, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load customer")
		return
	}
	response.Success(c, http.StatusOK, customer)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	customer, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err, "Failed to create customer")
		return
	}
	response.Success(c, http.StatusCreated, customer)
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

	customer, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		httperr.Abort(c, err, "Failed to update customer")
		return
	}
	response.Success(c, http.StatusOK, customer)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := httperr.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err, "Failed to delete customer")
		return
	}
	response.Message(c, http.StatusOK, "Customer deleted")
}
