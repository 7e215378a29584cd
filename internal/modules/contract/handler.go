package contract

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
	contracts := rg.Group("/contracts")
	{
		contracts.GET("", h.List)
		contracts.GET("/:id", h.Get)
		contracts.POST("", h.Create)
		contracts.PUT("/:id", h.Update)
		contracts.DELETE("/:id", h.Delete)
	}
}

// List returns contracts newest first.
// @Summary		List contracts
// @Tags		Contracts
// @Param		status	query	string	false	"Pending|Signed|Completed|Cancelled"
// @Param		search	query	string	false	"contract code"
// @Router		/contracts [GET]
func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	res, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		httperr.Abort(c, err, "Failed to list contracts")
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := httperr.ParamID(c, "id")
	if !ok {
		return
	}

	ct, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load contract")
		return
	}
	response.Success(c, http.StatusOK, ct)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	ct, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err, "Failed to create contract")
		return
	}
	response.Success(c, http.StatusCreated, ct)
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

	ct, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		httperr.Abort(c, err, "Failed to update contract")
		return
	}
	response.Success(c, http.StatusOK, ct)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := httperr.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err, "Failed to delete contract")
		return
	}
	response.Message(c, http.StatusOK, "Contract deleted")
}
