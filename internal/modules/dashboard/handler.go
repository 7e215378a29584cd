package dashboard

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
	rg.GET("/dashboard/stats", h.Stats)
}

// Stats returns platform totals and chart series for the admin dashboard.
// @Summary		Dashboard statistics
// @Tags		Dashboard
// @Security	BearerAuth
// @Success		200	{object}	StatsResponse
// @Router		/dashboard/stats [GET]
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Failed to load statistics")
		return
	}
	response.Success(c, http.StatusOK, stats)
}
