package booking

import (
	"io"
	"net/http"

	"eventpro/internal/pkg/errs"
	"eventpro/internal/pkg/httperr"
	"eventpro/internal/pkg/pagination"
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
	rg.POST("/bookings/public", h.Submit)
}

// RegisterAdminRoutes expects rg to already require the admin role.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	{
		bookings.GET("", h.List)
		bookings.GET("/:id", h.Get)
		bookings.PUT("/:id/approve", h.Approve)
		bookings.PUT("/:id/reject", h.Reject)
	}
}

// Submit creates a booking request from the public site.
// @Summary		Submit a booking request
// @Tags		Bookings
// @Param		request	body	SubmitRequest	true	"customerName, email, eventType, eventDate"
// @Success		201	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}
// @Router		/bookings/public [POST]
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err, "Failed to submit booking")
		return
	}
	response.Success(c, http.StatusCreated, b)
}

// List returns bookings newest first.
// @Summary		List bookings
// @Tags		Bookings
// @Security	BearerAuth
// @Param		page	query	int	false	"page, default 1"
// @Param		limit	query	int	false	"page size, default 5"
// @Router		/bookings [GET]
func (h *Handler) List(c *gin.Context) {
	var q pagination.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid pagination parameters")
		return
	}

	res, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		httperr.Abort(c, err, "Failed to list bookings")
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := httperr.ParamID(c, "id")
	if !ok {
		return
	}

	b, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load booking")
		return
	}
	response.Success(c, http.StatusOK, b)
}

// Approve moves a Pending booking to Approved and emails the customer.
// @Summary		Approve booking
// @Tags		Bookings
// @Security	BearerAuth
// @Success		200	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{} "already processed"
// @Failure		404	{object}	map[string]interface{}
// @Router		/bookings/{id}/approve [PUT]
func (h *Handler) Approve(c *gin.Context) {
	id, ok := httperr.ParamID(c, "id")
	if !ok {
		return
	}

	res, err := h.service.Approve(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to approve booking")
		return
	}
	response.Success(c, http.StatusOK, res)
}

// Reject moves a Pending booking to Rejected. The body is optional.
// @Summary		Reject booking
// @Tags		Bookings
// @Security	BearerAuth
// @Param		request	body	RejectRequest	false	"reason"
// @Router		/bookings/{id}/reject [PUT]
func (h *Handler) Reject(c *gin.Context) {
	id, ok := httperr.ParamID(c, "id")
	if !ok {
		return
	}

	// an absent body, chunked or not, means no reason was given
	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errs.Is(err, io.EOF) {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Reject(c.Request.Context(), id, req.Reason)
	if err != nil {
		httperr.Abort(c, err, "Failed to reject booking")
		return
	}
	response.Success(c, http.StatusOK, res)
}
