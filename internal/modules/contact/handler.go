package contact

import (
	"net/http"

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
	rg.POST("/contacts", h.Create)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	contacts := rg.Group("/contacts")
	{
		contacts.GET("", h.List)
		contacts.GET("/:id", h.Get)
		contacts.PATCH("/:id/reply", h.Reply)
		contacts.DELETE("/:id", h.Delete)
	}
}

// Create stores a message from the public contact form.
// @Summary		Send contact message
// @Tags		Contacts
// @Param		request	body	CreateRequest	true	"name, email, message"
// @Success		201	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}
// @Router		/contacts [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	msg, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err, "Failed to send message")
		return
	}
	response.Success(c, http.StatusCreated, msg)
}

func (h *Handler) List(c *gin.Context) {
	var q pagination.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid pagination parameters")
		return
	}

	res, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		httperr.Abort(c, err, "Failed to list contacts")
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := httperr.ParamID(c, "id")
	if !ok {
		return
	}

	msg, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load contact")
		return
	}
	response.Success(c, http.StatusOK, msg)
}

// Reply answers a Pending message by email.
// @Summary		Reply to contact
// @Tags		Contacts
// @Security	BearerAuth
// @Param		request	body	ReplyRequest	true	"replyMessage"
// @Failure		400	{object}	map[string]interface{} "already processed"
// @Failure		404	{object}	map[string]interface{}
// @Router		/contacts/{id}/reply [PATCH]
func (h *Handler) Reply(c *gin.Context) {
	id, ok := httperr.ParamID(c, "id")
	if !ok {
		return
	}

	var req ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Reply(c.Request.Context(), id, req)
	if err != nil {
		httperr.Abort(c, err, "Failed to reply to contact")
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := httperr.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err, "Failed to delete contact")
		return
	}
	response.Message(c, http.StatusOK, "Contact deleted")
}
