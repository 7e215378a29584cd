package auth

import (
	"net/http"

	"eventpro/internal/middleware"
	"eventpro/internal/pkg/httperr"
	"eventpro/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/register", h.Register)
		authGroup.POST("/refresh", h.Refresh)
	}
}

// Login exchanges credentials for a JWT.
// @Summary		Login
// @Tags		Auth
// @Param		request	body	LoginRequest	true	"email, password"
// @Success		200	{object}	map[string]interface{} "token and user"
// @Failure		401	{object}	map[string]interface{} "invalid email or password"
// @Router		/auth/login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err, "Failed to login")
		return
	}
	response.Success(c, http.StatusOK, res)
}

// Register creates a customer account.
// @Summary		Register
// @Tags		Auth
// @Param		request	body	RegisterRequest	true	"username, email, password"
// @Success		201	{object}	map[string]interface{}
// @Failure		409	{object}	map[string]interface{} "email or username taken"
// @Router		/auth/register [POST]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err, "Failed to create account")
		return
	}
	response.Success(c, http.StatusCreated, res)
}

// Refresh accepts an expired but correctly signed bearer token.
// @Summary		Refresh token
// @Tags		Auth
// @Security	BearerAuth
// @Router		/auth/refresh [POST]
func (h *Handler) Refresh(c *gin.Context) {
	token := middleware.BearerToken(c)
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Authorization header is required")
		return
	}

	res, err := h.service.Refresh(c.Request.Context(), token)
	if err != nil {
		httperr.Abort(c, err, "Failed to refresh token")
		return
	}
	response.Success(c, http.StatusOK, res)
}
