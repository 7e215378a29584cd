// Package setting serves the site-wide settings singleton.
package setting

import (
	"context"
	"net/http"
	"strings"

	"eventpro/internal/domain"
	"eventpro/internal/pkg/errs"
	"eventpro/internal/pkg/httperr"
	"eventpro/internal/pkg/response"
	"eventpro/internal/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

type SettingRepository interface {
	Get(ctx context.Context) (*domain.Setting, error)
	Upsert(ctx context.Context, s *domain.Setting) error
}

type UpdateRequest struct {
	SiteName     string `json:"siteName" validate:"omitempty,max=255"`
	Logo         string `json:"logo" validate:"omitempty,max=512"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone string `json:"contactPhone" validate:"omitempty,max=64"`
}

type Service struct {
	settings SettingRepository
}

func NewService(settings SettingRepository) *Service {
	return &Service{settings: settings}
}

// Get falls back to the defaults when the row has not been created yet.
func (s *Service) Get(ctx context.Context) (*domain.Setting, error) {
	cur, err := s.settings.Get(ctx)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			def := domain.DefaultSetting()
			return &def, nil
		}
		return nil, errs.Wrap(err, "get settings")
	}
	return cur, nil
}

func (s *Service) Update(ctx context.Context, req UpdateRequest) (*domain.Setting, error) {
	req.SiteName = strings.TrimSpace(req.SiteName)
	req.ContactEmail = strings.TrimSpace(req.ContactEmail)
	if err := validator.Check(req); err != nil {
		return nil, err
	}

	cur, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := copier.CopyWithOption(cur, &req, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, errs.Wrap(err, "apply settings patch")
	}
	if err := s.settings.Upsert(ctx, cur); err != nil {
		return nil, errs.Wrap(err, "save settings")
	}
	return cur, nil
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/settings", h.Get)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.PUT("/settings", h.Update)
}

func (h *Handler) Get(c *gin.Context) {
	s, err := h.service.Get(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Failed to load settings")
		return
	}
	response.Success(c, http.StatusOK, s)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	s, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err, "Failed to update settings")
		return
	}
	response.Success(c, http.StatusOK, s)
}
