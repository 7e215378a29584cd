package upload

import (
	"errors"
	"net/http"

	"eventpro/internal/pkg/errs"
	"eventpro/internal/pkg/httperr"
	"eventpro/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// multipartOverhead is the slack allowed on top of the file cap for the
// multipart framing and other form fields.
const multipartOverhead = 64 << 10

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the upload endpoints; rg must already restrict
// access to admin or staff.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	uploads := rg.Group("/uploads")
	{
		uploads.POST("/images", h.handle(Images))
		uploads.POST("/blog-images", h.handle(BlogImages))
	}
}

// RegisterStatic serves stored files at /uploads.
func (h *Handler) RegisterStatic(r gin.IRoutes) {
	r.Static(URLPrefix, h.service.Dir())
}

// handle returns the multipart handler for one upload kind.
// @Summary		Upload an image
// @Tags		Uploads
// @Accept		multipart/form-data
// @Param		file	formData	file	true	"image"
// @Success		201
// @Failure		400,401,403,413
// @Router		/uploads/images [POST]
func (h *Handler) handle(kind Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.service.MaxBytes()+multipartOverhead)

		fh, err := c.FormFile("file")
		if err != nil {
			var tooBig *http.MaxBytesError
			if errors.As(err, &tooBig) {
				h.tooLarge(c)
				return
			}
			httperr.Abort(c, ErrNoFile, "Invalid upload")
			return
		}

		stored, err := h.service.Save(c.Request.Context(), fh, kind)
		if err != nil {
			if errs.Is(err, ErrFileTooLarge) {
				h.tooLarge(c)
				return
			}
			httperr.Abort(c, err, "Failed to store upload")
			return
		}
		response.Success(c, http.StatusCreated, stored)
	}
}

func (h *Handler) tooLarge(c *gin.Context) {
	response.Abort(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", ErrFileTooLarge.Error())
}
