// Package router assembles the gin engine and mounts every module under /api.
package router

import (
	"log/slog"
	"net/http"

	"eventpro/internal/config"
	"eventpro/internal/middleware"
	"eventpro/internal/modules/auth"
	"eventpro/internal/modules/blog"
	"eventpro/internal/modules/booking"
	"eventpro/internal/modules/contact"
	"eventpro/internal/modules/contract"
	"eventpro/internal/modules/customer"
	"eventpro/internal/modules/dashboard"
	"eventpro/internal/modules/event"
	"eventpro/internal/modules/eventtype"
	"eventpro/internal/modules/feed"
	"eventpro/internal/modules/setting"
	"eventpro/internal/modules/upload"
	"eventpro/internal/modules/user"
	"eventpro/internal/pkg/jwt"
	"eventpro/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// Handlers is filled by fx from the module constructors.
type Handlers struct {
	fx.In

	Auth      *auth.Handler
	User      *user.Handler
	Booking   *booking.Handler
	Contact   *contact.Handler
	Customer  *customer.Handler
	EventType *eventtype.Handler
	Event     *event.Handler
	Contract  *contract.Handler
	Blog      *blog.Handler
	Setting   *setting.Handler
	Dashboard *dashboard.Handler
	Upload    *upload.Handler
	Feed      *feed.Handler
}

// New builds the engine. Route groups:
//
//	/api            public
//	/api (jwt)      any signed-in user
//	/api (jwt+role) admin, or admin and staff for uploads
func New(cfg config.Config, log *slog.Logger, jwtService *jwt.Service, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.Recovery(log),
		middleware.RequestLogger(log),
		middleware.CORS(cfg.CORS),
	)

	r.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})
	h.Upload.RegisterStatic(r)

	api := r.Group("/api")
	{
		h.Auth.RegisterPublicRoutes(api)
		h.Booking.RegisterPublicRoutes(api)
		h.Contact.RegisterPublicRoutes(api)
		h.EventType.RegisterPublicRoutes(api)
		h.Event.RegisterPublicRoutes(api)
		h.Blog.RegisterPublicRoutes(api)
		h.Setting.RegisterPublicRoutes(api)

		// the feed authenticates from ?token= during the upgrade
		h.Feed.RegisterRoutes(api)
	}

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(jwtService))
	{
		h.User.RegisterProtectedRoutes(protected)
	}

	staff := protected.Group("")
	staff.Use(middleware.StaffOrAdmin())
	{
		h.Upload.RegisterRoutes(staff)
	}

	admin := protected.Group("")
	admin.Use(middleware.AdminOnly())
	{
		h.User.RegisterAdminRoutes(admin)
		h.Booking.RegisterAdminRoutes(admin)
		h.Contact.RegisterAdminRoutes(admin)
		h.Customer.RegisterAdminRoutes(admin)
		h.EventType.RegisterAdminRoutes(admin)
		h.Event.RegisterAdminRoutes(admin)
		h.Contract.RegisterAdminRoutes(admin)
		h.Blog.RegisterAdminRoutes(admin)
		h.Setting.RegisterAdminRoutes(admin)
		h.Dashboard.RegisterAdminRoutes(admin)
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Route not found")
	})

	return r
}
