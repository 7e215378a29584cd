package feed

import (
	"log/slog"
	"net/http"

	"eventpro/internal/domain"
	"eventpro/internal/pkg/jwt"
	"eventpro/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// the token in the query string is the access check
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Handler struct {
	hub *Hub
	jwt *jwt.Service
	log *slog.Logger
}

func NewHandler(hub *Hub, jwtService *jwt.Service, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{hub: hub, jwt: jwtService, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ws/admin", h.Connect)
}

// Connect upgrades an admin session to the lifecycle feed.
//
// Endpoint: GET /api/ws/admin?token=JWT
// Browsers cannot set headers on a websocket handshake, hence the query token.
func (h *Handler) Connect(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "AUTH_TOKEN_MISSING", "token query parameter is required")
		return
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
		return
	}
	if domain.UserRole(claims.Role) != domain.RoleAdmin {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "admin role required")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("feed upgrade failed", slog.Any("error", err))
		return
	}

	h.log.Info("feed connected", slog.Int64("user_id", claims.UserID))
	h.hub.serve(conn, claims.UserID)
	h.log.Info("feed disconnected", slog.Int64("user_id", claims.UserID))
}
