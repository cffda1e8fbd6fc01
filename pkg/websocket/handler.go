package websocket

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"varsha-travels/pkg/logger"
)

type Options struct {
	ReadBufferSize  int
	WriteBufferSize int
	PingInterval    time.Duration
	PongTimeout     time.Duration
	MaxConnections  int
	AllowedOrigins  []string
}

type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
	opts     Options
}

// NewHandler starts a hub bound to ctx.
func NewHandler(ctx context.Context, opts Options, log *logger.Logger) *Handler {
	if opts.PongTimeout <= 0 {
		opts.PongTimeout = 60 * time.Second
	}
	if opts.PingInterval <= 0 || opts.PingInterval >= opts.PongTimeout {
		opts.PingInterval = (opts.PongTimeout * 9) / 10
	}

	hub := NewHub(opts.MaxConnections, log)
	go hub.Run(ctx)

	return &Handler{
		hub:  hub,
		opts: opts,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  opts.ReadBufferSize,
			WriteBufferSize: opts.WriteBufferSize,
			CheckOrigin:     originChecker(opts.AllowedOrigins),
		},
	}
}

// HandleWebSocket upgrades the request. The optional "resources" query
// parameter is a comma separated list of rooms; without it the client
// receives everything.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	if h.hub.Full() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Too many connections"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.hub.logger.WithError(err).Warn("websocket upgrade failed")
		return
	}

	client := NewClient(h.hub, conn, ParseRooms(c.Query("resources")), h.opts.PingInterval, h.opts.PongTimeout)
	h.hub.register <- client

	go client.writePump()
	go client.readPump()
}

func (h *Handler) GetHub() *Hub {
	return h.hub
}

func ParseRooms(raw string) []string {
	var rooms []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			rooms = append(rooms, part)
		}
	}
	return rooms
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, a := range allowed {
			if a == "*" || strings.EqualFold(a, origin) {
				return true
			}
		}
		return false
	}
}
