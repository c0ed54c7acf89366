package ws

import (
	"log"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
)

type Handler struct {
	hub      *Hub
	logger   *log.Logger
	upgrader websocket.Upgrader
}

func NewHandler(hub *Hub, logger *log.Logger) *Handler {
	return &Handler{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser clients connect from arbitrary origins; the feed is
			// broadcast-only and carries no per-user data.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleEventsWS upgrades the connection and attaches it to the hub. The
// upgrade runs through net/http via the fiber adaptor because gorilla needs
// the raw ResponseWriter.
func (h *Handler) HandleEventsWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	return adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			if h.logger != nil {
				h.logger.Printf("[WS] upgrade failed | err=%v", err)
			}
			return
		}

		client := NewClient(h.hub, conn)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})(c)
}
