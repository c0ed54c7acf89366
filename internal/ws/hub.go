package ws

import (
	"log"
	"sync/atomic"
)

// Hub fans broadcast frames out to every connected client. The client set
// is owned by the Run goroutine; other goroutines only touch the channels.
type Hub struct {
	clients    map[*Client]struct{}
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	count      atomic.Int64
	logger     *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan []byte, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.clients[client] = struct{}{}
			h.count.Store(int64(len(h.clients)))
			if h.logger != nil {
				h.logger.Printf("[WS] client connected | total=%d", len(h.clients))
			}

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.count.Store(int64(len(h.clients)))
			if h.logger != nil {
				h.logger.Printf("[WS] client disconnected | total=%d", len(h.clients))
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer; drop the connection rather than
					// blocking the hub.
					delete(h.clients, client)
					close(client.send)
				}
			}
			h.count.Store(int64(len(h.clients)))
			if h.logger != nil {
				h.logger.Printf("[WS] broadcast | clients=%d bytes=%d", len(h.clients), len(message))
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil || client == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil || client == nil {
		return
	}
	h.unregister <- client
}

func (h *Hub) Broadcast(message []byte) {
	if h == nil {
		return
	}
	select {
	case h.broadcast <- message:
	default:
		if h.logger != nil {
			h.logger.Printf("[WS] broadcast dropped | reason=buffer_full")
		}
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	return int(h.count.Load())
}
