package service

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/model"

	"github.com/gofiber/contrib/websocket"
)

type WSClient struct {
	Conn           *websocket.Conn
	UserID         string
	ConversationID string
	Send           chan []byte
}

// WSHub fans chat messages out to connected clients. A client subscribes to
// one conversation at a time, matching the single open chat window.
type WSHub struct {
	clients    map[*WSClient]bool
	register   chan *WSClient
	unregister chan *WSClient
	broadcast  chan []byte
	mu         sync.RWMutex
	done       chan struct{}
}

func NewWSHub() *WSHub {
	return &WSHub{
		clients:    make(map[*WSClient]bool),
		register:   make(chan *WSClient),
		unregister: make(chan *WSClient),
		broadcast:  make(chan []byte, 256),
		done:       make(chan struct{}),
	}
}

func (h *WSHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			slog.Debug("ws connected", "user", client.UserID, "total", h.OnlineCount())

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()
			slog.Debug("ws disconnected", "user", client.UserID, "total", h.OnlineCount())

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()

		case <-h.done:
			return
		}
	}
}

func (h *WSHub) Shutdown() {
	close(h.done)
}

func (h *WSHub) Register(client *WSClient) {
	h.register <- client
}

func (h *WSHub) Unregister(client *WSClient) {
	h.unregister <- client
}

// Broadcast sends the event to every connected client.
func (h *WSHub) Broadcast(event *model.WSEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	h.broadcast <- data
}

// BroadcastToConversation delivers the event to clients subscribed to the
// conversation. Slow clients are skipped rather than blocking the sender.
func (h *WSHub) BroadcastToConversation(conversationID string, event *model.WSEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		if client.ConversationID == conversationID {
			select {
			case client.Send <- data:
			default:
			}
		}
	}
}

// NotifyUser delivers the event to every connection held by the user,
// regardless of which conversation it watches.
func (h *WSHub) NotifyUser(userID string, event *model.WSEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		if client.UserID == userID {
			select {
			case client.Send <- data:
			default:
			}
		}
	}
}

func (h *WSHub) OnlineCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
