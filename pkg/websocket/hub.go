package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"varsha-travels/pkg/logger"
)

// AllRoom receives every broadcast regardless of its room.
const AllRoom = "*"

type Hub struct {
	clients    map[*Client]bool
	broadcast  chan Message
	register   chan *Client
	unregister chan *Client
	rooms      map[string]map[*Client]bool
	mutex      sync.RWMutex
	maxClients int
	logger     *logger.Logger
}

type Message struct {
	Type      string          `json:"type"`
	RoomID    string          `json:"room_id,omitempty"`
	Timestamp int64           `json:"timestamp"`
	Data      json.RawMessage `json:"data,omitempty"`
}

func NewHub(maxClients int, log *logger.Logger) *Hub {
	if log == nil {
		log = logger.Discard()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan Message, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		rooms:      make(map[string]map[*Client]bool),
		maxClients: maxClients,
		logger:     log,
	}
}

// Run serves registrations and broadcasts until ctx is done, then closes
// every client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.deliver(message)
		}
	}
}

// Broadcast queues msgType with data for the clients in room. It never
// blocks the caller; when the queue is full the message is dropped.
func (h *Hub) Broadcast(room, msgType string, data interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	message := Message{
		Type:      msgType,
		RoomID:    room,
		Timestamp: getCurrentTimestamp(),
		Data:      raw,
	}

	select {
	case h.broadcast <- message:
	default:
		h.logger.WithField("room", room).Warn("websocket broadcast queue full, dropping message")
	}
	return nil
}

func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// Full reports whether the hub has reached its connection limit.
func (h *Hub) Full() bool {
	return h.maxClients > 0 && h.ClientCount() >= h.maxClients
}

func (h *Hub) registerClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.clients[client] = true
	if len(client.subscriptions) == 0 {
		h.joinRoom(client, AllRoom)
	}
	for _, room := range client.subscriptions {
		h.joinRoom(client, room)
	}
	h.logger.WithField("client", client.ID).Debug("websocket client registered")

	welcome := Message{
		Type:      "welcome",
		Timestamp: getCurrentTimestamp(),
	}
	welcome.Data, _ = json.Marshal(map[string]interface{}{
		"message": "Connected successfully",
		"rooms":   client.roomList(),
	})
	h.sendToClient(client, welcome)
}

func (h *Hub) unregisterClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.dropClient(client)
}

// dropClient must be called with the write lock held.
func (h *Hub) dropClient(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)

	for roomID := range client.rooms {
		if room, exists := h.rooms[roomID]; exists {
			delete(room, client)
			if len(room) == 0 {
				delete(h.rooms, roomID)
			}
		}
	}
	h.logger.WithField("client", client.ID).Debug("websocket client unregistered")
}

func (h *Hub) deliver(message Message) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	data, err := json.Marshal(message)
	if err != nil {
		h.logger.WithError(err).Error("failed to encode websocket message")
		return
	}

	targets := make(map[*Client]bool)
	for client := range h.rooms[AllRoom] {
		targets[client] = true
	}
	if message.RoomID != "" {
		for client := range h.rooms[message.RoomID] {
			targets[client] = true
		}
	}

	for client := range targets {
		select {
		case client.send <- data:
		default:
			// slow consumer
			h.dropClient(client)
		}
	}
}

// sendToClient must be called with the write lock held.
func (h *Hub) sendToClient(client *Client, message Message) {
	data, _ := json.Marshal(message)
	select {
	case client.send <- data:
	default:
		h.dropClient(client)
	}
}

func (h *Hub) joinRoom(client *Client, roomID string) {
	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[*Client]bool)
	}
	h.rooms[roomID][client] = true
	client.rooms[roomID] = true
}

func (h *Hub) JoinRoom(client *Client, roomID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.clients[client]; ok {
		h.joinRoom(client, roomID)
	}
}

func (h *Hub) LeaveRoom(client *Client, roomID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if room, exists := h.rooms[roomID]; exists {
		delete(room, client)
		delete(client.rooms, roomID)

		if len(room) == 0 {
			delete(h.rooms, roomID)
		}
	}
}

func (h *Hub) closeAll() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients {
		h.dropClient(client)
	}
}

func getCurrentTimestamp() int64 {
	return time.Now().Unix()
}
