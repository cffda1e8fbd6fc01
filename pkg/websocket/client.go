package websocket

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 512
)

// Client is one admin dashboard connection. The feed is server to client;
// inbound frames only manage room membership.
type Client struct {
	ID            string
	hub           *Hub
	conn          *websocket.Conn
	send          chan []byte
	rooms         map[string]bool
	subscriptions []string
	pingPeriod    time.Duration
	pongWait      time.Duration
}

func NewClient(hub *Hub, conn *websocket.Conn, subscriptions []string, pingPeriod, pongWait time.Duration) *Client {
	return &Client{
		ID:            uuid.NewString(),
		hub:           hub,
		conn:          conn,
		send:          make(chan []byte, 256),
		rooms:         make(map[string]bool),
		subscriptions: subscriptions,
		pingPeriod:    pingPeriod,
		pongWait:      pongWait,
	}
}

func (c *Client) roomList() []string {
	rooms := make([]string, 0, len(c.rooms))
	for room := range c.rooms {
		rooms = append(rooms, room)
	}
	sort.Strings(rooms)
	return rooms
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(c.pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(c.pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.WithError(err).Warn("websocket read failed")
			}
			break
		}

		c.handleMessage(message)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(c.pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

type roomRequest struct {
	Type   string `json:"type"`
	RoomID string `json:"room_id"`
}

func (c *Client) handleMessage(message []byte) {
	var req roomRequest
	if err := json.Unmarshal(message, &req); err != nil {
		c.hub.logger.WithError(err).Debug("ignoring malformed websocket frame")
		return
	}
	if req.RoomID == "" {
		return
	}

	switch req.Type {
	case "join_room":
		c.hub.JoinRoom(c, req.RoomID)
	case "leave_room":
		c.hub.LeaveRoom(c, req.RoomID)
	}
}
