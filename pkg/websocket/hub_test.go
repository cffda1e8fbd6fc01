package websocket

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(h *Hub, rooms ...string) *Client {
	return NewClient(h, nil, rooms, time.Second, 2*time.Second)
}

func receive(t *testing.T, c *Client) Message {
	t.Helper()
	select {
	case data := <-c.send:
		var msg Message
		require.NoError(t, json.Unmarshal(data, &msg))
		return msg
	case <-time.After(time.Second):
		t.Fatal("no message received")
	}
	return Message{}
}

func TestHub_RoutesByRoom(t *testing.T) {
	hub := NewHub(0, nil)
	all := newTestClient(hub)
	bookings := newTestClient(hub, "bookings")
	reviews := newTestClient(hub, "reviews")

	for _, c := range []*Client{all, bookings, reviews} {
		hub.registerClient(c)
		assert.Equal(t, "welcome", receive(t, c).Type)
	}
	assert.Equal(t, 3, hub.ClientCount())

	require.NoError(t, hub.Broadcast("bookings", "created", map[string]string{"id": "1"}))
	hub.deliver(<-hub.broadcast)

	msg := receive(t, bookings)
	assert.Equal(t, "created", msg.Type)
	assert.Equal(t, "bookings", msg.RoomID)
	assert.JSONEq(t, `{"id":"1"}`, string(msg.Data))
	assert.Equal(t, "created", receive(t, all).Type)
	assert.Empty(t, reviews.send)
}

func TestHub_JoinAndLeave(t *testing.T) {
	hub := NewHub(0, nil)
	c := newTestClient(hub, "reviews")
	hub.registerClient(c)
	receive(t, c)

	hub.JoinRoom(c, "bookings")
	hub.LeaveRoom(c, "reviews")
	assert.Equal(t, []string{"bookings"}, c.roomList())

	hub.unregisterClient(c)
	assert.Equal(t, 0, hub.ClientCount())
	assert.Empty(t, hub.rooms)
	_, open := <-c.send
	assert.False(t, open)
}

func TestHub_DropsSlowConsumer(t *testing.T) {
	hub := NewHub(0, nil)
	c := newTestClient(hub)
	hub.registerClient(c)
	for i := 0; i < cap(c.send)-1; i++ {
		c.send <- []byte("{}")
	}

	hub.deliver(Message{Type: "updated"})
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_RunStopsOnCancel(t *testing.T) {
	hub := NewHub(1, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(done)
	}()

	c := newTestClient(hub)
	hub.register <- c
	assert.Eventually(t, hub.Full, time.Second, 10*time.Millisecond)

	cancel()
	<-done
	assert.Equal(t, 0, hub.ClientCount())
}

func TestParseRooms(t *testing.T) {
	assert.Nil(t, ParseRooms(""))
	assert.Equal(t, []string{"bookings", "contactmessages"}, ParseRooms(" bookings, ,contactmessages"))
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"https://admin.varshatravels.in"})

	r := httptest.NewRequest("GET", "/ws", nil)
	assert.True(t, check(r))

	r.Header.Set("Origin", "https://admin.varshatravels.in")
	assert.True(t, check(r))

	r.Header.Set("Origin", "https://evil.example")
	assert.False(t, check(r))

	assert.True(t, originChecker([]string{"*"})(r))
}
