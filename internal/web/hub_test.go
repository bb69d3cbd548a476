package web

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/google/uuid"
	"github.com/northbeam/corporate-site/internal/models"
)

func TestHub_Broadcast(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client1 := &Client{hub: hub, send: make(chan []byte, 256)}
	hub.register <- client1

	client2 := &Client{hub: hub, send: make(chan []byte, 256)}
	hub.register <- client2

	// Wait for registration
	time.Sleep(10 * time.Millisecond)

	msg := SubmissionReceivedEvent(uuid.New(), models.KindContact, "Jane Doe")
	hub.Broadcast(msg)

	for _, c := range []*Client{client1, client2} {
		select {
		case received := <-c.send:
			assert.Equal(t, msg, received)
		case <-time.After(time.Second):
			t.Fatal("client did not receive broadcast")
		}
	}
}

func TestHub_UnregisterClosesSendChannel(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{hub: hub, send: make(chan []byte, 1)}
	hub.register <- client
	time.Sleep(10 * time.Millisecond)

	hub.unregister <- client
	time.Sleep(10 * time.Millisecond)

	_, open := <-client.send
	assert.False(t, open)
}

func TestHub_SlowClientIsDropped(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	// zero-capacity channel: the first broadcast cannot be delivered
	slow := &Client{hub: hub, send: make(chan []byte)}
	hub.register <- slow
	time.Sleep(10 * time.Millisecond)

	hub.Broadcast([]byte(`{"type":"submission.received"}`))
	time.Sleep(10 * time.Millisecond)

	_, open := <-slow.send
	assert.False(t, open)
}
