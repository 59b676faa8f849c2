package handler

import (
	"testing"
	"time"

	"dreamforge-app/chat-service/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestClient(hub *Hub, ticketID, userID string) *Client {
	return &Client{
		TicketID: ticketID,
		UserID:   userID,
		hub:      hub,
		send:     make(chan []byte, 1),
	}
}

func TestHub_DeliversOnlyToMatchingRoom(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	ticketA := primitive.NewObjectID()
	ticketB := primitive.NewObjectID()

	clientA := newTestClient(hub, ticketA.Hex(), "u1")
	clientB := newTestClient(hub, ticketB.Hex(), "u2")
	hub.register <- clientA
	hub.register <- clientB

	hub.Deliver(&models.Message{
		ID:         primitive.NewObjectID(),
		TicketID:   ticketA,
		SenderID:   "u2",
		ReceiverID: "u1",
		Content:    "hello",
	})

	select {
	case data := <-clientA.send:
		if len(data) == 0 {
			t.Fatal("empty payload delivered")
		}
	case <-time.After(time.Second):
		t.Fatal("client in matching room received nothing")
	}

	select {
	case <-clientB.send:
		t.Fatal("client in other room must not receive the message")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_UnregisterStopsDelivery(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	ticketID := primitive.NewObjectID()
	client := newTestClient(hub, ticketID.Hex(), "u1")
	hub.register <- client
	hub.unregister <- client

	// The send channel is closed exactly once on unregister.
	select {
	case _, ok := <-client.send:
		if ok {
			t.Fatal("expected closed send channel")
		}
	case <-time.After(time.Second):
		t.Fatal("send channel not closed after unregister")
	}

	hub.Deliver(&models.Message{
		ID:       primitive.NewObjectID(),
		TicketID: ticketID,
		Content:  "late",
	})
	// Nothing to assert on the closed channel; the delivery must simply not
	// panic with the room already gone.
	time.Sleep(50 * time.Millisecond)
}
