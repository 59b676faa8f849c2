package handler

import (
	"encoding/json"
	"log"
	"sync"

	"dreamforge-app/chat-service/internal/models"
)

// Hub tracks one room per open ticket and fans incoming messages out to the
// websocket clients subscribed to that room. Messages arrive from the Redis
// chat channel, so the fanout works across service instances.
type Hub struct {
	rooms      map[string]map[*Client]bool // ticket_id (hex) -> clients
	register   chan *Client
	unregister chan *Client
	deliver    chan *models.Message
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		deliver:    make(chan *models.Message),
	}
}

// Deliver hands a message received from the pub/sub channel to the hub.
func (h *Hub) Deliver(msg *models.Message) {
	h.deliver <- msg
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.TicketID] == nil {
				h.rooms[client.TicketID] = make(map[*Client]bool)
			}
			h.rooms[client.TicketID][client] = true
			h.mu.Unlock()
			log.Printf("Client %s subscribed to ticket %s", client.UserID, client.TicketID)

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.rooms[client.TicketID]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.rooms, client.TicketID)
					}
					log.Printf("Client %s unsubscribed from ticket %s", client.UserID, client.TicketID)
				}
			}
			h.mu.Unlock()

		case msg := <-h.deliver:
			data, err := json.Marshal(msg)
			if err != nil {
				log.Printf("Failed to marshal message: %v", err)
				continue
			}
			h.mu.Lock()
			if clients, ok := h.rooms[msg.TicketID.Hex()]; ok {
				for client := range clients {
					select {
					case client.send <- data:
					default:
						delete(clients, client)
						close(client.send)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}
