package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client is one websocket subscription for a single ticket. The hub owns the
// send channel; the client owns the connection.
type Client struct {
	TicketID string
	UserID   string
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
}

// ServeWS upgrades the connection and registers the client with the hub.
// Unregistering happens exactly once, when the read pump observes the
// connection closing.
func ServeWS(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		ticketID := c.Param("ticketId")
		if _, err := primitive.ObjectIDFromHex(ticketID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket id"})
			return
		}
		userID := c.GetString("userID")

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("Websocket upgrade failed: %v", err)
			return
		}

		client := &Client{
			TicketID: ticketID,
			UserID:   userID,
			hub:      hub,
			conn:     conn,
			send:     make(chan []byte, 16),
		}
		hub.register <- client

		go client.writePump()
		go client.readPump()
	}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		// Inbound frames are ignored; sends go through the HTTP API.
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
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
