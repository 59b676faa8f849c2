package handler

import (
	"net/http"

	"dreamforge-app/chat-service/internal/models"
	"dreamforge-app/chat-service/internal/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ChatHandler struct {
	Service *services.ChatService
}

func NewChatHandler(service *services.ChatService) *ChatHandler {
	return &ChatHandler{Service: service}
}

// POST /api/chat/tickets
func (h *ChatHandler) CreateTicket(c *gin.Context) {
	var ticket models.Ticket
	if err := c.ShouldBindJSON(&ticket); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if err := h.Service.CreateTicket(c.Request.Context(), &ticket); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create ticket"})
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// GET /api/chat/tickets
func (h *ChatHandler) GetTickets(c *gin.Context) {
	userID := c.GetString("userID")
	tickets, err := h.Service.GetTicketsForUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch tickets"})
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// GET /api/chat/tickets/:ticketId
func (h *ChatHandler) GetTicket(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("ticketId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket id"})
		return
	}
	ticket, err := h.Service.GetTicketByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "ticket not found"})
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// PUT /api/chat/tickets/:ticketId/status
func (h *ChatHandler) UpdateTicketStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("ticketId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket id"})
		return
	}
	var req struct {
		Status models.TicketStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if err := h.Service.UpdateTicketStatus(c.Request.Context(), id, req.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update ticket"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// POST /api/chat/messages
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var msg models.Message
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	msg.SenderID = c.GetString("userID")
	if err := h.Service.SendMessage(c.Request.Context(), &msg); err != nil {
		if err == models.ErrEmptyContent {
			c.JSON(http.StatusBadRequest, gin.H{"error": "message content is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not send message"})
		return
	}
	c.JSON(http.StatusOK, msg)
}

// GET /api/chat/tickets/:ticketId/messages
func (h *ChatHandler) GetMessages(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("ticketId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket id"})
		return
	}
	messages, err := h.Service.GetMessages(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch messages"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

// PUT /api/chat/tickets/:ticketId/read
func (h *ChatHandler) MarkMessagesAsRead(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("ticketId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket id"})
		return
	}
	userID := c.GetString("userID")
	if err := h.Service.MarkMessagesAsRead(c.Request.Context(), id, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not mark messages as read"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "read"})
}
