package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in_progress"
	StatusResolved   TicketStatus = "resolved"
	StatusClosed     TicketStatus = "closed"
)

type TicketPriority string

const (
	PriorityLow    TicketPriority = "low"
	PriorityMedium TicketPriority = "medium"
	PriorityHigh   TicketPriority = "high"
)

type Ticket struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatorID   string             `bson:"creator_id" json:"creator_id"`
	PatronID    string             `bson:"patron_id" json:"patron_id"`
	Status      TicketStatus       `bson:"status" json:"status"`
	Priority    TicketPriority     `bson:"priority" json:"priority"`
	IssueType   string             `bson:"issue_type" json:"issue_type"`
	Description string             `bson:"description" json:"description"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	LastUpdate  time.Time          `bson:"last_update" json:"last_update"`
}

const DefaultMessageType = "text"

type Message struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TicketID    primitive.ObjectID `bson:"ticket_id" json:"ticket_id"`
	SenderID    string             `bson:"sender_id" json:"sender_id"`
	ReceiverID  string             `bson:"receiver_id" json:"receiver_id"`
	Content     string             `bson:"content" json:"content"`
	MessageType string             `bson:"message_type" json:"message_type"`
	IsRead      bool               `bson:"is_read" json:"is_read"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
