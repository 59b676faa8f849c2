package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationType string

const (
	TypeChatMessage    NotificationType = "chat_message"
	TypeCollabRequest  NotificationType = "collab_request"
	TypeCollabResponse NotificationType = "collab_response"
	TypeAccountDeleted NotificationType = "account_deleted"
	TypeSystemMessage  NotificationType = "system_message"
)

type DeliveryMethod string

const (
	DeliveryInApp DeliveryMethod = "in_app"
	DeliveryEmail DeliveryMethod = "email"
)

type Notification struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       string             `bson:"user_id" json:"user_id"`
	Title        string             `bson:"title" json:"title"`
	Message      string             `bson:"message" json:"message"`
	Type         NotificationType   `bson:"type" json:"type"`
	DeliveryType DeliveryMethod     `bson:"delivery_type" json:"delivery_type"`
	IsRead       bool               `bson:"is_read" json:"is_read"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
