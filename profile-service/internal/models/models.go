package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleCreator Role = "creator"
	RolePatron  Role = "patron"
)

func ToRole(s string) Role {
	switch s {
	case "creator":
		return RoleCreator
	case "patron":
		return RolePatron
	}
	return ""
}

type Profile struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       string             `bson:"user_id" json:"user_id"`
	DisplayName  string             `bson:"display_name" json:"display_name" validate:"required"`
	Role         Role               `bson:"role" json:"role" validate:"required,oneof=creator patron"`
	Bio          string             `bson:"bio" json:"bio"`
	Skills       []string           `bson:"skills" json:"skills"`
	AvatarURL    string             `bson:"avatar_url" json:"avatar_url"`
	PortfolioURL string             `bson:"portfolio_url" json:"portfolio_url"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

type UserSettings struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID             string             `bson:"user_id" json:"user_id"`
	EmailNotifications bool               `bson:"email_notifications" json:"email_notifications"`
	PushNotifications  bool               `bson:"push_notifications" json:"push_notifications"`
	Language           string             `bson:"language" json:"language"`
	UpdatedAt          time.Time          `bson:"updated_at" json:"updated_at"`
}

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestDeclined RequestStatus = "declined"
)

type CollaborationRequest struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PatronID     string             `bson:"patron_id" json:"patron_id"`
	CreatorID    string             `bson:"creator_id" json:"creator_id" validate:"required"`
	ProjectTitle string             `bson:"project_title" json:"project_title" validate:"required"`
	Message      string             `bson:"message" json:"message"`
	Budget       float64            `bson:"budget" json:"budget" validate:"gte=0"`
	Status       RequestStatus      `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
