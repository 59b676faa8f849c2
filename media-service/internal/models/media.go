package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MediaType string

const (
	AvatarMedia  MediaType = "avatar"
	ProjectMedia MediaType = "project"
)

type Media struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FileName  string             `bson:"file_name" json:"file_name"`
	ObjectKey string             `bson:"object_key" json:"object_key"`
	URL       string             `bson:"url" json:"url"`
	Type      MediaType          `bson:"type" json:"type"`
	UserID    string             `bson:"user_id" json:"user_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
