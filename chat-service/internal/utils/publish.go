package utils

import (
	"context"
	"encoding/json"
	"log"

	"dreamforge-app/chat-service/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	MessagesChannel   = "chat_messages"
	ChatEventsChannel = "chat_events"
)

type ChatEventPayload struct {
	UserID  string `json:"user_id"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

// RedisPublisher pushes persisted messages to the realtime channel and
// notification events to the notification service. Publish failures are
// logged only; the message is already stored at that point.
type RedisPublisher struct {
	rdb *redis.Client
}

func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{rdb: rdb}
}

func (p *RedisPublisher) PublishMessage(ctx context.Context, msg *models.Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Failed to marshal chat message: %v", err)
		return
	}
	if err := p.rdb.Publish(ctx, MessagesChannel, data).Err(); err != nil {
		log.Printf("Failed to publish chat message: %v", err)
	}
}

func (p *RedisPublisher) PublishChatEvent(ctx context.Context, userID, text string) {
	payload := ChatEventPayload{
		UserID:  userID,
		Type:    "chat_message",
		Message: text,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal chat event: %v", err)
		return
	}
	if err := p.rdb.Publish(ctx, ChatEventsChannel, data).Err(); err != nil {
		log.Printf("Failed to publish chat event: %v", err)
	}
}
