package utils

import (
	"context"
	"encoding/json"
	"log"

	"dreamforge-app/chat-service/internal/models"

	"github.com/redis/go-redis/v9"
)

// MessageSink is where received chat messages go; in practice the websocket hub.
type MessageSink interface {
	Deliver(msg *models.Message)
}

// SubscribeToMessages consumes the chat message channel and feeds every
// inserted message to the sink. Runs until the context is cancelled.
func SubscribeToMessages(ctx context.Context, rdb *redis.Client, sink MessageSink) {
	pubsub := rdb.Subscribe(ctx, MessagesChannel)
	defer pubsub.Close()

	log.Println("Subscribed to Redis channel:", MessagesChannel)

	ch := pubsub.Channel()
	for {
		select {
		case msg := <-ch:
			var message models.Message
			if err := json.Unmarshal([]byte(msg.Payload), &message); err != nil {
				log.Printf("Invalid chat message payload: %v", err)
				continue
			}
			sink.Deliver(&message)
		case <-ctx.Done():
			log.Println("Stopping chat message subscriber...")
			return
		}
	}
}
