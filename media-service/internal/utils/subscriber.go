package utils

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
)

const AccountEventsChannel = "account_events"

// MediaPurger removes everything a deleted user stored.
type MediaPurger interface {
	DeleteUserMedia(ctx context.Context, userID string) (int64, error)
}

// SubscribeToAccountEvents purges a user's media when their account is
// deleted. Metadata cleanup is idempotent, so replayed events are harmless.
func SubscribeToAccountEvents(ctx context.Context, rdb *redis.Client, purger MediaPurger) {
	pubsub := rdb.Subscribe(ctx, AccountEventsChannel)
	defer pubsub.Close()

	log.Printf("Subscribed to Redis channel: %s", AccountEventsChannel)

	ch := pubsub.Channel()
	for {
		select {
		case msg := <-ch:
			var event struct {
				UserID string `json:"user_id"`
				Type   string `json:"type"`
			}
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("Error unmarshaling account event: %v", err)
				continue
			}
			if event.UserID == "" {
				continue
			}
			deleted, err := purger.DeleteUserMedia(ctx, event.UserID)
			if err != nil {
				log.Printf("Error purging media for user %s: %v", event.UserID, err)
				continue
			}
			log.Printf("Purged %d media records for deleted user %s", deleted, event.UserID)
		case <-ctx.Done():
			log.Println("Stopping account events subscriber...")
			return
		}
	}
}
