package utils

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
)

const AccountEventsChannel = "account_events"

type AccountEventPayload struct {
	UserID  string `json:"user_id"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

func PublishAccountDeleted(ctx context.Context, rdb *redis.Client, userID string) {
	payload := AccountEventPayload{
		UserID:  userID,
		Type:    "account_deleted",
		Message: "Account and all associated data removed",
	}
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal account event: %v", err)
		return
	}
	if err := rdb.Publish(ctx, AccountEventsChannel, data).Err(); err != nil {
		log.Printf("Failed to publish account event: %v", err)
	}
}
