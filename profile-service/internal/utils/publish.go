package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"dreamforge-app/profile-service/internal/models"

	"github.com/redis/go-redis/v9"
)

const CollabEventsChannel = "collab_events"

type CollabEventPayload struct {
	UserID  string `json:"user_id"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

// RedisCollabNotifier publishes collaboration events for the notification
// service. Failures are logged only; the request itself is already stored.
type RedisCollabNotifier struct {
	rdb *redis.Client
}

func NewRedisCollabNotifier(rdb *redis.Client) *RedisCollabNotifier {
	return &RedisCollabNotifier{rdb: rdb}
}

func (n *RedisCollabNotifier) NotifyRequestCreated(ctx context.Context, req *models.CollaborationRequest) {
	n.publish(ctx, CollabEventPayload{
		UserID:  req.CreatorID,
		Type:    "collab_request",
		Message: fmt.Sprintf("New collaboration request: %s", req.ProjectTitle),
	})
}

func (n *RedisCollabNotifier) NotifyRequestResolved(ctx context.Context, req *models.CollaborationRequest, status models.RequestStatus) {
	n.publish(ctx, CollabEventPayload{
		UserID:  req.PatronID,
		Type:    "collab_response",
		Message: fmt.Sprintf("Your request %q was %s", req.ProjectTitle, status),
	})
}

func (n *RedisCollabNotifier) publish(ctx context.Context, payload CollabEventPayload) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal collab event: %v", err)
		return
	}
	if err := n.rdb.Publish(ctx, CollabEventsChannel, data).Err(); err != nil {
		log.Printf("Failed to publish collab event: %v", err)
	}
}
