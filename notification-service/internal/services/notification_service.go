package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"dreamforge-app/notification-service/internal/models"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ChatEventsChannel    = "chat_events"
	CollabEventsChannel  = "collab_events"
	AccountEventsChannel = "account_events"
)

type NotificationService struct {
	repo      NotificationRepository
	redis     *redis.Client
	mailer    Mailer
	directory UserDirectory
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByUser(ctx context.Context, userID string) ([]models.Notification, error)
	MarkAsRead(ctx context.Context, id primitive.ObjectID) error
	EmailAllowed(ctx context.Context, userID string) (bool, error)
}

// UserDirectory resolves a user id to an email address for the email
// delivery channel.
type UserDirectory interface {
	LookupEmail(ctx context.Context, userID string) (string, error)
}

func NewNotificationService(repo NotificationRepository, rdb *redis.Client, mailer Mailer, directory UserDirectory) *NotificationService {
	return &NotificationService{
		repo:      repo,
		redis:     rdb,
		mailer:    mailer,
		directory: directory,
	}
}

// EventPayload is the shape every service publishes on its Redis channel.
type EventPayload struct {
	UserID  string `json:"user_id"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ProcessEvent turns a Redis event into a stored notification, choosing the
// title and delivery channel by the source channel.
func (s *NotificationService) ProcessEvent(ctx context.Context, channel string, payload []byte) error {
	var event EventPayload
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if event.UserID == "" {
		return fmt.Errorf("event without user_id on channel %s", channel)
	}

	var notifType models.NotificationType
	var deliveryType models.DeliveryMethod
	var title string

	switch channel {
	case ChatEventsChannel:
		notifType = models.TypeChatMessage
		title = "New message"
		deliveryType = models.DeliveryInApp
	case CollabEventsChannel:
		notifType = models.NotificationType(event.Type)
		if notifType != models.TypeCollabRequest && notifType != models.TypeCollabResponse {
			notifType = models.TypeCollabRequest
		}
		title = "Collaboration update"
		deliveryType = models.DeliveryEmail
	case AccountEventsChannel:
		notifType = models.TypeAccountDeleted
		title = "Account removed"
		deliveryType = models.DeliveryInApp
	default:
		notifType = models.TypeSystemMessage
		title = "System notification"
		deliveryType = models.DeliveryInApp
	}

	notification := &models.Notification{
		UserID:       event.UserID,
		Title:        title,
		Message:      event.Message,
		Type:         notifType,
		DeliveryType: deliveryType,
	}

	if err := s.repo.Create(ctx, notification); err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}

	if deliveryType == models.DeliveryEmail {
		s.sendEmail(ctx, notification)
	}

	log.Printf("Notification stored - Type: %s, User: %s", notification.Type, notification.UserID)
	return nil
}

// sendEmail is best effort; the in-app notification is already stored.
func (s *NotificationService) sendEmail(ctx context.Context, notification *models.Notification) {
	allowed, err := s.repo.EmailAllowed(ctx, notification.UserID)
	if err != nil {
		log.Printf("Settings lookup failed for user %s: %v", notification.UserID, err)
		return
	}
	if !allowed {
		return
	}

	email, err := s.directory.LookupEmail(ctx, notification.UserID)
	if err != nil {
		log.Printf("Email lookup failed for user %s: %v", notification.UserID, err)
		return
	}
	if err := s.mailer.Send(email, notification.Title, notification.Message); err != nil {
		log.Printf("Email delivery failed for user %s: %v", notification.UserID, err)
	}
}

func (s *NotificationService) GetNotifications(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.MarkAsRead(ctx, id)
}

// StartRedisSubscribers consumes every event channel until the context is
// cancelled.
func (s *NotificationService) StartRedisSubscribers(ctx context.Context) {
	channels := []string{ChatEventsChannel, CollabEventsChannel, AccountEventsChannel}

	pubsub := s.redis.Subscribe(ctx, channels...)
	defer pubsub.Close()

	log.Printf("Subscribed to Redis channels: %v", channels)

	ch := pubsub.Channel()
	for {
		select {
		case msg := <-ch:
			if err := s.ProcessEvent(ctx, msg.Channel, []byte(msg.Payload)); err != nil {
				log.Printf("Error processing event: %v", err)
			}
		case <-ctx.Done():
			log.Println("Stopping Redis subscribers...")
			return
		}
	}
}
