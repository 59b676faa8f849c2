package repository

import (
	"context"
	"time"

	"dreamforge-app/notification-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotificationRepository struct {
	col      *mongo.Collection
	settings *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{
		col:      db.Collection("notifications"),
		settings: db.Collection("user_settings"),
	}
}

func (r *NotificationRepository) Create(ctx context.Context, notif *models.Notification) error {
	notif.ID = primitive.NewObjectID()
	notif.CreatedAt = time.Now()
	notif.IsRead = false
	_, err := r.col.InsertOne(ctx, notif)
	return err
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notifications := make([]models.Notification, 0)
	if err = cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *NotificationRepository) MarkAsRead(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"is_read": true}})
	return err
}

// EmailAllowed checks the user's notification settings. A user with no
// settings row gets the defaults, which allow email.
func (r *NotificationRepository) EmailAllowed(ctx context.Context, userID string) (bool, error) {
	var s struct {
		EmailNotifications bool `bson:"email_notifications"`
	}
	err := r.settings.FindOne(ctx, bson.M{"user_id": userID}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return s.EmailNotifications, nil
}
