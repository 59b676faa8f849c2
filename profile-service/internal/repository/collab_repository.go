package repository

import (
	"context"
	"errors"
	"time"

	"dreamforge-app/profile-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CollabRepository struct {
	col *mongo.Collection
}

func NewCollabRepository(db *mongo.Database) *CollabRepository {
	return &CollabRepository{col: db.Collection("collaboration_requests")}
}

func (r *CollabRepository) Create(ctx context.Context, req *models.CollaborationRequest) error {
	req.ID = primitive.NewObjectID()
	req.Status = models.RequestPending
	req.CreatedAt = time.Now()
	req.UpdatedAt = time.Now()
	_, err := r.col.InsertOne(ctx, req)
	return err
}

func (r *CollabRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.CollaborationRequest, error) {
	var req models.CollaborationRequest
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&req)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *CollabRepository) ListByUser(ctx context.Context, userID string) ([]models.CollaborationRequest, error) {
	filter := bson.M{"$or": []bson.M{
		{"patron_id": userID},
		{"creator_id": userID},
	}}
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := make([]models.CollaborationRequest, 0)
	err = cursor.All(ctx, &result)
	return result, err
}

func (r *CollabRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.RequestStatus) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": time.Now(),
		},
	})
	return err
}
