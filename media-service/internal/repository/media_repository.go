package repository

import (
	"context"
	"time"

	"dreamforge-app/media-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MediaRepository struct {
	col *mongo.Collection
}

func NewMediaRepository(db *mongo.Database) *MediaRepository {
	return &MediaRepository{col: db.Collection("media")}
}

func (r *MediaRepository) Save(ctx context.Context, m *models.Media) error {
	m.CreatedAt = time.Now()
	res, err := r.col.InsertOne(ctx, m)
	if err != nil {
		return err
	}
	m.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MediaRepository) FindByID(ctx context.Context, id string) (*models.Media, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var media models.Media
	if err := r.col.FindOne(ctx, bson.M{"_id": objID}).Decode(&media); err != nil {
		return nil, err
	}
	return &media, nil
}

// FindByUser lists a user's media of one type, empty slice instead of null
// so JSON consumers always get an array.
func (r *MediaRepository) FindByUser(ctx context.Context, userID string, mType models.MediaType) ([]models.Media, error) {
	cursor, err := r.col.Find(ctx, bson.M{"user_id": userID, "type": mType})
	if err != nil {
		return nil, err
	}
	res := make([]models.Media, 0)
	if err := cursor.All(ctx, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *MediaRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
