package repository

import (
	"context"
	"errors"
	"time"

	"dreamforge-app/profile-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProfileRepository struct {
	profilesCol *mongo.Collection
	settingsCol *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{
		profilesCol: db.Collection("profiles"),
		settingsCol: db.Collection("user_settings"),
	}
}

func (r *ProfileRepository) CreateProfile(ctx context.Context, profile *models.Profile) error {
	profile.ID = primitive.NewObjectID()
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = time.Now()
	_, err := r.profilesCol.InsertOne(ctx, profile)
	return err
}

func (r *ProfileRepository) GetProfileByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.profilesCol.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) ListProfilesByRole(ctx context.Context, role models.Role) ([]models.Profile, error) {
	filter := bson.M{}
	if role != "" {
		filter["role"] = role
	}
	cursor, err := r.profilesCol.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := make([]models.Profile, 0)
	err = cursor.All(ctx, &result)
	return result, err
}

func (r *ProfileRepository) UpdateProfileFields(ctx context.Context, userID string, fields bson.M) error {
	fields["updated_at"] = time.Now()
	res, err := r.profilesCol.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Settings

func (r *ProfileRepository) GetSettings(ctx context.Context, userID string) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := r.settingsCol.FindOne(ctx, bson.M{"user_id": userID}).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &settings, nil
}

// UpsertSettings writes the whole settings document for the user, creating
// it on first save.
func (r *ProfileRepository) UpsertSettings(ctx context.Context, settings *models.UserSettings) error {
	settings.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := r.settingsCol.ReplaceOne(ctx, bson.M{"user_id": settings.UserID}, settings, opts)
	return err
}
