package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AccountRepository removes per-user rows from the collections that depend on
// an account. Every delete matches zero or more documents, so a retried
// cascade repeats already-completed steps as no-ops.
type AccountRepository struct {
	profilesCol *mongo.Collection
	settingsCol *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{
		profilesCol: db.Collection("profiles"),
		settingsCol: db.Collection("user_settings"),
	}
}

func (r *AccountRepository) DeleteProfiles(ctx context.Context, userID string) error {
	_, err := r.profilesCol.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}

func (r *AccountRepository) DeleteSettings(ctx context.Context, userID string) error {
	_, err := r.settingsCol.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
