package services

import (
	"context"

	"dreamforge-app/profile-service/internal/models"
	"dreamforge-app/profile-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

type ProfileService struct {
	repo *repository.ProfileRepository
}

func NewProfileService(repo *repository.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) CreateProfile(ctx context.Context, profile *models.Profile) error {
	if existing, _ := s.repo.GetProfileByUserID(ctx, profile.UserID); existing != nil {
		return models.ErrAlreadyExists
	}
	return s.repo.CreateProfile(ctx, profile)
}

func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	return s.repo.GetProfileByUserID(ctx, userID)
}

func (s *ProfileService) ListProfiles(ctx context.Context, role models.Role) ([]models.Profile, error) {
	return s.repo.ListProfilesByRole(ctx, role)
}

// UpdateProfile applies only the fields the dialog actually sent; nil
// pointers mean "leave unchanged".
func (s *ProfileService) UpdateProfile(ctx context.Context, userID string, req ProfileUpdate) error {
	fields := bson.M{}
	if req.DisplayName != nil {
		fields["display_name"] = *req.DisplayName
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.Skills != nil {
		fields["skills"] = req.Skills
	}
	if req.AvatarURL != nil {
		fields["avatar_url"] = *req.AvatarURL
	}
	if req.PortfolioURL != nil {
		fields["portfolio_url"] = *req.PortfolioURL
	}
	if len(fields) == 0 {
		return nil
	}
	return s.repo.UpdateProfileFields(ctx, userID, fields)
}

type ProfileUpdate struct {
	DisplayName  *string  `json:"display_name"`
	Bio          *string  `json:"bio"`
	Skills       []string `json:"skills"`
	AvatarURL    *string  `json:"avatar_url"`
	PortfolioURL *string  `json:"portfolio_url"`
}

// Settings

func (s *ProfileService) GetSettings(ctx context.Context, userID string) (*models.UserSettings, error) {
	settings, err := s.repo.GetSettings(ctx, userID)
	if err == models.ErrNotFound {
		// First read returns the defaults without persisting them.
		return &models.UserSettings{
			UserID:             userID,
			EmailNotifications: true,
			PushNotifications:  true,
			Language:           "en",
		}, nil
	}
	return settings, err
}

func (s *ProfileService) SaveSettings(ctx context.Context, settings *models.UserSettings) error {
	return s.repo.UpsertSettings(ctx, settings)
}
