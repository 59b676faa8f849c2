package services

import (
	"context"

	"dreamforge-app/profile-service/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CollabService struct {
	repo     CollabRepository
	notifier CollabNotifier
}

type CollabRepository interface {
	Create(ctx context.Context, req *models.CollaborationRequest) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.CollaborationRequest, error)
	ListByUser(ctx context.Context, userID string) ([]models.CollaborationRequest, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.RequestStatus) error
}

type CollabNotifier interface {
	NotifyRequestCreated(ctx context.Context, req *models.CollaborationRequest)
	NotifyRequestResolved(ctx context.Context, req *models.CollaborationRequest, status models.RequestStatus)
}

func NewCollabService(repo CollabRepository, notifier CollabNotifier) *CollabService {
	return &CollabService{repo: repo, notifier: notifier}
}

func (s *CollabService) CreateRequest(ctx context.Context, req *models.CollaborationRequest) error {
	if err := s.repo.Create(ctx, req); err != nil {
		return err
	}
	s.notifier.NotifyRequestCreated(ctx, req)
	return nil
}

func (s *CollabService) GetRequest(ctx context.Context, id primitive.ObjectID) (*models.CollaborationRequest, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CollabService) ListRequests(ctx context.Context, userID string) ([]models.CollaborationRequest, error) {
	return s.repo.ListByUser(ctx, userID)
}

// RespondToRequest resolves a pending request. A request can be resolved
// once; accepted and declined are terminal.
func (s *CollabService) RespondToRequest(ctx context.Context, id primitive.ObjectID, status models.RequestStatus) error {
	if status != models.RequestAccepted && status != models.RequestDeclined {
		return models.ErrInvalidStatus
	}

	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if req.Status != models.RequestPending {
		return models.ErrAlreadyResolved
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	s.notifier.NotifyRequestResolved(ctx, req, status)
	return nil
}
