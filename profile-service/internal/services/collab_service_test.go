package services

import (
	"context"
	"testing"

	"dreamforge-app/profile-service/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeCollabRepo struct {
	requests map[primitive.ObjectID]*models.CollaborationRequest
}

func newFakeCollabRepo() *fakeCollabRepo {
	return &fakeCollabRepo{requests: make(map[primitive.ObjectID]*models.CollaborationRequest)}
}

func (f *fakeCollabRepo) Create(ctx context.Context, req *models.CollaborationRequest) error {
	req.ID = primitive.NewObjectID()
	req.Status = models.RequestPending
	stored := *req
	f.requests[req.ID] = &stored
	return nil
}

func (f *fakeCollabRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.CollaborationRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *req
	return &copied, nil
}

func (f *fakeCollabRepo) ListByUser(ctx context.Context, userID string) ([]models.CollaborationRequest, error) {
	result := make([]models.CollaborationRequest, 0)
	for _, req := range f.requests {
		if req.PatronID == userID || req.CreatorID == userID {
			result = append(result, *req)
		}
	}
	return result, nil
}

func (f *fakeCollabRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.RequestStatus) error {
	req, ok := f.requests[id]
	if !ok {
		return models.ErrNotFound
	}
	req.Status = status
	return nil
}

type fakeCollabNotifier struct {
	created  int
	resolved int
}

func (f *fakeCollabNotifier) NotifyRequestCreated(ctx context.Context, req *models.CollaborationRequest) {
	f.created++
}

func (f *fakeCollabNotifier) NotifyRequestResolved(ctx context.Context, req *models.CollaborationRequest, status models.RequestStatus) {
	f.resolved++
}

func TestRespondToRequest_Accept(t *testing.T) {
	repo := newFakeCollabRepo()
	notifier := &fakeCollabNotifier{}
	svc := NewCollabService(repo, notifier)

	req := &models.CollaborationRequest{PatronID: "p1", CreatorID: "c1", ProjectTitle: "Album art"}
	if err := svc.CreateRequest(context.Background(), req); err != nil {
		t.Fatalf("CreateRequest failed: %v", err)
	}
	if notifier.created != 1 {
		t.Errorf("created notifications = %d, want 1", notifier.created)
	}

	if err := svc.RespondToRequest(context.Background(), req.ID, models.RequestAccepted); err != nil {
		t.Fatalf("RespondToRequest failed: %v", err)
	}

	stored, _ := svc.GetRequest(context.Background(), req.ID)
	if stored.Status != models.RequestAccepted {
		t.Errorf("status = %s, want accepted", stored.Status)
	}
	if notifier.resolved != 1 {
		t.Errorf("resolved notifications = %d, want 1", notifier.resolved)
	}
}

func TestRespondToRequest_Terminal(t *testing.T) {
	repo := newFakeCollabRepo()
	svc := NewCollabService(repo, &fakeCollabNotifier{})

	req := &models.CollaborationRequest{PatronID: "p1", CreatorID: "c1", ProjectTitle: "Logo"}
	if err := svc.CreateRequest(context.Background(), req); err != nil {
		t.Fatalf("CreateRequest failed: %v", err)
	}

	if err := svc.RespondToRequest(context.Background(), req.ID, models.RequestDeclined); err != nil {
		t.Fatalf("first response failed: %v", err)
	}
	if err := svc.RespondToRequest(context.Background(), req.ID, models.RequestAccepted); err != models.ErrAlreadyResolved {
		t.Fatalf("expected ErrAlreadyResolved, got %v", err)
	}
}

func TestRespondToRequest_InvalidStatus(t *testing.T) {
	repo := newFakeCollabRepo()
	svc := NewCollabService(repo, &fakeCollabNotifier{})

	req := &models.CollaborationRequest{PatronID: "p1", CreatorID: "c1", ProjectTitle: "Site"}
	if err := svc.CreateRequest(context.Background(), req); err != nil {
		t.Fatalf("CreateRequest failed: %v", err)
	}

	if err := svc.RespondToRequest(context.Background(), req.ID, models.RequestPending); err != models.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}
