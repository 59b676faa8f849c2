package services

import (
	"context"
	"errors"
	"testing"

	"dreamforge-app/notification-service/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeNotificationRepo struct {
	created     []models.Notification
	failOn      bool
	emailOptOut map[string]bool
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	if f.failOn {
		return errors.New("insert failed")
	}
	f.created = append(f.created, *n)
	return nil
}

func (f *fakeNotificationRepo) ListByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range f.created {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkAsRead(ctx context.Context, id primitive.ObjectID) error {
	return nil
}

func (f *fakeNotificationRepo) EmailAllowed(ctx context.Context, userID string) (bool, error) {
	return !f.emailOptOut[userID], nil
}

type fakeMailer struct {
	sent []string
	err  error
}

func (f *fakeMailer) Send(to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}

type fakeDirectory struct {
	emails map[string]string
}

func (f *fakeDirectory) LookupEmail(ctx context.Context, userID string) (string, error) {
	email, ok := f.emails[userID]
	if !ok {
		return "", errors.New("unknown user")
	}
	return email, nil
}

func newTestService(repo *fakeNotificationRepo, mailer *fakeMailer) *NotificationService {
	return NewNotificationService(repo, nil, mailer, &fakeDirectory{
		emails: map[string]string{"user-1": "user-1@example.com"},
	})
}

func TestProcessEventChatMessage(t *testing.T) {
	repo := &fakeNotificationRepo{}
	mailer := &fakeMailer{}
	svc := newTestService(repo, mailer)

	payload := []byte(`{"user_id":"user-1","type":"chat_message","message":"hello"}`)
	if err := svc.ProcessEvent(context.Background(), ChatEventsChannel, payload); err != nil {
		t.Fatalf("ProcessEvent failed: %v", err)
	}

	if len(repo.created) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(repo.created))
	}
	got := repo.created[0]
	if got.Type != models.TypeChatMessage {
		t.Errorf("expected type %s, got %s", models.TypeChatMessage, got.Type)
	}
	if got.DeliveryType != models.DeliveryInApp {
		t.Errorf("expected in_app delivery, got %s", got.DeliveryType)
	}
	if len(mailer.sent) != 0 {
		t.Errorf("chat events must not send email, sent to %v", mailer.sent)
	}
}

func TestProcessEventCollabSendsEmail(t *testing.T) {
	repo := &fakeNotificationRepo{}
	mailer := &fakeMailer{}
	svc := newTestService(repo, mailer)

	payload := []byte(`{"user_id":"user-1","type":"collab_response","message":"request accepted"}`)
	if err := svc.ProcessEvent(context.Background(), CollabEventsChannel, payload); err != nil {
		t.Fatalf("ProcessEvent failed: %v", err)
	}

	if repo.created[0].Type != models.TypeCollabResponse {
		t.Errorf("expected type %s, got %s", models.TypeCollabResponse, repo.created[0].Type)
	}
	if len(mailer.sent) != 1 || mailer.sent[0] != "user-1@example.com" {
		t.Errorf("expected email to user-1@example.com, sent %v", mailer.sent)
	}
}

func TestProcessEventRespectsEmailOptOut(t *testing.T) {
	repo := &fakeNotificationRepo{emailOptOut: map[string]bool{"user-1": true}}
	mailer := &fakeMailer{}
	svc := newTestService(repo, mailer)

	payload := []byte(`{"user_id":"user-1","type":"collab_request","message":"new request"}`)
	if err := svc.ProcessEvent(context.Background(), CollabEventsChannel, payload); err != nil {
		t.Fatalf("ProcessEvent failed: %v", err)
	}

	if len(repo.created) != 1 {
		t.Fatalf("in-app notification must still be stored")
	}
	if len(mailer.sent) != 0 {
		t.Errorf("no email expected for opted-out user, sent to %v", mailer.sent)
	}
}

func TestProcessEventEmailFailureStillStores(t *testing.T) {
	repo := &fakeNotificationRepo{}
	mailer := &fakeMailer{err: errors.New("smtp down")}
	svc := newTestService(repo, mailer)

	payload := []byte(`{"user_id":"user-1","type":"collab_request","message":"new request"}`)
	if err := svc.ProcessEvent(context.Background(), CollabEventsChannel, payload); err != nil {
		t.Fatalf("ProcessEvent should not fail on email errors: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("notification must be stored even when email fails")
	}
}

func TestProcessEventAccountDeleted(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := newTestService(repo, &fakeMailer{})

	payload := []byte(`{"user_id":"user-1","type":"account_deleted","message":"account removed"}`)
	if err := svc.ProcessEvent(context.Background(), AccountEventsChannel, payload); err != nil {
		t.Fatalf("ProcessEvent failed: %v", err)
	}
	if repo.created[0].Type != models.TypeAccountDeleted {
		t.Errorf("expected type %s, got %s", models.TypeAccountDeleted, repo.created[0].Type)
	}
}

func TestProcessEventRejectsMissingUser(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := newTestService(repo, &fakeMailer{})

	payload := []byte(`{"type":"chat_message","message":"hello"}`)
	if err := svc.ProcessEvent(context.Background(), ChatEventsChannel, payload); err == nil {
		t.Fatal("expected error for event without user_id")
	}
	if len(repo.created) != 0 {
		t.Errorf("nothing should be stored for invalid events")
	}
}

func TestProcessEventInvalidJSON(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := newTestService(repo, &fakeMailer{})

	if err := svc.ProcessEvent(context.Background(), ChatEventsChannel, []byte("{not json")); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}
