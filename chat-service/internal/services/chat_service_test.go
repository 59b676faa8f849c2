package services

import (
	"context"
	"sort"
	"testing"
	"time"

	"dreamforge-app/chat-service/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeChatRepo struct {
	messages   []models.Message
	insertErr  error
	markedErr  error
	markCalls  int
	nextOffset time.Duration
}

func (f *fakeChatRepo) CreateTicket(ctx context.Context, t *models.Ticket) error { return nil }
func (f *fakeChatRepo) GetTicketByID(ctx context.Context, id primitive.ObjectID) (*models.Ticket, error) {
	return nil, models.ErrNotFound
}
func (f *fakeChatRepo) GetTicketsByUser(ctx context.Context, userID string) ([]models.Ticket, error) {
	return nil, nil
}
func (f *fakeChatRepo) UpdateTicketStatus(ctx context.Context, id primitive.ObjectID, status models.TicketStatus) error {
	return nil
}

func (f *fakeChatRepo) InsertMessage(ctx context.Context, msg *models.Message) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	msg.ID = primitive.NewObjectID()
	msg.CreatedAt = time.Now().Add(f.nextOffset)
	f.nextOffset += time.Millisecond
	f.messages = append(f.messages, *msg)
	return nil
}

func (f *fakeChatRepo) GetMessagesByTicket(ctx context.Context, ticketID primitive.ObjectID) ([]models.Message, error) {
	result := make([]models.Message, 0)
	for _, m := range f.messages {
		if m.TicketID == ticketID {
			result = append(result, m)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (f *fakeChatRepo) MarkMessagesAsRead(ctx context.Context, ticketID primitive.ObjectID, userID string) error {
	f.markCalls++
	if f.markedErr != nil {
		return f.markedErr
	}
	for i, m := range f.messages {
		if m.TicketID == ticketID && m.ReceiverID == userID && !m.IsRead {
			f.messages[i].IsRead = true
		}
	}
	return nil
}

type fakePublisher struct {
	published []models.Message
	events    []string
}

func (f *fakePublisher) PublishMessage(ctx context.Context, msg *models.Message) {
	f.published = append(f.published, *msg)
}

func (f *fakePublisher) PublishChatEvent(ctx context.Context, userID, text string) {
	f.events = append(f.events, userID)
}

func TestSendMessage_DefaultsAndRoundTrip(t *testing.T) {
	repo := &fakeChatRepo{}
	pub := &fakePublisher{}
	svc := NewChatService(repo, pub)
	ticketID := primitive.NewObjectID()

	msg := &models.Message{
		TicketID:   ticketID,
		SenderID:   "u1",
		ReceiverID: "u2",
		Content:    "hello",
	}
	if err := svc.SendMessage(context.Background(), msg); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if msg.MessageType != "text" {
		t.Errorf("message_type = %q, want %q", msg.MessageType, "text")
	}
	if msg.IsRead {
		t.Error("new message must not be marked read")
	}
	if msg.ID.IsZero() || msg.CreatedAt.IsZero() {
		t.Error("persisted message must carry id and timestamp")
	}

	got, err := svc.GetMessages(context.Background(), ticketID)
	if err != nil {
		t.Fatalf("GetMessages failed: %v", err)
	}
	if len(got) != 1 || got[0].Content != "hello" || got[0].SenderID != "u1" || got[0].ReceiverID != "u2" {
		t.Errorf("round trip returned %+v", got)
	}
	if len(pub.published) != 1 {
		t.Errorf("expected exactly one realtime publish, got %d", len(pub.published))
	}
	if len(pub.events) != 1 || pub.events[0] != "u2" {
		t.Errorf("expected one chat event for receiver, got %v", pub.events)
	}
}

func TestSendMessage_EmptyContent(t *testing.T) {
	repo := &fakeChatRepo{}
	pub := &fakePublisher{}
	svc := NewChatService(repo, pub)

	msg := &models.Message{
		TicketID:   primitive.NewObjectID(),
		SenderID:   "u1",
		ReceiverID: "u2",
		Content:    "   ",
	}
	if err := svc.SendMessage(context.Background(), msg); err != models.ErrEmptyContent {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
	if len(repo.messages) != 0 {
		t.Error("blank message must not be stored")
	}
	if len(pub.published) != 0 {
		t.Error("blank message must not be published")
	}
}

func TestSendMessage_InsertFailureDoesNotPublish(t *testing.T) {
	repo := &fakeChatRepo{insertErr: models.ErrNotFound}
	pub := &fakePublisher{}
	svc := NewChatService(repo, pub)

	msg := &models.Message{
		TicketID:   primitive.NewObjectID(),
		SenderID:   "u1",
		ReceiverID: "u2",
		Content:    "hello",
	}
	if err := svc.SendMessage(context.Background(), msg); err == nil {
		t.Fatal("expected insert error")
	}
	if len(pub.published) != 0 || len(pub.events) != 0 {
		t.Error("failed insert must not publish anything")
	}
}

func TestGetMessages_AscendingOrder(t *testing.T) {
	repo := &fakeChatRepo{}
	pub := &fakePublisher{}
	svc := NewChatService(repo, pub)
	ticketID := primitive.NewObjectID()

	for _, text := range []string{"first", "second", "third"} {
		msg := &models.Message{TicketID: ticketID, SenderID: "u1", ReceiverID: "u2", Content: text}
		if err := svc.SendMessage(context.Background(), msg); err != nil {
			t.Fatalf("SendMessage failed: %v", err)
		}
	}

	got, err := svc.GetMessages(context.Background(), ticketID)
	if err != nil {
		t.Fatalf("GetMessages failed: %v", err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.Before(got[i-1].CreatedAt) {
			t.Fatalf("messages out of order at index %d", i)
		}
	}
	if got[0].Content != "first" || got[2].Content != "third" {
		t.Errorf("unexpected order: %v, %v, %v", got[0].Content, got[1].Content, got[2].Content)
	}
}

func TestMarkMessagesAsRead_Idempotent(t *testing.T) {
	repo := &fakeChatRepo{}
	pub := &fakePublisher{}
	svc := NewChatService(repo, pub)
	ticketID := primitive.NewObjectID()

	for i := 0; i < 2; i++ {
		msg := &models.Message{TicketID: ticketID, SenderID: "u1", ReceiverID: "u2", Content: "hi"}
		if err := svc.SendMessage(context.Background(), msg); err != nil {
			t.Fatalf("SendMessage failed: %v", err)
		}
	}

	readSet := func() []bool {
		msgs, _ := svc.GetMessages(context.Background(), ticketID)
		flags := make([]bool, len(msgs))
		for i, m := range msgs {
			flags[i] = m.IsRead
		}
		return flags
	}

	if err := svc.MarkMessagesAsRead(context.Background(), ticketID, "u2"); err != nil {
		t.Fatalf("MarkMessagesAsRead failed: %v", err)
	}
	first := readSet()

	if err := svc.MarkMessagesAsRead(context.Background(), ticketID, "u2"); err != nil {
		t.Fatalf("second MarkMessagesAsRead failed: %v", err)
	}
	second := readSet()

	for i := range first {
		if !first[i] || first[i] != second[i] {
			t.Fatalf("mark-read not idempotent: first=%v second=%v", first, second)
		}
	}
}
