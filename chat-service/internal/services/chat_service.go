package services

import (
	"context"
	"log"
	"strings"

	"dreamforge-app/chat-service/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ChatService struct {
	repo      ChatRepository
	publisher Publisher
}

type ChatRepository interface {
	CreateTicket(ctx context.Context, ticket *models.Ticket) error
	GetTicketByID(ctx context.Context, id primitive.ObjectID) (*models.Ticket, error)
	GetTicketsByUser(ctx context.Context, userID string) ([]models.Ticket, error)
	UpdateTicketStatus(ctx context.Context, id primitive.ObjectID, status models.TicketStatus) error
	InsertMessage(ctx context.Context, msg *models.Message) error
	GetMessagesByTicket(ctx context.Context, ticketID primitive.ObjectID) ([]models.Message, error)
	MarkMessagesAsRead(ctx context.Context, ticketID primitive.ObjectID, userID string) error
}

type Publisher interface {
	PublishMessage(ctx context.Context, msg *models.Message)
	PublishChatEvent(ctx context.Context, userID, text string)
}

func NewChatService(repo ChatRepository, publisher Publisher) *ChatService {
	return &ChatService{repo: repo, publisher: publisher}
}

// Tickets

func (s *ChatService) CreateTicket(ctx context.Context, ticket *models.Ticket) error {
	return s.repo.CreateTicket(ctx, ticket)
}

func (s *ChatService) GetTicketByID(ctx context.Context, id primitive.ObjectID) (*models.Ticket, error) {
	return s.repo.GetTicketByID(ctx, id)
}

func (s *ChatService) GetTicketsForUser(ctx context.Context, userID string) ([]models.Ticket, error) {
	return s.repo.GetTicketsByUser(ctx, userID)
}

func (s *ChatService) UpdateTicketStatus(ctx context.Context, id primitive.ObjectID, status models.TicketStatus) error {
	return s.repo.UpdateTicketStatus(ctx, id, status)
}

// Messages

// SendMessage persists the message and fans it out to the realtime channel
// plus a notification event for the receiver. The message is returned with
// its server-assigned id and timestamp. Nothing is published unless the
// insert succeeded.
func (s *ChatService) SendMessage(ctx context.Context, msg *models.Message) error {
	msg.Content = strings.TrimSpace(msg.Content)
	if msg.Content == "" {
		return models.ErrEmptyContent
	}
	if msg.MessageType == "" {
		msg.MessageType = models.DefaultMessageType
	}
	msg.IsRead = false

	if err := s.repo.InsertMessage(ctx, msg); err != nil {
		return err
	}

	s.publisher.PublishMessage(ctx, msg)
	s.publisher.PublishChatEvent(ctx, msg.ReceiverID, msg.Content)
	return nil
}

func (s *ChatService) GetMessages(ctx context.Context, ticketID primitive.ObjectID) ([]models.Message, error) {
	return s.repo.GetMessagesByTicket(ctx, ticketID)
}

// MarkMessagesAsRead is idempotent; a failed update is logged and reported
// but must not block message delivery on the caller's side.
func (s *ChatService) MarkMessagesAsRead(ctx context.Context, ticketID primitive.ObjectID, userID string) error {
	if err := s.repo.MarkMessagesAsRead(ctx, ticketID, userID); err != nil {
		log.Printf("Failed to mark messages as read for ticket %s: %v", ticketID.Hex(), err)
		return err
	}
	return nil
}
