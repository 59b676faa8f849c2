package repository

import (
	"context"
	"time"

	"dreamforge-app/chat-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ChatRepository struct {
	ticketsCol  *mongo.Collection
	messagesCol *mongo.Collection
}

func NewChatRepository(db *mongo.Database) *ChatRepository {
	return &ChatRepository{
		ticketsCol:  db.Collection("tickets"),
		messagesCol: db.Collection("messages"),
	}
}

// Tickets

func (r *ChatRepository) CreateTicket(ctx context.Context, ticket *models.Ticket) error {
	ticket.ID = primitive.NewObjectID()
	ticket.Status = models.StatusOpen
	if ticket.Priority == "" {
		ticket.Priority = models.PriorityMedium
	}
	ticket.CreatedAt = time.Now()
	ticket.LastUpdate = time.Now()
	_, err := r.ticketsCol.InsertOne(ctx, ticket)
	return err
}

func (r *ChatRepository) GetTicketByID(ctx context.Context, id primitive.ObjectID) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.ticketsCol.FindOne(ctx, bson.M{"_id": id}).Decode(&ticket)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ChatRepository) GetTicketsByUser(ctx context.Context, userID string) ([]models.Ticket, error) {
	filter := bson.M{"$or": []bson.M{
		{"creator_id": userID},
		{"patron_id": userID},
	}}
	cursor, err := r.ticketsCol.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := make([]models.Ticket, 0)
	err = cursor.All(ctx, &result)
	return result, err
}

func (r *ChatRepository) UpdateTicketStatus(ctx context.Context, id primitive.ObjectID, status models.TicketStatus) error {
	_, err := r.ticketsCol.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{
			"status":      status,
			"last_update": time.Now(),
		},
	})
	return err
}

// Messages

func (r *ChatRepository) InsertMessage(ctx context.Context, msg *models.Message) error {
	msg.ID = primitive.NewObjectID()
	msg.CreatedAt = time.Now()
	_, err := r.messagesCol.InsertOne(ctx, msg)
	return err
}

func (r *ChatRepository) GetMessagesByTicket(ctx context.Context, ticketID primitive.ObjectID) ([]models.Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.messagesCol.Find(ctx, bson.M{"ticket_id": ticketID}, opts)
	if err != nil {
		return nil, err
	}
	result := make([]models.Message, 0)
	err = cursor.All(ctx, &result)
	return result, err
}

// MarkMessagesAsRead flips is_read on every unread message addressed to
// userID in the ticket. Matching zero documents is a no-op, so retries are
// safe.
func (r *ChatRepository) MarkMessagesAsRead(ctx context.Context, ticketID primitive.ObjectID, userID string) error {
	filter := bson.M{
		"ticket_id":   ticketID,
		"receiver_id": userID,
		"is_read":     false,
	}
	_, err := r.messagesCol.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"is_read": true}})
	return err
}
