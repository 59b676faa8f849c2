package main

import (
	"context"
	"log"
	"net/http"

	"dreamforge-app/chat-service/internal/config"
	"dreamforge-app/chat-service/internal/handler"
	"dreamforge-app/chat-service/internal/repository"
	"dreamforge-app/chat-service/internal/services"
	"dreamforge-app/chat-service/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	baseCtx := context.Background()
	ctx, shutdownManager := utils.NewShutdownManager(baseCtx)
	shutdownManager.StartListening()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// MongoDB
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Mongo connection failed:", err)
	}

	shutdownManager.Register(func(ctx context.Context) error {
		log.Println("[SHUTDOWN] Closing MongoDB connection...")
		return mongoClient.Disconnect(ctx)
	})

	db := mongoClient.Database(cfg.MongoDB)

	// Redis
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatal("Invalid Redis URL:", err)
	}
	rdb := redis.NewClient(redisOpts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}

	shutdownManager.Register(func(ctx context.Context) error {
		log.Println("[SHUTDOWN] Closing Redis connection...")
		return rdb.Close()
	})

	// Repository, publisher and chat service
	repo := repository.NewChatRepository(db)
	publisher := utils.NewRedisPublisher(rdb)
	chatService := services.NewChatService(repo, publisher)
	chatHandler := handler.NewChatHandler(chatService)

	// Websocket hub fed by the Redis chat channel
	hub := handler.NewHub()
	go hub.Run()
	go utils.SubscribeToMessages(ctx, rdb, hub)

	// Router and endpoints
	router := gin.Default()

	authMiddleware := utils.AuthMiddleware(cfg.AuthServiceURL)

	api := router.Group("/api/chat")
	{
		api.POST("/tickets", authMiddleware, chatHandler.CreateTicket)
		api.GET("/tickets", authMiddleware, chatHandler.GetTickets)
		api.GET("/tickets/:ticketId", authMiddleware, chatHandler.GetTicket)
		api.PUT("/tickets/:ticketId/status", authMiddleware, chatHandler.UpdateTicketStatus)
		api.GET("/tickets/:ticketId/messages", authMiddleware, chatHandler.GetMessages)
		api.PUT("/tickets/:ticketId/read", authMiddleware, chatHandler.MarkMessagesAsRead)
		api.POST("/messages", authMiddleware, chatHandler.SendMessage)
		api.GET("/ws/:ticketId", authMiddleware, handler.ServeWS(hub))
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Println("Chat service running on :" + cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	shutdownManager.Register(func(ctx context.Context) error {
		log.Println("[SHUTDOWN] Shutting down HTTP server...")
		return server.Shutdown(ctx)
	})

	select {}
}
