package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"dreamforge-app/account-service/internal/config"
	"dreamforge-app/account-service/internal/handler"
	"dreamforge-app/account-service/internal/repository"
	"dreamforge-app/account-service/internal/services"
	"dreamforge-app/account-service/internal/utils"

	"github.com/gin-contrib/cors"
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

	// Redis, for the deletion audit event
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

	repo := repository.NewAccountRepository(db)
	identity := utils.NewAuthAdminClient(cfg.AuthServiceURL, cfg.ServiceToken)
	notify := func(ctx context.Context, userID string) {
		utils.PublishAccountDeleted(ctx, rdb, userID)
	}
	deletionService := services.NewDeletionService(repo, identity, notify)
	deletionHandler := handler.NewDeletionHandler(deletionService)

	router := gin.Default()

	// The front end calls this function directly, so every response has to
	// carry the permissive CORS headers, preflights included.
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"POST", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "X-Client-Info", "Apikey", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	router.HandleMethodNotAllowed = true
	router.NoMethod(handler.MethodNotAllowed)

	router.POST("/functions/delete-account", deletionHandler.DeleteAccount)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Println("Account service running on :" + cfg.Port)
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
