package main

import (
	"context"
	"log"
	"net/http"

	"dreamforge-app/profile-service/internal/config"
	"dreamforge-app/profile-service/internal/handler"
	"dreamforge-app/profile-service/internal/repository"
	"dreamforge-app/profile-service/internal/services"
	"dreamforge-app/profile-service/internal/utils"

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
	db := mongoClient.Database(cfg.MongoDB)

	shutdownManager.Register(func(ctx context.Context) error {
		log.Println("[SHUTDOWN] Closing MongoDB connection...")
		return mongoClient.Disconnect(ctx)
	})

	// Redis, for collaboration events
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

	profileRepo := repository.NewProfileRepository(db)
	collabRepo := repository.NewCollabRepository(db)
	notifier := utils.NewRedisCollabNotifier(rdb)

	profileService := services.NewProfileService(profileRepo)
	collabService := services.NewCollabService(collabRepo, notifier)

	profileHandler := handler.NewProfileHandler(profileService)
	collabHandler := handler.NewCollabHandler(collabService)

	router := gin.Default()

	authMiddleware := utils.AuthMiddleware(cfg.AuthServiceURL)

	profiles := router.Group("/api/profiles", authMiddleware)
	{
		profiles.POST("", profileHandler.CreateProfile)
		profiles.GET("", profileHandler.ListProfiles)
		profiles.GET("/me", profileHandler.GetMe)
		profiles.PUT("/me", profileHandler.UpdateProfile)
		profiles.GET("/me/settings", profileHandler.GetSettings)
		profiles.PUT("/me/settings", profileHandler.SaveSettings)
		profiles.GET("/:userId", profileHandler.GetProfile)
	}

	collaborations := router.Group("/api/collaborations", authMiddleware)
	{
		collaborations.POST("", collabHandler.CreateRequest)
		collaborations.GET("", collabHandler.ListRequests)
		collaborations.GET("/:id", collabHandler.GetRequest)
		collaborations.PUT("/:id/respond", collabHandler.RespondToRequest)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Println("Profile service running on :" + cfg.Port)
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
