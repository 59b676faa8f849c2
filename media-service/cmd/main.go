package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"dreamforge-app/media-service/internal/config"
	"dreamforge-app/media-service/internal/handler"
	"dreamforge-app/media-service/internal/repository"
	"dreamforge-app/media-service/internal/services"
	"dreamforge-app/media-service/internal/utils"

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

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	db := mongoClient.Database(cfg.MongoDB)

	shutdownManager.Register(func(ctx context.Context) error {
		log.Println("[SHUTDOWN] Closing MongoDB connection...")
		return mongoClient.Disconnect(ctx)
	})

	minioClient, err := utils.NewMinioClient(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket)
	if err != nil {
		log.Fatalf("minio init: %v", err)
	}

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

	repo := repository.NewMediaRepository(db)
	svc := services.NewMediaService(repo, minioClient, cfg.MinioBucket, cfg.MinioPublicURL)
	mediaHandler := handler.NewMediaHandler(svc)

	// Purge stored media when accounts are deleted.
	go utils.SubscribeToAccountEvents(ctx, rdb, svc)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.RedirectTrailingSlash = false

	media := router.Group("/media")
	media.Use(utils.AuthMiddleware(cfg.AuthServiceURL))
	{
		media.POST("/avatar", mediaHandler.UploadAvatar)
		media.POST("/project", mediaHandler.UploadProjectImage)
		media.GET("/avatars", mediaHandler.GetAvatars)
		media.GET("/projects/:userId", mediaHandler.GetProjectImages)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Println("Media service running on :" + cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	shutdownManager.Register(func(ctx context.Context) error {
		log.Println("[SHUTDOWN] Shutting down HTTP server...")
		return server.Shutdown(ctx)
	})

	select {}
}
