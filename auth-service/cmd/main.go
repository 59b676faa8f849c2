package main

import (
	"context"
	"log"
	"net/http"

	"dreamforge-app/auth-service/internal/config"
	handlers "dreamforge-app/auth-service/internal/handler"
	repositories "dreamforge-app/auth-service/internal/repository"
	"dreamforge-app/auth-service/internal/services"
	"dreamforge-app/auth-service/internal/utils"

	"github.com/gin-gonic/gin"
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
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	db := mongoClient.Database(cfg.MongoDB)

	shutdownManager.Register(func(ctx context.Context) error {
		log.Println("[SHUTDOWN] Closing MongoDB connection...")
		return mongoClient.Disconnect(ctx)
	})

	// Redis profile cache
	redisClient, err := utils.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	shutdownManager.Register(func(ctx context.Context) error {
		log.Println("[SHUTDOWN] Closing Redis connection...")
		return redisClient.Close()
	})

	userRepo := repositories.NewUserRepository(db)
	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo, jwtUtil, redisClient)
	authHandler := handlers.NewAuthHandler(authService, cfg.ServiceToken)

	router := gin.Default()

	auth := router.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/validate", authHandler.Validate)
		auth.GET("/me", utils.RequireJWT(jwtUtil), authHandler.GetProfile)
	}

	admin := router.Group("/admin")
	{
		admin.GET("/users/:id", authHandler.AdminGetUser)
		admin.DELETE("/users/:id", authHandler.AdminDeleteUser)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Println("Auth service running on :" + cfg.Port)
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
