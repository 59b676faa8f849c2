package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"dreamforge-app/api-gateway/internal/proxy"
	"dreamforge-app/api-gateway/internal/utils"
	"dreamforge-app/api-gateway/setup"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	r := gin.Default()

	authURL := os.Getenv("AUTH_SERVICE_URL")
	accountURL := os.Getenv("ACCOUNT_SERVICE_URL")
	chatURL := os.Getenv("CHAT_SERVICE_URL")

	// The account deletion function handles CORS itself, so the gateway
	// layer only covers /api routes.
	corsMW := cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})

	// Public routes
	r.Any("/api/auth/*proxyPath", corsMW, proxy.To(authURL, proxy.Prefix("/api/auth", "/auth")))
	r.Any("/functions/delete-account", proxy.To(accountURL, proxy.Keep()))

	// Realtime chat; token travels as a query parameter on the upgrade
	// request and the chat service validates it.
	r.Any("/ws/*proxyPath", proxy.To(chatURL, proxy.Prefix("/ws", "/api/chat/ws")))

	// Secured routes
	secured := r.Group("/api", corsMW)
	secured.Use(utils.AuthMiddleware(authURL))
	setup.ConfigureServiceProxies(secured)

	// Moderation routes
	moderation := secured.Group("/moderation")
	moderation.Use(utils.RequireRoles("admin"))
	setup.ConfigureModerationProxies(moderation)

	srv := &http.Server{
		Addr:    "0.0.0.0:8080",
		Handler: r,
	}

	log.Println("API Gateway listening on :8080")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to run API Gateway: %v", err)
	}
}
