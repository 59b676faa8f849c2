package setup

import (
	"os"

	"dreamforge-app/api-gateway/internal/proxy"

	"github.com/gin-gonic/gin"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ConfigureServiceProxies mounts every authenticated service behind the
// gateway. Chat, profile and notification services keep their /api prefix,
// the media service is mounted at /media upstream.
func ConfigureServiceProxies(router *gin.RouterGroup) {
	chatURL := envOr("CHAT_SERVICE_URL", "http://chat-service:8001")
	profileURL := envOr("PROFILE_SERVICE_URL", "http://profile-service:8003")
	notificationURL := envOr("NOTIFICATION_SERVICE_URL", "http://notification-service:8002")
	mediaURL := envOr("MEDIA_SERVICE_URL", "http://media-service:8004")

	services := []struct {
		path    string
		target  string
		rewrite proxy.Rewrite
	}{
		{"/chat", chatURL, proxy.Keep()},
		{"/profiles", profileURL, proxy.Keep()},
		{"/collaborations", profileURL, proxy.Keep()},
		{"/notifications", notificationURL, proxy.Keep()},
		{"/media", mediaURL, proxy.Prefix("/api/media", "/media")},
	}

	for _, service := range services {
		router.Any(service.path+"/*proxyPath", proxy.To(service.target, service.rewrite))
	}
}

// ConfigureModerationProxies exposes ticket administration to admins. The
// group is expected to carry a role check already.
func ConfigureModerationProxies(router *gin.RouterGroup) {
	chatURL := envOr("CHAT_SERVICE_URL", "http://chat-service:8001")

	router.Any("/tickets/*proxyPath", proxy.To(chatURL, proxy.Prefix("/api/moderation/tickets", "/api/chat/tickets")))
}
