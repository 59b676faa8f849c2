package proxy

import (
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// Rewrite maps an incoming gateway path to the path the backing service
// expects.
type Rewrite func(path string) string

// Prefix builds a Rewrite that swaps one leading path segment for another.
// Prefix("/api/auth", "/auth") turns /api/auth/login into /auth/login.
func Prefix(from, to string) Rewrite {
	return func(path string) string {
		rest := strings.TrimPrefix(path, from)
		if rest != "" && !strings.HasPrefix(rest, "/") {
			rest = "/" + rest
		}
		return to + rest
	}
}

// Keep leaves the path untouched, for services mounted at the same prefix
// as the gateway route.
func Keep() Rewrite {
	return func(path string) string { return path }
}

// To returns a handler that forwards the request to targetHost with the
// path rewritten. Websocket upgrades pass through.
func To(targetHost string, rewrite Rewrite) gin.HandlerFunc {
	target, err := url.Parse(targetHost)
	if err != nil {
		log.Fatalf("invalid proxy target %q: %v", targetHost, err)
	}

	p := &httputil.ReverseProxy{
		Director: func(req *http.Request) {
			req.URL.Scheme = target.Scheme
			req.URL.Host = target.Host
			req.URL.Path = rewrite(req.URL.Path)
			req.Header.Set("X-Forwarded-Host", req.Host)
			req.Header.Del("X-Forwarded-For")
			req.Host = target.Host
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			log.Printf("proxy error for %s: %v", r.URL.Path, err)
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`{"error":"upstream unavailable"}`))
		},
	}

	return func(c *gin.Context) {
		p.ServeHTTP(c.Writer, c.Request)
	}
}
