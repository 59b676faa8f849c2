package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dreamforge-app/account-service/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type stubRepo struct {
	err   error
	calls int
}

func (s *stubRepo) DeleteProfiles(ctx context.Context, userID string) error {
	s.calls++
	return s.err
}

func (s *stubRepo) DeleteSettings(ctx context.Context, userID string) error {
	s.calls++
	return s.err
}

type stubIdentity struct{ calls int }

func (s *stubIdentity) DeleteUser(ctx context.Context, userID string) error {
	s.calls++
	return nil
}

func newTestRouter(repo *stubRepo, identity *stubIdentity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := services.NewDeletionService(repo, identity, nil)
	h := NewDeletionHandler(svc)

	router := gin.New()
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"POST", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "X-Client-Info", "Apikey", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))
	router.HandleMethodNotAllowed = true
	router.NoMethod(MethodNotAllowed)
	router.POST("/functions/delete-account", h.DeleteAccount)
	return router
}

func doRequest(router *gin.Engine, method, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, "/functions/delete-account", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, "/functions/delete-account", nil)
	}
	req.Header.Set("Origin", "https://dreamforge.example")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestDeleteAccount_Success(t *testing.T) {
	repo := &stubRepo{}
	identity := &stubIdentity{}
	router := newTestRouter(repo, identity)

	w := doRequest(router, http.MethodPost, `{"user_id":"u1"}`, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if resp["message"] != "Account deleted successfully" {
		t.Errorf("message = %q", resp["message"])
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("success response missing wildcard CORS header")
	}
	if identity.calls != 1 {
		t.Errorf("identity delete ran %d times", identity.calls)
	}
}

func TestDeleteAccount_MissingUserID(t *testing.T) {
	repo := &stubRepo{}
	router := newTestRouter(repo, &stubIdentity{})

	for _, body := range []string{`{}`, `{"user_id":""}`, `not-json`} {
		w := doRequest(router, http.MethodPost, body, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, w.Code)
		}
		var resp map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["error"] != "User ID is required" {
			t.Errorf("body %q: error = %q", body, resp["error"])
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Errorf("body %q: validation response missing CORS header", body)
		}
	}
	if repo.calls != 0 {
		t.Error("validation failures must not delete anything")
	}
}

func TestDeleteAccount_WrongMethod(t *testing.T) {
	repo := &stubRepo{}
	router := newTestRouter(repo, &stubIdentity{})

	w := doRequest(router, http.MethodGet, "", nil)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", w.Code)
	}
	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] != "Method not allowed" {
		t.Errorf("error = %q", resp["error"])
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("405 response missing CORS header")
	}
	if repo.calls != 0 {
		t.Error("rejected method must not delete anything")
	}
}

func TestDeleteAccount_Preflight(t *testing.T) {
	repo := &stubRepo{}
	router := newTestRouter(repo, &stubIdentity{})

	w := doRequest(router, http.MethodOptions, "", map[string]string{
		"Access-Control-Request-Method":  "POST",
		"Access-Control-Request-Headers": "authorization,content-type",
	})
	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want 204", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("preflight missing wildcard CORS header")
	}
	if repo.calls != 0 {
		t.Error("preflight must never reach the deletion pipeline")
	}
}

func TestDeleteAccount_StoreFailure(t *testing.T) {
	repo := &stubRepo{err: errors.New("profiles collection unavailable")}
	router := newTestRouter(repo, &stubIdentity{})

	w := doRequest(router, http.MethodPost, `{"user_id":"u1"}`, nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] != "Failed to delete account" {
		t.Errorf("error = %q", resp["error"])
	}
	if resp["details"] != "profiles collection unavailable" {
		t.Errorf("details = %q", resp["details"])
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("failure response missing CORS header")
	}
}
