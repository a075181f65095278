package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/toolbox/backend/internal/application/adapter"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubTokenService struct {
	adapter.TokenService
	valid map[string]uuid.UUID
}

func (s *stubTokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	id, ok := s.valid[token]
	if !ok {
		return nil, errors.New("invalid")
	}
	return &adapter.TokenClaims{UserID: id, Email: "ada@example.com"}, nil
}

func newAuthRouter(handler gin.HandlerFunc) (*gin.Engine, uuid.UUID) {
	userID := uuid.New()
	m := NewAuthMiddleware(&stubTokenService{valid: map[string]uuid.UUID{"good": userID}})

	r := gin.New()
	r.GET("/strict", m.Authenticate(), handler)
	r.GET("/optional", m.OptionalAuthenticate(), handler)
	return r, userID
}

func TestAuthMiddleware(t *testing.T) {
	var seen uuid.UUID
	var authed bool
	router, userID := newAuthRouter(func(c *gin.Context) {
		seen, authed = GetUserIDFromContext(c)
		c.Status(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		path       string
		header     string
		wantStatus int
		wantAuthed bool
	}{
		{name: "strict without header", path: "/strict", wantStatus: http.StatusUnauthorized},
		{name: "strict with bad scheme", path: "/strict", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "strict with bad token", path: "/strict", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "strict with good token", path: "/strict", header: "Bearer good", wantStatus: http.StatusNoContent, wantAuthed: true},
		{name: "optional anonymous", path: "/optional", wantStatus: http.StatusNoContent},
		{name: "optional with good token", path: "/optional", header: "Bearer good", wantStatus: http.StatusNoContent, wantAuthed: true},
		{name: "optional with bad token", path: "/optional", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen, authed = uuid.Nil, false
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if authed != tt.wantAuthed {
				t.Errorf("authenticated = %v, want %v", authed, tt.wantAuthed)
			}
			if tt.wantAuthed && seen != userID {
				t.Errorf("user id = %s, want %s", seen, userID)
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiterWithConfig(2, time.Minute)
	rl.now = func() time.Time { return now }

	r := gin.New()
	r.POST("/login", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		return w
	}

	for i := 0; i < 2; i++ {
		if w := hit(); w.Code != http.StatusOK {
			t.Fatalf("attempt %d status = %d", i+1, w.Code)
		}
	}
	w := hit()
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("third attempt status = %d, want 429", w.Code)
	}
	if w.Header().Get("Retry-After") != "60" {
		t.Errorf("Retry-After = %q, want 60", w.Header().Get("Retry-After"))
	}

	now = now.Add(61 * time.Second)
	if removed := rl.Cleanup(); removed != 1 {
		t.Errorf("Cleanup() removed %d entries, want 1", removed)
	}
	if w := hit(); w.Code != http.StatusOK {
		t.Errorf("status after window reset = %d", w.Code)
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiterWithConfig(1, time.Minute)
	rl.Disable()
	for i := 0; i < 3; i++ {
		if ok, _ := rl.allow("k"); !ok {
			t.Fatalf("attempt %d rejected by a disabled limiter", i+1)
		}
	}
}
