package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"buildconnect/internal/presence"

	"github.com/gin-gonic/gin"
)

func TestPresenceHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("connect then lookup reports online", func(t *testing.T) {
		tracker := presence.NewTracker()
		h := NewPresenceHandler(tracker)

		r := gin.New()
		r.POST("/v1/presence/connect", asActor(homeownerActor()), h.Connect)
		r.GET("/v1/presence/:user_id", asActor(companyActor()), h.GetUserPresence)

		req := httptest.NewRequest(http.MethodPost, "/v1/presence/connect", bytes.NewBufferString(`{"connection_id":"conn-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		req = httptest.NewRequest(http.MethodGet, "/v1/presence/owner-1", nil)
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var resp struct {
			UserID string `json:"user_id"`
			Online bool   `json:"online"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.UserID != "owner-1" || !resp.Online {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("disconnect of last connection goes offline", func(t *testing.T) {
		tracker := presence.NewTracker()
		tracker.Connect("owner-1", "conn-1")
		h := NewPresenceHandler(tracker)

		r := gin.New()
		r.POST("/v1/presence/disconnect", asActor(homeownerActor()), h.Disconnect)

		req := httptest.NewRequest(http.MethodPost, "/v1/presence/disconnect", bytes.NewBufferString(`{"connection_id":"conn-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp struct {
			Online bool `json:"online"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Online {
			t.Fatal("expected offline after last disconnect")
		}
	})

	t.Run("missing connection id", func(t *testing.T) {
		h := NewPresenceHandler(presence.NewTracker())

		r := gin.New()
		r.POST("/v1/presence/connect", asActor(homeownerActor()), h.Connect)

		req := httptest.NewRequest(http.MethodPost, "/v1/presence/connect", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("online count", func(t *testing.T) {
		tracker := presence.NewTracker()
		tracker.Connect("owner-1", "conn-1")
		tracker.Connect("user-1", "conn-2")
		h := NewPresenceHandler(tracker)

		r := gin.New()
		r.GET("/v1/presence/count", asActor(homeownerActor()), h.GetOnlineCount)

		req := httptest.NewRequest(http.MethodGet, "/v1/presence/count", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var resp struct {
			OnlineCount int `json:"online_count"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.OnlineCount != 2 {
			t.Fatalf("expected online count 2, got %d", resp.OnlineCount)
		}
	})
}
