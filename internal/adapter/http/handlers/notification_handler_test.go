package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"buildconnect/internal/adapter/http/handlers/mocks"
	"buildconnect/internal/domain/entities"
	"buildconnect/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNotificationHandler_ListNotifications(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("forwards unread filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := gin.New()
		r.GET("/v1/notifications", asActor(homeownerActor()), h.ListNotifications)

		uc.EXPECT().List(gomock.Any(), homeownerActor(), true, 1, 20).Return(usecase.NotificationPage{
			Notifications: []entities.Notification{{ID: "n-1", Recipient: "owner-1"}},
			Total:         1,
			UnreadCount:   1,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/notifications?unread=true", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp struct {
			Total       int `json:"total"`
			UnreadCount int `json:"unread_count"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Total != 1 || resp.UnreadCount != 1 {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})
}

func TestNotificationHandler_MarkNotificationRead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing notification maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/notifications/:id/read", asActor(homeownerActor()), h.MarkNotificationRead)

		uc.EXPECT().MarkRead(gomock.Any(), homeownerActor(), "n-404").Return(entities.Notification{}, usecase.ErrNotificationNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/notifications/n-404/read", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/notifications/:id/read", asActor(homeownerActor()), h.MarkNotificationRead)

		uc.EXPECT().MarkRead(gomock.Any(), homeownerActor(), "n-1").Return(entities.Notification{ID: "n-1", Recipient: "owner-1", IsRead: true}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/notifications/n-1/read", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp["is_read"] != true {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestNotificationHandler_MarkAllNotificationsRead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/notifications/read-all", asActor(homeownerActor()), h.MarkAllNotificationsRead)

		uc.EXPECT().MarkAllRead(gomock.Any(), homeownerActor()).Return(nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/notifications/read-all", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
