package response

import (
	"time"

	"buildconnect/internal/domain/entities"
)

type NotificationResponse struct {
	ID           string    `json:"id"`
	Recipient    string    `json:"recipient"`
	Type         string    `json:"type"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	RelatedID    string    `json:"related_id,omitempty"`
	RelatedModel string    `json:"related_model,omitempty"`
	Priority     string    `json:"priority"`
	IsRead       bool      `json:"is_read"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:           n.ID,
		Recipient:    n.Recipient,
		Type:         string(n.Type),
		Title:        n.Title,
		Message:      n.Message,
		RelatedID:    n.RelatedID,
		RelatedModel: n.RelatedModel,
		Priority:     string(n.Priority),
		IsRead:       n.IsRead,
		CreatedAt:    n.CreatedAt,
	}
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int                    `json:"total"`
	UnreadCount   int                    `json:"unread_count"`
}

func FromNotifications(list []entities.Notification, total, unread int) NotificationListResponse {
	items := make([]NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, FromNotification(n))
	}
	return NotificationListResponse{Notifications: items, Total: total, UnreadCount: unread}
}
