package interfaces

import (
	"context"

	"buildconnect/internal/domain/entities"
)

// INotificationRepository abstracts DynamoDB persistence for Notification.
type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	ListByRecipient(ctx context.Context, recipientID string, unreadOnly bool) ([]entities.Notification, error)
	CountUnread(ctx context.Context, recipientID string) (int, error)

	// MarkRead flips isRead for one notification, guarded by the recipient
	// owning it. Zero-value entity when absent or owned by someone else.
	MarkRead(ctx context.Context, id, recipientID string) (entities.Notification, error)
	MarkAllRead(ctx context.Context, recipientID string) error
}
