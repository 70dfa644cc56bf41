package usecase

import (
	"context"
	"errors"
	"strings"

	"buildconnect/internal/domain/entities"
	"buildconnect/internal/usecase/interfaces"
)

var (
	ErrNotificationNotFound     = errors.New("notification not found")
	ErrInvalidNotificationInput = errors.New("invalid notification input")
)

// NotificationPage is a recipient's notification listing with unread count.
type NotificationPage struct {
	Notifications []entities.Notification `json:"notifications"`
	Total         int                     `json:"total"`
	UnreadCount   int                     `json:"unreadCount"`
}

// INotificationUseCase exposes recipient-side notification operations.
type INotificationUseCase interface {
	List(ctx context.Context, actor entities.Actor, unreadOnly bool, page, limit int) (NotificationPage, error)
	MarkRead(ctx context.Context, actor entities.Actor, id string) (entities.Notification, error)
	MarkAllRead(ctx context.Context, actor entities.Actor) error
}

type NotificationUseCase struct {
	repo interfaces.INotificationRepository
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

func (u *NotificationUseCase) List(ctx context.Context, actor entities.Actor, unreadOnly bool, page, limit int) (NotificationPage, error) {
	all, err := u.repo.ListByRecipient(ctx, actor.UserID, unreadOnly)
	if err != nil {
		return NotificationPage{}, err
	}
	unread, err := u.repo.CountUnread(ctx, actor.UserID)
	if err != nil {
		return NotificationPage{}, err
	}

	return NotificationPage{
		Notifications: paginate(all, page, limit),
		Total:         len(all),
		UnreadCount:   unread,
	}, nil
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, actor entities.Actor, id string) (entities.Notification, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Notification{}, ErrInvalidNotificationInput
	}

	n, err := u.repo.MarkRead(ctx, id, actor.UserID)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	return n, nil
}

func (u *NotificationUseCase) MarkAllRead(ctx context.Context, actor entities.Actor) error {
	return u.repo.MarkAllRead(ctx, actor.UserID)
}
