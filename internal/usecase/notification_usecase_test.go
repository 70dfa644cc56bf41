package usecase

import (
	"context"
	"errors"
	"testing"

	"buildconnect/internal/domain/entities"
	mock_interfaces "buildconnect/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newNotificationUseCase(t *testing.T) (*NotificationUseCase, *mock_interfaces.MockINotificationRepository) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockINotificationRepository(ctrl)
	return NewNotificationUseCase(repo), repo
}

func TestNotificationUseCase_List(t *testing.T) {
	t.Run("pages and unread count", func(t *testing.T) {
		uc, repo := newNotificationUseCase(t)
		all := []entities.Notification{
			{ID: "n1", Recipient: "owner-1", IsRead: true},
			{ID: "n2", Recipient: "owner-1"},
			{ID: "n3", Recipient: "owner-1"},
		}
		repo.EXPECT().ListByRecipient(gomock.Any(), "owner-1", false).Return(all, nil)
		repo.EXPECT().CountUnread(gomock.Any(), "owner-1").Return(2, nil)

		page, err := uc.List(context.Background(), homeowner(), false, 1, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Total != 3 || page.UnreadCount != 2 {
			t.Fatalf("unexpected counts: %+v", page)
		}
		if len(page.Notifications) != 2 {
			t.Fatalf("expected 2 on page, got %d", len(page.Notifications))
		}
	})
}

func TestNotificationUseCase_MarkRead(t *testing.T) {
	t.Run("someone else's notification looks missing", func(t *testing.T) {
		uc, repo := newNotificationUseCase(t)
		repo.EXPECT().MarkRead(gomock.Any(), "n1", "owner-1").Return(entities.Notification{}, nil)

		_, err := uc.MarkRead(context.Background(), homeowner(), "n1")
		if !errors.Is(err, ErrNotificationNotFound) {
			t.Fatalf("expected ErrNotificationNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, repo := newNotificationUseCase(t)
		repo.EXPECT().MarkRead(gomock.Any(), "n1", "owner-1").Return(entities.Notification{ID: "n1", IsRead: true}, nil)

		n, err := uc.MarkRead(context.Background(), homeowner(), "n1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !n.IsRead {
			t.Fatalf("expected read notification")
		}
	})
}
