package notification

import (
	"context"
	"time"

	"leadcrm/internal/domain"
)

// NotificationRepositoryInterface — only the methods the service uses
type NotificationRepositoryInterface interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id int64) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) error
	Delete(ctx context.Context, id int64) error
	DeleteAllForUser(ctx context.Context, userID int64) error
	DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// UserReader resolves the recipient for the direct create endpoint, the one
// place the notificationsEnabled flag is consulted.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
