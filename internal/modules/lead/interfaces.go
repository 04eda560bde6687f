package lead

import (
	"context"

	"leadcrm/internal/domain"
)

// LeadRepositoryInterface — only the methods the lead service uses
type LeadRepositoryInterface interface {
	Create(ctx context.Context, l *domain.Lead) error
	GetByID(ctx context.Context, id int64) (*domain.Lead, error)
	List(ctx context.Context) ([]domain.Lead, error)
	Update(ctx context.Context, l *domain.Lead) error
	Delete(ctx context.Context, id int64) error
}

// NotificationSender fans lead mutations out to the notification log. The
// implementation writes unconditionally; the notificationsEnabled flag is only
// consulted on the direct create endpoint, not on these side effects.
type NotificationSender interface {
	NotifyLeadCreated(ctx context.Context, userID, leadID int64, prenom, nom string) error
	NotifyLeadUpdated(ctx context.Context, userID, leadID int64, prenom, nom string) error
	NotifyLeadDeleted(ctx context.Context, userID, leadID int64, prenom, nom string) error
}
