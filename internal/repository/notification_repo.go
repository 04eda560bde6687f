package repository

import (
	"context"
	"time"

	"leadcrm/internal/domain"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

type notificationModel struct {
	ID               int64     `gorm:"column:id;primaryKey"`
	Message          string    `gorm:"column:message"`
	Type             string    `gorm:"column:type"`
	Statut           bool      `gorm:"column:statut"`
	UserID           int64     `gorm:"column:user_id;index:idx_notifications_user_created,priority:1"`
	LeadID           *int64    `gorm:"column:lead_id"`
	DateNotification time.Time `gorm:"column:date_notification"`
	CreatedAt        time.Time `gorm:"column:created_at;index:idx_notifications_user_created,priority:2"`
}

func (notificationModel) TableName() string { return "notifications" }

func toDomainNotification(m notificationModel) *domain.Notification {
	return &domain.Notification{
		ID:               m.ID,
		Message:          m.Message,
		Type:             domain.NotificationType(m.Type),
		Statut:           m.Statut,
		UserID:           m.UserID,
		LeadID:           m.LeadID,
		DateNotification: m.DateNotification,
		CreatedAt:        m.CreatedAt,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	if n.DateNotification.IsZero() {
		n.DateNotification = time.Now()
	}
	m := notificationModel{
		Message:          n.Message,
		Type:             string(n.Type),
		Statut:           n.Statut,
		UserID:           n.UserID,
		LeadID:           n.LeadID,
		DateNotification: n.DateNotification,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	n.ID = m.ID
	n.CreatedAt = m.CreatedAt
	return nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	var rows []notificationModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Notification, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainNotification(m))
	}
	return out, nil
}

// MarkRead flips statut by id alone. The caller is not required to own the
// notification; that matches the exposed contract.
func (r *NotificationRepository) MarkRead(ctx context.Context, id int64) (*domain.Notification, error) {
	res := r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("id = ?", id).
		Update("statut", true)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var m notificationModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainNotification(m), nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("user_id = ?", userID).
		Update("statut", true).Error
}

func (r *NotificationRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&notificationModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *NotificationRepository) DeleteAllForUser(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&notificationModel{}).Error
}

// DeleteReadOlderThan purges read notifications created before the cutoff.
// Used by the cleanup command.
func (r *NotificationRepository) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("statut = ? AND created_at < ?", true, cutoff).
		Delete(&notificationModel{})
	return res.RowsAffected, res.Error
}
