package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"leadcrm/internal/domain"

	"gorm.io/gorm"
)

// Service handles the per-user notification log. Lead mutations call the
// Notify* helpers; the REST endpoints call the rest.
type Service struct {
	repo  NotificationRepositoryInterface
	users UserReader
	hub   *Hub
}

func NewService(repo NotificationRepositoryInterface, users UserReader, hub *Hub) *Service {
	return &Service{repo: repo, users: users, hub: hub}
}

// Create handles the direct create endpoint. When the target user is missing
// or has notifications explicitly disabled, the call is a silent no-op; this
// is the only consumer of that flag.
func (s *Service) Create(ctx context.Context, req CreateNotificationRequest) (*domain.Notification, bool, error) {
	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, true, nil
		}
		return nil, false, err
	}
	if user.NotificationsDisabled() {
		return nil, true, nil
	}

	t := domain.NotifSystem
	if req.Type != "" {
		t = domain.NotificationType(req.Type)
	}
	// The binding tag catches this on the HTTP path; non-handler callers get
	// the same check here.
	if !domain.ValidNotificationType(t) {
		return nil, false, ErrInvalidType
	}

	n := &domain.Notification{
		Message: req.Message,
		Type:    t,
		UserID:  req.UserID,
		LeadID:  req.LeadID,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, false, err
	}
	s.push(n)
	return n, false, nil
}

func (s *Service) ListForUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

// MarkRead flips the read flag by id, idempotently. There is no ownership
// check on the single-id path; that is the exposed contract.
func (s *Service) MarkRead(ctx context.Context, id int64) (*domain.Notification, error) {
	n, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return n, nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotificationNotFound
	}
	return err
}

func (s *Service) DeleteAll(ctx context.Context, userID int64) error {
	return s.repo.DeleteAllForUser(ctx, userID)
}

// PurgeRead deletes read notifications older than the retention window.
func (s *Service) PurgeRead(ctx context.Context, retention time.Duration) (int64, error) {
	return s.repo.DeleteReadOlderThan(ctx, time.Now().Add(-retention))
}

// Lead mutation fan-out. These write unconditionally, bypassing the
// notificationsEnabled flag.

func (s *Service) NotifyLeadCreated(ctx context.Context, userID, leadID int64, prenom, nom string) error {
	return s.notifyLead(ctx, userID, leadID, fmt.Sprintf("Nouveau lead ajouté : %s %s", prenom, nom))
}

func (s *Service) NotifyLeadUpdated(ctx context.Context, userID, leadID int64, prenom, nom string) error {
	return s.notifyLead(ctx, userID, leadID, fmt.Sprintf("Lead mis à jour : %s %s", prenom, nom))
}

func (s *Service) NotifyLeadDeleted(ctx context.Context, userID, leadID int64, prenom, nom string) error {
	return s.notifyLead(ctx, userID, leadID, fmt.Sprintf("Lead supprimé : %s %s", prenom, nom))
}

func (s *Service) notifyLead(ctx context.Context, userID, leadID int64, message string) error {
	n := &domain.Notification{
		Message: message,
		Type:    domain.NotifLead,
		UserID:  userID,
		LeadID:  &leadID,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}
	s.push(n)
	return nil
}

func (s *Service) push(n *domain.Notification) {
	if s.hub != nil {
		s.hub.Push(n.UserID, n)
	}
}
