package domain

import "time"

type NotificationType string

const (
	NotifLead    NotificationType = "lead"
	NotifMeeting NotificationType = "meeting"
	NotifStatus  NotificationType = "status"
	NotifSystem  NotificationType = "system"
)

func ValidNotificationType(t NotificationType) bool {
	switch t {
	case NotifLead, NotifMeeting, NotifStatus, NotifSystem:
		return true
	}
	return false
}

// Notification is an append-only event record surfaced to a single user.
// Statut is the read flag; the only exposed transition is false→true.
type Notification struct {
	ID               int64            `json:"id"`
	Message          string           `json:"message"`
	Type             NotificationType `json:"type"`
	Statut           bool             `json:"statut"`
	UserID           int64            `json:"userId"`
	LeadID           *int64           `json:"leadId,omitempty"`
	DateNotification time.Time        `json:"dateNotification"`
	CreatedAt        time.Time        `json:"createdAt"`
}
