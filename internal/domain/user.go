package domain

import "time"

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleAgent UserRole = "agent"
)

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	// NotificationsEnabled is consulted only by the direct notification create
	// endpoint. No endpoint sets it; nil means enabled.
	NotificationsEnabled *bool     `json:"notificationsEnabled,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// UserRef is the short form other resources expand their user references to.
type UserRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) Ref() UserRef {
	return UserRef{ID: u.ID, Name: u.Name, Email: u.Email}
}

func (u *User) NotificationsDisabled() bool {
	return u.NotificationsEnabled != nil && !*u.NotificationsEnabled
}
