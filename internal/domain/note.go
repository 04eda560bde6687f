package domain

import "time"

// Note is a free-text comment attached to a lead. Only the author may edit or
// delete it; anyone authenticated may read it.
type Note struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	LeadID    int64     `json:"leadId"`
	UserID    int64     `json:"-"`
	User      *UserRef  `json:"userId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
