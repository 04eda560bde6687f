package note

import (
	"context"

	"leadcrm/internal/domain"
)

// NoteRepositoryInterface — only the methods the note service uses
type NoteRepositoryInterface interface {
	Create(ctx context.Context, n *domain.Note) error
	GetByID(ctx context.Context, id int64) (*domain.Note, error)
	ListByLead(ctx context.Context, leadID int64) ([]domain.Note, error)
	UpdateContent(ctx context.Context, id int64, content string) error
	Delete(ctx context.Context, id int64) error
}

// LeadReader checks the lead-existence precondition for note creation and
// listing. Deleting a lead does not cascade here; orphaned notes stay stored
// and only the by-lead listing stops resolving.
type LeadReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Lead, error)
}
