package note

import (
	"context"
	"errors"
	"strings"

	"leadcrm/internal/domain"

	"gorm.io/gorm"
)

// Service handles note business logic
type Service struct {
	repo  NoteRepositoryInterface
	leads LeadReader
}

func NewService(repo NoteRepositoryInterface, leads LeadReader) *Service {
	return &Service{repo: repo, leads: leads}
}

// Create attaches a note to an existing lead, authored by the acting user.
func (s *Service) Create(ctx context.Context, req CreateNoteRequest, actorID int64) (*domain.Note, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	if _, err := s.leads.GetByID(ctx, req.LeadID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}

	n := &domain.Note{
		Content: content,
		LeadID:  req.LeadID,
		UserID:  actorID,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	// Re-read so the response carries the expanded author.
	return s.repo.GetByID(ctx, n.ID)
}

// ListByLead returns a lead's notes newest-first. The lead must still exist;
// orphaned notes become unreachable through this path once it is deleted.
func (s *Service) ListByLead(ctx context.Context, leadID int64) ([]domain.Note, error) {
	if _, err := s.leads.GetByID(ctx, leadID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return s.repo.ListByLead(ctx, leadID)
}

// Update overwrites the content. Author only.
func (s *Service) Update(ctx context.Context, id int64, req UpdateNoteRequest, actorID int64) (*domain.Note, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	if n.UserID != actorID {
		return nil, ErrNotAuthor
	}

	if err := s.repo.UpdateContent(ctx, id, content); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Delete removes the note. Author only.
func (s *Service) Delete(ctx context.Context, id int64, actorID int64) error {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoteNotFound
		}
		return err
	}
	if n.UserID != actorID {
		return ErrNotAuthor
	}
	return s.repo.Delete(ctx, id)
}
