package repository

import (
	"context"
	"time"

	"leadcrm/internal/domain"

	"gorm.io/gorm"
)

type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

type noteModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Content   string    `gorm:"column:content"`
	LeadID    int64     `gorm:"column:lead_id;index:idx_notes_lead_created,priority:1"`
	UserID    int64     `gorm:"column:user_id"`
	CreatedAt time.Time `gorm:"column:created_at;index:idx_notes_lead_created,priority:2"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (noteModel) TableName() string { return "notes" }

type noteRow struct {
	ID          int64     `gorm:"column:id"`
	Content     string    `gorm:"column:content"`
	LeadID      int64     `gorm:"column:lead_id"`
	UserID      int64     `gorm:"column:user_id"`
	AuthorName  *string   `gorm:"column:author_name"`
	AuthorEmail *string   `gorm:"column:author_email"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func toDomainNote(row noteRow) *domain.Note {
	n := &domain.Note{
		ID:        row.ID,
		Content:   row.Content,
		LeadID:    row.LeadID,
		UserID:    row.UserID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.AuthorName != nil || row.AuthorEmail != nil {
		ref := domain.UserRef{ID: row.UserID}
		if row.AuthorName != nil {
			ref.Name = *row.AuthorName
		}
		if row.AuthorEmail != nil {
			ref.Email = *row.AuthorEmail
		}
		n.User = &ref
	}
	return n
}

func (r *NoteRepository) expanded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("notes").
		Select("notes.*, users.name AS author_name, users.email AS author_email").
		Joins("LEFT JOIN users ON users.id = notes.user_id")
}

func (r *NoteRepository) Create(ctx context.Context, n *domain.Note) error {
	m := noteModel{
		Content: n.Content,
		LeadID:  n.LeadID,
		UserID:  n.UserID,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	n.ID = m.ID
	n.CreatedAt = m.CreatedAt
	n.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *NoteRepository) GetByID(ctx context.Context, id int64) (*domain.Note, error) {
	var row noteRow
	tx := r.expanded(ctx).Where("notes.id = ?", id).Take(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainNote(row), nil
}

// ListByLead returns the lead's notes newest-first with the author expanded.
func (r *NoteRepository) ListByLead(ctx context.Context, leadID int64) ([]domain.Note, error) {
	var rows []noteRow
	if err := r.expanded(ctx).
		Where("notes.lead_id = ?", leadID).
		Order("notes.created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Note, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toDomainNote(row))
	}
	return out, nil
}

func (r *NoteRepository) UpdateContent(ctx context.Context, id int64, content string) error {
	return r.db.WithContext(ctx).
		Model(&noteModel{}).
		Where("id = ?", id).
		Update("content", content).Error
}

func (r *NoteRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&noteModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
