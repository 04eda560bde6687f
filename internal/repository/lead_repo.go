package repository

import (
	"context"
	"time"

	"leadcrm/internal/domain"

	"gorm.io/gorm"
)

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

type leadModel struct {
	ID               int64      `gorm:"column:id;primaryKey"`
	Nom              string     `gorm:"column:nom"`
	Prenom           string     `gorm:"column:prenom"`
	Telephone        string     `gorm:"column:telephone"`
	NbAppels         int        `gorm:"column:nb_appels"`
	DateDernierAppel *time.Time `gorm:"column:date_dernier_appel"`
	DateProchainRDV  *time.Time `gorm:"column:date_prochain_rdv"`
	Etat             string     `gorm:"column:etat"`
	NF               int        `gorm:"column:nf"`
	AgentID          int64      `gorm:"column:agent_id;index"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at"`
}

func (leadModel) TableName() string { return "leads" }

// leadRow is the scan target for the agent-expanded queries.
type leadRow struct {
	ID               int64      `gorm:"column:id"`
	Nom              string     `gorm:"column:nom"`
	Prenom           string     `gorm:"column:prenom"`
	Telephone        string     `gorm:"column:telephone"`
	NbAppels         int        `gorm:"column:nb_appels"`
	DateDernierAppel *time.Time `gorm:"column:date_dernier_appel"`
	DateProchainRDV  *time.Time `gorm:"column:date_prochain_rdv"`
	Etat             string     `gorm:"column:etat"`
	NF               int        `gorm:"column:nf"`
	AgentID          int64      `gorm:"column:agent_id"`
	AgentName        *string    `gorm:"column:agent_name"`
	AgentEmail       *string    `gorm:"column:agent_email"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at"`
}

func toDomainLead(row leadRow) *domain.Lead {
	l := &domain.Lead{
		ID:               row.ID,
		Nom:              row.Nom,
		Prenom:           row.Prenom,
		Telephone:        row.Telephone,
		NbAppels:         row.NbAppels,
		DateDernierAppel: row.DateDernierAppel,
		DateProchainRDV:  row.DateProchainRDV,
		Etat:             domain.Etat(row.Etat),
		NF:               row.NF,
		AgentID:          row.AgentID,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
	if row.AgentName != nil || row.AgentEmail != nil {
		ref := domain.UserRef{ID: row.AgentID}
		if row.AgentName != nil {
			ref.Name = *row.AgentName
		}
		if row.AgentEmail != nil {
			ref.Email = *row.AgentEmail
		}
		l.Agent = &ref
	}
	return l
}

func toLeadModel(l *domain.Lead) leadModel {
	return leadModel{
		ID:               l.ID,
		Nom:              l.Nom,
		Prenom:           l.Prenom,
		Telephone:        l.Telephone,
		NbAppels:         l.NbAppels,
		DateDernierAppel: l.DateDernierAppel,
		DateProchainRDV:  l.DateProchainRDV,
		Etat:             string(l.Etat),
		NF:               l.NF,
		AgentID:          l.AgentID,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

func (r *LeadRepository) expanded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("leads").
		Select("leads.*, users.name AS agent_name, users.email AS agent_email").
		Joins("LEFT JOIN users ON users.id = leads.agent_id")
}

func (r *LeadRepository) Create(ctx context.Context, l *domain.Lead) error {
	m := toLeadModel(l)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	l.ID = m.ID
	l.CreatedAt = m.CreatedAt
	l.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *LeadRepository) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	var row leadRow
	tx := r.expanded(ctx).Where("leads.id = ?", id).Take(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainLead(row), nil
}

func (r *LeadRepository) List(ctx context.Context) ([]domain.Lead, error) {
	var rows []leadRow
	if err := r.expanded(ctx).Order("leads.id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Lead, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toDomainLead(row))
	}
	return out, nil
}

func (r *LeadRepository) Update(ctx context.Context, l *domain.Lead) error {
	m := toLeadModel(l)
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return err
	}
	l.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&leadModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
