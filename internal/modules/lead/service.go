package lead

import (
	"context"
	"errors"
	"strings"

	"leadcrm/internal/domain"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles lead business logic
type Service struct {
	repo     LeadRepositoryInterface
	notifier NotificationSender
	log      *zap.Logger
}

func NewService(repo LeadRepositoryInterface, notifier NotificationSender, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, notifier: notifier, log: log}
}

// Create persists a new lead owned by the acting user and logs a notification
// for them. The NF rating is clamped to [0,5] whatever the client sent.
func (s *Service) Create(ctx context.Context, req CreateLeadRequest, actorID int64) (*domain.Lead, error) {
	etat := domain.EtatNouveau
	if req.Etat != "" {
		etat = domain.Etat(req.Etat)
		if !domain.ValidEtat(etat) {
			return nil, ErrValidation
		}
	}

	l := &domain.Lead{
		Nom:              strings.TrimSpace(req.Nom),
		Prenom:           strings.TrimSpace(req.Prenom),
		Telephone:        strings.TrimSpace(req.Telephone),
		DateDernierAppel: req.DateDernierAppel,
		DateProchainRDV:  req.DateProchainRDV,
		Etat:             etat,
		NF:               domain.ClampNF(req.NF),
		AgentID:          actorID,
	}
	if req.NbAppels != nil {
		if *req.NbAppels < 0 {
			return nil, ErrValidation
		}
		l.NbAppels = *req.NbAppels
	}
	if l.Nom == "" || l.Prenom == "" || l.Telephone == "" {
		return nil, ErrValidation
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	if err := s.notifier.NotifyLeadCreated(ctx, actorID, l.ID, l.Prenom, l.Nom); err != nil {
		s.log.Warn("lead created but notification insert failed",
			zap.Int64("lead_id", l.ID), zap.Error(err))
	}

	// Re-read so the response carries the expanded agent.
	return s.repo.GetByID(ctx, l.ID)
}

func (s *Service) List(ctx context.Context) ([]domain.Lead, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return l, nil
}

// Update applies a merge patch. There is deliberately no ownership check: any
// authenticated user may update any lead, including its agent reference.
func (s *Service) Update(ctx context.Context, id int64, req UpdateLeadRequest, actorID int64) (*domain.Lead, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}

	if req.Nom != nil {
		l.Nom = strings.TrimSpace(*req.Nom)
	}
	if req.Prenom != nil {
		l.Prenom = strings.TrimSpace(*req.Prenom)
	}
	if req.Telephone != nil {
		l.Telephone = strings.TrimSpace(*req.Telephone)
	}
	if req.NbAppels != nil {
		l.NbAppels = *req.NbAppels
	}
	if req.DateDernierAppel != nil {
		l.DateDernierAppel = req.DateDernierAppel
	}
	if req.DateProchainRDV != nil {
		l.DateProchainRDV = req.DateProchainRDV
	}
	if req.Etat != nil {
		etat := domain.Etat(*req.Etat)
		if !domain.ValidEtat(etat) {
			return nil, ErrValidation
		}
		l.Etat = etat
	}
	if req.NF != nil {
		l.NF = domain.ClampNF(req.NF)
	}
	if req.Agent != nil {
		l.AgentID = *req.Agent
	}

	// Schema validation re-runs on the merged document.
	if l.Nom == "" || l.Prenom == "" || l.Telephone == "" || l.NbAppels < 0 {
		return nil, ErrValidation
	}

	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}

	if err := s.notifier.NotifyLeadUpdated(ctx, actorID, l.ID, l.Prenom, l.Nom); err != nil {
		s.log.Warn("lead updated but notification insert failed",
			zap.Int64("lead_id", l.ID), zap.Error(err))
	}

	return s.repo.GetByID(ctx, l.ID)
}

// Delete removes the lead and logs a notification. Notes attached to the lead
// are left in place; the by-lead listing 404s once the lead is gone.
func (s *Service) Delete(ctx context.Context, id int64, actorID int64) error {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLeadNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.notifier.NotifyLeadDeleted(ctx, actorID, l.ID, l.Prenom, l.Nom); err != nil {
		s.log.Warn("lead deleted but notification insert failed",
			zap.Int64("lead_id", l.ID), zap.Error(err))
	}

	return nil
}
