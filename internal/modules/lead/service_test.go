package lead

import (
	"context"
	"testing"

	"leadcrm/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, l *domain.Lead) error {
	args := m.Called(ctx, l)
	if l != nil {
		l.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockLeadRepository) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *MockLeadRepository) List(ctx context.Context) ([]domain.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Lead), args.Error(1)
}

func (m *MockLeadRepository) Update(ctx context.Context, l *domain.Lead) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyLeadCreated(ctx context.Context, userID, leadID int64, prenom, nom string) error {
	args := m.Called(ctx, userID, leadID, prenom, nom)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyLeadUpdated(ctx context.Context, userID, leadID int64, prenom, nom string) error {
	args := m.Called(ctx, userID, leadID, prenom, nom)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyLeadDeleted(ctx context.Context, userID, leadID int64, prenom, nom string) error {
	args := m.Called(ctx, userID, leadID, prenom, nom)
	return args.Error(0)
}

func TestService_Create_Success(t *testing.T) {
	mockLeads := new(MockLeadRepository)
	mockNotifs := new(MockNotificationSender)

	mockLeads.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockLeads.On("GetByID", mock.Anything, int64(42)).Return(&domain.Lead{
		ID:        42,
		Nom:       "Durand",
		Prenom:    "Pierre",
		Telephone: "+33 6 12 34 56 78",
		Etat:      domain.EtatNouveau,
	}, nil)
	mockNotifs.On("NotifyLeadCreated", mock.Anything, int64(7), int64(42), "Pierre", "Durand").Return(nil)

	service := NewService(mockLeads, mockNotifs, nil)

	req := CreateLeadRequest{
		Nom:       "Durand",
		Prenom:    "Pierre",
		Telephone: "+33 6 12 34 56 78",
	}

	l, err := service.Create(context.Background(), req, 7)

	assert.NoError(t, err)
	assert.NotNil(t, l)
	assert.Equal(t, domain.EtatNouveau, l.Etat)
	mockNotifs.AssertCalled(t, "NotifyLeadCreated", mock.Anything, int64(7), int64(42), "Pierre", "Durand")
}

func TestService_Create_ClampsNF(t *testing.T) {
	cases := []struct {
		name string
		nf   any
		want int
	}{
		{"above max", float64(9), 5},
		{"below min", float64(-3), 0},
		{"non numeric", "abc", 0},
		{"missing", nil, 0},
		{"numeric string", "3", 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockLeads := new(MockLeadRepository)
			mockNotifs := new(MockNotificationSender)

			var stored *domain.Lead
			mockLeads.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
				stored = args.Get(1).(*domain.Lead)
			}).Return(nil)
			mockLeads.On("GetByID", mock.Anything, int64(42)).Return(&domain.Lead{ID: 42}, nil)
			mockNotifs.On("NotifyLeadCreated", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

			service := NewService(mockLeads, mockNotifs, nil)

			req := CreateLeadRequest{
				Nom:       "Durand",
				Prenom:    "Pierre",
				Telephone: "0612345678",
				NF:        tc.nf,
			}

			_, err := service.Create(context.Background(), req, 1)

			assert.NoError(t, err)
			assert.Equal(t, tc.want, stored.NF)
		})
	}
}

func TestService_Create_InvalidEtat(t *testing.T) {
	mockLeads := new(MockLeadRepository)
	mockNotifs := new(MockNotificationSender)
	service := NewService(mockLeads, mockNotifs, nil)

	req := CreateLeadRequest{
		Nom:       "Durand",
		Prenom:    "Pierre",
		Telephone: "0612345678",
		Etat:      "Inconnu",
	}

	_, err := service.Create(context.Background(), req, 1)

	assert.ErrorIs(t, err, ErrValidation)
	mockLeads.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_MissingRequired(t *testing.T) {
	mockLeads := new(MockLeadRepository)
	mockNotifs := new(MockNotificationSender)
	service := NewService(mockLeads, mockNotifs, nil)

	req := CreateLeadRequest{
		Nom:       "Durand",
		Prenom:    "   ",
		Telephone: "0612345678",
	}

	_, err := service.Create(context.Background(), req, 1)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_NegativeNbAppels(t *testing.T) {
	mockLeads := new(MockLeadRepository)
	mockNotifs := new(MockNotificationSender)
	service := NewService(mockLeads, mockNotifs, nil)

	nb := -1
	req := CreateLeadRequest{
		Nom:       "Durand",
		Prenom:    "Pierre",
		Telephone: "0612345678",
		NbAppels:  &nb,
	}

	_, err := service.Create(context.Background(), req, 1)

	assert.ErrorIs(t, err, ErrValidation)
	mockLeads.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Update_NegativeNbAppels(t *testing.T) {
	mockLeads := new(MockLeadRepository)
	mockNotifs := new(MockNotificationSender)

	mockLeads.On("GetByID", mock.Anything, int64(5)).Return(&domain.Lead{
		ID: 5, Nom: "Durand", Prenom: "Pierre", Telephone: "0612345678",
	}, nil)

	service := NewService(mockLeads, mockNotifs, nil)

	nb := -1
	_, err := service.Update(context.Background(), 5, UpdateLeadRequest{NbAppels: &nb}, 1)

	assert.ErrorIs(t, err, ErrValidation)
	mockLeads.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Create_NotificationFailureIsNotFatal(t *testing.T) {
	mockLeads := new(MockLeadRepository)
	mockNotifs := new(MockNotificationSender)

	mockLeads.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockLeads.On("GetByID", mock.Anything, int64(42)).Return(&domain.Lead{ID: 42}, nil)
	mockNotifs.On("NotifyLeadCreated", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError)

	service := NewService(mockLeads, mockNotifs, nil)

	l, err := service.Create(context.Background(), CreateLeadRequest{
		Nom: "Durand", Prenom: "Pierre", Telephone: "0612345678",
	}, 1)

	assert.NoError(t, err)
	assert.NotNil(t, l)
}

func TestService_Update_MergePatch(t *testing.T) {
	mockLeads := new(MockLeadRepository)
	mockNotifs := new(MockNotificationSender)

	existing := &domain.Lead{
		ID:        5,
		Nom:       "Durand",
		Prenom:    "Pierre",
		Telephone: "0612345678",
		NbAppels:  2,
		Etat:      domain.EtatEnCours,
		NF:        3,
		AgentID:   1,
	}
	mockLeads.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	mockLeads.On("Update", mock.Anything, mock.Anything).Return(nil)
	mockNotifs.On("NotifyLeadUpdated", mock.Anything, int64(9), int64(5), "Pierre", "Durand").Return(nil)

	service := NewService(mockLeads, mockNotifs, nil)

	newEtat := string(domain.EtatGagne)
	newAgent := int64(3)
	req := UpdateLeadRequest{Etat: &newEtat, Agent: &newAgent}

	l, err := service.Update(context.Background(), 5, req, 9)

	assert.NoError(t, err)
	assert.Equal(t, domain.EtatGagne, l.Etat)
	assert.Equal(t, int64(3), l.AgentID)
	assert.Equal(t, "Pierre", l.Prenom) // untouched fields survive
}

func TestService_Update_ReclampsNF(t *testing.T) {
	mockLeads := new(MockLeadRepository)
	mockNotifs := new(MockNotificationSender)

	existing := &domain.Lead{
		ID: 5, Nom: "Durand", Prenom: "Pierre", Telephone: "0612345678", NF: 2,
	}
	mockLeads.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	mockLeads.On("Update", mock.Anything, mock.Anything).Return(nil)
	mockNotifs.On("NotifyLeadUpdated", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockLeads, mockNotifs, nil)

	l, err := service.Update(context.Background(), 5, UpdateLeadRequest{NF: float64(100)}, 1)

	assert.NoError(t, err)
	assert.Equal(t, 5, l.NF)
}

func TestService_Update_NotFound(t *testing.T) {
	mockLeads := new(MockLeadRepository)
	mockNotifs := new(MockNotificationSender)

	mockLeads.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockLeads, mockNotifs, nil)

	_, err := service.Update(context.Background(), 404, UpdateLeadRequest{}, 1)

	assert.ErrorIs(t, err, ErrLeadNotFound)
	mockNotifs.AssertNotCalled(t, "NotifyLeadUpdated", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Delete_EmitsNotification(t *testing.T) {
	mockLeads := new(MockLeadRepository)
	mockNotifs := new(MockNotificationSender)

	mockLeads.On("GetByID", mock.Anything, int64(5)).Return(&domain.Lead{
		ID: 5, Nom: "Durand", Prenom: "Pierre", Telephone: "0612345678",
	}, nil)
	mockLeads.On("Delete", mock.Anything, int64(5)).Return(nil)
	mockNotifs.On("NotifyLeadDeleted", mock.Anything, int64(2), int64(5), "Pierre", "Durand").Return(nil)

	service := NewService(mockLeads, mockNotifs, nil)

	err := service.Delete(context.Background(), 5, 2)

	assert.NoError(t, err)
	mockNotifs.AssertCalled(t, "NotifyLeadDeleted", mock.Anything, int64(2), int64(5), "Pierre", "Durand")
}

func TestService_Delete_NotFound(t *testing.T) {
	mockLeads := new(MockLeadRepository)
	mockNotifs := new(MockNotificationSender)

	mockLeads.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockLeads, mockNotifs, nil)

	err := service.Delete(context.Background(), 404, 1)
	assert.ErrorIs(t, err, ErrLeadNotFound)
}
