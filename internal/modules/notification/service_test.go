package notification

import (
	"context"
	"testing"
	"time"

	"leadcrm/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	if n != nil {
		n.ID = 11 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockNotificationRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id int64) (*domain.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockNotificationRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationRepository) DeleteAllForUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockNotificationRepository) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func boolPtr(b bool) *bool { return &b }

func TestService_Create_Success(t *testing.T) {
	mockRepo := new(MockNotificationRepository)
	mockUsers := new(MockUserReader)

	mockUsers.On("GetByID", mock.Anything, int64(4)).Return(&domain.User{ID: 4}, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo, mockUsers, nil)

	n, skipped, err := service.Create(context.Background(), CreateNotificationRequest{
		Message: "Relance prévue", Type: "system", UserID: 4,
	})

	assert.NoError(t, err)
	assert.False(t, skipped)
	assert.Equal(t, domain.NotifSystem, n.Type)
	assert.Equal(t, int64(4), n.UserID)
}

func TestService_Create_SkipsWhenDisabled(t *testing.T) {
	mockRepo := new(MockNotificationRepository)
	mockUsers := new(MockUserReader)

	mockUsers.On("GetByID", mock.Anything, int64(4)).Return(&domain.User{
		ID: 4, NotificationsEnabled: boolPtr(false),
	}, nil)

	service := NewService(mockRepo, mockUsers, nil)

	n, skipped, err := service.Create(context.Background(), CreateNotificationRequest{
		Message: "ignorée", UserID: 4,
	})

	assert.NoError(t, err)
	assert.True(t, skipped)
	assert.Nil(t, n)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_RejectsUnknownType(t *testing.T) {
	mockRepo := new(MockNotificationRepository)
	mockUsers := new(MockUserReader)

	mockUsers.On("GetByID", mock.Anything, int64(4)).Return(&domain.User{ID: 4}, nil)

	service := NewService(mockRepo, mockUsers, nil)

	_, _, err := service.Create(context.Background(), CreateNotificationRequest{
		Message: "type inconnu", Type: "bogus", UserID: 4,
	})

	assert.ErrorIs(t, err, ErrInvalidType)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_SkipsWhenUserMissing(t *testing.T) {
	mockRepo := new(MockNotificationRepository)
	mockUsers := new(MockUserReader)

	mockUsers.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockRepo, mockUsers, nil)

	n, skipped, err := service.Create(context.Background(), CreateNotificationRequest{
		Message: "fantôme", UserID: 404,
	})

	assert.NoError(t, err)
	assert.True(t, skipped)
	assert.Nil(t, n)
}

func TestService_MarkRead_Idempotent(t *testing.T) {
	mockRepo := new(MockNotificationRepository)
	mockUsers := new(MockUserReader)

	read := &domain.Notification{ID: 11, Statut: true}
	mockRepo.On("MarkRead", mock.Anything, int64(11)).Return(read, nil)

	service := NewService(mockRepo, mockUsers, nil)

	n1, err1 := service.MarkRead(context.Background(), 11)
	n2, err2 := service.MarkRead(context.Background(), 11)

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.True(t, n1.Statut)
	assert.True(t, n2.Statut)
}

func TestService_MarkRead_NotFound(t *testing.T) {
	mockRepo := new(MockNotificationRepository)
	mockUsers := new(MockUserReader)

	mockRepo.On("MarkRead", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockRepo, mockUsers, nil)

	_, err := service.MarkRead(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestService_Delete_NotFound(t *testing.T) {
	mockRepo := new(MockNotificationRepository)
	mockUsers := new(MockUserReader)

	mockRepo.On("Delete", mock.Anything, int64(404)).Return(gorm.ErrRecordNotFound)

	service := NewService(mockRepo, mockUsers, nil)

	err := service.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestService_NotifyLeadCreated_BypassesDisabledFlag(t *testing.T) {
	mockRepo := new(MockNotificationRepository)
	mockUsers := new(MockUserReader)

	var stored *domain.Notification
	mockRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*domain.Notification)
	}).Return(nil)

	service := NewService(mockRepo, mockUsers, nil)

	err := service.NotifyLeadCreated(context.Background(), 4, 42, "Pierre", "Durand")

	assert.NoError(t, err)
	// The fan-out path never consults the user record.
	mockUsers.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	assert.Equal(t, "Nouveau lead ajouté : Pierre Durand", stored.Message)
	assert.Equal(t, domain.NotifLead, stored.Type)
	assert.Equal(t, int64(4), stored.UserID)
	if assert.NotNil(t, stored.LeadID) {
		assert.Equal(t, int64(42), *stored.LeadID)
	}
}

func TestService_NotifyLeadUpdatedAndDeleted_Messages(t *testing.T) {
	mockRepo := new(MockNotificationRepository)
	mockUsers := new(MockUserReader)

	var messages []string
	mockRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		messages = append(messages, args.Get(1).(*domain.Notification).Message)
	}).Return(nil)

	service := NewService(mockRepo, mockUsers, nil)

	assert.NoError(t, service.NotifyLeadUpdated(context.Background(), 1, 2, "Marie", "Lefebvre"))
	assert.NoError(t, service.NotifyLeadDeleted(context.Background(), 1, 2, "Marie", "Lefebvre"))

	assert.Equal(t, []string{
		"Lead mis à jour : Marie Lefebvre",
		"Lead supprimé : Marie Lefebvre",
	}, messages)
}

func TestService_PurgeRead(t *testing.T) {
	mockRepo := new(MockNotificationRepository)
	mockUsers := new(MockUserReader)

	mockRepo.On("DeleteReadOlderThan", mock.Anything, mock.Anything).Return(int64(3), nil)

	service := NewService(mockRepo, mockUsers, nil)

	deleted, err := service.PurgeRead(context.Background(), 30*24*time.Hour)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}
