package moderation_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/resonate-app/resonate-backend/internal/moderation"
	"github.com/resonate-app/resonate-backend/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockReportStore struct {
	mock.Mock
}

func (m *MockReportStore) Save(report *models.Report) error {
	args := m.Called(report)
	return args.Error(0)
}

func (m *MockReportStore) GetByID(id uuid.UUID) (*models.Report, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

func (m *MockReportStore) Update(report *models.Report) error {
	args := m.Called(report)
	return args.Error(0)
}

func (m *MockReportStore) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockReportStore) GetByContent(contentID uuid.UUID) ([]models.Report, error) {
	args := m.Called(contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Report), args.Error(1)
}

func (m *MockReportStore) GetByComment(commentID uuid.UUID) ([]models.Report, error) {
	args := m.Called(commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Report), args.Error(1)
}

func (m *MockReportStore) GetByReporterAndContent(reporterID, contentID uuid.UUID) ([]models.Report, error) {
	args := m.Called(reporterID, contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Report), args.Error(1)
}

func (m *MockReportStore) GetByReporterAndComment(reporterID, commentID uuid.UUID) ([]models.Report, error) {
	args := m.Called(reporterID, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Report), args.Error(1)
}

func (m *MockReportStore) GetByReporter(reporterID uuid.UUID) ([]models.Report, error) {
	args := m.Called(reporterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Report), args.Error(1)
}

func (m *MockReportStore) GetWithFilters(f moderation.ReportFilters) ([]models.Report, error) {
	args := m.Called(f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Report), args.Error(1)
}

func (m *MockReportStore) GetAll() ([]models.Report, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Report), args.Error(1)
}

type MockSuspensionStore struct {
	mock.Mock
}

func (m *MockSuspensionStore) Save(s *models.Suspension) error {
	args := m.Called(s)
	return args.Error(0)
}

func (m *MockSuspensionStore) GetByID(id uuid.UUID) (*models.Suspension, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Suspension), args.Error(1)
}

func (m *MockSuspensionStore) Update(s *models.Suspension) error {
	args := m.Called(s)
	return args.Error(0)
}

func (m *MockSuspensionStore) GetByUser(userID uuid.UUID) ([]models.Suspension, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Suspension), args.Error(1)
}

func (m *MockSuspensionStore) GetActiveByUser(userID uuid.UUID) ([]models.Suspension, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Suspension), args.Error(1)
}

func (m *MockSuspensionStore) GetActive() ([]models.Suspension, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Suspension), args.Error(1)
}

func (m *MockSuspensionStore) GetAll() ([]models.Suspension, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Suspension), args.Error(1)
}

type MockReputationService struct {
	mock.Mock
}

func (m *MockReputationService) Get(userID uuid.UUID) (models.Reputation, error) {
	args := m.Called(userID)
	return args.Get(0).(models.Reputation), args.Error(1)
}

func (m *MockReputationService) AdjustScore(userID uuid.UUID, delta int, reason string) error {
	args := m.Called(userID, delta, reason)
	return args.Error(0)
}

func (m *MockReputationService) Update(userID uuid.UUID, patch moderation.ReputationPatch) error {
	args := m.Called(userID, patch)
	return args.Error(0)
}

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) GetWhisper(id uuid.UUID) (*models.Whisper, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Whisper), args.Error(1)
}

func (m *MockContentService) DeleteWhisper(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockContentService) FlagWhisper(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockContentService) GetComment(id uuid.UUID) (*models.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockContentService) DeleteComment(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockContentService) HideComment(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockContentService) FlagComment(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockStatusCache records status cache traffic in memory so tests can
// assert read-through and invalidation behavior.
type MockStatusCache struct {
	entries     map[uuid.UUID]*moderation.SuspensionStatus
	Sets        int
	Hits        int
	Invalidated []uuid.UUID
}

func NewMockStatusCache() *MockStatusCache {
	return &MockStatusCache{entries: make(map[uuid.UUID]*moderation.SuspensionStatus)}
}

func (m *MockStatusCache) Get(userID uuid.UUID) (*moderation.SuspensionStatus, bool) {
	status, ok := m.entries[userID]
	if ok {
		m.Hits++
	}
	return status, ok
}

func (m *MockStatusCache) Set(userID uuid.UUID, status *moderation.SuspensionStatus) {
	m.entries[userID] = status
	m.Sets++
}

func (m *MockStatusCache) Invalidate(userID uuid.UUID) {
	delete(m.entries, userID)
	m.Invalidated = append(m.Invalidated, userID)
}

func durPtr(d time.Duration) *time.Duration {
	return &d
}
