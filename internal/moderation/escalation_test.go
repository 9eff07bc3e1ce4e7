package moderation_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/resonate-app/resonate-backend/internal/config"
	"github.com/resonate-app/resonate-backend/internal/moderation"
	"github.com/resonate-app/resonate-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// reportsFrom builds n pending reports against the same whisper, one per
// distinct reporter.
func reportsFrom(contentID uuid.UUID, n int, priority models.ReportPriority) []models.Report {
	out := make([]models.Report, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.Report{
			ID:         uuid.New(),
			ContentID:  contentID,
			ReporterID: uuid.New(),
			Category:   models.CategorySpam,
			Priority:   priority,
			Status:     models.StatusPending,
		})
	}
	return out
}

func TestEscalation_BelowThreshold(t *testing.T) {
	reports := new(MockReportStore)
	engine := moderation.NewEscalationEngine(reports, config.DefaultModeration())

	contentID := uuid.New()
	reports.On("GetByContent", contentID).Return(reportsFrom(contentID, 2, models.PriorityMedium), nil)

	result, err := engine.EvaluateWhisper(contentID)

	assert.NoError(t, err)
	assert.False(t, result.Escalated)
	assert.Equal(t, 2, result.TotalReports)
	assert.Equal(t, 2, result.UniqueReporters)
	reports.AssertNotCalled(t, "Update", mock.Anything)
}

func TestEscalation_ThresholdWithUniqueReporters(t *testing.T) {
	reports := new(MockReportStore)
	engine := moderation.NewEscalationEngine(reports, config.DefaultModeration())

	contentID := uuid.New()
	reports.On("GetByContent", contentID).Return(reportsFrom(contentID, 3, models.PriorityMedium), nil)
	reports.On("Update", mock.AnythingOfType("*models.Report")).Return(nil)

	result, err := engine.EvaluateWhisper(contentID)

	assert.NoError(t, err)
	assert.True(t, result.Escalated)
	assert.Equal(t, models.EscalationFlaggedForReview, result.Action)
	reports.AssertNumberOfCalls(t, "Update", 3)
}

func TestEscalation_SingleReporterCannotTrigger(t *testing.T) {
	reports := new(MockReportStore)
	engine := moderation.NewEscalationEngine(reports, config.DefaultModeration())

	contentID := uuid.New()
	reporterID := uuid.New()
	set := reportsFrom(contentID, 4, models.PriorityMedium)
	for i := range set {
		set[i].ReporterID = reporterID
	}
	reports.On("GetByContent", contentID).Return(set, nil)

	result, err := engine.EvaluateWhisper(contentID)

	assert.NoError(t, err)
	assert.False(t, result.Escalated)
	assert.Equal(t, 1, result.UniqueReporters)
	reports.AssertNotCalled(t, "Update", mock.Anything)
}

func TestEscalation_SingleCriticalBypassesCounts(t *testing.T) {
	reports := new(MockReportStore)
	engine := moderation.NewEscalationEngine(reports, config.DefaultModeration())

	contentID := uuid.New()
	reports.On("GetByContent", contentID).Return(reportsFrom(contentID, 1, models.PriorityCritical), nil)
	reports.On("Update", mock.AnythingOfType("*models.Report")).Return(nil)

	result, err := engine.EvaluateWhisper(contentID)

	assert.NoError(t, err)
	assert.True(t, result.Escalated)
	assert.True(t, result.HasCritical)
	assert.Equal(t, models.EscalationFlaggedForReview, result.Action)
}

func TestEscalation_StrongestActionWins(t *testing.T) {
	engine := func(reports *MockReportStore) *moderation.EscalationEngine {
		return moderation.NewEscalationEngine(reports, config.DefaultModeration())
	}

	t.Run("auto delete at five unique reporters", func(t *testing.T) {
		reports := new(MockReportStore)
		contentID := uuid.New()
		reports.On("GetByContent", contentID).Return(reportsFrom(contentID, 5, models.PriorityMedium), nil)
		reports.On("Update", mock.AnythingOfType("*models.Report")).Return(nil)

		result, err := engine(reports).EvaluateWhisper(contentID)
		assert.NoError(t, err)
		assert.Equal(t, models.EscalationAutoDelete, result.Action)
	})

	t.Run("delete and ban at eight unique reporters", func(t *testing.T) {
		reports := new(MockReportStore)
		contentID := uuid.New()
		reports.On("GetByContent", contentID).Return(reportsFrom(contentID, 8, models.PriorityMedium), nil)
		reports.On("Update", mock.AnythingOfType("*models.Report")).Return(nil)

		result, err := engine(reports).EvaluateWhisper(contentID)
		assert.NoError(t, err)
		assert.Equal(t, models.EscalationDeleteAndBan, result.Action)
	})
}

func TestEscalation_OnlyPendingReportsAdvance(t *testing.T) {
	reports := new(MockReportStore)
	engine := moderation.NewEscalationEngine(reports, config.DefaultModeration())

	contentID := uuid.New()
	set := reportsFrom(contentID, 4, models.PriorityMedium)
	set[0].Status = models.StatusUnderReview
	set[1].Status = models.StatusResolved
	reports.On("GetByContent", contentID).Return(set, nil)
	reports.On("Update", mock.AnythingOfType("*models.Report")).Return(nil)

	result, err := engine.EvaluateWhisper(contentID)

	assert.NoError(t, err)
	assert.True(t, result.Escalated)
	// Re-running evaluation touches only the two still-pending reports.
	reports.AssertNumberOfCalls(t, "Update", 2)
}

func TestEscalation_EvaluateComment(t *testing.T) {
	reports := new(MockReportStore)
	engine := moderation.NewEscalationEngine(reports, config.DefaultModeration())

	commentID := uuid.New()
	set := reportsFrom(uuid.New(), 3, models.PriorityMedium)
	for i := range set {
		id := commentID
		set[i].CommentID = &id
	}
	reports.On("GetByComment", commentID).Return(set, nil)
	reports.On("Update", mock.AnythingOfType("*models.Report")).Return(nil)

	result, err := engine.EvaluateComment(commentID)

	assert.NoError(t, err)
	assert.True(t, result.Escalated)
	reports.AssertNotCalled(t, "GetByContent", mock.Anything)
}

func TestEscalation_ManualEscalateReport(t *testing.T) {
	reports := new(MockReportStore)
	engine := moderation.NewEscalationEngine(reports, config.DefaultModeration())

	report := &models.Report{ID: uuid.New(), Status: models.StatusPending}
	reports.On("GetByID", report.ID).Return(report, nil)
	reports.On("Update", report).Return(nil)

	escalated, err := engine.EscalateReport(report.ID)

	assert.NoError(t, err)
	assert.Equal(t, models.StatusEscalated, escalated.Status)
}

func TestEscalation_ManualEscalateReport_NotFound(t *testing.T) {
	reports := new(MockReportStore)
	engine := moderation.NewEscalationEngine(reports, config.DefaultModeration())

	id := uuid.New()
	reports.On("GetByID", id).Return(nil, moderation.ErrReportNotFound)

	_, err := engine.EscalateReport(id)

	assert.ErrorIs(t, err, moderation.ErrReportNotFound)
}

func TestEscalation_ManualEscalateReport_StoreFailureIsNotNotFound(t *testing.T) {
	reports := new(MockReportStore)
	engine := moderation.NewEscalationEngine(reports, config.DefaultModeration())

	id := uuid.New()
	outage := errors.New("connection refused")
	reports.On("GetByID", id).Return(nil, outage)

	_, err := engine.EscalateReport(id)

	assert.ErrorIs(t, err, outage)
	assert.NotErrorIs(t, err, moderation.ErrReportNotFound)
}
