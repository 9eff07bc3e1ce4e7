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

type resolutionFixture struct {
	reports     *MockReportStore
	suspensions *MockSuspensionStore
	reputation  *MockReputationService
	content     *MockContentService
	engine      *moderation.ResolutionEngine
}

func newResolutionFixture() *resolutionFixture {
	f := &resolutionFixture{
		reports:     new(MockReportStore),
		suspensions: new(MockSuspensionStore),
		reputation:  new(MockReputationService),
		content:     new(MockContentService),
	}
	cfg := config.DefaultModeration()
	suspensionService := moderation.NewSuspensionService(f.suspensions, f.reputation, nil, cfg)
	f.engine = moderation.NewResolutionEngine(f.reports, suspensionService, f.reputation, f.content, cfg)
	return f
}

func pendingWhisperReport() *models.Report {
	return &models.Report{
		ID:         uuid.New(),
		ContentID:  uuid.New(),
		ReporterID: uuid.New(),
		Category:   models.CategoryHarassment,
		Priority:   models.PriorityMedium,
		Status:     models.StatusUnderReview,
	}
}

func pendingCommentReport() *models.Report {
	r := pendingWhisperReport()
	commentID := uuid.New()
	r.CommentID = &commentID
	return r
}

func TestResolution_NotFound(t *testing.T) {
	f := newResolutionFixture()
	id := uuid.New()
	f.reports.On("GetByID", id).Return(nil, moderation.ErrReportNotFound)

	_, err := f.engine.ResolveReport(id, moderation.ResolutionInput{Action: models.ActionDismiss})

	assert.ErrorIs(t, err, moderation.ErrReportNotFound)
}

func TestResolution_StoreFailureIsNotNotFound(t *testing.T) {
	f := newResolutionFixture()
	id := uuid.New()
	outage := errors.New("connection refused")
	f.reports.On("GetByID", id).Return(nil, outage)

	_, err := f.engine.ResolveReport(id, moderation.ResolutionInput{Action: models.ActionDismiss})

	assert.ErrorIs(t, err, outage)
	assert.NotErrorIs(t, err, moderation.ErrReportNotFound)
}

func TestResolution_AlreadyResolved(t *testing.T) {
	f := newResolutionFixture()
	report := pendingWhisperReport()
	report.Status = models.StatusResolved
	report.Resolution.Action = models.ActionDismiss
	f.reports.On("GetByID", report.ID).Return(report, nil)

	_, err := f.engine.ResolveReport(report.ID, moderation.ResolutionInput{Action: models.ActionFlag})

	assert.ErrorIs(t, err, moderation.ErrAlreadyResolved)
	f.reports.AssertNotCalled(t, "Update", mock.Anything)
}

func TestResolution_WhisperRejectsCommentActions(t *testing.T) {
	f := newResolutionFixture()
	report := pendingWhisperReport()
	f.reports.On("GetByID", report.ID).Return(report, nil)

	_, err := f.engine.ResolveReport(report.ID, moderation.ResolutionInput{Action: models.ActionHide})

	assert.ErrorIs(t, err, moderation.ErrInvalidAction)
}

func TestResolution_WhisperPathRejectsCommentReport(t *testing.T) {
	f := newResolutionFixture()
	report := pendingCommentReport()
	f.reports.On("GetByID", report.ID).Return(report, nil)

	_, err := f.engine.ResolveReport(report.ID, moderation.ResolutionInput{Action: models.ActionDismiss})

	assert.ErrorIs(t, err, moderation.ErrInvalidAction)
}

func TestResolution_Dismiss_PenalizesReporter(t *testing.T) {
	f := newResolutionFixture()
	report := pendingWhisperReport()
	moderatorID := uuid.New()

	f.reports.On("GetByID", report.ID).Return(report, nil)
	f.reports.On("Update", report).Return(nil)
	f.reputation.On("AdjustScore", report.ReporterID, -10, "report dismissed").Return(nil)

	resolved, err := f.engine.ResolveReport(report.ID, moderation.ResolutionInput{
		Action:      models.ActionDismiss,
		Reason:      "no violation found",
		ModeratorID: moderatorID,
	})

	assert.NoError(t, err)
	assert.Equal(t, models.StatusResolved, resolved.Status)
	assert.Equal(t, models.ActionDismiss, resolved.Resolution.Action)
	assert.Equal(t, moderatorID, *resolved.Resolution.ModeratorID)
	assert.NotNil(t, resolved.ReviewedAt)
	f.reputation.AssertCalled(t, "AdjustScore", report.ReporterID, -10, "report dismissed")
}

func TestResolution_Reject_DeletesAndPenalizesAuthor(t *testing.T) {
	f := newResolutionFixture()
	report := pendingWhisperReport()
	authorID := uuid.New()

	f.reports.On("GetByID", report.ID).Return(report, nil)
	f.reports.On("Update", report).Return(nil)
	f.content.On("GetWhisper", report.ContentID).Return(&models.Whisper{ID: report.ContentID, AuthorID: authorID}, nil)
	f.content.On("DeleteWhisper", report.ContentID).Return(nil)
	f.reputation.On("AdjustScore", authorID, -20, "content rejected").Return(nil)

	_, err := f.engine.ResolveReport(report.ID, moderation.ResolutionInput{
		Action:      models.ActionReject,
		Reason:      "violates guidelines",
		ModeratorID: uuid.New(),
	})

	assert.NoError(t, err)
	f.content.AssertCalled(t, "DeleteWhisper", report.ContentID)
	f.reputation.AssertCalled(t, "AdjustScore", authorID, -20, "content rejected")
}

func TestResolution_Ban_SuspendsAuthorAndDeletes(t *testing.T) {
	f := newResolutionFixture()
	report := pendingWhisperReport()
	authorID := uuid.New()

	f.reports.On("GetByID", report.ID).Return(report, nil)
	f.reports.On("Update", report).Return(nil)
	f.content.On("GetWhisper", report.ContentID).Return(&models.Whisper{ID: report.ContentID, AuthorID: authorID}, nil)
	f.content.On("DeleteWhisper", report.ContentID).Return(nil)
	f.suspensions.On("Save", mock.AnythingOfType("*models.Suspension")).Return(nil)
	f.reputation.On("AdjustScore", authorID, -25, "suspension issued").Return(nil)

	_, err := f.engine.ResolveReport(report.ID, moderation.ResolutionInput{
		Action:      models.ActionBan,
		Reason:      "repeat offender",
		ModeratorID: uuid.New(),
	})

	assert.NoError(t, err)
	f.suspensions.AssertCalled(t, "Save", mock.MatchedBy(func(s *models.Suspension) bool {
		return s.UserID == authorID &&
			s.Type == models.SuspensionTemporary &&
			s.Appealable &&
			s.Duration != nil && *s.Duration == config.DefaultModeration().TempBanDuration
	}))
	f.content.AssertCalled(t, "DeleteWhisper", report.ContentID)
}

func TestResolution_Warn_CreatesInactiveWarning(t *testing.T) {
	f := newResolutionFixture()
	report := pendingWhisperReport()
	authorID := uuid.New()

	f.reports.On("GetByID", report.ID).Return(report, nil)
	f.reports.On("Update", report).Return(nil)
	f.content.On("GetWhisper", report.ContentID).Return(&models.Whisper{ID: report.ContentID, AuthorID: authorID}, nil)
	f.suspensions.On("Save", mock.AnythingOfType("*models.Suspension")).Return(nil)

	_, err := f.engine.ResolveReport(report.ID, moderation.ResolutionInput{
		Action:      models.ActionWarn,
		Reason:      "first offense",
		ModeratorID: uuid.New(),
	})

	assert.NoError(t, err)
	f.suspensions.AssertCalled(t, "Save", mock.MatchedBy(func(s *models.Suspension) bool {
		return s.UserID == authorID && s.Type == models.SuspensionWarning && !s.IsActive
	}))
	// Warnings carry no reputation debit.
	f.reputation.AssertNotCalled(t, "AdjustScore", mock.Anything, mock.Anything, mock.Anything)
}

func TestResolution_Flag_MarksWhisper(t *testing.T) {
	f := newResolutionFixture()
	report := pendingWhisperReport()

	f.reports.On("GetByID", report.ID).Return(report, nil)
	f.reports.On("Update", report).Return(nil)
	f.content.On("FlagWhisper", report.ContentID).Return(nil)

	_, err := f.engine.ResolveReport(report.ID, moderation.ResolutionInput{
		Action:      models.ActionFlag,
		ModeratorID: uuid.New(),
	})

	assert.NoError(t, err)
	f.content.AssertCalled(t, "FlagWhisper", report.ContentID)
	f.content.AssertNotCalled(t, "DeleteWhisper", mock.Anything)
}

func TestResolution_CommentDelete_PenalizesAuthor(t *testing.T) {
	f := newResolutionFixture()
	report := pendingCommentReport()
	authorID := uuid.New()

	f.reports.On("GetByID", report.ID).Return(report, nil)
	f.reports.On("Update", report).Return(nil)
	f.content.On("GetComment", *report.CommentID).Return(&models.Comment{ID: *report.CommentID, AuthorID: authorID}, nil)
	f.content.On("DeleteComment", *report.CommentID).Return(nil)
	f.reputation.On("AdjustScore", authorID, -15, "comment deleted").Return(nil)

	_, err := f.engine.ResolveCommentReport(report.ID, moderation.ResolutionInput{
		Action:      models.ActionDelete,
		ModeratorID: uuid.New(),
	})

	assert.NoError(t, err)
	f.content.AssertCalled(t, "DeleteComment", *report.CommentID)
	f.reputation.AssertCalled(t, "AdjustScore", authorID, -15, "comment deleted")
}

func TestResolution_CommentHide(t *testing.T) {
	f := newResolutionFixture()
	report := pendingCommentReport()

	f.reports.On("GetByID", report.ID).Return(report, nil)
	f.reports.On("Update", report).Return(nil)
	f.content.On("HideComment", *report.CommentID).Return(nil)

	_, err := f.engine.ResolveCommentReport(report.ID, moderation.ResolutionInput{
		Action:      models.ActionHide,
		ModeratorID: uuid.New(),
	})

	assert.NoError(t, err)
	f.content.AssertCalled(t, "HideComment", *report.CommentID)
}

func TestResolution_CommentPathRejectsWhisperOnlyActions(t *testing.T) {
	f := newResolutionFixture()
	report := pendingCommentReport()
	f.reports.On("GetByID", report.ID).Return(report, nil)

	for _, action := range []models.ResolutionAction{models.ActionReject, models.ActionBan} {
		_, err := f.engine.ResolveCommentReport(report.ID, moderation.ResolutionInput{Action: action})
		assert.ErrorIs(t, err, moderation.ErrInvalidAction, "action %s", action)
	}
}

func TestResolution_SideEffectFailureLeavesReportResolved(t *testing.T) {
	f := newResolutionFixture()
	report := pendingWhisperReport()

	f.reports.On("GetByID", report.ID).Return(report, nil)
	f.reports.On("Update", report).Return(nil)
	f.content.On("FlagWhisper", report.ContentID).Return(errors.New("content service down"))

	resolved, err := f.engine.ResolveReport(report.ID, moderation.ResolutionInput{
		Action:      models.ActionFlag,
		ModeratorID: uuid.New(),
	})

	assert.Error(t, err)
	assert.NotNil(t, resolved)
	assert.Equal(t, models.StatusResolved, resolved.Status)
}
