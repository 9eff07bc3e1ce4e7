package moderation

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/resonate-app/resonate-backend/internal/models"
	"gorm.io/datatypes"
)

// IntakeService validates, deduplicates and persists incoming reports, then
// synchronously re-evaluates escalation for the reported content. Escalation
// failures never fail the intake call: the report is already persisted, so
// the error is logged and captured instead of propagated.
type IntakeService struct {
	reports    ReportStore
	reputation ReputationService
	escalation *EscalationEngine
}

func NewIntakeService(reports ReportStore, reputation ReputationService, escalation *EscalationEngine) *IntakeService {
	return &IntakeService{reports: reports, reputation: reputation, escalation: escalation}
}

// SubmitReportInput carries a new whisper-level report.
type SubmitReportInput struct {
	ContentID uuid.UUID
	Category  models.ReportCategory
	Reason    string
	Evidence  []string
}

// SubmitCommentReportInput carries a new comment-level report.
type SubmitCommentReportInput struct {
	ContentID uuid.UUID
	CommentID uuid.UUID
	Category  models.ReportCategory
	Reason    string
	Evidence  []string
}

// SubmitReport files a report against a whisper. A repeat report from the
// same reporter in the same category merges into the existing row (reason
// appended, priority bumped one level) instead of inserting a duplicate; a
// different category creates a sibling report.
func (s *IntakeService) SubmitReport(reporterID uuid.UUID, in SubmitReportInput) (*models.Report, error) {
	rep, err := s.validateReporter(reporterID, in.Category)
	if err != nil {
		return nil, err
	}

	existing, err := s.reports.GetByReporterAndContent(reporterID, in.ContentID)
	if err != nil {
		return nil, fmt.Errorf("intake: load existing reports: %w", err)
	}
	if merged, err := s.mergeDuplicate(existing, in.Category, in.Reason); merged != nil || err != nil {
		if merged != nil {
			s.reevaluateWhisper(in.ContentID)
		}
		return merged, err
	}

	report := &models.Report{
		ContentID:        in.ContentID,
		ReporterID:       reporterID,
		ReporterScore:    rep.Score,
		Category:         in.Category,
		Priority:         CalculatePriority(in.Category, rep),
		Status:           models.StatusPending,
		Reason:           in.Reason,
		Evidence:         marshalEvidence(in.Evidence),
		ReputationWeight: ReputationWeight(rep),
	}
	if err := s.reports.Save(report); err != nil {
		return nil, fmt.Errorf("intake: save report: %w", err)
	}

	s.reevaluateWhisper(in.ContentID)
	return report, nil
}

// SubmitCommentReport files a report against a comment. Dedup is scoped to
// the comment, not its parent whisper.
func (s *IntakeService) SubmitCommentReport(reporterID uuid.UUID, in SubmitCommentReportInput) (*models.Report, error) {
	rep, err := s.validateReporter(reporterID, in.Category)
	if err != nil {
		return nil, err
	}

	existing, err := s.reports.GetByReporterAndComment(reporterID, in.CommentID)
	if err != nil {
		return nil, fmt.Errorf("intake: load existing comment reports: %w", err)
	}
	if merged, err := s.mergeDuplicate(existing, in.Category, in.Reason); merged != nil || err != nil {
		if merged != nil {
			s.reevaluateComment(in.CommentID)
		}
		return merged, err
	}

	commentID := in.CommentID
	report := &models.Report{
		ContentID:        in.ContentID,
		CommentID:        &commentID,
		ReporterID:       reporterID,
		ReporterScore:    rep.Score,
		Category:         in.Category,
		Priority:         CalculatePriority(in.Category, rep),
		Status:           models.StatusPending,
		Reason:           in.Reason,
		Evidence:         marshalEvidence(in.Evidence),
		ReputationWeight: ReputationWeight(rep),
	}
	if err := s.reports.Save(report); err != nil {
		return nil, fmt.Errorf("intake: save comment report: %w", err)
	}

	s.reevaluateComment(in.CommentID)
	return report, nil
}

func (s *IntakeService) validateReporter(reporterID uuid.UUID, category models.ReportCategory) (models.Reputation, error) {
	if !category.Valid() {
		return models.Reputation{}, ErrInvalidCategory
	}
	rep, err := s.reputation.Get(reporterID)
	if err != nil {
		return models.Reputation{}, fmt.Errorf("intake: reporter reputation: %w", err)
	}
	if rep.Level == models.ReputationBanned {
		return models.Reputation{}, ErrReporterBanned
	}
	return rep, nil
}

// mergeDuplicate updates an existing same-category report from the same
// reporter: the new reason is appended to the reason trail and the stored
// priority is bumped one level, capped at critical. Returns (nil, nil) when
// there is nothing to merge with.
func (s *IntakeService) mergeDuplicate(existing []models.Report, category models.ReportCategory, reason string) (*models.Report, error) {
	for i := range existing {
		if existing[i].Category != category {
			continue
		}
		dup := existing[i]
		dup.Reason = dup.Reason + "; " + reason
		dup.Priority = dup.Priority.Bump()
		if err := s.reports.Update(&dup); err != nil {
			return nil, fmt.Errorf("intake: merge duplicate report %s: %w", dup.ID, err)
		}
		return &dup, nil
	}
	return nil, nil
}

// reevaluateWhisper runs escalation for the content and absorbs any failure:
// the triggering intake call must still succeed with the report persisted.
func (s *IntakeService) reevaluateWhisper(contentID uuid.UUID) {
	if _, err := s.escalation.EvaluateWhisper(contentID); err != nil {
		slog.Error("escalation evaluation failed", "content_id", contentID, "error", err)
		sentry.CaptureException(err)
	}
}

func (s *IntakeService) reevaluateComment(commentID uuid.UUID) {
	if _, err := s.escalation.EvaluateComment(commentID); err != nil {
		slog.Error("escalation evaluation failed", "comment_id", commentID, "error", err)
		sentry.CaptureException(err)
	}
}

func marshalEvidence(evidence []string) datatypes.JSON {
	if len(evidence) == 0 {
		return datatypes.JSON([]byte("[]"))
	}
	b, err := json.Marshal(evidence)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(b)
}
