package moderation

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/resonate-app/resonate-backend/internal/config"
	"github.com/resonate-app/resonate-backend/internal/models"
)

// EscalationEngine evaluates a content item's full report set against the
// configured thresholds and promotes pending reports to under_review when
// one fires. Evaluation is idempotent: only pending reports are advanced,
// so re-running it for the same content (including concurrently) is safe.
//
// The engine's action label is advisory. It reports what should happen to
// the content; actually deleting or banning is the resolution engine's job.
type EscalationEngine struct {
	reports ReportStore
	cfg     config.ModerationConfig
}

func NewEscalationEngine(reports ReportStore, cfg config.ModerationConfig) *EscalationEngine {
	return &EscalationEngine{reports: reports, cfg: cfg}
}

// EscalationResult describes one evaluation pass.
type EscalationResult struct {
	Escalated       bool                    `json:"escalated"`
	Action          models.EscalationAction `json:"action,omitempty"`
	TotalReports    int                     `json:"total_reports"`
	UniqueReporters int                     `json:"unique_reporters"`
	HasCritical     bool                    `json:"has_critical"`
}

// EvaluateWhisper re-reads all whisper-level reports for the given whisper
// and applies the threshold rules.
func (e *EscalationEngine) EvaluateWhisper(contentID uuid.UUID) (*EscalationResult, error) {
	reports, err := e.reports.GetByContent(contentID)
	if err != nil {
		return nil, fmt.Errorf("escalation: load reports for whisper %s: %w", contentID, err)
	}
	return e.evaluate(reports)
}

// EvaluateComment is the comment-scoped equivalent of EvaluateWhisper.
func (e *EscalationEngine) EvaluateComment(commentID uuid.UUID) (*EscalationResult, error) {
	reports, err := e.reports.GetByComment(commentID)
	if err != nil {
		return nil, fmt.Errorf("escalation: load reports for comment %s: %w", commentID, err)
	}
	return e.evaluate(reports)
}

func (e *EscalationEngine) evaluate(reports []models.Report) (*EscalationResult, error) {
	result := &EscalationResult{TotalReports: len(reports)}

	seen := make(map[uuid.UUID]struct{}, len(reports))
	for i := range reports {
		seen[reports[i].ReporterID] = struct{}{}
		if reports[i].Priority == models.PriorityCritical {
			result.HasCritical = true
		}
	}
	result.UniqueReporters = len(seen)

	// A single critical report escalates regardless of counts; otherwise
	// both the total and the distinct-reporter gate must be met. The
	// distinct-reporter minimum exists to blunt brigading by one account.
	trigger := result.HasCritical ||
		(result.TotalReports >= e.cfg.FlagForReviewThreshold &&
			result.UniqueReporters >= e.cfg.UniqueReportersMin)
	if !trigger {
		return result, nil
	}

	result.Escalated = true
	result.Action = e.strongestAction(result.TotalReports, result.UniqueReporters)

	for i := range reports {
		if reports[i].Status != models.StatusPending {
			continue
		}
		reports[i].Status = models.StatusUnderReview
		if err := e.reports.Update(&reports[i]); err != nil {
			return result, fmt.Errorf("escalation: advance report %s: %w", reports[i].ID, err)
		}
	}

	slog.Info("content escalated",
		"action", result.Action,
		"total_reports", result.TotalReports,
		"unique_reporters", result.UniqueReporters,
		"has_critical", result.HasCritical)

	return result, nil
}

// strongestAction re-checks the higher thresholds so the most severe
// applicable label wins.
func (e *EscalationEngine) strongestAction(total, unique int) models.EscalationAction {
	switch {
	case total >= e.cfg.DeleteAndTempBanThreshold && unique >= e.cfg.DeleteAndBanUniqueMin:
		return models.EscalationDeleteAndBan
	case total >= e.cfg.AutoDeleteThreshold && unique >= e.cfg.AutoDeleteUniqueMin:
		return models.EscalationAutoDelete
	default:
		return models.EscalationFlaggedForReview
	}
}

// EscalateReport unconditionally marks a single report escalated. This is
// the manual moderator path and bypasses the threshold rules.
func (e *EscalationEngine) EscalateReport(reportID uuid.UUID) (*models.Report, error) {
	report, err := e.reports.GetByID(reportID)
	if err != nil {
		return nil, fmt.Errorf("escalate report %s: %w", reportID, err)
	}
	report.Status = models.StatusEscalated
	if err := e.reports.Update(report); err != nil {
		return nil, fmt.Errorf("escalate report %s: %w", reportID, err)
	}
	return report, nil
}
