package moderation

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/resonate-app/resonate-backend/internal/config"
	"github.com/resonate-app/resonate-backend/internal/models"
)

// ResolutionEngine applies a moderator's terminal decision to a report: the
// report is marked resolved first, then the action's side effect runs
// against the content, author and reporter records.
//
// The store gives no cross-record transaction, so a side-effect failure
// after the status write leaves the report resolved with the effect
// unapplied. That gap is deliberate and surfaced to the caller as an error;
// there is no automatic retry or rollback here.
type ResolutionEngine struct {
	reports     ReportStore
	suspensions *SuspensionService
	reputation  ReputationService
	content     ContentService
	cfg         config.ModerationConfig
}

func NewResolutionEngine(reports ReportStore, suspensions *SuspensionService, reputation ReputationService, content ContentService, cfg config.ModerationConfig) *ResolutionEngine {
	return &ResolutionEngine{
		reports:     reports,
		suspensions: suspensions,
		reputation:  reputation,
		content:     content,
		cfg:         cfg,
	}
}

// ResolutionInput is the moderator's decision.
type ResolutionInput struct {
	Action      models.ResolutionAction
	Reason      string
	ModeratorID uuid.UUID
	Notes       string
}

// ResolveReport closes a whisper report. Valid actions: warn, flag, reject,
// ban, dismiss. Resolving an already-resolved report is rejected.
func (r *ResolutionEngine) ResolveReport(reportID uuid.UUID, in ResolutionInput) (*models.Report, error) {
	report, err := r.loadUnresolved(reportID)
	if err != nil {
		return nil, err
	}
	if report.IsCommentReport() || !in.Action.ValidForWhisper() {
		return nil, ErrInvalidAction
	}

	if err := r.attachResolution(report, in); err != nil {
		return nil, err
	}
	if err := r.applyWhisperAction(report, in); err != nil {
		return report, err
	}
	return report, nil
}

// ResolveCommentReport closes a comment report. Valid actions: warn, flag,
// dismiss, hide, delete.
func (r *ResolutionEngine) ResolveCommentReport(reportID uuid.UUID, in ResolutionInput) (*models.Report, error) {
	report, err := r.loadUnresolved(reportID)
	if err != nil {
		return nil, err
	}
	if !report.IsCommentReport() || !in.Action.ValidForComment() {
		return nil, ErrInvalidAction
	}

	if err := r.attachResolution(report, in); err != nil {
		return nil, err
	}
	if err := r.applyCommentAction(report, in); err != nil {
		return report, err
	}
	return report, nil
}

func (r *ResolutionEngine) loadUnresolved(reportID uuid.UUID) (*models.Report, error) {
	report, err := r.reports.GetByID(reportID)
	if err != nil {
		return nil, fmt.Errorf("resolve report %s: %w", reportID, err)
	}
	if report.Resolved() {
		return nil, ErrAlreadyResolved
	}
	return report, nil
}

// attachResolution stamps the report resolved exactly once.
func (r *ResolutionEngine) attachResolution(report *models.Report, in ResolutionInput) error {
	now := time.Now().UTC()
	moderatorID := in.ModeratorID

	report.Status = models.StatusResolved
	report.Resolution = models.Resolution{
		Action:      in.Action,
		Reason:      in.Reason,
		ModeratorID: &moderatorID,
		Notes:       in.Notes,
		Timestamp:   &now,
	}
	report.ReviewedAt = &now
	report.ReviewedBy = &moderatorID

	if err := r.reports.Update(report); err != nil {
		return fmt.Errorf("resolve report %s: update: %w", report.ID, err)
	}
	return nil
}

func (r *ResolutionEngine) applyWhisperAction(report *models.Report, in ResolutionInput) error {
	switch in.Action {
	case models.ActionWarn:
		whisper, err := r.content.GetWhisper(report.ContentID)
		if err != nil {
			return fmt.Errorf("resolution warn: fetch whisper %s: %w", report.ContentID, err)
		}
		_, err = r.suspensions.Create(CreateSuspensionInput{
			UserID:      whisper.AuthorID,
			Type:        models.SuspensionWarning,
			Reason:      in.Reason,
			ModeratorID: &in.ModeratorID,
		})
		if err != nil {
			return fmt.Errorf("resolution warn: create warning: %w", err)
		}
		return nil

	case models.ActionFlag:
		if err := r.content.FlagWhisper(report.ContentID); err != nil {
			return fmt.Errorf("resolution flag: whisper %s: %w", report.ContentID, err)
		}
		return nil

	case models.ActionReject:
		whisper, err := r.content.GetWhisper(report.ContentID)
		if err != nil {
			return fmt.Errorf("resolution reject: fetch whisper %s: %w", report.ContentID, err)
		}
		if err := r.content.DeleteWhisper(report.ContentID); err != nil {
			return fmt.Errorf("resolution reject: delete whisper %s: %w", report.ContentID, err)
		}
		if err := r.reputation.AdjustScore(whisper.AuthorID, -r.cfg.RejectPenalty, "content rejected"); err != nil {
			return fmt.Errorf("resolution reject: penalize author %s: %w", whisper.AuthorID, err)
		}
		return nil

	case models.ActionBan:
		whisper, err := r.content.GetWhisper(report.ContentID)
		if err != nil {
			return fmt.Errorf("resolution ban: fetch whisper %s: %w", report.ContentID, err)
		}
		_, err = r.suspensions.Create(CreateSuspensionInput{
			UserID:      whisper.AuthorID,
			Type:        models.SuspensionTemporary,
			Reason:      in.Reason,
			Duration:    r.cfg.TempBanDuration,
			Appealable:  true,
			ModeratorID: &in.ModeratorID,
		})
		if err != nil {
			return fmt.Errorf("resolution ban: suspend author %s: %w", whisper.AuthorID, err)
		}
		if err := r.content.DeleteWhisper(report.ContentID); err != nil {
			return fmt.Errorf("resolution ban: delete whisper %s: %w", report.ContentID, err)
		}
		return nil

	case models.ActionDismiss:
		// Frivolous-report deterrent: the reporter pays, the content stays.
		if err := r.reputation.AdjustScore(report.ReporterID, -r.cfg.DismissPenalty, "report dismissed"); err != nil {
			return fmt.Errorf("resolution dismiss: penalize reporter %s: %w", report.ReporterID, err)
		}
		return nil
	}

	return ErrInvalidAction
}

func (r *ResolutionEngine) applyCommentAction(report *models.Report, in ResolutionInput) error {
	commentID := *report.CommentID

	switch in.Action {
	case models.ActionWarn:
		comment, err := r.content.GetComment(commentID)
		if err != nil {
			return fmt.Errorf("resolution warn: fetch comment %s: %w", commentID, err)
		}
		_, err = r.suspensions.Create(CreateSuspensionInput{
			UserID:      comment.AuthorID,
			Type:        models.SuspensionWarning,
			Reason:      in.Reason,
			ModeratorID: &in.ModeratorID,
		})
		if err != nil {
			return fmt.Errorf("resolution warn: create warning: %w", err)
		}
		return nil

	case models.ActionFlag:
		if err := r.content.FlagComment(commentID); err != nil {
			return fmt.Errorf("resolution flag: comment %s: %w", commentID, err)
		}
		return nil

	case models.ActionHide:
		if err := r.content.HideComment(commentID); err != nil {
			return fmt.Errorf("resolution hide: comment %s: %w", commentID, err)
		}
		return nil

	case models.ActionDelete:
		comment, err := r.content.GetComment(commentID)
		if err != nil {
			return fmt.Errorf("resolution delete: fetch comment %s: %w", commentID, err)
		}
		if err := r.content.DeleteComment(commentID); err != nil {
			return fmt.Errorf("resolution delete: comment %s: %w", commentID, err)
		}
		if err := r.reputation.AdjustScore(comment.AuthorID, -r.cfg.CommentDeletePenalty, "comment deleted"); err != nil {
			return fmt.Errorf("resolution delete: penalize author %s: %w", comment.AuthorID, err)
		}
		return nil

	case models.ActionDismiss:
		if err := r.reputation.AdjustScore(report.ReporterID, -r.cfg.DismissPenalty, "report dismissed"); err != nil {
			return fmt.Errorf("resolution dismiss: penalize reporter %s: %w", report.ReporterID, err)
		}
		return nil
	}

	return ErrInvalidAction
}
