// Package moderation is the trust-and-safety core: report intake and
// deduplication, threshold-based escalation, moderator resolution with
// content and reputation side effects, and the suspension lifecycle.
//
// The package owns decision logic only. Persistence, content records and
// reputation live behind the collaborator interfaces below; every service
// takes its collaborators as constructor arguments. The store provides no
// cross-record transactions, so each operation is written to tolerate
// partial completion (see the individual service docs).
package moderation

import (
	"time"

	"github.com/google/uuid"
	"github.com/resonate-app/resonate-backend/internal/models"
)

// ReportStore persists reports. Whisper reports and comment reports share
// one table; the ByComment/ByReporterAndComment accessors scope to rows
// with a comment reference.
type ReportStore interface {
	Save(report *models.Report) error
	GetByID(id uuid.UUID) (*models.Report, error)
	Update(report *models.Report) error
	Delete(id uuid.UUID) error

	// GetByContent returns all whisper-level reports for a whisper.
	GetByContent(contentID uuid.UUID) ([]models.Report, error)
	GetByComment(commentID uuid.UUID) ([]models.Report, error)
	GetByReporterAndContent(reporterID, contentID uuid.UUID) ([]models.Report, error)
	GetByReporterAndComment(reporterID, commentID uuid.UUID) ([]models.Report, error)
	GetByReporter(reporterID uuid.UUID) ([]models.Report, error)
	GetWithFilters(f ReportFilters) ([]models.Report, error)
	GetAll() ([]models.Report, error)
}

// ReportFilters narrows GetWithFilters. Zero values mean "no filter".
type ReportFilters struct {
	Status   models.ReportStatus
	Category models.ReportCategory
	Priority models.ReportPriority
	Limit    int
	Offset   int
}

// SuspensionStore persists suspensions. Suspensions are never deleted.
type SuspensionStore interface {
	Save(s *models.Suspension) error
	GetByID(id uuid.UUID) (*models.Suspension, error)
	Update(s *models.Suspension) error
	GetByUser(userID uuid.UUID) ([]models.Suspension, error)
	GetActiveByUser(userID uuid.UUID) ([]models.Suspension, error)
	GetActive() ([]models.Suspension, error)
	GetAll() ([]models.Suspension, error)
}

// ReputationService reads and adjusts per-user trust scores.
type ReputationService interface {
	Get(userID uuid.UUID) (models.Reputation, error)
	// AdjustScore applies a signed delta. Implementations clamp the score
	// at their floor and record the reason.
	AdjustScore(userID uuid.UUID, delta int, reason string) error
	// Update applies a partial patch to the reputation record.
	Update(userID uuid.UUID, patch ReputationPatch) error
}

// ReputationPatch is a partial update; nil fields are left untouched.
type ReputationPatch struct {
	Score *int
}

// ContentService fetches and acts on reported content.
type ContentService interface {
	GetWhisper(id uuid.UUID) (*models.Whisper, error)
	DeleteWhisper(id uuid.UUID) error
	FlagWhisper(id uuid.UUID) error

	GetComment(id uuid.UUID) (*models.Comment, error)
	DeleteComment(id uuid.UUID) error
	HideComment(id uuid.UUID) error
	FlagComment(id uuid.UUID) error
}

// SuspensionStatus answers "is this user currently suspended".
type SuspensionStatus struct {
	Suspended bool       `json:"suspended"`
	CanAppeal bool       `json:"can_appeal"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// StatusCache is an optional read-through cache for suspension status.
// Implementations must treat their own failures as misses.
type StatusCache interface {
	Get(userID uuid.UUID) (*SuspensionStatus, bool)
	Set(userID uuid.UUID, status *SuspensionStatus)
	Invalidate(userID uuid.UUID)
}
