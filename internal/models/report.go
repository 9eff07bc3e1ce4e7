package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Report is a single user's flag of a whisper (or one of its comments).
// Comment reports live in the same table with CommentID set.
type Report struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ContentID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"content_id"`
	CommentID        *uuid.UUID     `gorm:"type:uuid;index" json:"comment_id,omitempty"`
	ReporterID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"reporter_id"`
	ReporterScore    int            `gorm:"not null" json:"reporter_score"`
	Category         ReportCategory `gorm:"size:30;not null;index" json:"category"`
	Priority         ReportPriority `gorm:"size:10;not null;index" json:"priority"`
	Status           ReportStatus   `gorm:"size:20;not null;default:'pending';index" json:"status"`
	Reason           string         `gorm:"type:text;not null" json:"reason"`
	Evidence         datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"evidence"`
	ReputationWeight float64        `gorm:"not null;default:1" json:"reputation_weight"`
	Resolution       Resolution     `gorm:"embedded;embeddedPrefix:resolution_" json:"resolution,omitempty"`
	ReviewedAt       *time.Time     `json:"reviewed_at,omitempty"`
	ReviewedBy       *uuid.UUID     `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// Resolution records the terminal moderator decision on a report.
// The zero value (empty Action) means the report is unresolved.
type Resolution struct {
	Action      ResolutionAction `gorm:"size:10" json:"action,omitempty"`
	Reason      string           `gorm:"size:500" json:"reason,omitempty"`
	ModeratorID *uuid.UUID       `gorm:"type:uuid" json:"moderator_id,omitempty"`
	Notes       string           `gorm:"size:1000" json:"notes,omitempty"`
	Timestamp   *time.Time       `json:"timestamp,omitempty"`
}

// Resolved reports whether a resolution has been attached.
func (r *Report) Resolved() bool {
	return r.Resolution.Action != ""
}

// IsCommentReport reports whether the report targets a comment rather than
// the whisper itself.
func (r *Report) IsCommentReport() bool {
	return r.CommentID != nil
}

func (Report) TableName() string {
	return "reports"
}
