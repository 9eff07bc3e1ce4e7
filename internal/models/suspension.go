package models

import (
	"time"

	"github.com/google/uuid"
)

// Suspension is a restriction placed on a user. Records are never deleted,
// only deactivated; IsActive is the single mutable lifecycle flag and once
// false it never goes back to true.
//
// Variant rules enforced at creation:
//   - warning: no duration, never active, no reputation effect
//   - temporary: positive duration, EndDate = StartDate + Duration
//   - permanent: no input duration, far-future EndDate, never appealable
type Suspension struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Reason      string         `gorm:"size:500;not null" json:"reason"`
	Type        SuspensionType `gorm:"size:10;not null;index" json:"type"`
	Duration    *time.Duration `gorm:"type:bigint" json:"duration,omitempty"`
	StartDate   time.Time      `gorm:"not null" json:"start_date"`
	EndDate     time.Time      `gorm:"not null;index" json:"end_date"`
	IsActive    bool           `gorm:"not null;default:true;index" json:"is_active"`
	Appealable  bool           `gorm:"not null;default:false" json:"appealable"`
	ModeratorID *uuid.UUID     `gorm:"type:uuid" json:"moderator_id,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Expired reports whether the suspension's end date has passed.
func (s *Suspension) Expired(now time.Time) bool {
	return s.EndDate.Before(now)
}

// InEffect reports whether the suspension currently restricts the user:
// it must be active and its end date still in the future.
func (s *Suspension) InEffect(now time.Time) bool {
	return s.IsActive && s.EndDate.After(now)
}

func (Suspension) TableName() string {
	return "suspensions"
}
