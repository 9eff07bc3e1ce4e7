package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a platform account. ReputationScore is the single source of truth
// for trust decisions; the level is derived from it via LevelForScore.
type User struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email           string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password        string         `gorm:"not null" json:"-"`
	Role            string         `gorm:"size:20;default:'user'" json:"role"`
	ReputationScore int            `gorm:"not null;default:100" json:"reputation_score"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// Reputation is the snapshot the moderation core consumes.
type Reputation struct {
	Score int             `json:"score"`
	Level ReputationLevel `json:"level"`
}

// ReputationSnapshot derives the user's current reputation.
func (u *User) ReputationSnapshot() Reputation {
	return Reputation{Score: u.ReputationScore, Level: LevelForScore(u.ReputationScore)}
}
