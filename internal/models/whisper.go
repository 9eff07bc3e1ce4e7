package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Whisper is an anonymous post. Flagged marks it held for separate review
// without removal; deletion goes through the soft-delete column so resolved
// reports keep a dangling-safe reference.
type Whisper struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AuthorID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"author_id"`
	Body      string         `gorm:"type:text;not null" json:"body"`
	Flagged   bool           `gorm:"not null;default:false;index" json:"flagged"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Whisper) TableName() string {
	return "whispers"
}

// Comment is a reply on a whisper. Hidden comments stay in place but are
// excluded from feeds.
type Comment struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	WhisperID uuid.UUID      `gorm:"type:uuid;not null;index" json:"whisper_id"`
	AuthorID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"author_id"`
	Body      string         `gorm:"type:text;not null" json:"body"`
	Hidden    bool           `gorm:"not null;default:false" json:"hidden"`
	Flagged   bool           `gorm:"not null;default:false" json:"flagged"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Comment) TableName() string {
	return "comments"
}
