package storage

import (
	"github.com/google/uuid"
	"github.com/resonate-app/resonate-backend/internal/models"
	"gorm.io/gorm"
)

// Content implements moderation.ContentService on the whispers and comments
// tables. Deletions are GORM soft deletes so report references stay valid.
type Content struct {
	db *gorm.DB
}

func NewContent(db *gorm.DB) *Content {
	return &Content{db: db}
}

func (c *Content) GetWhisper(id uuid.UUID) (*models.Whisper, error) {
	var whisper models.Whisper
	if err := c.db.First(&whisper, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &whisper, nil
}

func (c *Content) DeleteWhisper(id uuid.UUID) error {
	return c.db.Delete(&models.Whisper{}, "id = ?", id).Error
}

func (c *Content) FlagWhisper(id uuid.UUID) error {
	return c.db.Model(&models.Whisper{}).Where("id = ?", id).Update("flagged", true).Error
}

func (c *Content) GetComment(id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	if err := c.db.First(&comment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *Content) DeleteComment(id uuid.UUID) error {
	return c.db.Delete(&models.Comment{}, "id = ?", id).Error
}

func (c *Content) HideComment(id uuid.UUID) error {
	return c.db.Model(&models.Comment{}).Where("id = ?", id).Update("hidden", true).Error
}

func (c *Content) FlagComment(id uuid.UUID) error {
	return c.db.Model(&models.Comment{}).Where("id = ?", id).Update("flagged", true).Error
}
