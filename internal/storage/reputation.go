package storage

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/resonate-app/resonate-backend/internal/moderation"
	"github.com/resonate-app/resonate-backend/internal/models"
	"gorm.io/gorm"
)

// reputationFloor is the lowest a score can be driven by penalties. Banned
// status (score <= 0) is still reachable; the floor just stops unbounded
// negative drift.
const reputationFloor = -100

// Reputation implements moderation.ReputationService on the users table.
type Reputation struct {
	db *gorm.DB
}

func NewReputation(db *gorm.DB) *Reputation {
	return &Reputation{db: db}
}

func (r *Reputation) Get(userID uuid.UUID) (models.Reputation, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", userID).Error; err != nil {
		return models.Reputation{}, err
	}
	return user.ReputationSnapshot(), nil
}

func (r *Reputation) AdjustScore(userID uuid.UUID, delta int, reason string) error {
	var user models.User
	if err := r.db.First(&user, "id = ?", userID).Error; err != nil {
		return err
	}

	score := user.ReputationScore + delta
	if score < reputationFloor {
		score = reputationFloor
	}

	if err := r.db.Model(&user).Update("reputation_score", score).Error; err != nil {
		return err
	}

	slog.Info("reputation adjusted",
		"user_id", userID,
		"delta", delta,
		"score", score,
		"level", models.LevelForScore(score),
		"reason", reason)
	return nil
}

func (r *Reputation) Update(userID uuid.UUID, patch moderation.ReputationPatch) error {
	if patch.Score == nil {
		return nil
	}
	return r.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("reputation_score", *patch.Score).Error
}
