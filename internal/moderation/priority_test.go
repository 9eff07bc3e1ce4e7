package moderation_test

import (
	"testing"

	"github.com/resonate-app/resonate-backend/internal/moderation"
	"github.com/resonate-app/resonate-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCalculatePriority_BaseByCategory(t *testing.T) {
	standard := models.Reputation{Score: 100, Level: models.ReputationStandard}

	cases := []struct {
		category models.ReportCategory
		want     models.ReportPriority
	}{
		{models.CategoryMinorSafety, models.PriorityCritical},
		{models.CategoryViolence, models.PriorityHigh},
		{models.CategoryHateSpeech, models.PriorityHigh},
		{models.CategorySexualContent, models.PriorityHigh},
		{models.CategoryPersonalInfo, models.PriorityHigh},
		{models.CategoryHarassment, models.PriorityMedium},
		{models.CategoryScam, models.PriorityMedium},
		{models.CategorySpam, models.PriorityLow},
		{models.CategoryCopyright, models.PriorityLow},
		{models.CategoryOther, models.PriorityLow},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, moderation.CalculatePriority(tc.category, standard), "category %s", tc.category)
	}
}

func TestCalculatePriority_TrustedReporterBump(t *testing.T) {
	trusted := models.Reputation{Score: 300, Level: models.ReputationTrusted}
	exemplary := models.Reputation{Score: 700, Level: models.ReputationExemplary}
	atRisk := models.Reputation{Score: 30, Level: models.ReputationAtRisk}

	assert.Equal(t, models.PriorityMedium, moderation.CalculatePriority(models.CategorySpam, trusted))
	assert.Equal(t, models.PriorityHigh, moderation.CalculatePriority(models.CategoryHarassment, exemplary))

	// Bump never exceeds critical.
	assert.Equal(t, models.PriorityCritical, moderation.CalculatePriority(models.CategoryMinorSafety, trusted))

	// At-risk reporters get no bump in either direction.
	assert.Equal(t, models.PriorityLow, moderation.CalculatePriority(models.CategorySpam, atRisk))
}

func TestReputationWeight(t *testing.T) {
	assert.Equal(t, 0.5, moderation.ReputationWeight(models.Reputation{Level: models.ReputationAtRisk}))
	assert.Equal(t, 1.0, moderation.ReputationWeight(models.Reputation{Level: models.ReputationStandard}))
	assert.Equal(t, 1.5, moderation.ReputationWeight(models.Reputation{Level: models.ReputationTrusted}))
	assert.Equal(t, 2.0, moderation.ReputationWeight(models.Reputation{Level: models.ReputationExemplary}))
}

func TestPriorityBump(t *testing.T) {
	assert.Equal(t, models.PriorityMedium, models.PriorityLow.Bump())
	assert.Equal(t, models.PriorityHigh, models.PriorityMedium.Bump())
	assert.Equal(t, models.PriorityCritical, models.PriorityHigh.Bump())
	assert.Equal(t, models.PriorityCritical, models.PriorityCritical.Bump())
}
