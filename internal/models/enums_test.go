package models_test

import (
	"testing"
	"time"

	"github.com/resonate-app/resonate-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestReportCategory_Valid(t *testing.T) {
	valid := []models.ReportCategory{
		models.CategoryHarassment, models.CategoryHateSpeech, models.CategoryViolence,
		models.CategorySexualContent, models.CategorySpam, models.CategoryScam,
		models.CategoryCopyright, models.CategoryPersonalInfo, models.CategoryMinorSafety,
		models.CategoryOther,
	}
	for _, c := range valid {
		assert.True(t, c.Valid(), "category %s", c)
	}
	assert.False(t, models.ReportCategory("gossip").Valid())
	assert.False(t, models.ReportCategory("").Valid())
}

func TestResolutionAction_Scopes(t *testing.T) {
	assert.True(t, models.ActionReject.ValidForWhisper())
	assert.True(t, models.ActionBan.ValidForWhisper())
	assert.False(t, models.ActionHide.ValidForWhisper())
	assert.False(t, models.ActionDelete.ValidForWhisper())

	assert.True(t, models.ActionHide.ValidForComment())
	assert.True(t, models.ActionDelete.ValidForComment())
	assert.False(t, models.ActionReject.ValidForComment())
	assert.False(t, models.ActionBan.ValidForComment())

	// Shared actions are valid on both sides.
	for _, a := range []models.ResolutionAction{models.ActionWarn, models.ActionFlag, models.ActionDismiss} {
		assert.True(t, a.ValidForWhisper(), "action %s", a)
		assert.True(t, a.ValidForComment(), "action %s", a)
	}
}

func TestLevelForScore_Bands(t *testing.T) {
	assert.Equal(t, models.ReputationBanned, models.LevelForScore(-50))
	assert.Equal(t, models.ReputationBanned, models.LevelForScore(0))
	assert.Equal(t, models.ReputationAtRisk, models.LevelForScore(1))
	assert.Equal(t, models.ReputationAtRisk, models.LevelForScore(49))
	assert.Equal(t, models.ReputationStandard, models.LevelForScore(50))
	assert.Equal(t, models.ReputationStandard, models.LevelForScore(199))
	assert.Equal(t, models.ReputationTrusted, models.LevelForScore(200))
	assert.Equal(t, models.ReputationTrusted, models.LevelForScore(499))
	assert.Equal(t, models.ReputationExemplary, models.LevelForScore(500))
}

func TestSuspension_InEffect(t *testing.T) {
	now := time.Now().UTC()

	active := models.Suspension{IsActive: true, EndDate: now.Add(time.Hour)}
	assert.True(t, active.InEffect(now))
	assert.False(t, active.Expired(now))

	expired := models.Suspension{IsActive: true, EndDate: now.Add(-time.Hour)}
	assert.False(t, expired.InEffect(now))
	assert.True(t, expired.Expired(now))

	removed := models.Suspension{IsActive: false, EndDate: now.Add(time.Hour)}
	assert.False(t, removed.InEffect(now))
}

func TestReport_Resolved(t *testing.T) {
	var r models.Report
	assert.False(t, r.Resolved())

	r.Resolution.Action = models.ActionDismiss
	assert.True(t, r.Resolved())
}

func TestUser_ReputationSnapshot(t *testing.T) {
	u := models.User{ReputationScore: 300}
	rep := u.ReputationSnapshot()
	assert.Equal(t, 300, rep.Score)
	assert.Equal(t, models.ReputationTrusted, rep.Level)
}
