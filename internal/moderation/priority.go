package moderation

import "github.com/resonate-app/resonate-backend/internal/models"

// basePriority ranks categories by inherent severity. Minor-safety reports
// always start critical so a single one is enough to escalate.
func basePriority(category models.ReportCategory) models.ReportPriority {
	switch category {
	case models.CategoryMinorSafety:
		return models.PriorityCritical
	case models.CategoryViolence, models.CategoryHateSpeech,
		models.CategorySexualContent, models.CategoryPersonalInfo:
		return models.PriorityHigh
	case models.CategoryHarassment, models.CategoryScam:
		return models.PriorityMedium
	case models.CategorySpam, models.CategoryCopyright, models.CategoryOther:
		return models.PriorityLow
	}
	return models.PriorityLow
}

// CalculatePriority maps a report category and the reporter's reputation onto
// an initial priority. Reports from trusted or exemplary reporters are bumped
// one level; the bump never exceeds critical.
func CalculatePriority(category models.ReportCategory, rep models.Reputation) models.ReportPriority {
	p := basePriority(category)
	switch rep.Level {
	case models.ReputationTrusted, models.ReputationExemplary:
		return p.Bump()
	}
	return p
}

// ReputationWeight is a statistics-only multiplier attached to each report.
// It never gates escalation arithmetic.
func ReputationWeight(rep models.Reputation) float64 {
	switch rep.Level {
	case models.ReputationAtRisk:
		return 0.5
	case models.ReputationTrusted:
		return 1.5
	case models.ReputationExemplary:
		return 2.0
	default:
		return 1.0
	}
}
