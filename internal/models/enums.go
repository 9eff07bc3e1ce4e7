package models

// ReportCategory classifies what a reporter is flagging content for.
type ReportCategory string

const (
	CategoryHarassment    ReportCategory = "harassment"
	CategoryHateSpeech    ReportCategory = "hate_speech"
	CategoryViolence      ReportCategory = "violence"
	CategorySexualContent ReportCategory = "sexual_content"
	CategorySpam          ReportCategory = "spam"
	CategoryScam          ReportCategory = "scam"
	CategoryCopyright     ReportCategory = "copyright"
	CategoryPersonalInfo  ReportCategory = "personal_info"
	CategoryMinorSafety   ReportCategory = "minor_safety"
	CategoryOther         ReportCategory = "other"
)

func (c ReportCategory) Valid() bool {
	switch c {
	case CategoryHarassment, CategoryHateSpeech, CategoryViolence,
		CategorySexualContent, CategorySpam, CategoryScam,
		CategoryCopyright, CategoryPersonalInfo, CategoryMinorSafety,
		CategoryOther:
		return true
	}
	return false
}

// ReportPriority ranks how urgently a report needs review.
type ReportPriority string

const (
	PriorityLow      ReportPriority = "low"
	PriorityMedium   ReportPriority = "medium"
	PriorityHigh     ReportPriority = "high"
	PriorityCritical ReportPriority = "critical"
)

func (p ReportPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Rank returns the numeric severity of the priority, lowest first.
func (p ReportPriority) Rank() int {
	switch p {
	case PriorityLow:
		return 0
	case PriorityMedium:
		return 1
	case PriorityHigh:
		return 2
	case PriorityCritical:
		return 3
	}
	return -1
}

// Bump returns the priority one level above p, capped at critical.
func (p ReportPriority) Bump() ReportPriority {
	switch p {
	case PriorityLow:
		return PriorityMedium
	case PriorityMedium:
		return PriorityHigh
	case PriorityHigh, PriorityCritical:
		return PriorityCritical
	}
	return p
}

// ReportStatus tracks a report through its lifecycle.
// A report only moves forward: pending -> under_review -> {resolved, dismissed, escalated},
// except that resolution is allowed from pending, under_review or escalated.
type ReportStatus string

const (
	StatusPending     ReportStatus = "pending"
	StatusUnderReview ReportStatus = "under_review"
	StatusResolved    ReportStatus = "resolved"
	StatusDismissed   ReportStatus = "dismissed"
	StatusEscalated   ReportStatus = "escalated"
)

// ResolutionAction is the moderator decision applied when closing a report.
type ResolutionAction string

const (
	ActionWarn    ResolutionAction = "warn"
	ActionFlag    ResolutionAction = "flag"
	ActionReject  ResolutionAction = "reject"
	ActionBan     ResolutionAction = "ban"
	ActionDismiss ResolutionAction = "dismiss"
	ActionHide    ResolutionAction = "hide"
	ActionDelete  ResolutionAction = "delete"
)

// ValidForWhisper reports whether the action applies to a whisper report.
func (a ResolutionAction) ValidForWhisper() bool {
	switch a {
	case ActionWarn, ActionFlag, ActionReject, ActionBan, ActionDismiss:
		return true
	}
	return false
}

// ValidForComment reports whether the action applies to a comment report.
// Comments use hide/delete instead of the whisper-only reject/ban.
func (a ResolutionAction) ValidForComment() bool {
	switch a {
	case ActionWarn, ActionFlag, ActionDismiss, ActionHide, ActionDelete:
		return true
	}
	return false
}

// EscalationAction is the advisory outcome of threshold evaluation.
// The escalation engine reports what should happen; applying it is the
// resolution engine's job.
type EscalationAction string

const (
	EscalationFlaggedForReview EscalationAction = "flagged_for_review"
	EscalationAutoDelete       EscalationAction = "auto_delete"
	EscalationDeleteAndBan     EscalationAction = "delete_and_ban"
)

// SuspensionType distinguishes the three suspension variants.
type SuspensionType string

const (
	SuspensionWarning   SuspensionType = "warning"
	SuspensionTemporary SuspensionType = "temporary"
	SuspensionPermanent SuspensionType = "permanent"
)

func (t SuspensionType) Valid() bool {
	switch t {
	case SuspensionWarning, SuspensionTemporary, SuspensionPermanent:
		return true
	}
	return false
}

// SuspensionReviewAction is a moderator-initiated change to an active suspension.
type SuspensionReviewAction string

const (
	ReviewExtend        SuspensionReviewAction = "extend"
	ReviewReduce        SuspensionReviewAction = "reduce"
	ReviewRemove        SuspensionReviewAction = "remove"
	ReviewMakePermanent SuspensionReviewAction = "make_permanent"
)

func (a SuspensionReviewAction) Valid() bool {
	switch a {
	case ReviewExtend, ReviewReduce, ReviewRemove, ReviewMakePermanent:
		return true
	}
	return false
}

// ReputationLevel is the banded trust level derived from a user's score.
type ReputationLevel string

const (
	ReputationBanned    ReputationLevel = "banned"
	ReputationAtRisk    ReputationLevel = "at_risk"
	ReputationStandard  ReputationLevel = "standard"
	ReputationTrusted   ReputationLevel = "trusted"
	ReputationExemplary ReputationLevel = "exemplary"
)

// LevelForScore maps a reputation score onto its level band.
func LevelForScore(score int) ReputationLevel {
	switch {
	case score <= 0:
		return ReputationBanned
	case score < 50:
		return ReputationAtRisk
	case score < 200:
		return ReputationStandard
	case score < 500:
		return ReputationTrusted
	default:
		return ReputationExemplary
	}
}
