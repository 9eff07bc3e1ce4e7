package dto

import "github.com/google/uuid"

type SubmitReportRequest struct {
	ContentID uuid.UUID `json:"content_id"`
	Category  string    `json:"category"`
	Reason    string    `json:"reason"`
	Evidence  []string  `json:"evidence,omitempty"`
}

type SubmitCommentReportRequest struct {
	ContentID uuid.UUID `json:"content_id"`
	CommentID uuid.UUID `json:"comment_id"`
	Category  string    `json:"category"`
	Reason    string    `json:"reason"`
	Evidence  []string  `json:"evidence,omitempty"`
}

type ResolveReportRequest struct {
	Action string `json:"action"`
	Reason string `json:"reason"`
	Notes  string `json:"notes,omitempty"`
}

type CreateSuspensionRequest struct {
	UserID        uuid.UUID `json:"user_id"`
	Type          string    `json:"type"`
	Reason        string    `json:"reason"`
	DurationHours int       `json:"duration_hours,omitempty"`
	Appealable    bool      `json:"appealable"`
}

type ReviewSuspensionRequest struct {
	Action        string `json:"action"`
	DurationHours int    `json:"duration_hours,omitempty"`
}

type AutomaticSuspensionRequest struct {
	UserID         uuid.UUID `json:"user_id"`
	ViolationCount int       `json:"violation_count"`
	Reason         string    `json:"reason"`
}

type BlockUserRequest struct {
	BlockedID uuid.UUID `json:"blocked_id"`
}

type SetReputationRequest struct {
	Score int `json:"score"`
}
