package models

// CreateReviewItemRequest carries everything the supervisor persists when a
// pipeline run finishes (or degrades).
type CreateReviewItemRequest struct {
	ReviewID        string
	UserID          int64
	ChatID          int64
	InboundText     string
	LastMessageID   int64
	Draft           string
	RefinedBubbles  []string
	Safety          SafetyReport
	LLM1            *LLMCallRecord
	LLM2            *LLMCallRecord
	PriorityScore   float64
	ProcessingError string
	Recovered       bool
	RecoveryTier    RecoveryTier
}

// ApproveReviewRequest is the reviewer's approval body.
type ApproveReviewRequest struct {
	FinalBubbles   []string     `json:"final_bubbles"`
	EditTags       []string     `json:"edit_tags"`
	QualityScore   *int         `json:"quality_score,omitempty"`
	CTA            *CTAMetadata `json:"cta,omitempty"`
	CustomerStatus *string      `json:"customer_status,omitempty"`
	LTVDeltaUSD    *float64     `json:"ltv_delta_usd,omitempty"`
	ReviewerNotes  *string      `json:"reviewer_notes,omitempty"`
}

// RejectReviewRequest is the reviewer's rejection body.
type RejectReviewRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// UpdateUserStatusRequest updates a user's customer status and/or LTV.
type UpdateUserStatusRequest struct {
	CustomerStatus *string  `json:"customer_status,omitempty"`
	LTVDeltaUSD    *float64 `json:"ltv_delta_usd,omitempty"`
	Reason         *string  `json:"reason,omitempty"`
}

// QuarantineToggleRequest toggles the silence protocol for a user.
type QuarantineToggleRequest struct {
	Active bool    `json:"active"`
	Reason *string `json:"reason,omitempty"`
}
