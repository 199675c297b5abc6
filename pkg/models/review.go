package models

import (
	"time"
)

// Review statuses. Transitions: pending → reviewing → {approved, rejected,
// cancelled}; cancel from reviewing returns the item to pending.
const (
	ReviewStatusPending   = "pending"
	ReviewStatusReviewing = "reviewing"
	ReviewStatusApproved  = "approved"
	ReviewStatusRejected  = "rejected"
	ReviewStatusCancelled = "cancelled"
)

// Customer lifecycle statuses tracked per user.
const (
	CustomerStatusProspect      = "PROSPECT"
	CustomerStatusLeadQualified = "LEAD_QUALIFIED"
	CustomerStatusCustomer      = "CUSTOMER"
	CustomerStatusChurned       = "CHURNED"
	CustomerStatusLeadExhausted = "LEAD_EXHAUSTED"
)

// ValidCustomerStatus reports whether s is a known customer status.
func ValidCustomerStatus(s string) bool {
	switch s {
	case CustomerStatusProspect, CustomerStatusLeadQualified,
		CustomerStatusCustomer, CustomerStatusChurned, CustomerStatusLeadExhausted:
		return true
	}
	return false
}

// LLMCallRecord captures one provider call for cost accounting.
type LLMCallRecord struct {
	Provider           string  `json:"provider"`
	Model              string  `json:"model"`
	PromptTokens       int     `json:"prompt_tokens"`
	CompletionTokens   int     `json:"completion_tokens"`
	CachedPromptTokens int     `json:"cached_prompt_tokens"`
	CostUSD            float64 `json:"cost_usd"`
	LatencyMS          int64   `json:"latency_ms"`
}

// SafetyReport is the deterministic analyzer output attached to an item.
type SafetyReport struct {
	RiskScore      float64  `json:"risk_score"`
	Flags          []string `json:"flags"`
	Recommendation string   `json:"recommendation"` // approve, review, flag
}

// Safety recommendations.
const (
	SafetyApprove = "approve"
	SafetyReview  = "review"
	SafetyFlag    = "flag"
)

// CTAMetadata is reviewer-authored call-to-action metadata, stored verbatim.
type CTAMetadata struct {
	Inserted      bool     `json:"inserted"`
	Tier          string   `json:"tier,omitempty"` // soft, medium, direct
	Tags          []string `json:"tags,omitempty"`
	AtBubbleIndex *int     `json:"at_bubble_index,omitempty"`
}

// CTA tiers.
const (
	CTATierSoft   = "soft"
	CTATierMedium = "medium"
	CTATierDirect = "direct"
)

// ValidCTATier reports whether t is a known CTA tier.
func ValidCTATier(t string) bool {
	return t == CTATierSoft || t == CTATierMedium || t == CTATierDirect
}

// ApprovedEntry is the approved sub-queue payload handed to the delivery
// worker. The JSON shape is contractually stable.
type ApprovedEntry struct {
	ReviewID      string    `json:"review_id"`
	UserID        int64     `json:"user_id"`
	ChatID        int64     `json:"chat_id"`
	Bubbles       []string  `json:"bubbles"`
	InboundText   string    `json:"inbound_text"`
	LastMessageID int64     `json:"last_message_id"`
	ApprovedAt    time.Time `json:"approved_at"`
}

// Processing-error markers persisted on degraded review items.
const (
	ProcessingErrorLLMUnavailable = "llm_unavailable"
	ProcessingErrorShutdown       = "shutdown"
)
