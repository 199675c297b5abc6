// Package models defines the shared domain types exchanged between the
// pipeline components: inbound messages, coalesced jobs, LLM call records,
// safety reports, and reviewer-facing metadata.
package models

import (
	"strings"
	"time"
)

// RecoveryTier classifies how old a recovered message is. Fresh messages
// are re-injected first; stale ones only when the user was recently active.
type RecoveryTier string

const (
	RecoveryTierNone RecoveryTier = ""
	RecoveryTier1    RecoveryTier = "TIER_1" // < 2h
	RecoveryTier2    RecoveryTier = "TIER_2" // 2-12h
	RecoveryTier3    RecoveryTier = "TIER_3" // > 12h
)

// InboundMessage is a single user message as received from the chat
// transport. Immutable once created.
type InboundMessage struct {
	UserID     int64     `json:"user_id"`
	ChatID     int64     `json:"chat_id"`
	MessageID  int64     `json:"message_id"` // transport-assigned, monotonic per chat
	Text       string    `json:"text"`
	ReceivedAt time.Time `json:"received_at"`

	// Set when the message was re-injected by the recovery agent.
	Recovered bool         `json:"recovered,omitempty"`
	Tier      RecoveryTier `json:"tier,omitempty"`
}

// PipelineJob is one unit of pipeline work: a batch of rapid consecutive
// messages from one user, coalesced into a single text.
type PipelineJob struct {
	JobID         string           `json:"job_id"`
	UserID        int64            `json:"user_id"`
	ChatID        int64            `json:"chat_id"`
	Messages      []InboundMessage `json:"messages"`
	CoalescedText string           `json:"coalesced_text"`
	CreatedAt     time.Time        `json:"created_at"`
}

// Coalesce joins messages into a single newline-separated text in receive
// order, the form the LLM stages consume.
func Coalesce(messages []InboundMessage) string {
	parts := make([]string, len(messages))
	for i, m := range messages {
		parts[i] = m.Text
	}
	return strings.Join(parts, "\n")
}

// LastMessageID returns the highest transport message id in the job,
// used to advance the per-user cursor after delivery.
func (j *PipelineJob) LastMessageID() int64 {
	var maxID int64
	for _, m := range j.Messages {
		if m.MessageID > maxID {
			maxID = m.MessageID
		}
	}
	return maxID
}

// Recovered reports whether any message in the job was re-injected by the
// recovery agent, and the strongest tier among them.
func (j *PipelineJob) RecoveredTier() RecoveryTier {
	tier := RecoveryTierNone
	for _, m := range j.Messages {
		if !m.Recovered {
			continue
		}
		switch m.Tier {
		case RecoveryTier1:
			return RecoveryTier1
		case RecoveryTier2:
			tier = RecoveryTier2
		case RecoveryTier3:
			if tier == RecoveryTierNone {
				tier = RecoveryTier3
			}
		}
	}
	return tier
}

// ConversationTurn is one turn of the per-user conversation log.
type ConversationTurn struct {
	Role      string    `json:"role"` // "user" or "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Bubbles   []string  `json:"bubbles,omitempty"`
}

// Turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
