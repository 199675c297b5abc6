// Package events carries cross-process change notifications over
// PostgreSQL NOTIFY. The quarantine manager uses it to invalidate cached
// protocol state on every replica the moment a protocol toggles.
package events

import (
	"encoding/json"
	"fmt"
	"time"
)

// ProtocolStatusChannel is the NOTIFY channel for protocol activations and
// deactivations.
const ProtocolStatusChannel = "protocol_status"

// ProtocolChange is the payload broadcast when a user's protocol state
// flips.
type ProtocolChange struct {
	UserID    int64     `json:"user_id"`
	Active    bool      `json:"active"`
	Reason    string    `json:"reason,omitempty"`
	ChangedAt time.Time `json:"changed_at"`
}

// ParseProtocolChange decodes a NOTIFY payload.
func ParseProtocolChange(payload []byte) (ProtocolChange, error) {
	var change ProtocolChange
	if err := json.Unmarshal(payload, &change); err != nil {
		return ProtocolChange{}, fmt.Errorf("invalid protocol change payload: %w", err)
	}
	return change, nil
}
