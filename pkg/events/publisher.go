package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// Publisher broadcasts change notifications via pg_notify. Notifications
// are transient: the authoritative state lives in the protocol_status
// table, so a missed NOTIFY only delays cache refresh until TTL expiry.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a publisher over the shared database handle.
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// PublishProtocolChange broadcasts a protocol flip to all listeners.
func (p *Publisher) PublishProtocolChange(ctx context.Context, change ProtocolChange) error {
	payload, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("failed to marshal protocol change: %w", err)
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", ProtocolStatusChannel, string(payload)); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}
