// Package quarantine enforces the per-user silence protocol: while active,
// inbound messages are diverted to durable quarantine storage instead of
// the pipeline. The protocol table is authoritative; this package keeps a
// short-lived cache refreshed by NOTIFY events.
package quarantine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/halfmoonlabs/chatloop/pkg/batching"
	"github.com/halfmoonlabs/chatloop/pkg/events"
	"github.com/halfmoonlabs/chatloop/pkg/models"
	"github.com/halfmoonlabs/chatloop/pkg/services"
)

const cacheTTL = 5 * time.Minute

type cacheEntry struct {
	active    bool
	refreshed time.Time
}

// Manager is the runtime face of the silence protocol: quarantine checks on
// the hot path, activation with buffer takeover, releases back into the
// batching window, and the expiry sweep.
type Manager struct {
	svc     *services.QuarantineService
	tracker *batching.Tracker
	now     func() time.Time

	mu    sync.RWMutex
	cache map[int64]cacheEntry
}

// NewManager creates a manager over the quarantine service. tracker is
// consulted on activation (to capture an open window) and on release (to
// re-inject the message).
func NewManager(svc *services.QuarantineService, tracker *batching.Tracker) *Manager {
	return &Manager{
		svc:     svc,
		tracker: tracker,
		now:     time.Now,
		cache:   make(map[int64]cacheEntry),
	}
}

// Warmup preloads the cache with every active protocol and subscribes to
// change notifications.
func (m *Manager) Warmup(ctx context.Context, listener *events.Listener) error {
	ids, err := m.svc.ActiveProtocols(ctx)
	if err != nil {
		return fmt.Errorf("failed to warm protocol cache: %w", err)
	}

	m.mu.Lock()
	now := m.now()
	for _, id := range ids {
		m.cache[id] = cacheEntry{active: true, refreshed: now}
	}
	m.mu.Unlock()

	if listener != nil {
		if err := listener.Subscribe(ctx, events.ProtocolStatusChannel, m.onProtocolChange); err != nil {
			return fmt.Errorf("failed to subscribe to protocol changes: %w", err)
		}
	}
	slog.Info("Protocol cache warmed", "active_protocols", len(ids))
	return nil
}

func (m *Manager) onProtocolChange(_ string, payload []byte) {
	change, err := events.ParseProtocolChange(payload)
	if err != nil {
		slog.Error("Dropping malformed protocol notification", "error", err)
		return
	}
	m.mu.Lock()
	m.cache[change.UserID] = cacheEntry{active: change.Active, refreshed: m.now()}
	m.mu.Unlock()
	slog.Debug("Protocol cache updated from notification",
		"user_id", change.UserID, "active", change.Active)
}

// IsQuarantined reports whether the user is under the protocol, serving
// from cache within TTL and falling back to the table.
func (m *Manager) IsQuarantined(ctx context.Context, userID int64) (bool, error) {
	m.mu.RLock()
	entry, ok := m.cache[userID]
	m.mu.RUnlock()
	if ok && m.now().Sub(entry.refreshed) < cacheTTL {
		return entry.active, nil
	}

	status, err := m.svc.GetProtocol(ctx, userID)
	if err != nil {
		if ok {
			// Stale cache beats failing open on a transient DB error.
			return entry.active, nil
		}
		return false, fmt.Errorf("failed to check protocol for user %d: %w", userID, err)
	}

	m.mu.Lock()
	m.cache[userID] = cacheEntry{active: status.Active, refreshed: m.now()}
	m.mu.Unlock()
	return status.Active, nil
}

// Activate turns the protocol on and moves any messages already buffered in
// the user's open batching window into quarantine.
func (m *Manager) Activate(ctx context.Context, userID int64, reason, performer string) error {
	if _, err := m.svc.SetProtocol(ctx, userID, true, reason, performer); err != nil {
		return err
	}
	m.mu.Lock()
	m.cache[userID] = cacheEntry{active: true, refreshed: m.now()}
	m.mu.Unlock()

	buffered, err := m.tracker.Drain(ctx, userID)
	if err != nil {
		return fmt.Errorf("protocol active but window takeover failed for user %d: %w", userID, err)
	}
	for _, msg := range buffered {
		if _, err := m.svc.Add(ctx, msg); err != nil {
			return fmt.Errorf("failed to quarantine buffered message %d: %w", msg.MessageID, err)
		}
	}
	if len(buffered) > 0 {
		slog.Info("Moved open window into quarantine", "user_id", userID, "messages", len(buffered))
	}
	return nil
}

// Deactivate turns the protocol off. Quarantined messages stay put until
// individually released or expired.
func (m *Manager) Deactivate(ctx context.Context, userID int64, reason, performer string) error {
	if _, err := m.svc.SetProtocol(ctx, userID, false, reason, performer); err != nil {
		return err
	}
	m.mu.Lock()
	m.cache[userID] = cacheEntry{active: false, refreshed: m.now()}
	m.mu.Unlock()
	return nil
}

// Divert stores one inbound message for a quarantined user.
func (m *Manager) Divert(ctx context.Context, msg models.InboundMessage) error {
	if _, err := m.svc.Add(ctx, msg); err != nil {
		return err
	}
	slog.Info("Message quarantined", "user_id", msg.UserID, "message_id", msg.MessageID)
	return nil
}

// HasHistory reports whether the user has ever been quarantined.
func (m *Manager) HasHistory(ctx context.Context, userID int64) (bool, error) {
	return m.svc.HasRecords(ctx, userID)
}

// Release re-injects one quarantined message into the batching window with
// its original receive time preserved.
func (m *Manager) Release(ctx context.Context, qID, performer string) error {
	row, err := m.svc.MarkReleased(ctx, qID, performer)
	if err != nil {
		return err
	}

	msg := models.InboundMessage{
		UserID:     row.UserID,
		ChatID:     row.ChatID,
		MessageID:  row.MessageID,
		Text:       row.Text,
		ReceivedAt: row.ReceivedAt,
	}
	if err := m.tracker.Observe(ctx, msg); err != nil {
		return fmt.Errorf("released %s but re-injection failed: %w", qID, err)
	}
	slog.Info("Quarantined message released", "q_id", qID, "user_id", row.UserID)
	return nil
}

// RunExpirySweep deletes expired quarantine entries every interval until
// ctx is done.
func (m *Manager) RunExpirySweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := m.svc.DeleteExpired(ctx)
			if err != nil {
				slog.Error("Quarantine expiry sweep failed", "error", err)
				continue
			}
			if deleted > 0 {
				slog.Info("Expired quarantine entries removed", "count", deleted)
			}
		}
	}
}
