package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/halfmoonlabs/chatloop/ent"
	"github.com/halfmoonlabs/chatloop/ent/protocolstatus"
	"github.com/halfmoonlabs/chatloop/ent/quarantinemessage"
	"github.com/halfmoonlabs/chatloop/pkg/events"
	"github.com/halfmoonlabs/chatloop/pkg/models"
)

// Protocol audit actions.
const (
	AuditActivated   = "activated"
	AuditDeactivated = "deactivated"
	AuditReleased    = "released"
	AuditExpired     = "expired"
)

// QuarantineService persists silence-protocol state and the quarantined
// messages themselves. The in-memory protocol cache lives in
// pkg/quarantine and invalidates off the NOTIFY this service publishes.
type QuarantineService struct {
	client    *ent.Client
	publisher *events.Publisher
	ttl       time.Duration
}

// NewQuarantineService creates a new QuarantineService. ttl is how long a
// quarantined message is retained before the expiry sweep removes it.
func NewQuarantineService(client *ent.Client, publisher *events.Publisher, ttl time.Duration) *QuarantineService {
	return &QuarantineService{client: client, publisher: publisher, ttl: ttl}
}

// SetProtocol flips the silence protocol for a user, writes the audit row
// in the same transaction, and broadcasts the change. Setting the current
// value again is a no-op that still returns the row.
func (s *QuarantineService) SetProtocol(httpCtx context.Context, userID int64, active bool, reason, performer string) (*ent.ProtocolStatus, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	current, err := tx.ProtocolStatus.Get(ctx, userID)
	if ent.IsNotFound(err) {
		current, err = tx.ProtocolStatus.Create().SetID(userID).Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load protocol status for user %d: %w", userID, err)
	}
	if current.Active == active {
		return current, nil
	}

	now := time.Now()
	update := tx.ProtocolStatus.UpdateOneID(userID).
		SetActive(active).
		SetReason(reason).
		SetPerformer(performer)
	if active {
		update = update.SetSince(now)
	} else {
		update = update.ClearSince()
	}
	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update protocol status for user %d: %w", userID, err)
	}

	action := AuditDeactivated
	if active {
		action = AuditActivated
	}
	err = tx.ProtocolAuditLog.Create().
		SetID(uuid.NewString()).
		SetUserID(userID).
		SetAction(action).
		SetReason(reason).
		SetPerformer(performer).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record protocol audit for user %d: %w", userID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit protocol change for user %d: %w", userID, err)
	}

	change := events.ProtocolChange{UserID: userID, Active: active, Reason: reason, ChangedAt: now}
	if err := s.publisher.PublishProtocolChange(ctx, change); err != nil {
		// Caches fall back to TTL expiry; the table is authoritative.
		slog.Warn("Failed to broadcast protocol change", "user_id", userID, "error", err)
	}
	return updated, nil
}

// GetProtocol returns the protocol row, defaulting to inactive for users
// never toggled.
func (s *QuarantineService) GetProtocol(ctx context.Context, userID int64) (*ent.ProtocolStatus, error) {
	row, err := s.client.ProtocolStatus.Get(ctx, userID)
	if ent.IsNotFound(err) {
		return &ent.ProtocolStatus{ID: userID, Active: false}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get protocol status for user %d: %w", userID, err)
	}
	return row, nil
}

// ActiveProtocols returns the ids of all users currently under the
// protocol, for cache warmup.
func (s *QuarantineService) ActiveProtocols(ctx context.Context) ([]int64, error) {
	ids, err := s.client.ProtocolStatus.Query().
		Where(protocolstatus.Active(true)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active protocols: %w", err)
	}
	return ids, nil
}

// Add stores one diverted message and returns its quarantine id.
func (s *QuarantineService) Add(httpCtx context.Context, msg models.InboundMessage) (*ent.QuarantineMessage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	row, err := s.client.QuarantineMessage.Create().
		SetID(uuid.NewString()).
		SetUserID(msg.UserID).
		SetChatID(msg.ChatID).
		SetMessageID(msg.MessageID).
		SetText(msg.Text).
		SetReceivedAt(msg.ReceivedAt).
		SetExpiresAt(msg.ReceivedAt.Add(s.ttl)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to quarantine message for user %d: %w", msg.UserID, err)
	}
	return row, nil
}

// List returns unreleased quarantined messages, oldest first. userID 0
// lists across all users.
func (s *QuarantineService) List(ctx context.Context, userID int64) ([]*ent.QuarantineMessage, error) {
	q := s.client.QuarantineMessage.Query().
		Where(quarantinemessage.ReleasedAtIsNil())
	if userID != 0 {
		q = q.Where(quarantinemessage.UserID(userID))
	}
	rows, err := q.
		Order(ent.Asc(quarantinemessage.FieldReceivedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quarantine for user %d: %w", userID, err)
	}
	return rows, nil
}

// HasRecords reports whether the user has ever had a message quarantined,
// released ones included. Feeds the priority score.
func (s *QuarantineService) HasRecords(ctx context.Context, userID int64) (bool, error) {
	exist, err := s.client.QuarantineMessage.Query().
		Where(quarantinemessage.UserID(userID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check quarantine history for user %d: %w", userID, err)
	}
	return exist, nil
}

// MarkReleased stamps a quarantined message as released and writes the
// audit row. Returns the message so the caller can re-inject it.
func (s *QuarantineService) MarkReleased(httpCtx context.Context, qID, performer string) (*ent.QuarantineMessage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.QuarantineMessage.Get(ctx, qID)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load quarantine message %s: %w", qID, err)
	}
	if row.ReleasedAt != nil {
		return nil, fmt.Errorf("%w: message %s already released", ErrIllegalTransition, qID)
	}

	released, err := tx.QuarantineMessage.UpdateOneID(qID).
		SetReleasedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to release quarantine message %s: %w", qID, err)
	}

	err = tx.ProtocolAuditLog.Create().
		SetID(uuid.NewString()).
		SetUserID(row.UserID).
		SetAction(AuditReleased).
		SetReason("quarantine release "+qID).
		SetPerformer(performer).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record release audit for %s: %w", qID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit release of %s: %w", qID, err)
	}
	return released, nil
}

// DeleteExpired removes unreleased messages past their expiry and writes
// one audit row per affected user. Returns the number deleted.
func (s *QuarantineService) DeleteExpired(httpCtx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	now := time.Now()
	expired, err := s.client.QuarantineMessage.Query().
		Where(
			quarantinemessage.ReleasedAtIsNil(),
			quarantinemessage.ExpiresAtLT(now),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query expired quarantine messages: %w", err)
	}
	if len(expired) == 0 {
		return 0, nil
	}

	perUser := make(map[int64]int)
	for _, row := range expired {
		perUser[row.UserID]++
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	deleted, err := tx.QuarantineMessage.Delete().
		Where(
			quarantinemessage.ReleasedAtIsNil(),
			quarantinemessage.ExpiresAtLT(now),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired quarantine messages: %w", err)
	}

	for userID, count := range perUser {
		err = tx.ProtocolAuditLog.Create().
			SetID(uuid.NewString()).
			SetUserID(userID).
			SetAction(AuditExpired).
			SetReason(fmt.Sprintf("%d messages expired", count)).
			SetPerformer("system").
			Exec(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to record expiry audit for user %d: %w", userID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit quarantine expiry: %w", err)
	}
	return deleted, nil
}
