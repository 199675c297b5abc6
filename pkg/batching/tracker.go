// Package batching implements adaptive-window message coalescing: rapid
// consecutive messages from one user are buffered and flushed as a single
// pipeline job. Buffers live in the durable store so nothing is lost when
// the process dies mid-window.
package batching

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/halfmoonlabs/chatloop/pkg/models"
	"github.com/halfmoonlabs/chatloop/pkg/transport"
)

const bufferKeyPrefix = "act:"

// Enqueuer is the downstream sink for flushed jobs, satisfied by the WAL.
type Enqueuer interface {
	Enqueue(ctx context.Context, job *models.PipelineJob) error
}

// Gate decides whether a transport message may enter the window or must be
// diverted to quarantine storage. Satisfied by the quarantine manager.
type Gate interface {
	IsQuarantined(ctx context.Context, userID int64) (bool, error)
	Divert(ctx context.Context, msg models.InboundMessage) error
}

// Options tunes the batching window.
type Options struct {
	// Enabled false makes every message flush immediately as its own job.
	Enabled bool
	// WindowInitial is the quiet period after the latest buffered message.
	WindowInitial time.Duration
	// WindowTypingExt replaces WindowInitial while the user is typing.
	WindowTypingExt time.Duration
	// MaxBatch flushes the buffer as soon as it holds this many messages.
	MaxBatch int
	// MaxWait bounds how long the first buffered message may wait.
	MaxWait time.Duration
}

// Tracker buffers inbound messages per user and flushes them to the WAL
// when the window closes.
type Tracker struct {
	rdb  *redis.Client
	sink Enqueuer
	gate Gate
	opts Options
	now  func() time.Time

	mu     sync.Mutex
	timers map[int64]*time.Timer
	typing map[int64]bool
}

// New creates a tracker flushing into sink.
func New(rdb *redis.Client, sink Enqueuer, opts Options) *Tracker {
	return &Tracker{
		rdb:    rdb,
		sink:   sink,
		opts:   opts,
		now:    time.Now,
		timers: make(map[int64]*time.Timer),
		typing: make(map[int64]bool),
	}
}

// SetGate installs the quarantine check applied to transport intake.
// Must be called before Run.
func (t *Tracker) SetGate(g Gate) {
	t.gate = g
}

// flushScript atomically drains a user buffer.
var flushScript = redis.NewScript(`
local items = redis.call('LRANGE', KEYS[1], 0, -1)
redis.call('DEL', KEYS[1])
return items
`)

// Run consumes inbound messages and typing events from the transport until
// ctx is done.
func (t *Tracker) Run(ctx context.Context, tr transport.Transport) error {
	updates, err := tr.Updates(ctx)
	if err != nil {
		return fmt.Errorf("failed to subscribe to updates: %w", err)
	}
	typingEvents, err := tr.TypingEvents(ctx)
	if err != nil {
		return fmt.Errorf("failed to subscribe to typing events: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-updates:
			if !ok {
				return nil
			}
			if t.diverted(ctx, msg) {
				continue
			}
			if err := t.Observe(ctx, msg); err != nil {
				slog.Error("Failed to buffer inbound message",
					"user_id", msg.UserID, "message_id", msg.MessageID, "error", err)
			}
		case ev, ok := <-typingEvents:
			if !ok {
				return nil
			}
			t.ObserveTyping(ctx, ev)
		}
	}
}

// diverted routes a quarantined user's message through the gate instead of
// the window. Only transport intake is gated; explicit re-injection
// (releases, recovery) goes straight to Observe so it cannot bounce back
// into quarantine.
func (t *Tracker) diverted(ctx context.Context, msg models.InboundMessage) bool {
	if t.gate == nil {
		return false
	}
	active, err := t.gate.IsQuarantined(ctx, msg.UserID)
	if err != nil {
		slog.Error("Protocol check failed, admitting message",
			"user_id", msg.UserID, "message_id", msg.MessageID, "error", err)
		return false
	}
	if !active {
		return false
	}
	if err := t.gate.Divert(ctx, msg); err != nil {
		// The message is not buffered either way; the cursor has not
		// advanced, so the next history scan re-finds it.
		slog.Error("Failed to divert quarantined message",
			"user_id", msg.UserID, "message_id", msg.MessageID, "error", err)
	}
	return true
}

// Observe appends one inbound message to the user's window, flushing when
// the batch or wait bounds are hit. Also the entry point for synthetic
// messages re-injected by recovery.
func (t *Tracker) Observe(ctx context.Context, msg models.InboundMessage) error {
	if msg.ReceivedAt.IsZero() {
		msg.ReceivedAt = t.now()
	}

	if !t.opts.Enabled {
		return t.enqueue(ctx, []models.InboundMessage{msg})
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	key := bufferKey(msg.UserID)
	length, err := t.rdb.RPush(ctx, key, payload).Result()
	if err != nil {
		return fmt.Errorf("failed to buffer message for user %d: %w", msg.UserID, err)
	}

	first, err := t.firstBuffered(ctx, msg.UserID)
	if err != nil {
		return err
	}

	now := t.now()
	if int(length) >= t.opts.MaxBatch || now.Sub(first.ReceivedAt) >= t.opts.MaxWait {
		return t.Flush(ctx, msg.UserID)
	}

	t.schedule(ctx, msg.UserID, t.deadline(now, first.ReceivedAt, t.isTyping(msg.UserID)))
	return nil
}

// ObserveTyping extends an open window while the user keeps typing.
func (t *Tracker) ObserveTyping(ctx context.Context, ev transport.TypingEvent) {
	t.mu.Lock()
	t.typing[ev.UserID] = ev.Typing
	_, open := t.timers[ev.UserID]
	t.mu.Unlock()

	if !ev.Typing || !open {
		return
	}

	first, err := t.firstBuffered(ctx, ev.UserID)
	if err != nil || first == nil {
		return
	}
	t.schedule(ctx, ev.UserID, t.deadline(t.now(), first.ReceivedAt, true))
}

// Flush drains the user's buffer into one coalesced pipeline job.
func (t *Tracker) Flush(ctx context.Context, userID int64) error {
	t.mu.Lock()
	if timer, ok := t.timers[userID]; ok {
		timer.Stop()
		delete(t.timers, userID)
	}
	t.mu.Unlock()

	res, err := flushScript.Run(ctx, t.rdb, []string{bufferKey(userID)}).Result()
	if err != nil {
		return fmt.Errorf("failed to drain buffer for user %d: %w", userID, err)
	}

	items, _ := res.([]interface{})
	if len(items) == 0 {
		return nil
	}

	messages := make([]models.InboundMessage, 0, len(items))
	for _, item := range items {
		raw, _ := item.(string)
		var msg models.InboundMessage
		if err := json.Unmarshal([]byte(raw), &msg); err != nil {
			slog.Error("Dropping corrupt buffered message", "user_id", userID, "error", err)
			continue
		}
		messages = append(messages, msg)
	}
	if len(messages) == 0 {
		return nil
	}
	return t.enqueue(ctx, messages)
}

// Drain empties the user's buffer without enqueueing a job, returning the
// buffered messages. Used when the silence protocol activates mid-window.
func (t *Tracker) Drain(ctx context.Context, userID int64) ([]models.InboundMessage, error) {
	t.mu.Lock()
	if timer, ok := t.timers[userID]; ok {
		timer.Stop()
		delete(t.timers, userID)
	}
	t.mu.Unlock()

	res, err := flushScript.Run(ctx, t.rdb, []string{bufferKey(userID)}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to drain buffer for user %d: %w", userID, err)
	}

	items, _ := res.([]interface{})
	messages := make([]models.InboundMessage, 0, len(items))
	for _, item := range items {
		raw, _ := item.(string)
		var msg models.InboundMessage
		if err := json.Unmarshal([]byte(raw), &msg); err != nil {
			slog.Error("Dropping corrupt buffered message", "user_id", userID, "error", err)
			continue
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (t *Tracker) enqueue(ctx context.Context, messages []models.InboundMessage) error {
	job := &models.PipelineJob{
		JobID:         uuid.NewString(),
		UserID:        messages[0].UserID,
		ChatID:        messages[0].ChatID,
		Messages:      messages,
		CoalescedText: models.Coalesce(messages),
		CreatedAt:     t.now(),
	}
	if err := t.sink.Enqueue(ctx, job); err != nil {
		// Put the batch back so the next window retries it.
		for i := len(messages) - 1; i >= 0; i-- {
			if payload, merr := json.Marshal(messages[i]); merr == nil {
				_ = t.rdb.LPush(ctx, bufferKey(job.UserID), payload).Err()
			}
		}
		return fmt.Errorf("failed to enqueue job for user %d: %w", job.UserID, err)
	}
	slog.Debug("Flushed message window",
		"user_id", job.UserID, "job_id", job.JobID, "messages", len(messages))
	return nil
}

// Recover walks persisted buffers after a restart: overdue windows flush
// immediately, the rest get a fresh timer.
func (t *Tracker) Recover(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := t.rdb.Scan(ctx, cursor, bufferKeyPrefix+"*", 100).Result()
		if err != nil {
			return fmt.Errorf("failed to scan activity buffers: %w", err)
		}

		for _, key := range keys {
			userID, err := userIDFromKey(key)
			if err != nil {
				continue
			}
			first, err := t.firstBuffered(ctx, userID)
			if err != nil || first == nil {
				continue
			}
			if t.now().Sub(first.ReceivedAt) >= t.opts.MaxWait {
				if err := t.Flush(ctx, userID); err != nil {
					slog.Error("Failed to flush stale buffer", "user_id", userID, "error", err)
				}
			} else {
				t.schedule(ctx, userID, t.deadline(t.now(), first.ReceivedAt, false))
			}
		}

		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// deadline computes the next wake, capped by the first message's MaxWait.
func (t *Tracker) deadline(now, firstReceived time.Time, typing bool) time.Duration {
	window := t.opts.WindowInitial
	if typing {
		window = t.opts.WindowTypingExt
	}
	deadline := now.Add(window)
	if cap := firstReceived.Add(t.opts.MaxWait); deadline.After(cap) {
		deadline = cap
	}
	d := deadline.Sub(now)
	if d < 0 {
		d = 0
	}
	return d
}

// schedule arms (or re-arms) the single per-user timer.
func (t *Tracker) schedule(ctx context.Context, userID int64, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if timer, ok := t.timers[userID]; ok {
		timer.Stop()
	}
	t.timers[userID] = time.AfterFunc(d, func() {
		if err := t.Flush(ctx, userID); err != nil {
			slog.Error("Window flush failed", "user_id", userID, "error", err)
		}
	})
}

func (t *Tracker) isTyping(userID int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.typing[userID]
}

func (t *Tracker) firstBuffered(ctx context.Context, userID int64) (*models.InboundMessage, error) {
	raw, err := t.rdb.LIndex(ctx, bufferKey(userID), 0).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read buffer head for user %d: %w", userID, err)
	}
	var msg models.InboundMessage
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		return nil, fmt.Errorf("corrupt buffer head for user %d: %w", userID, err)
	}
	return &msg, nil
}

// Stop cancels all pending timers. Buffers stay in the store for Recover.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for userID, timer := range t.timers {
		timer.Stop()
		delete(t.timers, userID)
	}
}

func bufferKey(userID int64) string {
	return fmt.Sprintf("%s%d", bufferKeyPrefix, userID)
}

func userIDFromKey(key string) (int64, error) {
	return strconv.ParseInt(strings.TrimPrefix(key, bufferKeyPrefix), 10, 64)
}
