// Package delivery drains the approved sub-queue and posts bubbles to the
// chat with human cadence: a pause to "read" the inbound message, a typing
// indicator proportional to each bubble's length, and jittered gaps
// between bubbles.
package delivery

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/halfmoonlabs/chatloop/pkg/entitycache"
	"github.com/halfmoonlabs/chatloop/pkg/memory"
	"github.com/halfmoonlabs/chatloop/pkg/models"
	"github.com/halfmoonlabs/chatloop/pkg/queue"
	"github.com/halfmoonlabs/chatloop/pkg/services"
	"github.com/halfmoonlabs/chatloop/pkg/transport"
)

const popTimeout = 2 * time.Second

// userBusyBackoff is how long a worker waits after putting back an entry
// whose user already has a delivery in flight.
const userBusyBackoff = 150 * time.Millisecond

// backlogWarnDepth is the approved-queue length past which the pool starts
// warning that deliveries are falling behind approvals.
const backlogWarnDepth = 100

// Cadence bounds, per character and clamped.
const (
	readPerChar   = 60 * time.Millisecond
	readMin       = 500 * time.Millisecond
	readMax       = 4 * time.Second
	typePerChar   = 80 * time.Millisecond
	typeMin       = 800 * time.Millisecond
	typeMax       = 6 * time.Second
	gapMin        = 500 * time.Millisecond
	gapJitterSpan = time.Second
)

// Options tunes the delivery pool.
type Options struct {
	Workers int
}

// Pool sends approved replies. One entry is delivered by exactly one
// worker, and an in-flight guard keeps a user's deliveries serialized:
// several approvals for the same user can sit in the FIFO at once, and
// interleaving their cadences would shuffle the bubbles on the wire.
type Pool struct {
	queue    *queue.ReviewQueue
	tr       transport.Transport
	reviews  *services.ReviewService
	memory   *memory.Store
	cursors  *services.CursorService
	entities *entitycache.Cache
	workers  int

	// sleep is swapped out in tests to avoid real cadence waits.
	sleep func(ctx context.Context, d time.Duration) error
	rng   *rand.Rand
	rngMu sync.Mutex

	inflightMu sync.Mutex
	inflight   map[int64]struct{} // users with a delivery mid-cadence

	delivered    atomic.Int64
	lastActivity atomic.Int64 // unix nanos of the latest completed delivery

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewPool creates a delivery pool.
func NewPool(q *queue.ReviewQueue, tr transport.Transport, reviews *services.ReviewService,
	mem *memory.Store, cursors *services.CursorService, entities *entitycache.Cache, opts Options) *Pool {
	workers := opts.Workers
	if workers <= 0 {
		workers = 4
	}
	return &Pool{
		queue:    q,
		tr:       tr,
		reviews:  reviews,
		memory:   mem,
		cursors:  cursors,
		entities: entities,
		workers:  workers,
		inflight: make(map[int64]struct{}),
		sleep:    sleepCtx,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		stopCh:   make(chan struct{}),
	}
}

// Run launches the workers and blocks until ctx is done or Stop is called.
func (p *Pool) Run(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		workerID := fmt.Sprintf("delivery-%d", i)
		go func() {
			defer p.wg.Done()
			p.workerLoop(ctx, workerID)
		}()
	}
	p.wg.Wait()
}

// Stop signals the workers to exit after their current entry.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
}

// Health is a point-in-time snapshot of the pool.
type Health struct {
	Workers      int        `json:"workers"`
	Delivered    int64      `json:"delivered"`
	LastActivity *time.Time `json:"last_activity,omitempty"`
}

// Health reports how the pool is doing, for the health endpoint.
func (p *Pool) Health() Health {
	h := Health{Workers: p.workers, Delivered: p.delivered.Load()}
	if ns := p.lastActivity.Load(); ns > 0 {
		t := time.Unix(0, ns)
		h.LastActivity = &t
	}
	return h
}

func (p *Pool) workerLoop(ctx context.Context, workerID string) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		default:
		}

		entry, err := p.queue.PopApproved(ctx, popTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Error("Approved queue pop failed", "worker_id", workerID, "error", err)
			continue
		}
		if entry == nil {
			continue
		}

		if depth, derr := p.queue.ApprovedDepth(ctx); derr == nil && depth > backlogWarnDepth {
			slog.Warn("Approved queue backlog is high", "depth", depth)
		}

		if !p.acquireUser(entry.UserID) {
			// Another worker is mid-cadence for this user. The head
			// return keeps the user's FIFO order; the short wait stops
			// this worker from hammering the queue until it finishes.
			if rerr := p.queue.ReturnApproved(context.WithoutCancel(ctx), entry); rerr != nil {
				slog.Error("Failed to return entry to approved queue",
					"review_id", entry.ReviewID, "error", rerr)
			}
			_ = p.sleep(ctx, userBusyBackoff)
			continue
		}
		err = p.deliver(ctx, workerID, entry)
		p.releaseUser(entry.UserID)
		if err != nil {
			if transport.IsPermanent(err) {
				slog.Warn("Delivery failed permanently",
					"worker_id", workerID, "review_id", entry.ReviewID, "user_id", entry.UserID, "error", err)
				if merr := p.reviews.MarkDeliveryFailed(ctx, entry.ReviewID, err.Error()); merr != nil {
					slog.Error("Failed to record delivery failure", "review_id", entry.ReviewID, "error", merr)
				}
				continue
			}
			// Transient (or shutdown): the entry goes back to the head so
			// the next pop retries it without losing FIFO order.
			slog.Warn("Delivery interrupted, returning entry",
				"worker_id", workerID, "review_id", entry.ReviewID, "error", err)
			if rerr := p.queue.ReturnApproved(context.WithoutCancel(ctx), entry); rerr != nil {
				slog.Error("Failed to return entry to approved queue",
					"review_id", entry.ReviewID, "error", rerr)
			}
		}
	}
}

// deliver sends one approved entry. Side effects (memory, cursor, the
// delivered mark) happen only after every bubble went out.
func (p *Pool) deliver(ctx context.Context, workerID string, entry *models.ApprovedEntry) error {
	resolved := true
	if _, err := p.entities.Resolve(ctx, entry.UserID); err != nil {
		if transport.IsPermanent(err) {
			return err
		}
		// Sending may still work on platforms that key by chat id alone,
		// but without the handle the typing indicator is skipped.
		resolved = false
		slog.Debug("Entity resolution failed, sending by chat id",
			"user_id", entry.UserID, "error", err)
	}

	if err := p.sleep(ctx, clampDuration(
		time.Duration(len(entry.InboundText))*readPerChar, readMin, readMax)); err != nil {
		return err
	}

	for i, bubble := range entry.Bubbles {
		if resolved {
			if err := p.tr.SetTyping(ctx, entry.ChatID, true); err != nil {
				slog.Debug("Typing indicator failed", "chat_id", entry.ChatID, "error", err)
			}
		}
		if err := p.sleep(ctx, clampDuration(
			time.Duration(len(bubble))*typePerChar, typeMin, typeMax)); err != nil {
			return err
		}
		if resolved {
			_ = p.tr.SetTyping(ctx, entry.ChatID, false)
		}

		if err := p.tr.Send(ctx, entry.ChatID, bubble); err != nil {
			if i > 0 {
				// Partial delivery: the remaining bubbles must not be
				// replayed from the queue, so this counts as failed.
				return fmt.Errorf("%w: bubble %d of %d failed: %v",
					transport.ErrPermanent, i+1, len(entry.Bubbles), err)
			}
			return err
		}

		if i < len(entry.Bubbles)-1 {
			if err := p.sleep(ctx, p.interBubbleGap()); err != nil {
				return fmt.Errorf("%w: interrupted after bubble %d: %v",
					transport.ErrPermanent, i+1, err)
			}
		}
	}

	// Post-delivery bookkeeping is best-effort: the messages are out, so
	// failures here must not push the entry back to the queue.
	now := time.Now()
	postCtx := context.WithoutCancel(ctx)
	if err := p.memory.AppendAssistantTurn(postCtx, entry.UserID, entry.Bubbles); err != nil {
		slog.Error("Failed to append assistant turn", "user_id", entry.UserID, "error", err)
	}
	if entry.LastMessageID > 0 {
		if err := p.cursors.Advance(postCtx, entry.UserID, entry.ChatID, entry.LastMessageID, now); err != nil {
			slog.Error("Failed to advance cursor", "user_id", entry.UserID, "error", err)
		}
	}
	if err := p.reviews.MarkDelivered(postCtx, entry.ReviewID, now); err != nil {
		slog.Error("Failed to mark delivered", "review_id", entry.ReviewID, "error", err)
	}

	p.delivered.Add(1)
	p.lastActivity.Store(now.UnixNano())
	slog.Info("Reply delivered",
		"worker_id", workerID,
		"review_id", entry.ReviewID,
		"user_id", entry.UserID,
		"bubbles", len(entry.Bubbles),
		"chars", len(strings.Join(entry.Bubbles, "")))
	return nil
}

func (p *Pool) acquireUser(userID int64) bool {
	p.inflightMu.Lock()
	defer p.inflightMu.Unlock()
	if _, busy := p.inflight[userID]; busy {
		return false
	}
	p.inflight[userID] = struct{}{}
	return true
}

func (p *Pool) releaseUser(userID int64) {
	p.inflightMu.Lock()
	delete(p.inflight, userID)
	p.inflightMu.Unlock()
}

func (p *Pool) interBubbleGap() time.Duration {
	p.rngMu.Lock()
	defer p.rngMu.Unlock()
	return gapMin + time.Duration(p.rng.Int63n(int64(gapJitterSpan)))
}

func clampDuration(d, lo, hi time.Duration) time.Duration {
	if d < lo {
		return lo
	}
	if d > hi {
		return hi
	}
	return d
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
