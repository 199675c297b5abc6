// Package recovery closes the downtime gap: on startup and on a fixed
// interval it scans chat history past every user's cursor and re-injects
// the messages the process missed, rate limited against the platform.
package recovery

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"github.com/halfmoonlabs/chatloop/pkg/batching"
	"github.com/halfmoonlabs/chatloop/pkg/models"
	"github.com/halfmoonlabs/chatloop/pkg/quarantine"
	"github.com/halfmoonlabs/chatloop/pkg/services"
	"github.com/halfmoonlabs/chatloop/pkg/transport"
)

// Tier boundaries by message age.
const (
	tier1MaxAge = 2 * time.Hour
	tier2MaxAge = 12 * time.Hour
)

// haltThreshold stops a sweep after this many consecutive per-user
// failures, on the assumption that the transport itself is down.
const haltThreshold = 3

// Options tunes the recovery agent.
type Options struct {
	// Interval between sweeps after the startup one.
	Interval time.Duration
	// MaxAge is the activity horizon: tier-3 messages are only recovered
	// for users whose cursor moved within this window.
	MaxAge time.Duration
	// MaxPerUser caps how many missed messages one sweep re-injects per user.
	MaxPerUser int
	// MaxConcurrentUsers bounds parallel history scans.
	MaxConcurrentUsers int
	// RateLimit is the transport call budget in requests per second.
	RateLimit float64
	// Retention is how long finished operation rows are kept.
	Retention time.Duration
}

func (o *Options) applyDefaults() {
	if o.Interval <= 0 {
		o.Interval = 30 * time.Minute
	}
	if o.MaxAge <= 0 {
		o.MaxAge = 24 * time.Hour
	}
	if o.MaxPerUser <= 0 {
		o.MaxPerUser = 20
	}
	if o.MaxConcurrentUsers <= 0 {
		o.MaxConcurrentUsers = 4
	}
	if o.RateLimit <= 0 {
		o.RateLimit = 30
	}
	if o.Retention <= 0 {
		o.Retention = 30 * 24 * time.Hour
	}
}

// Agent runs recovery sweeps.
type Agent struct {
	tr         transport.Transport
	cursors    *services.CursorService
	tracker    *batching.Tracker
	quarantine *quarantine.Manager
	ops        *services.RecoveryService
	opts       Options
	limiter    *rate.Limiter
	now        func() time.Time
}

// New creates a recovery agent.
func New(tr transport.Transport, cursors *services.CursorService, tracker *batching.Tracker,
	qm *quarantine.Manager, ops *services.RecoveryService, opts Options) *Agent {
	opts.applyDefaults()
	return &Agent{
		tr:         tr,
		cursors:    cursors,
		tracker:    tracker,
		quarantine: qm,
		ops:        ops,
		opts:       opts,
		limiter:    rate.NewLimiter(rate.Limit(opts.RateLimit), 1),
		now:        time.Now,
	}
}

// Run performs the startup sweep, then sweeps every interval until ctx is
// done.
func (a *Agent) Run(ctx context.Context) {
	if err := a.Sweep(ctx); err != nil {
		slog.Error("Startup recovery sweep failed", "error", err)
	}

	ticker := time.NewTicker(a.opts.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := a.Sweep(ctx); err != nil {
				slog.Error("Recovery sweep failed", "error", err)
			}
			if n, err := a.ops.Prune(ctx, a.opts.Retention); err != nil {
				slog.Warn("Failed to prune recovery operations", "error", err)
			} else if n > 0 {
				slog.Info("Pruned old recovery operations", "count", n)
			}
		}
	}
}

// Sweep scans every cursor once and re-injects missed messages. The sweep
// halts when consecutive users fail, which usually means the transport is
// unreachable and retrying the remaining users would only burn the rate
// budget.
func (a *Agent) Sweep(ctx context.Context) error {
	opID, err := a.ops.Begin(ctx)
	if err != nil {
		return err
	}

	cursors, err := a.cursors.All(ctx)
	if err != nil {
		_ = a.ops.Halt(ctx, opID, err.Error())
		return err
	}

	sem := semaphore.NewWeighted(int64(a.opts.MaxConcurrentUsers))
	results := make(chan userResult, len(cursors))

	var scanned, recovered, errCount, consecutive int
	launched := 0

loop:
	for _, cursor := range cursors {
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		launched++
		go func(userID, chatID, sinceID int64, lastActive time.Time) {
			defer sem.Release(1)
			n, err := a.recoverUser(ctx, userID, chatID, sinceID, lastActive)
			results <- userResult{recovered: n, err: err}
		}(cursor.ID, cursor.ChatID, cursor.LastProcessedMessageID, cursor.LastProcessedAt)

		// Drain without blocking so the halt check sees fresh counts.
	drain:
		for {
			select {
			case res := <-results:
				scanned++
				a.tally(res, &recovered, &errCount, &consecutive)
			default:
				break drain
			}
		}
		if consecutive >= haltThreshold {
			break loop
		}
	}

	for scanned < launched {
		res := <-results
		scanned++
		a.tally(res, &recovered, &errCount, &consecutive)
	}

	_ = a.ops.Progress(ctx, opID, scanned, recovered, errCount)
	if consecutive >= haltThreshold {
		msg := fmt.Sprintf("halted after %d consecutive user failures", consecutive)
		_ = a.ops.Halt(ctx, opID, msg)
		slog.Warn("Recovery sweep halted", "op_id", opID, "users_scanned", scanned, "errors", errCount)
		return fmt.Errorf("recovery sweep %s: %s", opID, msg)
	}

	if err := a.ops.Complete(ctx, opID); err != nil {
		return err
	}
	slog.Info("Recovery sweep completed",
		"op_id", opID, "users_scanned", scanned, "messages_recovered", recovered, "errors", errCount)
	return nil
}

type userResult struct {
	recovered int
	err       error
}

func (a *Agent) tally(res userResult, recovered, errCount, consecutive *int) {
	if res.err != nil {
		*errCount++
		*consecutive++
		slog.Warn("User recovery failed", "error", res.err)
		return
	}
	*consecutive = 0
	*recovered += res.recovered
}

// recoverUser scans one user's history past the cursor and re-injects what
// qualifies. Returns the number of messages re-injected.
func (a *Agent) recoverUser(ctx context.Context, userID, chatID, sinceID int64, lastActive time.Time) (int, error) {
	quarantined, err := a.quarantine.IsQuarantined(ctx, userID)
	if err != nil {
		return 0, err
	}
	if quarantined {
		return 0, nil
	}

	if err := a.limiter.Wait(ctx); err != nil {
		return 0, err
	}
	missed, err := a.tr.ScanHistory(ctx, chatID, sinceID, a.opts.MaxPerUser)
	if err != nil {
		return 0, fmt.Errorf("history scan failed for user %d: %w", userID, err)
	}

	// Freshest tier first: the pipeline should answer the live
	// conversation before it works through backfill. History order is
	// kept within each tier.
	recentlyActive := a.now().Sub(lastActive) <= a.opts.MaxAge
	var tiers [3][]models.InboundMessage
	for _, msg := range missed {
		tier := a.tier(msg.ReceivedAt)
		if tier == models.RecoveryTier3 && !recentlyActive {
			continue
		}
		msg.Recovered = true
		msg.Tier = tier
		tiers[tierIndex(tier)] = append(tiers[tierIndex(tier)], msg)
	}

	injected := 0
	for _, bucket := range tiers {
		for _, msg := range bucket {
			if err := a.tracker.Observe(ctx, msg); err != nil {
				return injected, fmt.Errorf("re-injection failed for user %d: %w", userID, err)
			}
			injected++
		}
	}

	if injected > 0 {
		slog.Info("Recovered missed messages", "user_id", userID, "count", injected)
	}
	return injected, nil
}

func tierIndex(tier models.RecoveryTier) int {
	switch tier {
	case models.RecoveryTier1:
		return 0
	case models.RecoveryTier2:
		return 1
	default:
		return 2
	}
}

func (a *Agent) tier(receivedAt time.Time) models.RecoveryTier {
	age := a.now().Sub(receivedAt)
	switch {
	case age < tier1MaxAge:
		return models.RecoveryTier1
	case age < tier2MaxAge:
		return models.RecoveryTier2
	default:
		return models.RecoveryTier3
	}
}
