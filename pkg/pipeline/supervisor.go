// Package pipeline runs the processing stage: workers reserve coalesced
// jobs from the WAL, run the safety analyzer and the two LLM stages, score
// priority, and persist the resulting review item. Nothing in this package
// sends a message to a user.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/halfmoonlabs/chatloop/pkg/llm"
	"github.com/halfmoonlabs/chatloop/pkg/memory"
	"github.com/halfmoonlabs/chatloop/pkg/models"
	"github.com/halfmoonlabs/chatloop/pkg/quarantine"
	"github.com/halfmoonlabs/chatloop/pkg/safety"
	"github.com/halfmoonlabs/chatloop/pkg/services"
	"github.com/halfmoonlabs/chatloop/pkg/wal"
)

const (
	lockKeyPrefix = "lock:proc:"
	idlePoll      = 250 * time.Millisecond
	// batchNorm is the batch size at which the batch-size priority term
	// saturates.
	batchNorm = 5.0
	// recoveredBoost nudges re-injected messages up the review queue so
	// users who waited through an outage are answered first.
	recoveredBoost = 0.1
)

// releaseLockScript deletes the lock only if this job still holds it.
var releaseLockScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
  return redis.call('DEL', KEYS[1])
end
return 0
`)

// Options tunes the supervisor pool.
type Options struct {
	Workers  int
	Lease    time.Duration
	LockTTL  time.Duration
	Location *time.Location

	// Priority weights for safety risk, batch size, and quarantine history.
	WeightSafety     float64
	WeightBatch      float64
	WeightQuarantine float64
}

func (o *Options) applyDefaults() {
	if o.Workers <= 0 {
		o.Workers = 8
	}
	if o.Lease <= 0 {
		o.Lease = 5 * time.Minute
	}
	if o.LockTTL <= 0 {
		o.LockTTL = 5 * time.Minute
	}
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.WeightSafety == 0 && o.WeightBatch == 0 && o.WeightQuarantine == 0 {
		o.WeightSafety, o.WeightBatch, o.WeightQuarantine = 0.5, 0.3, 0.2
	}
}

// Supervisor is the worker pool draining the WAL.
type Supervisor struct {
	log        *wal.Log
	rdb        *redis.Client
	memory     *memory.Store
	analyzer   *safety.Analyzer
	router     *llm.Router
	reviews    *services.ReviewService
	quarantine *quarantine.Manager
	opts       Options

	processed    atomic.Int64
	lastActivity atomic.Int64 // unix nanos of the latest ack

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a supervisor pool. Start it with Run.
func New(log *wal.Log, rdb *redis.Client, mem *memory.Store, analyzer *safety.Analyzer,
	router *llm.Router, reviews *services.ReviewService, qm *quarantine.Manager, opts Options) *Supervisor {
	opts.applyDefaults()
	return &Supervisor{
		log:        log,
		rdb:        rdb,
		memory:     mem,
		analyzer:   analyzer,
		router:     router,
		reviews:    reviews,
		quarantine: qm,
		opts:       opts,
		stopCh:     make(chan struct{}),
	}
}

// Run launches the workers and blocks until ctx is done or Stop is called.
func (s *Supervisor) Run(ctx context.Context) {
	for i := 0; i < s.opts.Workers; i++ {
		s.wg.Add(1)
		workerID := fmt.Sprintf("supervisor-%d", i)
		go func() {
			defer s.wg.Done()
			s.workerLoop(ctx, workerID)
		}()
	}
	s.wg.Wait()
}

// Stop signals all workers to finish their current job and exit.
func (s *Supervisor) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

func (s *Supervisor) workerLoop(ctx context.Context, workerID string) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		default:
		}

		job, err := s.log.Reserve(ctx, workerID, s.opts.Lease)
		if errors.Is(err, wal.ErrNoJobs) {
			select {
			case <-ctx.Done():
				return
			case <-s.stopCh:
				return
			case <-time.After(idlePoll):
			}
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Error("WAL reserve failed", "worker_id", workerID, "error", err)
			continue
		}

		if err := s.process(ctx, workerID, job); err != nil {
			slog.Error("Job processing failed, returning to queue",
				"worker_id", workerID, "job_id", job.JobID, "user_id", job.UserID, "error", err)
			if nerr := s.log.Nack(ctx, job.JobID); nerr != nil && !errors.Is(nerr, wal.ErrUnknownJob) {
				slog.Error("WAL nack failed", "job_id", job.JobID, "error", nerr)
			}
		}
	}
}

// process runs one job end to end. A nil return means the job was acked
// (including the divert and duplicate paths).
func (s *Supervisor) process(ctx context.Context, workerID string, job *models.PipelineJob) error {
	quarantined, err := s.quarantine.IsQuarantined(ctx, job.UserID)
	if err != nil {
		return err
	}
	if quarantined {
		for _, msg := range job.Messages {
			if err := s.quarantine.Divert(ctx, msg); err != nil {
				return fmt.Errorf("failed to divert job %s: %w", job.JobID, err)
			}
		}
		return s.ack(ctx, job.JobID)
	}

	// One in-flight job per user. A held lock means another worker (or a
	// crashed worker within lock TTL) owns this user; redeliver later.
	lockKey := lockKeyPrefix + fmt.Sprintf("%d", job.UserID)
	locked, err := s.rdb.SetNX(ctx, lockKey, job.JobID, s.opts.LockTTL).Result()
	if err != nil {
		return fmt.Errorf("failed to acquire processing lock: %w", err)
	}
	if !locked {
		slog.Debug("User locked by another worker, requeueing",
			"worker_id", workerID, "user_id", job.UserID, "job_id", job.JobID)
		time.Sleep(idlePoll)
		return fmt.Errorf("user %d busy", job.UserID)
	}
	defer func() {
		if err := releaseLockScript.Run(ctx, s.rdb, []string{lockKey}, job.JobID).Err(); err != nil {
			slog.Warn("Failed to release processing lock", "user_id", job.UserID, "error", err)
		}
	}()

	// At-least-once delivery from the WAL: a redelivered job that already
	// produced a review item is simply acked.
	if _, err := s.reviews.Get(ctx, job.JobID); err == nil {
		slog.Info("Duplicate job, already reviewed", "job_id", job.JobID)
		return s.ack(ctx, job.JobID)
	} else if !errors.Is(err, services.ErrNotFound) {
		return err
	}

	// The user turn lands in memory before the snapshot is taken, so the
	// context handed to stage 1 includes what the user just said.
	if err := s.memory.AppendUserTurn(ctx, job.UserID, job.CoalescedText); err != nil {
		return fmt.Errorf("failed to append user turn: %w", err)
	}
	snapshot, err := s.memory.GetContext(ctx, job.UserID)
	if err != nil {
		return fmt.Errorf("failed to load memory context: %w", err)
	}

	req := s.generate(ctx, job, snapshot)

	if _, err := s.reviews.Create(ctx, req); err != nil {
		return fmt.Errorf("failed to persist review item: %w", err)
	}
	slog.Info("Job processed",
		"worker_id", workerID,
		"job_id", job.JobID,
		"user_id", job.UserID,
		"priority", req.PriorityScore,
		"degraded", req.ProcessingError != "",
		"safety", req.Safety.Recommendation)
	return s.ack(ctx, job.JobID)
}

// generate runs both LLM stages and the analyzer, degrading to an empty
// draft review item when the model chain is exhausted. LLM failure never
// drops a job: the reviewer composes the reply by hand.
func (s *Supervisor) generate(ctx context.Context, job *models.PipelineJob, snapshot *memory.Context) models.CreateReviewItemRequest {
	req := models.CreateReviewItemRequest{
		ReviewID:      job.JobID,
		UserID:        job.UserID,
		ChatID:        job.ChatID,
		InboundText:   job.CoalescedText,
		LastMessageID: job.LastMessageID(),
	}
	if tier := job.RecoveredTier(); tier != models.RecoveryTierNone {
		req.Recovered = true
		req.RecoveryTier = tier
	}

	localTime := time.Now().In(s.opts.Location).Format("Monday 15:04")
	draft, rec1, err := s.router.Stage1(ctx, snapshot, job.CoalescedText, localTime)
	if err != nil {
		slog.Warn("Stage 1 failed, queueing for manual reply",
			"job_id", job.JobID, "user_id", job.UserID, "error", err)
		req.ProcessingError = processingError(err)
		req.Safety = s.analyzer.Analyze(job.CoalescedText)
		escalateDegraded(&req.Safety)
		req.PriorityScore = s.priority(ctx, job, req.Safety.RiskScore, req.Recovered)
		return req
	}
	req.Draft = draft
	req.LLM1 = &rec1

	bubbles, rec2, err := s.router.Stage2(ctx, job.CoalescedText, draft, snapshot.Summary.AssistantPhrases)
	if err != nil {
		slog.Warn("Stage 2 failed, queueing draft for manual split",
			"job_id", job.JobID, "user_id", job.UserID, "error", err)
		req.ProcessingError = processingError(err)
		req.Safety = s.analyzer.Analyze(draft)
		escalateDegraded(&req.Safety)
		req.PriorityScore = s.priority(ctx, job, req.Safety.RiskScore, req.Recovered)
		return req
	}
	req.RefinedBubbles = bubbles
	req.LLM2 = &rec2

	req.Safety = s.analyzer.Analyze(strings.Join(bubbles, "\n"))
	req.PriorityScore = s.priority(ctx, job, req.Safety.RiskScore, req.Recovered)
	return req
}

// priority blends safety risk, batch size, and quarantine history into the
// review ordering score, clamped to [0, 1].
func (s *Supervisor) priority(ctx context.Context, job *models.PipelineJob, risk float64, recovered bool) float64 {
	batch := float64(len(job.Messages)) / batchNorm
	if batch > 1 {
		batch = 1
	}

	history := 0.0
	if had, err := s.quarantine.HasHistory(ctx, job.UserID); err == nil && had {
		history = 1.0
	}

	score := s.opts.WeightSafety*risk + s.opts.WeightBatch*batch + s.opts.WeightQuarantine*history
	if recovered {
		score += recoveredBoost
	}
	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}
	return score
}

func (s *Supervisor) ack(ctx context.Context, jobID string) error {
	if err := s.log.Ack(ctx, jobID); err != nil && !errors.Is(err, wal.ErrUnknownJob) {
		return fmt.Errorf("failed to ack job %s: %w", jobID, err)
	}
	s.processed.Add(1)
	s.lastActivity.Store(time.Now().UnixNano())
	return nil
}

// Health is a point-in-time snapshot of the pool.
type Health struct {
	Workers      int        `json:"workers"`
	Processed    int64      `json:"processed"`
	LastActivity *time.Time `json:"last_activity,omitempty"`
}

// Health reports how the pool is doing, for the health endpoint.
func (s *Supervisor) Health() Health {
	h := Health{Workers: s.opts.Workers, Processed: s.processed.Load()}
	if ns := s.lastActivity.Load(); ns > 0 {
		t := time.Unix(0, ns)
		h.LastActivity = &t
	}
	return h
}

// escalateDegraded makes sure a degraded item is never auto-approvable:
// the reviewer composes the reply by hand, so it needs at least a look.
func escalateDegraded(report *models.SafetyReport) {
	if report.Recommendation == models.SafetyApprove {
		report.Recommendation = models.SafetyReview
	}
}

func processingError(err error) string {
	if errors.Is(err, llm.ErrUnavailable) {
		return models.ProcessingErrorLLMUnavailable
	}
	return fmt.Sprintf("pipeline error: %v", err)
}
