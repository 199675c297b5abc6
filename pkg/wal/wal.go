// Package wal implements the durable write-ahead log between ingestion and
// processing: a FIFO of pipeline jobs handed out under reservation leases,
// at-least-once, with job_id dedup left to the consumer.
package wal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/halfmoonlabs/chatloop/pkg/models"
)

// Sentinel errors.
var (
	// ErrNoJobs is returned by Reserve when the queue is empty.
	ErrNoJobs = errors.New("no jobs available")
	// ErrUnknownJob is returned by Ack/Nack for a job id that is not leased.
	ErrUnknownJob = errors.New("unknown job id")
)

const (
	queueKey  = "wal:queue"
	leasesKey = "wal:leases"
	jobPrefix = "wal:job:"
)

// Log is the Redis-backed WAL.
type Log struct {
	rdb     *redis.Client
	softCap int64
}

// New creates a WAL over the given Redis client. softCap bounds the queue
// depth beyond which Enqueue blocks; 0 disables the cap.
func New(rdb *redis.Client, softCap int) *Log {
	return &Log{rdb: rdb, softCap: int64(softCap)}
}

// reserveScript atomically pops the next job id and records its lease.
// KEYS: queue, leases. ARGV: lease expiry unix-ms.
var reserveScript = redis.NewScript(`
local id = redis.call('LPOP', KEYS[1])
if not id then
  return false
end
redis.call('ZADD', KEYS[2], ARGV[1], id)
return id
`)

// Enqueue persists the job and appends it to the queue. Returns only after
// the job is durably stored. Blocks (respecting ctx) while the queue depth
// exceeds the soft cap, which backpressures the transport adapter.
func (l *Log) Enqueue(ctx context.Context, job *models.PipelineJob) error {
	if l.softCap > 0 {
		for {
			depth, err := l.rdb.LLen(ctx, queueKey).Result()
			if err != nil {
				return fmt.Errorf("failed to check WAL depth: %w", err)
			}
			if depth < l.softCap {
				break
			}
			slog.Warn("WAL soft cap reached, enqueue blocked", "depth", depth, "cap", l.softCap)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(200 * time.Millisecond):
			}
		}
	}

	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	pipe := l.rdb.TxPipeline()
	pipe.Set(ctx, jobPrefix+job.JobID, payload, 0)
	pipe.RPush(ctx, queueKey, job.JobID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to enqueue job %s: %w", job.JobID, err)
	}
	return nil
}

// Reserve hands out at most one job under a lease. The job stays invisible
// to other reservers until Ack, Nack, or lease expiry.
func (l *Log) Reserve(ctx context.Context, workerID string, lease time.Duration) (*models.PipelineJob, error) {
	if err := l.reapExpired(ctx); err != nil {
		slog.Warn("WAL lease reap failed", "worker_id", workerID, "error", err)
	}

	expiry := time.Now().Add(lease).UnixMilli()
	res, err := reserveScript.Run(ctx, l.rdb, []string{queueKey, leasesKey}, expiry).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoJobs
		}
		return nil, fmt.Errorf("failed to reserve job: %w", err)
	}

	jobID, ok := res.(string)
	if !ok || jobID == "" {
		return nil, ErrNoJobs
	}

	payload, err := l.rdb.Get(ctx, jobPrefix+jobID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// Payload vanished (acked by a previous holder after lease
			// expiry); drop the stale lease and report empty.
			_ = l.rdb.ZRem(ctx, leasesKey, jobID).Err()
			return nil, ErrNoJobs
		}
		return nil, fmt.Errorf("failed to load job %s: %w", jobID, err)
	}

	var job models.PipelineJob
	if err := json.Unmarshal([]byte(payload), &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job %s: %w", jobID, err)
	}
	return &job, nil
}

// Ack deletes a completed job.
func (l *Log) Ack(ctx context.Context, jobID string) error {
	removed, err := l.rdb.ZRem(ctx, leasesKey, jobID).Result()
	if err != nil {
		return fmt.Errorf("failed to release lease for %s: %w", jobID, err)
	}
	if removed == 0 {
		return ErrUnknownJob
	}
	if err := l.rdb.Del(ctx, jobPrefix+jobID).Err(); err != nil {
		return fmt.Errorf("failed to delete job %s: %w", jobID, err)
	}
	return nil
}

// Nack returns a job to the head of the queue for immediate redelivery.
func (l *Log) Nack(ctx context.Context, jobID string) error {
	removed, err := l.rdb.ZRem(ctx, leasesKey, jobID).Result()
	if err != nil {
		return fmt.Errorf("failed to release lease for %s: %w", jobID, err)
	}
	if removed == 0 {
		return ErrUnknownJob
	}
	if err := l.rdb.LPush(ctx, queueKey, jobID).Err(); err != nil {
		return fmt.Errorf("failed to requeue job %s: %w", jobID, err)
	}
	return nil
}

// Depth returns the number of jobs waiting (not leased).
func (l *Log) Depth(ctx context.Context) (int64, error) {
	depth, err := l.rdb.LLen(ctx, queueKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read WAL depth: %w", err)
	}
	return depth, nil
}

// reapExpired requeues jobs whose lease has lapsed. Crashed workers lose
// their claim here, which is what makes the handoff at-least-once.
func (l *Log) reapExpired(ctx context.Context) error {
	now := time.Now().UnixMilli()
	expired, err := l.rdb.ZRangeByScore(ctx, leasesKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: fmt.Sprintf("%d", now),
	}).Result()
	if err != nil {
		return fmt.Errorf("failed to scan expired leases: %w", err)
	}

	for _, jobID := range expired {
		removed, err := l.rdb.ZRem(ctx, leasesKey, jobID).Result()
		if err != nil {
			return fmt.Errorf("failed to drop expired lease %s: %w", jobID, err)
		}
		if removed == 0 {
			continue // another reaper got it first
		}
		if err := l.rdb.LPush(ctx, queueKey, jobID).Err(); err != nil {
			return fmt.Errorf("failed to requeue expired job %s: %w", jobID, err)
		}
		slog.Warn("Requeued job after lease expiry", "job_id", jobID)
	}
	return nil
}
