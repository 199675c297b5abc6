// Package queue holds the reviewer-facing priority queue and the approved
// FIFO feeding the delivery workers. Both live in the durable store; the
// relational interactions table stays the source of truth for item state.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/halfmoonlabs/chatloop/pkg/models"
)

const (
	pendingKey  = "reviewq:pending"
	approvedKey = "approved:fifo"
)

// ReviewQueue is the Redis view of work awaiting a reviewer or delivery.
type ReviewQueue struct {
	rdb *redis.Client
}

// New creates a queue over the given Redis client.
func New(rdb *redis.Client) *ReviewQueue {
	return &ReviewQueue{rdb: rdb}
}

// Push inserts or rescores a pending review id.
func (q *ReviewQueue) Push(ctx context.Context, reviewID string, priority float64) error {
	if err := q.rdb.ZAdd(ctx, pendingKey, redis.Z{Score: priority, Member: reviewID}).Err(); err != nil {
		return fmt.Errorf("failed to push review %s: %w", reviewID, err)
	}
	return nil
}

// TopN returns up to limit review ids, highest priority first.
func (q *ReviewQueue) TopN(ctx context.Context, limit int) ([]string, error) {
	ids, err := q.rdb.ZRevRange(ctx, pendingKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read pending queue: %w", err)
	}
	return ids, nil
}

// Remove drops a review id from the pending queue. Safe on absent members.
func (q *ReviewQueue) Remove(ctx context.Context, reviewID string) error {
	if err := q.rdb.ZRem(ctx, pendingKey, reviewID).Err(); err != nil {
		return fmt.Errorf("failed to remove review %s: %w", reviewID, err)
	}
	return nil
}

// PendingDepth returns the number of queued review ids.
func (q *ReviewQueue) PendingDepth(ctx context.Context) (int64, error) {
	depth, err := q.rdb.ZCard(ctx, pendingKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read pending depth: %w", err)
	}
	return depth, nil
}

// PushApproved appends an approved entry to the delivery FIFO.
func (q *ReviewQueue) PushApproved(ctx context.Context, entry *models.ApprovedEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal approved entry: %w", err)
	}
	if err := q.rdb.RPush(ctx, approvedKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to push approved entry %s: %w", entry.ReviewID, err)
	}
	return nil
}

// PopApproved blocks up to timeout for the next approved entry. Returns
// nil when the wait times out.
func (q *ReviewQueue) PopApproved(ctx context.Context, timeout time.Duration) (*models.ApprovedEntry, error) {
	res, err := q.rdb.BLPop(ctx, timeout, approvedKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to pop approved entry: %w", err)
	}

	var entry models.ApprovedEntry
	if err := json.Unmarshal([]byte(res[1]), &entry); err != nil {
		return nil, fmt.Errorf("corrupt approved entry: %w", err)
	}
	return &entry, nil
}

// ReturnApproved puts an entry back at the head of the FIFO, used when a
// delivery worker shuts down mid-item.
func (q *ReviewQueue) ReturnApproved(ctx context.Context, entry *models.ApprovedEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal approved entry: %w", err)
	}
	if err := q.rdb.LPush(ctx, approvedKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to return approved entry %s: %w", entry.ReviewID, err)
	}
	return nil
}

// ApprovedDepth returns the number of entries awaiting delivery.
func (q *ReviewQueue) ApprovedDepth(ctx context.Context) (int64, error) {
	depth, err := q.rdb.LLen(ctx, approvedKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read approved depth: %w", err)
	}
	return depth, nil
}
