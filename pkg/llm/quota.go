package llm

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/halfmoonlabs/chatloop/pkg/config"
)

// quotaTTL keeps yesterday's counters around briefly for inspection.
const quotaTTL = 48 * time.Hour

// Quota tracks daily token consumption per provider/model in the durable
// store, so restarts and multiple workers share one budget.
type Quota struct {
	rdb *redis.Client
	loc *time.Location
	now func() time.Time
}

// NewQuota creates a quota tracker. Days roll over at midnight in loc.
func NewQuota(rdb *redis.Client, loc *time.Location) *Quota {
	if loc == nil {
		loc = time.UTC
	}
	return &Quota{rdb: rdb, loc: loc, now: time.Now}
}

func (q *Quota) key(profile *config.ModelProfile) string {
	day := q.now().In(q.loc).Format("2006-01-02")
	return fmt.Sprintf("quota:%s:%s:%s", profile.Provider, profile.Model, day)
}

// Allow reports whether the profile has budget for an estimated spend.
// Profiles without a cap always pass.
func (q *Quota) Allow(ctx context.Context, profile *config.ModelProfile, estimate int) (bool, error) {
	if profile.DailyTokenCap <= 0 {
		return true, nil
	}

	used, err := q.rdb.Get(ctx, q.key(profile)).Result()
	if errors.Is(err, redis.Nil) {
		return int64(estimate) <= profile.DailyTokenCap, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read quota for %s/%s: %w", profile.Provider, profile.Model, err)
	}

	n, err := strconv.ParseInt(used, 10, 64)
	if err != nil {
		return false, fmt.Errorf("corrupt quota counter for %s/%s: %w", profile.Provider, profile.Model, err)
	}
	return n+int64(estimate) <= profile.DailyTokenCap, nil
}

// Record adds consumed tokens to today's counter.
func (q *Quota) Record(ctx context.Context, profile *config.ModelProfile, tokens int) error {
	if tokens <= 0 {
		return nil
	}
	key := q.key(profile)
	pipe := q.rdb.TxPipeline()
	pipe.IncrBy(ctx, key, int64(tokens))
	pipe.Expire(ctx, key, quotaTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record quota for %s/%s: %w", profile.Provider, profile.Model, err)
	}
	return nil
}

// Used returns today's counter, zero when absent.
func (q *Quota) Used(ctx context.Context, profile *config.ModelProfile) (int64, error) {
	used, err := q.rdb.Get(ctx, q.key(profile)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read quota for %s/%s: %w", profile.Provider, profile.Model, err)
	}
	return used, nil
}
