package queue

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halfmoonlabs/chatloop/pkg/models"
)

func newTestQueue(t *testing.T) *ReviewQueue {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return New(rdb)
}

func TestReviewQueue_PriorityOrder(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, q.Push(ctx, "low", 0.1))
	require.NoError(t, q.Push(ctx, "high", 0.9))
	require.NoError(t, q.Push(ctx, "mid", 0.5))

	ids, err := q.TopN(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"high", "mid"}, ids)

	// Re-pushing rescores in place.
	require.NoError(t, q.Push(ctx, "low", 1.0))
	ids, err = q.TopN(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"low"}, ids)

	require.NoError(t, q.Remove(ctx, "low"))
	depth, err := q.PendingDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), depth)
}

func TestReviewQueue_ApprovedFIFO(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()

	first := &models.ApprovedEntry{ReviewID: "r1", UserID: 42, ChatID: 42, Bubbles: []string{"hey!"}}
	second := &models.ApprovedEntry{ReviewID: "r2", UserID: 43, ChatID: 43, Bubbles: []string{"hola"}}
	require.NoError(t, q.PushApproved(ctx, first))
	require.NoError(t, q.PushApproved(ctx, second))

	got, err := q.PopApproved(ctx, 100*time.Millisecond)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "r1", got.ReviewID)
	assert.Equal(t, []string{"hey!"}, got.Bubbles)

	// Returned entries go to the head, ahead of r2.
	require.NoError(t, q.ReturnApproved(ctx, got))
	got, err = q.PopApproved(ctx, 100*time.Millisecond)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "r1", got.ReviewID)
}

func TestReviewQueue_PopApprovedTimesOut(t *testing.T) {
	q := newTestQueue(t)

	entry, err := q.PopApproved(context.Background(), 50*time.Millisecond)
	require.NoError(t, err)
	assert.Nil(t, entry)
}
