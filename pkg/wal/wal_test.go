package wal

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

func newTestLog(t *testing.T, softCap int) (*Log, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return New(rdb, softCap), mr
}

func testJob(id string) *models.PipelineJob {
	return &models.PipelineJob{
		JobID:  id,
		UserID: 42,
		ChatID: 42,
		Messages: []models.InboundMessage{
			{UserID: 42, ChatID: 42, MessageID: 100, Text: "hey"},
		},
		CoalescedText: "hey",
		CreatedAt:     time.Now(),
	}
}

func TestLog_EnqueueReserveAck(t *testing.T) {
	log, _ := newTestLog(t, 0)
	ctx := context.Background()

	require.NoError(t, log.Enqueue(ctx, testJob("job-1")))

	depth, err := log.Depth(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), depth)

	job, err := log.Reserve(ctx, "worker-1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "job-1", job.JobID)
	assert.Equal(t, "hey", job.CoalescedText)

	// Reserved jobs are invisible to other workers.
	_, err = log.Reserve(ctx, "worker-2", time.Minute)
	assert.ErrorIs(t, err, ErrNoJobs)

	require.NoError(t, log.Ack(ctx, "job-1"))

	depth, err = log.Depth(ctx)
	require.NoError(t, err)
	assert.Zero(t, depth)
}

func TestLog_FIFOOrder(t *testing.T) {
	log, _ := newTestLog(t, 0)
	ctx := context.Background()

	require.NoError(t, log.Enqueue(ctx, testJob("job-a")))
	require.NoError(t, log.Enqueue(ctx, testJob("job-b")))
	require.NoError(t, log.Enqueue(ctx, testJob("job-c")))

	for _, want := range []string{"job-a", "job-b", "job-c"} {
		job, err := log.Reserve(ctx, "w", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, job.JobID)
		require.NoError(t, log.Ack(ctx, job.JobID))
	}
}

func TestLog_NackRequeuesAtHead(t *testing.T) {
	log, _ := newTestLog(t, 0)
	ctx := context.Background()

	require.NoError(t, log.Enqueue(ctx, testJob("job-a")))
	require.NoError(t, log.Enqueue(ctx, testJob("job-b")))

	job, err := log.Reserve(ctx, "w", time.Minute)
	require.NoError(t, err)
	require.Equal(t, "job-a", job.JobID)

	require.NoError(t, log.Nack(ctx, "job-a"))

	// Nacked job comes back before job-b.
	job, err = log.Reserve(ctx, "w", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "job-a", job.JobID)
}

func TestLog_LeaseExpiryRequeues(t *testing.T) {
	log, _ := newTestLog(t, 0)
	ctx := context.Background()

	require.NoError(t, log.Enqueue(ctx, testJob("job-1")))

	_, err := log.Reserve(ctx, "crashed-worker", 10*time.Millisecond)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	// The next reservation reaps the lapsed lease and redelivers.
	job, err := log.Reserve(ctx, "worker-2", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "job-1", job.JobID)
}

func TestLog_AckUnknownJob(t *testing.T) {
	log, _ := newTestLog(t, 0)

	assert.ErrorIs(t, log.Ack(context.Background(), "missing"), ErrUnknownJob)
	assert.ErrorIs(t, log.Nack(context.Background(), "missing"), ErrUnknownJob)
}

func TestLog_ReserveEmpty(t *testing.T) {
	log, _ := newTestLog(t, 0)

	_, err := log.Reserve(context.Background(), "w", time.Minute)
	assert.ErrorIs(t, err, ErrNoJobs)
}

func TestLog_SoftCapBlocksEnqueue(t *testing.T) {
	log, _ := newTestLog(t, 1)
	ctx := context.Background()

	require.NoError(t, log.Enqueue(ctx, testJob("job-1")))

	blockedCtx, cancel := context.WithTimeout(ctx, 300*time.Millisecond)
	defer cancel()
	err := log.Enqueue(blockedCtx, testJob("job-2"))
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// Draining the queue unblocks producers again.
	job, err := log.Reserve(ctx, "w", time.Minute)
	require.NoError(t, err)
	require.NoError(t, log.Ack(ctx, job.JobID))
	require.NoError(t, log.Enqueue(ctx, testJob("job-2")))
}

func TestLog_SurvivesReconnect(t *testing.T) {
	log, mr := newTestLog(t, 0)
	ctx := context.Background()

	require.NoError(t, log.Enqueue(ctx, testJob("job-1")))

	// A fresh client over the same store sees the queued job: durability is
	// the store's, not the process's.
	rdb2 := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb2.Close()
	log2 := New(rdb2, 0)

	job, err := log2.Reserve(ctx, "w", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "job-1", job.JobID)
}
