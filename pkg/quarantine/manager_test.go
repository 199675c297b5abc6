package quarantine

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halfmoonlabs/chatloop/pkg/batching"
	"github.com/halfmoonlabs/chatloop/pkg/events"
	"github.com/halfmoonlabs/chatloop/pkg/models"
	"github.com/halfmoonlabs/chatloop/pkg/services"
	"github.com/halfmoonlabs/chatloop/test/util"
)

type captureSink struct {
	mu   sync.Mutex
	jobs []*models.PipelineJob
}

func (c *captureSink) Enqueue(_ context.Context, job *models.PipelineJob) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.jobs = append(c.jobs, job)
	return nil
}

func (c *captureSink) all() []*models.PipelineJob {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*models.PipelineJob(nil), c.jobs...)
}

func newTestManager(t *testing.T) (*Manager, *services.QuarantineService, *captureSink, *redis.Client) {
	t.Helper()
	client, db := util.SetupTestDatabase(t)
	svc := services.NewQuarantineService(client, events.NewPublisher(db), 7*24*time.Hour)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	sink := &captureSink{}
	tracker := batching.New(rdb, sink, batching.Options{
		Enabled:         true,
		WindowInitial:   time.Hour,
		WindowTypingExt: time.Hour,
		MaxBatch:        100,
		MaxWait:         2 * time.Hour,
	})
	t.Cleanup(tracker.Stop)

	return NewManager(svc, tracker), svc, sink, rdb
}

func TestManager_ActivateTakesOverOpenWindow(t *testing.T) {
	m, svc, sink, rdb := newTestManager(t)
	ctx := context.Background()

	tracker := m.tracker
	require.NoError(t, tracker.Observe(ctx, models.InboundMessage{
		UserID: 300, ChatID: 300, MessageID: 1, Text: "hey", ReceivedAt: time.Now(),
	}))
	require.NoError(t, tracker.Observe(ctx, models.InboundMessage{
		UserID: 300, ChatID: 300, MessageID: 2, Text: "you up?", ReceivedAt: time.Now(),
	}))

	require.NoError(t, m.Activate(ctx, 300, "chargeback", "reviewer-a"))

	active, err := m.IsQuarantined(ctx, 300)
	require.NoError(t, err)
	assert.True(t, active)

	// The open window moved to quarantine, nothing reached the pipeline.
	rows, err := svc.List(ctx, 300)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "hey", rows[0].Text)
	assert.Empty(t, sink.all())
	buffered, err := rdb.LLen(ctx, "act:300").Result()
	require.NoError(t, err)
	assert.Zero(t, buffered)
}

func TestManager_DivertAndRelease(t *testing.T) {
	m, svc, _, rdb := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.Activate(ctx, 301, "manual", "reviewer-a"))

	receivedAt := time.Now().Add(-10 * time.Minute).Truncate(time.Millisecond)
	require.NoError(t, m.Divert(ctx, models.InboundMessage{
		UserID: 301, ChatID: 301, MessageID: 7, Text: "hello?", ReceivedAt: receivedAt,
	}))

	rows, err := svc.List(ctx, 301)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	require.NoError(t, m.Release(ctx, rows[0].ID, "reviewer-a"))

	// Released message lands back in the batching window with its original
	// receive time.
	buffered, err := rdb.LLen(ctx, "act:301").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), buffered)

	rows, err = svc.List(ctx, 301)
	require.NoError(t, err)
	assert.Empty(t, rows)

	assert.ErrorIs(t, m.Release(ctx, "missing", "reviewer-a"), services.ErrNotFound)
}

func TestManager_CacheServesWithinTTL(t *testing.T) {
	m, _, _, _ := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.Activate(ctx, 302, "test", "reviewer-a"))
	require.NoError(t, m.Deactivate(ctx, 302, "test over", "reviewer-a"))

	active, err := m.IsQuarantined(ctx, 302)
	require.NoError(t, err)
	assert.False(t, active)

	// A notification flips the cached entry without a DB round trip.
	m.onProtocolChange(events.ProtocolStatusChannel,
		[]byte(`{"user_id":302,"active":true,"reason":"n","changed_at":"2026-08-24T00:00:00Z"}`))
	active, err = m.IsQuarantined(ctx, 302)
	require.NoError(t, err)
	assert.True(t, active)

	// Unknown users fall through to the table and default inactive.
	active, err = m.IsQuarantined(ctx, 999)
	require.NoError(t, err)
	assert.False(t, active)
}
