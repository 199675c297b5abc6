package recovery

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halfmoonlabs/chatloop/ent/recoveryoperation"
	"github.com/halfmoonlabs/chatloop/pkg/batching"
	"github.com/halfmoonlabs/chatloop/pkg/events"
	"github.com/halfmoonlabs/chatloop/pkg/models"
	"github.com/halfmoonlabs/chatloop/pkg/quarantine"
	"github.com/halfmoonlabs/chatloop/pkg/services"
	"github.com/halfmoonlabs/chatloop/pkg/transport"
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

// brokenScanTransport fails every history scan.
type brokenScanTransport struct {
	*transport.InMemory
}

func (b *brokenScanTransport) ScanHistory(context.Context, int64, int64, int) ([]models.InboundMessage, error) {
	return nil, errors.New("connection reset")
}

type recoveryHarness struct {
	cursors *services.CursorService
	ops     *services.RecoveryService
	qm      *quarantine.Manager
	sink    *captureSink
	tracker *batching.Tracker
}

func newRecoveryHarness(t *testing.T) *recoveryHarness {
	t.Helper()
	client, db := util.SetupTestDatabase(t)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	sink := &captureSink{}
	// Batching disabled: every re-injected message surfaces as its own job.
	tracker := batching.New(rdb, sink, batching.Options{Enabled: false})
	t.Cleanup(tracker.Stop)

	qsvc := services.NewQuarantineService(client, events.NewPublisher(db), 7*24*time.Hour)
	return &recoveryHarness{
		cursors: services.NewCursorService(client),
		ops:     services.NewRecoveryService(client),
		qm:      quarantine.NewManager(qsvc, tracker),
		sink:    sink,
		tracker: tracker,
	}
}

func (h *recoveryHarness) newAgent(tr transport.Transport, opts Options) *Agent {
	return New(tr, h.cursors, h.tracker, h.qm, h.ops, opts)
}

func TestAgent_SweepRecoversMissedMessages(t *testing.T) {
	h := newRecoveryHarness(t)
	ctx := context.Background()
	tr := transport.NewInMemory()

	now := time.Now()
	require.NoError(t, h.cursors.Advance(ctx, 4001, 4001, 10, now.Add(-time.Hour)))

	// Two missed messages past the cursor, one already processed.
	tr.AddHistory(models.InboundMessage{UserID: 4001, ChatID: 4001, MessageID: 10, Text: "old", ReceivedAt: now.Add(-2 * time.Hour)})
	tr.AddHistory(models.InboundMessage{UserID: 4001, ChatID: 4001, MessageID: 11, Text: "missed one", ReceivedAt: now.Add(-50 * time.Minute)})
	tr.AddHistory(models.InboundMessage{UserID: 4001, ChatID: 4001, MessageID: 12, Text: "missed two", ReceivedAt: now.Add(-5 * time.Hour)})

	agent := h.newAgent(tr, Options{})
	require.NoError(t, agent.Sweep(ctx))

	jobs := h.sink.all()
	require.Len(t, jobs, 2)
	assert.Equal(t, "missed one", jobs[0].Messages[0].Text)
	assert.True(t, jobs[0].Messages[0].Recovered)
	assert.Equal(t, models.RecoveryTier1, jobs[0].Messages[0].Tier)
	assert.Equal(t, models.RecoveryTier2, jobs[1].Messages[0].Tier)

	ops, err := h.ops.Latest(ctx, 1)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, recoveryoperation.StatusCompleted, ops[0].Status)
	assert.Equal(t, 1, ops[0].UsersScanned)
	assert.Equal(t, 2, ops[0].MessagesRecovered)
}

func TestAgent_Tier3RequiresRecentActivity(t *testing.T) {
	h := newRecoveryHarness(t)
	ctx := context.Background()
	tr := transport.NewInMemory()

	now := time.Now()
	// Idle for three days: tier-3 backlog is not worth a stale reply.
	require.NoError(t, h.cursors.Advance(ctx, 4002, 4002, 0, now.Add(-72*time.Hour)))
	tr.AddHistory(models.InboundMessage{UserID: 4002, ChatID: 4002, MessageID: 1, Text: "ancient", ReceivedAt: now.Add(-48 * time.Hour)})
	tr.AddHistory(models.InboundMessage{UserID: 4002, ChatID: 4002, MessageID: 2, Text: "fresh", ReceivedAt: now.Add(-30 * time.Minute)})

	agent := h.newAgent(tr, Options{})
	require.NoError(t, agent.Sweep(ctx))

	jobs := h.sink.all()
	require.Len(t, jobs, 1)
	assert.Equal(t, "fresh", jobs[0].Messages[0].Text)
}

func TestAgent_FreshTierInjectsBeforeBackfill(t *testing.T) {
	h := newRecoveryHarness(t)
	ctx := context.Background()
	tr := transport.NewInMemory()

	now := time.Now()
	require.NoError(t, h.cursors.Advance(ctx, 4005, 4005, 0, now.Add(-10*time.Minute)))

	// History order is oldest first, the opposite of tier priority.
	tr.AddHistory(models.InboundMessage{UserID: 4005, ChatID: 4005, MessageID: 1, Text: "from yesterday", ReceivedAt: now.Add(-13 * time.Hour)})
	tr.AddHistory(models.InboundMessage{UserID: 4005, ChatID: 4005, MessageID: 2, Text: "from last night", ReceivedAt: now.Add(-6 * time.Hour)})
	tr.AddHistory(models.InboundMessage{UserID: 4005, ChatID: 4005, MessageID: 3, Text: "just now", ReceivedAt: now.Add(-20 * time.Minute)})

	agent := h.newAgent(tr, Options{})
	require.NoError(t, agent.Sweep(ctx))

	jobs := h.sink.all()
	require.Len(t, jobs, 3)
	assert.Equal(t, models.RecoveryTier1, jobs[0].Messages[0].Tier)
	assert.Equal(t, "just now", jobs[0].Messages[0].Text)
	assert.Equal(t, models.RecoveryTier2, jobs[1].Messages[0].Tier)
	assert.Equal(t, models.RecoveryTier3, jobs[2].Messages[0].Tier)
}

func TestAgent_SkipsQuarantinedUsers(t *testing.T) {
	h := newRecoveryHarness(t)
	ctx := context.Background()
	tr := transport.NewInMemory()

	require.NoError(t, h.qm.Activate(ctx, 4003, "test", "reviewer-a"))
	require.NoError(t, h.cursors.Advance(ctx, 4003, 4003, 0, time.Now()))
	tr.AddHistory(models.InboundMessage{UserID: 4003, ChatID: 4003, MessageID: 1, Text: "hi", ReceivedAt: time.Now()})

	agent := h.newAgent(tr, Options{})
	require.NoError(t, agent.Sweep(ctx))
	assert.Empty(t, h.sink.all())
}

func TestAgent_MaxPerUserCapsInjection(t *testing.T) {
	h := newRecoveryHarness(t)
	ctx := context.Background()
	tr := transport.NewInMemory()

	now := time.Now()
	require.NoError(t, h.cursors.Advance(ctx, 4004, 4004, 0, now))
	for i := 1; i <= 10; i++ {
		tr.AddHistory(models.InboundMessage{
			UserID: 4004, ChatID: 4004, MessageID: int64(i),
			Text: "msg", ReceivedAt: now.Add(-time.Minute),
		})
	}

	agent := h.newAgent(tr, Options{MaxPerUser: 3})
	require.NoError(t, agent.Sweep(ctx))
	assert.Len(t, h.sink.all(), 3)
}

func TestAgent_HaltsOnConsecutiveFailures(t *testing.T) {
	h := newRecoveryHarness(t)
	ctx := context.Background()
	tr := &brokenScanTransport{InMemory: transport.NewInMemory()}

	now := time.Now()
	for i := int64(1); i <= 5; i++ {
		require.NoError(t, h.cursors.Advance(ctx, 4100+i, 4100+i, 0, now))
	}

	// Serial scans so the failures count as consecutive deterministically.
	agent := h.newAgent(tr, Options{MaxConcurrentUsers: 1, RateLimit: 10_000})
	err := agent.Sweep(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "halted")

	ops, err := h.ops.Latest(ctx, 1)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, recoveryoperation.StatusHalted, ops[0].Status)
	assert.GreaterOrEqual(t, ops[0].Errors, 3)
	assert.Less(t, ops[0].UsersScanned, 5)
}
