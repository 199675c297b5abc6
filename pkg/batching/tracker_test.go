package batching

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halfmoonlabs/chatloop/pkg/models"
	"github.com/halfmoonlabs/chatloop/pkg/transport"
)

type captureSink struct {
	mu   sync.Mutex
	jobs []*models.PipelineJob
	err  error
}

func (s *captureSink) Enqueue(_ context.Context, job *models.PipelineJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		err := s.err
		s.err = nil
		return err
	}
	s.jobs = append(s.jobs, job)
	return nil
}

func (s *captureSink) Jobs() []*models.PipelineJob {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*models.PipelineJob(nil), s.jobs...)
}

func newTestTracker(t *testing.T, opts Options) (*Tracker, *captureSink, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	sink := &captureSink{}
	return New(rdb, sink, opts), sink, rdb
}

func msg(userID, messageID int64, text string) models.InboundMessage {
	return models.InboundMessage{
		UserID: userID, ChatID: userID, MessageID: messageID,
		Text: text, ReceivedAt: time.Now(),
	}
}

func waitForJobs(t *testing.T, sink *captureSink, n int, within time.Duration) []*models.PipelineJob {
	t.Helper()
	deadline := time.Now().Add(within)
	for time.Now().Before(deadline) {
		if jobs := sink.Jobs(); len(jobs) >= n {
			return jobs
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected %d jobs within %v, got %d", n, within, len(sink.Jobs()))
	return nil
}

func TestTracker_CoalescesRapidMessages(t *testing.T) {
	tracker, sink, _ := newTestTracker(t, Options{
		Enabled: true, WindowInitial: 80 * time.Millisecond,
		WindowTypingExt: 500 * time.Millisecond, MaxBatch: 5, MaxWait: 10 * time.Second,
	})
	ctx := context.Background()

	require.NoError(t, tracker.Observe(ctx, msg(42, 1, "are")))
	require.NoError(t, tracker.Observe(ctx, msg(42, 2, "you")))
	require.NoError(t, tracker.Observe(ctx, msg(42, 3, "there?")))

	jobs := waitForJobs(t, sink, 1, 2*time.Second)

	require.Len(t, jobs, 1)
	assert.Equal(t, "are\nyou\nthere?", jobs[0].CoalescedText)
	assert.Len(t, jobs[0].Messages, 3)
	assert.Equal(t, int64(3), jobs[0].LastMessageID())
}

func TestTracker_MaxBatchFlushesImmediately(t *testing.T) {
	tracker, sink, _ := newTestTracker(t, Options{
		Enabled: true, WindowInitial: 10 * time.Second,
		MaxBatch: 2, MaxWait: time.Minute,
	})
	ctx := context.Background()

	require.NoError(t, tracker.Observe(ctx, msg(42, 1, "one")))
	assert.Empty(t, sink.Jobs())

	require.NoError(t, tracker.Observe(ctx, msg(42, 2, "two")))

	jobs := sink.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, "one\ntwo", jobs[0].CoalescedText)
}

func TestTracker_DisabledIsPassthrough(t *testing.T) {
	tracker, sink, _ := newTestTracker(t, Options{Enabled: false})
	ctx := context.Background()

	require.NoError(t, tracker.Observe(ctx, msg(42, 1, "hello")))
	require.NoError(t, tracker.Observe(ctx, msg(42, 2, "world")))

	jobs := sink.Jobs()
	require.Len(t, jobs, 2)
	assert.Equal(t, "hello", jobs[0].CoalescedText)
	assert.Equal(t, "world", jobs[1].CoalescedText)
}

func TestTracker_TypingExtendsWindow(t *testing.T) {
	tracker, sink, _ := newTestTracker(t, Options{
		Enabled: true, WindowInitial: 100 * time.Millisecond,
		WindowTypingExt: 600 * time.Millisecond, MaxBatch: 5, MaxWait: 10 * time.Second,
	})
	ctx := context.Background()

	require.NoError(t, tracker.Observe(ctx, msg(42, 1, "wait for it")))
	tracker.ObserveTyping(ctx, transport.TypingEvent{UserID: 42, ChatID: 42, Typing: true})

	// The initial window would have closed by now; typing kept it open.
	time.Sleep(250 * time.Millisecond)
	assert.Empty(t, sink.Jobs())

	waitForJobs(t, sink, 1, 2*time.Second)
}

func TestTracker_MaxWaitFlushesOverdueBuffer(t *testing.T) {
	tracker, sink, _ := newTestTracker(t, Options{
		Enabled: true, WindowInitial: 10 * time.Second,
		MaxBatch: 10, MaxWait: 30 * time.Second,
	})
	ctx := context.Background()

	old := msg(42, 1, "sent a while ago")
	old.ReceivedAt = time.Now().Add(-45 * time.Second)

	require.NoError(t, tracker.Observe(ctx, old))

	jobs := sink.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, "sent a while ago", jobs[0].CoalescedText)
}

func TestTracker_RecoverFlushesStaleBuffers(t *testing.T) {
	tracker, sink, rdb := newTestTracker(t, Options{
		Enabled: true, WindowInitial: 50 * time.Millisecond,
		MaxBatch: 10, MaxWait: 30 * time.Second,
	})
	ctx := context.Background()

	// Simulate a buffer left behind by a previous process.
	stale := msg(42, 7, "orphaned")
	stale.ReceivedAt = time.Now().Add(-time.Minute)
	payload, err := json.Marshal(stale)
	require.NoError(t, err)
	require.NoError(t, rdb.RPush(ctx, "act:42", payload).Err())

	require.NoError(t, tracker.Recover(ctx))

	jobs := sink.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, "orphaned", jobs[0].CoalescedText)
	assert.Equal(t, int64(7), jobs[0].LastMessageID())
}

func TestTracker_RecoverReschedulesFreshBuffers(t *testing.T) {
	tracker, sink, rdb := newTestTracker(t, Options{
		Enabled: true, WindowInitial: 80 * time.Millisecond,
		MaxBatch: 10, MaxWait: 30 * time.Second,
	})
	ctx := context.Background()

	fresh := msg(42, 7, "still in window")
	payload, err := json.Marshal(fresh)
	require.NoError(t, err)
	require.NoError(t, rdb.RPush(ctx, "act:42", payload).Err())

	require.NoError(t, tracker.Recover(ctx))
	assert.Empty(t, sink.Jobs())

	waitForJobs(t, sink, 1, 2*time.Second)
}

func TestTracker_EnqueueFailureKeepsBuffer(t *testing.T) {
	tracker, sink, rdb := newTestTracker(t, Options{
		Enabled: true, WindowInitial: 10 * time.Second,
		MaxBatch: 1, MaxWait: time.Minute,
	})
	sink.err = errors.New("store down")
	ctx := context.Background()

	err := tracker.Observe(ctx, msg(42, 1, "precious"))
	assert.Error(t, err)

	// The message went back to the buffer for the next attempt.
	length, err := rdb.LLen(ctx, "act:42").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), length)

	require.NoError(t, tracker.Flush(ctx, 42))
	jobs := sink.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, "precious", jobs[0].CoalescedText)
}

type fakeGate struct {
	mu       sync.Mutex
	active   map[int64]bool
	diverted []models.InboundMessage
}

func (g *fakeGate) IsQuarantined(_ context.Context, userID int64) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active[userID], nil
}

func (g *fakeGate) Divert(_ context.Context, m models.InboundMessage) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.diverted = append(g.diverted, m)
	return nil
}

func (g *fakeGate) Diverted() []models.InboundMessage {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]models.InboundMessage(nil), g.diverted...)
}

func TestTracker_RunDivertsQuarantinedUsers(t *testing.T) {
	tracker, sink, _ := newTestTracker(t, Options{Enabled: false})
	gate := &fakeGate{active: map[int64]bool{42: true}}
	tracker.SetGate(gate)

	tr := transport.NewInMemory()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = tracker.Run(ctx, tr)
	}()

	tr.Inject(msg(42, 1, "under protocol"))
	tr.Inject(msg(43, 1, "flows through"))

	// Only the unquarantined user reaches the sink.
	jobs := waitForJobs(t, sink, 1, 2*time.Second)
	require.Len(t, jobs, 1)
	assert.Equal(t, int64(43), jobs[0].UserID)

	diverted := gate.Diverted()
	require.Len(t, diverted, 1)
	assert.Equal(t, int64(42), diverted[0].UserID)

	// A direct re-injection (a release) bypasses the gate.
	require.NoError(t, tracker.Observe(ctx, msg(42, 2, "released")))
	jobs = waitForJobs(t, sink, 2, 2*time.Second)
	assert.Equal(t, int64(42), jobs[1].UserID)
	assert.Len(t, gate.Diverted(), 1)

	cancel()
	<-done
}

func TestTracker_DistinctUsersFlushIndependently(t *testing.T) {
	tracker, sink, _ := newTestTracker(t, Options{
		Enabled: true, WindowInitial: 10 * time.Second,
		MaxBatch: 2, MaxWait: time.Minute,
	})
	ctx := context.Background()

	require.NoError(t, tracker.Observe(ctx, msg(1, 1, "a")))
	require.NoError(t, tracker.Observe(ctx, msg(2, 1, "b")))
	assert.Empty(t, sink.Jobs())

	require.NoError(t, tracker.Observe(ctx, msg(1, 2, "c")))

	jobs := sink.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, int64(1), jobs[0].UserID)
	assert.Equal(t, "a\nc", jobs[0].CoalescedText)

	tracker.Stop()
}
