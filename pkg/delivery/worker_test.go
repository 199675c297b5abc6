package delivery

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halfmoonlabs/chatloop/pkg/entitycache"
	"github.com/halfmoonlabs/chatloop/pkg/memory"
	"github.com/halfmoonlabs/chatloop/pkg/models"
	"github.com/halfmoonlabs/chatloop/pkg/queue"
	"github.com/halfmoonlabs/chatloop/pkg/services"
	"github.com/halfmoonlabs/chatloop/pkg/transport"
	"github.com/halfmoonlabs/chatloop/test/util"
)

type deliveryHarness struct {
	pool    *Pool
	queue   *queue.ReviewQueue
	tr      *transport.InMemory
	reviews *services.ReviewService
	cursors *services.CursorService
	mem     *memory.Store
	slept   []time.Duration
}

func newDeliveryHarness(t *testing.T) *deliveryHarness {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	q := queue.New(rdb)
	tr := transport.NewInMemory()
	reviews := services.NewReviewService(client, q)
	cursors := services.NewCursorService(client)
	mem := memory.NewStore(rdb, memory.Options{})

	h := &deliveryHarness{
		queue: q, tr: tr, reviews: reviews, cursors: cursors, mem: mem,
	}
	h.pool = NewPool(q, tr, reviews, mem, cursors, entitycache.New(tr, 10, time.Minute), Options{Workers: 1})
	h.pool.sleep = func(_ context.Context, d time.Duration) error {
		h.slept = append(h.slept, d)
		return nil
	}
	return h
}

// seedApproved persists an approved interaction and returns the queue entry.
func seedApproved(t *testing.T, h *deliveryHarness, userID int64, bubbles []string) *models.ApprovedEntry {
	t.Helper()
	ctx := context.Background()

	reviewID := uuid.NewString()
	_, err := h.reviews.Create(ctx, models.CreateReviewItemRequest{
		ReviewID:      reviewID,
		UserID:        userID,
		ChatID:        userID,
		InboundText:   "what are you doing tonight?",
		LastMessageID: 77,
		Draft:         "nothing much",
		Safety:        models.SafetyReport{Recommendation: models.SafetyApprove},
	})
	require.NoError(t, err)
	approved, err := h.reviews.Approve(ctx, reviewID, "reviewer-a", models.ApproveReviewRequest{
		FinalBubbles: bubbles,
	})
	require.NoError(t, err)
	require.NotNil(t, approved)

	return &models.ApprovedEntry{ReviewID: reviewID, UserID: userID, ChatID: userID}
}

func runPoolUntil(t *testing.T, h *deliveryHarness, cond func() bool) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.pool.Run(ctx)
	require.Eventually(t, cond, 10*time.Second, 20*time.Millisecond)
	cancel()
	h.pool.Stop()
}

func TestPool_DeliversWithCadence(t *testing.T) {
	h := newDeliveryHarness(t)
	ctx := context.Background()
	h.tr.AddEntity(3001, &transport.Entity{UserID: 3001, AccessHash: 9})

	bubbles := []string{"nothing much", "why, you have plans for us? 😏"}
	entry := seedApproved(t, h, 3001, bubbles)

	runPoolUntil(t, h, func() bool { return len(h.tr.Sent(3001)) == 2 })

	assert.Equal(t, bubbles, h.tr.Sent(3001))

	// read delay + per-bubble typing + one inter-bubble gap.
	require.Len(t, h.slept, 4)
	assert.Equal(t, time.Duration(len("what are you doing tonight?"))*readPerChar, h.slept[0])
	assert.Equal(t, time.Duration(len(bubbles[0]))*typePerChar, h.slept[1])
	assert.GreaterOrEqual(t, h.slept[2], gapMin)
	assert.Less(t, h.slept[2], gapMin+gapJitterSpan)

	// Bookkeeping: delivered mark, assistant memory turn, cursor advance.
	item, err := h.reviews.Get(ctx, entry.ReviewID)
	require.NoError(t, err)
	assert.NotNil(t, item.DeliveredAt)

	snapshot, err := h.mem.GetContext(ctx, 3001)
	require.NoError(t, err)
	require.NotEmpty(t, snapshot.Recent)
	last := snapshot.Recent[len(snapshot.Recent)-1]
	assert.Equal(t, models.RoleAssistant, last.Role)
	assert.Equal(t, bubbles, last.Bubbles)

	cur, err := h.cursors.Get(ctx, 3001)
	require.NoError(t, err)
	assert.Equal(t, int64(77), cur.LastProcessedMessageID)
}

func TestPool_CadenceClamps(t *testing.T) {
	assert.Equal(t, readMin, clampDuration(10*readPerChar, readMin, readMax))
	assert.Equal(t, readMax, clampDuration(1000*readPerChar, readMin, readMax))
	assert.Equal(t, 2*time.Second, clampDuration(2*time.Second, readMin, readMax))
}

func TestPool_PermanentFailureMarksFailed(t *testing.T) {
	h := newDeliveryHarness(t)
	ctx := context.Background()
	h.tr.AddEntity(3002, &transport.Entity{UserID: 3002})
	h.tr.Block(3002)

	entry := seedApproved(t, h, 3002, []string{"hey"})

	runPoolUntil(t, h, func() bool {
		item, err := h.reviews.Get(context.Background(), entry.ReviewID)
		return err == nil && item.DeliveryError != nil
	})

	item, err := h.reviews.Get(ctx, entry.ReviewID)
	require.NoError(t, err)
	assert.Nil(t, item.DeliveredAt)

	// No memory turn, no cursor for a failed delivery.
	snapshot, err := h.mem.GetContext(ctx, 3002)
	require.NoError(t, err)
	assert.Empty(t, snapshot.Recent)
	_, err = h.cursors.Get(ctx, 3002)
	assert.ErrorIs(t, err, services.ErrNotFound)

	// The entry is gone, not stuck at the queue head.
	depth, err := h.queue.ApprovedDepth(ctx)
	require.NoError(t, err)
	assert.Zero(t, depth)
}

func TestPool_UnresolvableEntityFailsPermanently(t *testing.T) {
	h := newDeliveryHarness(t)

	// No entity registered: InMemory resolution fails permanently.
	entry := seedApproved(t, h, 3003, []string{"hola"})

	runPoolUntil(t, h, func() bool {
		item, err := h.reviews.Get(context.Background(), entry.ReviewID)
		return err == nil && item.DeliveryError != nil
	})
	assert.Empty(t, h.tr.Sent(3003))
}

func TestPool_SameUserDeliveriesDoNotInterleave(t *testing.T) {
	h := newDeliveryHarness(t)
	h.tr.AddEntity(3005, &transport.Entity{UserID: 3005})
	h.pool.workers = 2
	// Real (short) waits so a second worker has every chance to cut in
	// mid-cadence.
	h.pool.sleep = func(ctx context.Context, _ time.Duration) error {
		return sleepCtx(ctx, 10*time.Millisecond)
	}

	first := seedApproved(t, h, 3005, []string{"first one", "first two"})
	second := seedApproved(t, h, 3005, []string{"second one", "second two"})

	runPoolUntil(t, h, func() bool { return len(h.tr.Sent(3005)) == 4 })

	// Two workers, one user: the in-flight guard serializes, so every
	// bubble of the first approval lands before the second one starts.
	assert.Equal(t,
		[]string{"first one", "first two", "second one", "second two"},
		h.tr.Sent(3005))

	for _, entry := range []*models.ApprovedEntry{first, second} {
		item, err := h.reviews.Get(context.Background(), entry.ReviewID)
		require.NoError(t, err)
		assert.NotNil(t, item.DeliveredAt)
	}
}

func TestPool_ShutdownReturnsEntryToQueue(t *testing.T) {
	h := newDeliveryHarness(t)
	ctx := context.Background()
	h.tr.AddEntity(3004, &transport.Entity{UserID: 3004})

	// Sleeping honors the context, so cancellation hits mid-cadence.
	h.pool.sleep = sleepCtx
	seedApproved(t, h, 3004, []string{"un momento"})

	runCtx, cancel := context.WithCancel(context.Background())
	go h.pool.Run(runCtx)
	time.Sleep(100 * time.Millisecond)
	cancel()
	h.pool.Stop()

	// Nothing was sent and the entry survived for the next start.
	assert.Empty(t, h.tr.Sent(3004))
	depth, err := h.queue.ApprovedDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), depth)
}
