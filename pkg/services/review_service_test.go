package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halfmoonlabs/chatloop/ent/interaction"
	"github.com/halfmoonlabs/chatloop/pkg/models"
	"github.com/halfmoonlabs/chatloop/pkg/queue"
	"github.com/halfmoonlabs/chatloop/test/util"
)

func newTestReviewService(t *testing.T) (*ReviewService, *queue.ReviewQueue) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	q := queue.New(rdb)
	return NewReviewService(client, q), q
}

func createRequest(userID int64) models.CreateReviewItemRequest {
	return models.CreateReviewItemRequest{
		ReviewID:      uuid.NewString(),
		UserID:        userID,
		ChatID:        userID,
		InboundText:   "hey\nare you around?",
		LastMessageID: 120,
		Draft:         "yes! just got home",
		RefinedBubbles: []string{
			"yes!",
			"just got home, what's up?",
		},
		Safety: models.SafetyReport{
			RiskScore:      0.2,
			Flags:          []string{"KEYWORD:meetup"},
			Recommendation: models.SafetyReview,
		},
		LLM1:          &models.LLMCallRecord{Provider: "openai", Model: "gpt-4o-mini", PromptTokens: 900},
		PriorityScore: 0.45,
	}
}

func TestReviewService_CreateAndGet(t *testing.T) {
	svc, q := newTestReviewService(t)
	ctx := context.Background()

	req := createRequest(1001)
	item, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, req.ReviewID, item.ID)
	assert.Equal(t, interaction.StatusPending, item.Status)
	assert.Equal(t, int64(120), item.LastMessageID)
	assert.Equal(t, []string{"KEYWORD:meetup"}, item.Safety.Flags)

	got, err := svc.Get(ctx, req.ReviewID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, got.ID)

	depth, err := q.PendingDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), depth)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReviewService_ListPendingByPriority(t *testing.T) {
	svc, _ := newTestReviewService(t)
	ctx := context.Background()

	low := createRequest(1)
	low.PriorityScore = 0.1
	high := createRequest(2)
	high.PriorityScore = 0.9

	_, err := svc.Create(ctx, low)
	require.NoError(t, err)
	_, err = svc.Create(ctx, high)
	require.NoError(t, err)

	items, err := svc.ListPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, high.ReviewID, items[0].ID)
	assert.Equal(t, low.ReviewID, items[1].ID)
}

func TestReviewService_StartReviewing(t *testing.T) {
	svc, _ := newTestReviewService(t)
	ctx := context.Background()

	req := createRequest(1002)
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	item, err := svc.StartReviewing(ctx, req.ReviewID, "reviewer-a")
	require.NoError(t, err)
	assert.Equal(t, interaction.StatusReviewing, item.Status)
	require.NotNil(t, item.ReviewerID)
	assert.Equal(t, "reviewer-a", *item.ReviewerID)

	// Same reviewer is idempotent.
	again, err := svc.StartReviewing(ctx, req.ReviewID, "reviewer-a")
	require.NoError(t, err)
	assert.Equal(t, interaction.StatusReviewing, again.Status)

	// A different reviewer cannot steal the item.
	_, err = svc.StartReviewing(ctx, req.ReviewID, "reviewer-b")
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestReviewService_ApproveLifecycle(t *testing.T) {
	svc, q := newTestReviewService(t)
	ctx := context.Background()

	req := createRequest(1003)
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)
	_, err = svc.StartReviewing(ctx, req.ReviewID, "reviewer-a")
	require.NoError(t, err)

	quality := 4
	status := models.CustomerStatusLeadQualified
	delta := 25.0
	approved, err := svc.Approve(ctx, req.ReviewID, "reviewer-a", models.ApproveReviewRequest{
		FinalBubbles:   []string{"yes!", "just got home babe"},
		EditTags:       []string{"TONE_CASUAL"},
		QualityScore:   &quality,
		CustomerStatus: &status,
		LTVDeltaUSD:    &delta,
	})
	require.NoError(t, err)
	assert.Equal(t, interaction.StatusApproved, approved.Status)
	require.NotNil(t, approved.CustomerStatus)
	assert.Equal(t, models.CustomerStatusLeadQualified, *approved.CustomerStatus)

	// Removed from the priority queue, handed to delivery.
	depth, err := q.PendingDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), depth)

	entry, err := q.PopApproved(ctx, 100*time.Millisecond)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, req.ReviewID, entry.ReviewID)
	assert.Equal(t, []string{"yes!", "just got home babe"}, entry.Bubbles)
	assert.Equal(t, int64(120), entry.LastMessageID)

	// Re-approving is idempotent and does not re-enqueue.
	again, err := svc.Approve(ctx, req.ReviewID, "reviewer-a", models.ApproveReviewRequest{
		FinalBubbles: []string{"yes!"},
	})
	require.NoError(t, err)
	assert.Equal(t, interaction.StatusApproved, again.Status)
	dup, err := q.PopApproved(ctx, 50*time.Millisecond)
	require.NoError(t, err)
	assert.Nil(t, dup)
}

func TestReviewService_ApproveValidation(t *testing.T) {
	svc, _ := newTestReviewService(t)
	ctx := context.Background()

	req := createRequest(1004)
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	cases := []models.ApproveReviewRequest{
		{FinalBubbles: nil},
		{FinalBubbles: []string{"a", "b", "c", "d", "e"}},
		{FinalBubbles: []string{"ok", "  "}},
		{FinalBubbles: []string{"ok"}, EditTags: []string{"NOT_A_TAG"}},
		{FinalBubbles: []string{"ok"}, QualityScore: intPtr(6)},
		{FinalBubbles: []string{"ok"}, CustomerStatus: strPtr("VIP")},
	}
	for _, body := range cases {
		_, err := svc.Approve(ctx, req.ReviewID, "reviewer-a", body)
		assert.True(t, IsValidationError(err), "expected validation error, got %v", err)
	}

	// The item is untouched after failed approvals.
	item, err := svc.Get(ctx, req.ReviewID)
	require.NoError(t, err)
	assert.Equal(t, interaction.StatusPending, item.Status)
}

func TestReviewService_RejectAndCancel(t *testing.T) {
	svc, q := newTestReviewService(t)
	ctx := context.Background()

	req := createRequest(1005)
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)
	_, err = svc.StartReviewing(ctx, req.ReviewID, "reviewer-a")
	require.NoError(t, err)

	// Cancel returns the item to pending and clears the reviewer.
	item, err := svc.Cancel(ctx, req.ReviewID)
	require.NoError(t, err)
	assert.Equal(t, interaction.StatusPending, item.Status)
	assert.Nil(t, item.ReviewerID)

	reason := "out of persona"
	rejected, err := svc.Reject(ctx, req.ReviewID, "reviewer-a", models.RejectReviewRequest{Reason: &reason})
	require.NoError(t, err)
	assert.Equal(t, interaction.StatusRejected, rejected.Status)
	require.NotNil(t, rejected.ReviewerNotes)
	assert.Equal(t, reason, *rejected.ReviewerNotes)

	depth, err := q.PendingDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), depth)

	// Terminal states cannot move.
	_, err = svc.Approve(ctx, req.ReviewID, "reviewer-a", models.ApproveReviewRequest{FinalBubbles: []string{"hi"}})
	assert.ErrorIs(t, err, ErrIllegalTransition)
	_, err = svc.Cancel(ctx, req.ReviewID)
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestReviewService_DeliveryMarks(t *testing.T) {
	svc, _ := newTestReviewService(t)
	ctx := context.Background()

	req := createRequest(1006)
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, svc.MarkDelivered(ctx, req.ReviewID, now))
	item, err := svc.Get(ctx, req.ReviewID)
	require.NoError(t, err)
	require.NotNil(t, item.DeliveredAt)
	assert.WithinDuration(t, now, *item.DeliveredAt, time.Second)

	require.NoError(t, svc.MarkDeliveryFailed(ctx, req.ReviewID, "user blocked the account"))
	item, err = svc.Get(ctx, req.ReviewID)
	require.NoError(t, err)
	require.NotNil(t, item.DeliveryError)
	assert.Equal(t, "user blocked the account", *item.DeliveryError)

	assert.ErrorIs(t, svc.MarkDelivered(ctx, "missing", now), ErrNotFound)
}

func intPtr(v int) *int          { return &v }
func strPtr(v string) *string    { return &v }
func floatPtr(v float64) *float64 { return &v }
