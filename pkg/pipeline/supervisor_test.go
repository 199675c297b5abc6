package pipeline

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halfmoonlabs/chatloop/ent/interaction"
	"github.com/halfmoonlabs/chatloop/pkg/batching"
	"github.com/halfmoonlabs/chatloop/pkg/config"
	"github.com/halfmoonlabs/chatloop/pkg/events"
	"github.com/halfmoonlabs/chatloop/pkg/llm"
	"github.com/halfmoonlabs/chatloop/pkg/memory"
	"github.com/halfmoonlabs/chatloop/pkg/models"
	"github.com/halfmoonlabs/chatloop/pkg/quarantine"
	"github.com/halfmoonlabs/chatloop/pkg/queue"
	"github.com/halfmoonlabs/chatloop/pkg/safety"
	"github.com/halfmoonlabs/chatloop/pkg/services"
	"github.com/halfmoonlabs/chatloop/pkg/wal"
	"github.com/halfmoonlabs/chatloop/test/util"
)

// scriptedClient returns canned completions, or an error for every call.
type scriptedClient struct {
	reply string
	err   error
	calls atomic.Int64
}

func (c *scriptedClient) CreateChatCompletion(_ context.Context, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	c.calls.Add(1)
	if c.err != nil {
		return openai.ChatCompletionResponse{}, c.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: c.reply}},
		},
		Usage: openai.Usage{PromptTokens: 1200, CompletionTokens: 60},
	}, nil
}

type testHarness struct {
	sup     *Supervisor
	log     *wal.Log
	reviews *services.ReviewService
	queue   *queue.ReviewQueue
	mem     *memory.Store
	qm      *quarantine.Manager
	qsvc    *services.QuarantineService
	rdb     *redis.Client
	stage1  *scriptedClient
	stage2  *scriptedClient
}

func newHarness(t *testing.T) *testHarness {
	t.Helper()
	client, db := util.SetupTestDatabase(t)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	log := wal.New(rdb, 0)
	mem := memory.NewStore(rdb, memory.Options{})
	analyzer, err := safety.NewAnalyzer()
	require.NoError(t, err)

	persona := &config.Persona{
		Constitution: "Stay in character as Valeria from Monterrey. Never admit to being artificial.",
		Traits:       "Playful, warm, uses casual Mexican Spanish slang.",
	}
	prompter, err := llm.NewPrompter(persona)
	require.NoError(t, err)
	registry, err := config.LoadProfiles(t.TempDir())
	require.NoError(t, err)
	cfg := &config.Config{LLMProfile: "default"}
	router, err := llm.NewRouter(cfg, registry, llm.NewQuota(rdb, time.UTC), prompter)
	require.NoError(t, err)

	stage1 := &scriptedClient{reply: "sigo aquí! just got back from the gym, you?"}
	stage2 := &scriptedClient{reply: "sigo aquí!<|bubble|>just got back from the gym<|bubble|>you?"}
	router.WithClient("stage1-flash", stage1).
		WithClient("stage1-mini", stage1).
		WithClient("stage2-cached", stage2)

	q := queue.New(rdb)
	reviews := services.NewReviewService(client, q)
	qsvc := services.NewQuarantineService(client, events.NewPublisher(db), 7*24*time.Hour)
	tracker := batching.New(rdb, log, batching.Options{
		Enabled: true, WindowInitial: time.Hour, WindowTypingExt: time.Hour,
		MaxBatch: 100, MaxWait: 2 * time.Hour,
	})
	t.Cleanup(tracker.Stop)
	qm := quarantine.NewManager(qsvc, tracker)

	sup := New(log, rdb, mem, analyzer, router, reviews, qm, Options{
		Workers: 2,
		Lease:   time.Minute,
		LockTTL: time.Minute,
	})
	return &testHarness{
		sup: sup, log: log, reviews: reviews, queue: q, mem: mem,
		qm: qm, qsvc: qsvc, rdb: rdb, stage1: stage1, stage2: stage2,
	}
}

func makeJob(jobID string, userID int64, texts ...string) *models.PipelineJob {
	messages := make([]models.InboundMessage, len(texts))
	for i, text := range texts {
		messages[i] = models.InboundMessage{
			UserID: userID, ChatID: userID, MessageID: int64(100 + i),
			Text: text, ReceivedAt: time.Now(),
		}
	}
	return &models.PipelineJob{
		JobID: jobID, UserID: userID, ChatID: userID,
		Messages:      messages,
		CoalescedText: models.Coalesce(messages),
		CreatedAt:     time.Now(),
	}
}

func runUntilReviewed(t *testing.T, h *testHarness, reviewID string) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.sup.Run(ctx)

	require.Eventually(t, func() bool {
		_, err := h.reviews.Get(context.Background(), reviewID)
		return err == nil
	}, 10*time.Second, 50*time.Millisecond)
	cancel()
	h.sup.Stop()
}

func TestSupervisor_ProcessesJobEndToEnd(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	job := makeJob("job-1", 2001, "hey", "you there?")
	require.NoError(t, h.log.Enqueue(ctx, job))
	runUntilReviewed(t, h, "job-1")

	item, err := h.reviews.Get(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, interaction.StatusPending, item.Status)
	assert.Equal(t, "hey\nyou there?", item.InboundText)
	assert.Equal(t, int64(101), item.LastMessageID)
	assert.Equal(t, []string{"sigo aquí!", "just got back from the gym", "you?"}, item.RefinedBubbles)
	require.NotNil(t, item.Llm1)
	require.NotNil(t, item.Llm2)
	assert.Equal(t, models.SafetyApprove, item.Safety.Recommendation)

	// Benign two-message batch: only the batch-size term contributes.
	assert.InDelta(t, 0.3*(2.0/5.0), item.PriorityScore, 0.001)

	// Queued for review and acked off the WAL.
	depth, err := h.queue.PendingDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), depth)
	walDepth, err := h.log.Depth(ctx)
	require.NoError(t, err)
	assert.Zero(t, walDepth)

	// The user turn reached memory before generation.
	snapshot, err := h.mem.GetContext(ctx, 2001)
	require.NoError(t, err)
	require.NotEmpty(t, snapshot.Recent)
	assert.Equal(t, "hey\nyou there?", snapshot.Recent[len(snapshot.Recent)-1].Content)

	// The processing lock was released.
	exists, err := h.rdb.Exists(ctx, "lock:proc:2001").Result()
	require.NoError(t, err)
	assert.Zero(t, exists)
}

func TestSupervisor_DegradesWhenLLMUnavailable(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.stage1.err = errors.New("429 too many requests")

	job := makeJob("job-2", 2002, "i luv u, where do u live? ❤️❤️❤️❤️")
	require.NoError(t, h.log.Enqueue(ctx, job))
	runUntilReviewed(t, h, "job-2")

	item, err := h.reviews.Get(ctx, "job-2")
	require.NoError(t, err)
	assert.Equal(t, interaction.StatusPending, item.Status)
	assert.Empty(t, item.DraftText)
	assert.Empty(t, item.RefinedBubbles)
	require.NotNil(t, item.ProcessingError)
	assert.Equal(t, models.ProcessingErrorLLMUnavailable, *item.ProcessingError)

	// Safety ran on the inbound text, so the risky message still ranks high.
	assert.Equal(t, models.SafetyFlag, item.Safety.Recommendation)
	assert.InDelta(t, 0.6, item.Safety.RiskScore, 0.001)
	assert.Greater(t, item.PriorityScore, 0.3)
}

func TestSupervisor_DegradedBenignTextStillNeedsReview(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.stage1.err = errors.New("429 too many requests")

	job := makeJob("job-2b", 2012, "good morning!")
	require.NoError(t, h.log.Enqueue(ctx, job))
	runUntilReviewed(t, h, "job-2b")

	item, err := h.reviews.Get(ctx, "job-2b")
	require.NoError(t, err)
	require.NotNil(t, item.ProcessingError)
	// The reviewer writes the reply by hand, so even a clean inbound text
	// is never auto-approvable.
	assert.Equal(t, models.SafetyReview, item.Safety.Recommendation)
	assert.Zero(t, item.Safety.RiskScore)
}

func TestSupervisor_DivertsQuarantinedUser(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	require.NoError(t, h.qm.Activate(ctx, 2003, "test", "reviewer-a"))

	job := makeJob("job-3", 2003, "hello?")
	require.NoError(t, h.log.Enqueue(ctx, job))

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.sup.Run(runCtx)
	require.Eventually(t, func() bool {
		rows, err := h.qsvc.List(context.Background(), 2003)
		return err == nil && len(rows) == 1
	}, 10*time.Second, 50*time.Millisecond)
	cancel()
	h.sup.Stop()

	// Nothing was generated or queued for review.
	_, err := h.reviews.Get(ctx, "job-3")
	assert.ErrorIs(t, err, services.ErrNotFound)
	walDepth, err := h.log.Depth(ctx)
	require.NoError(t, err)
	assert.Zero(t, walDepth)
	assert.Zero(t, h.stage1.calls.Load())
}

func TestSupervisor_DuplicateJobAckedOnce(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	job := makeJob("job-4", 2004, "hola")
	require.NoError(t, h.log.Enqueue(ctx, job))
	runUntilReviewed(t, h, "job-4")
	firstCalls := h.stage1.calls.Load()

	// Redelivery of the same job id must not produce a second item or call
	// the models again.
	require.NoError(t, h.log.Enqueue(ctx, job))
	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.sup.Run(runCtx)
	require.Eventually(t, func() bool {
		depth, err := h.log.Depth(context.Background())
		return err == nil && depth == 0
	}, 10*time.Second, 50*time.Millisecond)
	cancel()
	h.sup.Stop()

	assert.Equal(t, firstCalls, h.stage1.calls.Load())
	items, err := h.reviews.ListPending(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestSupervisor_RecoveredJobGetsBoost(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	job := makeJob("job-5", 2005, "sorry i disappeared")
	job.Messages[0].Recovered = true
	job.Messages[0].Tier = models.RecoveryTier1
	require.NoError(t, h.log.Enqueue(ctx, job))
	runUntilReviewed(t, h, "job-5")

	item, err := h.reviews.Get(ctx, "job-5")
	require.NoError(t, err)
	assert.True(t, item.Recovered)
	require.NotNil(t, item.RecoveryTier)
	assert.Equal(t, string(models.RecoveryTier1), *item.RecoveryTier)
	// Batch term 0.3*(1/5) plus the recovered boost.
	assert.InDelta(t, 0.06+0.1, item.PriorityScore, 0.001)
}

func TestSupervisor_StopIsIdempotent(t *testing.T) {
	h := newHarness(t)

	ctx, cancel := context.WithCancel(context.Background())
	go h.sup.Run(ctx)
	time.Sleep(50 * time.Millisecond)
	cancel()
	h.sup.Stop()
	h.sup.Stop()
}

func TestProcessingErrorMapping(t *testing.T) {
	assert.Equal(t, models.ProcessingErrorLLMUnavailable, processingError(llm.ErrUnavailable))
	assert.True(t, strings.HasPrefix(processingError(errors.New("boom")), "pipeline error:"))
}
