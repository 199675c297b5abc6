package llm

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halfmoonlabs/chatloop/pkg/config"
	"github.com/halfmoonlabs/chatloop/pkg/memory"
	"github.com/halfmoonlabs/chatloop/pkg/models"
)

type fakeClient struct {
	content string
	usage   openai.Usage
	err     error
	calls   int
}

func (f *fakeClient) CreateChatCompletion(_ context.Context, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.calls++
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.content}},
		},
		Usage: f.usage,
	}, nil
}

func testPersona() *config.Persona {
	return &config.Persona{
		Constitution: "You are Valentina, a warm and witty woman from Monterrey. " +
			strings.Repeat("You text casually, in short messages, and never break character. ", 10),
		Traits: "Likes: gardening, telenovelas. Dislikes: cold weather.",
	}
}

func testRegistry() *config.ProfileRegistry {
	return &config.ProfileRegistry{
		Profiles: map[string]*config.ModelProfile{
			"primary": {
				Provider: "openrouter", Model: "free-model",
				Temperature: 0.8, MaxTokens: 256, DailyTokenCap: 10_000,
			},
			"backup": {
				Provider: "openai", Model: "mini-model",
				Temperature: 0.8, MaxTokens: 256,
				PriceIn: 0.15, PriceOut: 0.60,
			},
			"refiner": {
				Provider: "openai", Model: "strong-model",
				Temperature: 0.3, MaxTokens: 256,
				PriceIn: 2.50, PriceOut: 10.00, PriceCachedIn: 1.25,
			},
		},
		Chains: map[string]config.ProfileChain{
			"default": {
				Stage1: []string{"primary", "backup"},
				Stage2: []string{"refiner"},
			},
		},
	}
}

func newTestRouter(t *testing.T) (*Router, *Prompter) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	prompter, err := NewPrompter(testPersona())
	require.NoError(t, err)

	registry := testRegistry()
	return &Router{
		registry: registry,
		chain:    registry.Chains["default"],
		clients:  make(map[string]ChatClient),
		quota:    NewQuota(rdb, time.UTC),
		prompter: prompter,
	}, prompter
}

func TestParseBubbles(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "sentinel-delimited bubbles",
			raw:      "hey! <|bubble|> how's your day?",
			expected: []string{"hey!", "how's your day?"},
		},
		{
			name:     "no sentinel is one bubble",
			raw:      "just one thing to say",
			expected: []string{"just one thing to say"},
		},
		{
			name:     "empty segments dropped",
			raw:      "<|bubble|>first<|bubble|><|bubble|>second<|bubble|>",
			expected: []string{"first", "second"},
		},
		{
			name:     "overflow folds into last bubble",
			raw:      "a<|bubble|>b<|bubble|>c<|bubble|>d<|bubble|>e<|bubble|>f",
			expected: []string{"a", "b", "c", "d e f"},
		},
		{
			name:     "blank output is nil",
			raw:      "   ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseBubbles(tt.raw))
		})
	}
}

func TestPrompter_StablePrefix(t *testing.T) {
	prompter, err := NewPrompter(testPersona())
	require.NoError(t, err)

	first := prompter.StablePrefix()
	assert.GreaterOrEqual(t, prompter.PrefixTokens(), 1024)

	// Byte-identical across reads and across rebuilds.
	assert.Equal(t, first, prompter.StablePrefix())
	prompter.Rebuild()
	assert.Equal(t, first, prompter.StablePrefix())

	// No per-request interpolation in the prefix.
	assert.NotContains(t, first, time.Now().Format("2006"))
}

func TestPrompter_Stage2Messages(t *testing.T) {
	prompter, err := NewPrompter(testPersona())
	require.NoError(t, err)

	msgs := prompter.Stage2Messages("how are you", "doing great, thanks for asking", []string{"that sounds lovely"})

	require.Len(t, msgs, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, msgs[0].Role)
	assert.Equal(t, prompter.StablePrefix(), msgs[0].Content)
	assert.Contains(t, msgs[1].Content, "User message:\nhow are you")
	assert.Contains(t, msgs[1].Content, "Draft reply:\ndoing great")
	assert.Contains(t, msgs[1].Content, "- that sounds lovely")
}

func TestPrompter_Stage1Messages(t *testing.T) {
	prompter, err := NewPrompter(testPersona())
	require.NoError(t, err)

	snapshot := &memory.Context{
		Profile: map[string]string{"name": "Dana"},
		Recent: []models.ConversationTurn{
			{Role: models.RoleUser, Content: "hi"},
			{Role: models.RoleAssistant, Content: "hey you"},
		},
		Summary: memory.TemporalSummary{Text: "yesterday: 4 turns about garden"},
	}

	msgs := prompter.Stage1Messages(snapshot, "what's up?", "Monday 15:04")

	require.Len(t, msgs, 4)
	assert.Contains(t, msgs[0].Content, "Current local time: Monday 15:04")
	assert.Contains(t, msgs[0].Content, "talking to Dana")
	assert.Contains(t, msgs[0].Content, "yesterday: 4 turns about garden")
	assert.Equal(t, openai.ChatMessageRoleUser, msgs[1].Role)
	assert.Equal(t, openai.ChatMessageRoleAssistant, msgs[2].Role)
	assert.Equal(t, "what's up?", msgs[3].Content)
}

func TestRouter_Stage1FallsBackOnError(t *testing.T) {
	router, _ := newTestRouter(t)

	broken := &fakeClient{err: &openai.APIError{HTTPStatusCode: 400, Message: "bad request"}}
	working := &fakeClient{
		content: "a warm draft",
		usage:   openai.Usage{PromptTokens: 100, CompletionTokens: 20},
	}
	router.WithClient("primary", broken).WithClient("backup", working)

	draft, record, err := router.Stage1(context.Background(), &memory.Context{}, "hey :)", "Monday 10:00")
	require.NoError(t, err)

	assert.Equal(t, "a warm draft", draft)
	assert.Equal(t, "openai", record.Provider)
	assert.Equal(t, "mini-model", record.Model)
	assert.Equal(t, 1, broken.calls) // permanent error, no retry
	assert.Equal(t, 1, working.calls)
	assert.InDelta(t, (0.15*100+0.60*20)/1e6, record.CostUSD, 1e-12)
}

func TestRouter_Stage1SkipsOverQuotaProfile(t *testing.T) {
	router, _ := newTestRouter(t)
	ctx := context.Background()

	// Exhaust the primary's daily cap up front.
	primary, _ := router.registry.Get("primary")
	require.NoError(t, router.quota.Record(ctx, primary, 10_000))

	primaryClient := &fakeClient{content: "never used"}
	backupClient := &fakeClient{
		content: "fallback draft",
		usage:   openai.Usage{PromptTokens: 50, CompletionTokens: 10},
	}
	router.WithClient("primary", primaryClient).WithClient("backup", backupClient)

	draft, _, err := router.Stage1(ctx, &memory.Context{}, "hey", "Monday 10:00")
	require.NoError(t, err)

	assert.Equal(t, "fallback draft", draft)
	assert.Zero(t, primaryClient.calls)
}

func TestRouter_UnavailableWhenChainExhausted(t *testing.T) {
	router, _ := newTestRouter(t)

	apiErr := &openai.APIError{HTTPStatusCode: 400, Message: "nope"}
	router.WithClient("primary", &fakeClient{err: apiErr}).
		WithClient("backup", &fakeClient{err: apiErr})

	_, _, err := router.Stage1(context.Background(), &memory.Context{}, "hey", "Monday 10:00")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestRouter_Stage2ParsesBubblesAndRecordsUsage(t *testing.T) {
	router, _ := newTestRouter(t)
	ctx := context.Background()

	router.WithClient("refiner", &fakeClient{
		content: "hey! <|bubble|> how's your day?",
		usage: openai.Usage{
			PromptTokens:     2000,
			CompletionTokens: 30,
			PromptTokensDetails: &openai.PromptTokensDetails{
				CachedTokens: 1500,
			},
		},
	})

	bubbles, record, err := router.Stage2(ctx, "hey :)", "a warm draft", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"hey!", "how's your day?"}, bubbles)
	assert.Equal(t, 1500, record.CachedPromptTokens)
	assert.InDelta(t, (2.50*500+1.25*1500+10.00*30)/1e6, record.CostUSD, 1e-12)

	// Usage lands in the day's quota counter.
	refiner, _ := router.registry.Get("refiner")
	used, err := router.quota.Used(ctx, refiner)
	require.NoError(t, err)
	assert.Equal(t, int64(2030), used)
}

func TestRouter_TransientErrorRetries(t *testing.T) {
	assert.True(t, isTransient(&openai.APIError{HTTPStatusCode: 429}))
	assert.True(t, isTransient(&openai.APIError{HTTPStatusCode: 503}))
	assert.False(t, isTransient(&openai.APIError{HTTPStatusCode: 400}))
	assert.False(t, isTransient(context.Canceled))
}

func TestQuota_AllowAndRecord(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	quota := NewQuota(rdb, time.UTC)
	profile := &config.ModelProfile{Provider: "p", Model: "m", DailyTokenCap: 1000}
	ctx := context.Background()

	ok, err := quota.Allow(ctx, profile, 900)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, quota.Record(ctx, profile, 900))

	ok, err = quota.Allow(ctx, profile, 200)
	require.NoError(t, err)
	assert.False(t, ok)

	// Uncapped profiles always pass.
	ok, err = quota.Allow(ctx, &config.ModelProfile{Provider: "p", Model: "free"}, 1<<30)
	require.NoError(t, err)
	assert.True(t, ok)
}
