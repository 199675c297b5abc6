package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	openai "github.com/sashabaranov/go-openai"

	"github.com/halfmoonlabs/chatloop/pkg/config"
	"github.com/halfmoonlabs/chatloop/pkg/memory"
	"github.com/halfmoonlabs/chatloop/pkg/models"
)

// ErrUnavailable is returned when every profile in a stage's fallback
// chain is over quota or failing. The caller degrades the job to a pending
// review item instead of dropping it.
var ErrUnavailable = errors.New("no llm profile available")

const (
	stageAttempts = 2
	retryDelay    = 500 * time.Millisecond

	// cacheWindowSize is the rolling sample count over which the stage-2
	// cache ratio is judged.
	cacheWindowSize = 20
	minCacheRatio   = 0.5
)

// ChatClient is the provider call surface, satisfied by *openai.Client.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Router resolves each stage against its profile fallback chain, enforcing
// daily quotas and recording per-call cost.
type Router struct {
	registry *config.ProfileRegistry
	chain    config.ProfileChain
	clients  map[string]ChatClient
	quota    *Quota
	prompter *Prompter

	mu          sync.Mutex
	cacheRatios []float64
}

// NewRouter builds one provider client per profile in the active chain.
// Stage-1 and stage-2 profiles authenticate with their own keys.
func NewRouter(cfg *config.Config, registry *config.ProfileRegistry, quota *Quota, prompter *Prompter) (*Router, error) {
	chain, ok := registry.Chain(cfg.LLMProfile)
	if !ok {
		return nil, fmt.Errorf("unknown profile chain %q", cfg.LLMProfile)
	}

	r := &Router{
		registry: registry,
		chain:    chain,
		clients:  make(map[string]ChatClient),
		quota:    quota,
		prompter: prompter,
	}

	build := func(names []string, apiKey string) error {
		for _, name := range names {
			profile, ok := registry.Get(name)
			if !ok {
				return fmt.Errorf("chain references unknown profile %q", name)
			}
			clientCfg := openai.DefaultConfig(apiKey)
			if profile.BaseURL != "" {
				clientCfg.BaseURL = profile.BaseURL
			}
			r.clients[name] = openai.NewClientWithConfig(clientCfg)
		}
		return nil
	}
	if err := build(chain.Stage1, cfg.LLMStage1Key); err != nil {
		return nil, err
	}
	if err := build(chain.Stage2, cfg.LLMStage2Key); err != nil {
		return nil, err
	}
	return r, nil
}

// WithClient replaces the client for one profile. Test seam.
func (r *Router) WithClient(profile string, client ChatClient) *Router {
	r.clients[profile] = client
	return r
}

// Stage1 produces the creative draft from the persona, the memory
// snapshot, and the coalesced user text.
func (r *Router) Stage1(ctx context.Context, snapshot *memory.Context, coalesced, localTime string) (string, models.LLMCallRecord, error) {
	messages := r.prompter.Stage1Messages(snapshot, coalesced, localTime)
	resp, record, err := r.complete(ctx, r.chain.Stage1, messages)
	if err != nil {
		return "", models.LLMCallRecord{}, err
	}
	return resp, record, nil
}

// Stage2 refines the draft into delivery bubbles and feeds the measured
// cache ratio back into prefix health tracking.
func (r *Router) Stage2(ctx context.Context, coalesced, draft string, avoid []string) ([]string, models.LLMCallRecord, error) {
	messages := r.prompter.Stage2Messages(coalesced, draft, avoid)
	resp, record, err := r.complete(ctx, r.chain.Stage2, messages)
	if err != nil {
		return nil, models.LLMCallRecord{}, err
	}

	r.observeCacheRatio(record)

	bubbles := ParseBubbles(resp)
	if len(bubbles) == 0 {
		return nil, record, fmt.Errorf("stage2 returned empty output")
	}
	return bubbles, record, nil
}

// complete walks the fallback chain: skip over-quota profiles, retry
// transient provider errors, move on when a profile keeps failing.
func (r *Router) complete(ctx context.Context, profiles []string, messages []openai.ChatCompletionMessage) (string, models.LLMCallRecord, error) {
	estimate := r.estimateTokens(messages)

	var lastErr error
	for _, name := range profiles {
		profile, ok := r.registry.Get(name)
		if !ok {
			return "", models.LLMCallRecord{}, fmt.Errorf("unknown profile %q", name)
		}

		allowed, err := r.quota.Allow(ctx, profile, estimate+profile.MaxTokens)
		if err != nil {
			return "", models.LLMCallRecord{}, err
		}
		if !allowed {
			slog.Warn("Profile over daily quota, falling back",
				"profile", name, "provider", profile.Provider, "model", profile.Model)
			continue
		}

		content, record, err := r.call(ctx, name, profile, messages)
		if err != nil {
			lastErr = err
			slog.Warn("Profile call failed, falling back", "profile", name, "error", err)
			continue
		}

		if qerr := r.quota.Record(ctx, profile, record.PromptTokens+record.CompletionTokens); qerr != nil {
			slog.Warn("Failed to record quota usage", "profile", name, "error", qerr)
		}
		return content, record, nil
	}

	if lastErr != nil {
		return "", models.LLMCallRecord{}, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
	}
	return "", models.LLMCallRecord{}, ErrUnavailable
}

func (r *Router) call(ctx context.Context, name string, profile *config.ModelProfile, messages []openai.ChatCompletionMessage) (string, models.LLMCallRecord, error) {
	client, ok := r.clients[name]
	if !ok {
		return "", models.LLMCallRecord{}, fmt.Errorf("no client for profile %q", name)
	}

	req := openai.ChatCompletionRequest{
		Model:       profile.Model,
		Messages:    messages,
		Temperature: profile.Temperature,
		MaxTokens:   profile.MaxTokens,
		Seed:        profile.Seed,
	}

	start := time.Now()
	resp, err := retry.DoWithData(
		func() (openai.ChatCompletionResponse, error) {
			return client.CreateChatCompletion(ctx, req)
		},
		retry.Context(ctx),
		retry.Attempts(stageAttempts),
		retry.Delay(retryDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isTransient),
	)
	if err != nil {
		return "", models.LLMCallRecord{}, fmt.Errorf("completion failed on %s/%s: %w", profile.Provider, profile.Model, err)
	}
	if len(resp.Choices) == 0 {
		return "", models.LLMCallRecord{}, fmt.Errorf("empty response from %s/%s", profile.Provider, profile.Model)
	}

	cached := 0
	if resp.Usage.PromptTokensDetails != nil {
		cached = resp.Usage.PromptTokensDetails.CachedTokens
	}
	record := models.LLMCallRecord{
		Provider:           profile.Provider,
		Model:              profile.Model,
		PromptTokens:       resp.Usage.PromptTokens,
		CompletionTokens:   resp.Usage.CompletionTokens,
		CachedPromptTokens: cached,
		CostUSD:            cost(profile, resp.Usage.PromptTokens, cached, resp.Usage.CompletionTokens),
		LatencyMS:          time.Since(start).Milliseconds(),
	}
	return resp.Choices[0].Message.Content, record, nil
}

// cost prices one call in USD. Profile prices are per million tokens.
func cost(profile *config.ModelProfile, promptTokens, cachedTokens, completionTokens int) float64 {
	fresh := promptTokens - cachedTokens
	if fresh < 0 {
		fresh = 0
	}
	return (profile.PriceIn*float64(fresh) +
		profile.PriceCachedIn*float64(cachedTokens) +
		profile.PriceOut*float64(completionTokens)) / 1e6
}

func (r *Router) estimateTokens(messages []openai.ChatCompletionMessage) int {
	total := 0
	for _, m := range messages {
		total += r.prompter.CountTokens(m.Content)
	}
	return total
}

// observeCacheRatio tracks the stage-2 cached-input fraction over a rolling
// window. A degraded ratio means the prefix stopped being byte-stable, so
// it is rebuilt in canonical form.
func (r *Router) observeCacheRatio(record models.LLMCallRecord) {
	if record.PromptTokens == 0 {
		return
	}
	ratio := float64(record.CachedPromptTokens) / float64(record.PromptTokens)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.cacheRatios = append(r.cacheRatios, ratio)
	if len(r.cacheRatios) < cacheWindowSize {
		return
	}

	var sum float64
	for _, v := range r.cacheRatios {
		sum += v
	}
	avg := sum / float64(len(r.cacheRatios))
	r.cacheRatios = r.cacheRatios[:0]

	if avg < minCacheRatio {
		slog.Warn("Stage-2 cache ratio degraded, rebuilding stable prefix",
			"avg_ratio", avg, "window", cacheWindowSize)
		r.prompter.Rebuild()
	}
}

// isTransient reports whether a provider error is worth retrying: rate
// limits, server-side failures, and transport errors.
func isTransient(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == 429 || apiErr.HTTPStatusCode >= 500
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	// Anything without an API status is a transport-level failure.
	return true
}
