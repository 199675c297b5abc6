package memory

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halfmoonlabs/chatloop/pkg/models"
)

func newTestStore(t *testing.T, opts Options) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewStore(rdb, opts), mr
}

func TestStore_AppendAndGetContext(t *testing.T) {
	store, _ := newTestStore(t, Options{RecentN: 3})
	ctx := context.Background()

	require.NoError(t, store.AppendUserTurn(ctx, 42, "hey :)"))
	require.NoError(t, store.AppendAssistantTurn(ctx, 42, []string{"hey!", "how's your day?"}))

	snap, err := store.GetContext(ctx, 42)
	require.NoError(t, err)

	assert.Equal(t, 2, snap.TotalTurns)
	require.Len(t, snap.Recent, 2)
	assert.Equal(t, models.RoleUser, snap.Recent[0].Role)
	assert.Equal(t, "hey :)", snap.Recent[0].Content)
	assert.Equal(t, models.RoleAssistant, snap.Recent[1].Role)
	assert.Equal(t, []string{"hey!", "how's your day?"}, snap.Recent[1].Bubbles)
}

func TestStore_HistoryTrimsToMax(t *testing.T) {
	store, _ := newTestStore(t, Options{MaxHistory: 5, RecentN: 2})
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		require.NoError(t, store.AppendUserTurn(ctx, 7, fmt.Sprintf("message %d", i)))
	}

	snap, err := store.GetContext(ctx, 7)
	require.NoError(t, err)

	assert.Equal(t, 5, snap.TotalTurns)
	require.Len(t, snap.Recent, 2)
	assert.Equal(t, "message 11", snap.Recent[1].Content)
}

func TestStore_GetContextEmptyUser(t *testing.T) {
	store, _ := newTestStore(t, Options{})

	snap, err := store.GetContext(context.Background(), 999)
	require.NoError(t, err)

	assert.Zero(t, snap.TotalTurns)
	assert.Empty(t, snap.Recent)
	assert.Empty(t, snap.Summary.Text)
	assert.Empty(t, snap.Profile)
}

func TestStore_Profile(t *testing.T) {
	store, _ := newTestStore(t, Options{})
	ctx := context.Background()

	require.NoError(t, store.SetProfile(ctx, 42, "name", "Dana"))
	require.NoError(t, store.SetProfile(ctx, 42, "favorite_food", "tacos"))

	snap, err := store.GetContext(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "Dana", snap.Profile["name"])
	assert.Equal(t, "tacos", snap.Profile["favorite_food"])
}

func TestStore_DeleteUser(t *testing.T) {
	store, mr := newTestStore(t, Options{})
	ctx := context.Background()

	require.NoError(t, store.AppendUserTurn(ctx, 42, "hello"))
	require.NoError(t, store.SetProfile(ctx, 42, "name", "Dana"))
	require.NoError(t, store.DeleteUser(ctx, 42))

	assert.False(t, mr.Exists("mem:42"))
	assert.False(t, mr.Exists("mem:42:profile"))

	snap, err := store.GetContext(ctx, 42)
	require.NoError(t, err)
	assert.Zero(t, snap.TotalTurns)
}

func TestStore_CompressionUnderSizeBound(t *testing.T) {
	// Tiny byte budget forces the compression ladder all the way down.
	// Roles alternate so level 2 has no same-role runs to collapse.
	store, _ := newTestStore(t, Options{MaxHistory: 30, RecentN: 4, MaxContextBytes: 4096})
	ctx := context.Background()

	require.NoError(t, store.SetProfile(ctx, 42, "name", "Dana"))
	require.NoError(t, store.SetProfile(ctx, 42, "scratch", strings.Repeat("x", 500)))

	long := strings.Repeat("we talked about the garden again. ", 20)
	for i := 0; i < 20; i++ {
		if i%2 == 0 {
			require.NoError(t, store.AppendUserTurn(ctx, 42, long))
		} else {
			require.NoError(t, store.AppendAssistantTurn(ctx, 42, []string{long}))
		}
	}

	snap, err := store.GetContext(ctx, 42)
	require.NoError(t, err)

	rec, err := store.loadRecord(ctx, 42)
	require.NoError(t, err)
	profile, err := store.loadProfile(ctx, 42)
	require.NoError(t, err)
	assert.LessOrEqual(t, store.recordSize(rec, profile), 4096)

	// Level 1 dropped the non-essential key, kept the essential one.
	assert.Equal(t, "Dana", snap.Profile["name"])
	assert.NotContains(t, snap.Profile, "scratch")
	// Level 3 left its marker.
	assert.Equal(t, "true", snap.Profile["aggressive_compression"])
	// The tail of the recent window survives intact.
	require.NotEmpty(t, snap.Recent)
	last := snap.Recent[len(snap.Recent)-1]
	assert.Equal(t, long, last.Content)
	assert.Equal(t, models.RoleAssistant, last.Role)
}

func TestStore_CompressionTrimsOversizedRecentWindow(t *testing.T) {
	// The recent window alone blows the byte budget, so the summary
	// rewrite cannot save it. The last ladder step drops the window's
	// oldest turns instead of leaving the record over the bound.
	store, _ := newTestStore(t, Options{MaxHistory: 10, RecentN: 6, MaxContextBytes: 2048})
	ctx := context.Background()

	long := strings.Repeat("a very long story about the weekend trip. ", 30)
	for i := 0; i < 6; i++ {
		require.NoError(t, store.AppendUserTurn(ctx, 42, long))
	}
	require.NoError(t, store.AppendAssistantTurn(ctx, 42, []string{"short reply"}))

	rec, err := store.loadRecord(ctx, 42)
	require.NoError(t, err)
	profile, err := store.loadProfile(ctx, 42)
	require.NoError(t, err)
	assert.LessOrEqual(t, store.recordSize(rec, profile), 2048)

	// The newest turn always survives.
	require.NotEmpty(t, rec.History)
	assert.Equal(t, "short reply", rec.History[len(rec.History)-1].Content)
}

func TestCollapseRuns(t *testing.T) {
	turns := []models.ConversationTurn{
		{Role: models.RoleUser, Content: "First thing. Middle part. Last thing."},
		{Role: models.RoleUser, Content: "Second message! With more. Final words here."},
		{Role: models.RoleAssistant, Content: "A reply."},
	}

	out := collapseRuns(turns)

	require.Len(t, out, 2)
	assert.Equal(t, models.RoleUser, out[0].Role)
	assert.Equal(t, "First thing. ... Final words here.", out[0].Content)
	assert.Equal(t, "A reply.", out[1].Content)
}

func TestTimeBucket(t *testing.T) {
	now := time.Date(2026, 8, 24, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		ts       time.Time
		expected string
	}{
		{"same morning", time.Date(2026, 8, 24, 8, 0, 0, 0, time.UTC), "today"},
		{"previous evening", time.Date(2026, 8, 23, 22, 0, 0, 0, time.UTC), "yesterday"},
		{"three days back", time.Date(2026, 8, 21, 12, 0, 0, 0, time.UTC), "3 days ago"},
		{"ten days back", time.Date(2026, 8, 14, 12, 0, 0, 0, time.UTC), "last week"},
		{"a month back", time.Date(2026, 7, 20, 12, 0, 0, 0, time.UTC), "earlier"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, timeBucket(tt.ts, now))
		})
	}
}

func TestBuildSummary(t *testing.T) {
	now := time.Date(2026, 8, 24, 15, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)

	older := []models.ConversationTurn{
		{Role: models.RoleUser, Content: "my garden is doing great", Timestamp: yesterday},
		{Role: models.RoleAssistant, Content: "tell me about the garden", Timestamp: yesterday},
		{Role: models.RoleUser, Content: "the garden has tomatoes now", Timestamp: now.Add(-time.Hour)},
	}
	full := append(older,
		models.ConversationTurn{
			Role: models.RoleAssistant, Content: "that sounds lovely",
			Bubbles: []string{"that sounds lovely", "send me updates"}, Timestamp: now,
		},
	)

	summary := BuildSummary(older, full, now, 20)

	assert.Contains(t, summary.Text, "yesterday: 2 turns")
	assert.Contains(t, summary.Text, "today: 1 turns")
	assert.Contains(t, summary.Topics, "garden")
	assert.Contains(t, summary.AssistantPhrases, "that sounds lovely")
	assert.Contains(t, summary.AssistantPhrases, "send me updates")

	// Deterministic: same inputs, same digest.
	assert.Equal(t, summary, BuildSummary(older, full, now, 20))
}

func TestRecentAssistantPhrases_Window(t *testing.T) {
	var full []models.ConversationTurn
	for i := 0; i < 30; i++ {
		full = append(full, models.ConversationTurn{
			Role:    models.RoleAssistant,
			Content: fmt.Sprintf("phrase %d", i),
		})
	}

	phrases := recentAssistantPhrases(full, 20)

	require.Len(t, phrases, 20)
	assert.Equal(t, "phrase 10", phrases[0])
	assert.Equal(t, "phrase 29", phrases[19])
}
