// Package memory owns all per-user conversation state: the bounded history
// window, the profile blob, and the derived temporal summary. No other
// component reads or writes these keys directly.
package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/halfmoonlabs/chatloop/pkg/models"
)

// ErrConflict is returned when a concurrent writer won the version race
// twice in a row.
var ErrConflict = errors.New("memory write conflict")

const (
	histKeyPrefix    = "mem:"
	profileKeySuffix = ":profile"
)

// essentialProfileKeys survive level-1 compression.
var essentialProfileKeys = map[string]bool{
	"name":                   true,
	"pronouns":               true,
	"location":               true,
	"preferences":            true,
	"aggressive_compression": true,
}

// record is the stored history document. The version counter backs
// optimistic concurrency: writers re-read and retry once on conflict.
type record struct {
	Version int64                     `json:"version"`
	History []models.ConversationTurn `json:"history"`
}

// Context is the snapshot handed to the generation stages.
type Context struct {
	Profile    map[string]string         `json:"profile"`
	Recent     []models.ConversationTurn `json:"recent"`
	Summary    TemporalSummary           `json:"summary"`
	TotalTurns int                       `json:"total_turns"`
}

// Options tunes the store bounds. Zero values fall back to the defaults.
type Options struct {
	MaxHistory       int
	RecentN          int
	MaxContextBytes  int
	AntiRepeatWindow int
	HistoryTTL       time.Duration
	ProfileTTL       time.Duration
}

func (o *Options) applyDefaults() {
	if o.MaxHistory <= 0 {
		o.MaxHistory = 50
	}
	if o.RecentN <= 0 {
		o.RecentN = 10
	}
	if o.MaxContextBytes <= 0 {
		o.MaxContextBytes = 100 * 1024
	}
	if o.AntiRepeatWindow <= 0 {
		o.AntiRepeatWindow = 20
	}
	if o.HistoryTTL <= 0 {
		o.HistoryTTL = 7 * 24 * time.Hour
	}
	if o.ProfileTTL <= 0 {
		o.ProfileTTL = 30 * 24 * time.Hour
	}
}

// Store is the Redis-backed memory manager. Safe for concurrent use.
type Store struct {
	rdb  *redis.Client
	opts Options
	now  func() time.Time
}

// NewStore creates a memory store over the given Redis client.
func NewStore(rdb *redis.Client, opts Options) *Store {
	opts.applyDefaults()
	return &Store{rdb: rdb, opts: opts, now: time.Now}
}

func histKey(userID int64) string {
	return fmt.Sprintf("%s%d", histKeyPrefix, userID)
}

func profileKey(userID int64) string {
	return fmt.Sprintf("%s%d%s", histKeyPrefix, userID, profileKeySuffix)
}

// GetContext returns a consistent snapshot: profile, the last RecentN turns,
// and the temporal summary derived from everything before them.
func (s *Store) GetContext(ctx context.Context, userID int64) (*Context, error) {
	rec, err := s.loadRecord(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	split := len(rec.History) - s.opts.RecentN
	if split < 0 {
		split = 0
	}
	older := rec.History[:split]
	recent := rec.History[split:]

	return &Context{
		Profile:    profile,
		Recent:     recent,
		Summary:    BuildSummary(older, rec.History, s.now(), s.opts.AntiRepeatWindow),
		TotalTurns: len(rec.History),
	}, nil
}

// AppendUserTurn appends one user turn, trimming under the history bounds.
func (s *Store) AppendUserTurn(ctx context.Context, userID int64, text string) error {
	return s.appendTurn(ctx, userID, models.ConversationTurn{
		Role:      models.RoleUser,
		Content:   text,
		Timestamp: s.now(),
	})
}

// AppendAssistantTurn appends the delivered bubbles as one assistant turn.
func (s *Store) AppendAssistantTurn(ctx context.Context, userID int64, bubbles []string) error {
	return s.appendTurn(ctx, userID, models.ConversationTurn{
		Role:      models.RoleAssistant,
		Content:   strings.Join(bubbles, "\n"),
		Timestamp: s.now(),
		Bubbles:   bubbles,
	})
}

// SetProfile stores one profile key and refreshes the profile TTL.
func (s *Store) SetProfile(ctx context.Context, userID int64, key, value string) error {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return err
	}
	profile[key] = value
	return s.saveProfile(ctx, userID, profile)
}

// DeleteUser erases all memory for the user. Part of the GDPR cascade.
func (s *Store) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.rdb.Del(ctx, histKey(userID), profileKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete memory for user %d: %w", userID, err)
	}
	return nil
}

// appendTurn runs the insert-then-trim cycle under optimistic concurrency.
// A lost version race is retried once, then surfaces as ErrConflict.
func (s *Store) appendTurn(ctx context.Context, userID int64, turn models.ConversationTurn) error {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		err := s.rdb.Watch(ctx, func(tx *redis.Tx) error {
			rec, err := loadRecordTx(ctx, tx, userID)
			if err != nil {
				return err
			}
			profile, err := loadProfileTx(ctx, tx, userID)
			if err != nil {
				return err
			}

			rec.History = append(rec.History, turn)
			if over := len(rec.History) - s.opts.MaxHistory; over > 0 {
				rec.History = rec.History[over:]
			}
			profileDirty := s.compress(rec, profile)
			rec.Version++

			payload, err := json.Marshal(rec)
			if err != nil {
				return fmt.Errorf("failed to marshal memory record: %w", err)
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, histKey(userID), payload, s.opts.HistoryTTL)
				if profileDirty {
					profPayload, merr := json.Marshal(profile)
					if merr != nil {
						return fmt.Errorf("failed to marshal profile: %w", merr)
					}
					pipe.Set(ctx, profileKey(userID), profPayload, s.opts.ProfileTTL)
				}
				return nil
			})
			return err
		}, histKey(userID), profileKey(userID))

		if err == nil {
			return nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
		lastErr = err
		slog.Debug("Memory write lost version race, retrying", "user_id", userID)
	}
	return fmt.Errorf("%w for user %d: %v", ErrConflict, userID, lastErr)
}

// compress enforces the serialized-size bound with progressively harsher
// levels. Returns whether the profile was modified.
func (s *Store) compress(rec *record, profile map[string]string) bool {
	if s.recordSize(rec, profile) <= s.opts.MaxContextBytes {
		return false
	}

	// Level 1: drop non-essential profile keys.
	dirty := false
	for k := range profile {
		if !essentialProfileKeys[k] {
			delete(profile, k)
			dirty = true
		}
	}
	if s.recordSize(rec, profile) <= s.opts.MaxContextBytes {
		return dirty
	}

	// Level 2: collapse consecutive same-role turns older than the recent
	// window, keeping the first and last sentence of each run.
	split := len(rec.History) - s.opts.RecentN
	if split > 0 {
		rec.History = append(collapseRuns(rec.History[:split]), rec.History[split:]...)
	}
	if s.recordSize(rec, profile) <= s.opts.MaxContextBytes {
		return dirty
	}

	// Level 3: replace all pre-recent history with the summary text.
	split = len(rec.History) - s.opts.RecentN
	if split > 0 {
		summary := BuildSummary(rec.History[:split], rec.History, s.now(), s.opts.AntiRepeatWindow)
		condensed := models.ConversationTurn{
			Role:      models.RoleAssistant,
			Content:   summary.Text,
			Timestamp: rec.History[split-1].Timestamp,
		}
		rec.History = append([]models.ConversationTurn{condensed}, rec.History[split:]...)
	}
	profile["aggressive_compression"] = "true"
	if s.recordSize(rec, profile) <= s.opts.MaxContextBytes {
		return true
	}

	// Final resort: the recent window alone is over the bound. Drop the
	// oldest remaining turns until the record fits, always keeping the
	// newest one.
	for len(rec.History) > 1 && s.recordSize(rec, profile) > s.opts.MaxContextBytes {
		rec.History = rec.History[1:]
	}
	return true
}

func (s *Store) recordSize(rec *record, profile map[string]string) int {
	h, _ := json.Marshal(rec)
	p, _ := json.Marshal(profile)
	return len(h) + len(p)
}

// collapseRuns merges consecutive same-role turns into one turn holding the
// first sentence of the first and the last sentence of the last.
func collapseRuns(turns []models.ConversationTurn) []models.ConversationTurn {
	if len(turns) == 0 {
		return turns
	}
	out := make([]models.ConversationTurn, 0, len(turns))
	i := 0
	for i < len(turns) {
		j := i
		for j+1 < len(turns) && turns[j+1].Role == turns[i].Role {
			j++
		}
		if j == i {
			out = append(out, turns[i])
		} else {
			first := firstSentence(turns[i].Content)
			last := lastSentence(turns[j].Content)
			content := first
			if last != "" && last != first {
				content = first + " ... " + last
			}
			out = append(out, models.ConversationTurn{
				Role:      turns[i].Role,
				Content:   content,
				Timestamp: turns[j].Timestamp,
			})
		}
		i = j + 1
	}
	return out
}

func firstSentence(text string) string {
	if idx := strings.IndexAny(text, ".!?\n"); idx >= 0 {
		return strings.TrimSpace(text[:idx+1])
	}
	return strings.TrimSpace(text)
}

func lastSentence(text string) string {
	s := strings.TrimSpace(text)
	trimmed := strings.TrimRight(s, ".!?\n")
	if idx := strings.LastIndexAny(trimmed, ".!?\n"); idx >= 0 {
		return strings.TrimSpace(s[idx+1:])
	}
	return s
}

func (s *Store) loadRecord(ctx context.Context, userID int64) (*record, error) {
	payload, err := s.rdb.Get(ctx, histKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return &record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load memory for user %d: %w", userID, err)
	}
	var rec record
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal memory for user %d: %w", userID, err)
	}
	return &rec, nil
}

func loadRecordTx(ctx context.Context, tx *redis.Tx, userID int64) (*record, error) {
	payload, err := tx.Get(ctx, histKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return &record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load memory for user %d: %w", userID, err)
	}
	var rec record
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal memory for user %d: %w", userID, err)
	}
	return &rec, nil
}

func (s *Store) loadProfile(ctx context.Context, userID int64) (map[string]string, error) {
	payload, err := s.rdb.Get(ctx, profileKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile for user %d: %w", userID, err)
	}
	var profile map[string]string
	if err := json.Unmarshal([]byte(payload), &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile for user %d: %w", userID, err)
	}
	return profile, nil
}

func loadProfileTx(ctx context.Context, tx *redis.Tx, userID int64) (map[string]string, error) {
	payload, err := tx.Get(ctx, profileKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile for user %d: %w", userID, err)
	}
	var profile map[string]string
	if err := json.Unmarshal([]byte(payload), &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile for user %d: %w", userID, err)
	}
	return profile, nil
}

func (s *Store) saveProfile(ctx context.Context, userID int64, profile map[string]string) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := s.rdb.Set(ctx, profileKey(userID), payload, s.opts.ProfileTTL).Err(); err != nil {
		return fmt.Errorf("failed to save profile for user %d: %w", userID, err)
	}
	return nil
}
