package memory

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/halfmoonlabs/chatloop/pkg/models"
)

// TemporalSummary is the deterministic digest of pre-recent history. It is
// rebuilt from the turns on every read, never stored.
type TemporalSummary struct {
	Text             string   `json:"text"`
	Topics           []string `json:"topics,omitempty"`
	AssistantPhrases []string `json:"assistant_phrases,omitempty"`
}

const (
	maxTopics          = 8
	maxBucketTopics    = 3
	minTopicOccurrence = 2
)

// stopwords excluded from topic extraction. English plus the Spanish set
// the persona's audience actually writes in.
var stopwords = map[string]bool{
	"the": true, "and": true, "you": true, "your": true, "for": true,
	"are": true, "was": true, "but": true, "not": true, "with": true,
	"that": true, "this": true, "have": true, "had": true, "what": true,
	"when": true, "how": true, "can": true, "just": true, "like": true,
	"about": true, "really": true, "there": true, "will": true, "its": true,
	"dont": true, "them": true, "then": true, "than": true, "out": true,
	"get": true, "got": true, "too": true, "very": true, "much": true,
	"que": true, "los": true, "las": true, "por": true, "para": true,
	"pero": true, "como": true, "esta": true, "este": true, "con": true,
	"una": true, "uno": true, "nos": true, "muy": true, "bien": true,
}

// BuildSummary derives the temporal summary from older (pre-recent) turns
// and the anti-repetition phrase list from the tail of the full history.
// Pure function of its inputs, so the same history yields the same digest.
func BuildSummary(older, full []models.ConversationTurn, now time.Time, antiRepeatWindow int) TemporalSummary {
	return TemporalSummary{
		Text:             bucketDigest(older, now),
		Topics:           extractTopics(older, maxTopics),
		AssistantPhrases: recentAssistantPhrases(full, antiRepeatWindow),
	}
}

// bucketOrder lists the time buckets oldest-first, which is the order the
// digest is rendered in.
var bucketOrder = []string{"earlier", "last week", "6 days ago", "5 days ago", "4 days ago", "3 days ago", "2 days ago", "yesterday", "today"}

func bucketDigest(turns []models.ConversationTurn, now time.Time) string {
	if len(turns) == 0 {
		return ""
	}

	buckets := make(map[string][]models.ConversationTurn)
	for _, t := range turns {
		b := timeBucket(t.Timestamp, now)
		buckets[b] = append(buckets[b], t)
	}

	var parts []string
	for _, name := range bucketOrder {
		group, ok := buckets[name]
		if !ok {
			continue
		}
		topics := extractTopics(group, maxBucketTopics)
		line := fmt.Sprintf("%s: %d turns", name, len(group))
		if len(topics) > 0 {
			line += " about " + strings.Join(topics, ", ")
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, "; ")
}

// timeBucket assigns a turn to a coarse relative-time bucket using calendar
// days in now's location.
func timeBucket(ts, now time.Time) string {
	ts = ts.In(now.Location())
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	days := int(midnight.Sub(ts).Hours()/24) + 1
	if !ts.Before(midnight) {
		days = 0
	}

	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "yesterday"
	case days <= 6:
		return fmt.Sprintf("%d days ago", days)
	case days <= 13:
		return "last week"
	default:
		return "earlier"
	}
}

// extractTopics returns the most frequent non-stopword tokens, ordered by
// count descending with alphabetical tie-break.
func extractTopics(turns []models.ConversationTurn, limit int) []string {
	counts := make(map[string]int)
	for _, t := range turns {
		for _, raw := range strings.Fields(strings.ToLower(t.Content)) {
			word := strings.Trim(raw, ".,!?;:\"'()¿¡")
			if len(word) < 3 || stopwords[word] {
				continue
			}
			counts[word]++
		}
	}

	type wc struct {
		word  string
		count int
	}
	var ranked []wc
	for w, c := range counts {
		if c >= minTopicOccurrence {
			ranked = append(ranked, wc{w, c})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].word < ranked[j].word
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	topics := make([]string, len(ranked))
	for i, r := range ranked {
		topics[i] = r.word
	}
	return topics
}

// recentAssistantPhrases collects assistant bubble texts from the last
// window turns. The refinement stage receives these as an avoid list.
func recentAssistantPhrases(full []models.ConversationTurn, window int) []string {
	start := len(full) - window
	if start < 0 {
		start = 0
	}

	seen := make(map[string]bool)
	var phrases []string
	for _, t := range full[start:] {
		if t.Role != models.RoleAssistant {
			continue
		}
		bubbles := t.Bubbles
		if len(bubbles) == 0 {
			bubbles = []string{t.Content}
		}
		for _, b := range bubbles {
			b = strings.TrimSpace(b)
			if b == "" || seen[b] {
				continue
			}
			seen[b] = true
			phrases = append(phrases, b)
		}
	}
	return phrases
}
