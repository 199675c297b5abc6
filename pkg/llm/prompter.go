// Package llm implements the two-stage generation path: a creative draft
// stage and a cache-shaped refinement stage, routed across model profiles
// with daily quota fallback and per-call cost accounting.
package llm

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
	openai "github.com/sashabaranov/go-openai"

	"github.com/halfmoonlabs/chatloop/pkg/config"
	"github.com/halfmoonlabs/chatloop/pkg/memory"
)

// BubbleSentinel delimits bubbles in the stage-2 model output.
const BubbleSentinel = "<|bubble|>"

// MaxBubbles bounds how many bubbles one reply is split into.
const MaxBubbles = 4

// minPrefixTokens is the floor for the stage-2 stable prefix. Providers
// only serve prompt-cache discounts above their minimum cacheable length.
const minPrefixTokens = 1024

const tokenEncoding = "cl100k_base"

// stage2Instructions is the static tail of the stable prefix. Never
// interpolated, so the prefix stays byte-identical across requests.
const stage2Instructions = `
You revise draft replies so they read like the persona above texting on her phone.
Keep the meaning of the draft. Fix tone, length, and phrasing.
Never mention being artificial, never agree to meet, never share personal data.
Split the reply into 1 to ` + "4" + ` short chat bubbles.
Separate bubbles with the exact delimiter ` + BubbleSentinel + ` and output nothing else.
`

// Prompter owns the stage-2 stable prefix and the message shapes for both
// stages. Safe for concurrent use; Rebuild swaps the prefix atomically.
type Prompter struct {
	constitution string
	traits       string
	enc          *tiktoken.Tiktoken

	mu           sync.RWMutex
	prefix       string
	prefixTokens int
}

// NewPrompter canonicalizes the persona constitution into the stage-2
// stable prefix and verifies it clears the cacheable-length floor.
func NewPrompter(persona *config.Persona) (*Prompter, error) {
	enc, err := tiktoken.GetEncoding(tokenEncoding)
	if err != nil {
		return nil, fmt.Errorf("failed to load token encoding: %w", err)
	}

	p := &Prompter{
		constitution: persona.Constitution,
		traits:       persona.Traits,
		enc:          enc,
	}
	p.rebuild()
	return p, nil
}

// StablePrefix returns the current stage-2 system prompt. Byte-identical
// across calls until Rebuild.
func (p *Prompter) StablePrefix() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.prefix
}

// PrefixTokens returns the token length of the stable prefix.
func (p *Prompter) PrefixTokens() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.prefixTokens
}

// Rebuild re-serializes the prefix in canonical form. Called by the router
// when the measured cache ratio degrades.
func (p *Prompter) Rebuild() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rebuild()
	slog.Info("Rebuilt stage-2 stable prefix", "tokens", p.prefixTokens)
}

func (p *Prompter) rebuild() {
	body := canonicalize(p.constitution)
	if p.traits != "" {
		body += "\n\n" + canonicalize(p.traits)
	}

	prefix := body + "\n" + strings.TrimRight(stage2Instructions, "\n") + "\n"

	// Pad deterministically up to the cacheable floor by restating the
	// constitution. Short personas would otherwise never hit the cache.
	for len(p.enc.Encode(prefix, nil, nil)) < minPrefixTokens {
		prefix += "\nPersona reference, restated verbatim:\n" + canonicalize(p.constitution) + "\n"
	}

	p.prefix = prefix
	p.prefixTokens = len(p.enc.Encode(prefix, nil, nil))
}

// canonicalize normalizes line endings and trailing whitespace so two
// loads of the same file produce the same bytes.
func canonicalize(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// Stage1Messages shapes the creative-draft request: persona system prompt
// with a local-time line, the temporal summary, the recent window, and the
// coalesced user text.
func (p *Prompter) Stage1Messages(snapshot *memory.Context, coalesced, localTime string) []openai.ChatCompletionMessage {
	var sys strings.Builder
	sys.WriteString(canonicalize(p.constitution))
	if p.traits != "" {
		sys.WriteString("\n\n")
		sys.WriteString(canonicalize(p.traits))
	}
	sys.WriteString("\n\nCurrent local time: ")
	sys.WriteString(localTime)
	if name, ok := snapshot.Profile["name"]; ok {
		sys.WriteString("\nYou are talking to ")
		sys.WriteString(name)
		sys.WriteString(".")
	}
	if snapshot.Summary.Text != "" {
		sys.WriteString("\n\nEarlier conversation: ")
		sys.WriteString(snapshot.Summary.Text)
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: sys.String()},
	}
	for _, turn := range snapshot.Recent {
		role := openai.ChatMessageRoleUser
		if turn.Role != "user" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: turn.Content})
	}
	return append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: coalesced,
	})
}

// Stage2Messages shapes the refinement request: the stable prefix as the
// system message and a compact dynamic suffix. Field order in the suffix
// is fixed.
func (p *Prompter) Stage2Messages(coalesced, draft string, avoid []string) []openai.ChatCompletionMessage {
	var suffix strings.Builder
	suffix.WriteString("User message:\n")
	suffix.WriteString(coalesced)
	suffix.WriteString("\n\nDraft reply:\n")
	suffix.WriteString(draft)
	if len(avoid) > 0 {
		suffix.WriteString("\n\nDo not reuse these recent phrasings:\n")
		for _, phrase := range avoid {
			suffix.WriteString("- ")
			suffix.WriteString(phrase)
			suffix.WriteString("\n")
		}
	}

	return []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: p.StablePrefix()},
		{Role: openai.ChatMessageRoleUser, Content: suffix.String()},
	}
}

// ParseBubbles splits stage-2 output on the sentinel into 1 to MaxBubbles
// non-empty bubbles. Overflow folds into the last bubble; sentinel-free
// output becomes a single bubble.
func ParseBubbles(raw string) []string {
	var bubbles []string
	for _, part := range strings.Split(raw, BubbleSentinel) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			bubbles = append(bubbles, trimmed)
		}
	}
	if len(bubbles) == 0 {
		if trimmed := strings.TrimSpace(raw); trimmed != "" {
			return []string{trimmed}
		}
		return nil
	}
	if len(bubbles) > MaxBubbles {
		tail := strings.Join(bubbles[MaxBubbles-1:], " ")
		bubbles = append(bubbles[:MaxBubbles-1], tail)
	}
	return bubbles
}

// CountTokens measures text under the router's shared encoding.
func (p *Prompter) CountTokens(text string) int {
	return len(p.enc.Encode(text, nil, nil))
}
