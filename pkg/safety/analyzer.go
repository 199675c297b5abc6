// Package safety implements the deterministic content analyzer that runs
// over every generated reply before it reaches a reviewer. No model calls:
// normalization, keyword variants, regex families, and emoji density only,
// so the same text always produces the same report.
package safety

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/halfmoonlabs/chatloop/pkg/models"
)

// riskPerHit is the score added per distinct flag, capped at 1.0.
const riskPerHit = 0.2

// heartDensityThreshold is the heart-emoji count at which a single
// EMOJI:romantic_density flag is raised.
const heartDensityThreshold = 4

// Analyzer is the compiled rule registry. Safe for concurrent use.
type Analyzer struct {
	keywords []keywordEntry
	patterns []compiledPattern
	hearts   map[rune]struct{}
}

type compiledPattern struct {
	id string
	re *regexp.Regexp
}

// NewAnalyzer compiles the built-in rule set. Fails if any pattern does
// not compile, which only happens when the registry itself is broken.
func NewAnalyzer() (*Analyzer, error) {
	a := &Analyzer{
		keywords: builtinKeywords,
		patterns: make([]compiledPattern, 0, len(builtinPatterns)),
		hearts:   make(map[rune]struct{}, len(heartEmoji)),
	}
	for _, p := range builtinPatterns {
		re, err := regexp.Compile(p.Pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to compile safety pattern %q: %w", p.ID, err)
		}
		a.patterns = append(a.patterns, compiledPattern{id: p.ID, re: re})
	}
	for _, r := range heartEmoji {
		a.hearts[r] = struct{}{}
	}
	return a, nil
}

// Analyze scores text and returns the report. Flags are emitted in a fixed
// registry order so identical input always yields an identical report.
// Analyzer faults never block the pipeline: a panic degrades to maximum
// risk with an ANALYZER_ERROR flag.
func (a *Analyzer) Analyze(text string) (report models.SafetyReport) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Safety analyzer panicked, failing closed", "panic", r)
			report = models.SafetyReport{
				RiskScore:      1.0,
				Flags:          []string{"ANALYZER_ERROR"},
				Recommendation: models.SafetyFlag,
			}
		}
	}()

	// Emoji density is counted on the raw text; normalization strips emoji.
	hearts := a.countHearts(text)
	normalized := NormalizeVariants(text)

	var flags []string
	for _, kw := range a.keywords {
		if containsAny(normalized, kw.Variants) {
			flags = append(flags, "KEYWORD:"+kw.Lemma)
		}
	}
	for _, p := range a.patterns {
		if matchesAny(normalized, p.re) {
			flags = append(flags, "PATTERN:"+p.id)
		}
	}
	if hearts >= heartDensityThreshold {
		flags = append(flags, "EMOJI:romantic_density")
	}

	risk := riskPerHit * float64(len(flags))
	if risk > 1.0 {
		risk = 1.0
	}

	return models.SafetyReport{
		RiskScore:      risk,
		Flags:          flags,
		Recommendation: recommend(len(flags)),
	}
}

func containsAny(texts, subs []string) bool {
	for _, t := range texts {
		for _, sub := range subs {
			if strings.Contains(t, sub) {
				return true
			}
		}
	}
	return false
}

func matchesAny(texts []string, re *regexp.Regexp) bool {
	for _, t := range texts {
		if re.MatchString(t) {
			return true
		}
	}
	return false
}

func (a *Analyzer) countHearts(text string) int {
	n := 0
	for _, r := range text {
		if _, ok := a.hearts[r]; ok {
			n++
		}
	}
	return n
}

func recommend(hits int) string {
	switch {
	case hits == 0:
		return models.SafetyApprove
	case hits <= 2:
		return models.SafetyReview
	default:
		return models.SafetyFlag
	}
}
