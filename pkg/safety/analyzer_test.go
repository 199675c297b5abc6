package safety

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halfmoonlabs/chatloop/pkg/models"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases and strips punctuation",
			input:    "Where DO you LIVE?!",
			expected: "where do you live",
		},
		{
			name:     "maps leet substitutions",
			input:    "l0v3 y0u",
			expected: "love you",
		},
		{
			name:     "strips diacritics",
			input:    "te quiero, cariño",
			expected: "te quiero carino",
		},
		{
			name:     "collapses symbol runs to one space",
			input:    "meet -- up!!!   now",
			expected: "meet up now",
		},
		{
			name:     "drops emoji",
			input:    "hi ❤️❤️ there",
			expected: "hi there",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestAnalyzer_Analyze(t *testing.T) {
	analyzer, err := NewAnalyzer()
	require.NoError(t, err)

	t.Run("clean text approves with zero risk", func(t *testing.T) {
		report := analyzer.Analyze("sounds good, talk tomorrow about the invoice")

		assert.Equal(t, 0.0, report.RiskScore)
		assert.Empty(t, report.Flags)
		assert.Equal(t, models.SafetyApprove, report.Recommendation)
	})

	t.Run("single keyword hit recommends review", func(t *testing.T) {
		report := analyzer.Analyze("honestly I think I love you")

		assert.InDelta(t, 0.2, report.RiskScore, 1e-9)
		assert.Equal(t, []string{"KEYWORD:loveyou"}, report.Flags)
		assert.Equal(t, models.SafetyReview, report.Recommendation)
	})

	t.Run("obfuscated keyword still matches", func(t *testing.T) {
		report := analyzer.Analyze("i l0v3 u so much")

		assert.Contains(t, report.Flags, "KEYWORD:loveyou")
	})

	t.Run("digit one folds to both l and i", func(t *testing.T) {
		report := analyzer.Analyze("i m1ss you so much")
		assert.Contains(t, report.Flags, "KEYWORD:missyou")

		report = analyzer.Analyze("ill k1ll myself")
		assert.Contains(t, report.Flags, "KEYWORD:selfharm")
	})

	t.Run("off platform and money asks are caught", func(t *testing.T) {
		report := analyzer.Analyze("text me on whatsapp and venmo me for the ticket")

		assert.Contains(t, report.Flags, "KEYWORD:offplatform")
		assert.Contains(t, report.Flags, "KEYWORD:paymentapp")
	})

	t.Run("three distinct hits flag the item", func(t *testing.T) {
		report := analyzer.Analyze("i luv u, where do u live? ❤️❤️❤️❤️")

		assert.InDelta(t, 0.6, report.RiskScore, 1e-9)
		assert.Contains(t, report.Flags, "KEYWORD:loveyou")
		assert.Contains(t, report.Flags, "PATTERN:address")
		assert.Contains(t, report.Flags, "EMOJI:romantic_density")
		assert.Equal(t, models.SafetyFlag, report.Recommendation)
	})

	t.Run("repeated variants of one lemma count once", func(t *testing.T) {
		report := analyzer.Analyze("love you love u luv u")

		assert.Equal(t, []string{"KEYWORD:loveyou"}, report.Flags)
		assert.InDelta(t, 0.2, report.RiskScore, 1e-9)
	})

	t.Run("ai self disclosure is caught", func(t *testing.T) {
		report := analyzer.Analyze("As an AI, I cannot feel emotions")

		assert.Contains(t, report.Flags, "KEYWORD:asanai")
		assert.Contains(t, report.Flags, "KEYWORD:cannotfeel")
		assert.Contains(t, report.Flags, "PATTERN:ai_disclosure")
		assert.Equal(t, models.SafetyFlag, report.Recommendation)
	})

	t.Run("three hearts stay under the density threshold", func(t *testing.T) {
		report := analyzer.Analyze("hey 😍💕❤️")

		assert.NotContains(t, report.Flags, "EMOJI:romantic_density")
	})

	t.Run("mixed heart family counts toward density", func(t *testing.T) {
		report := analyzer.Analyze("hey 😍💕❤️💋")

		assert.Contains(t, report.Flags, "EMOJI:romantic_density")
	})

	t.Run("risk score caps at one", func(t *testing.T) {
		report := analyzer.Analyze(
			"i love you, marry me, be my girlfriend, send me a pic, " +
				"where do u live, whats your number ❤️❤️❤️❤️❤️")

		assert.Equal(t, 1.0, report.RiskScore)
		assert.Equal(t, models.SafetyFlag, report.Recommendation)
	})
}

func TestNormalizeVariants(t *testing.T) {
	assert.Equal(t, []string{"love you"}, NormalizeVariants("Love you!"))

	variants := NormalizeVariants("k1ll")
	assert.Contains(t, variants, "klll")
	assert.Contains(t, variants, "kill")
}

func TestAnalyzer_Deterministic(t *testing.T) {
	analyzer, err := NewAnalyzer()
	require.NoError(t, err)

	text := "i luv u, where do u live? ❤️❤️❤️❤️ lets meet up"

	first := analyzer.Analyze(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, analyzer.Analyze(text))
	}
}

func TestAnalyzer_PatternsCompile(t *testing.T) {
	_, err := NewAnalyzer()
	require.NoError(t, err)

	// Every registry pattern must carry a distinct id.
	seen := make(map[string]bool)
	for _, p := range builtinPatterns {
		assert.False(t, seen[p.ID], "duplicate pattern id %s", p.ID)
		seen[p.ID] = true
	}
}

func TestAnalyzer_LongInput(t *testing.T) {
	analyzer, err := NewAnalyzer()
	require.NoError(t, err)

	// A long benign message must not trip anything.
	report := analyzer.Analyze(strings.Repeat("the weather is nice today. ", 500))
	assert.Equal(t, models.SafetyApprove, report.Recommendation)
}
