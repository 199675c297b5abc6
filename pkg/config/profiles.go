package config

import (
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Stage identifies which pipeline stage a model profile serves.
type Stage string

// Pipeline stages.
const (
	Stage1 Stage = "stage1" // creative draft
	Stage2 Stage = "stage2" // refinement / safety edit
)

// ModelProfile is one named provider/model bundle. Prices are USD per
// million tokens.
type ModelProfile struct {
	Provider      string  `yaml:"provider"`
	Model         string  `yaml:"model"`
	BaseURL       string  `yaml:"base_url,omitempty"`
	Temperature   float32 `yaml:"temperature"`
	MaxTokens     int     `yaml:"max_tokens"`
	Seed          *int    `yaml:"seed,omitempty"`
	PriceIn       float64 `yaml:"price_in"`
	PriceOut      float64 `yaml:"price_out"`
	PriceCachedIn float64 `yaml:"price_cached_in"`
	DailyTokenCap int64   `yaml:"daily_token_cap,omitempty"` // 0 = unlimited
}

// ProfileChain is an ordered fallback list per stage: the router tries
// each profile in order until one has quota left.
type ProfileChain struct {
	Stage1 []string `yaml:"stage1"`
	Stage2 []string `yaml:"stage2"`
}

// ProfileRegistry holds the merged built-in + user-defined profiles and
// chains, keyed by name.
type ProfileRegistry struct {
	Profiles map[string]*ModelProfile `yaml:"profiles"`
	Chains   map[string]ProfileChain  `yaml:"chains"`
}

// Get returns the profile registered under name.
func (r *ProfileRegistry) Get(name string) (*ModelProfile, bool) {
	p, ok := r.Profiles[name]
	return p, ok
}

// Chain returns the fallback chain registered under name.
func (r *ProfileRegistry) Chain(name string) (ProfileChain, bool) {
	c, ok := r.Chains[name]
	return c, ok
}

const profilesFile = "profiles.yaml"

// builtinProfiles returns the default registry: a free/low-cost stage-1
// model and a stronger cacheable stage-2 model.
func builtinProfiles() *ProfileRegistry {
	seed := 42
	return &ProfileRegistry{
		Profiles: map[string]*ModelProfile{
			"stage1-flash": {
				Provider:      "openrouter",
				Model:         "google/gemini-2.0-flash-exp:free",
				BaseURL:       "https://openrouter.ai/api/v1",
				Temperature:   0.8,
				MaxTokens:     1024,
				DailyTokenCap: 2_000_000,
			},
			"stage1-mini": {
				Provider:    "openai",
				Model:       "gpt-4o-mini",
				Temperature: 0.8,
				MaxTokens:   1024,
				PriceIn:     0.15,
				PriceOut:    0.60,
			},
			"stage2-cached": {
				Provider:      "openai",
				Model:         "gpt-4o",
				Temperature:   0.3,
				MaxTokens:     1024,
				Seed:          &seed,
				PriceIn:       2.50,
				PriceOut:      10.00,
				PriceCachedIn: 1.25,
			},
		},
		Chains: map[string]ProfileChain{
			"default": {
				Stage1: []string{"stage1-flash", "stage1-mini"},
				Stage2: []string{"stage2-cached"},
			},
		},
	}
}

// LoadProfiles merges profiles.yaml from dir (if present) over the
// built-in registry. User definitions override built-ins by name.
func LoadProfiles(dir string) (*ProfileRegistry, error) {
	registry := builtinProfiles()

	path := filepath.Join(dir, profilesFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return registry, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var user ProfileRegistry
	if err := yaml.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}

	if err := mergo.Merge(registry, &user, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge model profiles: %w", err)
	}

	// Chains must only reference known profiles.
	for name, chain := range registry.Chains {
		for _, ref := range append(append([]string{}, chain.Stage1...), chain.Stage2...) {
			if _, ok := registry.Profiles[ref]; !ok {
				return nil, fmt.Errorf("chain %q references unknown profile %q", name, ref)
			}
		}
	}

	return registry, nil
}
