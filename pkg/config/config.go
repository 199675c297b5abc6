// Package config loads environment-driven configuration, persona blobs,
// and model profiles, and exposes them as a read-only configuration object.
package config

import (
	"fmt"
	"log/slog"
	"time"
)

// Config is the process-wide configuration. Built once at startup by
// Load and treated as read-only afterwards.
type Config struct {
	// Transport credentials. The MTProto client itself is an external
	// collaborator; the core only threads these through.
	TransportAPIID   string
	TransportAPIHash string
	TransportPhone   string

	// Stores.
	StoreURL string // relational store DSN
	KVURL    string // durable KV store URL

	// LLM.
	LLMProfile   string
	LLMStage1Key string
	LLMStage2Key string

	// Memory tuning.
	MaxHistory       int
	RecentN          int
	MaxContextBytes  int
	HistoryTTL       time.Duration
	ProfileTTL       time.Duration
	AntiRepeatWindow int

	// Batching tuning.
	WindowInitial   time.Duration
	WindowTypingExt time.Duration
	MinBatch        int
	MaxBatch        int
	MaxWait         time.Duration
	EnableBatching  bool

	// Worker pools.
	SupervisorWorkers int
	DeliveryWorkers   int

	// Priority weights (safety, batch size, quarantine recency).
	PriorityWeightSafety     float64
	PriorityWeightBatch      float64
	PriorityWeightQuarantine float64

	// WAL.
	WALSoftCap  int
	WALLease    time.Duration
	ProcessLock time.Duration

	// Recovery tuning.
	RecoveryInterval   time.Duration
	RecoveryMaxAge     time.Duration
	RecoveryMaxPerUser int
	RecoveryMaxUsers   int
	TransportRateLimit float64 // requests per second against the transport

	// Quarantine.
	QuarantineTTL      time.Duration
	QuarantineCacheTTL time.Duration

	// Persona & identity.
	PersonaPath string
	Timezone    string
	Location    *time.Location

	// HTTP surface.
	ReviewAPIBind  string
	ReviewAPIToken string

	// Loaded blobs and profiles.
	Persona  *Persona
	Profiles *ProfileRegistry
}

// Load reads the environment, loads persona blobs and model profiles,
// validates required fields, and returns the configuration.
func Load() (*Config, error) {
	cfg := &Config{
		TransportAPIID:   getEnv("TRANSPORT_API_ID", ""),
		TransportAPIHash: getEnv("TRANSPORT_API_HASH", ""),
		TransportPhone:   getEnv("TRANSPORT_PHONE", ""),
		StoreURL:         getEnv("STORE_URL", ""),
		KVURL:            getEnv("KV_URL", "redis://localhost:6379/0"),
		LLMProfile:       getEnv("LLM_PROFILE", "default"),
		LLMStage1Key:     getEnv("LLM_STAGE1_KEY", ""),
		LLMStage2Key:     getEnv("LLM_STAGE2_KEY", ""),
		PersonaPath:      getEnv("PERSONA_PATH", "./persona"),
		Timezone:         getEnv("TIMEZONE", "America/Monterrey"),
		ReviewAPIBind:    getEnv("REVIEW_API_BIND", ":8080"),
		ReviewAPIToken:   getEnv("REVIEW_API_TOKEN", ""),
	}

	var err error
	if cfg.MaxHistory, err = getEnvInt("MAX_HISTORY", 50); err != nil {
		return nil, err
	}
	if cfg.RecentN, err = getEnvInt("RECENT_N", 10); err != nil {
		return nil, err
	}
	if cfg.MaxContextBytes, err = getEnvInt("MAX_CONTEXT_BYTES", 100*1024); err != nil {
		return nil, err
	}
	if cfg.HistoryTTL, err = getEnvDuration("MEMORY_TTL", 7*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.ProfileTTL, err = getEnvDuration("PROFILE_TTL", 30*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.AntiRepeatWindow, err = getEnvInt("ANTI_REPEAT_WINDOW", 20); err != nil {
		return nil, err
	}

	if cfg.WindowInitial, err = getEnvDuration("WINDOW_INITIAL", 1500*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.WindowTypingExt, err = getEnvDuration("WINDOW_TYPING_EXT", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.MinBatch, err = getEnvInt("MIN_BATCH", 2); err != nil {
		return nil, err
	}
	if cfg.MaxBatch, err = getEnvInt("MAX_BATCH", 5); err != nil {
		return nil, err
	}
	if cfg.MaxWait, err = getEnvDuration("MAX_WAIT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.EnableBatching, err = getEnvBool("ENABLE_BATCHING", true); err != nil {
		return nil, err
	}

	if cfg.SupervisorWorkers, err = getEnvInt("SUPERVISOR_WORKERS", 8); err != nil {
		return nil, err
	}
	if cfg.DeliveryWorkers, err = getEnvInt("DELIVERY_WORKERS", 4); err != nil {
		return nil, err
	}

	if cfg.PriorityWeightSafety, err = getEnvFloat("PRIORITY_W_SAFETY", 0.5); err != nil {
		return nil, err
	}
	if cfg.PriorityWeightBatch, err = getEnvFloat("PRIORITY_W_BATCH", 0.3); err != nil {
		return nil, err
	}
	if cfg.PriorityWeightQuarantine, err = getEnvFloat("PRIORITY_W_QUARANTINE", 0.2); err != nil {
		return nil, err
	}

	if cfg.WALSoftCap, err = getEnvInt("WAL_SOFT_CAP", 1000); err != nil {
		return nil, err
	}
	if cfg.WALLease, err = getEnvDuration("WAL_LEASE", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.ProcessLock, err = getEnvDuration("PROCESS_LOCK_TTL", 5*time.Minute); err != nil {
		return nil, err
	}

	if cfg.RecoveryInterval, err = getEnvDuration("RECOVERY_INTERVAL", 30*time.Minute); err != nil {
		return nil, err
	}
	if cfg.RecoveryMaxAge, err = getEnvDuration("RECOVERY_MAX_AGE_H", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.RecoveryMaxPerUser, err = getEnvInt("RECOVERY_MAX_PER_USER", 20); err != nil {
		return nil, err
	}
	if cfg.RecoveryMaxUsers, err = getEnvInt("RECOVERY_MAX_CONCURRENT_USERS", 4); err != nil {
		return nil, err
	}
	if cfg.TransportRateLimit, err = getEnvFloat("TELEGRAM_RATE_LIMIT", 30); err != nil {
		return nil, err
	}

	if cfg.QuarantineTTL, err = getEnvDuration("QUARANTINE_TTL", 7*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.QuarantineCacheTTL, err = getEnvDuration("QUARANTINE_CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	persona, err := LoadPersona(cfg.PersonaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load persona blobs: %w", err)
	}
	cfg.Persona = persona

	profiles, err := LoadProfiles(cfg.PersonaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load model profiles: %w", err)
	}
	cfg.Profiles = profiles

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	slog.Info("Configuration loaded",
		"llm_profile", cfg.LLMProfile,
		"timezone", cfg.Timezone,
		"batching", cfg.EnableBatching,
		"supervisor_workers", cfg.SupervisorWorkers,
		"delivery_workers", cfg.DeliveryWorkers)

	return cfg, nil
}

func (c *Config) validate() error {
	if c.StoreURL == "" {
		return fmt.Errorf("STORE_URL is required")
	}
	if c.ReviewAPIToken == "" {
		return fmt.Errorf("REVIEW_API_TOKEN is required")
	}
	if c.MinBatch < 1 || c.MaxBatch < c.MinBatch {
		return fmt.Errorf("invalid batch bounds: MIN_BATCH=%d MAX_BATCH=%d", c.MinBatch, c.MaxBatch)
	}
	if c.WindowInitial <= 0 || c.MaxWait < c.WindowInitial {
		return fmt.Errorf("invalid batching window: WINDOW_INITIAL=%v MAX_WAIT=%v", c.WindowInitial, c.MaxWait)
	}
	if c.RecentN > c.MaxHistory {
		return fmt.Errorf("RECENT_N (%d) must not exceed MAX_HISTORY (%d)", c.RecentN, c.MaxHistory)
	}
	if _, ok := c.Profiles.Chain(c.LLMProfile); !ok {
		return fmt.Errorf("unknown LLM_PROFILE %q", c.LLMProfile)
	}
	return nil
}

// Now returns the current time in the configured persona timezone.
func (c *Config) Now() time.Time {
	return time.Now().In(c.Location)
}
