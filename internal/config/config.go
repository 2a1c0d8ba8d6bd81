package config

import (
	"fmt"
	"time"

	"github.com/alexanderramin/trashsort/internal/game"
	"github.com/caarlos0/env/v11"
)

const DefaultFeedbackDelay = 450 * time.Millisecond

// Config holds the engine rules plus presentation-side settings.
type Config struct {
	Rules game.Rules

	// FeedbackDelay is how long the terminal UI plays the correct or
	// incorrect feedback before reporting completion to the engine.
	FeedbackDelay time.Duration

	// LogFile receives engine event records when non-empty.
	LogFile string
}

// DefaultConfig returns the standard game with logging disabled.
func DefaultConfig() Config {
	return Config{
		Rules:         game.DefaultRules(),
		FeedbackDelay: DefaultFeedbackDelay,
	}
}

// envConfig mirrors the TRASHSORT_* variables. Unset variables keep the
// value already in the struct.
type envConfig struct {
	Duration   int    `env:"TRASHSORT_DURATION_SEC"`
	Reward     int    `env:"TRASHSORT_REWARD"`
	Penalty    int    `env:"TRASHSORT_PENALTY"`
	TickMS     int64  `env:"TRASHSORT_TICK_MS"`
	FeedbackMS int64  `env:"TRASHSORT_FEEDBACK_MS"`
	LogFile    string `env:"TRASHSORT_LOG_FILE"`
}

// LoadConfig reads configuration from environment variables on top of
// DefaultConfig. Values are range-checked by Validate, not here.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	e := envConfig{
		Duration:   cfg.Rules.Duration,
		Reward:     cfg.Rules.Reward,
		Penalty:    cfg.Rules.Penalty,
		TickMS:     cfg.Rules.TickInterval.Milliseconds(),
		FeedbackMS: cfg.FeedbackDelay.Milliseconds(),
	}
	if err := env.Parse(&e); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	cfg.Rules.Duration = e.Duration
	cfg.Rules.Reward = e.Reward
	cfg.Rules.Penalty = e.Penalty
	cfg.Rules.TickInterval = time.Duration(e.TickMS) * time.Millisecond
	cfg.FeedbackDelay = time.Duration(e.FeedbackMS) * time.Millisecond
	cfg.LogFile = e.LogFile
	return cfg, nil
}

// Validate checks the rules and presentation settings together.
func (c Config) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	if c.FeedbackDelay < 0 {
		return fmt.Errorf("%w: feedback delay must not be negative, got %s", game.ErrInvalidRules, c.FeedbackDelay)
	}
	return nil
}
