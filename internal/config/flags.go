package config

import (
	"time"

	"github.com/spf13/pflag"
)

// BindFlags registers rule overrides on fs. Flags not set on the command
// line keep the values already in cfg.
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.Rules.Duration, "duration", cfg.Rules.Duration, "Session length in seconds")
	fs.IntVar(&cfg.Rules.Reward, "reward", cfg.Rules.Reward, "Points for a correct drop")
	fs.IntVar(&cfg.Rules.Penalty, "penalty", cfg.Rules.Penalty, "Points lost for a wrong drop")
	fs.DurationVar(&cfg.FeedbackDelay, "feedback", cfg.FeedbackDelay, "Feedback animation length")
}

// FeedbackChoices lists the feedback speeds offered by the setup form.
var FeedbackChoices = []time.Duration{
	200 * time.Millisecond,
	DefaultFeedbackDelay,
	800 * time.Millisecond,
}

// DurationChoices lists the session lengths offered by the setup form.
var DurationChoices = []int{30, 60, 90, 120}
