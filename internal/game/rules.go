package game

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultReward       = 10
	DefaultPenalty      = 5
	DefaultDuration     = 60
	DefaultTickInterval = time.Second
)

// ErrInvalidRules indicates rules that cannot drive a session.
var ErrInvalidRules = errors.New("invalid game rules")

// Rules holds the scoring and timing parameters of a session.
type Rules struct {
	Reward       int           // points for a correct drop
	Penalty      int           // points removed for a wrong drop, floored at zero
	Duration     int           // countdown length in ticks (seconds by default)
	TickInterval time.Duration // wall time between countdown ticks
}

// DefaultRules returns the standard 60-second game.
func DefaultRules() Rules {
	return Rules{
		Reward:       DefaultReward,
		Penalty:      DefaultPenalty,
		Duration:     DefaultDuration,
		TickInterval: DefaultTickInterval,
	}
}

// Validate reports the first field that would break the session.
func (r Rules) Validate() error {
	switch {
	case r.Duration <= 0:
		return fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidRules, r.Duration)
	case r.TickInterval <= 0:
		return fmt.Errorf("%w: tick interval must be positive, got %s", ErrInvalidRules, r.TickInterval)
	case r.Reward < 0:
		return fmt.Errorf("%w: reward must not be negative, got %d", ErrInvalidRules, r.Reward)
	case r.Penalty < 0:
		return fmt.Errorf("%w: penalty must not be negative, got %d", ErrInvalidRules, r.Penalty)
	}
	return nil
}
