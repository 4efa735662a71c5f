package core

import "time"

// DefaultTickRate is the simulation rate the game constants are tuned for.
const DefaultTickRate = 60

// RuntimeConfig contains configuration passed to the platform at start.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means derive one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// FixedStep is the wall-clock duration of one simulation tick.
// The simulation itself never reads the clock; drivers use FixedStep to
// schedule Step calls, and tests skip it entirely.
type FixedStep struct {
	rate int
}

// NewFixedStep returns a step for the given ticks per second.
// Non-positive rates fall back to DefaultTickRate, as does the zero FixedStep.
func NewFixedStep(ticksPerSecond int) FixedStep {
	if ticksPerSecond <= 0 {
		ticksPerSecond = DefaultTickRate
	}
	return FixedStep{rate: ticksPerSecond}
}

// Rate returns ticks per second.
func (s FixedStep) Rate() int {
	if s.rate <= 0 {
		return DefaultTickRate
	}
	return s.rate
}

// Interval returns the duration between ticks.
func (s FixedStep) Interval() time.Duration {
	return time.Second / time.Duration(s.Rate())
}

// Ticks converts a duration into a whole number of ticks.
func (s FixedStep) Ticks(d time.Duration) int {
	return int(d / s.Interval())
}
