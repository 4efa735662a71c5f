package flappy

import "math"

// Field geometry in world units. The renderer scales these to the terminal.
const (
	FieldWidth   = 400.0
	FieldHeight  = 600.0
	GroundHeight = 40.0
)

// Bird physics - tuned for playability at 60 ticks per second.
const (
	BirdX        = 50.0  // Fixed horizontal position; the world scrolls past
	BirdStartY   = 150.0 // Vertical position after New and Restart
	BirdRadius   = 20.0
	Gravity      = 0.25 // Added to velocity every tick
	FlapImpulse  = -6.0 // Velocity set on flap (negative = up)
	GroundLevel  = FieldHeight - GroundHeight
	CeilingLevel = 0.0
)

// Obstacle parameters.
const (
	PipeWidth   = 50.0
	PipeSpeed   = 5.0   // World units per tick, identical for every pipe
	GapHeight   = 150.0 // Bottom - Top, constant for the whole game
	GapMinTop   = 100.0 // Gap top is uniform in [GapMinTop, GapMaxTop)
	GapMaxTop   = 300.0
	SpawnPeriod = 100 // Ticks between spawns
)

// MaxLivePipes is the steady-state upper bound on live pipes.
func MaxLivePipes() int {
	return int(math.Ceil(FieldWidth/(SpawnPeriod*PipeSpeed))) + 1
}
