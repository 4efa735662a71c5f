package flappy

import (
	"math/rand"
	"sort"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Pipe represents a vertical obstacle pair with a gap for the bird.
type Pipe struct {
	X      float64 // Left edge; decreases every tick
	Width  float64
	Top    float64 // Bottom edge of the upper pipe
	Bottom float64 // Top edge of the lower pipe
	Scored bool    // Whether this pipe has already been credited
}

// Right returns the pipe's trailing edge.
func (p Pipe) Right() float64 {
	return p.X + p.Width
}

// Expired reports whether the pipe has fully left the field.
func (p Pipe) Expired() bool {
	return p.Right() < 0
}

// TopRect returns the bounding box of the upper pipe.
func (p Pipe) TopRect() core.RectF {
	return core.RectFromEdges(p.X, 0, p.Right(), p.Top)
}

// BottomRect returns the bounding box of the lower pipe, down to the field floor.
func (p Pipe) BottomRect() core.RectF {
	return core.RectFromEdges(p.X, p.Bottom, p.Right(), FieldHeight)
}

// Hits tests the bird against both halves of the pipe.
func (p Pipe) Hits(b Bird) bool {
	if b.Right() <= p.X || b.Left() >= p.Right() {
		return false
	}
	return b.Y-b.R < p.Top || b.Y+b.R > p.Bottom
}

// Passed reports whether the pipe is entirely behind the bird.
func (p Pipe) Passed(b Bird) bool {
	return p.Right() < b.Left()
}

// PipeField handles spawning, movement, scoring and removal of pipes.
// Pipes are kept in creation order, which is also ascending X order since
// every pipe moves at the same speed.
type PipeField struct {
	pipes []Pipe
	rng   *rand.Rand
	timer int // Ticks since the last spawn
}

// NewPipeField creates an empty field drawing gap offsets from rng.
func NewPipeField(rng *rand.Rand) *PipeField {
	return &PipeField{
		pipes: make([]Pipe, 0, MaxLivePipes()),
		rng:   rng,
	}
}

// Reset clears all pipes and the spawn timer. The RNG keeps its position so
// successive rounds see different layouts.
func (f *PipeField) Reset() {
	f.pipes = f.pipes[:0]
	f.timer = 0
}

// Advance runs one tick: drop expired pipes from the front, spawn on
// schedule, then move every pipe left.
func (f *PipeField) Advance() {
	f.recycle()

	f.timer++
	if f.timer >= SpawnPeriod {
		f.spawn()
		f.timer = 0
	}

	for i := range f.pipes {
		f.pipes[i].X -= PipeSpeed
	}
}

// recycle removes expired pipes. Only the front needs checking.
func (f *PipeField) recycle() {
	n := 0
	for n < len(f.pipes) && f.pipes[n].Expired() {
		n++
	}
	if n == 0 {
		return
	}
	f.pipes = append(f.pipes[:0], f.pipes[n:]...)
}

// spawn appends a pipe at the right edge with a random gap offset.
// Offsets are whole field units so Bottom-Top is exactly GapHeight.
func (f *PipeField) spawn() {
	top := GapMinTop + float64(f.rng.Intn(int(GapMaxTop-GapMinTop)))
	f.pipes = append(f.pipes, Pipe{
		X:      FieldWidth,
		Width:  PipeWidth,
		Top:    top,
		Bottom: top + GapHeight,
	})
}

// Score marks every newly passed pipe and returns how many were passed.
func (f *PipeField) Score(b Bird) int {
	passed := 0
	for i := range f.pipes {
		if !f.pipes[i].Scored && f.pipes[i].Passed(b) {
			f.pipes[i].Scored = true
			passed++
		}
	}
	return passed
}

// Collides tests the bird against every live pipe.
func (f *PipeField) Collides(b Bird) bool {
	for _, p := range f.pipes {
		if p.Hits(b) {
			return true
		}
	}
	return false
}

// Place inserts a pipe while keeping X order. Used for scripted setups.
func (f *PipeField) Place(p Pipe) {
	i := sort.Search(len(f.pipes), func(i int) bool {
		return f.pipes[i].X > p.X
	})
	f.pipes = append(f.pipes, Pipe{})
	copy(f.pipes[i+1:], f.pipes[i:])
	f.pipes[i] = p
}

// Len returns the number of live pipes.
func (f *PipeField) Len() int {
	return len(f.pipes)
}

// Pipes returns a copy of the live pipes.
func (f *PipeField) Pipes() []Pipe {
	out := make([]Pipe, len(f.pipes))
	copy(out, f.pipes)
	return out
}

// Next returns the first pipe the bird has not yet passed.
func (f *PipeField) Next(b Bird) (Pipe, bool) {
	for _, p := range f.pipes {
		if !p.Passed(b) {
			return p, true
		}
	}
	return Pipe{}, false
}
