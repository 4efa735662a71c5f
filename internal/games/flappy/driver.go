package flappy

import (
	"context"
)

// Pilot decides on each tick whether the bird should flap.
type Pilot interface {
	ShouldFlap(f Frame) bool
}

// Autopilot flaps when the bird is falling below the centre of the next gap.
type Autopilot struct {
	// Slack is how far below the gap centre the bird may sink before flapping.
	Slack float64
}

// NewAutopilot returns a pilot tuned to the default physics.
func NewAutopilot() Autopilot {
	return Autopilot{Slack: 30}
}

// ShouldFlap implements Pilot.
func (a Autopilot) ShouldFlap(f Frame) bool {
	if !f.Running || f.Bird.Vel < 0 {
		return false
	}

	target := (GroundLevel + CeilingLevel) / 2
	for _, p := range f.Pipes {
		if !p.Passed(f.Bird) {
			target = (p.Top + p.Bottom) / 2
			break
		}
	}
	return f.Bird.Y > target+a.Slack
}

// Driver runs the tick-then-draw cycle without a display scheduler.
type Driver struct {
	Sim      *Simulation
	Pilot    Pilot    // Optional; nil never flaps
	Renderer Renderer // Optional; nil skips drawing
}

// Summary describes a finished headless run.
type Summary struct {
	Score    int
	Best     int
	Ticks    int
	GameOver bool
	// MaxPipes is the most pipes that were live at once.
	MaxPipes int
}

// Tick performs one cycle: pilot input, Step, then Draw.
func (d *Driver) Tick() StepResult {
	if d.Pilot != nil && d.Pilot.ShouldFlap(d.Sim.Frame()) {
		d.Sim.Flap()
	}
	res := d.Sim.Step()
	if d.Renderer != nil {
		d.Renderer.Draw(d.Sim.Frame())
	}
	return res
}

// Run ticks until game over, maxTicks ticks (0 = unlimited), or ctx is done.
func (d *Driver) Run(ctx context.Context, maxTicks int) (Summary, error) {
	var sum Summary
	for maxTicks <= 0 || sum.Ticks < maxTicks {
		if err := ctx.Err(); err != nil {
			return d.summarize(sum), err
		}

		res := d.Tick()
		sum.Ticks++
		if n := d.Sim.pipes.Len(); n > sum.MaxPipes {
			sum.MaxPipes = n
		}
		if res.State.GameOver {
			break
		}
	}
	return d.summarize(sum), nil
}

func (d *Driver) summarize(sum Summary) Summary {
	st := d.Sim.State()
	sum.Score = st.Score
	sum.Best = st.Best
	sum.GameOver = st.GameOver
	return sum
}

// RunHeadless plays sim with pilot and no display until the round ends or
// maxTicks elapse.
func RunHeadless(ctx context.Context, sim *Simulation, pilot Pilot, maxTicks int) (Summary, error) {
	d := &Driver{Sim: sim, Pilot: pilot}
	return d.Run(ctx, maxTicks)
}
