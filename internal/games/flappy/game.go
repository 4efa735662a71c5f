// Package flappy implements a Flappy Bird-style game simulation.
// The player controls a bird that must pass through gaps in a stream of
// pipes without touching them or the ground.
//
// The simulation is a pure fixed-step state machine: callers advance it
// with Step, feed it Flap and Restart, and read Frame for drawing. It never
// reads the clock and draws all randomness from an injected source.
package flappy

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ID identifies the game in score storage.
const ID = "flappy"

// Title is the display name.
const Title = "Flappy Bird"

// ScoreStore persists the best score across sessions.
// BestScore returns 0 when nothing has been stored yet.
type ScoreStore interface {
	BestScore() (int, error)
	SetBestScore(score int) error
}

// Options configures a new Simulation. Every field is optional.
type Options struct {
	Store  ScoreStore  // Best-score persistence; nil keeps it in memory only
	Rand   *rand.Rand  // Gap placement source; nil seeds from Seed
	Seed   int64       // Used when Rand is nil; 0 derives a seed from the clock
	Logger *log.Logger // Store failures and round summaries; nil discards
}

// GameState is the externally visible status of the simulation.
type GameState struct {
	Score    int
	Best     int
	Running  bool
	GameOver bool
	Tick     int // Ticks since the last restart
}

// StepResult is returned by Step after each tick.
type StepResult struct {
	State   GameState
	Passed  int  // Pipes passed this tick
	Crashed bool // Whether this tick ended the round
	NewBest bool // Whether the crash set a new best score
}

// Simulation owns all game state. Instances are independent; nothing is
// shared between them except what the caller passes in.
//
// A Simulation is not safe for concurrent use. Drivers must deliver input
// and ticks from the same goroutine.
type Simulation struct {
	bird     Bird
	pipes    *PipeField
	score    int
	best     int
	running  bool
	gameOver bool
	tick     int
	store    ScoreStore
	logger   *log.Logger
}

// New creates a simulation in the running state and loads the best score.
func New(opts Options) *Simulation {
	rng := opts.Rand
	if rng == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Simulation{
		pipes:  NewPipeField(rng),
		store:  opts.Store,
		logger: logger,
	}
	s.best = s.loadBest()
	s.Restart()
	return s
}

// loadBest reads the persisted best score. A missing or unreadable value is 0.
func (s *Simulation) loadBest() int {
	if s.store == nil {
		return 0
	}
	best, err := s.store.BestScore()
	if err != nil {
		s.logger.Warn("could not load best score", "error", err)
		return 0
	}
	if best < 0 {
		return 0
	}
	return best
}

// Restart resets the bird, pipes, spawn timer and score. The best score survives.
func (s *Simulation) Restart() {
	s.bird = NewBird()
	s.pipes.Reset()
	s.score = 0
	s.tick = 0
	s.running = true
	s.gameOver = false
}

// Flap applies the upward impulse. Ignored unless running.
func (s *Simulation) Flap() {
	if !s.running {
		return
	}
	s.bird.Flap()
}

// HandleInput applies a frame of logical input.
func (s *Simulation) HandleInput(in core.InputFrame) {
	if in.Has(core.ActionRestart) {
		s.Restart()
	}
	if in.Has(core.ActionFlap) {
		s.Flap()
	}
}

// Step advances the simulation by one fixed tick.
// After game over it is a no-op until Restart.
func (s *Simulation) Step() StepResult {
	if !s.running {
		return StepResult{State: s.State()}
	}

	s.tick++

	// Bird physics
	s.bird.ApplyGravity()
	s.bird.ClampCeiling()

	// Obstacles and scoring
	s.pipes.Advance()
	passed := s.pipes.Score(s.bird)
	s.score += passed

	// Terminal collisions
	res := StepResult{Passed: passed}
	if s.pipes.Collides(s.bird) || s.bird.HitsGround() {
		res.Crashed = true
		res.NewBest = s.endGame()
	}

	res.State = s.State()
	return res
}

// endGame freezes the round and persists a new best score.
// Calling it again after the transition does nothing.
func (s *Simulation) endGame() bool {
	if !s.running {
		return false
	}
	s.running = false
	s.gameOver = true

	s.logger.Debug("round over", "score", s.score, "best", s.best, "ticks", s.tick)

	if s.score <= s.best {
		return false
	}
	s.best = s.score
	if s.store != nil {
		if err := s.store.SetBestScore(s.best); err != nil {
			s.logger.Warn("could not save best score", "score", s.best, "error", err)
		}
	}
	return true
}

// State returns the current game state.
func (s *Simulation) State() GameState {
	return GameState{
		Score:    s.score,
		Best:     s.best,
		Running:  s.running,
		GameOver: s.gameOver,
		Tick:     s.tick,
	}
}

// Frame is a read-only snapshot of everything a renderer needs.
type Frame struct {
	Bird  Bird
	Pipes []Pipe
	GameState
}

// Frame returns a snapshot of the current state.
func (s *Simulation) Frame() Frame {
	return Frame{
		Bird:      s.bird,
		Pipes:     s.pipes.Pipes(),
		GameState: s.State(),
	}
}

// NextPipe returns the first pipe the bird has not yet passed.
func (s *Simulation) NextPipe() (Pipe, bool) {
	return s.pipes.Next(s.bird)
}
