package tui

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// ScoreRecorder keeps the history of finished rounds.
// Stores passed in Options may implement it alongside flappy.ScoreStore.
type ScoreRecorder interface {
	RecordScore(score int) error
}

// Options configures a game Model.
type Options struct {
	Store  flappy.ScoreStore // Optional; also used as ScoreRecorder when it is one
	Keys   config.KeyConfig
	Step   core.FixedStep
	Seed   int64 // 0 = derive from the clock
	Width  int
	Height int
	Logger *log.Logger
}

// Model is the Bubble Tea model that drives one flappy simulation.
// Input and ticks both arrive through Update, so the simulation is only
// ever touched from the program's goroutine.
type Model struct {
	sim        *flappy.Simulation
	screen     *core.Screen
	renderer   *flappy.ScreenRenderer
	recorder   ScoreRecorder
	keys       KeyMap
	help       help.Model
	step       core.FixedStep
	logger     *log.Logger
	paused     bool
	quitting   bool
	scoreSaved bool // Whether the current round has been recorded
}

// NewModel creates a model with a fresh simulation.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		def := core.DefaultConfig()
		w, h = def.ScreenW, def.ScreenH
	}
	screen := core.NewScreen(w, playfieldHeight(h))

	recorder, _ := opts.Store.(ScoreRecorder)

	sim := flappy.New(flappy.Options{
		Store:  opts.Store,
		Rand:   rand.New(rand.NewSource(seed)),
		Logger: logger,
	})

	return Model{
		sim:      sim,
		screen:   screen,
		renderer: flappy.NewScreenRenderer(screen),
		recorder: recorder,
		keys:     NewKeyMap(opts.Keys),
		help:     help.New(),
		step:     opts.Step,
		logger:   logger,
	}
}

// playfieldHeight leaves the bottom row for the help footer.
func playfieldHeight(h int) int {
	return core.Max(h-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.step)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey applies keyboard input to the simulation immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		if m.sim.State().Running {
			m.paused = !m.paused
		}
		return m, nil
	case core.ActionFlap, core.ActionRestart:
		return m.handleAction(action)
	}
	return m, nil
}

// handleMouse maps a left press to flap while running and restart after
// game over.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.sim.State().GameOver {
		return m.handleAction(core.ActionRestart)
	}
	return m.handleAction(core.ActionFlap)
}

// handleAction applies a flap or restart to the simulation.
func (m Model) handleAction(a core.Action) (tea.Model, tea.Cmd) {
	if a == core.ActionFlap && m.paused {
		return m, nil
	}
	if a == core.ActionRestart {
		m.paused = false
		m.scoreSaved = false
	}
	in := core.NewInputFrame()
	in.Set(a)
	m.sim.HandleInput(in)
	return m, nil
}

// handleTick advances the simulation by one step unless paused.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.step)
	}

	res := m.sim.Step()
	if res.Crashed && !m.scoreSaved {
		m.recordRound(res)
		m.scoreSaved = true
	}

	return m, tickCmd(m.step)
}

// recordRound logs the finished round and appends it to the history.
func (m Model) recordRound(res flappy.StepResult) {
	st := res.State
	m.logger.Info("game over", "score", st.Score, "best", st.Best, "ticks", st.Tick)
	if res.NewBest {
		m.logger.Info("new best score", "best", st.Best)
	}

	if m.recorder == nil {
		return
	}
	if err := m.recorder.RecordScore(st.Score); err != nil {
		m.logger.Warn("could not record score", "score", st.Score, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Draw(m.sim.Frame())
	if m.paused {
		flappy.DrawMessage(m.screen, "PAUSED", "P to resume")
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the simulation state.
func (m Model) State() flappy.GameState {
	return m.sim.State()
}

// Paused reports whether ticks are currently skipped.
func (m Model) Paused() bool {
	return m.paused
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
