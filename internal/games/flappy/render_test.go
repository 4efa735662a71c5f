package flappy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestFitViewport(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want Viewport
	}{
		{"standard terminal", 80, 24, Viewport{OffsetX: 24, Width: 32, Height: 24}},
		{"narrow terminal", 20, 24, Viewport{OffsetX: 0, Width: 20, Height: 15}},
		{"empty", 0, 0, Viewport{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FitViewport(tc.w, tc.h); got != tc.want {
				t.Errorf("FitViewport(%d, %d) = %+v, expected %+v", tc.w, tc.h, got, tc.want)
			}
		})
	}
}

func TestRenderDrawsGroundAndBird(t *testing.T) {
	s := newTestSim(nil)
	screen := core.NewScreen(80, 24)
	NewScreenRenderer(screen).Draw(s.Frame())

	// Ground band starts at row floor(560 * 24 / 600) = 22.
	if got := screen.Get(24, 22); got != GroundTopChar {
		t.Errorf("ground top should be drawn at row 22, got %q", got)
	}
	if got := screen.Get(40, 23); got != GroundChar {
		t.Errorf("ground fill should be drawn at row 23, got %q", got)
	}

	// Bird box x 30..70 maps to columns 26..28, y 130..170 to row 5.
	cell := screen.GetCell(26, 5)
	if cell.Rune != BirdChar || cell.Color != core.ColorBrightYellow {
		t.Errorf("bird should be drawn at (26, 5), got %+v", cell)
	}
	if got := screen.Get(29, 6); got != BeakChar {
		t.Errorf("beak should be drawn at (29, 6), got %q", got)
	}

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD should show the score, row 0 = %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "Best: 0") {
		t.Errorf("HUD should show the best score, row 0 = %q", screen.Row(0))
	}
}

func TestRenderDrawsPipes(t *testing.T) {
	screen := core.NewScreen(80, 24)
	f := Frame{
		Bird:      NewBird(),
		Pipes:     []Pipe{{X: 200, Width: PipeWidth, Top: 200, Bottom: 350}},
		GameState: GameState{Running: true},
	}
	NewScreenRenderer(screen).Draw(f)

	// x 200 maps to column 24 + 16 = 40; top edge row 8, bottom row 14.
	if got := screen.Get(40, 2); got != PipeChar {
		t.Errorf("upper pipe should fill (40, 2), got %q", got)
	}
	if got := screen.Get(40, 7); got != PipeCapTop {
		t.Errorf("upper pipe cap should be at (40, 7), got %q", got)
	}
	if got := screen.Get(40, 10); got != ' ' {
		t.Errorf("gap should be empty at (40, 10), got %q", got)
	}
	if got := screen.Get(40, 14); got != PipeCapBottom {
		t.Errorf("lower pipe cap should be at (40, 14), got %q", got)
	}
}

func TestRenderClipsPipesToViewport(t *testing.T) {
	screen := core.NewScreen(80, 24)
	f := Frame{
		Bird:  NewBird(),
		Pipes: []Pipe{{X: -40, Width: PipeWidth, Top: 200, Bottom: 350}},
	}
	NewScreenRenderer(screen).Draw(f)

	for x := 0; x < 23; x++ {
		if got := screen.Get(x, 2); got != ' ' {
			t.Fatalf("pipe leaked outside the viewport at column %d: %q", x, got)
		}
	}
}

func TestRenderGameOver(t *testing.T) {
	s := newTestSim(nil)
	s.bird.Y = GroundLevel
	s.Step()

	screen := core.NewScreen(80, 24)
	NewScreenRenderer(screen).Draw(s.Frame())

	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over box should be drawn")
	}
	if !strings.Contains(screen.String(), "R or click to restart") {
		t.Error("restart hint should be drawn")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	screen := core.NewScreen(0, 0)
	// Must not panic.
	NewScreenRenderer(screen).Draw(newTestSim(nil).Frame())
}
