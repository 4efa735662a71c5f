package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Renderer consumes one frame of simulation state per tick.
type Renderer interface {
	Draw(f Frame)
}

// Visual characters for rendering
const (
	BirdChar      = '█'
	BeakChar      = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '▓'
	GroundTopChar = '═'
	BorderChar    = '│'
)

// cellAspect is how many times taller than wide a terminal cell is.
const cellAspect = 2.0

// Viewport maps the world field onto a region of the screen.
type Viewport struct {
	OffsetX int
	Width   int // In cells
	Height  int // In cells
}

// FitViewport returns the largest region of a w×h screen that keeps the
// field's proportions, centred horizontally.
func FitViewport(w, h int) Viewport {
	if w <= 0 || h <= 0 {
		return Viewport{}
	}
	ratio := FieldWidth / FieldHeight * cellAspect
	vw := int(math.Round(float64(h) * ratio))
	vh := h
	if vw > w {
		vw = w
		vh = int(math.Round(float64(w) / ratio))
	}
	return Viewport{
		OffsetX: (w - vw) / 2,
		Width:   core.Max(vw, 1),
		Height:  core.Max(vh, 1),
	}
}

// CellX converts a world x-coordinate to a screen column.
func (v Viewport) CellX(x float64) int {
	return v.OffsetX + int(math.Floor(x*float64(v.Width)/FieldWidth))
}

// CellY converts a world y-coordinate to a screen row.
func (v Viewport) CellY(y float64) int {
	return int(math.Floor(y * float64(v.Height) / FieldHeight))
}

// Contains reports whether a screen column lies inside the viewport.
func (v Viewport) Contains(col int) bool {
	return col >= v.OffsetX && col < v.OffsetX+v.Width
}

// ScreenRenderer draws frames into a character screen.
type ScreenRenderer struct {
	dst *core.Screen
}

// NewScreenRenderer creates a renderer targeting dst.
func NewScreenRenderer(dst *core.Screen) *ScreenRenderer {
	return &ScreenRenderer{dst: dst}
}

// Screen returns the target buffer.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.dst
}

// Draw renders a complete frame, clearing the screen first.
func (r *ScreenRenderer) Draw(f Frame) {
	dst := r.dst
	dst.Clear()

	vp := FitViewport(dst.Width(), dst.Height())
	if vp.Width == 0 {
		return
	}

	r.drawBorders(vp)
	for _, p := range f.Pipes {
		r.drawPipe(vp, p)
	}
	r.drawGround(vp)
	r.drawBird(vp, f.Bird)

	// HUD
	dst.DrawTextColored(vp.OffsetX+1, 0, fmt.Sprintf(" Score: %d ", f.Score), core.ColorBrightWhite)
	best := fmt.Sprintf(" Best: %d ", f.Best)
	dst.DrawTextColored(vp.OffsetX+vp.Width-len(best)-1, 0, best, core.ColorGray)

	if f.GameOver {
		DrawMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  Best: %d", f.Score, f.Best), "R or click to restart")
	}
}

func (r *ScreenRenderer) drawBorders(vp Viewport) {
	if vp.OffsetX > 0 {
		r.dst.DrawVLine(vp.OffsetX-1, 0, vp.Height, BorderChar, core.ColorGray)
	}
	if right := vp.OffsetX + vp.Width; right < r.dst.Width() {
		r.dst.DrawVLine(right, 0, vp.Height, BorderChar, core.ColorGray)
	}
}

// drawPipe renders both halves of a pipe, clipped to the viewport.
func (r *ScreenRenderer) drawPipe(vp Viewport, p Pipe) {
	x0 := vp.CellX(p.X)
	x1 := vp.CellX(p.Right())
	topEnd := vp.CellY(p.Top)
	bottomStart := vp.CellY(p.Bottom)
	groundRow := vp.CellY(GroundLevel)

	for x := x0; x <= x1; x++ {
		if !vp.Contains(x) {
			continue
		}
		for y := 0; y < topEnd; y++ {
			r.dst.SetColored(x, y, PipeChar, core.ColorGreen)
		}
		if topEnd > 0 {
			r.dst.SetColored(x, topEnd-1, PipeCapTop, core.ColorBrightGreen)
		}
		for y := bottomStart; y < groundRow; y++ {
			r.dst.SetColored(x, y, PipeChar, core.ColorGreen)
		}
		if bottomStart < groundRow {
			r.dst.SetColored(x, bottomStart, PipeCapBottom, core.ColorBrightGreen)
		}
	}
}

func (r *ScreenRenderer) drawGround(vp Viewport) {
	groundRow := vp.CellY(GroundLevel)
	r.dst.DrawHLine(vp.OffsetX, groundRow, vp.Width, GroundTopChar, core.ColorBrightGreen)
	for y := groundRow + 1; y < vp.Height; y++ {
		r.dst.DrawHLine(vp.OffsetX, y, vp.Width, GroundChar, core.ColorGreen)
	}
}

// drawBird fills the bird's bounding box, at least one cell, with a beak on the right.
func (r *ScreenRenderer) drawBird(vp Viewport, b Bird) {
	box := b.Bounds()
	x0, x1 := vp.CellX(box.X), vp.CellX(box.Right())
	y0, y1 := vp.CellY(box.Y), vp.CellY(box.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.dst.SetColored(x, y, BirdChar, core.ColorBrightYellow)
		}
	}
	r.dst.SetColored(x1, vp.CellY(b.Y), BeakChar, core.ColorOrange)
}

// DrawMessage draws a boxed message in the centre of the screen.
func DrawMessage(dst *core.Screen, title string, lines ...string) {
	w := len([]rune(title))
	for _, l := range lines {
		w = core.Max(w, len([]rune(l)))
	}

	boxW := w + 4
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	centre := func(y int, text string, c core.Color) {
		x := box.X + (boxW-len([]rune(text)))/2
		dst.DrawTextColored(x, y, text, c)
	}
	centre(box.Y+1, title, core.ColorBrightRed)
	for i, l := range lines {
		centre(box.Y+3+i, l, core.ColorDefault)
	}
}
