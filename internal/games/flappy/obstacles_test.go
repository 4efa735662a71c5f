package flappy

import (
	"math/rand"
	"testing"
)

func TestPipeFieldSpawnSchedule(t *testing.T) {
	f := NewPipeField(rand.New(rand.NewSource(7)))

	for i := 1; i < SpawnPeriod; i++ {
		f.Advance()
		if f.Len() != 0 {
			t.Fatalf("tick %d: no pipe should exist before the spawn period, got %d", i, f.Len())
		}
	}

	f.Advance()
	if f.Len() != 1 {
		t.Fatalf("exactly one pipe should spawn on tick %d, got %d", SpawnPeriod, f.Len())
	}

	p := f.Pipes()[0]
	if p.X != FieldWidth-PipeSpeed {
		t.Errorf("new pipe should start at the right edge and move once, x = %v", p.X)
	}
	if p.Width != PipeWidth || p.Scored {
		t.Errorf("unexpected new pipe %+v", p)
	}
}

func TestPipeFieldGapSequence(t *testing.T) {
	const seed = 99
	f := NewPipeField(rand.New(rand.NewSource(seed)))
	ref := rand.New(rand.NewSource(seed))

	for n := 0; n < 5; n++ {
		for i := 0; i < SpawnPeriod; i++ {
			f.Advance()
		}
		pipes := f.Pipes()
		p := pipes[len(pipes)-1]

		expectedTop := GapMinTop + float64(ref.Intn(int(GapMaxTop-GapMinTop)))
		if p.Top != expectedTop {
			t.Errorf("pipe %d: top = %v, expected %v", n, p.Top, expectedTop)
		}
		if p.Bottom-p.Top != GapHeight {
			t.Errorf("pipe %d: gap = %v, expected %v", n, p.Bottom-p.Top, GapHeight)
		}
		if p.Top < GapMinTop || p.Top >= GapMaxTop {
			t.Errorf("pipe %d: top %v outside [%v, %v)", n, p.Top, GapMinTop, GapMaxTop)
		}
	}
}

func TestPipeFieldGapHeightExact(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		f := NewPipeField(rand.New(rand.NewSource(seed)))
		for i := 0; i < 3*SpawnPeriod; i++ {
			f.Advance()
		}
		for _, p := range f.Pipes() {
			if p.Bottom-p.Top != GapHeight {
				t.Fatalf("seed %d: gap = %v, expected exactly %v", seed, p.Bottom-p.Top, GapHeight)
			}
		}
	}
}

func TestPipeFieldUniformSpeed(t *testing.T) {
	f := NewPipeField(rand.New(rand.NewSource(1)))
	f.Place(ghostPipe(100))
	f.Place(ghostPipe(300))

	f.Advance()
	pipes := f.Pipes()
	if pipes[0].X != 100-PipeSpeed || pipes[1].X != 300-PipeSpeed {
		t.Errorf("every pipe should move by %v, got %+v", PipeSpeed, pipes)
	}
}

func TestPipeFieldRecyclesFront(t *testing.T) {
	f := NewPipeField(rand.New(rand.NewSource(1)))
	f.Place(ghostPipe(-PipeWidth - 1)) // already off-field
	f.Place(ghostPipe(10))

	f.Advance()

	if f.Len() != 1 {
		t.Fatalf("expired pipe should be removed, %d left", f.Len())
	}
	if got := f.Pipes()[0].X; got != 10-PipeSpeed {
		t.Errorf("surviving pipe x = %v, expected %v", got, 10-PipeSpeed)
	}
}

func TestPipeFieldBounded(t *testing.T) {
	f := NewPipeField(rand.New(rand.NewSource(3)))
	limit := MaxLivePipes()

	for i := 0; i < 100000; i++ {
		f.Advance()
		if f.Len() > limit {
			t.Fatalf("tick %d: %d live pipes exceeds bound %d", i+1, f.Len(), limit)
		}
	}
}

func TestPipeFieldOrdered(t *testing.T) {
	f := NewPipeField(rand.New(rand.NewSource(5)))
	f.Place(ghostPipe(200))
	f.Place(ghostPipe(50))
	f.Place(ghostPipe(120))

	for i := 0; i < 1000; i++ {
		pipes := f.Pipes()
		for j := 1; j < len(pipes); j++ {
			if pipes[j-1].X > pipes[j].X {
				t.Fatalf("tick %d: pipes out of order: %+v", i, pipes)
			}
		}
		f.Advance()
	}
}

func TestPipeFieldReset(t *testing.T) {
	f := NewPipeField(rand.New(rand.NewSource(5)))
	for i := 0; i < SpawnPeriod+10; i++ {
		f.Advance()
	}
	f.Reset()

	if f.Len() != 0 || f.timer != 0 {
		t.Errorf("Reset should clear pipes and timer, got %d pipes timer %d", f.Len(), f.timer)
	}
}

func TestPipeHits(t *testing.T) {
	p := Pipe{X: 100, Width: 50, Top: 200, Bottom: 350}

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"left of pipe", 70, 100, false},
		{"touching left edge", 80, 100, false},
		{"overlapping upper pipe", 90, 100, true},
		{"inside gap", 125, 275, false},
		{"grazing top of gap", 125, 219, true},
		{"overlapping lower pipe", 160, 340, true},
		{"right of pipe", 170, 100, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Bird{X: tc.x, Y: tc.y, R: BirdRadius}
			if got := p.Hits(b); got != tc.expected {
				t.Errorf("Hits(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestPipeRects(t *testing.T) {
	p := Pipe{X: 100, Width: 50, Top: 200, Bottom: 350}

	top := p.TopRect()
	if top.X != 100 || top.Y != 0 || top.Right() != 150 || top.Bottom() != 200 {
		t.Errorf("TopRect = %+v", top)
	}
	bottom := p.BottomRect()
	if bottom.Y != 350 || bottom.Bottom() != FieldHeight {
		t.Errorf("BottomRect = %+v", bottom)
	}
}

func TestMaxLivePipes(t *testing.T) {
	// ceil(400 / (100 * 5)) + 1
	if got := MaxLivePipes(); got != 2 {
		t.Errorf("MaxLivePipes() = %d, expected 2", got)
	}
}
