package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)

	view := m.View()
	if !strings.Contains(view, "No scores recorded yet") {
		t.Errorf("empty board should say so, got:\n%s", view)
	}
	if !strings.Contains(view, "Best: 0") {
		t.Error("empty board should show best 0")
	}
}

func TestScoreboardShowsScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	scoped := store.Scoped(flappy.ID)
	scoped.RecordScore(3)
	scoped.RecordScore(11)
	scoped.SetBestScore(11)

	m := NewScoreboardModel(store, 80, 24)
	if len(m.scores) != 2 || m.scores[0].Score != 11 {
		t.Fatalf("scores = %v", m.scores)
	}

	view := m.View()
	for _, want := range []string{"Best: 11", "Rounds: 2", "#1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestScoreboardRefresh(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := NewScoreboardModel(store, 80, 24)
	store.Scoped(flappy.ID).RecordScore(5)

	next, _ := m.Update(runeKey('r'))
	m = next.(ScoreboardModel)
	if len(m.scores) != 1 {
		t.Errorf("refresh should reload scores, got %v", m.scores)
	}

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil || !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit the scoreboard")
	}
}
