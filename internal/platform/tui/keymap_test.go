package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapDefaults(t *testing.T) {
	km := NewKeyMap(config.Default().Keys)

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"up flaps", tea.KeyMsg{Type: tea.KeyUp}, core.ActionFlap},
		{"w flaps", runeKey('w'), core.ActionFlap},
		{"r restarts", runeKey('r'), core.ActionRestart},
		{"enter restarts", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionRestart},
		{"p pauses", runeKey('p'), core.ActionPause},
		{"q quits", runeKey('q'), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapCustomBindings(t *testing.T) {
	km := NewKeyMap(config.KeyConfig{
		Flap:    []string{"j"},
		Restart: []string{"n"},
		Pause:   []string{"s"},
		Quit:    []string{"x"},
	})

	if got := km.MapKey(runeKey('j')); got != core.ActionFlap {
		t.Errorf("j = %v, expected Flap", got)
	}
	if got := km.MapKey(runeKey('w')); got != core.ActionNone {
		t.Errorf("w should be unbound, got %v", got)
	}
	if got := km.MapKey(runeKey('x')); got != core.ActionQuit {
		t.Errorf("x = %v, expected Quit", got)
	}
}

func TestKeyMapSpaceName(t *testing.T) {
	km := NewKeyMap(config.KeyConfig{Flap: []string{"space"}})

	if got := km.MapKey(runeKey(' ')); got != core.ActionFlap {
		t.Errorf("space = %v, expected Flap", got)
	}
	if h := km.Flap.Help().Key; h != "space" {
		t.Errorf("help key = %q, expected the config name", h)
	}
}
