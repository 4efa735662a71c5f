package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// KeyMap binds keys to game actions. It implements help.KeyMap.
type KeyMap struct {
	Flap    key.Binding
	Restart key.Binding
	Pause   key.Binding
	Quit    key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(cfg config.KeyConfig) KeyMap {
	return KeyMap{
		Flap:    newBinding(cfg.Flap, "flap"),
		Restart: newBinding(cfg.Restart, "restart"),
		Pause:   newBinding(cfg.Pause, "pause"),
		Quit:    newBinding(cfg.Quit, "quit"),
	}
}

// newBinding converts config key names to the form KeyMsg.String() reports.
func newBinding(names []string, desc string) key.Binding {
	keys := make([]string, len(names))
	for i, n := range names {
		if n == "space" {
			n = " "
		}
		keys[i] = n
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(names, "/"), desc),
	)
}

// MapKey translates a key message to an action, or ActionNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Flap):
		return core.ActionFlap
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Restart, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap, k.Restart},
		{k.Pause, k.Quit},
	}
}
