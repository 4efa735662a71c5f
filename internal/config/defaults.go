package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration, used when the embedded YAML
// cannot be parsed.
func Default() Config {
	return Config{
		TickRate: 60,
		DBPath:   "~/.flappy/scores.db",
		Log: LogConfig{
			Level: "info",
		},
		Keys: KeyConfig{
			Flap:    []string{"space", "up", "w", "k"},
			Restart: []string{"r", "enter"},
			Pause:   []string{"p"},
			Quit:    []string{"q", "esc", "ctrl+c"},
		},
		SSH: SSHConfig{
			Address:     ":2222",
			HostKey:     ".ssh/flappy_ed25519",
			IdleTimeout: 10 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
