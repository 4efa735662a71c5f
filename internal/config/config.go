// Package config provides YAML-based application configuration loading
// for the flappy binary: tick rate, storage, logging, key bindings and
// the SSH server.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the root of the YAML configuration file.
type Config struct {
	TickRate int        `yaml:"tick_rate"`
	Seed     int64      `yaml:"seed"` // 0 = derive from the clock
	DBPath   string     `yaml:"db_path"`
	Log      LogConfig  `yaml:"log"`
	Keys     KeyConfig  `yaml:"keys"`
	SSH      SSHConfig  `yaml:"ssh"`
	HTTP     HTTPConfig `yaml:"http"`
}

// LogConfig defines logger level and destination.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty = stderr (serve) or discard (play)
}

// KeyConfig lists the key names bound to each action.
// Names follow bubbletea's KeyMsg.String() form ("space", "up", "ctrl+c").
type KeyConfig struct {
	Flap    []string `yaml:"flap"`
	Restart []string `yaml:"restart"`
	Pause   []string `yaml:"pause"`
	Quit    []string `yaml:"quit"`
}

// SSHConfig defines the SSH server listener.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// HTTPConfig defines the optional leaderboard API served next to SSH.
type HTTPConfig struct {
	Address string `yaml:"address"` // Empty = disabled
}

// Validate reports the first setting that would leave the game unplayable.
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.TickRate)
	}
	if c.DBPath == "" {
		return errors.New("config: db_path is empty")
	}
	bindings := []struct {
		name string
		keys []string
	}{
		{"flap", c.Keys.Flap},
		{"restart", c.Keys.Restart},
		{"pause", c.Keys.Pause},
		{"quit", c.Keys.Quit},
	}
	for _, b := range bindings {
		if len(b.keys) == 0 {
			return fmt.Errorf("config: keys.%s has no bindings", b.name)
		}
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("config: ssh.idle_timeout is negative: %s", c.SSH.IdleTimeout)
	}
	return nil
}
