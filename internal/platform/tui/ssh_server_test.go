package tui

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func newTestSSHServer(t *testing.T) *SSHServer {
	t.Helper()
	dir := t.TempDir()

	cfg := config.Default()
	cfg.DBPath = filepath.Join(dir, "scores.db")
	cfg.SSH.Address = "127.0.0.1:0"
	cfg.SSH.HostKey = filepath.Join(dir, "host_key")
	cfg.HTTP.Address = ""

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	return srv
}

func TestSSHServerShutdownHooksRunBeforeStoreCloses(t *testing.T) {
	srv := newTestSSHServer(t)
	if srv.Store() == nil {
		t.Fatal("server should open the scores database")
	}

	var order []string
	srv.OnShutdown(func(ctx context.Context) error {
		store := srv.Store()
		if store == nil {
			t.Error("store already closed when the hook ran")
			return nil
		}
		// The store must still answer queries.
		if _, err := store.BestScore(flappy.ID); err != nil {
			t.Errorf("BestScore() during shutdown failed: %v", err)
		}
		order = append(order, "first")
		return nil
	})
	srv.OnShutdown(func(ctx context.Context) error {
		order = append(order, "second")
		return nil
	})

	if err := srv.Shutdown(); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("hooks ran as %v, expected [first second]", order)
	}
	if srv.Store() != nil {
		t.Error("store should be closed after Shutdown")
	}
}

func TestSSHServerShutdownReportsHookErrors(t *testing.T) {
	srv := newTestSSHServer(t)
	boom := errors.New("boom")
	ran := false

	srv.OnShutdown(func(context.Context) error { return boom })
	srv.OnShutdown(func(context.Context) error {
		ran = true
		return nil
	})

	err := srv.Shutdown()
	if !errors.Is(err, boom) {
		t.Errorf("Shutdown() error = %v, expected to wrap %v", err, boom)
	}
	if !ran {
		t.Error("a failing hook should not stop later hooks")
	}
	if srv.Store() != nil {
		t.Error("store should be closed even when a hook fails")
	}
}
