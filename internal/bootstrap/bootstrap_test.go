package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	"dtimer/internal/platform/config"
)

func TestNewWiresAccountHandlers(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	cfg := config.Config{
		DBPath:  filepath.Join(dir, "user_data.db"),
		LogFile: filepath.Join(dir, "dtimer.log"),
	}

	app, err := New(ctx, cfg)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			t.Fatalf("close app: %v", err)
		}
	}()

	created, err := app.AccountTUI.CreateAccount(ctx, "alice", "secret")
	if err != nil || !created {
		t.Fatalf("create through tui handler: created=%v err=%v", created, err)
	}
	notice, err := app.AccountCLI.Check(ctx, "alice", "secret")
	if err != nil {
		t.Fatalf("check through cli handler: %v", err)
	}
	if notice.Message != "Welcome, alice!" {
		t.Fatalf("unexpected notice %+v", notice)
	}
}

func TestNewFailsOnUnusableDatabase(t *testing.T) {
	dir := t.TempDir()
	// The directory itself cannot be opened as a database file.
	if _, err := New(context.Background(), config.Config{DBPath: dir}); err == nil {
		t.Fatalf("expected error when db path is a directory")
	}
}
