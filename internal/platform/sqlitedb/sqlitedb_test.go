package sqlitedb

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	if err != nil {
		t.Fatalf("tableExists query failed: %v", err)
	}
	return n > 0
}

func TestOpenCreatesUsersTable(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "user_data.db")

	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = db.Close() }()

	if !tableExists(t, db, "users") {
		t.Fatalf("expected users table after open")
	}
	if !tableExists(t, db, "goose_db_version") {
		t.Fatalf("expected goose_db_version table after open")
	}
}

func TestReopenKeepsExistingRows(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "user_data.db")

	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if _, err := db.ExecContext(ctx, `INSERT INTO users (username, password) VALUES ('alice', 'secret')`); err != nil {
		t.Fatalf("seed row: %v", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		t.Fatalf("second migration run should be a no-op: %v", err)
	}
	_ = db.Close()

	db, err = Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = db.Close() }()

	var password string
	if err := db.QueryRowContext(ctx, `SELECT password FROM users WHERE username = 'alice'`).Scan(&password); err != nil {
		t.Fatalf("read seeded row: %v", err)
	}
	if password != "secret" {
		t.Fatalf("expected seeded password to survive reopen, got %q", password)
	}
}
