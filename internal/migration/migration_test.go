package migration

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/avstrong/hotelsearch/internal/logger"

	_ "modernc.org/sqlite"
)

func TestUp_IsIdempotent(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "kv.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := Up(ctx, logger.Discard(), db); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}

	var name string

	row := db.QueryRowContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'kv_store'`)
	if err := row.Scan(&name); err != nil {
		t.Fatalf("kv_store table missing: %v", err)
	}
}
