package repo

import (
	"path/filepath"
	"testing"

	"github.com/mkarag/go-records-api/internal/config"
	"github.com/mkarag/go-records-api/internal/domain"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(config.DBConfig{Driver: "oracle"}, false)
	if err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}

func TestOpen_SQLite_MissingParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "records.db")
	if _, err := Open(config.DBConfig{Driver: "sqlite", Path: path}, false); err == nil {
		t.Fatalf("expected error for missing parent directory")
	}
}

func TestOpen_SQLite_PinsSingleConnection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.db")
	db, err := Open(config.DBConfig{Driver: "sqlite", Path: path}, false)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	if got := sqlDB.Stats().MaxOpenConnections; got != 1 {
		t.Fatalf("MaxOpenConnections = %d, want 1", got)
	}
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.db")
	db, err := Open(config.DBConfig{Driver: "sqlite", Path: path}, false)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	// Safe to call on every process start.
	if err := EnsureSchema(db); err != nil {
		t.Fatalf("EnsureSchema (first): %v", err)
	}
	if err := EnsureSchema(db); err != nil {
		t.Fatalf("EnsureSchema (second): %v", err)
	}

	m := db.Migrator()
	if !m.HasTable(&domain.Record{}) {
		t.Fatalf("records table missing after EnsureSchema")
	}
	for _, col := range []string{"id", "name", "created_at"} {
		if !m.HasColumn(&domain.Record{}, col) {
			t.Fatalf("column %q missing after EnsureSchema", col)
		}
	}
}
