package repo

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// test DB helper
func newRecordRepoDB(t *testing.T, migrate bool) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("record_repo_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if migrate {
		if err := EnsureSchema(db); err != nil {
			t.Fatalf("ensure schema: %v", err)
		}
	}
	return db
}

func TestCreateRecord_AssignsIDAndTimestamp(t *testing.T) {
	db := newRecordRepoDB(t, true)
	ctx := context.Background()

	r, err := CreateRecord(ctx, db, "bob")
	if err != nil {
		t.Fatalf("CreateRecord: %v", err)
	}
	if r.ID == 0 || r.Name != "bob" {
		t.Fatalf("unexpected record: %+v", r)
	}
	if r.CreatedAt.IsZero() || time.Since(r.CreatedAt) > time.Minute {
		t.Fatalf("CreatedAt not set reasonably: %v", r.CreatedAt)
	}
}

func TestListRecordsByName_InsertionOrderAndFiltering(t *testing.T) {
	db := newRecordRepoDB(t, true)
	ctx := context.Background()

	for _, name := range []string{"alice", "bob", "alice", "alice"} {
		if _, err := CreateRecord(ctx, db, name); err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
	}

	got, err := ListRecordsByName(ctx, db, "alice")
	if err != nil {
		t.Fatalf("ListRecordsByName: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3: %+v", len(got), got)
	}
	for i, r := range got {
		if r.Name != "alice" {
			t.Fatalf("record %d has name %q", i, r.Name)
		}
		if i > 0 && got[i-1].ID >= r.ID {
			t.Fatalf("ids not strictly increasing: %+v", got)
		}
	}
}

func TestListRecordsByName_EmptyIsNonNil(t *testing.T) {
	db := newRecordRepoDB(t, true)

	got, err := ListRecordsByName(context.Background(), db, "nobody")
	if err != nil {
		t.Fatalf("ListRecordsByName: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("want non-nil empty slice, got %#v", got)
	}
}

func TestDeleteRecordsByName_RemovesOnlyMatches(t *testing.T) {
	db := newRecordRepoDB(t, true)
	ctx := context.Background()

	for _, name := range []string{"alice", "bob", "alice"} {
		if _, err := CreateRecord(ctx, db, name); err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
	}

	n, err := DeleteRecordsByName(ctx, db, "alice")
	if err != nil {
		t.Fatalf("DeleteRecordsByName: %v", err)
	}
	if n != 2 {
		t.Fatalf("deleted %d rows, want 2", n)
	}

	left, err := CountRecords(ctx, db)
	if err != nil {
		t.Fatalf("CountRecords: %v", err)
	}
	if left != 1 {
		t.Fatalf("remaining = %d, want 1", left)
	}
}

func TestDropRecordsTable_ThenOperationsFailUntilEnsureSchema(t *testing.T) {
	db := newRecordRepoDB(t, true)
	ctx := context.Background()

	if _, err := CreateRecord(ctx, db, "bob"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := DropRecordsTable(ctx, db); err != nil {
		t.Fatalf("DropRecordsTable: %v", err)
	}

	// IF EXISTS semantics: dropping an absent table is not an error.
	if err := DropRecordsTable(ctx, db); err != nil {
		t.Fatalf("DropRecordsTable (absent): %v", err)
	}

	if _, err := ListRecordsByName(ctx, db, "bob"); err == nil {
		t.Fatalf("expected error listing after drop")
	}
	if _, err := CountRecords(ctx, db); err == nil {
		t.Fatalf("expected error counting after drop")
	}

	// Re-initializing the schema restores service.
	if err := EnsureSchema(db); err != nil {
		t.Fatalf("EnsureSchema after drop: %v", err)
	}
	got, err := ListRecordsByName(ctx, db, "bob")
	if err != nil {
		t.Fatalf("ListRecordsByName after re-init: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("table should be empty after drop + re-init, got %+v", got)
	}
}

func TestCountRecords_Error_NoTable(t *testing.T) {
	db := newRecordRepoDB(t, false /* no migration */)
	if _, err := CountRecords(context.Background(), db); err == nil {
		t.Fatalf("expected error due to missing records table")
	}
}
