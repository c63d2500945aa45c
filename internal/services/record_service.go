// Package services – RecordService
//
// This file implements the RecordService, which fronts the three record
// operations (insert by name, select by name, drop-all) over an explicitly
// injected GORM handle. It maps driver-specific failures to stable sentinel
// errors so handlers can translate them to HTTP results consistently.
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/mkarag/go-records-api/internal/domain"
	"github.com/mkarag/go-records-api/internal/repo"
)

// RecordService implements the use-cases around stored records.
//
// Each call is a single statement under auto-commit semantics: it is durably
// applied on return, and there is no atomicity across calls. The service is
// context-aware and safe for concurrent use; the underlying pool serializes
// access to the single datastore connection.
type RecordService struct {
	// DB is the database handle used for all record operations.
	DB *gorm.DB
}

// Insert stores a new record with the given name and returns it with the
// datastore-assigned id. A missing records table (dropped and not yet
// re-initialized) is reported as ErrTableMissing.
func (s *RecordService) Insert(ctx context.Context, name string) (*domain.Record, error) {
	r, err := repo.CreateRecord(ctx, s.DB, name)
	if err != nil {
		if isMissingTable(err) {
			return nil, ErrTableMissing
		}
		return nil, err
	}
	return r, nil
}

// FindByName returns all records matching name in insertion order. An empty
// (non-nil) slice means no matches. A missing records table is reported as
// ErrTableMissing.
func (s *RecordService) FindByName(ctx context.Context, name string) ([]domain.Record, error) {
	out, err := repo.ListRecordsByName(ctx, s.DB, name)
	if err != nil {
		if isMissingTable(err) {
			return nil, ErrTableMissing
		}
		return nil, err
	}
	return out, nil
}

// DropAll removes the records table entirely. It is idempotent (DROP TABLE
// IF EXISTS): dropping an already-absent table succeeds. Operations that
// need the table afterwards must re-run repo.EnsureSchema.
func (s *RecordService) DropAll(ctx context.Context) error {
	return repo.DropRecordsTable(ctx, s.DB)
}

// isMissingTable detects "table does not exist" failures across drivers.
func isMissingTable(err error) bool {
	// SQLite typically: "no such table: records"
	// Postgres typically: `relation "records" does not exist` (SQLSTATE 42P01)
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "no such table") ||
		strings.Contains(msg, "does not exist") ||
		strings.Contains(msg, "42p01")
}
