// Package repo implements the data persistence layer for the records table,
// backed by GORM. This file provides the record operations: insert, select
// by name, selective delete, and table drop.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/mkarag/go-records-api/internal/domain"
)

// CreateRecord inserts a new row with the given name and returns it with the
// datastore-assigned id and creation timestamp populated.
func CreateRecord(ctx context.Context, db *gorm.DB, name string) (*domain.Record, error) {
	r := &domain.Record{Name: name}
	if err := db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

// ListRecordsByName returns all records matching name in insertion order
// (id ASC). The result is a non-nil empty slice when nothing matches, so it
// serializes to a JSON array rather than null.
func ListRecordsByName(ctx context.Context, db *gorm.DB, name string) ([]domain.Record, error) {
	out := make([]domain.Record, 0)
	err := db.WithContext(ctx).
		Where("name = ?", name).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

// DeleteRecordsByName removes all rows matching name and reports how many
// were deleted. It is not wired to the HTTP surface; the /delete route drops
// the whole table instead.
func DeleteRecordsByName(ctx context.Context, db *gorm.DB, name string) (int64, error) {
	res := db.WithContext(ctx).Where("name = ?", name).Delete(&domain.Record{})
	return res.RowsAffected, res.Error
}

// DropRecordsTable removes the records table entirely (DROP TABLE IF EXISTS
// via the GORM migrator). Subsequent operations that need the table must run
// EnsureSchema again.
func DropRecordsTable(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Migrator().DropTable(&domain.Record{})
}

// CountRecords uses a raw COUNT so a missing table surfaces as an error
// rather than a silent zero.
func CountRecords(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Raw("SELECT COUNT(*) FROM records").Scan(&total).Error
	return total, err
}
