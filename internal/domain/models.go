// Package domain defines the persistence model for stored records. The type
// here is mapped with GORM and forms the entire data layer of the service.
package domain

import "time"

// Record represents a single named entry in the records table.
//
// Fields:
//   - ID: auto-incrementing integer primary key assigned by the datastore
//     (BIGSERIAL on PostgreSQL, INTEGER PRIMARY KEY on SQLite). Immutable
//     and unique once assigned.
//   - Name: free-form text the record is looked up by; indexed for
//     select-by-name queries.
//   - CreatedAt: insertion timestamp, populated by GORM at create time.
//
// Records are never updated in place. They are destroyed either by dropping
// the whole table or by a selective delete by name.
type Record struct {
	ID        int64     `json:"id"         gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name"       gorm:"type:varchar(255);index:idx_records_name"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
}

// TableName returns the database table name for Record.
func (Record) TableName() string { return "records" }
