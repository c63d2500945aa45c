// Package repo implements the data persistence layer for the records table,
// backed by GORM. This file contains database bootstrapping for the two
// supported drivers (PostgreSQL and pure-Go SQLite) and the idempotent
// schema initializer.
package repo

import (
	"fmt"
	"os"
	"path/filepath"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/mkarag/go-records-api/internal/config"
	"github.com/mkarag/go-records-api/internal/domain"
)

// Open establishes the datastore connection for the configured driver and
// returns the shared handle. Auto-commit semantics apply: every statement is
// applied immediately, with no transaction spanning multiple operations.
//
// The underlying pool is pinned to a single open connection, preserving the
// one-connection model of the original deployment: the HTTP layer may accept
// requests concurrently, but the datastore serializes them.
//
// When withTracing is true, the GORM OpenTelemetry plugin is installed so
// queries appear as spans under the incoming request trace.
func Open(cfg config.DBConfig, withTracing bool) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Driver {
	case "postgres":
		db, err = openPostgres(cfg)
	case "sqlite":
		db, err = openSQLite(cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported DB driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}

	if withTracing {
		if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// openPostgres connects to PostgreSQL using the externally supplied
// credentials. sslmode defaults to "require" upstream in config, matching
// managed offerings that enforce TLS.
func openPostgres(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode,
	)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// openSQLite opens (or creates) a SQLite database and applies PRAGMAs.
func openSQLite(path string) (*gorm.DB, error) {
	// Fail early if parent directory does not exist (instead of sqlite "out of memory (14)" on Windows).
	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// PRAGMAs
	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA synchronous=NORMAL;")
	db.Exec("PRAGMA busy_timeout=5000;")

	return db, nil
}

// EnsureSchema creates the records table if it is absent. It is idempotent
// and safe to run on every process start; there is no schema versioning.
func EnsureSchema(db *gorm.DB) error {
	return db.AutoMigrate(&domain.Record{})
}
