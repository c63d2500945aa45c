// Command demo walks through the full record lifecycle once, without HTTP:
// connect, ensure the schema, insert a record for the given name (first CLI
// argument, defaulting to "john"), read the matching records back, and drop
// the table. It is the guided-tour counterpart to cmd/api.
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/mkarag/go-records-api/internal/config"
	"github.com/mkarag/go-records-api/internal/http/handlers"
	"github.com/mkarag/go-records-api/internal/repo"
	"github.com/mkarag/go-records-api/internal/services"
	"github.com/mkarag/go-records-api/internal/sysutil"
)

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()
	sysutil.InitLogger(cfg.LogLevel, true)

	name := handlers.DefaultRecordName
	if len(os.Args) > 1 && os.Args[1] != "" {
		name = os.Args[1]
	}

	db, err := repo.Open(cfg.DB, false)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("database connection failed")
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()
	log.Info().Str("driver", cfg.DB.Driver).Msg("connected")

	ctx := context.Background()
	if err := repo.EnsureSchema(db); err != nil {
		log.Fatal().Err(err).Msg("schema initialization failed")
	}

	svc := &services.RecordService{DB: db}

	inserted, err := svc.Insert(ctx, name)
	if err != nil {
		log.Fatal().Err(err).Msg("insert failed")
	}
	log.Info().Int64("id", inserted.ID).Str("name", inserted.Name).Msg("record inserted")

	records, err := svc.FindByName(ctx, name)
	if err != nil {
		log.Fatal().Err(err).Msg("select failed")
	}
	for _, r := range records {
		log.Info().
			Int64("id", r.ID).
			Str("name", r.Name).
			Time("created_at", r.CreatedAt).
			Msg("record")
	}

	if err := svc.DropAll(ctx); err != nil {
		log.Fatal().Err(err).Msg("drop failed")
	}
	log.Info().Msg("records table dropped")
}
