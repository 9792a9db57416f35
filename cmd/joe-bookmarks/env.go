package main

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/joestump/joe-bookmarks/internal/config"
	"github.com/joestump/joe-bookmarks/internal/db"
	"github.com/joestump/joe-bookmarks/internal/logger"
)

// env is what every subcommand starts from: config, a logger and a migrated
// database.
type env struct {
	cfg *config.Config
	log logger.Logger
	db  *sqlx.DB
}

func setup() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(database, cfg.DB.Driver); err != nil {
		_ = database.Close()
		return nil, err
	}
	return &env{cfg: cfg, log: log, db: database}, nil
}

func (e *env) close() {
	_ = e.db.Close()
	_ = e.log.Sync()
}
