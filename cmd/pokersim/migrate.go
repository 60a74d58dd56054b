package main

import (
	"pokersim-server/cmd/pokersim/shared"
	"pokersim-server/internal/config"
	"pokersim-server/pkg/db"
)

// MigrateCmd runs the SQL migrations against the configured database
type MigrateCmd struct{}

// Run applies the migrations
func (c *MigrateCmd) Run(cli *CLI) error {
	logger := shared.SetupLogger(cli.Debug)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	conn, err := db.Connect(cfg.PGDSN)
	if err != nil {
		return err
	}
	defer conn.Close()

	return db.Migrate(conn, cfg.MigrationsPath, logger)
}
