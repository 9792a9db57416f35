package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joestump/joe-bookmarks/internal/db"
	"github.com/joestump/joe-bookmarks/internal/logger"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.close()

			version, err := db.Version(e.db, e.cfg.DB.Driver)
			if err != nil {
				return fmt.Errorf("read schema version: %w", err)
			}
			e.log.Info("migrations complete", logger.String("driver", e.cfg.DB.Driver), logger.Int64("version", version))
			return nil
		},
	}
}
