package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/everledger-liquor/internal/infrastructure/postgres"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Aplica o revierte el esquema PostgreSQL embebido",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{postgres.MigrateUp, postgres.MigrateDown},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig(false)
		if err != nil {
			return err
		}
		version, err := postgres.Migrate(cfg.DB.ConnectionString(), args[0])
		if err != nil {
			return err
		}
		log.Info().Str("direction", args[0]).Uint("version", version).Msg("migraciones aplicadas")
		fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", version)
		return nil
	},
}
