package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Re-aplica el log de operaciones y verifica que el estado se reconstruye",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := loadConfig(false)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		m, closeStore, err := openManager(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer closeStore()

		n, err := m.Replay(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d operaciones re-aplicadas, seq=%d\n", n, m.Seq())
		return nil
	},
}
