package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/everledger-liquor/pkg/jwt"
)

var tokenCmd = &cobra.Command{
	Use:   "token <address>",
	Short: "Emite un Bearer Token para una dirección (entornos de desarrollo)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig(true)
		if err != nil {
			return err
		}
		if cfg.App.Env == "production" {
			log.Warn().Msg("emitiendo token manual en production")
		}
		tok, err := jwt.Generate(cfg.JWT.Secret, args[0], cfg.JWT.Issuer, cfg.JWT.Expiration)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}
