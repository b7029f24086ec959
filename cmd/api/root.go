package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/everledger-liquor/internal/application/manager"
	"github.com/jhoicas/everledger-liquor/internal/infrastructure/memory"
	"github.com/jhoicas/everledger-liquor/internal/infrastructure/postgres"
	"github.com/jhoicas/everledger-liquor/pkg/config"
	"github.com/jhoicas/everledger-liquor/pkg/logger"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "everledger",
	Short:   "Registro de identidades, costos y procedencia de licores",
	Version: version,
	// Sin subcomando se levanta la API.
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, replayCmd, tokenCmd)
}

// loadConfig carga y valida la configuración y arma el logger de la app.
func loadConfig(requireSecret bool) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	if err := cfg.Validate(requireSecret); err != nil {
		return nil, nil, err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	return cfg, log, nil
}

// openManager abre el almacenamiento configurado y devuelve un manager sin replay.
func openManager(ctx context.Context, cfg *config.Config, log *logger.Logger) (*manager.Manager, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Warn().Msg("almacenamiento en memoria: el ledger se pierde al reiniciar")
		store := memory.NewStore()
		return manager.New(store, store.Operations(), store.Products(), log), func() {}, nil
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		m := manager.New(
			postgres.NewTxRunner(pool),
			postgres.NewOperationRepository(pool),
			postgres.NewProductRecordRepository(pool),
			log,
		)
		return m, pool.Close, nil
	}
}
