package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/everledger-liquor/internal/domain/entity"
	"github.com/jhoicas/everledger-liquor/internal/domain/repository"
)

var _ repository.CostEntryRepository = (*CostEntryRepo)(nil)

// CostEntryRepo mantiene la proyección del catálogo de costos.
type CostEntryRepo struct {
	db Querier
}

// NewCostEntryRepository construye el adaptador sobre un pool o una tx.
func NewCostEntryRepository(db Querier) *CostEntryRepo {
	return &CostEntryRepo{db: db}
}

// Upsert guarda el costo vigente de (vendor_name, product_label).
func (r *CostEntryRepo) Upsert(ctx context.Context, entry entity.CostEntry, seq uint64) error {
	cost, err := toBigint("cost", entry.Cost)
	if err != nil {
		return err
	}
	s, err := toBigint("seq", seq)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO cost_entries (vendor_name, product_label, cost, updated_seq)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (vendor_name, product_label) DO UPDATE
		SET cost = EXCLUDED.cost, updated_seq = EXCLUDED.updated_seq`
	if _, err := r.db.Exec(ctx, query, entry.VendorName, entry.ProductLabel, cost, s); err != nil {
		return fmt.Errorf("upsert cost entry: %w", err)
	}
	return nil
}
