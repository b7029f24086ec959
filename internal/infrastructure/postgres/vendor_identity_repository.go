package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/everledger-liquor/internal/domain"
	"github.com/jhoicas/everledger-liquor/internal/domain/entity"
	"github.com/jhoicas/everledger-liquor/internal/domain/repository"
)

var _ repository.VendorIdentityRepository = (*VendorIdentityRepo)(nil)

// VendorIdentityRepo mantiene la proyección de identidades vivas y retiradas.
type VendorIdentityRepo struct {
	db Querier
}

// NewVendorIdentityRepository construye el adaptador sobre un pool o una tx.
func NewVendorIdentityRepository(db Querier) *VendorIdentityRepo {
	return &VendorIdentityRepo{db: db}
}

// Upsert marca (role, name) como vivo para address desde seq.
func (r *VendorIdentityRepo) Upsert(ctx context.Context, identity entity.VendorIdentity, seq uint64) error {
	s, err := toBigint("seq", seq)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO vendor_identities (role, name, address, live, registered_seq, superseded_seq)
		VALUES ($1, $2, $3, TRUE, $4, NULL)
		ON CONFLICT (role, name) DO UPDATE
		SET address = EXCLUDED.address, live = TRUE,
		    registered_seq = EXCLUDED.registered_seq, superseded_seq = NULL`
	if _, err := r.db.Exec(ctx, query, string(identity.Role), identity.Name, identity.Address, s); err != nil {
		return fmt.Errorf("upsert vendor identity: %w", err)
	}
	return nil
}

// Supersede retira (role, name); la fila se conserva para auditoría.
func (r *VendorIdentityRepo) Supersede(ctx context.Context, role entity.VendorRole, name string, seq uint64) error {
	s, err := toBigint("seq", seq)
	if err != nil {
		return err
	}
	cmd, err := r.db.Exec(ctx, `
		UPDATE vendor_identities SET live = FALSE, superseded_seq = $3
		WHERE role = $1 AND name = $2`, string(role), name, s)
	if err != nil {
		return fmt.Errorf("supersede vendor identity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("retirar %s %q: %w", role, name, domain.ErrNotFound)
	}
	return nil
}
