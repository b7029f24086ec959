package repository

import (
	"context"

	"github.com/jhoicas/everledger-liquor/internal/domain/entity"
)

// VendorIdentityRepository proyecta el registro de identidades para auditoría SQL.
type VendorIdentityRepository interface {
	// Upsert deja (role, name) vivo y vinculado a la dirección.
	Upsert(ctx context.Context, identity entity.VendorIdentity, seq uint64) error
	// Supersede marca (role, name) como retirado por la operación seq.
	Supersede(ctx context.Context, role entity.VendorRole, name string, seq uint64) error
}

// CostEntryRepository proyecta el catálogo de costos.
type CostEntryRepository interface {
	Upsert(ctx context.Context, entry entity.CostEntry, seq uint64) error
}

// ProductRecordRepository proyecta el ledger de procedencia.
type ProductRecordRepository interface {
	Create(ctx context.Context, record *entity.ProductRecord) error
	ListByVendor(ctx context.Context, vendorAddress string, limit, offset int) ([]*entity.ProductRecord, error)
}

// LedgerRepos agrupa los repositorios atados a una misma transacción.
type LedgerRepos struct {
	Operations OperationRepository
	Vendors    VendorIdentityRepository
	Costs      CostEntryRepository
	Products   ProductRecordRepository
}
