// Package memory implementa los puertos de persistencia en memoria (driver "memory").
// Mismas garantías que el adaptador PostgreSQL: cada Run es todo-o-nada.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jhoicas/everledger-liquor/internal/application/manager"
	"github.com/jhoicas/everledger-liquor/internal/domain"
	"github.com/jhoicas/everledger-liquor/internal/domain/entity"
	"github.com/jhoicas/everledger-liquor/internal/domain/repository"
)

var _ manager.TxRunner = (*Store)(nil)

// VendorRow es la proyección de una identidad (viva o retirada).
type VendorRow struct {
	entity.VendorIdentity
	Live          bool
	RegisteredSeq uint64
	SupersededSeq uint64
}

type vendorKey struct {
	role entity.VendorRole
	name string
}

type costKey struct {
	vendor string
	label  string
}

type costRow struct {
	entity.CostEntry
	Seq uint64
}

// Store guarda el log y las proyecciones. El lock de escritura se mantiene durante todo Run.
type Store struct {
	mu       sync.RWMutex
	ops      []*entity.Operation
	vendors  map[vendorKey]VendorRow
	costs    map[costKey]costRow
	products map[string]*entity.ProductRecord
	order    []string
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		vendors:  make(map[vendorKey]VendorRow),
		costs:    make(map[costKey]costRow),
		products: make(map[string]*entity.ProductRecord),
	}
}

// Run ejecuta fn con repositorios que acumulan escrituras; si fn no falla se aplican todas.
func (s *Store) Run(ctx context.Context, fn func(repos repository.LedgerRepos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{store: s}
	if err := fn(tx.repos()); err != nil {
		return err
	}
	tx.commit()
	return nil
}

// Operations devuelve el repositorio del log fuera de transacción.
func (s *Store) Operations() repository.OperationRepository {
	return &operationRepo{store: s}
}

// Products devuelve el repositorio de registros fuera de transacción.
func (s *Store) Products() repository.ProductRecordRepository {
	return &productRepo{store: s}
}

// Identity devuelve la fila proyectada de (role, name).
func (s *Store) Identity(role entity.VendorRole, name string) (VendorRow, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.vendors[vendorKey{role: role, name: name}]
	return row, ok
}

// CostEntry devuelve la fila proyectada del costo.
func (s *Store) CostEntry(vendorName, productLabel string) (entity.CostEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.costs[costKey{vendor: vendorName, label: productLabel}]
	return row.CostEntry, ok
}

func (s *Store) lastSeq() uint64 {
	if len(s.ops) == 0 {
		return 0
	}
	return s.ops[len(s.ops)-1].Seq
}

// memTx acumula escrituras; se validan contra el store y contra lo pendiente.
type memTx struct {
	store    *Store
	ops      []*entity.Operation
	writes   []func(s *Store)
	products map[string]bool
}

func (tx *memTx) repos() repository.LedgerRepos {
	return repository.LedgerRepos{
		Operations: &txOperationRepo{tx: tx},
		Vendors:    &txVendorRepo{tx: tx},
		Costs:      &txCostRepo{tx: tx},
		Products:   &txProductRepo{tx: tx},
	}
}

func (tx *memTx) commit() {
	tx.store.ops = append(tx.store.ops, tx.ops...)
	for _, w := range tx.writes {
		w(tx.store)
	}
}

type txOperationRepo struct{ tx *memTx }

func (r *txOperationRepo) Append(_ context.Context, op *entity.Operation) error {
	last := r.tx.store.lastSeq()
	if n := len(r.tx.ops); n > 0 {
		last = r.tx.ops[n-1].Seq
	}
	if op.Seq <= last {
		return fmt.Errorf("append operación %d tras %d: %w", op.Seq, last, domain.ErrInvalidInput)
	}
	cp := *op
	r.tx.ops = append(r.tx.ops, &cp)
	return nil
}

func (r *txOperationRepo) List(_ context.Context, afterSeq uint64, limit int) ([]*entity.Operation, error) {
	return listOps(r.tx.store.ops, afterSeq, limit), nil
}

func (r *txOperationRepo) LastSeq(context.Context) (uint64, error) {
	return r.tx.store.lastSeq(), nil
}

type txVendorRepo struct{ tx *memTx }

func (r *txVendorRepo) Upsert(_ context.Context, identity entity.VendorIdentity, seq uint64) error {
	r.tx.writes = append(r.tx.writes, func(s *Store) {
		s.vendors[vendorKey{role: identity.Role, name: identity.Name}] = VendorRow{
			VendorIdentity: identity,
			Live:           true,
			RegisteredSeq:  seq,
		}
	})
	return nil
}

func (r *txVendorRepo) Supersede(_ context.Context, role entity.VendorRole, name string, seq uint64) error {
	key := vendorKey{role: role, name: name}
	if _, ok := r.tx.store.vendors[key]; !ok {
		return fmt.Errorf("retirar %s %q: %w", role, name, domain.ErrNotFound)
	}
	r.tx.writes = append(r.tx.writes, func(s *Store) {
		row := s.vendors[key]
		row.Live = false
		row.SupersededSeq = seq
		s.vendors[key] = row
	})
	return nil
}

type txCostRepo struct{ tx *memTx }

func (r *txCostRepo) Upsert(_ context.Context, entry entity.CostEntry, seq uint64) error {
	r.tx.writes = append(r.tx.writes, func(s *Store) {
		s.costs[costKey{vendor: entry.VendorName, label: entry.ProductLabel}] = costRow{CostEntry: entry, Seq: seq}
	})
	return nil
}

type txProductRepo struct{ tx *memTx }

func (r *txProductRepo) Create(_ context.Context, record *entity.ProductRecord) error {
	if _, ok := r.tx.store.products[record.ProductID]; ok || r.tx.products[record.ProductID] {
		return fmt.Errorf("crear registro %q: %w", record.ProductID, domain.ErrDuplicateProductID)
	}
	if r.tx.products == nil {
		r.tx.products = make(map[string]bool)
	}
	r.tx.products[record.ProductID] = true
	cp := *record
	r.tx.writes = append(r.tx.writes, func(s *Store) {
		s.products[cp.ProductID] = &cp
		s.order = append(s.order, cp.ProductID)
	})
	return nil
}

func (r *txProductRepo) ListByVendor(_ context.Context, vendorAddress string, limit, offset int) ([]*entity.ProductRecord, error) {
	return listByVendor(r.tx.store, vendorAddress, limit, offset), nil
}

type operationRepo struct{ store *Store }

func (r *operationRepo) Append(ctx context.Context, op *entity.Operation) error {
	return r.store.Run(ctx, func(repos repository.LedgerRepos) error {
		return repos.Operations.Append(ctx, op)
	})
}

func (r *operationRepo) List(_ context.Context, afterSeq uint64, limit int) ([]*entity.Operation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return listOps(r.store.ops, afterSeq, limit), nil
}

func (r *operationRepo) LastSeq(context.Context) (uint64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.lastSeq(), nil
}

type productRepo struct{ store *Store }

func (r *productRepo) Create(ctx context.Context, record *entity.ProductRecord) error {
	return r.store.Run(ctx, func(repos repository.LedgerRepos) error {
		return repos.Products.Create(ctx, record)
	})
}

func (r *productRepo) ListByVendor(_ context.Context, vendorAddress string, limit, offset int) ([]*entity.ProductRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return listByVendor(r.store, vendorAddress, limit, offset), nil
}

func listOps(ops []*entity.Operation, afterSeq uint64, limit int) []*entity.Operation {
	start := sort.Search(len(ops), func(i int) bool { return ops[i].Seq > afterSeq })
	end := len(ops)
	if limit > 0 && start+limit < end {
		end = start + limit
	}
	out := make([]*entity.Operation, 0, end-start)
	for _, op := range ops[start:end] {
		cp := *op
		out = append(out, &cp)
	}
	return out
}

func listByVendor(s *Store, vendorAddress string, limit, offset int) []*entity.ProductRecord {
	var out []*entity.ProductRecord
	skipped := 0
	for _, id := range s.order {
		rec := s.products[id]
		if rec.VendorAddress != vendorAddress {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		if limit > 0 && len(out) >= limit {
			break
		}
		cp := *rec
		out = append(out, &cp)
	}
	return out
}
