// Package manager es la fachada que los clientes externos invocan: serializa las
// operaciones en un orden total, las aplica sobre la máquina de estados del ledger y
// persiste cada operación aceptada antes de publicar el nuevo estado.
package manager

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/everledger-liquor/internal/application/dto"
	"github.com/jhoicas/everledger-liquor/internal/domain"
	"github.com/jhoicas/everledger-liquor/internal/domain/entity"
	"github.com/jhoicas/everledger-liquor/internal/domain/ledger"
	"github.com/jhoicas/everledger-liquor/internal/domain/repository"
	"github.com/jhoicas/everledger-liquor/pkg/logger"
)

// ErrReplayDiverged indica que el log persistido no se puede re-aplicar sobre el estado.
var ErrReplayDiverged = errors.New("el replay del log de operaciones divergió")

// Manager es el único ejecutor serial del ledger.
type Manager struct {
	mu          sync.RWMutex
	state       *ledger.State
	txRunner    TxRunner
	opRepo      repository.OperationRepository
	productRepo repository.ProductRecordRepository
	log         *logger.Logger
	now         func() time.Time
}

// New construye el manager con estado génesis. Llamar Replay antes de atender tráfico.
func New(
	txRunner TxRunner,
	opRepo repository.OperationRepository,
	productRepo repository.ProductRecordRepository,
	log *logger.Logger,
) *Manager {
	if log == nil {
		log = logger.Nop()
	}
	return &Manager{
		state:       ledger.NewState(),
		txRunner:    txRunner,
		opRepo:      opRepo,
		productRepo: productRepo,
		log:         log.Component("manager"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Replay reconstruye el estado aplicando el log persistido en orden de secuencia.
// Devuelve la cantidad de operaciones aplicadas.
func (m *Manager) Replay(ctx context.Context) (int, error) {
	ops, err := m.opRepo.List(ctx, 0, 0)
	if err != nil {
		return 0, fmt.Errorf("leer log de operaciones: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	state := ledger.NewState()
	for _, op := range ops {
		if _, err := state.Apply(*op); err != nil {
			return 0, fmt.Errorf("%w: seq %d (%s): %v", ErrReplayDiverged, op.Seq, op.Kind, err)
		}
	}
	m.state = state
	m.log.Info().Int("operations", len(ops)).Uint64("seq", state.Seq()).Msg("estado reconstruido desde el log")
	return len(ops), nil
}

// Seq devuelve la secuencia de la última operación aplicada.
func (m *Manager) Seq() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Seq()
}

// RegisterMyIdentity vincula name a la dirección del llamador en el rol.
func (m *Manager) RegisterMyIdentity(ctx context.Context, caller string, role entity.VendorRole, name string) (*dto.OperationResult, error) {
	return m.execute(ctx, entity.Operation{
		Kind:   entity.OpRegisterIdentity,
		Caller: caller,
		Role:   role,
		Name:   strings.TrimSpace(name),
	})
}

// UpdateCompanyName retira el nombre vigente del llamador en el rol e instala newName.
func (m *Manager) UpdateCompanyName(ctx context.Context, caller string, role entity.VendorRole, newName string) (*dto.OperationResult, error) {
	return m.execute(ctx, entity.Operation{
		Kind:   entity.OpUpdateCompanyName,
		Caller: caller,
		Role:   role,
		Name:   strings.TrimSpace(newName),
	})
}

// AddLabelStandardCost publica el costo de una etiqueta. vendorName debe resolver como
// proveedor de etiquetas y pertenecer al llamador.
func (m *Manager) AddLabelStandardCost(ctx context.Context, caller string, in dto.AddLabelCostRequest) (*dto.OperationResult, error) {
	return m.execute(ctx, entity.Operation{
		Kind:         entity.OpAddLabelCost,
		Caller:       caller,
		VendorName:   strings.TrimSpace(in.VendorName),
		ProductLabel: strings.TrimSpace(in.ProductLabel),
		Cost:         in.Cost,
	})
}

// FillProduct registra un lote de producción a nombre del fabricante de bebidas llamador.
func (m *Manager) FillProduct(ctx context.Context, caller string, in dto.FillProductRequest) (*dto.OperationResult, error) {
	fill := entity.Fill{
		ProductID:    strings.TrimSpace(in.ProductID),
		Quantity:     in.Quantity,
		Volume:       in.Volume,
		Batch:        in.Batch,
		Day:          in.Day,
		Month:        in.Month,
		Year:         in.Year,
		LabelVendor:  strings.TrimSpace(in.LabelVendor),
		ProductLabel: strings.TrimSpace(in.ProductLabel),
	}
	return m.execute(ctx, entity.Operation{
		Kind:   entity.OpFillProduct,
		Caller: caller,
		Fill:   &fill,
	})
}

// GetVendorAddress resuelve (role, name) a la dirección autorizada. ErrNotFound si no está vivo.
func (m *Manager) GetVendorAddress(role entity.VendorRole, name string) (*dto.VendorAddressResponse, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("rol %q: %w", role, domain.ErrInvalidInput)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	address, err := m.state.Identities.Resolve(role, name)
	if err != nil {
		return nil, err
	}
	return &dto.VendorAddressResponse{Role: string(role), Name: name, Address: address}, nil
}

// GetLabelCost devuelve el costo de (vendorName, productLabel).
func (m *Manager) GetLabelCost(vendorName, productLabel string) (*dto.LabelCostResponse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cost, err := m.state.Costs.Get(vendorName, productLabel)
	if err != nil {
		return nil, err
	}
	return &dto.LabelCostResponse{VendorName: vendorName, ProductLabel: productLabel, Cost: cost}, nil
}

// ProductExists informa si productID ya fue registrado.
func (m *Manager) ProductExists(productID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Products.Exists(productID)
}

// GetProduct devuelve el registro de procedencia de productID.
func (m *Manager) GetProduct(productID string) (*dto.ProductResponse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, err := m.state.Products.Get(productID)
	if err != nil {
		return nil, err
	}
	return recordToProductResponse(&rec), nil
}

// ListProductsByVendor lista, desde la proyección persistida, los lotes de un fabricante.
func (m *Manager) ListProductsByVendor(ctx context.Context, vendorAddress string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := m.productRepo.ListByVendor(ctx, vendorAddress, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, rec := range list {
		items = append(items, *recordToProductResponse(rec))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListOperations devuelve el log a partir de afterSeq (exclusivo).
func (m *Manager) ListOperations(ctx context.Context, afterSeq uint64, limit int) (*dto.OperationListResponse, error) {
	ops, err := m.opRepo.List(ctx, afterSeq, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OperationResponse, 0, len(ops))
	for _, op := range ops {
		items = append(items, operationToResponse(op))
	}
	return &dto.OperationListResponse{Items: items, LastSeq: m.Seq()}, nil
}

// execute asigna secuencia, calcula la transición sobre una copia, persiste y solo
// entonces publica el nuevo estado. Cualquier fallo deja el estado intacto.
func (m *Manager) execute(ctx context.Context, op entity.Operation) (*dto.OperationResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	op.Seq = m.state.Seq() + 1
	next, receipt, err := ledger.Transition(m.state, op)
	if err != nil {
		m.log.Warn().
			Str("kind", string(op.Kind)).
			Str("caller", op.Caller).
			Str("code", domain.KindOf(err)).
			Err(err).
			Msg("operación rechazada")
		return nil, err
	}

	op.ID = uuid.New().String()
	op.RecordedAt = m.now()
	if err := m.txRunner.Run(ctx, func(repos repository.LedgerRepos) error {
		return persist(ctx, repos, &op, receipt)
	}); err != nil {
		m.log.Error().Uint64("seq", op.Seq).Str("kind", string(op.Kind)).Err(err).Msg("persistir operación")
		return nil, fmt.Errorf("persistir operación %d: %w", op.Seq, err)
	}

	m.state = next
	m.log.Info().
		Uint64("seq", op.Seq).
		Str("kind", string(op.Kind)).
		Str("caller", op.Caller).
		Str("role", string(receipt.Role)).
		Str("name", receipt.Name).
		Msg("operación aplicada")
	return receiptToResult(receipt), nil
}

func persist(ctx context.Context, repos repository.LedgerRepos, op *entity.Operation, r ledger.Receipt) error {
	if err := repos.Operations.Append(ctx, op); err != nil {
		return err
	}
	switch op.Kind {
	case entity.OpRegisterIdentity:
		return repos.Vendors.Upsert(ctx, entity.VendorIdentity{Role: r.Role, Name: r.Name, Address: r.Address}, r.Seq)
	case entity.OpUpdateCompanyName:
		if r.PreviousName != r.Name {
			if err := repos.Vendors.Supersede(ctx, r.Role, r.PreviousName, r.Seq); err != nil {
				return err
			}
		}
		return repos.Vendors.Upsert(ctx, entity.VendorIdentity{Role: r.Role, Name: r.Name, Address: r.Address}, r.Seq)
	case entity.OpAddLabelCost:
		return repos.Costs.Upsert(ctx, *r.CostEntry, r.Seq)
	case entity.OpFillProduct:
		return repos.Products.Create(ctx, r.Product)
	}
	return nil
}

func receiptToResult(r ledger.Receipt) *dto.OperationResult {
	out := &dto.OperationResult{
		Success:      true,
		Seq:          r.Seq,
		Kind:         string(r.Kind),
		Role:         string(r.Role),
		Name:         r.Name,
		PreviousName: r.PreviousName,
		Address:      r.Address,
		PreviousCost: r.PreviousCost,
	}
	if r.CostEntry != nil {
		cost := r.CostEntry.Cost
		out.Cost = &cost
		out.ProductLabel = r.CostEntry.ProductLabel
	}
	if r.Product != nil {
		out.ProductID = r.Product.ProductID
		out.ProductLabel = r.Product.ProductLabel
	}
	return out
}

func recordToProductResponse(rec *entity.ProductRecord) *dto.ProductResponse {
	return &dto.ProductResponse{
		ProductID:     rec.ProductID,
		VendorAddress: rec.VendorAddress,
		VendorName:    rec.VendorName,
		Quantity:      rec.Quantity,
		Volume:        rec.Volume,
		Batch:         rec.Batch,
		Day:           rec.Day,
		Month:         rec.Month,
		Year:          rec.Year,
		LabelVendor:   rec.LabelVendor,
		ProductLabel:  rec.ProductLabel,
		LabelCost:     rec.LabelCost,
		Seq:           rec.Seq,
	}
}

func operationToResponse(op *entity.Operation) dto.OperationResponse {
	out := dto.OperationResponse{
		Seq:          op.Seq,
		ID:           op.ID,
		Kind:         string(op.Kind),
		Caller:       op.Caller,
		Role:         string(op.Role),
		Name:         op.Name,
		VendorName:   op.VendorName,
		ProductLabel: op.ProductLabel,
		Cost:         op.Cost,
		RecordedAt:   op.RecordedAt,
	}
	if op.Fill != nil {
		out.ProductID = op.Fill.ProductID
		out.ProductLabel = op.Fill.ProductLabel
	}
	return out
}
