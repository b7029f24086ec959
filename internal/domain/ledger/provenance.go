package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/everledger-liquor/internal/domain"
	"github.com/jhoicas/everledger-liquor/internal/domain/entity"
)

// Límites del volumen: el mismo rango que NUMERIC(20,6) en la proyección.
const VolumeScale = 6

var maxVolume = decimal.New(1, 14)

// CostLookup es lo que el ledger de procedencia necesita del catálogo.
type CostLookup interface {
	Get(vendorName, productLabel string) (uint64, error)
}

// ProvenanceLedger es la colección append-only de registros de llenado, indexada por product_id.
type ProvenanceLedger struct {
	records map[string]entity.ProductRecord
	order   []string
}

// NewProvenanceLedger crea un ledger vacío.
func NewProvenanceLedger() *ProvenanceLedger {
	return &ProvenanceLedger{records: make(map[string]entity.ProductRecord)}
}

// FillProduct agrega el registro del lote si el product_id es nuevo y vendorAddress
// resuelve a una identidad viva de bebidas. Si el lote referencia una etiqueta,
// el CostEntry debe existir en este momento y su costo queda capturado.
func (l *ProvenanceLedger) FillProduct(ids Resolver, costs CostLookup, seq uint64, vendorAddress string, fill entity.Fill) (entity.ProductRecord, error) {
	if err := validateFill(fill); err != nil {
		return entity.ProductRecord{}, err
	}
	if _, exists := l.records[fill.ProductID]; exists {
		return entity.ProductRecord{}, fmt.Errorf("producto %q: %w", fill.ProductID, domain.ErrDuplicateProductID)
	}
	vendorName, ok := ids.CurrentName(entity.RoleBeverage, vendorAddress)
	if !ok {
		return entity.ProductRecord{}, fmt.Errorf("llenado por %s: %w", vendorAddress, domain.ErrUnauthorizedVendor)
	}
	var labelCost uint64
	if fill.HasLabelReference() {
		cost, err := costs.Get(fill.LabelVendor, fill.ProductLabel)
		if err != nil {
			return entity.ProductRecord{}, fmt.Errorf("etiqueta %q/%q: %w", fill.LabelVendor, fill.ProductLabel, domain.ErrUnknownCostEntry)
		}
		labelCost = cost
	}
	rec := entity.ProductRecord{
		Fill:          fill,
		VendorAddress: vendorAddress,
		VendorName:    vendorName,
		LabelCost:     labelCost,
		Seq:           seq,
	}
	l.records[fill.ProductID] = rec
	l.order = append(l.order, fill.ProductID)
	return rec, nil
}

// Exists informa si product_id ya fue registrado.
func (l *ProvenanceLedger) Exists(productID string) bool {
	_, ok := l.records[productID]
	return ok
}

// Get devuelve el registro de product_id o ErrNotFound.
func (l *ProvenanceLedger) Get(productID string) (entity.ProductRecord, error) {
	rec, ok := l.records[productID]
	if !ok {
		return entity.ProductRecord{}, fmt.Errorf("producto %q: %w", productID, domain.ErrNotFound)
	}
	return rec, nil
}

// Records lista los registros en orden de creación.
func (l *ProvenanceLedger) Records() []entity.ProductRecord {
	out := make([]entity.ProductRecord, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.records[id])
	}
	return out
}

// Len devuelve la cantidad de registros.
func (l *ProvenanceLedger) Len() int { return len(l.order) }

// Clone devuelve una copia del ledger. Los registros son valores inmutables.
func (l *ProvenanceLedger) Clone() *ProvenanceLedger {
	cp := &ProvenanceLedger{
		records: make(map[string]entity.ProductRecord, len(l.records)),
		order:   make([]string, len(l.order)),
	}
	for k, v := range l.records {
		cp.records[k] = v
	}
	copy(cp.order, l.order)
	return cp
}

func validateFill(f entity.Fill) error {
	switch {
	case strings.TrimSpace(f.ProductID) == "":
		return fmt.Errorf("product_id vacío: %w", domain.ErrInvalidInput)
	case f.Quantity <= 0:
		return fmt.Errorf("cantidad %d: %w", f.Quantity, domain.ErrInvalidInput)
	case !f.Volume.IsPositive():
		return fmt.Errorf("volumen %s: %w", f.Volume, domain.ErrInvalidInput)
	case !f.Volume.Equal(f.Volume.Truncate(VolumeScale)):
		return fmt.Errorf("volumen %s con más de %d decimales: %w", f.Volume, VolumeScale, domain.ErrInvalidInput)
	case f.Volume.GreaterThanOrEqual(maxVolume):
		return fmt.Errorf("volumen %s fuera de rango: %w", f.Volume, domain.ErrInvalidInput)
	case f.Batch < 0:
		return fmt.Errorf("lote %d: %w", f.Batch, domain.ErrInvalidInput)
	case f.Day < 1 || f.Day > 31:
		return fmt.Errorf("día %d: %w", f.Day, domain.ErrInvalidInput)
	case f.Month < 1 || f.Month > 12:
		return fmt.Errorf("mes %d: %w", f.Month, domain.ErrInvalidInput)
	case f.Year < 1:
		return fmt.Errorf("año %d: %w", f.Year, domain.ErrInvalidInput)
	case f.HasLabelReference() && (f.LabelVendor == "" || f.ProductLabel == ""):
		return fmt.Errorf("referencia de etiqueta incompleta: %w", domain.ErrInvalidInput)
	}
	return nil
}
