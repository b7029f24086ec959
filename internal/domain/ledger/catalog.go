package ledger

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jhoicas/everledger-liquor/internal/domain"
	"github.com/jhoicas/everledger-liquor/internal/domain/entity"
)

type costKey struct {
	vendor string
	label  string
}

// CostCatalog guarda los costos estándar de etiqueta por (proveedor, etiqueta).
// Agregar una clave existente sobrescribe el costo anterior.
type CostCatalog struct {
	entries map[costKey]uint64
}

// NewCostCatalog crea un catálogo vacío.
func NewCostCatalog() *CostCatalog {
	return &CostCatalog{entries: make(map[costKey]uint64)}
}

// AddEntry registra el costo si vendorName resuelve a una identidad viva de etiquetas.
// Devuelve el costo previo y si hubo sobrescritura.
func (c *CostCatalog) AddEntry(ids Resolver, vendorName, productLabel string, cost uint64) (uint64, bool, error) {
	if strings.TrimSpace(vendorName) == "" || strings.TrimSpace(productLabel) == "" {
		return 0, false, fmt.Errorf("proveedor y etiqueta son requeridos: %w", domain.ErrInvalidInput)
	}
	if cost > math.MaxInt64 {
		return 0, false, fmt.Errorf("costo %d fuera de rango: %w", cost, domain.ErrInvalidInput)
	}
	if _, err := ids.Resolve(entity.RoleLabel, vendorName); err != nil {
		return 0, false, fmt.Errorf("costo para %q: %w", vendorName, domain.ErrUnknownVendor)
	}
	key := costKey{vendor: vendorName, label: productLabel}
	previous, replaced := c.entries[key]
	c.entries[key] = cost
	return previous, replaced, nil
}

// Get devuelve el costo de (vendorName, productLabel) o ErrNotFound.
func (c *CostCatalog) Get(vendorName, productLabel string) (uint64, error) {
	cost, ok := c.entries[costKey{vendor: vendorName, label: productLabel}]
	if !ok {
		return 0, fmt.Errorf("costo %q/%q: %w", vendorName, productLabel, domain.ErrNotFound)
	}
	return cost, nil
}

// Entries lista las entradas ordenadas por proveedor y etiqueta.
func (c *CostCatalog) Entries() []entity.CostEntry {
	out := make([]entity.CostEntry, 0, len(c.entries))
	for k, cost := range c.entries {
		out = append(out, entity.CostEntry{VendorName: k.vendor, ProductLabel: k.label, Cost: cost})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].VendorName != out[j].VendorName {
			return out[i].VendorName < out[j].VendorName
		}
		return out[i].ProductLabel < out[j].ProductLabel
	})
	return out
}

// Clone devuelve una copia del catálogo.
func (c *CostCatalog) Clone() *CostCatalog {
	cp := NewCostCatalog()
	for k, v := range c.entries {
		cp.entries[k] = v
	}
	return cp
}
