// Package ledger implementa la máquina de estados del registro de proveedores,
// el catálogo de costos y el ledger de procedencia.
//
// Todo el paquete es determinista: sin reloj, sin aleatoriedad y sin E/S. La misma
// secuencia de operaciones produce siempre el mismo estado, por lo que la capa
// externa puede re-ejecutarla (replay) con seguridad.
package ledger

import (
	"fmt"

	"github.com/jhoicas/everledger-liquor/internal/domain"
	"github.com/jhoicas/everledger-liquor/internal/domain/entity"
)

// Receipt describe el efecto observable de una operación aplicada.
type Receipt struct {
	Seq          uint64
	Kind         entity.OperationKind
	Role         entity.VendorRole
	Name         string
	PreviousName string // nombre retirado por un renombre
	Address      string
	CostEntry    *entity.CostEntry
	PreviousCost *uint64 // costo sobrescrito, si existía
	Product      *entity.ProductRecord
}

// State agrupa los tres componentes y el número de la última operación aplicada.
type State struct {
	Identities *IdentityRegistry
	Costs      *CostCatalog
	Products   *ProvenanceLedger
	seq        uint64
}

// NewState crea el estado génesis.
func NewState() *State {
	return &State{
		Identities: NewIdentityRegistry(),
		Costs:      NewCostCatalog(),
		Products:   NewProvenanceLedger(),
	}
}

// Seq devuelve el número de la última operación aplicada (0 en génesis).
func (s *State) Seq() uint64 { return s.seq }

// Clone devuelve una copia profunda del estado.
func (s *State) Clone() *State {
	return &State{
		Identities: s.Identities.Clone(),
		Costs:      s.Costs.Clone(),
		Products:   s.Products.Clone(),
		seq:        s.seq,
	}
}

// Transition es la función pura (State, Operation) -> (State, Receipt).
// No modifica s; si la operación falla devuelve s sin cambios junto al error.
func Transition(s *State, op entity.Operation) (*State, Receipt, error) {
	next := s.Clone()
	receipt, err := next.Apply(op)
	if err != nil {
		return s, Receipt{}, err
	}
	return next, receipt, nil
}

// Apply aplica op sobre s. Cada componente valida todas sus precondiciones antes de
// escribir, así que un error nunca deja efectos parciales.
func (s *State) Apply(op entity.Operation) (Receipt, error) {
	if op.Seq != s.seq+1 {
		return Receipt{}, fmt.Errorf("secuencia %d, se esperaba %d: %w", op.Seq, s.seq+1, domain.ErrInvalidInput)
	}
	r := Receipt{Seq: op.Seq, Kind: op.Kind, Role: op.Role}

	switch op.Kind {
	case entity.OpRegisterIdentity:
		if err := s.Identities.Register(op.Role, op.Name, op.Caller); err != nil {
			return Receipt{}, err
		}
		r.Name, r.Address = op.Name, op.Caller

	case entity.OpUpdateCompanyName:
		previous, err := s.Identities.Rename(op.Role, op.Caller, op.Name)
		if err != nil {
			return Receipt{}, err
		}
		r.Name, r.PreviousName, r.Address = op.Name, previous, op.Caller

	case entity.OpAddLabelCost:
		owner, err := s.Identities.Resolve(entity.RoleLabel, op.VendorName)
		if err == nil && owner != op.Caller {
			return Receipt{}, fmt.Errorf("costo para %q desde %s: %w", op.VendorName, op.Caller, domain.ErrUnauthorizedVendor)
		}
		previous, replaced, err := s.Costs.AddEntry(s.Identities, op.VendorName, op.ProductLabel, op.Cost)
		if err != nil {
			return Receipt{}, err
		}
		r.Role, r.Name, r.Address = entity.RoleLabel, op.VendorName, op.Caller
		r.CostEntry = &entity.CostEntry{VendorName: op.VendorName, ProductLabel: op.ProductLabel, Cost: op.Cost}
		if replaced {
			r.PreviousCost = &previous
		}

	case entity.OpFillProduct:
		if op.Fill == nil {
			return Receipt{}, fmt.Errorf("llenado sin datos: %w", domain.ErrInvalidInput)
		}
		rec, err := s.Products.FillProduct(s.Identities, s.Costs, op.Seq, op.Caller, *op.Fill)
		if err != nil {
			return Receipt{}, err
		}
		r.Role, r.Name, r.Address = entity.RoleBeverage, rec.VendorName, op.Caller
		r.Product = &rec

	default:
		return Receipt{}, fmt.Errorf("operación %q: %w", op.Kind, domain.ErrInvalidInput)
	}

	s.seq = op.Seq
	return r, nil
}
