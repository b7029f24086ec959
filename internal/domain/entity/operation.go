package entity

import "time"

// OperationKind identifica el tipo de operación del ledger.
type OperationKind string

// Tipos de operación que modifican estado.
const (
	OpRegisterIdentity  OperationKind = "register_identity"
	OpUpdateCompanyName OperationKind = "update_company_name"
	OpAddLabelCost      OperationKind = "add_label_cost"
	OpFillProduct       OperationKind = "fill_product"
)

// Valid informa si el tipo de operación es conocido.
func (k OperationKind) Valid() bool {
	switch k {
	case OpRegisterIdentity, OpUpdateCompanyName, OpAddLabelCost, OpFillProduct:
		return true
	}
	return false
}

// Operation es una entrada del orden total de operaciones.
// Caller es la dirección ya verificada por la capa externa.
// ID y RecordedAt son metadatos de persistencia: la transición de estado no los usa.
type Operation struct {
	Seq          uint64        `json:"seq"`
	ID           string        `json:"id"`
	Kind         OperationKind `json:"kind"`
	Caller       string        `json:"caller"`
	Role         VendorRole    `json:"role,omitempty"`
	Name         string        `json:"name,omitempty"`
	VendorName   string        `json:"vendor_name,omitempty"`
	ProductLabel string        `json:"product_label,omitempty"`
	Cost         uint64        `json:"cost,omitempty"`
	Fill         *Fill         `json:"fill,omitempty"`
	RecordedAt   time.Time     `json:"recorded_at"`
}
