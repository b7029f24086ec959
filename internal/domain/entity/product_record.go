package entity

import "github.com/shopspring/decimal"

// Fill describe un lote de producción enviado por un fabricante de bebidas.
// LabelVendor y ProductLabel son opcionales: si vienen, referencian un CostEntry existente.
type Fill struct {
	ProductID    string          `json:"product_id"`
	Quantity     int64           `json:"quantity"`
	Volume       decimal.Decimal `json:"volume"` // litros por unidad
	Batch        int64           `json:"batch"`
	Day          int64           `json:"day"`
	Month        int64           `json:"month"`
	Year         int64           `json:"year"`
	LabelVendor  string          `json:"label_vendor,omitempty"`
	ProductLabel string          `json:"product_label,omitempty"`
}

// HasLabelReference informa si el lote referencia un costo de etiqueta.
func (f Fill) HasLabelReference() bool {
	return f.LabelVendor != "" || f.ProductLabel != ""
}

// ProductRecord es el registro inmutable de procedencia de un lote.
// VendorAddress y VendorName se capturan en el momento del llenado (no son enlaces vivos).
type ProductRecord struct {
	Fill
	VendorAddress string
	VendorName    string
	LabelCost     uint64 // costo capturado del CostEntry referenciado (0 sin referencia)
	Seq           uint64 // operación que creó el registro
}
