package dto

import "github.com/shopspring/decimal"

// FillProductRequest body para POST /api/products.
// label_vendor y product_label son opcionales (referencia al costo de etiqueta).
type FillProductRequest struct {
	ProductID    string          `json:"product_id"`
	Quantity     int64           `json:"quantity"`
	Volume       decimal.Decimal `json:"volume"`
	Batch        int64           `json:"batch"`
	Day          int64           `json:"day"`
	Month        int64           `json:"month"`
	Year         int64           `json:"year"`
	LabelVendor  string          `json:"label_vendor,omitempty"`
	ProductLabel string          `json:"product_label,omitempty"`
}

// ProductResponse salida de un registro de procedencia.
type ProductResponse struct {
	ProductID     string          `json:"product_id"`
	VendorAddress string          `json:"vendor_address"`
	VendorName    string          `json:"vendor_name"`
	Quantity      int64           `json:"quantity"`
	Volume        decimal.Decimal `json:"volume"`
	Batch         int64           `json:"batch"`
	Day           int64           `json:"day"`
	Month         int64           `json:"month"`
	Year          int64           `json:"year"`
	LabelVendor   string          `json:"label_vendor,omitempty"`
	ProductLabel  string          `json:"product_label,omitempty"`
	LabelCost     uint64          `json:"label_cost"`
	Seq           uint64          `json:"seq"`
}

// ProductExistsResponse salida de Exists.
type ProductExistsResponse struct {
	ProductID string `json:"product_id"`
	Exists    bool   `json:"exists"`
}

// ProductListResponse lista paginada de registros de un proveedor.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
