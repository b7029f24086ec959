package dto

// AddLabelCostRequest body para POST /api/costs.
type AddLabelCostRequest struct {
	VendorName   string `json:"vendor_name"`
	ProductLabel string `json:"product_label"`
	Cost         uint64 `json:"cost"`
}

// LabelCostResponse salida de un costo de etiqueta.
type LabelCostResponse struct {
	VendorName   string `json:"vendor_name"`
	ProductLabel string `json:"product_label"`
	Cost         uint64 `json:"cost"`
}
