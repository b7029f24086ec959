package dto

import "time"

// OperationResult es el evento observable de toda operación que modifica estado.
type OperationResult struct {
	Success      bool    `json:"success"`
	Seq          uint64  `json:"seq"`
	Kind         string  `json:"kind"`
	Role         string  `json:"role,omitempty"`
	Name         string  `json:"name,omitempty"`
	PreviousName string  `json:"previous_name,omitempty"`
	Address      string  `json:"address"`
	ProductLabel string  `json:"product_label,omitempty"`
	Cost         *uint64 `json:"cost,omitempty"`
	PreviousCost *uint64 `json:"previous_cost,omitempty"`
	ProductID    string  `json:"product_id,omitempty"`
}

// OperationResponse entrada del log de operaciones.
type OperationResponse struct {
	Seq          uint64    `json:"seq"`
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	Caller       string    `json:"caller"`
	Role         string    `json:"role,omitempty"`
	Name         string    `json:"name,omitempty"`
	VendorName   string    `json:"vendor_name,omitempty"`
	ProductLabel string    `json:"product_label,omitempty"`
	Cost         uint64    `json:"cost,omitempty"`
	ProductID    string    `json:"product_id,omitempty"`
	RecordedAt   time.Time `json:"recorded_at"`
}

// OperationListResponse página del log de operaciones.
type OperationListResponse struct {
	Items   []OperationResponse `json:"items"`
	LastSeq uint64              `json:"last_seq"`
}
