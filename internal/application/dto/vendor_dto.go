package dto

// VendorNameRequest body para POST/PUT /api/vendors/{role}/identity.
type VendorNameRequest struct {
	Name string `json:"name"`
}

// VendorAddressResponse salida de GetVendorAddress.
type VendorAddressResponse struct {
	Role    string `json:"role"`
	Name    string `json:"name"`
	Address string `json:"address"`
}
