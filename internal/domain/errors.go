package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrDuplicateName      = errors.New("el nombre ya está registrado por otra identidad")
	ErrNotRegistered      = errors.New("la dirección no tiene identidad registrada")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUnknownVendor      = errors.New("proveedor de etiquetas desconocido")
	ErrUnauthorizedVendor = errors.New("proveedor no autorizado")
	ErrDuplicateProductID = errors.New("el product_id ya fue registrado")
	ErrUnknownCostEntry   = errors.New("costo de etiqueta no registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
)

// Códigos estables de error, usados en respuestas HTTP y logs.
const (
	KindDuplicateName      = "DUPLICATE_NAME"
	KindNotRegistered      = "NOT_REGISTERED"
	KindNotFound           = "NOT_FOUND"
	KindUnknownVendor      = "UNKNOWN_VENDOR"
	KindUnauthorizedVendor = "UNAUTHORIZED_VENDOR"
	KindDuplicateProductID = "DUPLICATE_PRODUCT_ID"
	KindUnknownCostEntry   = "UNKNOWN_COST_ENTRY"
	KindInvalidInput       = "INVALID_INPUT"
	KindInternal           = "INTERNAL"
)

var kinds = []struct {
	err  error
	kind string
}{
	{ErrDuplicateName, KindDuplicateName},
	{ErrNotRegistered, KindNotRegistered},
	{ErrNotFound, KindNotFound},
	{ErrUnknownVendor, KindUnknownVendor},
	{ErrUnauthorizedVendor, KindUnauthorizedVendor},
	{ErrDuplicateProductID, KindDuplicateProductID},
	{ErrUnknownCostEntry, KindUnknownCostEntry},
	{ErrInvalidInput, KindInvalidInput},
}

// KindOf devuelve el código del error de dominio envuelto en err.
// Cualquier otro error (infraestructura) se reporta como INTERNAL.
func KindOf(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}

// IsDomainError informa si err es uno de los errores de dominio conocidos.
func IsDomainError(err error) bool {
	return err != nil && KindOf(err) != KindInternal
}
