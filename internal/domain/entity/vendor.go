package entity

// VendorRole particiona el espacio de nombres de identidades.
type VendorRole string

// Roles de proveedor soportados por el registro.
const (
	RoleLabel    VendorRole = "label"    // fabricante de etiquetas
	RoleBeverage VendorRole = "beverage" // fabricante de bebidas
)

// Roles devuelve los roles válidos en orden estable.
func Roles() []VendorRole {
	return []VendorRole{RoleLabel, RoleBeverage}
}

// Valid informa si el rol es uno de los soportados.
func (r VendorRole) Valid() bool {
	return r == RoleLabel || r == RoleBeverage
}

// ParseVendorRole convierte el texto de la ruta/CLI en un rol.
func ParseVendorRole(s string) (VendorRole, bool) {
	r := VendorRole(s)
	return r, r.Valid()
}

// VendorIdentity vincula el nombre de una empresa con la dirección autorizada a actuar por ella.
// Address es opaca: la verifica la capa externa (firma/token), no el registro.
type VendorIdentity struct {
	Role    VendorRole
	Name    string
	Address string
}
