package ledger

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/everledger-liquor/internal/domain"
	"github.com/jhoicas/everledger-liquor/internal/domain/entity"
)

// MaxNameLength es el largo máximo, en runas, de un nombre de fabricante.
const MaxNameLength = 200

// Resolver es la vista de solo lectura del registro que usan el catálogo y el ledger de procedencia.
// Se consulta en el momento de cada escritura dependiente; nunca se cachea.
type Resolver interface {
	Resolve(role entity.VendorRole, name string) (string, error)
	CurrentName(role entity.VendorRole, address string) (string, bool)
}

// IdentityRegistry mantiene, por rol, el mapa nombre -> dirección y el nombre vigente de cada dirección.
//
// Una dirección puede tener varios nombres vivos (registros sucesivos); Rename solo retira el vigente.
type IdentityRegistry struct {
	byName    map[entity.VendorRole]map[string]string
	byAddress map[entity.VendorRole]map[string]string
}

var _ Resolver = (*IdentityRegistry)(nil)

// NewIdentityRegistry crea un registro vacío con una partición por rol.
func NewIdentityRegistry() *IdentityRegistry {
	r := &IdentityRegistry{
		byName:    make(map[entity.VendorRole]map[string]string),
		byAddress: make(map[entity.VendorRole]map[string]string),
	}
	for _, role := range entity.Roles() {
		r.byName[role] = make(map[string]string)
		r.byAddress[role] = make(map[string]string)
	}
	return r
}

// Register vincula name -> address dentro del rol.
// Reintentar el mismo nombre desde la misma dirección es un no-op exitoso.
func (r *IdentityRegistry) Register(role entity.VendorRole, name, address string) error {
	if err := validateIdentity(role, name, address); err != nil {
		return err
	}
	if bound, ok := r.byName[role][name]; ok {
		if bound != address {
			return fmt.Errorf("registrar %s %q: %w", role, name, domain.ErrDuplicateName)
		}
		return nil
	}
	r.byName[role][name] = address
	r.byAddress[role][address] = name
	return nil
}

// Rename retira el nombre vigente de address y vincula newName a la misma dirección.
// Devuelve el nombre retirado. Tras el cambio, Resolve sobre el nombre anterior falla con ErrNotFound.
func (r *IdentityRegistry) Rename(role entity.VendorRole, address, newName string) (string, error) {
	if err := validateIdentity(role, newName, address); err != nil {
		return "", err
	}
	oldName, ok := r.byAddress[role][address]
	if !ok {
		return "", fmt.Errorf("renombrar %s %s: %w", role, address, domain.ErrNotRegistered)
	}
	if bound, taken := r.byName[role][newName]; taken && bound != address {
		return "", fmt.Errorf("renombrar %s a %q: %w", role, newName, domain.ErrDuplicateName)
	}
	if oldName == newName {
		return oldName, nil
	}
	delete(r.byName[role], oldName)
	r.byName[role][newName] = address
	r.byAddress[role][address] = newName
	return oldName, nil
}

// Resolve devuelve la dirección vinculada a name en el rol, o ErrNotFound.
func (r *IdentityRegistry) Resolve(role entity.VendorRole, name string) (string, error) {
	address, ok := r.byName[role][name]
	if !ok {
		return "", fmt.Errorf("resolver %s %q: %w", role, name, domain.ErrNotFound)
	}
	return address, nil
}

// CurrentName devuelve el nombre vigente de address en el rol.
func (r *IdentityRegistry) CurrentName(role entity.VendorRole, address string) (string, bool) {
	name, ok := r.byAddress[role][address]
	return name, ok
}

// Identities lista las identidades vivas de un rol.
func (r *IdentityRegistry) Identities(role entity.VendorRole) []entity.VendorIdentity {
	out := make([]entity.VendorIdentity, 0, len(r.byName[role]))
	for name, address := range r.byName[role] {
		out = append(out, entity.VendorIdentity{Role: role, Name: name, Address: address})
	}
	return out
}

// Clone devuelve una copia profunda del registro.
func (r *IdentityRegistry) Clone() *IdentityRegistry {
	c := NewIdentityRegistry()
	for role, names := range r.byName {
		for name, address := range names {
			c.byName[role][name] = address
		}
	}
	for role, addresses := range r.byAddress {
		for address, name := range addresses {
			c.byAddress[role][address] = name
		}
	}
	return c
}

func validateIdentity(role entity.VendorRole, name, address string) error {
	if !role.Valid() {
		return fmt.Errorf("rol %q: %w", role, domain.ErrInvalidInput)
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("nombre vacío: %w", domain.ErrInvalidInput)
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return fmt.Errorf("nombre de %d caracteres (máximo %d): %w", n, MaxNameLength, domain.ErrInvalidInput)
	}
	if strings.TrimSpace(address) == "" {
		return fmt.Errorf("dirección vacía: %w", domain.ErrInvalidInput)
	}
	return nil
}
