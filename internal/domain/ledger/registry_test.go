package ledger_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/everledger-liquor/internal/domain"
	"github.com/jhoicas/everledger-liquor/internal/domain/entity"
	"github.com/jhoicas/everledger-liquor/internal/domain/ledger"
)

const (
	addrLabel    = "0x1111111111111111111111111111111111111111"
	addrBeverage = "0x2222222222222222222222222222222222222222"
	addrOther    = "0x3333333333333333333333333333333333333333"
)

func TestRegistry_RegisterYResolve(t *testing.T) {
	r := ledger.NewIdentityRegistry()
	require.NoError(t, r.Register(entity.RoleLabel, "DLF", addrLabel))

	got, err := r.Resolve(entity.RoleLabel, "DLF")
	require.NoError(t, err)
	assert.Equal(t, addrLabel, got)
}

func TestRegistry_ResolveNoRegistrado(t *testing.T) {
	r := ledger.NewIdentityRegistry()
	_, err := r.Resolve(entity.RoleLabel, "Test")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegistry_RegistroIdempotente(t *testing.T) {
	r := ledger.NewIdentityRegistry()
	require.NoError(t, r.Register(entity.RoleBeverage, "kingfisher", addrBeverage))
	require.NoError(t, r.Register(entity.RoleBeverage, "kingfisher", addrBeverage))

	got, err := r.Resolve(entity.RoleBeverage, "kingfisher")
	require.NoError(t, err)
	assert.Equal(t, addrBeverage, got)
}

func TestRegistry_NombreDuplicadoOtraDireccion(t *testing.T) {
	r := ledger.NewIdentityRegistry()
	require.NoError(t, r.Register(entity.RoleLabel, "DLF", addrLabel))

	err := r.Register(entity.RoleLabel, "DLF", addrOther)
	assert.ErrorIs(t, err, domain.ErrDuplicateName)

	got, _ := r.Resolve(entity.RoleLabel, "DLF")
	assert.Equal(t, addrLabel, got, "el registro fallido no debe cambiar el vínculo")
}

func TestRegistry_RolesSonParticionesIndependientes(t *testing.T) {
	r := ledger.NewIdentityRegistry()
	require.NoError(t, r.Register(entity.RoleBeverage, "jacob", addrBeverage))
	require.NoError(t, r.Register(entity.RoleLabel, "jacob", addrOther))

	_, err := r.Resolve(entity.RoleLabel, "kingfisher")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	bev, _ := r.Resolve(entity.RoleBeverage, "jacob")
	lab, _ := r.Resolve(entity.RoleLabel, "jacob")
	assert.Equal(t, addrBeverage, bev)
	assert.Equal(t, addrOther, lab)
}

func TestRegistry_RenameInvalidaNombreAnterior(t *testing.T) {
	r := ledger.NewIdentityRegistry()
	require.NoError(t, r.Register(entity.RoleBeverage, "kingfisher", addrBeverage))

	old, err := r.Rename(entity.RoleBeverage, addrBeverage, "Jacob")
	require.NoError(t, err)
	assert.Equal(t, "kingfisher", old)

	_, err = r.Resolve(entity.RoleBeverage, "kingfisher")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := r.Resolve(entity.RoleBeverage, "Jacob")
	require.NoError(t, err)
	assert.Equal(t, addrBeverage, got)

	name, ok := r.CurrentName(entity.RoleBeverage, addrBeverage)
	assert.True(t, ok)
	assert.Equal(t, "Jacob", name)
}

func TestRegistry_RenameSinRegistro(t *testing.T) {
	r := ledger.NewIdentityRegistry()
	_, err := r.Rename(entity.RoleLabel, addrLabel, "xyz")
	assert.ErrorIs(t, err, domain.ErrNotRegistered)
}

func TestRegistry_RenameANombreAjeno(t *testing.T) {
	r := ledger.NewIdentityRegistry()
	require.NoError(t, r.Register(entity.RoleLabel, "DLF", addrLabel))
	require.NoError(t, r.Register(entity.RoleLabel, "ACME", addrOther))

	_, err := r.Rename(entity.RoleLabel, addrLabel, "ACME")
	assert.ErrorIs(t, err, domain.ErrDuplicateName)

	got, _ := r.Resolve(entity.RoleLabel, "DLF")
	assert.Equal(t, addrLabel, got, "el renombre fallido no debe retirar el nombre vigente")
}

func TestRegistry_RenameAlMismoNombre(t *testing.T) {
	r := ledger.NewIdentityRegistry()
	require.NoError(t, r.Register(entity.RoleLabel, "DLF", addrLabel))

	old, err := r.Rename(entity.RoleLabel, addrLabel, "DLF")
	require.NoError(t, err)
	assert.Equal(t, "DLF", old)
	got, _ := r.Resolve(entity.RoleLabel, "DLF")
	assert.Equal(t, addrLabel, got)
}

func TestRegistry_NombreRetiradoPuedeRegistrarseDeNuevo(t *testing.T) {
	r := ledger.NewIdentityRegistry()
	require.NoError(t, r.Register(entity.RoleLabel, "DLF", addrLabel))
	_, err := r.Rename(entity.RoleLabel, addrLabel, "xyz")
	require.NoError(t, err)

	require.NoError(t, r.Register(entity.RoleLabel, "DLF", addrOther))
	got, _ := r.Resolve(entity.RoleLabel, "DLF")
	assert.Equal(t, addrOther, got)
}

func TestRegistry_EntradaInvalida(t *testing.T) {
	r := ledger.NewIdentityRegistry()
	assert.ErrorIs(t, r.Register(entity.RoleLabel, "  ", addrLabel), domain.ErrInvalidInput)
	assert.ErrorIs(t, r.Register(entity.RoleLabel, "DLF", ""), domain.ErrInvalidInput)
	assert.ErrorIs(t, r.Register(entity.VendorRole("bottler"), "DLF", addrLabel), domain.ErrInvalidInput)
}

func TestRegistry_LargoDelNombre(t *testing.T) {
	r := ledger.NewIdentityRegistry()
	justo := strings.Repeat("ñ", ledger.MaxNameLength)
	require.NoError(t, r.Register(entity.RoleLabel, justo, addrLabel))

	largo := strings.Repeat("a", ledger.MaxNameLength+1)
	assert.ErrorIs(t, r.Register(entity.RoleLabel, largo, addrOther), domain.ErrInvalidInput)
	_, err := r.Rename(entity.RoleLabel, addrLabel, largo)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := r.Resolve(entity.RoleLabel, justo)
	require.NoError(t, err)
	assert.Equal(t, addrLabel, got)
}

func TestRegistry_CloneEsIndependiente(t *testing.T) {
	r := ledger.NewIdentityRegistry()
	require.NoError(t, r.Register(entity.RoleLabel, "DLF", addrLabel))

	c := r.Clone()
	_, err := c.Rename(entity.RoleLabel, addrLabel, "xyz")
	require.NoError(t, err)

	got, err := r.Resolve(entity.RoleLabel, "DLF")
	require.NoError(t, err, "el original no debe verse afectado por la copia")
	assert.Equal(t, addrLabel, got)
}
