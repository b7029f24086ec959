package ledger_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/everledger-liquor/internal/domain"
	"github.com/jhoicas/everledger-liquor/internal/domain/entity"
	"github.com/jhoicas/everledger-liquor/internal/domain/ledger"
)

func TestCatalog_AddEntryProveedorRegistrado(t *testing.T) {
	ids := ledger.NewIdentityRegistry()
	require.NoError(t, ids.Register(entity.RoleLabel, "DLF", addrLabel))
	c := ledger.NewCostCatalog()

	_, replaced, err := c.AddEntry(ids, "DLF", "jacobwine", 2)
	require.NoError(t, err)
	assert.False(t, replaced)

	cost, err := c.Get("DLF", "jacobwine")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), cost)
}

func TestCatalog_AddEntryProveedorDesconocido(t *testing.T) {
	c := ledger.NewCostCatalog()
	_, _, err := c.AddEntry(ledger.NewIdentityRegistry(), "whisky", "jacobwine", 2)
	assert.ErrorIs(t, err, domain.ErrUnknownVendor)

	_, err = c.Get("whisky", "jacobwine")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalog_RolBebidaNoHabilitaCostos(t *testing.T) {
	ids := ledger.NewIdentityRegistry()
	require.NoError(t, ids.Register(entity.RoleBeverage, "kingfisher", addrBeverage))

	_, _, err := ledger.NewCostCatalog().AddEntry(ids, "kingfisher", "kfbeer", 3)
	assert.ErrorIs(t, err, domain.ErrUnknownVendor)
}

func TestCatalog_SobrescribeClaveExistente(t *testing.T) {
	ids := ledger.NewIdentityRegistry()
	require.NoError(t, ids.Register(entity.RoleLabel, "DLF", addrLabel))
	c := ledger.NewCostCatalog()

	_, _, err := c.AddEntry(ids, "DLF", "jacobwine", 2)
	require.NoError(t, err)
	previous, replaced, err := c.AddEntry(ids, "DLF", "jacobwine", 7)
	require.NoError(t, err)
	assert.True(t, replaced)
	assert.Equal(t, uint64(2), previous)

	cost, _ := c.Get("DLF", "jacobwine")
	assert.Equal(t, uint64(7), cost)
	assert.Len(t, c.Entries(), 1)
}

func TestCatalog_RenombreDejaEntradasHuerfanas(t *testing.T) {
	ids := ledger.NewIdentityRegistry()
	require.NoError(t, ids.Register(entity.RoleLabel, "DLF", addrLabel))
	c := ledger.NewCostCatalog()
	_, _, err := c.AddEntry(ids, "DLF", "jacobwine", 2)
	require.NoError(t, err)

	_, err = ids.Rename(entity.RoleLabel, addrLabel, "xyz")
	require.NoError(t, err)

	_, _, err = c.AddEntry(ids, "DLF", "other", 1)
	assert.ErrorIs(t, err, domain.ErrUnknownVendor, "el nombre retirado ya no habilita costos")

	cost, err := c.Get("DLF", "jacobwine")
	require.NoError(t, err, "la entrada existente se conserva como referencia obsoleta")
	assert.Equal(t, uint64(2), cost)
}

func TestCatalog_EntradaInvalida(t *testing.T) {
	ids := ledger.NewIdentityRegistry()
	require.NoError(t, ids.Register(entity.RoleLabel, "DLF", addrLabel))
	c := ledger.NewCostCatalog()

	_, _, err := c.AddEntry(ids, "DLF", "", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, _, err = c.AddEntry(ids, "DLF", "jacobwine", math.MaxUint64)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, c.Entries())
}
