package ledger_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/everledger-liquor/internal/domain"
	"github.com/jhoicas/everledger-liquor/internal/domain/entity"
	"github.com/jhoicas/everledger-liquor/internal/domain/ledger"
)

func newFill(productID string) entity.Fill {
	return entity.Fill{
		ProductID: productID,
		Quantity:  2,
		Volume:    decimal.NewFromInt(3),
		Batch:     4,
		Day:       5,
		Month:     6,
		Year:      2018,
	}
}

func TestProvenance_FillProveedorDeBebidas(t *testing.T) {
	ids := ledger.NewIdentityRegistry()
	require.NoError(t, ids.Register(entity.RoleBeverage, "jacob", addrBeverage))
	l := ledger.NewProvenanceLedger()

	rec, err := l.FillProduct(ids, ledger.NewCostCatalog(), 1, addrBeverage, newFill("jacob12"))
	require.NoError(t, err)
	assert.Equal(t, "jacob", rec.VendorName)
	assert.Equal(t, addrBeverage, rec.VendorAddress)
	assert.True(t, l.Exists("jacob12"))
	assert.False(t, l.Exists("jacon12"))
}

func TestProvenance_ProveedorNoAutorizado(t *testing.T) {
	ids := ledger.NewIdentityRegistry()
	require.NoError(t, ids.Register(entity.RoleLabel, "DLF", addrLabel))
	l := ledger.NewProvenanceLedger()

	_, err := l.FillProduct(ids, ledger.NewCostCatalog(), 1, addrLabel, newFill("jacob12"))
	assert.ErrorIs(t, err, domain.ErrUnauthorizedVendor, "una identidad de etiquetas no puede llenar")
	assert.False(t, l.Exists("jacob12"))
}

func TestProvenance_ProductIDDuplicado(t *testing.T) {
	ids := ledger.NewIdentityRegistry()
	require.NoError(t, ids.Register(entity.RoleBeverage, "jacob", addrBeverage))
	l := ledger.NewProvenanceLedger()
	costs := ledger.NewCostCatalog()

	_, err := l.FillProduct(ids, costs, 1, addrBeverage, newFill("jacob12"))
	require.NoError(t, err)
	_, err = l.FillProduct(ids, costs, 2, addrBeverage, newFill("jacob12"))
	assert.ErrorIs(t, err, domain.ErrDuplicateProductID)
	assert.Equal(t, 1, l.Len())
}

func TestProvenance_ReferenciaDeEtiqueta(t *testing.T) {
	ids := ledger.NewIdentityRegistry()
	require.NoError(t, ids.Register(entity.RoleBeverage, "jacob", addrBeverage))
	require.NoError(t, ids.Register(entity.RoleLabel, "xyz", addrLabel))
	costs := ledger.NewCostCatalog()
	l := ledger.NewProvenanceLedger()

	fill := newFill("jacob12")
	fill.LabelVendor, fill.ProductLabel = "xyz", "jacobwine"

	_, err := l.FillProduct(ids, costs, 1, addrBeverage, fill)
	assert.ErrorIs(t, err, domain.ErrUnknownCostEntry)

	_, _, err = costs.AddEntry(ids, "xyz", "jacobwine", 5)
	require.NoError(t, err)
	rec, err := l.FillProduct(ids, costs, 2, addrBeverage, fill)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), rec.LabelCost)
}

func TestProvenance_CamposInvalidos(t *testing.T) {
	ids := ledger.NewIdentityRegistry()
	require.NoError(t, ids.Register(entity.RoleBeverage, "jacob", addrBeverage))
	l := ledger.NewProvenanceLedger()

	cases := map[string]func(f *entity.Fill){
		"sin id":               func(f *entity.Fill) { f.ProductID = "" },
		"cantidad cero":        func(f *entity.Fill) { f.Quantity = 0 },
		"volumen negativo":     func(f *entity.Fill) { f.Volume = decimal.NewFromInt(-1) },
		"volumen bajo escala":  func(f *entity.Fill) { f.Volume = decimal.RequireFromString("0.0000001") },
		"volumen 8 decimales":  func(f *entity.Fill) { f.Volume = decimal.RequireFromString("1.23456789") },
		"volumen desbordado":   func(f *entity.Fill) { f.Volume = decimal.RequireFromString("1e15") },
		"volumen en el límite": func(f *entity.Fill) { f.Volume = decimal.New(1, 14) },
		"mes 13":               func(f *entity.Fill) { f.Month = 13 },
		"día 0":                func(f *entity.Fill) { f.Day = 0 },
		"etiqueta a medias":    func(f *entity.Fill) { f.LabelVendor = "xyz" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFill("p-1")
			mutate(&f)
			_, err := l.FillProduct(ids, ledger.NewCostCatalog(), 1, addrBeverage, f)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Zero(t, l.Len())
}

func TestProvenance_VolumenDentroDeEscala(t *testing.T) {
	ids := ledger.NewIdentityRegistry()
	require.NoError(t, ids.Register(entity.RoleBeverage, "jacob", addrBeverage))
	l := ledger.NewProvenanceLedger()

	for i, v := range []string{"0.000001", "1.500000000", "99999999999999.999999"} {
		f := newFill(fmt.Sprintf("p-%d", i))
		f.Volume = decimal.RequireFromString(v)
		rec, err := l.FillProduct(ids, ledger.NewCostCatalog(), uint64(i+1), addrBeverage, f)
		require.NoError(t, err, v)
		assert.True(t, rec.Volume.Equal(f.Volume))
	}
	assert.Equal(t, 3, l.Len())
}
