package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"retailpos/internal/usecase"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legacyProducts = `[
  {"articulo": "A1", "nombre": "Boxer", "marca": "BrandX", "precio": 10.0, "stock": 5},
  {"articulo": "A1", "nombre": "Dup", "marca": "BrandX", "precio": 1, "stock": 1},
  {"articulo": "B1", "nombre": "Socks", "marca": "BrandY", "precio": "2,5", "stock": "x"}
]`

const legacySales = `[
  {"fecha": "15/01/2024 10:30", "cliente": "Ana", "dni": "12345678", "tel": "",
   "productos": [{"articulo": "A1", "nombre": "Boxer", "marca": "BrandX", "cantidad": 2, "precio": 10.0}],
   "total": 20.0},
  {"fecha": "not a date", "cliente": "Bob", "dni": "1", "productos": []}
]`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportUsecase_ImportLegacy(t *testing.T) {
	dir := t.TempDir()
	productsPath := writeFile(t, dir, "productos.json", legacyProducts)
	salesPath := writeFile(t, dir, "ventas.json", legacySales)

	st, b := newStore(t, boxer())
	log, hook := test.NewNullLogger()
	uc := usecase.NewImportUsecase(st, &seqIDs{}, time.UTC, log)

	res, err := uc.ImportLegacy(context.Background(), productsPath, salesPath)
	require.NoError(t, err)

	assert.Equal(t, usecase.ImportResult{Products: 2, DroppedProducts: 1, Sales: 1, SkippedSales: 1}, res)
	require.Len(t, b.products, 2)
	assert.Equal(t, int64(0), b.products[1].Stock)
	require.Len(t, b.sales, 1)
	assert.Equal(t, "sale-1", b.sales[0].ID)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), b.sales[0].Timestamp)
	assert.True(t, dec("20").Equal(b.sales[0].Total))
	assert.Equal(t, "legacy_imported", hook.LastEntry().Message)
}

func TestImportUsecase_ProductsOnlyKeepsSales(t *testing.T) {
	dir := t.TempDir()
	productsPath := writeFile(t, dir, "productos.json", legacyProducts)

	st, _ := newStore(t)
	st.Sales.Append(exampleSale())
	log, _ := test.NewNullLogger()
	uc := usecase.NewImportUsecase(st, &seqIDs{}, time.UTC, log)

	res, err := uc.ImportLegacy(context.Background(), productsPath, "")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Products)
	assert.Equal(t, 1, st.Sales.Len())
}

func TestImportUsecase_BadFileChangesNothing(t *testing.T) {
	dir := t.TempDir()
	productsPath := writeFile(t, dir, "productos.json", legacyProducts)
	salesPath := writeFile(t, dir, "ventas.json", `{"not": "a list"}`)

	st, b := newStore(t, boxer())
	log, _ := test.NewNullLogger()
	uc := usecase.NewImportUsecase(st, &seqIDs{}, time.UTC, log)

	_, err := uc.ImportLegacy(context.Background(), productsPath, salesPath)
	require.Error(t, err)
	assert.Equal(t, 1, st.Catalog.Len())
	assert.Equal(t, 0, b.saves)
}
