package store_test

import (
	"math"
	"testing"

	"retailpos/internal/apperr"
	"retailpos/internal/domain/model"
	"retailpos/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newCatalog(t *testing.T, products ...model.Product) *store.Catalog {
	t.Helper()
	c := store.NewCatalog()
	require.Empty(t, c.Replace(products))
	return c
}

func TestCatalog_Replace_NormalizesAndDropsDuplicates(t *testing.T) {
	c := store.NewCatalog()

	dropped := c.Replace([]model.Product{
		{Article: " A1 ", Name: " Boxer ", Brand: "BrandX", Price: dec("10"), Stock: -3},
		{Article: "A1", Name: "Other", Brand: "BrandY", Price: dec("1"), Stock: 1},
		{Article: "  ", Name: "Blank"},
		{Article: "B1", Name: "Socks", Brand: "BrandY", Price: dec("2.5"), Stock: 4},
	})

	assert.Equal(t, []string{"A1", ""}, dropped)
	assert.Equal(t, 2, c.Len())
	assert.False(t, c.Dirty())

	p, err := c.FindByArticle("A1")
	require.NoError(t, err)
	assert.Equal(t, "Boxer", p.Name)
	assert.Equal(t, int64(0), p.Stock)
}

func TestCatalog_FindByArticle_NotFound(t *testing.T) {
	c := newCatalog(t)

	_, err := c.FindByArticle("ZZ")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestCatalog_Search(t *testing.T) {
	c := newCatalog(t,
		model.Product{Article: "A1", Name: "Boxer", Brand: "BrandX"},
		model.Product{Article: "B1", Name: "Socks", Brand: "BrandY"},
		model.Product{Article: "BX9", Name: "Cap", Brand: "BrandY"},
	)

	got := c.Search("bo")
	require.Len(t, got, 1)
	assert.Equal(t, "A1", got[0].Article)

	got = c.Search("b")
	assert.Len(t, got, 3)

	assert.Len(t, c.Search("  "), 3)
	assert.Empty(t, c.Search("nothing"))
}

func TestCatalog_Brands_SortedUnique(t *testing.T) {
	c := newCatalog(t,
		model.Product{Article: "A1", Brand: "Zeta"},
		model.Product{Article: "A2", Brand: "Alfa"},
		model.Product{Article: "A3", Brand: "Zeta"},
		model.Product{Article: "A4", Brand: ""},
	)

	assert.Equal(t, []string{"Alfa", "Zeta"}, c.Brands())
}

func TestCatalog_Upsert(t *testing.T) {
	c := newCatalog(t, model.Product{Article: "A1", Name: "Boxer", Price: dec("10"), Stock: 5})

	created := c.Upsert(model.Product{Article: "A1", Name: "Boxer XL", Price: dec("12"), Stock: 7})
	assert.False(t, created)
	assert.True(t, c.Dirty())

	created = c.Upsert(model.Product{Article: "C1", Name: "Cap", Price: dec("3"), Stock: 1})
	assert.True(t, created)
	assert.Equal(t, 2, c.Len())

	p, _ := c.FindByArticle("A1")
	assert.Equal(t, "Boxer XL", p.Name)
	assert.Equal(t, int64(7), p.Stock)
}

func TestCatalog_Delete_KeepsIndexConsistent(t *testing.T) {
	c := newCatalog(t,
		model.Product{Article: "A1"},
		model.Product{Article: "B1"},
		model.Product{Article: "C1", Name: "Cap"},
	)

	require.NoError(t, c.Delete("A1"))
	assert.True(t, c.Dirty())

	p, err := c.FindByArticle("C1")
	require.NoError(t, err)
	assert.Equal(t, "Cap", p.Name)

	assert.True(t, apperr.Is(c.Delete("A1"), apperr.KindNotFound))
}

func TestCatalog_AdjustStock(t *testing.T) {
	c := newCatalog(t, model.Product{Article: "A1", Stock: 2})

	p, err := c.AdjustStock("A1", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.Stock)

	_, err = c.AdjustStock("A1", -6)
	assert.True(t, apperr.Is(err, apperr.KindInsufficientStock))
	p, _ = c.FindByArticle("A1")
	assert.Equal(t, int64(5), p.Stock)
}

func TestCatalog_ApplyBrandPercentage(t *testing.T) {
	c := newCatalog(t,
		model.Product{Article: "A1", Brand: "BrandX", Price: dec("10.00")},
		model.Product{Article: "A2", Brand: "brandx", Price: dec("3.33")},
		model.Product{Article: "B1", Brand: "BrandY", Price: dec("10.00")},
	)

	n := c.ApplyBrandPercentage("BRANDX", dec("10"))
	assert.Equal(t, 2, n)

	a1, _ := c.FindByArticle("A1")
	a2, _ := c.FindByArticle("A2")
	b1, _ := c.FindByArticle("B1")
	assert.True(t, dec("11.00").Equal(a1.Price), a1.Price.String())
	assert.True(t, dec("3.66").Equal(a2.Price), a2.Price.String())
	assert.True(t, dec("10.00").Equal(b1.Price))
}

func TestCatalog_ApplyBrandPercentage_Decrease(t *testing.T) {
	c := newCatalog(t, model.Product{Article: "A1", Brand: "BrandX", Price: dec("10.00")})

	c.ApplyBrandPercentage("BrandX", dec("-10"))

	p, _ := c.FindByArticle("A1")
	assert.True(t, dec("9.00").Equal(p.Price), p.Price.String())
}

func TestCatalog_ApplyBrandPercentage_NoMatchStaysClean(t *testing.T) {
	c := newCatalog(t, model.Product{Article: "A1", Brand: "BrandX", Price: dec("10.00")})

	assert.Equal(t, 0, c.ApplyBrandPercentage("Nope", dec("10")))
	assert.False(t, c.Dirty())
}

func TestCatalog_DecreaseStock_AllOrNothing(t *testing.T) {
	c := newCatalog(t,
		model.Product{Article: "A1", Stock: 5},
		model.Product{Article: "B1", Stock: 1},
	)

	err := c.DecreaseStock([]model.CartLine{
		{Article: "A1", Quantity: 2},
		{Article: "B1", Quantity: 2},
	})

	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindInsufficientStock))
	var e *apperr.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "B1", e.Article)

	a1, _ := c.FindByArticle("A1")
	assert.Equal(t, int64(5), a1.Stock)
	assert.False(t, c.Dirty())
}

func TestCatalog_DecreaseStock_AddsRepeatedArticles(t *testing.T) {
	c := newCatalog(t, model.Product{Article: "A1", Stock: 5})

	err := c.DecreaseStock([]model.CartLine{
		{Article: "A1", Quantity: 3},
		{Article: "A1", Quantity: 3},
	})
	assert.True(t, apperr.Is(err, apperr.KindInsufficientStock))

	require.NoError(t, c.DecreaseStock([]model.CartLine{{Article: "A1", Quantity: 5}}))
	a1, _ := c.FindByArticle("A1")
	assert.Equal(t, int64(0), a1.Stock)
	assert.True(t, c.Dirty())
}

func TestCatalog_DecreaseStock_HugeRepeatedQuantities(t *testing.T) {
	c := newCatalog(t, model.Product{Article: "A1", Stock: 5})

	err := c.DecreaseStock([]model.CartLine{
		{Article: "A1", Quantity: 1},
		{Article: "A1", Quantity: math.MaxInt64},
	})
	assert.True(t, apperr.Is(err, apperr.KindInsufficientStock))

	a1, _ := c.FindByArticle("A1")
	assert.Equal(t, int64(5), a1.Stock)
	assert.False(t, c.Dirty())
}

func TestCatalog_DecreaseStock_MissingArticle(t *testing.T) {
	c := newCatalog(t, model.Product{Article: "A1", Stock: 5})

	err := c.DecreaseStock([]model.CartLine{{Article: "GONE", Quantity: 1}})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestCatalog_ListIsACopy(t *testing.T) {
	c := newCatalog(t, model.Product{Article: "A1", Name: "Boxer"})

	list := c.List()
	list[0].Name = "changed"

	p, _ := c.FindByArticle("A1")
	assert.Equal(t, "Boxer", p.Name)
}
