package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"retailpos/internal/domain/model"
	repo "retailpos/internal/repository"
	"retailpos/internal/store"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// =====================
// Fakes
// =====================

type seqIDs struct{ n int }

func (g *seqIDs) NewID() string {
	g.n++
	return fmt.Sprintf("sale-%d", g.n)
}

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

// memBackend keeps the saved snapshots in memory and can be told to fail saves.
type memBackend struct {
	products []model.Product
	sales    []model.Sale
	saveErr  error
	saves    int
}

type memProducts struct{ b *memBackend }

func (r memProducts) LoadAll(ctx context.Context) ([]model.Product, error) { return r.b.products, nil }

func (r memProducts) SaveAll(ctx context.Context, products []model.Product) error {
	if r.b.saveErr != nil {
		return r.b.saveErr
	}
	r.b.products = products
	r.b.saves++
	return nil
}

type memSales struct{ b *memBackend }

func (r memSales) LoadAll(ctx context.Context) ([]model.Sale, error) { return r.b.sales, nil }

func (r memSales) SaveAll(ctx context.Context, sales []model.Sale) error {
	if r.b.saveErr != nil {
		return r.b.saveErr
	}
	r.b.sales = sales
	r.b.saves++
	return nil
}

func (b *memBackend) Products() repo.ProductRepository { return memProducts{b} }
func (b *memBackend) Sales() repo.SaleRepository       { return memSales{b} }

func (b *memBackend) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(b)
}

func newStore(t *testing.T, products ...model.Product) (*store.Store, *memBackend) {
	t.Helper()
	log, _ := test.NewNullLogger()
	b := &memBackend{products: products}
	st := store.New(b, log)
	require.NoError(t, st.Load(context.Background()))
	return st, b
}

func boxer() model.Product {
	return model.Product{Article: "A1", Name: "Boxer", Brand: "BrandX", Price: dec("10.00"), Stock: 5}
}

func exampleSale() model.Sale {
	return model.Sale{
		ID:        "existing",
		Timestamp: time.Date(2023, 12, 24, 9, 0, 0, 0, time.UTC),
		Customer:  model.Customer{Name: "Ana", IDNumber: "1"},
		Items:     []model.SaleItem{{Article: "A1", Name: "Boxer", Brand: "BrandX", Quantity: 1, UnitPrice: dec("10.00")}},
		Total:     dec("10.00"),
	}
}
