package repository

import (
	"context"

	repo "retailpos/internal/repository"
)

type txReposJSON struct {
	products *ProductJSONRepository
	sales    *SaleJSONRepository
}

func (r *txReposJSON) Products() repo.ProductRepository { return r.products }
func (r *txReposJSON) Sales() repo.SaleRepository       { return r.sales }

// TxManagerJSON hands out the two file repositories.
// Each file is replaced atomically; the pair is not.
type TxManagerJSON struct {
	repos *txReposJSON
}

func NewTxManagerJSON(productsPath, salesPath string) *TxManagerJSON {
	return &TxManagerJSON{repos: &txReposJSON{
		products: NewProductJSONRepository(productsPath),
		sales:    NewSaleJSONRepository(salesPath),
	}}
}

func (tm *TxManagerJSON) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(tm.repos)
}
