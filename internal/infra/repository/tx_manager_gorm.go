package repository

import (
	"context"
	"time"

	repo "retailpos/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	products repo.ProductRepository
	sales    repo.SaleRepository
}

func (r *txReposGorm) Products() repo.ProductRepository { return r.products }
func (r *txReposGorm) Sales() repo.SaleRepository       { return r.sales }

// TxManagerGorm writes the catalog and the sales log in one database transaction.
type TxManagerGorm struct {
	db  *gorm.DB
	loc *time.Location
}

func NewTxManagerGorm(db *gorm.DB, loc *time.Location) *TxManagerGorm {
	return &TxManagerGorm{db: db, loc: loc}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// repos are rebuilt on the tx handle
		r := &txReposGorm{
			products: NewProductGormRepository(tx),
			sales:    NewSaleGormRepository(tx, tm.loc),
		}
		return fn(r)
	})
}
