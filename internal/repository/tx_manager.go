package repository

import "context"

// TxRepos is what a unit of work sees.
type TxRepos interface {
	Products() ProductRepository
	Sales() SaleRepository
}

// TransactionManager hides how a backend groups the catalog and sales writes.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
