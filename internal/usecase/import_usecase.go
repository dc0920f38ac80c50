package usecase

import (
	"context"
	"time"

	"retailpos/internal/domain/model"
	"retailpos/internal/infra/legacy"
	"retailpos/internal/store"

	"github.com/sirupsen/logrus"
)

// ImportResult counts what a legacy import brought in.
type ImportResult struct {
	Products        int
	DroppedProducts int
	Sales           int
	SkippedSales    int
}

// ImportUsecase loads data written by the earlier desktop tool.
type ImportUsecase struct {
	store *store.Store
	ids   IDGenerator
	loc   *time.Location
	log   logrus.FieldLogger
}

func NewImportUsecase(st *store.Store, ids IDGenerator, loc *time.Location, log logrus.FieldLogger) *ImportUsecase {
	return &ImportUsecase{store: st, ids: ids, loc: loc, log: log}
}

// ImportLegacy replaces the catalog with productsPath and the sales log with
// salesPath, then persists. An empty path leaves that collection untouched.
// Both files are read before anything is replaced.
func (u *ImportUsecase) ImportLegacy(ctx context.Context, productsPath, salesPath string) (ImportResult, error) {
	var res ImportResult

	var products []model.Product
	if productsPath != "" {
		var err error
		if products, err = legacy.ReadProducts(productsPath); err != nil {
			return res, err
		}
	}
	var sales []model.Sale
	if salesPath != "" {
		var err error
		if sales, res.SkippedSales, err = legacy.ReadSales(salesPath, u.loc, u.ids.NewID); err != nil {
			return res, err
		}
	}

	if productsPath != "" {
		res.DroppedProducts = len(u.store.Catalog.Replace(products))
		res.Products = u.store.Catalog.Len()
		u.store.Catalog.MarkDirty()
	}
	if salesPath != "" {
		u.store.Sales.Replace(sales)
		res.Sales = u.store.Sales.Len()
		u.store.Sales.MarkDirty()
	}

	u.log.WithFields(logrus.Fields{
		"products":         res.Products,
		"dropped_products": res.DroppedProducts,
		"sales":            res.Sales,
		"skipped_sales":    res.SkippedSales,
	}).Info("legacy_imported")
	return res, u.store.Persist(ctx)
}
