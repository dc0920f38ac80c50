package server

import (
	"context"
	"time"

	"retailpos/internal/apperr"
	"retailpos/internal/config"
	"retailpos/internal/handler"
	"retailpos/internal/infra/db"
	infraRepo "retailpos/internal/infra/repository"
	repo "retailpos/internal/repository"
	"retailpos/internal/store"
	"retailpos/internal/usecase"
	"retailpos/internal/validator"

	"github.com/sirupsen/logrus"
)

// Deps are the process wide parts built by main.
type Deps struct {
	Config   config.Config
	Log      logrus.FieldLogger
	IDs      usecase.IDGenerator
	Clock    usecase.Clock
	Location *time.Location
}

// Open picks the backend from cfg, loads the store and builds the use cases.
// The returned func releases the backend.
func Open(ctx context.Context, cfg config.Config, d Deps) (*handler.Usecases, func() error, error) {
	loc := d.Location
	if loc == nil {
		loc = time.Local
	}

	var tx repo.TransactionManager
	closeFn := func() error { return nil }
	switch cfg.Backend {
	case config.BackendPostgres:
		gormDB, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, apperr.Persistence("connect database", err)
		}
		tx = infraRepo.NewTxManagerGorm(gormDB, loc)
		closeFn = func() error { return db.Close(gormDB) }
	default:
		tx = infraRepo.NewTxManagerJSON(cfg.CatalogPath(), cfg.SalesPath())
	}

	st := store.New(tx, d.Log)
	if err := st.Load(ctx); err != nil {
		_ = closeFn()
		return nil, nil, err
	}
	d.Log.WithFields(logrus.Fields{
		"backend":  cfg.Backend,
		"products": st.Catalog.Len(),
		"sales":    st.Sales.Len(),
	}).Debug("store_opened")

	v := validator.New()
	return &handler.Usecases{
		Products: usecase.NewProductUsecase(st, v, d.Log),
		Checkout: usecase.NewCheckoutUsecase(st, v, d.IDs, d.Clock, d.Log),
		Reports:  usecase.NewReportUsecase(st.Sales, loc),
		Imports:  usecase.NewImportUsecase(st, d.IDs, loc, d.Log),
		Location: loc,
	}, closeFn, nil
}
