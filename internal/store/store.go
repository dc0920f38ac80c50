// Package store owns the in-memory catalog and sales log and the boundary
// where they are loaded from and written back to a repository backend.
package store

import (
	"context"
	"errors"

	"retailpos/internal/apperr"
	repo "retailpos/internal/repository"

	"github.com/sirupsen/logrus"
)

type Store struct {
	Catalog *Catalog
	Sales   *SalesLog

	tx  repo.TransactionManager
	log logrus.FieldLogger
}

func New(tx repo.TransactionManager, log logrus.FieldLogger) *Store {
	return &Store{
		Catalog: NewCatalog(),
		Sales:   NewSalesLog(),
		tx:      tx,
		log:     log,
	}
}

// Load reads both collections. A collection that cannot be read starts empty
// and the failure is logged as a warning; Load itself only fails when the
// backend cannot start a unit of work.
func (s *Store) Load(ctx context.Context) error {
	err := s.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		products, err := r.Products().LoadAll(ctx)
		if err != nil {
			s.log.WithError(err).WithField("corrupt", errors.Is(err, repo.ErrCorrupt)).
				Warn("catalog_load_failed_starting_empty")
			products = nil
		}
		for _, article := range s.Catalog.Replace(products) {
			s.log.WithField("article", article).Warn("catalog_duplicate_article_dropped")
		}

		sales, err := r.Sales().LoadAll(ctx)
		if err != nil {
			s.log.WithError(err).WithField("corrupt", errors.Is(err, repo.ErrCorrupt)).
				Warn("sales_load_failed_starting_empty")
			sales = nil
		}
		s.Sales.Replace(sales)
		return nil
	})
	if err != nil {
		return apperr.Persistence("load data", err)
	}

	s.Catalog.MarkClean()
	s.Sales.MarkClean()
	s.log.WithFields(logrus.Fields{
		"products": s.Catalog.Len(),
		"sales":    s.Sales.Len(),
	}).Debug("store_loaded")
	return nil
}

// Persist writes every dirty collection as a whole snapshot, sales first.
// A failed sales write stops before the catalog is touched.
// On failure the in-memory state is kept and stays dirty so a later call retries.
func (s *Store) Persist(ctx context.Context) error {
	catalogDirty, salesDirty := s.Catalog.Dirty(), s.Sales.Dirty()
	if !catalogDirty && !salesDirty {
		return nil
	}

	err := s.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if salesDirty {
			if err := r.Sales().SaveAll(ctx, s.Sales.All()); err != nil {
				return err
			}
		}
		if catalogDirty {
			return r.Products().SaveAll(ctx, s.Catalog.List())
		}
		return nil
	})
	if err != nil {
		s.log.WithError(err).Error("persist_failed")
		return apperr.Persistence("saving failed, changes are kept in memory but may not be durable", err)
	}

	s.Catalog.MarkClean()
	s.Sales.MarkClean()
	return nil
}
