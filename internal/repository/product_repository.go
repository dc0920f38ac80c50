package repository

import (
	"context"
	"errors"

	"retailpos/internal/domain/model"
)

// ErrCorrupt is returned by a load when the stored snapshot cannot be decoded.
var ErrCorrupt = errors.New("corrupt snapshot")

// ProductRepository stores the catalog as one snapshot.
// LoadAll returns an empty slice when nothing was saved yet.
type ProductRepository interface {
	LoadAll(ctx context.Context) ([]model.Product, error)
	// SaveAll overwrites the whole stored catalog.
	SaveAll(ctx context.Context, products []model.Product) error
}
