package repository

import (
	"context"

	"retailpos/internal/domain/model"
)

// SaleRepository stores the sales log as one snapshot, in append order.
type SaleRepository interface {
	LoadAll(ctx context.Context) ([]model.Sale, error)
	SaveAll(ctx context.Context, sales []model.Sale) error
}
