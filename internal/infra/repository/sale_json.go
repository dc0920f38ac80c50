package repository

import (
	"context"

	"retailpos/internal/domain/model"
)

// SaleJSONRepository keeps the sales log in one JSON array file.
type SaleJSONRepository struct {
	path string
}

func NewSaleJSONRepository(path string) *SaleJSONRepository {
	return &SaleJSONRepository{path: path}
}

func (r *SaleJSONRepository) Path() string { return r.path }

func (r *SaleJSONRepository) LoadAll(ctx context.Context) ([]model.Sale, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var sales []model.Sale
	if _, err := readJSONFile(r.path, &sales); err != nil {
		return nil, err
	}
	if sales == nil {
		sales = []model.Sale{}
	}
	for i := range sales {
		if sales[i].Items == nil {
			sales[i].Items = []model.SaleItem{}
		}
	}
	return sales, nil
}

func (r *SaleJSONRepository) SaveAll(ctx context.Context, sales []model.Sale) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if sales == nil {
		sales = []model.Sale{}
	}
	return writeJSONFile(r.path, sales)
}
