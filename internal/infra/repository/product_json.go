package repository

import (
	"context"

	"retailpos/internal/domain/model"
)

// ProductJSONRepository keeps the catalog in one JSON array file.
type ProductJSONRepository struct {
	path string
}

func NewProductJSONRepository(path string) *ProductJSONRepository {
	return &ProductJSONRepository{path: path}
}

func (r *ProductJSONRepository) Path() string { return r.path }

func (r *ProductJSONRepository) LoadAll(ctx context.Context) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var products []model.Product
	if _, err := readJSONFile(r.path, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

func (r *ProductJSONRepository) SaveAll(ctx context.Context, products []model.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if products == nil {
		products = []model.Product{}
	}
	return writeJSONFile(r.path, products)
}
