package repository

import (
	"context"

	"retailpos/internal/domain/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// Rows come back ordered by article; the table has no insertion order.
func (r *ProductGormRepository) LoadAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.WithContext(ctx).Order("article asc").Find(&products).Error; err != nil {
		return nil, errors.Wrap(err, "select products")
	}
	return products, nil
}

// SaveAll replaces every row. Callers run it inside WithinTx.
func (r *ProductGormRepository) SaveAll(ctx context.Context, products []model.Product) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("1 = 1").Delete(&model.Product{}).Error; err != nil {
		return errors.Wrap(err, "delete products")
	}
	if len(products) == 0 {
		return nil
	}
	rows := make([]model.Product, len(products))
	copy(rows, products)
	if err := db.CreateInBatches(&rows, 200).Error; err != nil {
		return errors.Wrapf(err, "insert %d products", len(rows))
	}
	return nil
}
