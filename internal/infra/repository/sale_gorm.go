package repository

import (
	"context"
	"time"

	"retailpos/internal/domain/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type SaleGormRepository struct {
	db  *gorm.DB
	loc *time.Location
}

// NewSaleGormRepository reads timestamps back in loc, since timestamptz drops the offset.
func NewSaleGormRepository(db *gorm.DB, loc *time.Location) *SaleGormRepository {
	if loc == nil {
		loc = time.Local
	}
	return &SaleGormRepository{db: db, loc: loc}
}

func (r *SaleGormRepository) LoadAll(ctx context.Context) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("sale_items.id asc")
		}).
		Order(`"timestamp" asc`).
		Order("id asc").
		Find(&sales).Error
	if err != nil {
		return nil, errors.Wrap(err, "select sales")
	}
	for i := range sales {
		sales[i].Timestamp = sales[i].Timestamp.In(r.loc)
		if sales[i].Items == nil {
			sales[i].Items = []model.SaleItem{}
		}
	}
	return sales, nil
}

// SaveAll replaces every sale and item row. Callers run it inside WithinTx.
func (r *SaleGormRepository) SaveAll(ctx context.Context, sales []model.Sale) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("1 = 1").Delete(&model.SaleItem{}).Error; err != nil {
		return errors.Wrap(err, "delete sale items")
	}
	if err := db.Where("1 = 1").Delete(&model.Sale{}).Error; err != nil {
		return errors.Wrap(err, "delete sales")
	}
	if len(sales) == 0 {
		return nil
	}

	// item ids are reassigned by the sequence so re-inserted rows never collide
	rows := make([]model.Sale, len(sales))
	for i, s := range sales {
		items := make([]model.SaleItem, len(s.Items))
		for j, it := range s.Items {
			it.ID = 0
			it.SaleID = s.ID
			items[j] = it
		}
		s.Items = items
		rows[i] = s
	}
	if err := db.CreateInBatches(&rows, 100).Error; err != nil {
		return errors.Wrapf(err, "insert %d sales", len(rows))
	}
	return nil
}
