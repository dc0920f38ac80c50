package model

import "github.com/shopspring/decimal"

// SaleItem is the snapshot of one sold article.
type SaleItem struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"-"`
	SaleID    string          `gorm:"type:varchar(36);not null;index" json:"-"`
	Article   string          `gorm:"type:varchar(64);not null" json:"article"`
	Name      string          `gorm:"type:varchar(255);not null" json:"name"`
	Brand     string          `gorm:"type:varchar(255);not null" json:"brand"`
	Quantity  int64           `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
}

// LineTotal is unit price * quantity, unrounded.
func (it SaleItem) LineTotal() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity))
}
