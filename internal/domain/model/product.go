package model

import "github.com/shopspring/decimal"

// Product is one catalog line keyed by Article.
type Product struct {
	Article string          `gorm:"primaryKey;type:varchar(64)" json:"article"`
	Name    string          `gorm:"type:varchar(255);not null" json:"name"`
	Brand   string          `gorm:"type:varchar(255);not null;index" json:"brand"`
	Price   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Stock   int64           `gorm:"not null" json:"stock"`
}
