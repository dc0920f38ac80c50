package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is the buyer recorded on a sale.
type Customer struct {
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	IDNumber string `gorm:"type:varchar(32);not null;index" json:"id_number"`
	Phone    string `gorm:"type:varchar(32)" json:"phone,omitempty"`
}

// Sale is an immutable committed transaction.
// Items are copies taken at commit time, not references to the catalog.
type Sale struct {
	ID        string          `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Timestamp time.Time       `gorm:"not null;index" json:"timestamp"`
	Customer  Customer        `gorm:"embedded;embeddedPrefix:customer_" json:"customer"`
	Items     []SaleItem      `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"items"`
	Total     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`
}

// ItemsTotal sums the line totals of every item, rounded to cents.
func (s Sale) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.Items {
		total = total.Add(it.LineTotal())
	}
	return total.Round(2)
}
