// Package export renders report sales as one row per sold item.
package export

import (
	"time"

	"retailpos/internal/domain/model"

	"github.com/shopspring/decimal"
)

// DateLayout is how sale timestamps are printed in every export.
const DateLayout = "02/01/2006 15:04"

// Header names the columns of Row in order.
var Header = []string{"Date", "Customer", "ID", "Phone", "Article", "Name", "Brand", "Quantity", "Total"}

// Row is a single sold item with the sale it belongs to.
type Row struct {
	Date      time.Time
	Customer  string
	IDNumber  string
	Phone     string
	Article   string
	Name      string
	Brand     string
	Quantity  int64
	LineTotal decimal.Decimal
}

// Rows flattens sales in order, timestamps shown in loc.
func Rows(sales []model.Sale, loc *time.Location) []Row {
	if loc == nil {
		loc = time.Local
	}
	out := []Row{}
	for _, s := range sales {
		for _, it := range s.Items {
			out = append(out, Row{
				Date:      s.Timestamp.In(loc),
				Customer:  s.Customer.Name,
				IDNumber:  s.Customer.IDNumber,
				Phone:     s.Customer.Phone,
				Article:   it.Article,
				Name:      it.Name,
				Brand:     it.Brand,
				Quantity:  it.Quantity,
				LineTotal: it.LineTotal().Round(2),
			})
		}
	}
	return out
}

// Strings returns the cells of r as printed text, in Header order.
func (r Row) Strings() []string {
	return []string{
		r.Date.Format(DateLayout),
		r.Customer,
		r.IDNumber,
		r.Phone,
		r.Article,
		r.Name,
		r.Brand,
		decimal.NewFromInt(r.Quantity).String(),
		r.LineTotal.StringFixed(2),
	}
}
