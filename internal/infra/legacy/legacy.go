// Package legacy reads the product and sales files written by the earlier
// desktop tool (productos.json / ventas.json, Spanish keys, float prices).
package legacy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"retailpos/internal/domain/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// DateLayout is how the legacy tool stamped each sale.
const DateLayout = "02/01/2006 15:04"

type record map[string]any

// ReadProducts decodes a legacy catalog. Values are coerced the way the old
// loader did: text is trimmed and numbers that do not parse become zero.
func ReadProducts(path string) ([]model.Product, error) {
	recs, err := readRecords(path)
	if err != nil {
		return nil, err
	}
	products := make([]model.Product, 0, len(recs))
	for _, r := range recs {
		products = append(products, model.Product{
			Article: r.text("articulo"),
			Name:    r.text("nombre"),
			Brand:   r.text("marca"),
			Price:   r.decimal("precio").Round(2),
			Stock:   r.integer("stock"),
		})
	}
	return products, nil
}

// ReadSales decodes a legacy sales log. Dates are read in loc. Sales whose
// date cannot be parsed are skipped and counted; newID names each sale.
func ReadSales(path string, loc *time.Location, newID func() string) ([]model.Sale, int, error) {
	recs, err := readRecords(path)
	if err != nil {
		return nil, 0, err
	}
	if loc == nil {
		loc = time.Local
	}

	sales := make([]model.Sale, 0, len(recs))
	skipped := 0
	for _, r := range recs {
		ts, err := time.ParseInLocation(DateLayout, r.text("fecha"), loc)
		if err != nil {
			skipped++
			continue
		}
		sale := model.Sale{
			ID:        newID(),
			Timestamp: ts,
			Customer: model.Customer{
				Name:     r.text("cliente"),
				IDNumber: r.text("dni"),
				Phone:    r.text("tel"),
			},
			Items: []model.SaleItem{},
		}
		for _, it := range r.list("productos") {
			sale.Items = append(sale.Items, model.SaleItem{
				Article:   it.text("articulo"),
				Name:      it.text("nombre"),
				Brand:     it.text("marca"),
				Quantity:  it.integer("cantidad"),
				UnitPrice: it.decimal("precio"),
			})
		}
		if _, ok := r["total"]; ok {
			sale.Total = r.decimal("total").Round(2)
		} else {
			sale.Total = sale.ItemsTotal()
		}
		sales = append(sales, sale)
	}
	return sales, skipped, nil
}

func readRecords(path string) ([]record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var recs []record
	if err := dec.Decode(&recs); err != nil {
		return nil, errors.Wrapf(err, "decode %s: expected a JSON array of objects", path)
	}
	return recs, nil
}

func (r record) text(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func (r record) decimal(key string) decimal.Decimal {
	var s string
	switch v := r[key].(type) {
	case json.Number:
		s = v.String()
	case string:
		s = strings.TrimSpace(v)
	default:
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func (r record) integer(key string) int64 {
	switch v := r[key].(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
		if f, err := v.Float64(); err == nil {
			return int64(f)
		}
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return n
		}
	}
	return 0
}

func (r record) list(key string) []record {
	raw, ok := r[key].([]any)
	if !ok {
		return nil
	}
	out := make([]record, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(map[string]any); ok {
			out = append(out, record(m))
		}
	}
	return out
}
