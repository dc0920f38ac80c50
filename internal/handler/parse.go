package handler

import (
	"strconv"
	"strings"
	"time"

	"retailpos/internal/apperr"

	"github.com/shopspring/decimal"
)

// date layouts accepted on the command line, day first as on printed receipts
var dateLayouts = []string{"02/01/2006", "2006-01-02"}

func parseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperr.Validation("invalid date " + strconv.Quote(s) + ", use dd/mm/yyyy or yyyy-mm-dd")
}

func parseQuantity(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, apperr.Validation("invalid quantity " + strconv.Quote(s))
	}
	return n, nil
}

// parseItem reads ARTICLE:QTY. The article may itself contain colons.
func parseItem(s string) (string, int64, error) {
	i := strings.LastIndex(s, ":")
	if i <= 0 || i == len(s)-1 {
		return "", 0, apperr.Validation("invalid item " + strconv.Quote(s) + ", use ARTICLE:QTY")
	}
	qty, err := parseQuantity(s[i+1:])
	if err != nil {
		return "", 0, err
	}
	return strings.TrimSpace(s[:i]), qty, nil
}

// parseDecimal accepts a comma as decimal separator too.
func parseDecimal(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", "."))
	if err != nil {
		return decimal.Zero, apperr.Validation("invalid " + field + " " + strconv.Quote(s))
	}
	return d, nil
}
