package usecase

import (
	"time"

	"retailpos/internal/apperr"
	"retailpos/internal/domain/model"

	"github.com/shopspring/decimal"
)

// Report is the outcome of a date range query over the sales log.
type Report struct {
	From  time.Time
	To    time.Time
	Sales []model.Sale
	Total decimal.Decimal
}

// ReportUsecase answers read-only questions about the sales log.
type ReportUsecase struct {
	sales SaleLister
	loc   *time.Location
}

// NewReportUsecase reads sale timestamps in loc when deciding which day they belong to.
func NewReportUsecase(sales SaleLister, loc *time.Location) *ReportUsecase {
	if loc == nil {
		loc = time.Local
	}
	return &ReportUsecase{sales: sales, loc: loc}
}

// Query returns the sales whose date falls in [from, to], both inclusive.
// Only the calendar date of from and to is used, as written in their own location.
// No match yields an empty report, not an error.
func (u *ReportUsecase) Query(from, to time.Time) (Report, error) {
	start, end := civilDate(from), civilDate(to)
	if start.After(end) {
		return Report{}, apperr.Validation("start date must not be after end date")
	}

	out := Report{From: start, To: end, Sales: []model.Sale{}, Total: decimal.Zero}
	for _, s := range u.sales.All() {
		day := civilDate(s.Timestamp.In(u.loc))
		if day.Before(start) || day.After(end) {
			continue
		}
		out.Sales = append(out.Sales, s)
		for _, it := range s.Items {
			out.Total = out.Total.Add(it.LineTotal())
		}
	}
	out.Total = out.Total.Round(2)
	return out, nil
}

// History returns every sale in append order.
func (u *ReportUsecase) History() []model.Sale {
	return u.sales.All()
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
