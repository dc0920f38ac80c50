package handler

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"retailpos/internal/domain/model"
	"retailpos/internal/export"

	"github.com/shopspring/decimal"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printProducts(w io.Writer, products []model.Product) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ARTICLE\tNAME\tBRAND\tPRICE\tSTOCK")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", p.Article, p.Name, p.Brand, p.Price.StringFixed(2), p.Stock)
	}
	return tw.Flush()
}

func printCart(w io.Writer, lines []model.CartLine, total decimal.Decimal) error {
	if len(lines) == 0 {
		_, err := fmt.Fprintln(w, "cart is empty")
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ARTICLE\tQTY\tUNIT\tSUBTOTAL")
	for _, l := range lines {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", l.Article, l.Quantity, l.UnitPrice.StringFixed(2), l.Subtotal().StringFixed(2))
	}
	fmt.Fprintf(tw, "\t\tTOTAL\t%s\n", total.StringFixed(2))
	return tw.Flush()
}

func printSale(w io.Writer, s model.Sale, loc *time.Location) error {
	fmt.Fprintf(w, "sale %s at %s\n", s.ID, s.Timestamp.In(loc).Format(export.DateLayout))
	customer := s.Customer.Name + " (" + s.Customer.IDNumber + ")"
	if s.Customer.Phone != "" {
		customer += " tel " + s.Customer.Phone
	}
	fmt.Fprintf(w, "customer %s\n", customer)
	tw := newTable(w)
	fmt.Fprintln(tw, "ARTICLE\tNAME\tBRAND\tQTY\tUNIT\tTOTAL")
	for _, it := range s.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
			it.Article, it.Name, it.Brand, it.Quantity, it.UnitPrice.StringFixed(2), it.LineTotal().StringFixed(2))
	}
	fmt.Fprintf(tw, "\t\t\t\tTOTAL\t%s\n", s.Total.StringFixed(2))
	return tw.Flush()
}

func printRows(w io.Writer, rows []export.Row) error {
	tw := newTable(w)
	fmt.Fprintln(tw, strings.ToUpper(strings.Join(export.Header, "\t")))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r.Strings(), "\t"))
	}
	return tw.Flush()
}
