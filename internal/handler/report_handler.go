package handler

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"retailpos/internal/export"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
)

// ReportHandler serves read-only views of the sales log.
type ReportHandler struct {
	uc *Usecases
}

func NewReportHandler(uc *Usecases) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func (h *ReportHandler) Commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "report",
			Usage: "sales between two dates, both inclusive",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "from", Required: true, Usage: "dd/mm/yyyy or yyyy-mm-dd"},
				&cli.StringFlag{Name: "to", Required: true, Usage: "dd/mm/yyyy or yyyy-mm-dd"},
				&cli.StringFlag{Name: "xlsx", Usage: "also write the report to this spreadsheet"},
				&cli.StringFlag{Name: "pdf", Usage: "also write the report to this pdf"},
			},
			Action: h.report,
		},
		{
			Name:   "history",
			Usage:  "every recorded sale, one line per item",
			Action: h.history,
		},
	}
}

func (h *ReportHandler) report(c *cli.Context) error {
	loc := h.uc.location()
	from, err := parseDate(c.String("from"), loc)
	if err != nil {
		return writeError(err)
	}
	to, err := parseDate(c.String("to"), loc)
	if err != nil {
		return writeError(err)
	}

	rep, err := h.uc.Reports.Query(from, to)
	if err != nil {
		return writeError(err)
	}

	rows := export.Rows(rep.Sales, loc)
	if err := printRows(c.App.Writer, rows); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%d sales, period total %s\n", len(rep.Sales), rep.Total.StringFixed(2))

	title := fmt.Sprintf("Sales %s - %s", rep.From.Format("02/01/2006"), rep.To.Format("02/01/2006"))
	if path := c.String("xlsx"); path != "" {
		if err := writeFile(path, func(w io.Writer) error { return export.WriteXLSX(w, rows, rep.Total) }); err != nil {
			return writeError(err)
		}
		fmt.Fprintf(c.App.Writer, "wrote %s\n", path)
	}
	if path := c.String("pdf"); path != "" {
		if err := writeFile(path, func(w io.Writer) error { return export.WritePDF(w, title, rows, rep.Total) }); err != nil {
			return writeError(err)
		}
		fmt.Fprintf(c.App.Writer, "wrote %s\n", path)
	}
	return nil
}

func (h *ReportHandler) history(c *cli.Context) error {
	sales := h.uc.Reports.History()
	if err := printRows(c.App.Writer, export.Rows(sales, h.uc.location())); err != nil {
		return err
	}
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.Total)
	}
	fmt.Fprintf(c.App.Writer, "%d sales, total %s\n", len(sales), total.StringFixed(2))
	return nil
}

// writeFile renders into a temp file next to path and renames it into place.
// A failed render leaves nothing at path.
func writeFile(path string, render func(io.Writer) error) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if err = render(f); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", path)
	}
	if err = os.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "rename %s", path)
	}
	return nil
}
