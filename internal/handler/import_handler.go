package handler

import (
	"fmt"

	"retailpos/internal/apperr"

	"github.com/urfave/cli/v2"
)

// ImportHandler brings in the data files of the previous desktop tool.
type ImportHandler struct {
	uc *Usecases
}

func NewImportHandler(uc *Usecases) *ImportHandler {
	return &ImportHandler{uc: uc}
}

func (h *ImportHandler) Command() *cli.Command {
	return &cli.Command{
		Name:  "import-legacy",
		Usage: "replace the catalog and/or sales with productos.json / ventas.json",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "products", Usage: "path to productos.json"},
			&cli.StringFlag{Name: "sales", Usage: "path to ventas.json"},
		},
		Action: h.importLegacy,
	}
}

func (h *ImportHandler) importLegacy(c *cli.Context) error {
	products, sales := c.String("products"), c.String("sales")
	if products == "" && sales == "" {
		return writeError(apperr.Validation("give --products, --sales or both"))
	}
	res, err := h.uc.Imports.ImportLegacy(c.Context, products, sales)
	if err != nil && !apperr.Is(err, apperr.KindPersistence) {
		return writeError(err)
	}
	if products != "" {
		fmt.Fprintf(c.App.Writer, "imported %d products (%d dropped)\n", res.Products, res.DroppedProducts)
	}
	if sales != "" {
		fmt.Fprintf(c.App.Writer, "imported %d sales (%d skipped)\n", res.Sales, res.SkippedSales)
	}
	return writeError(err)
}
