package handler

import (
	"fmt"

	"retailpos/internal/apperr"
	"retailpos/internal/usecase"

	"github.com/urfave/cli/v2"
)

// ProductHandler serves the catalog commands.
type ProductHandler struct {
	uc *Usecases
}

func NewProductHandler(uc *Usecases) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Command returns the "product" command tree.
func (h *ProductHandler) Command() *cli.Command {
	return &cli.Command{
		Name:  "product",
		Usage: "manage the catalog",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "list products, optionally filtered by article or name",
				Flags:  []cli.Flag{&cli.StringFlag{Name: "search", Aliases: []string{"s"}, Usage: "text to look for"}},
				Action: h.list,
			},
			{
				Name:  "add",
				Usage: "add a product or overwrite an existing article",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "article", Required: true},
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "brand", Required: true},
					&cli.StringFlag{Name: "price", Required: true},
					&cli.Int64Flag{Name: "stock"},
				},
				Action: h.add,
			},
			{
				Name:      "delete",
				Usage:     "remove a product",
				ArgsUsage: "ARTICLE",
				Action:    h.delete,
			},
			{
				Name:      "restock",
				Usage:     "add units to stock, negative to correct a count",
				ArgsUsage: "ARTICLE DELTA",
				Action:    h.restock,
			},
			{
				Name:   "brands",
				Usage:  "list the brands in the catalog",
				Action: h.brands,
			},
			{
				Name:  "adjust-price",
				Usage: "move every price of a brand by a percentage",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "brand", Required: true},
					&cli.StringFlag{Name: "percent", Required: true, Usage: "e.g. 10 or -5.5"},
				},
				Action: h.adjustPrice,
			},
		},
	}
}

func (h *ProductHandler) list(c *cli.Context) error {
	return printProducts(c.App.Writer, h.uc.Products.Search(c.String("search")))
}

func (h *ProductHandler) add(c *cli.Context) error {
	price, err := parseDecimal("price", c.String("price"))
	if err != nil {
		return writeError(err)
	}
	p, created, err := h.uc.Products.Upsert(c.Context, usecase.ProductInput{
		Article: c.String("article"),
		Name:    c.String("name"),
		Brand:   c.String("brand"),
		Price:   price,
		Stock:   c.Int64("stock"),
	})
	if p.Article != "" {
		verb := "updated"
		if created {
			verb = "added"
		}
		fmt.Fprintf(c.App.Writer, "%s %s\n", verb, p.Article)
	}
	return writeError(err)
}

func (h *ProductHandler) delete(c *cli.Context) error {
	if c.NArg() != 1 {
		return writeError(apperr.Validation("usage: product delete ARTICLE"))
	}
	article := c.Args().First()
	if err := h.uc.Products.Delete(c.Context, article); err != nil {
		return writeError(err)
	}
	fmt.Fprintf(c.App.Writer, "deleted %s\n", article)
	return nil
}

func (h *ProductHandler) restock(c *cli.Context) error {
	if c.NArg() != 2 {
		return writeError(apperr.Validation("usage: product restock ARTICLE DELTA"))
	}
	delta, err := parseQuantity(c.Args().Get(1))
	if err != nil {
		return writeError(err)
	}
	p, err := h.uc.Products.Restock(c.Context, c.Args().First(), delta)
	if p.Article != "" {
		fmt.Fprintf(c.App.Writer, "%s stock %d\n", p.Article, p.Stock)
	}
	return writeError(err)
}

func (h *ProductHandler) brands(c *cli.Context) error {
	for _, b := range h.uc.Products.Brands() {
		fmt.Fprintln(c.App.Writer, b)
	}
	return nil
}

func (h *ProductHandler) adjustPrice(c *cli.Context) error {
	percent, err := parseDecimal("percent", c.String("percent"))
	if err != nil {
		return writeError(err)
	}
	n, err := h.uc.Products.ApplyBrandPercentage(c.Context, c.String("brand"), percent)
	if err != nil && !apperr.Is(err, apperr.KindPersistence) {
		return writeError(err)
	}
	fmt.Fprintf(c.App.Writer, "%d products updated\n", n)
	return writeError(err)
}
