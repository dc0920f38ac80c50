package handler

import (
	"fmt"

	"retailpos/internal/apperr"
	"retailpos/internal/usecase"

	"github.com/urfave/cli/v2"
)

// SaleHandler commits a sale described entirely by flags.
type SaleHandler struct {
	uc *Usecases
}

func NewSaleHandler(uc *Usecases) *SaleHandler {
	return &SaleHandler{uc: uc}
}

func (h *SaleHandler) Command() *cli.Command {
	return &cli.Command{
		Name:  "sale",
		Usage: "sell one or more items to a customer",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "customer", Required: true, Usage: "customer name"},
			&cli.StringFlag{Name: "id", Required: true, Usage: "customer id number, digits only"},
			&cli.StringFlag{Name: "phone"},
			&cli.StringSliceFlag{Name: "item", Required: true, Usage: "ARTICLE:QTY, repeatable"},
		},
		Action: h.sell,
	}
}

func (h *SaleHandler) sell(c *cli.Context) error {
	cart := h.uc.Checkout.NewCart()
	for _, raw := range c.StringSlice("item") {
		article, qty, err := parseItem(raw)
		if err != nil {
			return writeError(err)
		}
		if _, err := cart.Add(article, qty); err != nil {
			return writeError(err)
		}
	}

	sale, err := h.uc.Checkout.Commit(c.Context, cart, usecase.CustomerInput{
		Name:     c.String("customer"),
		IDNumber: c.String("id"),
		Phone:    c.String("phone"),
	})
	if err != nil && !apperr.Is(err, apperr.KindPersistence) {
		return writeError(err)
	}
	if perr := printSale(c.App.Writer, sale, h.uc.location()); perr != nil {
		return perr
	}
	if err != nil {
		fmt.Fprintln(c.App.ErrWriter, "warning: the sale was recorded but could not be saved")
	}
	return writeError(err)
}
