package usecase

import (
	"context"
	"strings"

	"retailpos/internal/apperr"
	"retailpos/internal/domain/model"
	"retailpos/internal/store"
	"retailpos/internal/validator"

	"github.com/sirupsen/logrus"
)

// CustomerInput is the buyer data typed by the operator.
type CustomerInput struct {
	Name     string `json:"name" validate:"required"`
	IDNumber string `json:"id_number" validate:"required,number"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
}

// CheckoutUsecase turns a cart into a committed sale.
type CheckoutUsecase struct {
	store     *store.Store
	validator *validator.Validator
	ids       IDGenerator
	clock     Clock
	log       logrus.FieldLogger
}

func NewCheckoutUsecase(
	st *store.Store,
	v *validator.Validator,
	ids IDGenerator,
	clock Clock,
	log logrus.FieldLogger,
) *CheckoutUsecase {
	return &CheckoutUsecase{store: st, validator: v, ids: ids, clock: clock, log: log}
}

// NewCart opens an empty cart over the live catalog.
func (u *CheckoutUsecase) NewCart() *Cart {
	return NewCart(u.store.Catalog)
}

// Commit validates the customer and the cart against live stock, takes the stock,
// appends the sale and persists both collections.
//
// Nothing changes unless every check passes. When only the final persist fails
// the sale is committed in memory, the cart is cleared, and the sale is returned
// together with a persistence error.
func (u *CheckoutUsecase) Commit(ctx context.Context, cart *Cart, in CustomerInput) (model.Sale, error) {
	customer := model.Customer{
		Name:     strings.TrimSpace(in.Name),
		IDNumber: strings.TrimSpace(in.IDNumber),
		Phone:    strings.TrimSpace(in.Phone),
	}
	if err := u.validator.Struct(CustomerInput{
		Name:     customer.Name,
		IDNumber: customer.IDNumber,
		Phone:    customer.Phone,
	}); err != nil {
		return model.Sale{}, err
	}

	lines := cart.Lines()
	if len(lines) == 0 {
		return model.Sale{}, apperr.EmptyCart()
	}

	// recheck against live stock, the cart may be stale
	catalog := u.store.Catalog
	items := make([]model.SaleItem, 0, len(lines))
	for _, l := range lines {
		p, err := catalog.FindByArticle(l.Article)
		if err != nil {
			return model.Sale{}, err
		}
		if l.Quantity > p.Stock {
			return model.Sale{}, apperr.InsufficientStock(l.Article, l.Quantity, p.Stock)
		}
		items = append(items, model.SaleItem{
			Article:   p.Article,
			Name:      p.Name,
			Brand:     p.Brand,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}

	if err := catalog.DecreaseStock(lines); err != nil {
		return model.Sale{}, err
	}

	sale := model.Sale{
		ID:        u.ids.NewID(),
		Timestamp: u.clock.Now(),
		Customer:  customer,
		Items:     items,
		Total:     cart.Total(),
	}
	u.store.Sales.Append(sale)
	cart.Clear()

	entry := u.log.WithFields(logrus.Fields{
		"sale_id": sale.ID,
		"items":   len(sale.Items),
		"total":   sale.Total.StringFixed(2),
	})
	if err := u.store.Persist(ctx); err != nil {
		entry.WithError(err).Warn("sale_committed_not_persisted")
		return sale, err
	}
	entry.Info("sale_committed")
	return sale, nil
}
