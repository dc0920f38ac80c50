package usecase

import (
	"math"
	"strings"

	"retailpos/internal/apperr"
	"retailpos/internal/domain/model"

	"github.com/shopspring/decimal"
)

// Cart is the selection being built for one sale.
// Stock checks always read the live catalog through products.
type Cart struct {
	products ProductFinder
	lines    []model.CartLine
}

func NewCart(products ProductFinder) *Cart {
	return &Cart{products: products}
}

// Add puts qty units of article in the cart, merging with an existing line.
// The unit price is taken from the catalog the first time the article is added.
func (c *Cart) Add(article string, qty int64) (model.CartLine, error) {
	if qty < 1 {
		return model.CartLine{}, apperr.Validation("quantity must be at least 1")
	}
	p, err := c.products.FindByArticle(article)
	if err != nil {
		return model.CartLine{}, err
	}

	i := c.find(p.Article)
	var existing int64
	if i >= 0 {
		existing = c.lines[i].Quantity
	}
	// compared without adding so a huge qty cannot wrap around
	if qty > p.Stock-existing {
		requested := int64(math.MaxInt64)
		if qty <= math.MaxInt64-existing {
			requested = existing + qty
		}
		return model.CartLine{}, apperr.InsufficientStock(p.Article, requested, p.Stock)
	}
	newQty := existing + qty

	if i >= 0 {
		c.lines[i].Quantity = newQty
		return c.lines[i], nil
	}
	line := model.CartLine{Article: p.Article, Quantity: newQty, UnitPrice: p.Price}
	c.lines = append(c.lines, line)
	return line, nil
}

// SetQuantity overwrites the quantity of a line; zero removes it.
func (c *Cart) SetQuantity(article string, qty int64) error {
	if qty < 0 {
		return apperr.Validation("quantity must not be negative")
	}
	i := c.find(strings.TrimSpace(article))
	if i < 0 {
		return apperr.NotFound(article)
	}
	if qty == 0 {
		c.removeAt(i)
		return nil
	}
	p, err := c.products.FindByArticle(article)
	if err != nil {
		return err
	}
	if qty > p.Stock {
		return apperr.InsufficientStock(p.Article, qty, p.Stock)
	}
	c.lines[i].Quantity = qty
	return nil
}

// Remove drops the line for article, if any.
func (c *Cart) Remove(article string) {
	if i := c.find(strings.TrimSpace(article)); i >= 0 {
		c.removeAt(i)
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the lines in the order they were added.
func (c *Cart) Lines() []model.CartLine {
	out := make([]model.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int { return len(c.lines) }

func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

// Subtotal is the rounded line amount for article, zero when absent.
func (c *Cart) Subtotal(article string) decimal.Decimal {
	i := c.find(strings.TrimSpace(article))
	if i < 0 {
		return decimal.Zero
	}
	return c.lines[i].Subtotal()
}

// Total is the sum of the rounded subtotals, rounded to cents.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total.Round(2)
}

func (c *Cart) find(article string) int {
	for i, l := range c.lines {
		if l.Article == article {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(i int) {
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}
