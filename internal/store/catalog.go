package store

import (
	"math"
	"sort"
	"strings"

	"retailpos/internal/apperr"
	"retailpos/internal/domain/model"

	"github.com/shopspring/decimal"
)

// Catalog is the in-memory product list, in insertion order, indexed by article.
// It is owned by one operator session and is not safe for concurrent use.
type Catalog struct {
	products []model.Product
	index    map[string]int
	dirty    bool
}

func NewCatalog() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// Replace swaps the whole content. Text fields are trimmed, blank articles and
// repeated articles are dropped (first wins) and negative stock is clamped to 0.
// It returns the articles that were dropped.
func (c *Catalog) Replace(products []model.Product) []string {
	c.products = make([]model.Product, 0, len(products))
	c.index = make(map[string]int, len(products))
	var dropped []string
	for _, p := range products {
		p = normalizeProduct(p)
		if p.Article == "" {
			dropped = append(dropped, "")
			continue
		}
		if _, ok := c.index[p.Article]; ok {
			dropped = append(dropped, p.Article)
			continue
		}
		c.index[p.Article] = len(c.products)
		c.products = append(c.products, p)
	}
	return dropped
}

func normalizeProduct(p model.Product) model.Product {
	p.Article = strings.TrimSpace(p.Article)
	p.Name = strings.TrimSpace(p.Name)
	p.Brand = strings.TrimSpace(p.Brand)
	if p.Stock < 0 {
		p.Stock = 0
	}
	return p
}

func (c *Catalog) Len() int { return len(c.products) }

// List returns a copy of every product.
func (c *Catalog) List() []model.Product {
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

// FindByArticle returns the live product for article.
func (c *Catalog) FindByArticle(article string) (model.Product, error) {
	i, ok := c.index[strings.TrimSpace(article)]
	if !ok {
		return model.Product{}, apperr.NotFound(article)
	}
	return c.products[i], nil
}

// Search matches text case-insensitively against article and name.
func (c *Catalog) Search(text string) []model.Product {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return c.List()
	}
	out := []model.Product{}
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Article), needle) || strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}

// Brands returns the distinct non-empty brands, sorted.
func (c *Catalog) Brands() []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range c.products {
		if p.Brand == "" {
			continue
		}
		if _, ok := seen[p.Brand]; ok {
			continue
		}
		seen[p.Brand] = struct{}{}
		out = append(out, p.Brand)
	}
	sort.Strings(out)
	return out
}

// Upsert adds p or overwrites the product with the same article.
func (c *Catalog) Upsert(p model.Product) (created bool) {
	p = normalizeProduct(p)
	c.dirty = true
	if i, ok := c.index[p.Article]; ok {
		c.products[i] = p
		return false
	}
	c.index[p.Article] = len(c.products)
	c.products = append(c.products, p)
	return true
}

func (c *Catalog) Delete(article string) error {
	article = strings.TrimSpace(article)
	i, ok := c.index[article]
	if !ok {
		return apperr.NotFound(article)
	}
	c.products = append(c.products[:i], c.products[i+1:]...)
	delete(c.index, article)
	for j := i; j < len(c.products); j++ {
		c.index[c.products[j].Article] = j
	}
	c.dirty = true
	return nil
}

// AdjustStock adds delta to the stock of article. The result may not go below zero.
func (c *Catalog) AdjustStock(article string, delta int64) (model.Product, error) {
	article = strings.TrimSpace(article)
	i, ok := c.index[article]
	if !ok {
		return model.Product{}, apperr.NotFound(article)
	}
	p := &c.products[i]
	if p.Stock+delta < 0 {
		return *p, apperr.InsufficientStock(article, -delta, p.Stock)
	}
	p.Stock += delta
	c.dirty = true
	return *p, nil
}

// ApplyBrandPercentage moves every price of brand by percent and rounds to cents.
// Brand matching ignores case. It returns how many products changed.
func (c *Catalog) ApplyBrandPercentage(brand string, percent decimal.Decimal) int {
	brand = strings.TrimSpace(brand)
	factor := decimal.NewFromInt(1).Add(percent.Div(decimal.NewFromInt(100)))
	count := 0
	for i := range c.products {
		if !strings.EqualFold(c.products[i].Brand, brand) {
			continue
		}
		c.products[i].Price = c.products[i].Price.Mul(factor).Round(2)
		count++
	}
	if count > 0 {
		c.dirty = true
	}
	return count
}

// DecreaseStock takes every line quantity out of stock, or nothing at all.
// All lines are checked against live stock before the first one is applied.
func (c *Catalog) DecreaseStock(lines []model.CartLine) error {
	wanted := make(map[string]int64, len(lines))
	order := make([]string, 0, len(lines))
	for _, l := range lines {
		if l.Quantity <= 0 {
			return apperr.Validation("quantity for " + l.Article + " must be positive")
		}
		if _, ok := wanted[l.Article]; !ok {
			order = append(order, l.Article)
		}
		if wanted[l.Article] > math.MaxInt64-l.Quantity {
			return apperr.InsufficientStock(l.Article, math.MaxInt64, c.stockOf(l.Article))
		}
		wanted[l.Article] += l.Quantity
	}

	for _, article := range order {
		i, ok := c.index[article]
		if !ok {
			return apperr.NotFound(article)
		}
		if qty := wanted[article]; qty <= 0 {
			return apperr.Validation("quantity for " + article + " must be positive")
		} else if qty > c.products[i].Stock {
			return apperr.InsufficientStock(article, qty, c.products[i].Stock)
		}
	}

	for _, article := range order {
		c.products[c.index[article]].Stock -= wanted[article]
	}
	if len(order) > 0 {
		c.dirty = true
	}
	return nil
}

func (c *Catalog) stockOf(article string) int64 {
	if i, ok := c.index[article]; ok {
		return c.products[i].Stock
	}
	return 0
}

// Dirty reports whether the catalog changed since the last MarkClean.
func (c *Catalog) Dirty() bool { return c.dirty }

func (c *Catalog) MarkDirty() { c.dirty = true }

func (c *Catalog) MarkClean() { c.dirty = false }
