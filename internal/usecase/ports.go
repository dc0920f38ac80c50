package usecase

import (
	"time"

	"retailpos/internal/domain/model"
)

// IDGenerator issues sale identifiers.
type IDGenerator interface {
	NewID() string
}

// Clock stamps committed sales.
type Clock interface {
	Now() time.Time
}

// ProductFinder looks up the live catalog entry for an article.
type ProductFinder interface {
	FindByArticle(article string) (model.Product, error)
}

// SaleLister reads the sales log in append order.
type SaleLister interface {
	All() []model.Sale
}
