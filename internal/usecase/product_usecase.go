package usecase

import (
	"context"
	"strings"

	"retailpos/internal/apperr"
	"retailpos/internal/domain/model"
	"retailpos/internal/store"
	"retailpos/internal/validator"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ProductInput is the form used to add or edit a catalog entry.
type ProductInput struct {
	Article string          `json:"article" validate:"required,max=64"`
	Name    string          `json:"name" validate:"required"`
	Brand   string          `json:"brand" validate:"required"`
	Price   decimal.Decimal `json:"price" validate:"-"`
	Stock   int64           `json:"stock" validate:"gte=0"`
}

type ProductUsecase struct {
	store     *store.Store
	validator *validator.Validator
	log       logrus.FieldLogger
}

func NewProductUsecase(st *store.Store, v *validator.Validator, log logrus.FieldLogger) *ProductUsecase {
	return &ProductUsecase{store: st, validator: v, log: log}
}

func (u *ProductUsecase) List() []model.Product {
	return u.store.Catalog.List()
}

// Search matches article or name, ignoring case. Empty text lists everything.
func (u *ProductUsecase) Search(text string) []model.Product {
	return u.store.Catalog.Search(text)
}

func (u *ProductUsecase) Brands() []string {
	return u.store.Catalog.Brands()
}

func (u *ProductUsecase) Get(article string) (model.Product, error) {
	return u.store.Catalog.FindByArticle(article)
}

// Upsert adds a product or replaces the fields of the existing article.
func (u *ProductUsecase) Upsert(ctx context.Context, in ProductInput) (model.Product, bool, error) {
	in.Article = strings.TrimSpace(in.Article)
	in.Name = strings.TrimSpace(in.Name)
	in.Brand = strings.TrimSpace(in.Brand)
	if err := u.validator.Struct(in); err != nil {
		return model.Product{}, false, err
	}
	if in.Price.IsNegative() {
		return model.Product{}, false, apperr.Validation("price must be >= 0")
	}

	p := model.Product{
		Article: in.Article,
		Name:    in.Name,
		Brand:   in.Brand,
		Price:   in.Price.Round(2),
		Stock:   in.Stock,
	}
	created := u.store.Catalog.Upsert(p)
	u.log.WithFields(logrus.Fields{"article": p.Article, "created": created}).Info("product_saved")
	return p, created, u.store.Persist(ctx)
}

func (u *ProductUsecase) Delete(ctx context.Context, article string) error {
	if err := u.store.Catalog.Delete(article); err != nil {
		return err
	}
	u.log.WithField("article", article).Info("product_deleted")
	return u.store.Persist(ctx)
}

// Restock adds delta units to the stock of article. Negative deltas correct
// counts but may not take stock below zero.
func (u *ProductUsecase) Restock(ctx context.Context, article string, delta int64) (model.Product, error) {
	if delta == 0 {
		return model.Product{}, apperr.Validation("quantity must not be zero")
	}
	p, err := u.store.Catalog.AdjustStock(article, delta)
	if err != nil {
		return model.Product{}, err
	}
	u.log.WithFields(logrus.Fields{"article": p.Article, "delta": delta, "stock": p.Stock}).Info("stock_adjusted")
	return p, u.store.Persist(ctx)
}

// ApplyBrandPercentage raises (or lowers, with a negative percent) every price
// of brand. Below -100 prices would turn negative, so that is refused.
func (u *ProductUsecase) ApplyBrandPercentage(ctx context.Context, brand string, percent decimal.Decimal) (int, error) {
	if strings.TrimSpace(brand) == "" {
		return 0, apperr.Validation("brand is required")
	}
	if percent.LessThan(decimal.NewFromInt(-100)) {
		return 0, apperr.Validation("percent must be >= -100")
	}
	count := u.store.Catalog.ApplyBrandPercentage(brand, percent)
	if count == 0 {
		return 0, nil
	}
	u.log.WithFields(logrus.Fields{"brand": brand, "percent": percent.String(), "products": count}).Info("brand_prices_adjusted")
	return count, u.store.Persist(ctx)
}
