package services

import (
	"go.uber.org/zap"

	"github.com/light-bringer/procat-analytics/internal/app/catalog/contracts"
	"github.com/light-bringer/procat-analytics/internal/app/catalog/queries/list_top_products"
	"github.com/light-bringer/procat-analytics/internal/app/catalog/queries/search_products"
	"github.com/light-bringer/procat-analytics/internal/app/catalog/usecases/add_product"
	"github.com/light-bringer/procat-analytics/internal/app/catalog/usecases/record_purchase_intent"
	"github.com/light-bringer/procat-analytics/internal/app/catalog/usecases/record_view"
	"github.com/light-bringer/procat-analytics/internal/app/catalog/usecases/remove_product"
	"github.com/light-bringer/procat-analytics/internal/app/catalog/validation"
	"github.com/light-bringer/procat-analytics/internal/pkg/clock"
	httptransport "github.com/light-bringer/procat-analytics/internal/transport/http"
)

// Store groups one backend's implementations of the catalog contracts.
type Store struct {
	Products  contracts.ProductRepository
	Views     contracts.ViewRepository
	ReadModel contracts.ReadModel
	Health    contracts.HealthChecker
}

// Catalog holds the wired use cases, queries and the HTTP handler.
type Catalog struct {
	// Commands
	AddProduct     *add_product.Interactor
	RemoveProduct  *remove_product.Interactor
	RecordView     *record_view.Interactor
	RecordPurchase *record_purchase_intent.Interactor

	// Queries
	SearchProducts  *search_products.Query
	ListTopProducts *list_top_products.Query

	HTTPHandler *httptransport.Handler
}

// NewCatalog wires the catalog over store and oracle. It opens nothing.
func NewCatalog(store Store, oracle contracts.BlobOracle, defaultBucket string, clk clock.Clock, logger *zap.Logger) *Catalog {
	validator := validation.NewValidator(oracle, defaultBucket, logger.Named("validation"))

	c := &Catalog{
		AddProduct:      add_product.NewInteractor(store.Products, validator, logger),
		RemoveProduct:   remove_product.NewInteractor(store.Products, logger),
		RecordView:      record_view.NewInteractor(store.Products, store.Views, logger),
		RecordPurchase:  record_purchase_intent.NewInteractor(logger, clk),
		SearchProducts:  search_products.NewQuery(store.ReadModel),
		ListTopProducts: list_top_products.NewQuery(store.ReadModel),
	}

	c.HTTPHandler = httptransport.NewHandler(
		c.AddProduct,
		c.RemoveProduct,
		c.RecordView,
		c.RecordPurchase,
		c.SearchProducts,
		c.ListTopProducts,
		logger.Named("http"),
	)
	return c
}
