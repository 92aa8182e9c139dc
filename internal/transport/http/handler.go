// Package http exposes the catalog over a JSON HTTP API.
package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/light-bringer/procat-analytics/internal/app/catalog/contracts"
	"github.com/light-bringer/procat-analytics/internal/app/catalog/queries/list_top_products"
	"github.com/light-bringer/procat-analytics/internal/app/catalog/queries/search_products"
	"github.com/light-bringer/procat-analytics/internal/app/catalog/usecases/add_product"
	"github.com/light-bringer/procat-analytics/internal/app/catalog/usecases/record_purchase_intent"
	"github.com/light-bringer/procat-analytics/internal/app/catalog/usecases/record_view"
	"github.com/light-bringer/procat-analytics/internal/app/catalog/usecases/remove_product"
)

// Handler is a thin coordinator that delegates to use cases and queries.
type Handler struct {
	// Commands
	addProduct     *add_product.Interactor
	removeProduct  *remove_product.Interactor
	recordView     *record_view.Interactor
	recordPurchase *record_purchase_intent.Interactor

	// Queries
	searchProducts  *search_products.Query
	listTopProducts *list_top_products.Query

	logger *zap.Logger
}

// NewHandler creates a new HTTP catalog handler.
func NewHandler(
	addProduct *add_product.Interactor,
	removeProduct *remove_product.Interactor,
	recordView *record_view.Interactor,
	recordPurchase *record_purchase_intent.Interactor,
	searchProducts *search_products.Query,
	listTopProducts *list_top_products.Query,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		addProduct:      addProduct,
		removeProduct:   removeProduct,
		recordView:      recordView,
		recordPurchase:  recordPurchase,
		searchProducts:  searchProducts,
		listTopProducts: listTopProducts,
		logger:          logger,
	}
}

// AddProductRequest is the POST /add body. Every field must be present.
type AddProductRequest struct {
	ProductID   *int64   `json:"product_id" binding:"required"`
	Name        *string  `json:"name" binding:"required"`
	Description *string  `json:"description" binding:"required"`
	ImageRef    *string  `json:"image_ref" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
}

// PurchaseRequest is the POST /purchase body.
type PurchaseRequest struct {
	UserID    *int64 `json:"user_id" binding:"required"`
	ProductID *int64 `json:"product_id" binding:"required"`
}

// Product is a product in list responses. ViewCount is null for search hits
// that were never viewed.
type Product struct {
	ProductID   int64   `json:"product_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageRef    string  `json:"image_ref"`
	Price       float64 `json:"price"`
	ViewCount   *int64  `json:"view_count"`
}

// ProductsResponse wraps product listings.
type ProductsResponse struct {
	Products []Product `json:"products"`
}

// Health handles GET /health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// AddProduct handles POST /add.
func (h *Handler) AddProduct(c *gin.Context) {
	var body AddProductRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	err := h.addProduct.Execute(c.Request.Context(), &add_product.Request{
		ProductID:   *body.ProductID,
		Name:        *body.Name,
		Description: *body.Description,
		ImageRef:    *body.ImageRef,
		Price:       *body.Price,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product added successfully"})
}

// RemoveProduct handles DELETE /remove/:product_id.
func (h *Handler) RemoveProduct(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}

	if err := h.removeProduct.Execute(c.Request.Context(), &remove_product.Request{ProductID: id}); err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product removed successfully"})
}

// RecordView handles GET /analytics/view/:product_id.
func (h *Handler) RecordView(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}

	if err := h.recordView.Execute(c.Request.Context(), &record_view.Request{ProductID: id}); err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "View count updated successfully"})
}

// Search handles GET /search?name=.
func (h *Handler) Search(c *gin.Context) {
	products, err := h.searchProducts.Execute(c.Request.Context(), &search_products.Request{Name: c.Query("name")})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(products))
}

// ListTop handles GET /getall.
func (h *Handler) ListTop(c *gin.Context) {
	products, err := h.listTopProducts.Execute(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(products))
}

// Purchase handles POST /purchase.
func (h *Handler) Purchase(c *gin.Context) {
	var body PurchaseRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	reply := h.recordPurchase.Execute(c.Request.Context(), &record_purchase_intent.Request{
		UserID:    *body.UserID,
		ProductID: *body.ProductID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message":     "Purchase request received",
		"received_at": reply.ReceivedAt.UTC().Format(time.RFC3339),
	})
}

func productIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		badRequest(c, "product_id must be an integer")
		return 0, false
	}
	return id, true
}

func toResponse(products []*contracts.ProductDTO) ProductsResponse {
	resp := ProductsResponse{Products: make([]Product, 0, len(products))}
	for _, p := range products {
		resp.Products = append(resp.Products, Product{
			ProductID:   p.ProductID,
			Name:        p.Name,
			Description: p.Description,
			ImageRef:    p.ImageRef,
			Price:       p.Price,
			ViewCount:   p.ViewCount,
		})
	}
	return resp
}
