package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter registers the catalog routes on a fresh engine.
func NewRouter(h *Handler, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), AccessLog(logger), Recovery(logger))

	r.GET("/health", h.Health)

	r.POST("/add", h.AddProduct)
	r.DELETE("/remove/:product_id", h.RemoveProduct)
	r.GET("/analytics/view/:product_id", h.RecordView)

	r.GET("/search", h.Search)
	r.GET("/getall", h.ListTop)

	r.POST("/purchase", h.Purchase)

	return r
}
