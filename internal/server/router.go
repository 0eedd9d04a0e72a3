package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	cartH "github.com/matbaa/storefront-service/internal/cart/handler"
	catalogH "github.com/matbaa/storefront-service/internal/catalog/handler"
	couponH "github.com/matbaa/storefront-service/internal/coupon/handler"
	optionsH "github.com/matbaa/storefront-service/internal/options/handler"
	reviewH "github.com/matbaa/storefront-service/internal/review/handler"
	"github.com/matbaa/storefront-service/pkg/logger"
)

type Handlers struct {
	Catalog *catalogH.CatalogHandler
	Options *optionsH.OptionsHandler
	Cart    *cartH.CartHandler
	Review  *reviewH.ReviewHandler
	Coupon  *couponH.CouponHandler
}

func NewRouter(h *Handlers, log logger.ZapLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/products", h.Catalog.ListProducts)
		api.GET("/products/:id", h.Catalog.GetProduct)
		api.GET("/categories", h.Catalog.ListCategories)

		api.GET("/products/:id/options", h.Options.GetSchema)
		api.POST("/products/:id/quote", h.Options.Quote)

		api.GET("/products/:id/reviews", h.Review.ListByProduct)
		api.POST("/products/:id/reviews", h.Review.Create)

		api.GET("/cart", h.Cart.ListItems)
		api.POST("/cart/items", h.Cart.AddItem)
		api.PUT("/cart/items/:id", h.Cart.UpdateItem)
		api.GET("/cart/items/:id/options", h.Cart.GetItemOptions)
		api.DELETE("/cart/items/:id", h.Cart.RemoveItem)

		api.POST("/coupon/apply", h.Coupon.Apply)
		api.POST("/coupon/redeem", h.Coupon.Redeem)
	}

	return r
}

func requestLogger(log logger.ZapLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
