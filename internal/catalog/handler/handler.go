package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/matbaa/storefront-service/internal/catalog"
	"github.com/matbaa/storefront-service/internal/catalog/dto"
	"github.com/matbaa/storefront-service/pkg/logger"
)

type CatalogHandler struct {
	uc     catalog.UseCase
	logger logger.ZapLogger
}

func NewCatalogHandler(uc catalog.UseCase, log logger.ZapLogger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: log,
	}
}

// ListProducts handles GET /api/products.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	active := true
	filters := &dto.ProductFilters{
		IsActive:    &active,
		SearchQuery: c.Query("q"),
		SortBy:      c.Query("sort_by"),
		SortOrder:   c.Query("sort_order"),
		Page:        queryInt(c, "page", 1),
		PageSize:    queryInt(c, "page_size", 20),
	}
	if catID, err := strconv.ParseInt(c.Query("category_id"), 10, 64); err == nil {
		filters.CategoryID = catID
	}

	products, count, err := h.uc.ListProducts(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products":  products,
		"total":     count,
		"page":      filters.Page,
		"page_size": filters.PageSize,
	})
}

// GetProduct handles GET /api/products/:id.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
		return
	}

	product, err := h.uc.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to get product", zap.Int64("product_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "المنتج غير موجود"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// ListCategories handles GET /api/categories.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.uc.ListCategories(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func queryInt(c *gin.Context, key string, fallback int) int {
	if v, err := strconv.Atoi(c.Query(key)); err == nil && v > 0 {
		return v
	}
	return fallback
}
