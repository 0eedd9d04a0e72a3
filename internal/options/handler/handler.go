package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/matbaa/storefront-service/internal/options"
	"github.com/matbaa/storefront-service/internal/options/dto"
	"github.com/matbaa/storefront-service/internal/options/usecase"
	"github.com/matbaa/storefront-service/pkg/i18n"
	"github.com/matbaa/storefront-service/pkg/logger"
)

type OptionsHandler struct {
	uc     options.UseCase
	logger logger.ZapLogger
}

func NewOptionsHandler(uc options.UseCase, log logger.ZapLogger) *OptionsHandler {
	return &OptionsHandler{
		uc:     uc,
		logger: log,
	}
}

// GetSchema handles GET /api/products/:id/options.
func (h *OptionsHandler) GetSchema(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	schema, err := h.uc.GetSchema(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, usecase.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "المنتج غير موجود"})
			return
		}
		h.logger.Error("failed to load option schema", zap.Int64("product_id", productID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	c.JSON(http.StatusOK, schema)
}

// Quote handles POST /api/products/:id/quote.
func (h *OptionsHandler) Quote(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	var input dto.SelectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid selection payload"})
		return
	}

	result, err := h.uc.Quote(c.Request.Context(), productID, &input)
	if err != nil {
		if errors.Is(err, usecase.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "المنتج غير موجود"})
			return
		}
		h.logger.Error("failed to quote selection", zap.Int64("product_id", productID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	localizeMissing(c, result)
	c.JSON(http.StatusOK, result)
}

// localizeMissing translates the Arabic field labels when the client
// asks for English; group names pass through untranslated.
func localizeMissing(c *gin.Context, result *dto.QuoteResult) {
	lang := requestLang(c)
	if lang == "ar" {
		return
	}
	for i, label := range result.Missing {
		result.Missing[i] = i18n.T(lang, label)
	}
}

func requestLang(c *gin.Context) string {
	accept := strings.ToLower(c.GetHeader("Accept-Language"))
	if strings.HasPrefix(accept, "en") {
		return "en"
	}
	return "ar"
}

func parseProductID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
		return 0, false
	}
	return id, true
}
