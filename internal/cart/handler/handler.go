package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/matbaa/storefront-service/internal/auth"
	"github.com/matbaa/storefront-service/internal/cart"
	"github.com/matbaa/storefront-service/internal/cart/dto"
	"github.com/matbaa/storefront-service/internal/cart/usecase"
	"github.com/matbaa/storefront-service/internal/model"
	optionsdto "github.com/matbaa/storefront-service/internal/options/dto"
	optionsUC "github.com/matbaa/storefront-service/internal/options/usecase"
	"github.com/matbaa/storefront-service/pkg/i18n"
	"github.com/matbaa/storefront-service/pkg/logger"
)

type CartHandler struct {
	uc     cart.UseCase
	logger logger.ZapLogger
}

func NewCartHandler(uc cart.UseCase, log logger.ZapLogger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: log,
	}
}

type addItemRequest struct {
	ProductID int64                     `json:"product_id" binding:"required"`
	Selection *optionsdto.SelectionInput `json:"selection" binding:"required"`
}

type updateItemRequest struct {
	Selection *optionsdto.SelectionInput `json:"selection" binding:"required"`
}

// AddItem handles POST /api/cart/items.
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid cart payload"})
		return
	}

	item, err := h.uc.AddItem(c.Request.Context(), &dto.AddItemInput{
		UserID:    userID,
		ProductID: req.ProductID,
		Selection: req.Selection,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateItem handles PUT /api/cart/items/:id.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid cart payload"})
		return
	}

	item, err := h.uc.UpdateItem(c.Request.Context(), &dto.UpdateItemInput{
		UserID:    userID,
		ItemID:    c.Param("id"),
		Selection: req.Selection,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// ListItems handles GET /api/cart.
func (h *CartHandler) ListItems(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	items, err := h.uc.ListItems(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if items == nil {
		items = []model.CartItem{}
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetItemOptions handles GET /api/cart/items/:id/options.
func (h *CartHandler) GetItemOptions(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	saved, err := h.uc.GetItemOptions(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, saved)
}

// RemoveItem handles DELETE /api/cart/items/:id.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.uc.RemoveItem(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *CartHandler) writeError(c *gin.Context, err error) {
	var incomplete *usecase.IncompleteSelectionError
	switch {
	case errors.As(err, &incomplete):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "incomplete selection",
			"missing": localize(c, incomplete.Missing),
		})
	case errors.Is(err, usecase.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "cart item not found"})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden"})
	case errors.Is(err, optionsUC.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "المنتج غير موجود"})
	default:
		h.logger.Error("cart request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}

func localize(c *gin.Context, labels []string) []string {
	accept := strings.ToLower(c.GetHeader("Accept-Language"))
	if !strings.HasPrefix(accept, "en") {
		return labels
	}
	out := make([]string, len(labels))
	for i, label := range labels {
		out[i] = i18n.T("en", label)
	}
	return out
}

func requireUser(c *gin.Context) (string, bool) {
	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "missing user identity"})
		return "", false
	}
	return userID, true
}
