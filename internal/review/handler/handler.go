package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/matbaa/storefront-service/internal/auth"
	"github.com/matbaa/storefront-service/internal/model"
	"github.com/matbaa/storefront-service/internal/review"
	"github.com/matbaa/storefront-service/internal/review/dto"
	"github.com/matbaa/storefront-service/internal/review/usecase"
	"github.com/matbaa/storefront-service/pkg/logger"
)

type ReviewHandler struct {
	uc     review.UseCase
	logger logger.ZapLogger
}

func NewReviewHandler(uc review.UseCase, log logger.ZapLogger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: log,
	}
}

type createReviewRequest struct {
	UserName string `json:"user_name" binding:"required"`
	Rating   int    `json:"rating" binding:"required"`
	Comment  string `json:"comment" binding:"required"`
}

// ListByProduct handles GET /api/products/:id/reviews.
func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	reviews, err := h.uc.ListByProduct(c.Request.Context(), productID,
		queryInt(c, "page", 1), queryInt(c, "page_size", 20))
	if err != nil {
		h.writeError(c, err)
		return
	}
	if reviews == nil {
		reviews = []model.Review{}
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// Create handles POST /api/products/:id/reviews.
func (h *ReviewHandler) Create(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "missing user identity"})
		return
	}

	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid review payload"})
		return
	}

	rev, err := h.uc.Create(c.Request.Context(), &dto.CreateReviewInput{
		ProductID: productID,
		UserID:    userID,
		UserName:  req.UserName,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rev)
}

func (h *ReviewHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "المنتج غير موجود"})
	case errors.Is(err, usecase.ErrInvalidRating), errors.Is(err, usecase.ErrEmptyComment):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		h.logger.Error("review request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}

func queryInt(c *gin.Context, key string, fallback int) int {
	if v, err := strconv.Atoi(c.Query(key)); err == nil && v > 0 {
		return v
	}
	return fallback
}

func parseProductID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
		return 0, false
	}
	return id, true
}
