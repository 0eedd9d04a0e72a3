package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/matbaa/storefront-service/internal/coupon"
	"github.com/matbaa/storefront-service/internal/coupon/dto"
	"github.com/matbaa/storefront-service/pkg/logger"
)

type CouponHandler struct {
	uc     coupon.UseCase
	logger logger.ZapLogger
}

func NewCouponHandler(uc coupon.UseCase, log logger.ZapLogger) *CouponHandler {
	return &CouponHandler{
		uc:     uc,
		logger: log,
	}
}

type applyRequest struct {
	CouponCode string  `json:"coupon_code" binding:"required"`
	OrderTotal float64 `json:"order_total"`
}

// Apply handles POST /api/coupon/apply. Rejected codes come back as 200
// with a non-valid status; the storefront renders the message either way.
// Apply is a price check only, so repeated calls never burn a use.
func (h *CouponHandler) Apply(c *gin.Context) {
	h.respond(c, h.uc.Apply)
}

// Redeem handles POST /api/coupon/redeem, called once at order placement
// to consume a use.
func (h *CouponHandler) Redeem(c *gin.Context) {
	h.respond(c, h.uc.Redeem)
}

func (h *CouponHandler) respond(c *gin.Context, op func(context.Context, string, float64) (*dto.ApplyResult, error)) {
	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid coupon payload"})
		return
	}

	result, err := op(c.Request.Context(), req.CouponCode, req.OrderTotal)
	if err != nil {
		h.logger.Error("coupon request failed", zap.String("code", req.CouponCode), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	c.JSON(http.StatusOK, result)
}
