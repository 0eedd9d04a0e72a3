package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/matbaa/storefront-service/internal/coupon"
	"github.com/matbaa/storefront-service/internal/coupon/dto"
	"github.com/matbaa/storefront-service/internal/model"
	"github.com/matbaa/storefront-service/pkg/logger"
)

const (
	StatusValid    = "valid"
	StatusInvalid  = "invalid"
	StatusExpired  = "expired"
	StatusNotFound = "not_found"
)

type couponUseCase struct {
	repo   coupon.Repository
	logger logger.ZapLogger
}

func NewCouponUseCase(repo coupon.Repository, log logger.ZapLogger) coupon.UseCase {
	return &couponUseCase{
		repo:   repo,
		logger: log,
	}
}

// Apply checks a code against its activation window, minimum order and
// usage limit, and returns the storefront-shaped verdict. It is a pure
// price check and never consumes a use; the storefront may call it
// repeatedly while the customer edits the cart. Rejections are results,
// not errors; errors mean the lookup itself failed.
func (uc *couponUseCase) Apply(ctx context.Context, code string, orderTotal float64) (*dto.ApplyResult, error) {
	_, result, err := uc.check(ctx, code, orderTotal)
	return result, err
}

// Redeem re-runs the same checks at order placement and consumes one use
// on success.
func (uc *couponUseCase) Redeem(ctx context.Context, code string, orderTotal float64) (*dto.ApplyResult, error) {
	c, result, err := uc.check(ctx, code, orderTotal)
	if err != nil || result.Status != StatusValid {
		return result, err
	}
	if err := uc.repo.IncrementUsage(ctx, c.ID); err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *couponUseCase) check(ctx context.Context, code string, orderTotal float64) (*model.Coupon, *dto.ApplyResult, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, &dto.ApplyResult{Status: StatusInvalid, Message: "يرجى إدخال كود الكوبون"}, nil
	}

	c, err := uc.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, nil, err
	}
	if c == nil {
		return nil, &dto.ApplyResult{Status: StatusNotFound, Message: "الكوبون غير صحيح"}, nil
	}

	now := time.Now()
	if !c.IsActive {
		return c, &dto.ApplyResult{Status: StatusExpired, Message: "الكوبون غير مفعل"}, nil
	}
	if c.StartsAt != nil && now.Before(*c.StartsAt) {
		return c, &dto.ApplyResult{Status: StatusInvalid, Message: "الكوبون غير مفعل بعد"}, nil
	}
	if c.ExpiresAt != nil && now.After(*c.ExpiresAt) {
		return c, &dto.ApplyResult{Status: StatusExpired, Message: "انتهت صلاحية الكوبون"}, nil
	}
	if c.MaxUses > 0 && c.UsedCount >= c.MaxUses {
		return c, &dto.ApplyResult{Status: StatusExpired, Message: "تم استخدام الكوبون بالكامل"}, nil
	}
	if orderTotal < c.MinOrderTotal {
		return c, &dto.ApplyResult{
			Status:  StatusInvalid,
			Message: fmt.Sprintf("الحد الأدنى للطلب %.2f", c.MinOrderTotal),
		}, nil
	}

	return c, &dto.ApplyResult{
		Status:        StatusValid,
		Message:       "تم تطبيق الكوبون بنجاح",
		DiscountType:  c.DiscountType,
		DiscountValue: c.DiscountValue,
		NewTotal:      ApplyDiscount(orderTotal, c),
	}, nil
}

// ApplyDiscount returns the order total after the coupon, never below
// zero.
func ApplyDiscount(total float64, c *model.Coupon) float64 {
	var discounted float64
	switch c.DiscountType {
	case "percent":
		discounted = total - total*c.DiscountValue/100
	case "fixed":
		discounted = total - c.DiscountValue
	default:
		discounted = total
	}
	if discounted < 0 {
		return 0
	}
	return discounted
}
