package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matbaa/storefront-service/internal/model"
	"github.com/matbaa/storefront-service/pkg/logger"
)

type fakeCouponRepo struct {
	coupons map[string]*model.Coupon
	usage   map[int64]int
}

func newFakeCouponRepo(coupons ...*model.Coupon) *fakeCouponRepo {
	r := &fakeCouponRepo{coupons: map[string]*model.Coupon{}, usage: map[int64]int{}}
	for _, c := range coupons {
		r.coupons[strings.ToUpper(c.Code)] = c
	}
	return r
}

func (r *fakeCouponRepo) FindByCode(_ context.Context, code string) (*model.Coupon, error) {
	c, ok := r.coupons[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCouponRepo) IncrementUsage(_ context.Context, id int64) error {
	r.usage[id]++
	return nil
}

func activeCoupon() *model.Coupon {
	return &model.Coupon{
		ID:            1,
		Code:          "SAVE10",
		DiscountType:  "percent",
		DiscountValue: 10,
		IsActive:      true,
	}
}

func TestApplyValidCoupon(t *testing.T) {
	repo := newFakeCouponRepo(activeCoupon())
	uc := NewCouponUseCase(repo, logger.NewNop())

	result, err := uc.Apply(context.Background(), "save10", 200)
	require.NoError(t, err)

	assert.Equal(t, StatusValid, result.Status)
	assert.Equal(t, "percent", result.DiscountType)
	assert.Equal(t, 10.0, result.DiscountValue)
	assert.Equal(t, 180.0, result.NewTotal)
}

func TestApplyIsReadOnly(t *testing.T) {
	repo := newFakeCouponRepo(activeCoupon())
	uc := NewCouponUseCase(repo, logger.NewNop())

	// the storefront re-checks the code on every cart edit
	for i := 0; i < 5; i++ {
		result, err := uc.Apply(context.Background(), "SAVE10", 200)
		require.NoError(t, err)
		assert.Equal(t, StatusValid, result.Status)
	}
	assert.Equal(t, 0, repo.usage[1])
}

func TestRedeemConsumesOneUse(t *testing.T) {
	repo := newFakeCouponRepo(activeCoupon())
	uc := NewCouponUseCase(repo, logger.NewNop())

	result, err := uc.Redeem(context.Background(), "SAVE10", 200)
	require.NoError(t, err)

	assert.Equal(t, StatusValid, result.Status)
	assert.Equal(t, 180.0, result.NewTotal)
	assert.Equal(t, 1, repo.usage[1])
}

func TestRedeemRejectedLeavesUsage(t *testing.T) {
	c := activeCoupon()
	c.MinOrderTotal = 500

	repo := newFakeCouponRepo(c)
	uc := NewCouponUseCase(repo, logger.NewNop())

	result, err := uc.Redeem(context.Background(), "SAVE10", 100)
	require.NoError(t, err)

	assert.Equal(t, StatusInvalid, result.Status)
	assert.Equal(t, 0, repo.usage[1])
}

func TestApplyUnknownCode(t *testing.T) {
	uc := NewCouponUseCase(newFakeCouponRepo(), logger.NewNop())

	result, err := uc.Apply(context.Background(), "NOPE", 100)
	require.NoError(t, err)

	assert.Equal(t, StatusNotFound, result.Status)
	assert.Empty(t, result.DiscountType)
}

func TestApplyEmptyCode(t *testing.T) {
	uc := NewCouponUseCase(newFakeCouponRepo(), logger.NewNop())

	result, err := uc.Apply(context.Background(), "   ", 100)
	require.NoError(t, err)
	assert.Equal(t, StatusInvalid, result.Status)
}

func TestApplyExpiredCoupon(t *testing.T) {
	c := activeCoupon()
	expired := time.Now().Add(-time.Hour)
	c.ExpiresAt = &expired

	uc := NewCouponUseCase(newFakeCouponRepo(c), logger.NewNop())

	result, err := uc.Apply(context.Background(), "SAVE10", 100)
	require.NoError(t, err)
	assert.Equal(t, StatusExpired, result.Status)
}

func TestApplyInactiveCoupon(t *testing.T) {
	c := activeCoupon()
	c.IsActive = false

	uc := NewCouponUseCase(newFakeCouponRepo(c), logger.NewNop())

	result, err := uc.Apply(context.Background(), "SAVE10", 100)
	require.NoError(t, err)
	assert.Equal(t, StatusExpired, result.Status)
}

func TestApplyUsageLimitReached(t *testing.T) {
	c := activeCoupon()
	c.MaxUses = 3
	c.UsedCount = 3

	uc := NewCouponUseCase(newFakeCouponRepo(c), logger.NewNop())

	result, err := uc.Apply(context.Background(), "SAVE10", 100)
	require.NoError(t, err)
	assert.Equal(t, StatusExpired, result.Status)
}

func TestApplyBelowMinimumOrder(t *testing.T) {
	c := activeCoupon()
	c.MinOrderTotal = 150

	repo := newFakeCouponRepo(c)
	uc := NewCouponUseCase(repo, logger.NewNop())

	result, err := uc.Apply(context.Background(), "SAVE10", 100)
	require.NoError(t, err)

	assert.Equal(t, StatusInvalid, result.Status)
	assert.Equal(t, 0, repo.usage[1])
}

func TestApplyDiscountClampsAtZero(t *testing.T) {
	fixed := &model.Coupon{DiscountType: "fixed", DiscountValue: 80}
	assert.Equal(t, 0.0, ApplyDiscount(50, fixed))
	assert.Equal(t, 20.0, ApplyDiscount(100, fixed))

	percent := &model.Coupon{DiscountType: "percent", DiscountValue: 25}
	assert.Equal(t, 75.0, ApplyDiscount(100, percent))

	unknown := &model.Coupon{DiscountType: "bogus", DiscountValue: 25}
	assert.Equal(t, 100.0, ApplyDiscount(100, unknown))
}
