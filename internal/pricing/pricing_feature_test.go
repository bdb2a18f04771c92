package pricing_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go-pet-storefront/internal/backend"
	"go-pet-storefront/internal/pricing"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
)

type totalTestContext struct {
	carts   []backend.Cart
	coupon  *backend.Coupon
	summary pricing.Summary
}

func (c *totalTestContext) reset() {
	c.carts = nil
	c.coupon = nil
	c.summary = pricing.Summary{}
}

func (c *totalTestContext) aCartFromShopWithAnItem(shopID, price string, qty int) error {
	p, err := decimal.NewFromString(price)
	if err != nil {
		return err
	}
	c.carts = append(c.carts, backend.Cart{
		ID:        "cart-" + shopID,
		ShopID:    shopID,
		CartItems: []backend.CartItem{{Price: p, Quantity: qty}},
	})
	return nil
}

func (c *totalTestContext) aCoupon(kind, code string, value, minutes int) error {
	c.coupon = &backend.Coupon{
		Code:      code,
		Type:      backend.CouponType(kind),
		Value:     decimal.NewFromInt(int64(value)),
		ExpiresAt: now.Add(time.Duration(minutes) * time.Minute),
	}
	return nil
}

func (c *totalTestContext) theTotalIsComputed() error {
	c.summary = pricing.ComputeTotal(c.carts, c.coupon, now)
	return nil
}

func expectMoney(field string, got decimal.Decimal, want string) error {
	w, err := decimal.NewFromString(want)
	if err != nil {
		return err
	}
	if !w.Equal(got) {
		return fmt.Errorf("expected %s %s, got %s", field, want, got)
	}
	return nil
}

func (c *totalTestContext) noCouponIsApplied() error {
	if c.summary.Coupon != nil {
		return fmt.Errorf("expected no coupon, got %q", c.summary.Coupon.Code)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &totalTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^a cart from shop "([^"]*)" with an item priced (\d+\.\d+) and quantity (\d+)$`, tc.aCartFromShopWithAnItem)
	ctx.Step(`^a "([^"]*)" coupon "([^"]*)" worth (\d+) expiring in (-?\d+) minutes$`, tc.aCoupon)
	ctx.Step(`^the total is computed$`, tc.theTotalIsComputed)

	ctx.Step(`^the subtotal is (\d+\.\d+)$`, func(want string) error { return expectMoney("subtotal", tc.summary.Subtotal, want) })
	ctx.Step(`^the tax is (\d+\.\d+)$`, func(want string) error { return expectMoney("tax", tc.summary.Tax, want) })
	ctx.Step(`^the delivery is (\d+\.\d+)$`, func(want string) error { return expectMoney("delivery", tc.summary.Delivery, want) })
	ctx.Step(`^the discount is (\d+\.\d+)$`, func(want string) error { return expectMoney("discount", tc.summary.Discount, want) })
	ctx.Step(`^the total is (\d+\.\d+)$`, func(want string) error { return expectMoney("total", tc.summary.Total, want) })
	ctx.Step(`^no coupon is applied$`, tc.noCouponIsApplied)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
