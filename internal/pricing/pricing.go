// Package pricing derives order totals from carts and an optional coupon.
// Everything here is pure.
package pricing

import (
	"time"

	"go-pet-storefront/internal/backend"

	"github.com/shopspring/decimal"
)

var (
	DeliveryFee = decimal.RequireFromString("2.00")
	TaxRate     = decimal.RequireFromString("0.10")

	hundred = decimal.NewFromInt(100)
)

const moneyPlaces = 2

type AppliedCoupon struct {
	Code  string             `json:"code"`
	Type  backend.CouponType `json:"type"`
	Value decimal.Decimal    `json:"value"`
}

type Summary struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Delivery decimal.Decimal `json:"delivery"`
	Tax      decimal.Decimal `json:"tax"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
	Items    int             `json:"items"`
	Coupon   *AppliedCoupon  `json:"coupon,omitempty"`
}

// ShopSubtotal is the sum of price x quantity over one cart.
func ShopSubtotal(cart backend.Cart) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range cart.CartItems {
		sum = sum.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return sum
}

// Discount returns what coupon takes off subtotal. Fixed discounts are not
// capped at the subtotal, so a large one can push the total below zero.
func Discount(subtotal decimal.Decimal, coupon *backend.Coupon) decimal.Decimal {
	if coupon == nil {
		return decimal.Zero
	}
	switch coupon.Type {
	case backend.CouponFixed:
		return coupon.Value
	case backend.CouponPercentage:
		return subtotal.Mul(coupon.Value).Div(hundred)
	default:
		return decimal.Zero
	}
}

// ComputeTotal returns subtotal + delivery + tax - discount. A coupon that
// expired before now is ignored.
func ComputeTotal(carts []backend.Cart, coupon *backend.Coupon, now time.Time) Summary {
	if coupon != nil && coupon.ExpiredAt(now) {
		coupon = nil
	}

	subtotal := decimal.Zero
	items := 0
	for _, c := range carts {
		subtotal = subtotal.Add(ShopSubtotal(c))
		items += c.Quantity()
	}

	tax := subtotal.Mul(TaxRate)
	discount := Discount(subtotal, coupon)

	summary := Summary{
		Subtotal: subtotal.Round(moneyPlaces),
		Delivery: DeliveryFee,
		Tax:      tax.Round(moneyPlaces),
		Discount: discount.Round(moneyPlaces),
		Items:    items,
	}
	summary.Total = summary.Subtotal.Add(summary.Delivery).Add(summary.Tax).Sub(summary.Discount)

	if coupon != nil {
		summary.Coupon = &AppliedCoupon{Code: coupon.Code, Type: coupon.Type, Value: coupon.Value}
	}
	return summary
}
