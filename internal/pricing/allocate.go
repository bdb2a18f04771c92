package pricing

import (
	"go-pet-storefront/internal/backend"

	"github.com/shopspring/decimal"
)

// ShopAmounts is one shop's share of an order summary.
type ShopAmounts struct {
	ShopID   string
	CartID   string
	Subtotal decimal.Decimal
	Delivery decimal.Decimal
	Tax      decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// Allocate splits summary across carts in order. The first shop carries the
// delivery fee and the discount; the last shop absorbs the subtotal and tax
// rounding remainders, so the per-shop totals always add up to summary.Total.
func Allocate(summary Summary, carts []backend.Cart) []ShopAmounts {
	if len(carts) == 0 {
		return nil
	}

	out := make([]ShopAmounts, len(carts))
	subLeft := summary.Subtotal
	taxLeft := summary.Tax

	for i, c := range carts {
		last := i == len(carts)-1

		sub := ShopSubtotal(c).Round(moneyPlaces)
		if last {
			sub = subLeft
		}
		subLeft = subLeft.Sub(sub)

		tax := sub.Mul(TaxRate).Round(moneyPlaces)
		if last {
			tax = taxLeft
		}
		taxLeft = taxLeft.Sub(tax)

		a := ShopAmounts{
			ShopID:   c.ShopRef(),
			CartID:   c.ID,
			Subtotal: sub,
			Delivery: decimal.Zero,
			Tax:      tax,
			Discount: decimal.Zero,
		}
		if i == 0 {
			a.Delivery = summary.Delivery
			a.Discount = summary.Discount
		}
		a.Total = a.Subtotal.Add(a.Delivery).Add(a.Tax).Sub(a.Discount)
		out[i] = a
	}

	return out
}
