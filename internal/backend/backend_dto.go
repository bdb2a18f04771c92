package backend

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ==================== CATALOG ====================

type Shop struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type ProductVariation struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId,omitempty"`
	Size      string          `json:"size,omitempty"`
	Color     string          `json:"color,omitempty"`
	Material  string          `json:"material,omitempty"`
	SKU       string          `json:"sku,omitempty"`
	Stock     int             `json:"stock"`
	Price     decimal.Decimal `json:"price"`
}

type Product struct {
	ID         string             `json:"id"`
	Name       string             `json:"name,omitempty"`
	ShopID     string             `json:"shopId,omitempty"`
	Shop       *Shop              `json:"shop,omitempty"`
	Variations []ProductVariation `json:"variations"`
}

// ShopRef returns the owning shop id whichever way the backend nested it.
func (p Product) ShopRef() string {
	if p.ShopID != "" {
		return p.ShopID
	}
	if p.Shop != nil {
		return p.Shop.ID
	}
	return ""
}

// ==================== CART ====================

type CartItem struct {
	ID               string            `json:"id,omitempty"`
	VariationID      string            `json:"variationId,omitempty"`
	ProductVariation *ProductVariation `json:"productVariation,omitempty"`
	Quantity         int               `json:"quantity"`
	Price            decimal.Decimal   `json:"price"`
}

// VariationRef returns the referenced variation id.
func (i CartItem) VariationRef() string {
	if i.VariationID != "" {
		return i.VariationID
	}
	if i.ProductVariation != nil {
		return i.ProductVariation.ID
	}
	return ""
}

type Cart struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId,omitempty"`
	ShopID    string     `json:"shopId,omitempty"`
	Shop      *Shop      `json:"shop,omitempty"`
	CartItems []CartItem `json:"cartItems"`
}

func (c Cart) ShopRef() string {
	if c.ShopID != "" {
		return c.ShopID
	}
	if c.Shop != nil {
		return c.Shop.ID
	}
	return ""
}

// Quantity sums the quantities of every line in the cart.
func (c Cart) Quantity() int {
	total := 0
	for _, item := range c.CartItems {
		total += item.Quantity
	}
	return total
}

type VariationQuantity struct {
	VariationID string           `json:"variationId"`
	Quantity    int              `json:"quantity"`
	Price       *decimal.Decimal `json:"price,omitempty"`
}

type CreateCartRequest struct {
	ShopID            string              `json:"shopId"`
	ProductVariations []VariationQuantity `json:"productVariations"`
}

type UpdateCartRequest struct {
	ShopID            string              `json:"shopId"`
	UpdatedVariations []VariationQuantity `json:"updatedVariations"`
}

// ==================== WISHLIST ====================

type WishlistItem struct {
	ID        string   `json:"id,omitempty"`
	ProductID string   `json:"productId,omitempty"`
	ShopID    string   `json:"shopId,omitempty"`
	Product   *Product `json:"product,omitempty"`
}

func (w WishlistItem) ProductRef() string {
	if w.Product != nil && w.Product.ID != "" {
		return w.Product.ID
	}
	return w.ProductID
}

type AddWishlistRequest struct {
	ProductID string `json:"productId"`
	ShopID    string `json:"shopId"`
}

// ==================== COUPON ====================

type CouponType string

const (
	CouponFixed      CouponType = "fixed"
	CouponPercentage CouponType = "percentage"
)

type Coupon struct {
	ID        string          `json:"id,omitempty"`
	Code      string          `json:"code"`
	Type      CouponType      `json:"type"`
	Value     decimal.Decimal `json:"value"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

// ExpiredAt reports whether the coupon is past its expiry at now. A null or
// missing expiresAt decodes to the zero time, so such a coupon is always
// expired.
func (c Coupon) ExpiredAt(now time.Time) bool {
	return c.ExpiresAt.Before(now)
}

// ==================== CHECKOUT ====================

type OrderLine struct {
	VariationID string          `json:"variationId"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// ShopOrder is one element of the bulk-checkout body.
type ShopOrder struct {
	ShopID          string          `json:"shopId"`
	CartID          string          `json:"cartId,omitempty"`
	Items           []OrderLine     `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DeliveryFee     decimal.Decimal `json:"deliveryFee"`
	Tax             decimal.Decimal `json:"tax"`
	Discount        decimal.Decimal `json:"discount"`
	Total           decimal.Decimal `json:"total"`
	CouponCode      string          `json:"couponCode,omitempty"`
	ShippingAddress string          `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	Note            string          `json:"note,omitempty"`
}

type PlacedOrder struct {
	ID     string          `json:"id"`
	ShopID string          `json:"shopId,omitempty"`
	Status string          `json:"status,omitempty"`
	Total  decimal.Decimal `json:"total"`
}

type CheckoutResult struct {
	Orders []PlacedOrder `json:"orders"`
}

// UnmarshalJSON accepts both a bare array of orders and an {"orders": [...]} object.
func (r *CheckoutResult) UnmarshalJSON(data []byte) error {
	var list []PlacedOrder
	if err := json.Unmarshal(data, &list); err == nil {
		r.Orders = list
		return nil
	}

	type alias CheckoutResult
	var obj alias
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	r.Orders = obj.Orders
	return nil
}

// ==================== AUTH ====================

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	AccessToken string `json:"accessToken"`
	Token       string `json:"token"`
}

// Bearer returns whichever token field the backend filled.
func (r LoginResult) Bearer() string {
	if r.AccessToken != "" {
		return r.AccessToken
	}
	return r.Token
}
