package order

import (
	"time"

	"go-pet-storefront/internal/backend"
	"go-pet-storefront/internal/pricing"

	"github.com/shopspring/decimal"
)

// ==================== REQUEST STRUCTS ====================

type CheckoutRequest struct {
	ShippingAddress string `json:"shippingAddress" binding:"required" validate:"required"`
	PaymentMethod   string `json:"paymentMethod" binding:"required" validate:"required"`
	Note            string `json:"note" validate:"max=500"`
}

// ==================== RESPONSE STRUCTS ====================

type SummaryResponse struct {
	Carts   []backend.Cart  `json:"carts"`
	Summary pricing.Summary `json:"summary"`
}

type CheckoutResponse struct {
	Orders  []backend.PlacedOrder `json:"orders"`
	Summary pricing.Summary       `json:"summary"`
}

// ==================== EVENTS ====================

const (
	EventOrderPlaced = "ORDER_PLACED"
	AggregateOrder   = "ORDER"
)

// OrderPlacedPayload is published to order.events after a bulk checkout.
type OrderPlacedPayload struct {
	SessionID  string          `json:"sessionId"`
	UserID     string          `json:"userId,omitempty"`
	OrderIDs   []string        `json:"orderIds"`
	ShopIDs    []string        `json:"shopIds"`
	CouponCode string          `json:"couponCode,omitempty"`
	Total      decimal.Decimal `json:"total"`
	PlacedAt   time.Time       `json:"placedAt"`
}
