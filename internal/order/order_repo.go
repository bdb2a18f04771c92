package order

import (
	"context"

	"go-pet-storefront/internal/backend"
	"go-pet-storefront/internal/messaging/kafka/producer"
	"go-pet-storefront/internal/session"
)

//go:generate mockgen -source=order_repo.go -destination=../mock/order/order_repo_mock.go -package=mock
type Repository interface {
	ListUserCarts(ctx context.Context) ([]backend.Cart, error)
	BulkCheckout(ctx context.Context, orders []backend.ShopOrder) (backend.CheckoutResult, error)
}

// CouponSource is the checkout session's applied coupon.
type CouponSource interface {
	Applied(ctx context.Context, sess session.Session) (*backend.Coupon, error)
	Remove(ctx context.Context, sess session.Session) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event producer.Event) error
}

type CountRefresher interface {
	Refresh(ctx context.Context, sid string)
}

var _ Repository = (*backend.Client)(nil)
