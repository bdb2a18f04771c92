package coupon

import (
	"context"

	"go-pet-storefront/internal/backend"
)

//go:generate mockgen -source=coupon_repo.go -destination=../mock/coupon/coupon_repo_mock.go -package=mock
type Repository interface {
	GetCoupon(ctx context.Context, code string) (backend.Coupon, error)
	ListUserCarts(ctx context.Context) ([]backend.Cart, error)
}

var _ Repository = (*backend.Client)(nil)
