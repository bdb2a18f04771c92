package cart

import (
	"context"

	"go-pet-storefront/internal/backend"
)

// Repository is the slice of the backend client the cart service needs.
//
//go:generate mockgen -source=cart_repo.go -destination=../mock/cart/cart_repo_mock.go -package=mock
type Repository interface {
	ListUserCarts(ctx context.Context) ([]backend.Cart, error)
	GetShopCart(ctx context.Context, shopID string) (backend.Cart, error)
	CreateCart(ctx context.Context, req backend.CreateCartRequest) (backend.Cart, error)
	UpdateCart(ctx context.Context, req backend.UpdateCartRequest) (backend.Cart, error)
}

var _ Repository = (*backend.Client)(nil)
