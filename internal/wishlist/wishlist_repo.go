package wishlist

import (
	"context"

	"go-pet-storefront/internal/backend"
)

//go:generate mockgen -source=wishlist_repo.go -destination=../mock/wishlist/wishlist_repo_mock.go -package=mock
type Repository interface {
	ListWishlist(ctx context.Context) ([]backend.WishlistItem, error)
	AddWishlist(ctx context.Context, productID, shopID string) error
	RemoveWishlist(ctx context.Context, productID string) error
}

var _ Repository = (*backend.Client)(nil)
