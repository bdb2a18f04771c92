package counter

import (
	"context"

	"go-pet-storefront/internal/backend"
)

//go:generate mockgen -source=counter_source.go -destination=../mock/counter/counter_source_mock.go -package=mock
type Source interface {
	ListUserCarts(ctx context.Context) ([]backend.Cart, error)
	ListWishlist(ctx context.Context) ([]backend.WishlistItem, error)
}

// TokenSource resolves a session id to its stored bearer token.
type TokenSource interface {
	Load(ctx context.Context, sid string) (string, error)
}

var _ Source = (*backend.Client)(nil)
