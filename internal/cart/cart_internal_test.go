package cart

import (
	"context"
	"time"

	"go-pet-storefront/internal/backend"
	"go-pet-storefront/internal/session"
)

type stubRepo struct{}

func (stubRepo) ListUserCarts(context.Context) ([]backend.Cart, error) { return nil, nil }
func (stubRepo) GetShopCart(context.Context, string) (backend.Cart, error) {
	return backend.Cart{}, backend.ErrNotFound
}
func (stubRepo) CreateCart(context.Context, backend.CreateCartRequest) (backend.Cart, error) {
	return backend.Cart{}, nil
}
func (stubRepo) UpdateCart(context.Context, backend.UpdateCartRequest) (backend.Cart, error) {
	return backend.Cart{}, nil
}

func sessionFor() session.Session {
	return session.Session{ID: "sid-1", Token: "tok", ExpiresAt: time.Now().Add(time.Hour)}
}

func productFor(shopID string) backend.Product {
	return backend.Product{ID: "p1", ShopID: shopID, Variations: []backend.ProductVariation{{ID: "v1"}}}
}
