package backend

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) ListUserCarts(ctx context.Context) ([]Cart, error) {
	var carts []Cart
	if err := c.do(ctx, "list carts", http.MethodGet, "/api/carts/user", nil, &carts); err != nil {
		return nil, err
	}
	return carts, nil
}

// GetShopCart returns ErrNotFound (via errors.Is) when the user has no cart for the shop.
func (c *Client) GetShopCart(ctx context.Context, shopID string) (Cart, error) {
	var cart Cart
	err := c.do(ctx, "get shop cart", http.MethodGet, "/api/carts/shop/"+url.PathEscape(shopID), nil, &cart)
	return cart, err
}

func (c *Client) CreateCart(ctx context.Context, req CreateCartRequest) (Cart, error) {
	var cart Cart
	err := c.do(ctx, "create cart", http.MethodPost, "/api/carts", req, &cart)
	return cart, err
}

func (c *Client) UpdateCart(ctx context.Context, req UpdateCartRequest) (Cart, error) {
	var cart Cart
	err := c.do(ctx, "update cart", http.MethodPatch, "/api/carts", req, &cart)
	return cart, err
}
