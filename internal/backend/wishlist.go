package backend

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) ListWishlist(ctx context.Context) ([]WishlistItem, error) {
	var items []WishlistItem
	if err := c.do(ctx, "list wishlist", http.MethodGet, "/api/wishlist/my-wishlist", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) AddWishlist(ctx context.Context, productID, shopID string) error {
	return c.do(ctx, "add wishlist", http.MethodPost, "/api/wishlist", AddWishlistRequest{
		ProductID: productID,
		ShopID:    shopID,
	}, nil)
}

func (c *Client) RemoveWishlist(ctx context.Context, productID string) error {
	return c.do(ctx, "remove wishlist", http.MethodDelete, "/api/wishlist/product/"+url.PathEscape(productID), nil, nil)
}
