package backend

import (
	"context"
	"net/http"
)

func (c *Client) BulkCheckout(ctx context.Context, orders []ShopOrder) (CheckoutResult, error) {
	var res CheckoutResult
	err := c.do(ctx, "bulk checkout", http.MethodPost, "/api/bulk-checkout", orders, &res)
	return res, err
}
