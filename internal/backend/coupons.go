package backend

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

// GetCoupon looks a coupon up by code. Any non-2xx answer means the code is
// unusable and is reported as ErrNotFound.
func (c *Client) GetCoupon(ctx context.Context, code string) (Coupon, error) {
	var coupon Coupon
	err := c.do(ctx, "validate coupon", http.MethodGet, "/api/coupons/coupon-name/"+url.PathEscape(code), nil, &coupon)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Status != http.StatusUnauthorized {
			return Coupon{}, ErrNotFound
		}
		return Coupon{}, err
	}
	return coupon, nil
}
