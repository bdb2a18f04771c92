package backend

import (
	"context"
	"net/http"
)

func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var res LoginResult
	err := c.do(ctx, "login", http.MethodPost, c.loginPath, LoginRequest{
		Email:    email,
		Password: password,
	}, &res)
	return res, err
}
