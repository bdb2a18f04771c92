package coupon

import "go-pet-storefront/internal/pricing"

type ApplyRequest struct {
	Code string `json:"code" binding:"required"`
}

type ApplyResponse struct {
	Code    string          `json:"code"`
	Summary pricing.Summary `json:"summary"`
}
