package wishlist

import "go-pet-storefront/internal/backend"

// ==================== REQUEST STRUCTS ====================

type ToggleRequest struct {
	ShopID string `json:"shopId"`
}

// ==================== RESPONSE STRUCTS ====================

type ToggleResponse struct {
	ProductID  string `json:"productId"`
	InWishlist bool   `json:"inWishlist"`
}

type WishlistResponse struct {
	Items     []backend.WishlistItem `json:"items"`
	ItemCount int                    `json:"itemCount"`
}

type ContainsResponse struct {
	ProductID  string `json:"productId"`
	InWishlist bool   `json:"inWishlist"`
}
