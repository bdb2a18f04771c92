package cart

import "go-pet-storefront/internal/backend"

// ==================== REQUEST STRUCTS ====================

// ReconcileRequest adds every variation of Product to the caller's cart for
// the product's shop. Quantity defaults to 1 when omitted.
type ReconcileRequest struct {
	Product  backend.Product `json:"product" binding:"required"`
	Quantity *int            `json:"quantity"`
}

// ==================== RESPONSE STRUCTS ====================

type ReconcileResult struct {
	Cart    backend.Cart `json:"cart"`
	Created bool         `json:"created"`
}

type ShopCartResponse struct {
	Exists bool          `json:"exists"`
	Cart   *backend.Cart `json:"cart,omitempty"`
}

type CountResponse struct {
	Count int `json:"count"`
}
