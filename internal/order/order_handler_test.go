package order_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-pet-storefront/internal/backend"
	orderMock "go-pet-storefront/internal/mock/order"
	"go-pet-storefront/internal/order"
	"go-pet-storefront/internal/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupOrderRouter(t *testing.T, svc order.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	r := gin.New()
	order.RegisterRoutes(r.Group("/api/v1"), order.NewHandler(svc), func(c *gin.Context) {
		session.Attach(c, validSession())
		c.Next()
	}, rdb)
	return r
}

func TestOrderHandler_Checkout(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := orderMock.NewMockService(ctrl)
		svc.EXPECT().PlaceOrder(gomock.Any(), validSession(), checkoutReq).
			Return(order.CheckoutResponse{Orders: []backend.PlacedOrder{{ID: "o-1"}}}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout",
			strings.NewReader(`{"shippingAddress":"1 Bark St","paymentMethod":"cod"}`))
		req.Header.Set("Content-Type", "application/json")
		setupOrderRouter(t, svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"o-1"`)
	})

	t.Run("cart_empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := orderMock.NewMockService(ctrl)
		svc.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(order.CheckoutResponse{}, order.ErrCartEmpty)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout",
			strings.NewReader(`{"shippingAddress":"1 Bark St","paymentMethod":"cod"}`))
		req.Header.Set("Content-Type", "application/json")
		setupOrderRouter(t, svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_STATE")
	})

	t.Run("validation_error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := orderMock.NewMockService(ctrl)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(`{"note":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		setupOrderRouter(t, svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOrderHandler_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := orderMock.NewMockService(ctrl)
	svc.EXPECT().Summary(gomock.Any(), validSession()).Return(order.SummaryResponse{Carts: twoShops()[:2]}, nil)

	w := httptest.NewRecorder()
	setupOrderRouter(t, svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/checkout/summary", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":2`)
}
