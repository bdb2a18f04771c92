package coupon_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-pet-storefront/internal/coupon"
	couponMock "go-pet-storefront/internal/mock/coupon"
	"go-pet-storefront/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupCouponRouter(svc coupon.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	coupon.RegisterRoutes(r.Group("/api/v1"), coupon.NewHandler(svc), func(c *gin.Context) {
		session.Attach(c, validSession())
		c.Next()
	})
	return r
}

func TestCouponHandler(t *testing.T) {
	t.Run("apply", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := couponMock.NewMockService(ctrl)
		svc.EXPECT().Apply(gomock.Any(), validSession(), "PAWS10").Return(coupon.ApplyResponse{Code: "PAWS10"}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/coupon", strings.NewReader(`{"code":"PAWS10"}`))
		req.Header.Set("Content-Type", "application/json")
		setupCouponRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"PAWS10"`)
	})

	t.Run("apply_expired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := couponMock.NewMockService(ctrl)
		svc.EXPECT().Apply(gomock.Any(), gomock.Any(), "OLD").Return(coupon.ApplyResponse{}, coupon.ErrCouponExpired)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/coupon", strings.NewReader(`{"code":"OLD"}`))
		req.Header.Set("Content-Type", "application/json")
		setupCouponRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_STATE")
	})

	t.Run("apply_missing_code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := couponMock.NewMockService(ctrl)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/coupon", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		setupCouponRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("remove", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := couponMock.NewMockService(ctrl)
		svc.EXPECT().Remove(gomock.Any(), gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		setupCouponRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/checkout/coupon", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
