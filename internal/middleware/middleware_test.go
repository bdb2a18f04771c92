package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-pet-storefront/internal/backend"
	"go-pet-storefront/internal/middleware"
	sessionMock "go-pet-storefront/internal/mock/session"
	"go-pet-storefront/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var testCookie = session.Cookie{Name: "sid", MaxAge: time.Hour}

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	return r
}

func TestRequireSession(t *testing.T) {
	t.Run("attaches_session_and_token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := sessionMock.NewMockService(ctrl)
		sess := session.Session{ID: "sid-1", Token: "tok", UserID: "user-1", ExpiresAt: time.Now().Add(time.Hour)}
		svc.EXPECT().Resolve(gomock.Any(), "sid-1").Return(sess, nil)

		r := newRouter(middleware.RequireSession(svc, middleware.SessionConfig{Cookie: testCookie}))
		r.GET("/carts", func(c *gin.Context) {
			got, ok := session.FromContext(c)
			assert.True(t, ok)
			assert.Equal(t, sess, got)
			assert.Equal(t, "user-1", c.GetString("user_id_validated"))
			assert.Equal(t, "tok", backend.TokenFrom(c.Request.Context()))
			c.Status(http.StatusNoContent)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/carts", nil)
		req.AddCookie(&http.Cookie{Name: "sid", Value: "sid-1"})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("unauthorized_remembers_intended_url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := sessionMock.NewMockService(ctrl)
		svc.EXPECT().Resolve(gomock.Any(), "sid-1").Return(session.Session{}, session.ErrTokenExpired)
		svc.EXPECT().RememberNext(gomock.Any(), "sid-1", "/product/7?tab=reviews").Return(nil)

		r := newRouter(middleware.RequireSession(svc, middleware.SessionConfig{
			Cookie:   testCookie,
			LoginURL: "/login",
			Logger:   zap.NewNop(),
		}))
		r.POST("/carts/items", func(c *gin.Context) {
			t.Fatal("handler must not run")
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/carts/items", nil)
		req.Header.Set(middleware.IntendedURLHeader, "/product/7?tab=reviews")
		req.AddCookie(&http.Cookie{Name: "sid", Value: "sid-1"})
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)

		var body struct {
			Error struct {
				Code    string `json:"code"`
				Details struct {
					LoginURL string `json:"loginUrl"`
				} `json:"details"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
		assert.Equal(t, "/login?next=%2Fproduct%2F7%3Ftab%3Dreviews", body.Error.Details.LoginURL)
	})

	t.Run("issues_cookie_for_new_visitor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := sessionMock.NewMockService(ctrl)
		svc.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(session.Session{}, session.ErrUnauthorized)
		svc.EXPECT().RememberNext(gomock.Any(), gomock.Any(), "/checkout").Return(nil)

		r := newRouter(middleware.RequireSession(svc, middleware.SessionConfig{Cookie: testCookie}))
		r.GET("/checkout", func(c *gin.Context) {})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/checkout", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Header().Get("Set-Cookie"), "sid=")
	})

	t.Run("store_failure_is_not_a_login_prompt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := sessionMock.NewMockService(ctrl)
		svc.EXPECT().Resolve(gomock.Any(), "sid-1").Return(session.Session{}, session.ErrSessionFailed)

		r := newRouter(middleware.RequireSession(svc, middleware.SessionConfig{Cookie: testCookie}))
		r.GET("/carts", func(c *gin.Context) {})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/carts", nil)
		req.AddCookie(&http.Cookie{Name: "sid", Value: "sid-1"})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestOptionalSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := sessionMock.NewMockService(ctrl)
	svc.EXPECT().Resolve(gomock.Any(), "sid-1").Return(session.Session{}, session.ErrTokenExpired)

	r := newRouter(middleware.OptionalSession(svc, testCookie))
	r.GET("/wishlist/:productId", func(c *gin.Context) {
		_, ok := session.FromContext(c)
		assert.False(t, ok)
		c.Status(http.StatusOK)
	})

	// no cookie: resolve is never attempted
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/wishlist/p1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/wishlist/p1", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "sid-1"})
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitByUser(t *testing.T) {
	r := newRouter(middleware.RateLimitByUser(1, 2))
	r.POST("/toggle", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/toggle", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRequestID(t *testing.T) {
	r := newRouter(middleware.RequestID())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(middleware.RequestIDHeader))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Body.String())
	assert.Equal(t, "req-42", w.Header().Get(middleware.RequestIDHeader))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Body.String())
}
