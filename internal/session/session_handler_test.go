package session_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-pet-storefront/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==================== FAKE SERVICE ====================

type fakeSessionService struct {
	loginFunc   func(ctx context.Context, sid string, req session.LoginRequest) (session.LoginResponse, error)
	logoutFunc  func(ctx context.Context, sid string) error
	resolveFunc func(ctx context.Context, sid string) (session.Session, error)
}

func (f *fakeSessionService) Login(ctx context.Context, sid string, req session.LoginRequest) (session.LoginResponse, error) {
	if f.loginFunc != nil {
		return f.loginFunc(ctx, sid, req)
	}
	return session.LoginResponse{}, nil
}

func (f *fakeSessionService) Logout(ctx context.Context, sid string) error {
	if f.logoutFunc != nil {
		return f.logoutFunc(ctx, sid)
	}
	return nil
}

func (f *fakeSessionService) Resolve(ctx context.Context, sid string) (session.Session, error) {
	if f.resolveFunc != nil {
		return f.resolveFunc(ctx, sid)
	}
	return session.Session{}, session.ErrUnauthorized
}

func (f *fakeSessionService) RememberNext(ctx context.Context, sid, next string) error {
	return nil
}

func newSessionRouter(svc session.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	session.RegisterRoutes(r.Group("/api/v1"), session.NewHandler(svc, session.Cookie{Name: "sid", MaxAge: time.Hour}))
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func TestSessionHandler_Login(t *testing.T) {
	t.Run("success_replaces_cookie", func(t *testing.T) {
		svc := &fakeSessionService{
			loginFunc: func(ctx context.Context, sid string, req session.LoginRequest) (session.LoginResponse, error) {
				assert.Equal(t, "existing", sid)
				assert.Equal(t, "cat@example.com", req.Email)
				return session.LoginResponse{SessionID: "rotated", UserID: "user-1", Next: "/checkout"}, nil
			},
		}
		r := newSessionRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/session/login",
			strings.NewReader(`{"email":"cat@example.com","password":"whiskers"}`))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(&http.Cookie{Name: "sid", Value: "existing"})
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Set-Cookie"), "sid=rotated")

		var body envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Contains(t, string(body.Data), `"next":"/checkout"`)
	})

	t.Run("bad_request", func(t *testing.T) {
		r := newSessionRouter(&fakeSessionService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/session/login", strings.NewReader(`{"email":""}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid_credentials", func(t *testing.T) {
		svc := &fakeSessionService{
			loginFunc: func(ctx context.Context, sid string, req session.LoginRequest) (session.LoginResponse, error) {
				return session.LoginResponse{}, session.ErrInvalidCredentials
			},
		}
		r := newSessionRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/session/login",
			strings.NewReader(`{"email":"cat@example.com","password":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		var body envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
	})
}

func TestSessionHandler_Status(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		r := newSessionRouter(&fakeSessionService{})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/session", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"authenticated":false`)
	})

	t.Run("authenticated", func(t *testing.T) {
		svc := &fakeSessionService{
			resolveFunc: func(ctx context.Context, sid string) (session.Session, error) {
				return session.Session{ID: sid, UserID: "user-1", Token: "t", ExpiresAt: time.Now().Add(time.Hour)}, nil
			},
		}
		r := newSessionRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
		req.AddCookie(&http.Cookie{Name: "sid", Value: "sid-1"})
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"authenticated":true`)
		assert.Contains(t, w.Body.String(), `"userId":"user-1"`)
	})
}

func TestSessionHandler_Logout(t *testing.T) {
	called := false
	svc := &fakeSessionService{
		logoutFunc: func(ctx context.Context, sid string) error {
			called = true
			assert.Equal(t, "sid-1", sid)
			return nil
		},
	}
	r := newSessionRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/session", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "sid-1"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}
