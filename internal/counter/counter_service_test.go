package counter_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-pet-storefront/internal/backend"
	"go-pet-storefront/internal/counter"
	counterMock "go-pet-storefront/internal/mock/counter"
	"go-pet-storefront/internal/pkg/apperror"
	"go-pet-storefront/internal/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func validSession() session.Session {
	return session.Session{ID: "sid-1", Token: "tok", UserID: "user-1", ExpiresAt: testNow.Add(time.Hour)}
}

func signToken(t *testing.T, exp time.Time) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return raw
}

func cartWith(quantities ...int) backend.Cart {
	c := backend.Cart{ID: "c"}
	for _, q := range quantities {
		c.CartItems = append(c.CartItems, backend.CartItem{Quantity: q})
	}
	return c
}

type counterFixture struct {
	svc    counter.Service
	source *counterMock.MockSource
	tokens *counterMock.MockTokenSource
	cache  counter.Cache
	hub    *counter.Hub
}

func newCounterFixture(t *testing.T) counterFixture {
	ctrl := gomock.NewController(t)
	source := counterMock.NewMockSource(ctrl)
	tokens := counterMock.NewMockTokenSource(ctrl)
	_, client := newRedis(t)
	cache := counter.NewRedisCache(client, counter.RedisCacheConfig{})
	hub := counter.NewHub(nil, nil)

	svc := counter.NewService(counter.Deps{
		Source: source,
		Tokens: tokens,
		Cache:  cache,
		Hub:    hub,
		Now:    func() time.Time { return testNow },
	})
	return counterFixture{svc: svc, source: source, tokens: tokens, cache: cache, hub: hub}
}

func TestCounterService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("miss_fetches_and_caches", func(t *testing.T) {
		f := newCounterFixture(t)
		f.source.EXPECT().ListUserCarts(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]backend.Cart, error) {
			assert.Equal(t, "tok", backend.TokenFrom(ctx))
			return []backend.Cart{cartWith(2, 1), cartWith(4)}, nil
		})
		f.source.EXPECT().ListWishlist(gomock.Any()).Return([]backend.WishlistItem{{ProductID: "p-1"}, {ProductID: "p-2"}}, nil)

		got, err := f.svc.Get(ctx, validSession())

		require.NoError(t, err)
		assert.Equal(t, 7, got.Cart)
		assert.Equal(t, 2, got.Wishlist)

		cached, ok, err := f.cache.Get(ctx, "sid-1")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 7, cached.Cart)

		active, err := f.cache.Active(ctx, testNow)
		require.NoError(t, err)
		assert.Contains(t, active, "sid-1")
	})

	t.Run("hit_skips_backend", func(t *testing.T) {
		f := newCounterFixture(t)
		require.NoError(t, f.cache.Set(ctx, "sid-1", counter.Counts{Cart: 5}))

		got, err := f.svc.Get(ctx, validSession())

		require.NoError(t, err)
		assert.Equal(t, 5, got.Cart)
	})

	t.Run("error_backend", func(t *testing.T) {
		f := newCounterFixture(t)
		f.source.EXPECT().ListUserCarts(gomock.Any()).Return(nil, errors.New("boom"))
		f.source.EXPECT().ListWishlist(gomock.Any()).Return(nil, nil).AnyTimes()

		_, err := f.svc.Get(ctx, validSession())

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.CodeOperationFailed, appErr.Code)
	})

	t.Run("error_expired_session", func(t *testing.T) {
		f := newCounterFixture(t)
		sess := validSession()
		sess.ExpiresAt = testNow

		_, err := f.svc.Get(ctx, sess)

		assert.ErrorIs(t, err, session.ErrUnauthorized)
	})
}

func TestCounterService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes_to_subscribers", func(t *testing.T) {
		f := newCounterFixture(t)
		token := signToken(t, testNow.Add(time.Hour))
		f.tokens.EXPECT().Load(gomock.Any(), "sid-1").Return(token, nil)
		f.source.EXPECT().ListUserCarts(gomock.Any()).Return([]backend.Cart{cartWith(3)}, nil)
		f.source.EXPECT().ListWishlist(gomock.Any()).Return(nil, nil)

		updates, unsubscribe := f.svc.Subscribe(ctx, "sid-1")
		defer unsubscribe()

		f.svc.Refresh(ctx, "sid-1")

		select {
		case got := <-updates:
			assert.Equal(t, 3, got.Cart)
			assert.Equal(t, 0, got.Wishlist)
		default:
			t.Fatal("no update published")
		}
	})

	t.Run("drops_missing_session", func(t *testing.T) {
		f := newCounterFixture(t)
		require.NoError(t, f.cache.Touch(ctx, "sid-1", testNow))
		f.tokens.EXPECT().Load(gomock.Any(), "sid-1").Return("", session.ErrNoSession)

		f.svc.Refresh(ctx, "sid-1")

		active, err := f.cache.Active(ctx, testNow)
		require.NoError(t, err)
		assert.Empty(t, active)
	})

	t.Run("drops_expired_token", func(t *testing.T) {
		f := newCounterFixture(t)
		require.NoError(t, f.cache.Touch(ctx, "sid-1", testNow))
		f.tokens.EXPECT().Load(gomock.Any(), "sid-1").Return(signToken(t, testNow.Add(-time.Minute)), nil)

		f.svc.Refresh(ctx, "sid-1")

		active, err := f.cache.Active(ctx, testNow)
		require.NoError(t, err)
		assert.Empty(t, active)
	})

	t.Run("keeps_session_on_backend_error", func(t *testing.T) {
		f := newCounterFixture(t)
		require.NoError(t, f.cache.Touch(ctx, "sid-1", testNow))
		f.tokens.EXPECT().Load(gomock.Any(), "sid-1").Return(signToken(t, testNow.Add(time.Hour)), nil)
		f.source.EXPECT().ListUserCarts(gomock.Any()).Return(nil, errors.New("down"))
		f.source.EXPECT().ListWishlist(gomock.Any()).Return(nil, nil).AnyTimes()

		f.svc.Refresh(ctx, "sid-1")

		active, err := f.cache.Active(ctx, testNow)
		require.NoError(t, err)
		assert.Equal(t, []string{"sid-1"}, active)
	})
}

func TestPoller_Tick(t *testing.T) {
	ctx := context.Background()
	f := newCounterFixture(t)

	token := signToken(t, testNow.Add(time.Hour))
	require.NoError(t, f.cache.Touch(ctx, "sid-1", testNow))
	require.NoError(t, f.cache.Touch(ctx, "sid-2", testNow))

	f.tokens.EXPECT().Load(gomock.Any(), "sid-1").Return(token, nil)
	f.tokens.EXPECT().Load(gomock.Any(), "sid-2").Return("", session.ErrNoSession)
	f.source.EXPECT().ListUserCarts(gomock.Any()).Return([]backend.Cart{cartWith(1)}, nil)
	f.source.EXPECT().ListWishlist(gomock.Any()).Return([]backend.WishlistItem{{ProductID: "p"}}, nil)

	poller := counter.NewPoller(f.svc, f.cache, counter.PollerConfig{
		Concurrency: 2,
		Now:         func() time.Time { return testNow },
	})
	require.NoError(t, poller.Tick(ctx))

	got, ok, err := f.cache.Get(ctx, "sid-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, got.Cart)
	assert.Equal(t, 1, got.Wishlist)

	active, err := f.cache.Active(ctx, testNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"sid-1"}, active)
}
