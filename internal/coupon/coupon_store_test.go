package coupon_test

import (
	"context"
	"testing"
	"time"

	"go-pet-storefront/internal/coupon"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := coupon.NewRedisStore(client)
	ctx := context.Background()

	code, err := store.Load(ctx, "sid-1")
	require.NoError(t, err)
	assert.Empty(t, code)

	require.NoError(t, store.Save(ctx, "sid-1", "PAWS10", 30*time.Minute))
	assert.Equal(t, 30*time.Minute, mr.TTL("checkout:sid-1:coupon"))

	code, err = store.Load(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "PAWS10", code)

	// checkout session ends
	mr.FastForward(31 * time.Minute)
	code, err = store.Load(ctx, "sid-1")
	require.NoError(t, err)
	assert.Empty(t, code)

	require.NoError(t, store.Save(ctx, "sid-1", "PAWS10", time.Minute))
	require.NoError(t, store.Delete(ctx, "sid-1"))
	assert.False(t, mr.Exists("checkout:sid-1:coupon"))
}
