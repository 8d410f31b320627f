package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (RatingCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRatingCacheRedis(client, ttl), mr
}

func TestRatingCache_SetGetInvalidate(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	miss, gen, err := cache.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, miss)
	assert.Zero(t, gen)

	require.NoError(t, cache.Set(ctx, 1, gen, RatingSummary{Average: 2.5, Count: 2}))
	assert.True(t, mr.Exists(ratingSummaryKey(1)))

	hit, _, err := cache.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, 2.5, hit.Average)
	assert.Equal(t, int64(2), hit.Count)

	require.NoError(t, cache.Invalidate(ctx, 1))
	miss, gen, err = cache.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, miss)
	assert.Equal(t, int64(1), gen)
}

func TestRatingCache_SetAfterInvalidateIsDropped(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	_, gen, err := cache.Get(ctx, 2)
	require.NoError(t, err)

	// a rating write lands while the reader is still aggregating
	require.NoError(t, cache.Invalidate(ctx, 2))

	require.NoError(t, cache.Set(ctx, 2, gen, RatingSummary{Average: 3, Count: 1}))
	assert.False(t, mr.Exists(ratingSummaryKey(2)))

	_, gen, err = cache.Get(ctx, 2)
	require.NoError(t, err)
	require.NoError(t, cache.Set(ctx, 2, gen, RatingSummary{}))
	assert.True(t, mr.Exists(ratingSummaryKey(2)))
}

func TestRatingCache_Expires(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, 3, 0, RatingSummary{Average: 1, Count: 1}))
	mr.FastForward(2 * time.Minute)

	miss, _, err := cache.Get(ctx, 3)
	require.NoError(t, err)
	assert.Nil(t, miss)
}

func TestRatingCache_CorruptEntry(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	require.NoError(t, mr.Set(ratingSummaryKey(4), "not json"))

	_, _, err := cache.Get(context.Background(), 4)
	assert.Error(t, err)
}

func TestRatingCache_ServerDown(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	mr.Close()

	_, _, err := cache.Get(context.Background(), 1)
	assert.Error(t, err)
	assert.Error(t, cache.Set(context.Background(), 1, 0, RatingSummary{}))
	assert.Error(t, cache.Invalidate(context.Background(), 1))
}

func TestRatingCache_NilClientIsNoop(t *testing.T) {
	cache := NewRatingCacheRedis(nil, time.Minute)
	ctx := context.Background()

	assert.NoError(t, cache.Set(ctx, 1, 0, RatingSummary{Average: 3, Count: 1}))
	got, _, err := cache.Get(ctx, 1)
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, cache.Invalidate(ctx, 1))
}
