package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RatingCache stores per-recipe rating summaries so the average endpoint
// does not aggregate on every read.
//
// Every Invalidate bumps a per-recipe generation. A reader that missed takes
// the generation returned by Get, computes the summary, and hands the
// generation back to Set; Set drops the write when an invalidation happened in
// between.
type RatingCache interface {
	// Get returns nil on a miss, together with the current generation.
	Get(ctx context.Context, recipeID int64) (*RatingSummary, int64, error)
	// Set stores summary unless the generation moved past generation.
	Set(ctx context.Context, recipeID int64, generation int64, summary RatingSummary) error
	Invalidate(ctx context.Context, recipeID int64) error
}

type ratingCacheRedis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRatingCacheRedis returns a Redis backed RatingCache. A nil client gives a
// cache that never hits, which is what the service uses when REDIS_URL is empty.
func NewRatingCacheRedis(client *redis.Client, ttl time.Duration) RatingCache {
	return &ratingCacheRedis{client: client, ttl: ttl}
}

func ratingSummaryKey(recipeID int64) string {
	return fmt.Sprintf("ratings:recipe:%d:summary", recipeID)
}

// The generation key never expires.
func ratingGenerationKey(recipeID int64) string {
	return fmt.Sprintf("ratings:recipe:%d:generation", recipeID)
}

// KEYS[1] summary, KEYS[2] generation; ARGV[1] expected generation, ARGV[2] payload, ARGV[3] ttl ms
var setIfGeneration = redis.NewScript(`
local current = redis.call('GET', KEYS[2]) or '0'
if current ~= ARGV[1] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[1], ARGV[2])
end
return 1
`)

func (r *ratingCacheRedis) Get(ctx context.Context, recipeID int64) (*RatingSummary, int64, error) {
	if r == nil || r.client == nil {
		return nil, 0, nil
	}

	values, err := r.client.MGet(ctx, ratingSummaryKey(recipeID), ratingGenerationKey(recipeID)).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("get rating summary from cache: %w", err)
	}

	var generation int64
	if raw, ok := values[1].(string); ok {
		generation, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, 0, fmt.Errorf("decode rating summary generation: %w", err)
		}
	}

	raw, ok := values[0].(string)
	if !ok {
		return nil, generation, nil
	}

	var summary RatingSummary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		return nil, generation, fmt.Errorf("decode cached rating summary: %w", err)
	}
	return &summary, generation, nil
}

func (r *ratingCacheRedis) Set(ctx context.Context, recipeID int64, generation int64, summary RatingSummary) error {
	if r == nil || r.client == nil {
		return nil
	}

	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("encode rating summary: %w", err)
	}

	keys := []string{ratingSummaryKey(recipeID), ratingGenerationKey(recipeID)}
	err = setIfGeneration.Run(ctx, r.client, keys,
		strconv.FormatInt(generation, 10), string(raw), r.ttl.Milliseconds()).Err()
	if err != nil {
		return fmt.Errorf("cache rating summary: %w", err)
	}
	return nil
}

// Invalidate bumps the generation and drops the summary in one transaction.
func (r *ratingCacheRedis) Invalidate(ctx context.Context, recipeID int64) error {
	if r == nil || r.client == nil {
		return nil
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, ratingGenerationKey(recipeID))
		pipe.Del(ctx, ratingSummaryKey(recipeID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("invalidate rating summary: %w", err)
	}
	return nil
}
