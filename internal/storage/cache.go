package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"shifra-server/internal/common/logger"
	"shifra-server/internal/models"
)

// SuggestionCache keeps each user's latest recommendation set in Redis so
// the dashboard read path skips Postgres. Cache problems degrade silently
// to the database.
type SuggestionCache struct {
	client *redis.Client
	ttl    time.Duration
	log    logger.Logger
}

func NewSuggestionCache(client *redis.Client, ttl time.Duration, log logger.Logger) *SuggestionCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &SuggestionCache{client: client, ttl: ttl, log: log}
}

func suggestionKey(userID int64) string {
	return fmt.Sprintf("career:suggestion:latest:%d", userID)
}

// GetLatest returns the cached suggestion, or nil on miss or error.
func (c *SuggestionCache) GetLatest(ctx context.Context, userID int64) *models.CareerSuggestion {
	if c == nil || c.client == nil {
		return nil
	}

	raw, err := c.client.Get(ctx, suggestionKey(userID)).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		c.log.Warn("suggestion cache read failed", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil
	}

	var suggestion models.CareerSuggestion
	if err := json.Unmarshal(raw, &suggestion); err != nil {
		c.log.Warn("suggestion cache entry corrupt, dropping", map[string]interface{}{
			"user_id": userID,
		})
		c.Invalidate(ctx, userID)
		return nil
	}
	return &suggestion
}

// SetLatest stores the suggestion under the configured TTL.
func (c *SuggestionCache) SetLatest(ctx context.Context, suggestion *models.CareerSuggestion) {
	if c == nil || c.client == nil || suggestion == nil {
		return
	}

	raw, err := json.Marshal(suggestion)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, suggestionKey(suggestion.UserID), raw, c.ttl).Err(); err != nil {
		c.log.Warn("suggestion cache write failed", map[string]interface{}{
			"user_id": suggestion.UserID,
			"error":   err.Error(),
		})
	}
}

// Invalidate drops the cached entry, called after every new insert.
func (c *SuggestionCache) Invalidate(ctx context.Context, userID int64) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, suggestionKey(userID)).Err(); err != nil {
		c.log.Warn("suggestion cache invalidate failed", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}
