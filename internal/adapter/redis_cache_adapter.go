package adapter

import (
	"context"
	"fmt"

	"quiz-seed/internal/cache"
	"quiz-seed/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisCacheAdapter implements domain.CacheInvalidator using a Redis client.
type RedisCacheAdapter struct {
	client *redis.Client
}

// NewRedisCacheAdapter creates a new instance of RedisCacheAdapter.
// It expects a connected *redis.Client.
func NewRedisCacheAdapter(client *redis.Client) *RedisCacheAdapter {
	return &RedisCacheAdapter{client: client}
}

// InvalidateTopics drops the cached topic list of bookID and the cached
// question sets of every topic in topicIDs with a single DEL.
func (r *RedisCacheAdapter) InvalidateTopics(ctx context.Context, bookID string, topicIDs []string) error {
	keys := make([]string, 0, len(topicIDs)+1)
	keys = append(keys, cache.BookTopicsKey(bookID))
	for _, id := range topicIDs {
		keys = append(keys, cache.TopicQuestionsKey(id))
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate %d cache keys: %w", len(keys), err)
	}
	return nil
}

var _ domain.CacheInvalidator = (*RedisCacheAdapter)(nil)
