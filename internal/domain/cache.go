package domain

import "context"

// CacheInvalidator drops read-side cache entries for freshly seeded content.
type CacheInvalidator interface {
	InvalidateTopics(ctx context.Context, bookID string, topicIDs []string) error
}
