package cache

import "strings"

const (
	GlobalKeyPrefix = "jsquiz"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// TopicQuestionsKey is the read-side key holding the questions of one topic.
func TopicQuestionsKey(topicID string) string {
	return GenerateCacheKey("topic", "questions", topicID)
}

// BookTopicsKey is the read-side key holding the topic list of one book.
func BookTopicsKey(bookID string) string {
	return GenerateCacheKey("book", "topics", bookID)
}
