package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// TopicRepository remembers the last detected topic per session in a TTL
// cache. Entries expire instead of living for the whole process, so the
// map can't grow without bound across distinct session IDs. Writing a
// topic refreshes the entry's TTL.
type TopicRepository struct {
	cache *cache.Cache
}

func NewTopicRepository(ttl time.Duration) *TopicRepository {
	// Purge expired entries at half the TTL, floored at one minute
	purge := ttl / 2
	if purge < time.Minute {
		purge = time.Minute
	}
	return &TopicRepository{
		cache: cache.New(ttl, purge),
	}
}

func (r *TopicRepository) GetTopic(sessionID string) (string, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(string), true
	}
	return "", false
}

func (r *TopicRepository) SetTopic(sessionID, topic string) {
	r.cache.Set(sessionID, topic, cache.DefaultExpiration)
}
