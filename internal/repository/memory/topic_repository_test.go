package memory

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTopicRepositorySetAndGet(t *testing.T) {
	repo := NewTopicRepository(time.Hour)

	repo.SetTopic("session-1", "jobA")

	topic, found := repo.GetTopic("session-1")
	assert.True(t, found)
	assert.Equal(t, "jobA", topic)
}

func TestTopicRepositoryMissingSession(t *testing.T) {
	repo := NewTopicRepository(time.Hour)

	topic, found := repo.GetTopic("never-seen")
	assert.False(t, found)
	assert.Empty(t, topic)
}

func TestTopicRepositoryLastWriteWins(t *testing.T) {
	repo := NewTopicRepository(time.Hour)

	repo.SetTopic("session-1", "jobA")
	repo.SetTopic("session-1", "xfinite")

	topic, found := repo.GetTopic("session-1")
	assert.True(t, found)
	assert.Equal(t, "xfinite", topic)
}

func TestTopicRepositorySessionsAreIsolated(t *testing.T) {
	repo := NewTopicRepository(time.Hour)

	repo.SetTopic("session-1", "jobA")
	repo.SetTopic("session-2", "xfinite")

	topic, _ := repo.GetTopic("session-1")
	assert.Equal(t, "jobA", topic)
	topic, _ = repo.GetTopic("session-2")
	assert.Equal(t, "xfinite", topic)
}

func TestTopicRepositoryEntryExpires(t *testing.T) {
	repo := NewTopicRepository(20 * time.Millisecond)

	repo.SetTopic("session-1", "jobA")
	time.Sleep(50 * time.Millisecond)

	_, found := repo.GetTopic("session-1")
	assert.False(t, found)
}

func TestTopicRepositoryConcurrentAccess(t *testing.T) {
	repo := NewTopicRepository(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("session-%d", i)
			repo.SetTopic(id, fmt.Sprintf("topic-%d", i))
			topic, found := repo.GetTopic(id)
			assert.True(t, found)
			assert.Equal(t, fmt.Sprintf("topic-%d", i), topic)
		}(i)
	}
	wg.Wait()
}
