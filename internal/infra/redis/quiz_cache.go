package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"classroom-ledger-service/internal/domain"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// QuizLoader fetches quiz documents from the backing store on cache miss.
type QuizLoader interface {
	GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error)
}

// QuizCache caches quiz documents in Redis as JSON under quiz:{id} and falls
// back to the loader on miss. Quizzes are immutable once created, so cached
// entries never go stale; the TTL only bounds memory.
type QuizCache struct {
	client *redis.Client
	loader QuizLoader
	ttl    time.Duration
	sf     singleflight.Group
}

func NewQuizCache(client *redis.Client, loader QuizLoader, ttl time.Duration) *QuizCache {
	return &QuizCache{
		client: client,
		loader: loader,
		ttl:    ttl,
	}
}

func (c *QuizCache) GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error) {
	key := c.key(quizID)

	raw, err := c.client.Get(ctx, key).Result()
	if err == nil {
		var quiz domain.Quiz
		if err := json.Unmarshal([]byte(raw), &quiz); err == nil {
			return quiz, nil
		}
		// Corrupt entry; fall through and reload.
	}

	result, err, _ := c.sf.Do(quizID, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		raw, err := c.client.Get(ctx, key).Result()
		if err == nil {
			var quiz domain.Quiz
			if err := json.Unmarshal([]byte(raw), &quiz); err == nil {
				return quiz, nil
			}
		}

		quiz, err := c.loader.GetQuiz(ctx, quizID)
		if err != nil {
			return domain.Quiz{}, err
		}

		if data, err := json.Marshal(quiz); err == nil {
			// Best-effort write; a cache failure must not fail the read.
			_ = c.client.Set(ctx, key, data, c.ttlWithJitter()).Err()
		}
		return quiz, nil
	})
	if err != nil {
		return domain.Quiz{}, err
	}
	return result.(domain.Quiz), nil
}

func (c *QuizCache) key(quizID string) string {
	return "quiz:" + quizID
}

// ttlWithJitter adds up to 10% jitter to spread expirations. The global rand
// source is locked internally, so concurrent misses are safe.
func (c *QuizCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(rand.Int63n(jitterMax+1))
}
