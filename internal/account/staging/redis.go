package staging

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ddmitrenko/tools/internal/common"
	"github.com/redis/go-redis/v9"
)

// deleteIfMatchesScript deletes the key only if its current value equals the
// expected payload. Running it as a script makes consume atomic: two
// concurrent verifies cannot both observe the entry and both delete it.
var deleteIfMatchesScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisStore implements Store on a Redis client. TTL enforcement is native:
// SET is issued with an expiration and Redis drops the key on its own.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Put(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("%w: redis set: %v", common.ErrDependency, err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("%w: redis get: %v", common.ErrDependency, err)
	}
	return payload, nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%w: redis del: %v", common.ErrDependency, err)
	}
	return nil
}

func (s *RedisStore) DeleteIfMatches(ctx context.Context, key string, payload []byte) error {
	deleted, err := deleteIfMatchesScript.Run(ctx, s.client, []string{key}, payload).Int()
	if err != nil {
		return fmt.Errorf("%w: redis compare-and-delete: %v", common.ErrDependency, err)
	}
	if deleted == 0 {
		return common.ErrNotFound
	}
	return nil
}
