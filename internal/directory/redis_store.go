package directory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"centring-backend/internal/models"
)

// RedisStore keeps the directory blob under a single Redis key, preserving
// the one-key whole-blob contract of the storage interface.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore connects to Redis and verifies the connection. Callers
// fall back to the file store when this fails.
func NewRedisStore(host string, port int, key string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &RedisStore{client: client, key: key}, nil
}

func (s *RedisStore) Load(ctx context.Context) ([]models.DirectoryEntry, error) {
	blob, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []models.DirectoryEntry{}, nil
		}
		return nil, err
	}
	return decodeEntries(blob)
}

func (s *RedisStore) Save(ctx context.Context, entries []models.DirectoryEntry) error {
	blob, err := encodeEntries(entries)
	if err != nil {
		return err
	}
	// No expiry: the directory persists across sessions until deleted.
	return s.client.Set(ctx, s.key, blob, 0).Err()
}

// Close releases the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
