package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrTokenNotFound means the reset token is unknown or already consumed.
var ErrTokenNotFound = errors.New("reset token not found")

// ResetTokenStore keeps one-time password reset tokens in redis with a TTL.
type ResetTokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResetTokenStore returns a redis-backed store.
func NewResetTokenStore(client *redis.Client, ttl time.Duration) *ResetTokenStore {
	return &ResetTokenStore{client: client, ttl: ttl}
}

func (s *ResetTokenStore) key(token string) string {
	return fmt.Sprintf("identity:reset:%s", token)
}

// Save stores the token mapped to its account id.
func (s *ResetTokenStore) Save(ctx context.Context, token string, accountID int64) error {
	return s.client.Set(ctx, s.key(token), accountID, s.ttl).Err()
}

// Consume returns the account id behind the token and deletes it so the
// token cannot be replayed.
func (s *ResetTokenStore) Consume(ctx context.Context, token string) (int64, error) {
	result, err := s.client.GetDel(ctx, s.key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrTokenNotFound
		}
		return 0, err
	}
	accountID, err := strconv.ParseInt(result, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("reset token store: corrupt value: %w", err)
	}
	return accountID, nil
}
