package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
	"github.com/alexferreiraaf/osmaster/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
)

const (
	sessionKeyPrefix = "osmaster:session:"
	resetKeyPrefix   = "osmaster:reset:"
)

// RedisSessionStore keeps sessions and reset tokens as Redis strings with a
// TTL, so expiry is handled by Redis itself.
type RedisSessionStore struct {
	client *redis.Client
}

var _ interfaces.ISessionStore = (*RedisSessionStore)(nil)

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Save(ctx context.Context, token string, user entities.User, ttl time.Duration) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+token, data, ttl).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, token string) (entities.User, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, err
	}

	var u entities.User
	if err := json.Unmarshal(data, &u); err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKeyPrefix+token).Err()
}

func (s *RedisSessionStore) SaveResetToken(ctx context.Context, token, email string, ttl time.Duration) error {
	return s.client.Set(ctx, resetKeyPrefix+token, email, ttl).Err()
}

// ConsumeResetToken reads and deletes the token atomically (GETDEL), so a
// token can be used once.
func (s *RedisSessionStore) ConsumeResetToken(ctx context.Context, token string) (string, error) {
	email, err := s.client.GetDel(ctx, resetKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return email, err
}
