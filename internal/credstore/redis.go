package credstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bpohire/portal/internal/domain"
)

// RedisStore persists the credential in redis, for deployments where several
// portal hosts share one operator credential (e.g. a kiosk fleet).
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
	opTimeout time.Duration
}

func NewRedisStore(client *redis.Client, keyPrefix string, opTimeout time.Duration) *RedisStore {
	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
		opTimeout: opTimeout,
	}
}

func (s *RedisStore) tokenKey() string    { return fmt.Sprintf("%s:token", s.keyPrefix) }
func (s *RedisStore) snapshotKey() string { return fmt.Sprintf("%s:identity_snapshot", s.keyPrefix) }

func (s *RedisStore) opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.opTimeout)
}

func (s *RedisStore) Token() (string, error) {
	ctx, cancel := s.opContext()
	defer cancel()

	token, err := s.client.Get(ctx, s.tokenKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("read credentials: %w", err)
	}
	return token, nil
}

func (s *RedisStore) SetToken(token string) error {
	ctx, cancel := s.opContext()
	defer cancel()

	if err := s.client.Set(ctx, s.tokenKey(), token, 0).Err(); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

func (s *RedisStore) Snapshot() (*domain.Identity, error) {
	ctx, cancel := s.opContext()
	defer cancel()

	data, err := s.client.Get(ctx, s.snapshotKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("read identity snapshot: %w", err)
	}

	identity := &domain.Identity{}
	if err := json.Unmarshal(data, identity); err != nil {
		return nil, nil
	}
	return identity, nil
}

func (s *RedisStore) SetSnapshot(identity *domain.Identity) error {
	ctx, cancel := s.opContext()
	defer cancel()

	if identity == nil {
		if err := s.client.Del(ctx, s.snapshotKey()).Err(); err != nil {
			return fmt.Errorf("clear identity snapshot: %w", err)
		}
		return nil
	}

	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode identity snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.snapshotKey(), data, 0).Err(); err != nil {
		return fmt.Errorf("write identity snapshot: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear() error {
	ctx, cancel := s.opContext()
	defer cancel()

	if err := s.client.Del(ctx, s.tokenKey(), s.snapshotKey()).Err(); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}
