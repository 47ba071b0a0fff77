package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "maze:session:"
	lockSuffix       = ":lock"
	lockExpiry       = 10 * time.Second
)

// RedisSessionStore keeps sessions as JSON records in Redis with a TTL that is
// refreshed on every save.
// Implements i.SessionStore.
type RedisSessionStore struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

var _ i.SessionStore = (*RedisSessionStore)(nil)

// NewRedisSessionStore initializes a RedisSessionStore with the provided Redis client and TTL.
func NewRedisSessionStore(client *redis.Client, ttlSeconds int) (*RedisSessionStore, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}
	if ttlSeconds <= 0 {
		return nil, fmt.Errorf("session ttl must be positive, got %d", ttlSeconds)
	}

	store := &RedisSessionStore{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	store.locker = redsync.New(pool)
	return store, nil
}

func sessionKey(id uuid.UUID) string {
	return sessionKeyPrefix + id.String()
}

// Save writes the session and resets its expiry.
func (rs *RedisSessionStore) Save(ctx context.Context, s *dmn.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding session %s: %w", s.ID, err)
	}
	return rs.client.Set(ctx, sessionKey(s.ID), data, rs.ttl).Err()
}

// Load reads a session.
func (rs *RedisSessionStore) Load(ctx context.Context, id uuid.UUID) (*dmn.Session, error) {
	data, err := rs.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, dmn.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var s dmn.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding session %s: %w", id, err)
	}
	return &s, nil
}

// Delete removes a session.
func (rs *RedisSessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := rs.client.Del(ctx, sessionKey(id)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return dmn.ErrSessionNotFound
	}
	return nil
}

// Lock takes a redsync mutex on the session so that concurrent API instances
// apply moves one at a time.
func (rs *RedisSessionStore) Lock(ctx context.Context, id uuid.UUID) (func(), error) {
	mutex := rs.locker.NewMutex(sessionKey(id)+lockSuffix, redsync.WithExpiry(lockExpiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	return func() {
		_, _ = mutex.Unlock()
	}, nil
}
