package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	conciergeerrors "luxestay/internal/concierge/errors"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	KeyPrefix  = "concierge:session:"
	LockPrefix = "concierge:lock:"

	// DefaultLockTTL outlives one turn: a chat call plus a hotel search.
	DefaultLockTTL   = 30 * time.Second
	defaultLockRetry = 50 * time.Millisecond
	unlockTimeout    = 2 * time.Second
)

// releaseScript deletes the lock only while it still carries our token, so an
// expired lock taken over by another replica is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisStore struct {
	client    *redis.Client
	ttl       time.Duration
	lockTTL   time.Duration
	lockRetry time.Duration
	newToken  func() string
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client:    client,
		ttl:       ttl,
		lockTTL:   DefaultLockTTL,
		lockRetry: defaultLockRetry,
		newToken:  uuid.NewString,
	}
}

// Lock takes a SETNX lease on the session shared by every API replica. It
// polls until the lease is free, the context ends, or lockTTL has passed.
func (s *RedisStore) Lock(ctx context.Context, id string) (func(), error) {
	k := lockKey(id)
	token := s.newToken()
	deadline := time.Now().Add(s.lockTTL)

	for {
		ok, err := s.client.SetNX(ctx, k, token, s.lockTTL).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%w: %v", conciergeerrors.ErrSessionBusy, ctx.Err())
			}
			return nil, fmt.Errorf("redis lock session: %w", err)
		}
		if ok {
			return func() { s.unlock(k, token) }, nil
		}
		if time.Now().After(deadline) {
			return nil, conciergeerrors.ErrSessionBusy
		}

		timer := time.NewTimer(s.lockRetry)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("%w: %v", conciergeerrors.ErrSessionBusy, ctx.Err())
		case <-timer.C:
		}
	}
}

// unlock runs on a fresh context; the request context may already be done.
// A failed release is recovered by the lease TTL.
func (s *RedisStore) unlock(k, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), unlockTimeout)
	defer cancel()
	_ = releaseScript.Run(ctx, s.client, []string{k}, token).Err()
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := s.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, conciergeerrors.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}
	return decode(data)
}

func (s *RedisStore) Save(ctx context.Context, sess *Session) error {
	data, err := encode(sess)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, key(sess.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, key(id)).Result()
	if err != nil {
		return fmt.Errorf("redis delete session: %w", err)
	}
	if n == 0 {
		return conciergeerrors.ErrSessionNotFound
	}
	return nil
}

func key(id string) string {
	return KeyPrefix + id
}

func lockKey(id string) string {
	return LockPrefix + id
}

func encode(sess *Session) ([]byte, error) {
	data, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("encode session %s: %w", sess.ID, err)
	}
	return data, nil
}

func decode(data []byte) (*Session, error) {
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}
