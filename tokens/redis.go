package tokens

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	fieldAccessToken  = "accessToken"
	fieldIDToken      = "idToken"
	fieldRefreshToken = "refreshToken"
	fieldUserEmail    = "userEmail"
	fieldUsername     = "username"
)

// RedisStore defines a public type used by cognauth APIs.
//
// RedisStore instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RedisStore struct {
	redis  *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore describes the newredisstore operation and its observable behavior.
//
// NewRedisStore may return an error when input validation, dependency calls, or security checks fail.
// NewRedisStore does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// A zero ttl keeps sessions until Clear. A positive ttl bounds how long an
// abandoned session lingers; the provider's refresh token expiry is the
// usual choice.
func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	if prefix == "" {
		prefix = "cognauth"
	}
	return &RedisStore{
		redis:  client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *RedisStore) sessionKey() string {
	return s.prefix + ":session"
}

func (s *RedisStore) stateKey() string {
	return s.prefix + ":oauth_state"
}

// Save describes the save operation and its observable behavior.
//
// Save may return an error when input validation, dependency calls, or security checks fail.
// Save does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *RedisStore) Save(ctx context.Context, set TokenSet, profile *Profile) error {
	fields := map[string]any{
		fieldAccessToken:  set.AccessToken,
		fieldIDToken:      set.IDToken,
		fieldRefreshToken: set.RefreshToken,
	}
	if profile != nil {
		fields[fieldUserEmail] = profile.Email
		fields[fieldUsername] = profile.Username
	}

	key := s.sessionKey()

	// DEL+HSET in one transaction so a replaced session never shows a mix
	// of old and new fields.
	_, err := s.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, fields)
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	return nil
}

// Load describes the load operation and its observable behavior.
//
// Load may return an error when input validation, dependency calls, or security checks fail.
// Load does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *RedisStore) Load(ctx context.Context) (TokenSet, error) {
	set, err := s.Peek(ctx)
	if err != nil {
		return TokenSet{}, err
	}
	if !set.Complete() {
		return TokenSet{}, ErrNoSession
	}

	return set, nil
}

// Peek describes the peek operation and its observable behavior.
//
// Peek may return an error when input validation, dependency calls, or security checks fail.
// Peek does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *RedisStore) Peek(ctx context.Context) (TokenSet, error) {
	values, err := s.redis.HMGet(ctx, s.sessionKey(), fieldAccessToken, fieldIDToken, fieldRefreshToken).Result()
	if err != nil {
		return TokenSet{}, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	return TokenSet{
		AccessToken:  stringField(values, 0),
		IDToken:      stringField(values, 1),
		RefreshToken: stringField(values, 2),
	}, nil
}

// LoadProfile describes the loadprofile operation and its observable behavior.
//
// LoadProfile may return an error when input validation, dependency calls, or security checks fail.
// LoadProfile does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *RedisStore) LoadProfile(ctx context.Context) (Profile, error) {
	values, err := s.redis.HMGet(ctx, s.sessionKey(), fieldUserEmail, fieldUsername).Result()
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	return Profile{
		Email:    stringField(values, 0),
		Username: stringField(values, 1),
	}, nil
}

// Clear describes the clear operation and its observable behavior.
//
// Clear may return an error when input validation, dependency calls, or security checks fail.
// Clear does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.redis.Del(ctx, s.sessionKey(), s.stateKey()).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	return nil
}

// PutState describes the putstate operation and its observable behavior.
//
// PutState may return an error when input validation, dependency calls, or security checks fail.
// PutState does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *RedisStore) PutState(ctx context.Context, state string) error {
	// State only has to survive the authorize round-trip; ten minutes is
	// generous for a hosted-UI redirect.
	if err := s.redis.Set(ctx, s.stateKey(), state, 10*time.Minute).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	return nil
}

// TakeState describes the takestate operation and its observable behavior.
//
// TakeState may return an error when input validation, dependency calls, or security checks fail.
// TakeState does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *RedisStore) TakeState(ctx context.Context) (string, error) {
	state, err := s.redis.GetDel(ctx, s.stateKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNoState
		}
		return "", fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	if state == "" {
		return "", ErrNoState
	}

	return state, nil
}

func stringField(values []any, i int) string {
	if i >= len(values) {
		return ""
	}
	v, _ := values[i].(string)
	return v
}
