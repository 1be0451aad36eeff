package idempotency

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/4nxiouz/thaitep-exam-booking/internal/config"
	"github.com/4nxiouz/thaitep-exam-booking/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix      = "exambooking:idem:"
	pendingMarker  = "-"
	entrySeparator = "|"
)

// Store remembers which booking code a submission key produced.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Claim reserves key for a new submission identified by fingerprint. When the
// key already produced a booking for the same fingerprint its code is returned
// with claimed=false. A key held by a submission still in flight yields
// domain.ErrDuplicateRequest, a key used for a different submission yields
// domain.ErrIdempotencyKeyReused.
func (s *Store) Claim(ctx context.Context, key, fingerprint string) (code string, claimed bool, err error) {
	ok, err := s.client.SetNX(ctx, keyPrefix+key, encodeEntry(fingerprint, pendingMarker), s.ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("claim idempotency key: %w", err)
	}
	if ok {
		return "", true, nil
	}

	val, err := s.client.Get(ctx, keyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// ключ успел истечь между SETNX и GET
			return s.Claim(ctx, key, fingerprint)
		}
		return "", false, fmt.Errorf("read idempotency key: %w", err)
	}

	owner, code := decodeEntry(val)
	if owner != fingerprint {
		return "", false, domain.ErrIdempotencyKeyReused
	}
	if code == pendingMarker {
		return "", false, domain.ErrDuplicateRequest
	}
	return code, false, nil
}

func (s *Store) Complete(ctx context.Context, key, fingerprint, code string) error {
	if err := s.client.Set(ctx, keyPrefix+key, encodeEntry(fingerprint, code), s.ttl).Err(); err != nil {
		return fmt.Errorf("complete idempotency key: %w", err)
	}
	return nil
}

// Release frees a claimed key after a failed submission so it can be retried.
func (s *Store) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("release idempotency key: %w", err)
	}
	return nil
}

// значение ключа: "<fingerprint>|<booking code или pendingMarker>"
func encodeEntry(fingerprint, code string) string {
	return fingerprint + entrySeparator + code
}

func decodeEntry(val string) (fingerprint, code string) {
	fingerprint, code, ok := strings.Cut(val, entrySeparator)
	if !ok {
		return "", val
	}
	return fingerprint, code
}
