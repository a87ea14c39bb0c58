package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

const keyPrefix = "storefront:session:"

// Store keeps sessions in Redis. Expiry is delegated to key TTLs.
type Store struct {
	client *goredis.Client
	logger *slog.Logger
	now    func() time.Time
}

var _ repository.SessionRepository = (*Store)(nil)

type record struct {
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// New connects to addr and verifies the connection.
func New(ctx context.Context, addr string, logger *slog.Logger) (*Store, error) {
	client := goredis.NewClient(&goredis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return NewWithClient(client, logger), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client *goredis.Client, logger *slog.Logger) *Store {
	return &Store{client: client, logger: logger, now: time.Now}
}

func (s *Store) key(id string) string {
	return keyPrefix + id
}

func (s *Store) Save(ctx context.Context, session *model.Session) error {
	var ttl time.Duration
	if !session.ExpiresAt.IsZero() {
		ttl = session.ExpiresAt.Sub(s.now())
		if ttl <= 0 {
			return s.client.Del(ctx, s.key(session.ID)).Err()
		}
	}
	data, err := json.Marshal(record{Token: session.Token, CreatedAt: session.CreatedAt, ExpiresAt: session.ExpiresAt})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.client.Set(ctx, s.key(session.ID), data, ttl).Err()
}

func (s *Store) Get(ctx context.Context, id string) (*model.Session, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		s.logger.Warn("dropping unreadable session", slog.String("session", id), slog.String("error", err.Error()))
		_ = s.client.Del(ctx, s.key(id)).Err()
		return nil, domainErrors.ErrNotFound
	}
	return &model.Session{ID: id, Token: rec.Token, CreatedAt: rec.CreatedAt, ExpiresAt: rec.ExpiresAt}, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, s.key(id)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// DeleteExpired is a no-op: Redis evicts expired keys itself.
func (s *Store) DeleteExpired(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func (s *Store) HealthCheck(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}
