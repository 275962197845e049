package repo

import (
	"Catalog/internal/model"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix     = "catalog:session:"
	userSessionKeyPrefix = "catalog:user_sessions:"
)

type redisSessionStore struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisClient создаёт клиента Redis и проверяет соединение.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// NewRedisSessionStore — хранилище refresh-сессий в Redis; истечение сессий отдано TTL ключей.
func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client, now: time.Now}
}

func (s *redisSessionStore) Save(ctx context.Context, sess model.RefreshSession) error {
	ttl := sess.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	userKey := userSessionKeyPrefix + strconv.FormatInt(sess.UserID, 10)
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, sessionKeyPrefix+sess.ID, sess.UserID, ttl)
	pipe.SAdd(ctx, userKey, sess.ID)
	pipe.Expire(ctx, userKey, ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *redisSessionStore) Consume(ctx context.Context, id string) (*model.RefreshSession, error) {
	val, err := s.client.GetDel(ctx, sessionKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupted session %s: %w", id, err)
	}
	s.client.SRem(ctx, userSessionKeyPrefix+val, id)
	return &model.RefreshSession{ID: id, UserID: userID}, nil
}

func (s *redisSessionStore) DeleteByUser(ctx context.Context, userID int64) error {
	userKey := userSessionKeyPrefix + strconv.FormatInt(userID, 10)
	ids, err := s.client.SMembers(ctx, userKey).Result()
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, sessionKeyPrefix+id)
	}
	keys = append(keys, userKey)
	return s.client.Del(ctx, keys...).Err()
}
