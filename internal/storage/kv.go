// Package storage - плоское key-value хранилище пользователя поверх Redis
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound возвращается, если ключ отсутствует
var ErrNotFound = errors.New("storage: key not found")

// Ключи плоского пространства имен
const (
	KeyLoggedIn               = "isLoggedIn"
	KeyUserEmail              = "userEmail"
	KeyUserSettings           = "userSettings"
	KeyUserProfile            = "userProfile"
	KeyMapsAPIKey             = "mapsApiKey"
	KeyNotificationPermission = "notificationPermission"
)

// KeyValueStore - контракт плоского хранилища. Последняя запись побеждает
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// RedisStore - реализация KeyValueStore на Redis, все ключи получают общий префикс
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
	}
}

func (s *RedisStore) key(k string) string {
	return s.prefix + k
}

// Get возвращает значение ключа или ErrNotFound
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get key %q: %w", key, err)
	}
	return val, nil
}

// Set сохраняет значение без срока жизни
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %q: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = s.key(k)
	}
	if err := s.client.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("failed to delete keys: %w", err)
	}
	return nil
}
