package repositories

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisBlobStore - боевая реализация блоб-хранилища поверх Redis.
// Каждая коллекция - один ключ с JSON-массивом, TTL нет.
type RedisBlobStore struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisBlobStore(client *redis.Client, logger *zap.Logger) BlobStoreInterface {
	return &RedisBlobStore{client: client, logger: logger}
}

func (s *RedisBlobStore) Get(ctx context.Context, collection string) ([]byte, error) {
	data, err := s.client.Get(ctx, collection).Bytes()
	if err == redis.Nil {
		seed, seedErr := seedData(collection)
		if seedErr != nil {
			return nil, seedErr
		}
		if setErr := s.client.Set(ctx, collection, seed, 0).Err(); setErr != nil {
			return nil, fmt.Errorf("не удалось засеять коллекцию %s: %w", collection, setErr)
		}
		s.logger.Info("Коллекция засеяна стартовыми данными", zap.String("collection", collection))
		return seed, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения коллекции %s: %w", collection, err)
	}
	return data, nil
}

func (s *RedisBlobStore) Set(ctx context.Context, collection string, data []byte) error {
	if err := s.client.Set(ctx, collection, data, 0).Err(); err != nil {
		return fmt.Errorf("ошибка записи коллекции %s: %w", collection, err)
	}
	return nil
}
