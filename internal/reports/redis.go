package reports

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/elvinmirzazada/salona-dashboard/internal/models"
)

const redisKeyPrefix = "report:"

// RedisStore keeps report entries in Redis so several dashboard instances
// share one cache. TTL enforcement is delegated to Redis itself.
type RedisStore struct {
	client *redis.Client
	log    *zap.Logger
}

func NewRedisStore(addr, password string, db int, log *zap.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{client: client, log: log}, nil
}

func (s *RedisStore) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 2*time.Second)
}

func (s *RedisStore) Get(key string) (models.ReportData, bool) {
	ctx, cancel := s.ctx()
	defer cancel()

	raw, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return models.ReportData{}, false
	}
	if err != nil {
		s.log.Warn("report cache read failed", zap.String("key", key), zap.Error(err))
		return models.ReportData{}, false
	}

	var data models.ReportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return models.ReportData{}, false
	}
	return data, true
}

func (s *RedisStore) Set(key string, data models.ReportData) {
	raw, err := json.Marshal(data)
	if err != nil {
		return
	}

	ctx, cancel := s.ctx()
	defer cancel()
	if err := s.client.Set(ctx, redisKeyPrefix+key, raw, CacheTTL).Err(); err != nil {
		s.log.Warn("report cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *RedisStore) Invalidate(key string) {
	ctx, cancel := s.ctx()
	defer cancel()
	s.client.Del(ctx, redisKeyPrefix+key)
}

func (s *RedisStore) Clear() {
	ctx, cancel := s.ctx()
	defer cancel()

	keys, err := s.client.Keys(ctx, redisKeyPrefix+"*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	s.client.Del(ctx, keys...)
}
