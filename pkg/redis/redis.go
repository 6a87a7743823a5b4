package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrNotFound is returned when a key is absent or expired.
var ErrNotFound = errors.New("redis: key not found")

type IRedis interface {
	SetJSON(ctx context.Context, key string, payload []byte, expiration time.Duration) error
	GetJSON(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, keys ...string) error
	Keys(ctx context.Context, pattern string) ([]string, error)
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func (r *redisClient) SetJSON(ctx context.Context, key string, payload []byte, expiration time.Duration) error {
	logrus.Debug(fmt.Sprintf("Setting key %s with expiration %v", key, expiration))
	err := r.client.Set(ctx, key, payload, expiration).Err()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error setting key %s: %v", key, err))
		return err
	}
	return nil
}

func (r *redisClient) GetJSON(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		logrus.Debug(fmt.Sprintf("Key %s not found", key))
		return nil, ErrNotFound
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error getting key %s: %v", key, err))
		return nil, err
	}
	return val, nil
}

func (r *redisClient) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	result, err := r.client.Del(ctx, keys...).Result()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error deleting keys %v: %v", keys, err))
		return err
	}

	if result == 0 {
		logrus.Debug(fmt.Sprintf("No keys deleted for %v", keys))
	}

	return nil
}

func (r *redisClient) Keys(ctx context.Context, pattern string) ([]string, error) {
	keys, err := r.client.Keys(ctx, pattern).Result()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error listing keys for pattern %s: %v", pattern, err))
		return nil, err
	}
	return keys, nil
}
