package redis

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type IRedis interface {
	PushFlash(ctx context.Context, key string, value string, expiration time.Duration) error
	PopFlashes(ctx context.Context, key string) ([]string, error)
}

type redisClient struct {
	client *redis.Client
}

// Enabled reports whether a Redis address has been configured.
func Enabled() bool {
	return os.Getenv("REDIS_ADDRESS") != ""
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

func (r *redisClient) PushFlash(ctx context.Context, key string, value string, expiration time.Duration) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, value)
		pipe.Expire(ctx, key, expiration)
		return nil
	})
	if err != nil {
		logrus.Error(fmt.Sprintf("Error pushing flash for key %s: %v", key, err))
		return err
	}
	return nil
}

func (r *redisClient) PopFlashes(ctx context.Context, key string) ([]string, error) {
	var values *redis.StringSliceCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		values = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		logrus.Error(fmt.Sprintf("Error popping flashes for key %s: %v", key, err))
		return nil, err
	}
	return values.Val(), nil
}
