package cachedRepo

import (
	"context"
	"log"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisRepo struct {
	redisClient *redis.Client
}

func NewRedisRepo(ctx context.Context, host, port, pass string) (*redisRepo, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(host, port),
		Password: pass,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &redisRepo{
		redisClient: client,
	}, nil
}

func (rs *redisRepo) Get(ctx context.Context, key string) (string, bool) {
	val, err := rs.redisClient.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Failed to read key{%v} from cache: %v\n", key, err.Error())
		}
		return "", false
	}
	return val, true
}

func (rs *redisRepo) Set(ctx context.Context, key string, value string, ttl time.Duration) {
	if err := rs.redisClient.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Printf("Failed to write key{%v} to cache: %v\n", key, err.Error())
	}
}

func (rs *redisRepo) Delete(ctx context.Context, key string) {
	if err := rs.redisClient.Del(ctx, key).Err(); err != nil {
		log.Printf("Failed to delete key{%v} from cache: %v\n", key, err.Error())
	}
}

func (rs *redisRepo) Close() error {
	return rs.redisClient.Close()
}
