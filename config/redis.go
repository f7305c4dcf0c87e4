package config

import (
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// ConnectRedis returns the shared client, dialing on first use. Callers
// treat an error as a cache miss and go to the database.
func ConnectRedis() (*redis.Client, error) {
	if RedisClient != nil {
		return RedisClient, nil
	}

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := client.Ping(Ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	RedisClient = client
	return RedisClient, nil
}
