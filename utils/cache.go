// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"crownbeauty/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionClient stores booking wizard sessions.
	SessionClient *redis.Client
	// CacheClient caches content store reads.
	CacheClient *redis.Client
)

func newRedisClient(db int, name string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", name, err)
	}
	return client
}

// InitRedis connects every Redis client the service uses.
func InitRedis() {
	GetSessionClient()
	GetCacheClient()
}

// GetSessionClient returns the booking session client.
func GetSessionClient() *redis.Client {
	if SessionClient == nil {
		SessionClient = newRedisClient(config.AppConfig.RedisSessionDB, "Sessions")
	}
	return SessionClient
}

// GetCacheClient returns the content cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "Cache")
	}
	return CacheClient
}

// CloseRedis closes whichever clients were opened.
func CloseRedis() {
	for _, c := range []*redis.Client{SessionClient, CacheClient} {
		if c != nil {
			_ = c.Close()
		}
	}
}
