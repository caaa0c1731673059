package infra

import (
	"log"

	"github.com/redis/go-redis/v9"
)

func InitRedis(cfg *Config) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Println("Warning: REDIS_URL is not set, hotel search cache disabled")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword, // Empty if no password
		DB:       0,                 // Default DB
	})

	return client
}

func CloseRedis(client *redis.Client) {
	if err := client.Close(); err != nil {
		log.Printf("Error closing redis connection: %v", err)
	}
}
