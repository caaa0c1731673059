package redis_fx

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"travelcompanion/internal/infra"
	"travelcompanion/internal/services"
)

var Module = fx.Provide(
	provideRedis, provideCache)

func provideRedis(cfg *infra.Config) *redis.Client {
	return infra.InitRedis(cfg)
}

func provideCache(client *redis.Client) services.CacheStore {
	return services.NewRedisCache(client)
}
