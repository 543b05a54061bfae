package helpers

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var RedisTimeout = 30 * time.Second

// RedisOptions parses connectionUrl and applies the service's pool settings.
func RedisOptions(connectionUrl string) (*redis.Options, error) {
	opt, err := redis.ParseURL(connectionUrl)
	if err != nil {
		return nil, err
	}

	opt.PoolSize = 50
	opt.MinIdleConns = 5
	opt.ConnMaxIdleTime = 200 * time.Second

	return opt, nil
}

func RedisHelper(connectionUrl string) *redis.Client {
	opt, err := RedisOptions(connectionUrl)
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing Redis URL")
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), RedisTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("error pinging Redis")
	}

	log.Info().Str("addr", opt.Addr).Msg("connected to Redis")

	return client
}

func DisconnectRedis(client *redis.Client) {
	if client == nil {
		return
	}

	if err := client.Close(); err != nil {
		log.Error().Err(err).Msg("error disconnecting from Redis")
		return
	}
	log.Info().Msg("disconnected from Redis")
}
