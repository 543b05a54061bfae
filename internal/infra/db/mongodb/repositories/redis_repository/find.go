package redis_repository

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/anuntech/decision-backend/internal/infra/db/mongodb/helpers"
	"github.com/redis/go-redis/v9"
)

// Find returns nil, nil when the report has expired or was never stored.
func (r *ReportRedisRepository) Find(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, helpers.RedisTimeout)
	defer cancel()

	value, err := r.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding key %s in Redis: %w", key, err)
	}

	report, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("error decoding report %s: %w", key, err)
	}

	return report, nil
}
