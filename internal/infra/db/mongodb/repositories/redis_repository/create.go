package redis_repository

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/anuntech/decision-backend/internal/infra/db/mongodb/helpers"
	"github.com/redis/go-redis/v9"
)

type ReportRedisRepository struct {
	Client redis.Cmdable
}

func NewReportRedisRepository(client redis.Cmdable) *ReportRedisRepository {
	return &ReportRedisRepository{
		Client: client,
	}
}

func (r *ReportRedisRepository) Save(ctx context.Context, key string, report []byte, expiration time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, helpers.RedisTimeout)
	defer cancel()

	encodedData := base64.StdEncoding.EncodeToString(report)

	err := r.Client.Set(ctx, key, encodedData, expiration).Err()
	if err != nil {
		return fmt.Errorf("error saving report %s to Redis: %w", key, err)
	}

	return nil
}
