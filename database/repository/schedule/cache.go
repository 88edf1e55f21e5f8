// File: database/repository/schedule/cache.go
package scheduleRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"agendoai/config"
	"agendoai/models"
	"agendoai/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// cachedScheduleRepo wraps a ScheduleRepository with a Redis read-through
// cache for provider schedules. Bookings are never cached: they change with
// every commit and a stale read would advertise taken slots. Cache misses and
// Redis failures fall through to the inner repository.
type cachedScheduleRepo struct {
	inner  ScheduleRepository
	client *redis.Client
	ttl    time.Duration
}

// NewCachedScheduleRepo decorates repo with schedule caching. A ttl of zero
// disables caching and returns repo unchanged.
func NewCachedScheduleRepo(repo ScheduleRepository, client *redis.Client, ttl time.Duration) ScheduleRepository {
	if ttl <= 0 || client == nil {
		return repo
	}
	return &cachedScheduleRepo{inner: repo, client: client, ttl: ttl}
}

// NewScheduleRepoFromConfig builds the Mongo repository and, when
// SCHEDULE_CACHE_TTL_SECONDS is set, layers the Redis cache on top.
func NewScheduleRepoFromConfig() ScheduleRepository {
	repo := NewMongoScheduleRepo()
	ttl := time.Duration(config.AppConfig.ScheduleCacheTTLSecs) * time.Second
	if ttl <= 0 {
		return repo
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	return NewCachedScheduleRepo(repo, client, ttl)
}

func scheduleCacheKey(providerID string) string {
	return fmt.Sprintf("schedule:%s", providerID)
}

func (repo *cachedScheduleRepo) GetProviderSchedule(ctx context.Context, providerID string) (*models.ProviderSchedule, error) {
	logger := utils.GetLogger()
	key := scheduleCacheKey(providerID)

	raw, err := repo.client.Get(ctx, key).Result()
	if err == nil {
		var schedule models.ProviderSchedule
		if err := json.Unmarshal([]byte(raw), &schedule); err == nil {
			return &schedule, nil
		}
		logger.Warn("discarding undecodable cached schedule", zap.String("providerID", providerID))
	} else if err != redis.Nil {
		logger.Warn("schedule cache read failed, falling back to store",
			zap.String("providerID", providerID), zap.Error(err))
	}

	schedule, err := repo.inner.GetProviderSchedule(ctx, providerID)
	if err != nil || schedule == nil {
		return schedule, err
	}

	if encoded, err := json.Marshal(schedule); err == nil {
		if err := repo.client.Set(ctx, key, encoded, repo.ttl).Err(); err != nil {
			logger.Warn("schedule cache write failed",
				zap.String("providerID", providerID), zap.Error(err))
		}
	}

	return schedule, nil
}

func (repo *cachedScheduleRepo) GetBookings(ctx context.Context, providerID, date string) ([]models.Booking, error) {
	return repo.inner.GetBookings(ctx, providerID, date)
}
