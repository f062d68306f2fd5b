// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"pulmocare/config"
)

// SlotCacheClient caches projected available-slot lists per doctor and date.
var SlotCacheClient *redis.Client

// InitSlotCache initializes the Redis client backing the slot-projection cache.
func InitSlotCache() {
	SlotCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SlotCacheClient.Ping(ctx).Result(); err != nil {
		// The cache is an optimization; the service degrades to direct reads.
		GetLogger().Warn("Slot cache unavailable, continuing without it", zap.Error(err))
		SlotCacheClient = nil
	}
}

// GetSlotCacheClient returns the slot cache client, or nil when the cache is disabled.
func GetSlotCacheClient() *redis.Client {
	return SlotCacheClient
}

// SlotCacheKey builds the cache key for a doctor's projected slots on a date.
func SlotCacheKey(doctorID, date string) string {
	return fmt.Sprintf("slots:%s:%s", doctorID, date)
}

// SlotCacheTTL returns the configured projection cache TTL.
func SlotCacheTTL() time.Duration {
	return time.Duration(config.AppConfig.SlotCacheTTL) * time.Second
}

// InvalidateDoctorSlots drops every cached projection for the given doctor.
// Used after availability edits, which can affect any date.
func InvalidateDoctorSlots(ctx context.Context, client *redis.Client, doctorID string) {
	if client == nil {
		return
	}
	logger := GetLogger()
	iter := client.Scan(ctx, 0, SlotCacheKey(doctorID, "*"), 100).Iterator()
	for iter.Next(ctx) {
		if err := client.Del(ctx, iter.Val()).Err(); err != nil {
			logger.Warn("Failed to drop cached slots", zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		logger.Warn("Slot cache scan failed", zap.String("doctorID", doctorID), zap.Error(err))
	}
}

// InvalidateDoctorSlotsForDate drops the cached projection for one doctor/date.
func InvalidateDoctorSlotsForDate(ctx context.Context, client *redis.Client, doctorID, date string) {
	if client == nil {
		return
	}
	if err := client.Del(ctx, SlotCacheKey(doctorID, date)).Err(); err != nil {
		GetLogger().Warn("Failed to drop cached slots",
			zap.String("doctorID", doctorID), zap.String("date", date), zap.Error(err))
	}
}
