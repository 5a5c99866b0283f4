package scheduling

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"barberbook/models"
	"barberbook/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SlotCache memoizes slot listings per (barber, date, treatment). A cache is
// purely an optimization: errors degrade to a recompute, never to a failure.
type SlotCache interface {
	Get(barberID, date, treatmentID string) ([]models.Slot, bool)
	Set(barberID, date, treatmentID string, slots []models.Slot)
	Invalidate(barberID, date string)
}

// RedisSlotCache stores each day's listings in one hash keyed by treatment,
// so a booking or cancellation can drop the whole day with a single DEL.
type RedisSlotCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSlotCache(client *redis.Client, ttl time.Duration) *RedisSlotCache {
	return &RedisSlotCache{Client: client, TTL: ttl}
}

func dayKey(barberID, date string) string {
	return fmt.Sprintf("slots:%s:%s", barberID, date)
}

func (c *RedisSlotCache) Get(barberID, date, treatmentID string) ([]models.Slot, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raw, err := c.Client.HGet(ctx, dayKey(barberID, date), treatmentID).Result()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("slot cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var slots []models.Slot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *RedisSlotCache) Set(barberID, date, treatmentID string, slots []models.Slot) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := json.Marshal(slots)
	if err != nil {
		return
	}

	key := dayKey(barberID, date)
	pipe := c.Client.TxPipeline()
	pipe.HSet(ctx, key, treatmentID, data)
	pipe.Expire(ctx, key, c.TTL)
	if _, err := pipe.Exec(ctx); err != nil {
		utils.GetLogger().Warn("slot cache write failed", zap.Error(err))
	}
}

func (c *RedisSlotCache) Invalidate(barberID, date string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := c.Client.Del(ctx, dayKey(barberID, date)).Err(); err != nil {
		utils.GetLogger().Warn("slot cache invalidation failed", zap.Error(err))
	}
}
