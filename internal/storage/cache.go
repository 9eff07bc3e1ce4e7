package storage

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/resonate-app/resonate-backend/internal/moderation"
)

const statusKeyPrefix = "suspension_status:"

// StatusCache is a Redis read-through cache for suspension status lookups.
// Every failure degrades to a miss so Redis outages never block moderation.
type StatusCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStatusCache(rdb *redis.Client, ttl time.Duration) *StatusCache {
	return &StatusCache{rdb: rdb, ttl: ttl}
}

func (c *StatusCache) Get(userID uuid.UUID) (*moderation.SuspensionStatus, bool) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, statusKeyPrefix+userID.String()).Result()
	if err != nil {
		return nil, false
	}

	var status moderation.SuspensionStatus
	if err := json.Unmarshal([]byte(val), &status); err != nil {
		slog.Warn("suspension status cache: bad payload", "user_id", userID, "error", err)
		return nil, false
	}
	return &status, true
}

func (c *StatusCache) Set(userID uuid.UUID, status *moderation.SuspensionStatus) {
	b, err := json.Marshal(status)
	if err != nil {
		return
	}
	ctx := context.Background()
	if err := c.rdb.Set(ctx, statusKeyPrefix+userID.String(), b, c.ttl).Err(); err != nil {
		slog.Warn("suspension status cache: set failed", "user_id", userID, "error", err)
	}
}

func (c *StatusCache) Invalidate(userID uuid.UUID) {
	ctx := context.Background()
	if err := c.rdb.Del(ctx, statusKeyPrefix+userID.String()).Err(); err != nil {
		slog.Warn("suspension status cache: invalidate failed", "user_id", userID, "error", err)
	}
}
