package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kaan/degreeplan/internal/app/models"
	"github.com/kaan/degreeplan/internal/pkg/logger"
)

// ErrCacheMiss is returned when the requested key is not in the cache.
var ErrCacheMiss = errors.New("cache: key not found")

const courseKeyPrefix = "course:"

// CatalogCache is a read-through cache for catalog courses. Courses change
// rarely, so a short TTL keeps the hot lookup path off the database without
// an invalidation protocol. A nil client disables caching entirely.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache creates a new CatalogCache
func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &CatalogCache{client: client, ttl: ttl}
}

// Enabled reports whether a redis client is configured
func (c *CatalogCache) Enabled() bool {
	return c != nil && c.client != nil
}

// GetCourse retrieves a cached course by code
func (c *CatalogCache) GetCourse(ctx context.Context, code string) (*models.Course, error) {
	if !c.Enabled() {
		return nil, ErrCacheMiss
	}

	data, err := c.client.Get(ctx, courseKeyPrefix+code).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	course := &models.Course{}
	if err := json.Unmarshal(data, course); err != nil {
		// A corrupt entry behaves like a miss so the caller falls back to the database.
		logger.Warn().Err(err).Str("code", code).Msg("Dropping corrupt cached course")
		_ = c.client.Del(ctx, courseKeyPrefix+code).Err()
		return nil, ErrCacheMiss
	}

	return course, nil
}

// SetCourse stores a course under its code. Failures are logged, not
// propagated, since the database result is already in hand.
func (c *CatalogCache) SetCourse(ctx context.Context, course *models.Course) {
	if !c.Enabled() || course == nil {
		return
	}

	data, err := json.Marshal(course)
	if err != nil {
		logger.Warn().Err(err).Str("code", course.Code).Msg("Failed to serialize course for cache")
		return
	}

	if err := c.client.Set(ctx, courseKeyPrefix+course.Code, data, c.ttl).Err(); err != nil {
		logger.Warn().Err(err).Str("code", course.Code).Msg("Failed to cache course")
	}
}

// InvalidateCourse removes a course entry, used when the catalog is reseeded
func (c *CatalogCache) InvalidateCourse(ctx context.Context, code string) {
	if !c.Enabled() {
		return
	}
	if err := c.client.Del(ctx, courseKeyPrefix+code).Err(); err != nil {
		logger.Warn().Err(err).Str("code", code).Msg("Failed to invalidate cached course")
	}
}
