package gridcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

const keyPrefix = "calendar:grid:"

// Cache кэширует прочитанные таблицы в Redis.
// Ошибки Redis не прерывают загрузку: при их возникновении таблица читается из источника.
type Cache struct {
	client *redis.Client
	source GridSource
	ttl    time.Duration
	log    Logger
}

// NewCache создает кэш поверх источника таблиц
func NewCache(client *redis.Client, source GridSource, ttl time.Duration, log Logger) *Cache {
	return &Cache{
		client: client,
		source: source,
		ttl:    ttl,
		log:    log,
	}
}

// GetGrid возвращает таблицу из кэша, а при промахе читает её из источника и сохраняет
func (c *Cache) GetGrid(ctx context.Context, spreadsheetID, sheetName string) (domain.Grid, error) {
	key := cacheKey(spreadsheetID, sheetName)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var grid domain.Grid
		if err := json.Unmarshal(data, &grid); err == nil {
			c.log.Info("GridCache: hit for %s", key)
			return grid, nil
		}
		c.log.Warn("GridCache: corrupted entry %s, refetching", key)
	case errors.Is(err, redis.Nil):
		c.log.Info("GridCache: miss for %s", key)
	default:
		c.log.Warn("GridCache: failed to read %s: %v", key, err)
	}

	grid, err := c.source.GetGrid(ctx, spreadsheetID, sheetName)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, grid)
	return grid, nil
}

// Invalidate удаляет таблицу из кэша
func (c *Cache) Invalidate(ctx context.Context, spreadsheetID, sheetName string) error {
	key := cacheKey(spreadsheetID, sheetName)
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("gridcache: failed to delete %s: %w", key, err)
	}
	return nil
}

func (c *Cache) store(ctx context.Context, key string, grid domain.Grid) {
	data, err := json.Marshal(grid)
	if err != nil {
		c.log.Warn("GridCache: failed to encode grid for %s: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn("GridCache: failed to write %s: %v", key, err)
	}
}

func cacheKey(spreadsheetID, sheetName string) string {
	return keyPrefix + spreadsheetID + ":" + sheetName
}
