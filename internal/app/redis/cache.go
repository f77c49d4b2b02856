package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/go-redis/redis/v8"
)

const (
	pagePrefix    = "page:"
	scanBatchSize = 100
)

// PageKey - ключ страницы: page:<resource>:<xxhash JSON запроса>.
// Одинаковые запросы дают одинаковый ключ, порядок полей задает сам запрос.
func PageKey(resource string, query any) (string, error) {
	raw, err := json.Marshal(query)
	if err != nil {
		return "", fmt.Errorf("page key: %w", err)
	}
	return fmt.Sprintf("%s%s:%016x", pagePrefix, resource, xxhash.Sum64(raw)), nil
}

// GetPage читает страницу в dst, false - страницы в кеше нет
func (c *Client) GetPage(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode cached page %s: %w", key, err)
	}
	return true, nil
}

// SetPage сохраняет страницу с TTL клиента, нулевой TTL отключает запись
func (c *Client) SetPage(ctx context.Context, key string, page any) error {
	if c.ttl <= 0 {
		return nil
	}
	raw, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("encode page %s: %w", key, err)
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

// InvalidatePages удаляет все страницы ресурса и возвращает число удаленных ключей
func (c *Client) InvalidatePages(ctx context.Context, resource string) (int64, error) {
	var removed int64
	batch := make([]string, 0, scanBatchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := c.client.Del(ctx, batch...).Result()
		if err != nil {
			return err
		}
		removed += n
		batch = batch[:0]
		return nil
	}

	iter := c.client.Scan(ctx, 0, pagePrefix+resource+":*", scanBatchSize).Iterator()
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatchSize {
			if err := flush(); err != nil {
				return removed, err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return removed, err
	}
	if err := flush(); err != nil {
		return removed, err
	}
	return removed, nil
}
