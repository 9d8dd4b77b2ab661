// Package cache implementa el caché de listados sobre Redis.
//
// El backend sigue siendo la única fuente de verdad: el caché solo guarda el
// listado de ítems por usuario y se invalida en cada mutación, de modo que una
// entrada obsoleta nunca sobrevive a la operación que la invalidó.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/estoque-api/internal/application/stock"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/pkg/config"
)

var _ stock.ItemListCache = (*RedisItemCache)(nil)

// RedisItemCache implementa stock.ItemListCache usando go-redis.
type RedisItemCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisItemCache construye el caché y verifica la conectividad con un ping.
func NewRedisItemCache(cfg config.RedisConfig) (*RedisItemCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisItemCache{client: client, ttl: time.Duration(cfg.TTL) * time.Second}, nil
}

func itemsKey(userID string) string {
	return fmt.Sprintf("estoque:items:%s", userID)
}

// GetItems devuelve el listado cacheado del usuario, o nil (sin error) en cache miss.
func (c *RedisItemCache) GetItems(ctx context.Context, userID string) ([]*entity.StockItem, error) {
	data, err := c.client.Get(ctx, itemsKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // cache miss
		}
		return nil, fmt.Errorf("get items cache: %w", err)
	}

	var items []*entity.StockItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unmarshal items cache: %w", err)
	}
	return items, nil
}

// SetItems guarda el listado del usuario con el TTL configurado.
func (c *RedisItemCache) SetItems(ctx context.Context, userID string, items []*entity.StockItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal items cache: %w", err)
	}
	if err := c.client.Set(ctx, itemsKey(userID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set items cache: %w", err)
	}
	return nil
}

// InvalidateItems borra la entrada del usuario. Borrar una clave inexistente no es error.
func (c *RedisItemCache) InvalidateItems(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, itemsKey(userID)).Err(); err != nil {
		return fmt.Errorf("invalidate items cache: %w", err)
	}
	return nil
}

// Close cierra la conexión con Redis.
func (c *RedisItemCache) Close() error {
	return c.client.Close()
}
