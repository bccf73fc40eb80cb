package repositories

import (
	"context"
	"time"
)

type CacheRepositoryInterface interface {
	// SetNX устанавливает ключ, только если его ещё нет. Возвращает true,
	// если ключ был установлен. Используется для кулдаунов бота.
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error)
}
