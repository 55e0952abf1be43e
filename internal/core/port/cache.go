package port

import (
	"context"
	"time"
)

//go:generate mockgen -source=cache.go -destination=mock/cache.go -package=mock
type CatalogCache interface {
	// Get returns "" with a nil error on a cache miss.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
