package db

import "context"

// RedisClient defines the storage operations the DAOs depend on.
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Del(key string) error
	Keys(pattern string) ([]string, error)
	AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lng float64, data interface{}) error
	GetLocationsWithinRadius(key string, lat, lng, radius float64) ([]string, error)
	GetContext() context.Context
	Ping() error
}
