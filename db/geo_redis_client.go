package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
)

// GeoRedisClient wraps a go-redis client with the key-value and
// geo-index operations the DAOs use.
type GeoRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewGeoRedisClient wraps an already configured go-redis client.
func NewGeoRedisClient(ctx context.Context, client *redis.Client) *GeoRedisClient {
	return &GeoRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair.
func (r *GeoRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a key.
func (r *GeoRedisClient) Get(key string) (string, error) {
	return r.client.Get(r.ctx, key).Result()
}

// Del removes a key.
func (r *GeoRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

// Keys lists the keys matching a glob pattern.
func (r *GeoRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

// AddLocationWithJSON indexes a member under a geo key and stores its
// JSON payload under the member key.
func (r *GeoRedisClient) AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lng float64, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON for %s: %w", memberKey, err)
	}

	if _, err := r.client.GeoAdd(ctx, geoKey, &redis.GeoLocation{
		Name:      memberKey,
		Latitude:  lat,
		Longitude: lng,
	}).Result(); err != nil {
		return fmt.Errorf("failed to add geolocation for %s: %w", memberKey, err)
	}

	if err := r.client.Set(ctx, memberKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to set JSON data for %s: %w", memberKey, err)
	}

	return nil
}

// GetLocationsWithinRadius returns the JSON payloads of every member
// within radius meters of the given point. Members whose payload is
// missing are skipped, not fatal.
func (r *GeoRedisClient) GetLocationsWithinRadius(key string, lat, lng, radius float64) ([]string, error) {
	results, err := r.client.GeoRadius(r.ctx, key, lng, lat, &redis.GeoRadiusQuery{
		Radius: radius,
		Unit:   "m",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to query geo radius on %s: %w", key, err)
	}

	var payloads []string
	for _, loc := range results {
		data, err := r.client.Get(r.ctx, loc.Name).Result()
		if err != nil {
			log.Printf("[GeoRedisClient] Skipping member %s: %v", loc.Name, err)
			continue
		}
		payloads = append(payloads, data)
	}

	return payloads, nil
}

func (r *GeoRedisClient) GetContext() context.Context {
	return r.ctx
}

func (r *GeoRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}
