package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Catalog refresher config
const CATALOG_REFRESHER_SCHEDULE_MINUTES = 60

// Places provider
const PLACES_ENDPOINT_BASE_V1 = "https://places.provider.example/api/v1"

// Opening hours defaults
const DEFAULT_TIMEZONE = "Europe/Paris"
const DEFAULT_LOCALE = "fr"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const SEARCH_POIS_RESPONSE_RESOURCE = "search_pois_response.json"
const POI_STATIC_RESOURCE = "poi_static.json"
const SEED_POIS_RESOURCE = "seed_pois.json"

// RedisAddress returns the Redis address, overridable via REDIS_ADDRESS.
func RedisAddress() string {
	if addr := os.Getenv("REDIS_ADDRESS"); addr != "" {
		return addr
	}
	return REDIS_DB_ADDRESS
}

// PlacesAPIKey returns the provider API key; empty means the mock
// client is used.
func PlacesAPIKey() string {
	return os.Getenv("PLACES_API_KEY")
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
