package util

import (
	"encoding/json"
	"fmt"
	"os"

	"tp-server/models/places"
	"tp-server/models/poi"
)

// ReadSearchPOIsResponseFromJSON loads a SearchPOIsResponse from JSON on disk.
func ReadSearchPOIsResponseFromJSON(filePath string) (*places.SearchPOIsResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp places.SearchPOIsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal SearchPOIsResponse: %w", err)
	}
	return &resp, nil
}

// ReadPOIFromJSON loads a single POI from JSON on disk.
func ReadPOIFromJSON(filePath string) (*poi.POI, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var p poi.POI
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal POI: %w", err)
	}
	return &p, nil
}

// ReadPOIsFromJSON loads a slice of POIs from JSON on disk (seed data).
func ReadPOIsFromJSON(filePath string) ([]poi.POI, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var pois []poi.POI
	if err := json.Unmarshal(data, &pois); err != nil {
		return nil, fmt.Errorf("failed to unmarshal POIs: %w", err)
	}
	return pois, nil
}
