package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"tp-server/db"
	"tp-server/models/poi"
	"tp-server/models/schedule"
)

const POIS_GEO_KEY_V1 = "pois_geo_v1"
const POIS_GEO_PLACE_MEMBER_FORMAT_V1 = "pois_geo_place_v1:%s"

// POI_HOURS_KEY_FORMAT holds the structured opening-hours document as
// JSON. POI_HOURS_TEXT_KEY_FORMAT is the parallel free-text value; the
// two are written independently and can drift, which is exactly what
// the hours normalizer reconciles on load.
const POI_HOURS_KEY_FORMAT = "poi_hours_v1:%s"
const POI_HOURS_TEXT_KEY_FORMAT = "poi_hours_text_v1:%s"

// RedisPOIDAO handles POI and opening-hours operations using Redis.
type RedisPOIDAO struct {
	client db.RedisClient
}

// NewRedisPOIDAO initializes a RedisPOIDAO with the Redis client.
func NewRedisPOIDAO(client db.RedisClient) *RedisPOIDAO {
	return &RedisPOIDAO{client: client}
}

// UpsertPOI stores the POI under the geo index with its JSON payload.
func (dao *RedisPOIDAO) UpsertPOI(p poi.POI) error {
	ctx := dao.client.GetContext()
	memberKey := fmt.Sprintf(POIS_GEO_PLACE_MEMBER_FORMAT_V1, p.POIID)
	return dao.client.AddLocationWithJSON(ctx, POIS_GEO_KEY_V1, memberKey, p.Lat, p.Lng, p)
}

// GetNearbyPOIs retrieves POIs within a given radius (in meters).
func (dao *RedisPOIDAO) GetNearbyPOIs(lat, lng, radius float64) ([]poi.POI, error) {
	payloads, err := dao.client.GetLocationsWithinRadius(POIS_GEO_KEY_V1, lat, lng, radius)
	if err != nil {
		return nil, fmt.Errorf("[RedisPOIDAO] failed to get nearby POIs: %w", err)
	}

	pois := make([]poi.POI, len(payloads))
	for i, payload := range payloads {
		if err := json.Unmarshal([]byte(payload), &pois[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal POI JSON: %w", err)
		}
	}
	return pois, nil
}

// ListAllPOIIDs returns all POI IDs present in the geo index.
func (dao *RedisPOIDAO) ListAllPOIIDs() ([]string, error) {
	pattern := fmt.Sprintf(POIS_GEO_PLACE_MEMBER_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list POI geo keys: %w", err)
	}
	prefix := fmt.Sprintf(POIS_GEO_PLACE_MEMBER_FORMAT_V1, "")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

// SetOpeningHours stores the structured opening-hours document for a POI.
func (dao *RedisPOIDAO) SetOpeningHours(poiID string, doc *schedule.Document) error {
	key := fmt.Sprintf(POI_HOURS_KEY_FORMAT, poiID)
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal opening hours for POI %s: %w", poiID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set opening hours in redis: %w", err)
	}
	return nil
}

// GetOpeningHoursRaw retrieves the stored opening-hours JSON as-is. A
// missing key is not an error: it returns the empty string so the
// caller's normalizer treats it as absence. The raw form is returned on
// purpose; decoding and legacy reconciliation belong to the normalizer.
func (dao *RedisPOIDAO) GetOpeningHoursRaw(poiID string) (string, error) {
	key := fmt.Sprintf(POI_HOURS_KEY_FORMAT, poiID)
	value, err := dao.client.Get(key)
	if err != nil {
		if strings.Contains(err.Error(), "nil") || strings.Contains(err.Error(), "not found") {
			return "", nil
		}
		return "", fmt.Errorf("failed to get opening hours from redis: %w", err)
	}
	return value, nil
}

// SetOpeningHoursText stores the parallel free-text opening-hours value.
func (dao *RedisPOIDAO) SetOpeningHoursText(poiID, text string) error {
	key := fmt.Sprintf(POI_HOURS_TEXT_KEY_FORMAT, poiID)
	if err := dao.client.Set(key, text); err != nil {
		return fmt.Errorf("failed to set opening hours text in redis: %w", err)
	}
	return nil
}

// GetOpeningHoursText retrieves the free-text value; a missing key
// yields the empty string.
func (dao *RedisPOIDAO) GetOpeningHoursText(poiID string) (string, error) {
	key := fmt.Sprintf(POI_HOURS_TEXT_KEY_FORMAT, poiID)
	value, err := dao.client.Get(key)
	if err != nil {
		if strings.Contains(err.Error(), "nil") || strings.Contains(err.Error(), "not found") {
			return "", nil
		}
		return "", fmt.Errorf("failed to get opening hours text from redis: %w", err)
	}
	return value, nil
}

// DeleteOpeningHours removes both opening-hours values for a POI.
func (dao *RedisPOIDAO) DeleteOpeningHours(poiID string) error {
	for _, format := range []string{POI_HOURS_KEY_FORMAT, POI_HOURS_TEXT_KEY_FORMAT} {
		key := fmt.Sprintf(format, poiID)
		if err := dao.client.Del(key); err != nil {
			return fmt.Errorf("failed to delete opening hours key %s: %w", key, err)
		}
	}
	log.Printf("[RedisPOIDAO] Deleted opening hours for %s", poiID)
	return nil
}
