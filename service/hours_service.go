package services

import (
	"fmt"
	"log"
	"time"

	"tp-server/dao/redis"
	"tp-server/hours"
	"tp-server/models/schedule"
)

// HoursService owns the opening-hours lifecycle around the DAO: it
// normalizes the two stored values on load, validates before save, and
// keeps the derived free-text value in sync with the structured one.
type HoursService struct {
	poiDao *redis.RedisPOIDAO
}

// NewHoursService constructs a new HoursService.
func NewHoursService(poiDao *redis.RedisPOIDAO) *HoursService {
	return &HoursService{poiDao: poiDao}
}

// LoadForForm reads both stored opening-hours values and reconciles
// them into the canonical pair an edit form is seeded with.
func (hs *HoursService) LoadForForm(poiID string) (hours.NormalizedOpeningHours, error) {
	rawStructured, err := hs.poiDao.GetOpeningHoursRaw(poiID)
	if err != nil {
		return hours.NormalizedOpeningHours{}, fmt.Errorf("failed to load opening hours for %s: %w", poiID, err)
	}
	rawLegacy, err := hs.poiDao.GetOpeningHoursText(poiID)
	if err != nil {
		return hours.NormalizedOpeningHours{}, fmt.Errorf("failed to load opening hours text for %s: %w", poiID, err)
	}

	var structured interface{}
	if rawStructured != "" {
		structured = rawStructured
	}
	var legacy interface{}
	if rawLegacy != "" {
		legacy = rawLegacy
	}

	return hours.NormalizeForForm(structured, legacy), nil
}

// GetFormattedHours renders a POI's hours for display. Documents keep
// priority; a text-only POI falls back to its stored text.
func (hs *HoursService) GetFormattedHours(poiID string, mode hours.Mode, loc hours.Locale) (string, error) {
	normalized, err := hs.LoadForForm(poiID)
	if err != nil {
		return "", err
	}
	if normalized.Structured != nil {
		return hours.FormatOpeningHoursLocalized(normalized.Structured, mode, loc), nil
	}
	return normalized.Text, nil
}

// SaveHours validates a document and, when it passes, stores it along
// with the derived compact display text. Validation errors block the
// write and are returned as data, never as a failure of the call.
func (hs *HoursService) SaveHours(poiID string, doc *schedule.Document) (hours.DocumentValidationResult, error) {
	result := hours.ValidateDocument(doc)
	if !result.IsValid {
		log.Printf("[HoursService] Rejected opening hours for %s: %d error(s)", poiID, len(result.Errors))
		return result, nil
	}

	if doc.Timezone == "" {
		doc.Timezone = schedule.DefaultTimezone
	}
	doc.LastUpdated = time.Now().UTC().Format(time.RFC3339)

	if err := hs.poiDao.SetOpeningHours(poiID, doc); err != nil {
		return result, err
	}
	if err := hs.poiDao.SetOpeningHoursText(poiID, hours.FormatOpeningHours(doc, hours.ModeCompact)); err != nil {
		return result, err
	}
	return result, nil
}

// DeleteHours removes both stored values for a POI.
func (hs *HoursService) DeleteHours(poiID string) error {
	return hs.poiDao.DeleteOpeningHours(poiID)
}
