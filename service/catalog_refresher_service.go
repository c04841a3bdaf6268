package services

import (
	"log"
	"time"

	"tp-server/api/places"
	"tp-server/dao/redis"
	"tp-server/hours"
)

// Region holds a center point and radius for catalog refresh queries.
type Region struct {
	Name   string
	Lat    float64
	Lng    float64
	Radius int
}

// defaultRegions is the constant list of areas the catalog is synced
// for. Populate as destinations are onboarded.
var defaultRegions = []Region{
	{
		Name:   "Nantes centre",
		Lat:    47.218371,
		Lng:    -1.553621,
		Radius: 3000,
	},
	{
		Name:   "Bordeaux centre",
		Lat:    44.837789,
		Lng:    -0.579180,
		Radius: 3000,
	},
	{
		Name:   "Lyon presqu'île",
		Lat:    45.764043,
		Lng:    4.835659,
		Radius: 3000,
	},
}

// CatalogRefresherService periodically syncs the POI catalog from the
// places provider and reconciles each POI's opening hours on the way in.
type CatalogRefresherService struct {
	poiDao       *redis.RedisPOIDAO
	placesApi    places.PlacesAPI
	hoursService *HoursService
}

// NewCatalogRefresherService constructs a new refresher with dependencies.
func NewCatalogRefresherService(
	poiDao *redis.RedisPOIDAO,
	placesApi places.PlacesAPI,
	hoursService *HoursService,
) *CatalogRefresherService {
	return &CatalogRefresherService{
		poiDao:       poiDao,
		placesApi:    placesApi,
		hoursService: hoursService,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (cr *CatalogRefresherService) StartPeriodicJob(interval time.Duration) {
	go cr.startPeriodicJob(interval)
}

func (cr *CatalogRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[CatalogRefresherService] Running periodic catalog refresh job.")
		if err := cr.RefreshCatalog(); err != nil {
			log.Printf("[CatalogRefresherService] RefreshCatalog returned error: %v", err)
		} else {
			log.Println("[CatalogRefresherService] RefreshCatalog completed successfully.")
		}
	}
}

// RefreshCatalog queries the provider region by region, dedupes the
// results, upserts each POI into the geo index, and reconciles its
// opening-hours values into the structured + text pair.
func (cr *CatalogRefresherService) RefreshCatalog() error {
	seenIDs := make(map[string]struct{})
	seenNames := make(map[string]struct{})
	total := 0

	log.Printf("[CatalogRefresherService] Refreshing %d regions", len(defaultRegions))
	for _, region := range defaultRegions {
		log.Printf("[CatalogRefresherService] Searching region %q (lat=%.6f, lng=%.6f)", region.Name, region.Lat, region.Lng)
		resp, err := cr.placesApi.SearchPOIsNearby(region.Lat, region.Lng, region.Radius)
		if err != nil {
			log.Printf("[CatalogRefresherService] Search failed for region %q: %v", region.Name, err)
			continue
		}

		for _, p := range resp.POIs {
			if _, dup := seenIDs[p.POIID]; dup {
				continue
			}
			if _, dup := seenNames[p.Name]; dup {
				log.Printf("[CatalogRefresherService] Skipping duplicate POI name %q", p.Name)
				continue
			}
			seenIDs[p.POIID] = struct{}{}
			seenNames[p.Name] = struct{}{}

			if err := cr.poiDao.UpsertPOI(p); err != nil {
				log.Printf("[CatalogRefresherService] Failed to upsert POI %s: %v", p.POIID, err)
				continue
			}
			cr.storeOpeningHours(p.POIID, p.OpeningHours, p.OpeningHoursText)
			total++
		}
	}

	log.Printf("[CatalogRefresherService] Refreshed %d POIs", total)
	return nil
}

// storeOpeningHours reconciles the provider's two opening-hours fields
// and persists whatever came out. A POI with neither field gets nothing
// stored: hours are optional metadata.
func (cr *CatalogRefresherService) storeOpeningHours(poiID string, rawStructured, rawLegacy interface{}) {
	normalized := hours.NormalizeForForm(rawStructured, rawLegacy)

	if normalized.Structured != nil {
		if err := cr.poiDao.SetOpeningHours(poiID, normalized.Structured); err != nil {
			log.Printf("[CatalogRefresherService] Failed to store hours for %s: %v", poiID, err)
		}
	}
	if normalized.Text != "" {
		if err := cr.poiDao.SetOpeningHoursText(poiID, normalized.Text); err != nil {
			log.Printf("[CatalogRefresherService] Failed to store hours text for %s: %v", poiID, err)
		}
	}
}
