package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"tp-server/config"
	"tp-server/di"
	"tp-server/hours"
	"tp-server/util"
)

// seedFromFixtures loads the bundled POI list and stores it, hours
// included, so a fresh instance has something to serve before the
// first provider refresh.
func seedFromFixtures(container *di.Container) {
	pois, err := util.ReadPOIsFromJSON(config.GetResourcePath(config.SEED_POIS_RESOURCE))
	if err != nil {
		log.Printf("[MAIN] Could not read seed POIs: %v", err)
		return
	}

	for _, p := range pois {
		if err := container.RedisPOIDao.UpsertPOI(p); err != nil {
			log.Printf("[MAIN] Failed to seed POI %s: %v", p.POIID, err)
			continue
		}
		normalized := hours.NormalizeForForm(p.OpeningHours, p.OpeningHoursText)
		if normalized.Structured != nil {
			if _, err := container.HoursService.SaveHours(p.POIID, normalized.Structured); err != nil {
				log.Printf("[MAIN] Failed to seed hours for %s: %v", p.POIID, err)
			}
		} else if normalized.Text != "" {
			if err := container.RedisPOIDao.SetOpeningHoursText(p.POIID, normalized.Text); err != nil {
				log.Printf("[MAIN] Failed to seed hours text for %s: %v", p.POIID, err)
			}
		}
	}
	log.Printf("[MAIN] Seeded %d POIs", len(pois))
}

func printNearbySample(container *di.Container) {
	pois, err := container.POIService.GetPOIsNearby(47.218371, -1.553621, 3000)
	if err != nil {
		log.Println("Error while listing nearby POIs:", err)
		return
	}
	for _, p := range pois {
		fmt.Println("Nearby POI: " + p.ToString())
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[MAIN] No .env file loaded:", err)
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "prod"
	}

	container := di.NewContainer(env)

	seedFromFixtures(container)
	// printNearbySample(container)

	fmt.Println("refreshing catalog!")
	if err := container.CatalogRefresherService.RefreshCatalog(); err != nil {
		log.Printf("[MAIN] Initial catalog refresh failed: %v", err)
	}
	fmt.Println("starting periodic job!")
	container.CatalogRefresherService.StartPeriodicJob(config.CATALOG_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	fmt.Println("starting server!")
	container.TravelPlannerHttpServer.Start()
}
