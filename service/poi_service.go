package services

import (
	"tp-server/api/places"
	"tp-server/dao/redis"
	"tp-server/models/poi"
)

// POIService answers catalog queries from the geo index, falling back
// to the places provider for single-POI lookups.
type POIService struct {
	poiDao    *redis.RedisPOIDAO
	placesApi places.PlacesAPI
}

// NewPOIService constructs a new POIService with its dependencies.
func NewPOIService(
	poiDao *redis.RedisPOIDAO,
	placesApi places.PlacesAPI) *POIService {

	return &POIService{
		poiDao:    poiDao,
		placesApi: placesApi,
	}
}

func (ps *POIService) GetPOIsNearby(lat, lng, radius float64) ([]poi.POI, error) {
	return ps.poiDao.GetNearbyPOIs(lat, lng, radius)
}

func (ps *POIService) GetAllPOIIDs() ([]string, error) {
	return ps.poiDao.ListAllPOIIDs()
}

func (ps *POIService) GetPOI(poiID string) (*poi.POI, error) {
	return ps.placesApi.GetPOI(poiID)
}
