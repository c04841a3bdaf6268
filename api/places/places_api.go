package places

import (
	placemodels "tp-server/models/places"
	"tp-server/models/poi"
)

// PlacesAPI defines the interface for the external places provider the
// catalog is synced from.
type PlacesAPI interface {
	SearchPOIsNearby(lat float64, lng float64, radius int) (*placemodels.SearchPOIsResponse, error)
	GetPOI(poiID string) (*poi.POI, error)
	FilterPOIs(params placemodels.SearchParams) (*placemodels.SearchPOIsResponse, error)
	SetCredentials(apiKey string)
}
