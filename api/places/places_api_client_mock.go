package places

import (
	"fmt"

	"tp-server/config"
	placemodels "tp-server/models/places"
	"tp-server/models/poi"
	"tp-server/util"
)

// PlacesApiClientMock serves provider responses from JSON fixtures.
type PlacesApiClientMock struct {
}

// NewPlacesApiClientMock creates a new instance of PlacesApiClientMock
func NewPlacesApiClientMock() *PlacesApiClientMock {
	return &PlacesApiClientMock{}
}

// SetCredentials is a no-op for the mock.
func (c *PlacesApiClientMock) SetCredentials(apiKey string) {}

// SearchPOIsNearby returns the static search fixture regardless of the
// requested location.
func (c *PlacesApiClientMock) SearchPOIsNearby(lat float64, lng float64, radius int) (*placemodels.SearchPOIsResponse, error) {
	response, err := util.ReadSearchPOIsResponseFromJSON(config.GetResourcePath(config.SEARCH_POIS_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read search POIs response from json")
		return nil, err
	}
	return response, nil
}

// GetPOI returns the static single-POI fixture.
func (c *PlacesApiClientMock) GetPOI(poiID string) (*poi.POI, error) {
	response, err := util.ReadPOIFromJSON(config.GetResourcePath(config.POI_STATIC_RESOURCE))
	if err != nil {
		fmt.Println("Could not read POI from json")
		return nil, err
	}
	return response, nil
}

// FilterPOIs ignores the filters and returns the search fixture.
func (c *PlacesApiClientMock) FilterPOIs(params placemodels.SearchParams) (*placemodels.SearchPOIsResponse, error) {
	return c.SearchPOIsNearby(0, 0, 0)
}
