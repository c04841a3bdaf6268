package places

import (
	"tp-server/api"
	placemodels "tp-server/models/places"
	"tp-server/models/poi"
)

// PlacesApiClient embeds the common HTTPClient
type PlacesApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	apiKey          string
}

// NewPlacesApiClient creates a new instance of PlacesApiClient
func NewPlacesApiClient(httpClient *api.HTTPClient) *PlacesApiClient {
	return &PlacesApiClient{
		HTTPClient: httpClient,
	}
}

// SetCredentials sets the provider API key sent with every request.
func (c *PlacesApiClient) SetCredentials(apiKey string) {
	c.apiKey = apiKey
}

func (c *PlacesApiClient) authHeaders() map[string]string {
	if c.apiKey == "" {
		return nil
	}
	return map[string]string{"X-Api-Key": c.apiKey}
}

// SearchPOIsNearby retrieves POIs around a point, radius in meters.
func (c *PlacesApiClient) SearchPOIsNearby(lat float64, lng float64, radius int) (*placemodels.SearchPOIsResponse, error) {
	params := placemodels.SearchParams{
		Lat:    &lat,
		Lng:    &lng,
		Radius: &radius,
	}
	var response placemodels.SearchPOIsResponse
	err := c.RequestWithQuery("GET", "/places/nearby", params.ToValues(), c.authHeaders(), nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetPOI retrieves a single POI given its id
func (c *PlacesApiClient) GetPOI(poiID string) (*poi.POI, error) {
	var response poi.POI
	err := c.Request("GET", "/places/"+poiID, c.authHeaders(), nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// FilterPOIs runs a filtered search against the provider.
func (c *PlacesApiClient) FilterPOIs(params placemodels.SearchParams) (*placemodels.SearchPOIsResponse, error) {
	var response placemodels.SearchPOIsResponse
	err := c.RequestWithQuery("GET", "/places/search", params.ToValues(), c.authHeaders(), nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}
