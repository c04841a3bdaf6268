package places

import "tp-server/models/poi"

// SearchPOIsResponse is the provider's answer to a nearby or filtered
// search.
type SearchPOIsResponse struct {
	Status string    `json:"status"`
	POIs   []poi.POI `json:"pois"`
	POIsN  int       `json:"pois_n"`
}
