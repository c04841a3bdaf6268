package poi

import (
	"encoding/json"
	"fmt"
)

// POI is a point of interest as it arrives from the places provider and
// as it is stored in the geo index. Opening hours come in two
// independently maintained fields that can drift apart in storage: a
// structured JSON blob and a free-text column. The hours normalizer
// reconciles them.
type POI struct {
	POIID   string  `json:"poi_id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`

	// POIType drives the suggested-hours table: restaurant, commerce,
	// museum, accommodation, activity.
	POIType    string  `json:"poi_type,omitempty"`
	Rating     float64 `json:"rating,omitempty"`
	Reviews    int     `json:"reviews,omitempty"`
	PriceLevel int     `json:"price_level,omitempty"`

	OpeningHours     json.RawMessage `json:"opening_hours,omitempty"`
	OpeningHoursText string          `json:"opening_hours_text,omitempty"`
}

func (p *POI) ToString() string {
	return fmt.Sprintf("POI(id=%s, name=%s, lat=%f, lng=%f)",
		p.POIID, p.Name, p.Lat, p.Lng)
}
