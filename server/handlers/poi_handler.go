package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"tp-server/hours"
	"tp-server/models/poi"
	services "tp-server/service"
)

const (
	LAT_QUERY_ARG     = "lat"
	LNG_QUERY_ARG     = "lng"
	RADIUS_QUERY_ARG  = "radius"
	VERBOSE_QUERY_ARG = "verbose"
	LOCALE_QUERY_ARG  = "locale"
	MODE_QUERY_ARG    = "mode"
)

// POIWithHours pairs a POI with its display hours and open-now state.
type POIWithHours struct {
	POI       poi.POI `json:"poi"`
	HoursText string  `json:"hours_text"`
	OpenNow   bool    `json:"open_now"`
}

// MinifiedPOI is the small form returned when verbose=false.
type MinifiedPOI struct {
	POIID     string  `json:"poi_id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	POIType   string  `json:"poi_type"`
	Rating    float64 `json:"rating"`
	HoursText string  `json:"hours_text"`
	OpenNow   bool    `json:"open_now"`
}

type POIHandler struct {
	poiService   *services.POIService
	hoursService *services.HoursService
}

func NewPOIHandler(poiService *services.POIService, hoursService *services.HoursService) *POIHandler {
	return &POIHandler{poiService: poiService, hoursService: hoursService}
}

func (h *POIHandler) GetPOIsNearby(w http.ResponseWriter, r *http.Request) {
	// 1) Parse query args
	lat, lng, radius, verbose, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	// 2) Load geo-indexed POIs
	pois, err := h.poiService.GetPOIsNearby(lat, lng, radius)
	if err != nil {
		log.Println("Error loading nearby POIs:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// 3) Merge with stored opening hours
	merged := h.mergeHours(pois)

	// 4) Transform according to verbose flag
	result := h.transform(merged, verbose)

	// 5) Write JSON
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func (h *POIHandler) parseArgs(vals url.Values, w http.ResponseWriter) (
	lat, lng, radius float64, verbose bool, ok bool,
) {
	var err error

	lat, err = parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lng, err = parseArgFloat64(vals, LNG_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LNG_QUERY_ARG, http.StatusBadRequest)
		return
	}
	radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
		return
	}
	verbose = false
	if v := vals.Get(VERBOSE_QUERY_ARG); v != "" {
		verbose, _ = strconv.ParseBool(v)
	}
	ok = true
	return
}

// mergeHours attaches each POI's stored hours. Open POIs sort first,
// then by rating.
func (h *POIHandler) mergeHours(pois []poi.POI) []POIWithHours {
	now := time.Now()
	out := make([]POIWithHours, 0, len(pois))
	for _, p := range pois {
		normalized, err := h.hoursService.LoadForForm(p.POIID)
		if err != nil {
			log.Printf("No opening hours for poi_id=%s, listing without", p.POIID)
			out = append(out, POIWithHours{POI: p})
			continue
		}
		out = append(out, POIWithHours{
			POI:       p,
			HoursText: normalized.Text,
			OpenNow:   hours.IsOpenAt(normalized.Structured, now),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].OpenNow != out[j].OpenNow {
			return out[i].OpenNow
		}
		return out[i].POI.Rating > out[j].POI.Rating
	})
	return out
}

func (h *POIHandler) transform(merged []POIWithHours, verbose bool) interface{} {
	if verbose {
		return merged
	}
	// minify
	min := make([]MinifiedPOI, 0, len(merged))
	for _, m := range merged {
		min = append(min, MinifiedPOI{
			POIID:     m.POI.POIID,
			Name:      m.POI.Name,
			Address:   m.POI.Address,
			POIType:   m.POI.POIType,
			Rating:    m.POI.Rating,
			HoursText: m.HoursText,
			OpenNow:   m.OpenNow,
		})
	}
	return min
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}
