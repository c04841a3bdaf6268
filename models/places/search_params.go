package places

import (
	"net/url"
	"strconv"
	"strings"
)

// SearchParams mirrors the provider's query args. Zero values are
// omitted from the encoded query.
type SearchParams struct {
	Query      string   // optional free-text query
	Types      []string // e.g. []{"restaurant","museum"}
	Lat        *float64 // must be paired with Lng and Radius
	Lng        *float64
	Radius     *int     // meters
	RatingMin  *float64 // 2.0 .. 5.0
	ReviewsMin *int
	PriceMax   *int
	OpenNow    *bool
	Limit      *int // default decided by the provider
	Page       *int
}

func (p SearchParams) ToValues() url.Values {
	q := url.Values{}

	if p.Query != "" {
		q.Set("query", p.Query)
	}
	if len(p.Types) > 0 {
		// provider expects a comma-separated list
		q.Set("types", strings.Join(p.Types, ","))
	}
	if p.Lat != nil {
		q.Set("lat", ftoa(*p.Lat))
	}
	if p.Lng != nil {
		q.Set("lng", ftoa(*p.Lng))
	}
	if p.Radius != nil {
		q.Set("radius", itoa(*p.Radius))
	}
	if p.RatingMin != nil {
		q.Set("rating_min", ftoa(*p.RatingMin))
	}
	if p.ReviewsMin != nil {
		q.Set("reviews_min", itoa(*p.ReviewsMin))
	}
	if p.PriceMax != nil {
		q.Set("price_max", itoa(*p.PriceMax))
	}
	if p.OpenNow != nil {
		q.Set("open_now", btoa(*p.OpenNow))
	}
	if p.Limit != nil {
		q.Set("limit", itoa(*p.Limit))
	}
	if p.Page != nil {
		q.Set("page", itoa(*p.Page))
	}

	return q
}

func itoa(i int) string     { return strconv.Itoa(i) }
func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
func btoa(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
