package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// POIRoutes is the slice of the POI handler the router needs.
type POIRoutes interface {
	GetPOIsNearby(w http.ResponseWriter, r *http.Request)
}

// HoursRoutes is the slice of the hours handler the router needs.
type HoursRoutes interface {
	GetOpeningHours(w http.ResponseWriter, r *http.Request)
	PutOpeningHours(w http.ResponseWriter, r *http.Request)
	ValidateOpeningHours(w http.ResponseWriter, r *http.Request)
	GetSuggestedHours(w http.ResponseWriter, r *http.Request)
	GetHoursChart(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	poiHandler   POIRoutes
	hoursHandler HoursRoutes
	router       *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	poiHandler POIRoutes,
	hoursHandler HoursRoutes,
	router *mux.Router) *Router {
	return &Router{
		poiHandler:   poiHandler,
		hoursHandler: hoursHandler,
		router:       router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?lat={latitude(float)}&lng={longitude(float)}&radius={radius(float)}
	r.router.HandleFunc("/v1/pois/nearby", r.poiHandler.GetPOIsNearby).Methods("GET")

	r.router.HandleFunc("/v1/pois/{id}/hours", r.hoursHandler.GetOpeningHours).Methods("GET")
	r.router.HandleFunc("/v1/pois/{id}/hours", r.hoursHandler.PutOpeningHours).Methods("PUT")
	r.router.HandleFunc("/v1/pois/{id}/hours/chart", r.hoursHandler.GetHoursChart).Methods("GET")

	r.router.HandleFunc("/v1/hours/validate", r.hoursHandler.ValidateOpeningHours).Methods("POST")
	r.router.HandleFunc("/v1/hours/suggestions", r.hoursHandler.GetSuggestedHours).Methods("GET")

	r.router.HandleFunc("/ping", r.hoursHandler.Ping).Methods("GET")
}
