package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"tp-server/hours"
	"tp-server/models/schedule"
	services "tp-server/service"
	"tp-server/util"
)

const POI_TYPE_QUERY_ARG = "poi_type"

// OpeningHoursResponse is the load-for-edit payload: the reconciled
// text plus the structured document when one exists.
type OpeningHoursResponse struct {
	POIID      string             `json:"poi_id"`
	Text       string             `json:"text"`
	Structured *schedule.Document `json:"structured,omitempty"`
}

// SaveHoursResponse reports the outcome of a save: the validation
// result (warnings included) and the derived display text on success.
type SaveHoursResponse struct {
	Validation hours.DocumentValidationResult `json:"validation"`
	Text       string                         `json:"text,omitempty"`
}

type HoursHandler struct {
	hoursService *services.HoursService
}

func NewHoursHandler(hoursService *services.HoursService) *HoursHandler {
	return &HoursHandler{hoursService: hoursService}
}

// GetOpeningHours handles GET /v1/pois/{id}/hours
func (h *HoursHandler) GetOpeningHours(w http.ResponseWriter, r *http.Request) {
	poiID := mux.Vars(r)["id"]

	normalized, err := h.hoursService.LoadForForm(poiID)
	if err != nil {
		log.Println("Error loading opening hours:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	mode := hours.ModeCompact
	if r.URL.Query().Get(MODE_QUERY_ARG) == string(hours.ModeDetailed) {
		mode = hours.ModeDetailed
	}
	loc := hours.LocaleFor(r.URL.Query().Get(LOCALE_QUERY_ARG))

	text := normalized.Text
	if normalized.Structured != nil {
		text = hours.FormatOpeningHoursLocalized(normalized.Structured, mode, loc)
	}

	writeJSON(w, http.StatusOK, OpeningHoursResponse{
		POIID:      poiID,
		Text:       text,
		Structured: normalized.Structured,
	})
}

// PutOpeningHours handles PUT /v1/pois/{id}/hours. Validation errors
// block the write and come back as 422 with the full result.
func (h *HoursHandler) PutOpeningHours(w http.ResponseWriter, r *http.Request) {
	poiID := mux.Vars(r)["id"]

	var doc schedule.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		http.Error(w, "Invalid opening hours document: "+err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.hoursService.SaveHours(poiID, &doc)
	if err != nil {
		log.Println("Error saving opening hours:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if !result.IsValid {
		writeJSON(w, http.StatusUnprocessableEntity, SaveHoursResponse{Validation: result})
		return
	}

	writeJSON(w, http.StatusOK, SaveHoursResponse{
		Validation: result,
		Text:       hours.FormatOpeningHours(&doc, hours.ModeCompact),
	})
}

// ValidateOpeningHours handles POST /v1/hours/validate: a dry-run of
// the document validator for per-keystroke feedback in the editor.
func (h *HoursHandler) ValidateOpeningHours(w http.ResponseWriter, r *http.Request) {
	var doc schedule.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		http.Error(w, "Invalid opening hours document: "+err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, hours.ValidateDocument(&doc))
}

// GetSuggestedHours handles GET /v1/hours/suggestions?poi_type=...
func (h *HoursHandler) GetSuggestedHours(w http.ResponseWriter, r *http.Request) {
	poiType := r.URL.Query().Get(POI_TYPE_QUERY_ARG)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"poi_type": poiType,
		"slots":    hours.SuggestedHours(poiType),
	})
}

// GetHoursChart handles GET /v1/pois/{id}/hours/chart, streaming a
// weekly-coverage bar chart as HTML.
func (h *HoursHandler) GetHoursChart(w http.ResponseWriter, r *http.Request) {
	poiID := mux.Vars(r)["id"]

	normalized, err := h.hoursService.LoadForForm(poiID)
	if err != nil {
		log.Println("Error loading opening hours:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if normalized.Structured == nil {
		http.Error(w, "No structured opening hours for POI "+poiID, http.StatusNotFound)
		return
	}

	loc := hours.LocaleFor(r.URL.Query().Get(LOCALE_QUERY_ARG))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderWeeklyCoverage(w, normalized.Structured, loc, "Weekly opening hours "+poiID); err != nil {
		log.Println("Error rendering hours chart:", err)
	}
}

// Ping handles GET /ping
func (h *HoursHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}
