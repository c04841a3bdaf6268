package util

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempJSON(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Could not write temp file: %v", err)
	}
	return path
}

func TestReadSearchPOIsResponseFromJSON(t *testing.T) {
	path := writeTempJSON(t, "search.json", `{
		"status": "OK",
		"pois": [
			{"poi_id": "poi_1", "name": "La Cigale", "lat": 47.2129, "lng": -1.5606},
			{"poi_id": "poi_2", "name": "Château des ducs", "lat": 47.2161, "lng": -1.5499}
		],
		"pois_n": 2
	}`)

	resp, err := ReadSearchPOIsResponseFromJSON(path)
	if err != nil {
		t.Fatalf("ReadSearchPOIsResponseFromJSON failed: %v", err)
	}
	if resp.Status != "OK" || resp.POIsN != 2 || len(resp.POIs) != 2 {
		t.Errorf("Unexpected response: %+v", resp)
	}
	if resp.POIs[0].POIID != "poi_1" || resp.POIs[1].Name != "Château des ducs" {
		t.Errorf("Unexpected POIs: %+v", resp.POIs)
	}
}

func TestReadPOIFromJSON(t *testing.T) {
	path := writeTempJSON(t, "poi.json", `{
		"poi_id": "poi_1",
		"name": "La Cigale",
		"poi_type": "restaurant",
		"rating": 4.4,
		"opening_hours_text": "Lun-Dim: 07:30-00:30"
	}`)

	p, err := ReadPOIFromJSON(path)
	if err != nil {
		t.Fatalf("ReadPOIFromJSON failed: %v", err)
	}
	if p.POIID != "poi_1" || p.POIType != "restaurant" || p.OpeningHoursText == "" {
		t.Errorf("Unexpected POI: %+v", p)
	}
}

func TestReadPOIsFromJSON(t *testing.T) {
	path := writeTempJSON(t, "pois.json", `[
		{"poi_id": "poi_1", "name": "A"},
		{"poi_id": "poi_2", "name": "B"}
	]`)

	pois, err := ReadPOIsFromJSON(path)
	if err != nil {
		t.Fatalf("ReadPOIsFromJSON failed: %v", err)
	}
	if len(pois) != 2 || pois[1].POIID != "poi_2" {
		t.Errorf("Unexpected POIs: %+v", pois)
	}
}

func TestReaders_MissingAndMalformedFiles(t *testing.T) {
	if _, err := ReadPOIFromJSON("/nonexistent/poi.json"); err == nil {
		t.Error("Expected error for missing file")
	}

	path := writeTempJSON(t, "broken.json", "{broken")
	if _, err := ReadSearchPOIsResponseFromJSON(path); err == nil {
		t.Error("Expected error for malformed JSON")
	}
	if _, err := ReadPOIsFromJSON(path); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}
