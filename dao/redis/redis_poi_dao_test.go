package redis

import (
	"context"
	"sort"
	"testing"

	"tp-server/db"
	"tp-server/models/poi"
	"tp-server/models/schedule"
)

func newTestDAO() *RedisPOIDAO {
	return NewRedisPOIDAO(db.NewMockRedisClient(context.Background()))
}

func samplePOI(id, name string) poi.POI {
	return poi.POI{
		POIID:   id,
		Name:    name,
		Address: "2 Rue des Carmes, Nantes",
		Lat:     47.2173,
		Lng:     -1.5534,
		POIType: "restaurant",
		Rating:  4.4,
	}
}

func TestUpsertAndGetNearbyPOIs(t *testing.T) {
	dao := newTestDAO()

	if err := dao.UpsertPOI(samplePOI("poi_1", "La Cigale")); err != nil {
		t.Fatalf("UpsertPOI failed: %v", err)
	}
	if err := dao.UpsertPOI(samplePOI("poi_2", "Les Machines")); err != nil {
		t.Fatalf("UpsertPOI failed: %v", err)
	}

	pois, err := dao.GetNearbyPOIs(47.2173, -1.5534, 3000)
	if err != nil {
		t.Fatalf("GetNearbyPOIs failed: %v", err)
	}
	if len(pois) != 2 {
		t.Fatalf("Expected 2 POIs, got %d", len(pois))
	}

	names := []string{pois[0].Name, pois[1].Name}
	sort.Strings(names)
	if names[0] != "La Cigale" || names[1] != "Les Machines" {
		t.Errorf("Unexpected POIs: %v", names)
	}
}

func TestListAllPOIIDs(t *testing.T) {
	dao := newTestDAO()
	for _, id := range []string{"poi_a", "poi_b"} {
		if err := dao.UpsertPOI(samplePOI(id, id)); err != nil {
			t.Fatalf("UpsertPOI failed: %v", err)
		}
	}

	ids, err := dao.ListAllPOIIDs()
	if err != nil {
		t.Fatalf("ListAllPOIIDs failed: %v", err)
	}
	sort.Strings(ids)
	if len(ids) != 2 || ids[0] != "poi_a" || ids[1] != "poi_b" {
		t.Errorf("Unexpected IDs: %v", ids)
	}
}

func TestOpeningHoursRoundTrip(t *testing.T) {
	dao := newTestDAO()

	doc := schedule.NewEmptyDocument()
	doc.RegularHours.SetDay(schedule.Monday, schedule.Open(
		schedule.TimeSlot{Start: "09:00", End: "18:00"},
	))

	if err := dao.SetOpeningHours("poi_1", doc); err != nil {
		t.Fatalf("SetOpeningHours failed: %v", err)
	}

	raw, err := dao.GetOpeningHoursRaw("poi_1")
	if err != nil {
		t.Fatalf("GetOpeningHoursRaw failed: %v", err)
	}
	if raw == "" {
		t.Fatal("Expected stored JSON, got empty string")
	}
}

func TestGetOpeningHoursRaw_MissingKeyIsNotAnError(t *testing.T) {
	dao := newTestDAO()

	raw, err := dao.GetOpeningHoursRaw("unknown")
	if err != nil {
		t.Fatalf("Expected nil error for missing key, got %v", err)
	}
	if raw != "" {
		t.Errorf("Expected empty string, got %q", raw)
	}

	text, err := dao.GetOpeningHoursText("unknown")
	if err != nil || text != "" {
		t.Errorf("Expected empty text and nil error, got %q / %v", text, err)
	}
}

func TestOpeningHoursText(t *testing.T) {
	dao := newTestDAO()

	if err := dao.SetOpeningHoursText("poi_1", "Lun-Ven: 09:00-18:00"); err != nil {
		t.Fatalf("SetOpeningHoursText failed: %v", err)
	}
	text, err := dao.GetOpeningHoursText("poi_1")
	if err != nil {
		t.Fatalf("GetOpeningHoursText failed: %v", err)
	}
	if text != "Lun-Ven: 09:00-18:00" {
		t.Errorf("Unexpected text: %q", text)
	}
}

func TestDeleteOpeningHours(t *testing.T) {
	dao := newTestDAO()

	doc := schedule.NewEmptyDocument()
	if err := dao.SetOpeningHours("poi_1", doc); err != nil {
		t.Fatalf("SetOpeningHours failed: %v", err)
	}
	if err := dao.SetOpeningHoursText("poi_1", "Fermé"); err != nil {
		t.Fatalf("SetOpeningHoursText failed: %v", err)
	}

	if err := dao.DeleteOpeningHours("poi_1"); err != nil {
		t.Fatalf("DeleteOpeningHours failed: %v", err)
	}

	raw, err := dao.GetOpeningHoursRaw("poi_1")
	if err != nil || raw != "" {
		t.Errorf("Expected structured hours gone, got %q / %v", raw, err)
	}
	text, err := dao.GetOpeningHoursText("poi_1")
	if err != nil || text != "" {
		t.Errorf("Expected text gone, got %q / %v", text, err)
	}

	// deleting absent keys is a no-op
	if err := dao.DeleteOpeningHours("unknown"); err != nil {
		t.Errorf("Expected no error for absent keys, got %v", err)
	}
}
