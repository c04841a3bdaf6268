package hours

import (
	"strings"
	"testing"

	"tp-server/models/schedule"
)

func weekdaysDoc() *schedule.Document {
	doc := schedule.NewEmptyDocument()
	slot := schedule.TimeSlot{Start: "09:00", End: "18:00"}
	for _, day := range []schedule.Weekday{
		schedule.Monday, schedule.Tuesday, schedule.Wednesday,
		schedule.Thursday, schedule.Friday,
	} {
		doc.RegularHours.SetDay(day, schedule.Open(slot))
	}
	return doc
}

func TestFormatOpeningHours_GroupsContiguousDays(t *testing.T) {
	got := FormatOpeningHours(weekdaysDoc(), ModeCompact)
	want := "Lun-Ven: 09:00-18:00, Sam, Dim: Fermé"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestFormatOpeningHours_TwoDayGroupsAreListed(t *testing.T) {
	doc := schedule.NewEmptyDocument()
	slot := schedule.TimeSlot{Start: "10:00", End: "17:00"}
	doc.RegularHours.SetDay(schedule.Monday, schedule.Open(slot))
	doc.RegularHours.SetDay(schedule.Tuesday, schedule.Open(slot))

	got := FormatOpeningHours(doc, ModeCompact)
	// two days never collapse into a range
	if !strings.HasPrefix(got, "Lun, Mar: 10:00-17:00") {
		t.Errorf("Expected listed two-day group, got %q", got)
	}
	if strings.Contains(got, "Lun-Mar") {
		t.Errorf("Two-day group must not render as a range: %q", got)
	}
}

func TestFormatOpeningHours_MultipleSlotsPerDay(t *testing.T) {
	doc := schedule.NewEmptyDocument()
	doc.RegularHours.SetDay(schedule.Friday, schedule.Open(
		schedule.TimeSlot{Start: "12:00", End: "14:00"},
		schedule.TimeSlot{Start: "19:00", End: "22:00"},
	))

	got := FormatOpeningHours(doc, ModeCompact)
	if !strings.Contains(got, "Ven: 12:00-14:00, 19:00-22:00") {
		t.Errorf("Expected both slots rendered, got %q", got)
	}
}

func TestFormatOpeningHours_DetailedUsesNewlines(t *testing.T) {
	got := FormatOpeningHours(weekdaysDoc(), ModeDetailed)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %q", len(lines), got)
	}
	if lines[0] != "Lun-Ven: 09:00-18:00" || lines[1] != "Sam, Dim: Fermé" {
		t.Errorf("Unexpected detailed output: %q", got)
	}
}

func TestFormatOpeningHours_EmptyDocument(t *testing.T) {
	got := FormatOpeningHours(schedule.NewEmptyDocument(), ModeCompact)
	if got != "Lun-Dim: Fermé" {
		t.Errorf("Expected all-closed week collapsed, got %q", got)
	}

	if got := FormatOpeningHours(nil, ModeCompact); got != "" {
		t.Errorf("Expected empty string for nil document, got %q", got)
	}
}

func TestFormatOpeningHours_PreservedTextWinsForMigratedDocs(t *testing.T) {
	doc := weekdaysDoc()
	doc.Migrated = true
	doc.LegacyText = "Tous les jours sauf le mardi"

	if got := FormatOpeningHours(doc, ModeCompact); got != doc.LegacyText {
		t.Errorf("Expected preserved text verbatim, got %q", got)
	}

	// without preserved text the structured data renders as usual
	doc.LegacyText = ""
	if got := FormatOpeningHours(doc, ModeCompact); !strings.HasPrefix(got, "Lun-Ven:") {
		t.Errorf("Expected structured formatting, got %q", got)
	}
}

func TestFormatOpeningHours_LegacyDayKind(t *testing.T) {
	doc := schedule.NewEmptyDocument()
	doc.RegularHours.SetDay(schedule.Wednesday, schedule.Legacy())

	got := FormatOpeningHours(doc, ModeCompact)
	if !strings.Contains(got, "Mer: Voir détails") {
		t.Errorf("Expected legacy day marker, got %q", got)
	}
}

func TestFormatOpeningHoursLocalized(t *testing.T) {
	got := FormatOpeningHoursLocalized(weekdaysDoc(), ModeCompact, LocaleEN)
	want := "Mon-Fri: 09:00-18:00, Sat, Sun: Closed"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestHasOpeningHours(t *testing.T) {
	if HasOpeningHours(nil) {
		t.Error("Expected false for nil document")
	}
	if HasOpeningHours(schedule.NewEmptyDocument()) {
		t.Error("Expected false for empty document")
	}

	doc := schedule.NewEmptyDocument()
	doc.RegularHours.SetDay(schedule.Saturday, schedule.Open(
		schedule.TimeSlot{Start: "10:00", End: "12:00"},
	))
	if !HasOpeningHours(doc) {
		t.Error("Expected true for document with an open slot")
	}

	legacyOnly := schedule.NewEmptyDocument()
	legacyOnly.Migrated = true
	legacyOnly.LegacyText = "  "
	if HasOpeningHours(legacyOnly) {
		t.Error("Expected false for blank legacy text")
	}
	legacyOnly.LegacyText = "Ouvert le week-end"
	if !HasOpeningHours(legacyOnly) {
		t.Error("Expected true for non-blank legacy text")
	}
}

func TestSuggestedHours(t *testing.T) {
	restaurant := SuggestedHours("restaurant")
	if len(restaurant) != 2 || restaurant[0].Start != "12:00" || restaurant[1].End != "22:00" {
		t.Errorf("Unexpected restaurant suggestion: %+v", restaurant)
	}

	fallback := SuggestedHours("observatory")
	if len(fallback) != 1 || fallback[0].Start != "09:00" || fallback[0].End != "18:00" {
		t.Errorf("Unexpected default suggestion: %+v", fallback)
	}
}
