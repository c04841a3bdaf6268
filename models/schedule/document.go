package schedule

// DefaultTimezone is applied to freshly created documents.
const DefaultTimezone = "Europe/Paris"

// SeasonalOverride is a named inclusive date range carrying a complete
// weekly schedule that supersedes the regular one while active.
type SeasonalOverride struct {
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
	Hours     WeeklySchedule `json:"hours"`
	Name      string         `json:"name,omitempty"`
}

// SpecialDate is a single-date exception: either closed or an explicit
// slot list, taking precedence over regular and seasonal hours.
type SpecialDate struct {
	Date   string     `json:"date"`
	Closed bool       `json:"closed,omitempty"`
	Hours  []TimeSlot `json:"hours,omitempty"`
	Reason string     `json:"reason,omitempty"`
}

// Document is the opening-hours aggregate stored per POI. When Migrated
// is set and LegacyText is non-empty, the structured fields are a
// best-effort approximation and the free text wins for display.
type Document struct {
	RegularHours  WeeklySchedule              `json:"regular_hours"`
	SeasonalHours map[string]SeasonalOverride `json:"seasonal_hours,omitempty"`
	SpecialDates  []SpecialDate               `json:"special_dates,omitempty"`
	Timezone      string                      `json:"timezone"`
	LastUpdated   string                      `json:"last_updated,omitempty"`
	Migrated      bool                        `json:"migrated,omitempty"`
	LegacyText    string                      `json:"legacy_text,omitempty"`
}

// NewEmptyDocument builds the document a freshly created POI starts
// with: every day closed, default timezone.
func NewEmptyDocument() *Document {
	doc := &Document{Timezone: DefaultTimezone}
	for _, day := range DaysOfWeek {
		doc.RegularHours.SetDay(day, Closed())
	}
	return doc
}
