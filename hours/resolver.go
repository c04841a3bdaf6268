package hours

import (
	"sort"
	"time"

	"tp-server/models/schedule"
)

// ScheduleSource says which layer of a document produced the effective
// schedule for a date.
type ScheduleSource string

const (
	SourceSpecial  ScheduleSource = "special"
	SourceSeasonal ScheduleSource = "seasonal"
	SourceRegular  ScheduleSource = "regular"
)

// ResolvedDay is the effective schedule for one calendar date, with the
// layer it came from and, where available, a human-readable reason
// (special-date reason or season name).
type ResolvedDay struct {
	Schedule schedule.DaySchedule `json:"schedule"`
	Source   ScheduleSource       `json:"source"`
	Reason   string               `json:"reason,omitempty"`
}

const isoDate = "2006-01-02"

// ResolveDay picks the schedule in effect on a given date. Precedence is
// special date over seasonal override over regular hours. The first
// matching special date in list order wins. Among overlapping seasonal
// ranges the one with the latest start date wins, ties broken by the
// greatest map key so the outcome does not depend on map iteration
// order.
func ResolveDay(doc *schedule.Document, date time.Time) ResolvedDay {
	if doc == nil {
		return ResolvedDay{Schedule: schedule.Closed(), Source: SourceRegular}
	}

	day := date.Format(isoDate)

	for _, special := range doc.SpecialDates {
		if special.Date != day {
			continue
		}
		if special.Closed {
			return ResolvedDay{Schedule: schedule.Closed(), Source: SourceSpecial, Reason: special.Reason}
		}
		return ResolvedDay{
			Schedule: schedule.Open(special.Hours...),
			Source:   SourceSpecial,
			Reason:   special.Reason,
		}
	}

	if key, override, ok := activeSeasonalOverride(doc.SeasonalHours, day); ok {
		reason := override.Name
		if reason == "" {
			reason = key
		}
		return ResolvedDay{
			Schedule: override.Hours.Day(weekdayOf(date)),
			Source:   SourceSeasonal,
			Reason:   reason,
		}
	}

	return ResolvedDay{
		Schedule: doc.RegularHours.Day(weekdayOf(date)),
		Source:   SourceRegular,
	}
}

// activeSeasonalOverride picks the winning override for an ISO date.
// Inclusive bounds; ISO date strings compare correctly as strings.
func activeSeasonalOverride(overrides map[string]schedule.SeasonalOverride, day string) (string, schedule.SeasonalOverride, bool) {
	keys := make([]string, 0, len(overrides))
	for key := range overrides {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	bestKey := ""
	var best schedule.SeasonalOverride
	found := false
	for _, key := range keys {
		override := overrides[key]
		if day < override.StartDate || day > override.EndDate {
			continue
		}
		if !found || override.StartDate >= best.StartDate {
			bestKey, best, found = key, override, true
		}
	}
	return bestKey, best, found
}

// IsOpenAt reports whether the POI is open at the given instant,
// evaluated in the document's timezone. Legacy days count as closed:
// there is no structure to test against.
func IsOpenAt(doc *schedule.Document, at time.Time) bool {
	if doc == nil {
		return false
	}

	local := at.In(documentLocation(doc))
	resolved := ResolveDay(doc, local)
	if resolved.Schedule.Kind != schedule.DayOpen {
		return false
	}

	minutes := local.Hour()*60 + local.Minute()
	for _, slot := range resolved.Schedule.Slots {
		if minutes >= schedule.TimeToMinutes(slot.Start) && minutes < schedule.TimeToMinutes(slot.End) {
			return true
		}
	}
	return false
}

// documentLocation loads the document's IANA timezone, falling back to
// UTC when it is missing or invalid.
func documentLocation(doc *schedule.Document) *time.Location {
	if doc.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(doc.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// weekdayOf maps a time.Time to the canonical weekday.
func weekdayOf(t time.Time) schedule.Weekday {
	switch t.Weekday() {
	case time.Monday:
		return schedule.Monday
	case time.Tuesday:
		return schedule.Tuesday
	case time.Wednesday:
		return schedule.Wednesday
	case time.Thursday:
		return schedule.Thursday
	case time.Friday:
		return schedule.Friday
	case time.Saturday:
		return schedule.Saturday
	default:
		return schedule.Sunday
	}
}
