package hours

import (
	"fmt"
	"strings"

	"tp-server/models/schedule"
)

// Mode selects the joiner between day groups: ", " for compact, one
// group per line for detailed.
type Mode string

const (
	ModeCompact  Mode = "compact"
	ModeDetailed Mode = "detailed"
)

// dayGroup is a run of weekdays sharing an identical day schedule.
type dayGroup struct {
	days     []schedule.Weekday
	schedule schedule.DaySchedule
}

// FormatOpeningHours renders a document in the default locale.
func FormatOpeningHours(doc *schedule.Document, mode Mode) string {
	return FormatOpeningHoursLocalized(doc, mode, DefaultLocale())
}

// FormatOpeningHoursLocalized renders a document for display. Migrated
// documents with preserved original text return that text verbatim: the
// structured half is only an approximation there. Otherwise weekdays are
// walked in canonical order and consecutive identical schedules collapse
// into one "label: schedule" entry.
func FormatOpeningHoursLocalized(doc *schedule.Document, mode Mode, loc Locale) string {
	if doc == nil {
		return ""
	}
	if doc.Migrated && doc.LegacyText != "" {
		return doc.LegacyText
	}

	var groups []dayGroup
	for _, day := range schedule.DaysOfWeek {
		current := doc.RegularHours.Day(day)
		if len(groups) > 0 && groups[len(groups)-1].schedule.Equal(current) {
			last := &groups[len(groups)-1]
			last.days = append(last.days, day)
			continue
		}
		groups = append(groups, dayGroup{days: []schedule.Weekday{day}, schedule: current})
	}

	entries := make([]string, 0, len(groups))
	for _, group := range groups {
		entries = append(entries, fmt.Sprintf("%s: %s",
			formatDayRange(group.days, loc),
			formatDaySchedule(group.schedule, loc)))
	}

	joiner := ", "
	if mode == ModeDetailed {
		joiner = "\n"
	}
	return strings.Join(entries, joiner)
}

// formatDayRange renders a group label: "Sam" for one day, "Lun-Ven" for
// a contiguous run of more than two days, comma-separated abbreviations
// otherwise. Two contiguous days deliberately stay listed, not collapsed.
func formatDayRange(days []schedule.Weekday, loc Locale) string {
	if len(days) == 1 {
		return loc.DayAbbrevs[days[0]]
	}

	indices := make([]int, len(days))
	for i, day := range days {
		indices[i] = dayIndex(day)
	}

	contiguous := true
	for i := 1; i < len(indices); i++ {
		if indices[i] != indices[i-1]+1 {
			contiguous = false
			break
		}
	}

	if contiguous && len(days) > 2 {
		first := schedule.DaysOfWeek[indices[0]]
		last := schedule.DaysOfWeek[indices[len(indices)-1]]
		return fmt.Sprintf("%s-%s", loc.DayAbbrevs[first], loc.DayAbbrevs[last])
	}

	labels := make([]string, len(days))
	for i, day := range days {
		labels[i] = loc.DayAbbrevs[day]
	}
	return strings.Join(labels, ", ")
}

// formatDaySchedule renders one schedule: the closed word, the
// see-details word for legacy days, or slots in original order.
func formatDaySchedule(day schedule.DaySchedule, loc Locale) string {
	switch day.Kind {
	case schedule.DayClosed:
		return loc.Closed
	case schedule.DayLegacy:
		return loc.SeeDetails
	}
	if len(day.Slots) == 0 {
		return loc.Undefined
	}
	rendered := make([]string, len(day.Slots))
	for i, slot := range day.Slots {
		rendered[i] = fmt.Sprintf("%s-%s", slot.Start, slot.End)
	}
	return strings.Join(rendered, ", ")
}

func dayIndex(day schedule.Weekday) int {
	for i, d := range schedule.DaysOfWeek {
		if d == day {
			return i
		}
	}
	return 0
}

// HasOpeningHours reports whether a document has anything to show: a
// migrated document with non-blank preserved text, or at least one open
// day with at least one slot. A freshly created all-closed document has
// none.
func HasOpeningHours(doc *schedule.Document) bool {
	if doc == nil {
		return false
	}
	if doc.Migrated && strings.TrimSpace(doc.LegacyText) != "" {
		return true
	}
	for _, day := range schedule.DaysOfWeek {
		d := doc.RegularHours.Day(day)
		if d.Kind == schedule.DayOpen && len(d.Slots) > 0 {
			return true
		}
	}
	return false
}
