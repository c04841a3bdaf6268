package hours

import (
	"errors"
	"fmt"
	"regexp"
	"sort"

	"tp-server/models/schedule"
)

// timePattern accepts strict 24h "HH:MM" strings only (00-23 / 00-59).
var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Advisory thresholds, in minutes since midnight.
const (
	earlyOpeningMinutes = 360  // before 06:00
	midnightMinutes     = 1440 // past minute 1440 means past midnight
	longSlotMinutes     = 720  // slots longer than 12h
)

// DayValidationResult reports everything wrong (and merely unusual)
// about one day's schedule. Errors block saving; warnings never do.
type DayValidationResult struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// ValidateTimeString checks a 24h "HH:MM" string. A nil return means
// the string is valid.
func ValidateTimeString(value string) error {
	if value == "" {
		return errors.New("time is required")
	}
	if !timePattern.MatchString(value) {
		return errors.New("invalid format (expected HH:MM)")
	}
	return nil
}

// ValidateTimeSlot checks both bounds of a slot and requires the end to
// be strictly after the start. A slot crossing midnight cannot pass:
// split it over two adjacent days instead.
func ValidateTimeSlot(slot schedule.TimeSlot) error {
	if err := ValidateTimeString(slot.Start); err != nil {
		return fmt.Errorf("start time: %v", err)
	}
	if err := ValidateTimeString(slot.End); err != nil {
		return fmt.Errorf("end time: %v", err)
	}
	if schedule.TimeToMinutes(slot.End) <= schedule.TimeToMinutes(slot.Start) {
		return errors.New("end time must be after start time")
	}
	return nil
}

// ValidateDaySchedule checks a full day: every slot individually (no
// short-circuit, the caller sees all problems at once), then pairwise
// overlaps on a start-sorted copy, then the advisory warnings. It never
// panics; the outcome is always a result value.
func ValidateDaySchedule(day schedule.DaySchedule) DayValidationResult {
	result := DayValidationResult{
		IsValid:  true,
		Errors:   []string{},
		Warnings: []string{},
	}

	if day.Kind == schedule.DayClosed || day.Kind == schedule.DayLegacy {
		return result
	}

	if len(day.Slots) == 0 {
		result.IsValid = false
		result.Errors = append(result.Errors, "at least one time slot is required")
		return result
	}

	for i, slot := range day.Slots {
		if err := ValidateTimeSlot(slot); err != nil {
			result.IsValid = false
			result.Errors = append(result.Errors, fmt.Sprintf("slot %d: %v", i+1, err))
		}
	}

	if len(day.Slots) > 1 {
		sorted := make([]schedule.TimeSlot, len(day.Slots))
		copy(sorted, day.Slots)
		sort.SliceStable(sorted, func(i, j int) bool {
			return schedule.TimeToMinutes(sorted[i].Start) < schedule.TimeToMinutes(sorted[j].Start)
		})

		for i := 0; i < len(sorted)-1; i++ {
			if schedule.TimeToMinutes(sorted[i].End) > schedule.TimeToMinutes(sorted[i+1].Start) {
				result.IsValid = false
				result.Errors = append(result.Errors, "time slots must not overlap")
				break
			}
		}
	}

	for _, slot := range day.Slots {
		start := schedule.TimeToMinutes(slot.Start)
		end := schedule.TimeToMinutes(slot.End)

		if start < earlyOpeningMinutes {
			result.Warnings = append(result.Warnings, "unusually early opening")
		}
		if end > midnightMinutes {
			result.Warnings = append(result.Warnings, "closes after midnight")
		}
		if end-start > longSlotMinutes {
			result.Warnings = append(result.Warnings, "very long slot (more than 12h)")
		}
	}

	return result
}

// ValidateWeeklySchedule validates every day of a week in canonical
// order, keyed by weekday.
func ValidateWeeklySchedule(week *schedule.WeeklySchedule) map[schedule.Weekday]DayValidationResult {
	results := make(map[schedule.Weekday]DayValidationResult, len(schedule.DaysOfWeek))
	for _, day := range schedule.DaysOfWeek {
		results[day] = ValidateDaySchedule(week.Day(day))
	}
	return results
}

// DocumentValidationResult aggregates day results across the regular
// week, every seasonal override and every special date of a document.
type DocumentValidationResult struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// ValidateDocument runs the day validator across a whole document,
// prefixing each message with where it came from. A nil document is
// valid: opening hours are optional metadata.
func ValidateDocument(doc *schedule.Document) DocumentValidationResult {
	result := DocumentValidationResult{
		IsValid:  true,
		Errors:   []string{},
		Warnings: []string{},
	}
	if doc == nil {
		return result
	}

	collect := func(prefix string, day DayValidationResult) {
		if !day.IsValid {
			result.IsValid = false
		}
		for _, msg := range day.Errors {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", prefix, msg))
		}
		for _, msg := range day.Warnings {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %s", prefix, msg))
		}
	}

	for _, day := range schedule.DaysOfWeek {
		collect(string(day), ValidateDaySchedule(doc.RegularHours.Day(day)))
	}

	seasonKeys := make([]string, 0, len(doc.SeasonalHours))
	for key := range doc.SeasonalHours {
		seasonKeys = append(seasonKeys, key)
	}
	sort.Strings(seasonKeys)
	for _, key := range seasonKeys {
		override := doc.SeasonalHours[key]
		for _, day := range schedule.DaysOfWeek {
			collect(fmt.Sprintf("%s/%s", key, day), ValidateDaySchedule(override.Hours.Day(day)))
		}
	}

	for _, special := range doc.SpecialDates {
		if special.Closed {
			continue
		}
		collect(special.Date, ValidateDaySchedule(schedule.Open(special.Hours...)))
	}

	return result
}
